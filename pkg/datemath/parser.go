package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Parser turns the date-like strings found in syllabus reports into
// calendar days in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/New_York"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseDay resolves s to midnight of the day it names. Absolute forms are
// tried first, then month/day without a year (taken from baseTime), then
// relative phrases such as "tomorrow", "in 3 days" or "next friday".
func (p *Parser) ParseDay(s string, baseTime time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Time{}, ErrUnrecognizedDate
	}

	for _, layout := range absoluteLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, p.location); err == nil {
			return t, nil
		}
	}

	year := baseTime.In(p.location).Year()
	for _, layout := range yearlessLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, p.location); err == nil {
			return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, p.location), nil
		}
	}

	return p.Parse(trimmed, baseTime)
}

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognizedDate, relative)
}

// DaysUntil counts calendar days from baseTime's day to day. Negative means
// day is in the past.
func (p *Parser) DaysUntil(day, baseTime time.Time) int {
	from := p.startOfDay(baseTime)
	to := p.startOfDay(day)
	// Dates rather than durations so DST shifts do not lose a day.
	return int(time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC).
		Sub(time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)).Hours() / 24)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: invalid duration format %q", ErrUnrecognizedDate, relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown weekday %q", ErrUnrecognizedDate, dayName)
	}

	daysUntil := int(targetWeekday - baseTime.In(p.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
