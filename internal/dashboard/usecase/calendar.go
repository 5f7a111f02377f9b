package usecase

import (
	"bytes"
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"syllabus-tracker/internal/dashboard"
	"syllabus-tracker/pkg/gcalendar"
	"syllabus-tracker/pkg/ical"
)

const (
	icalProdID   = "-//Syllabus Tracker//Dashboard//EN"
	icalName     = "Syllabus"
	icalFileName = "syllabus_calendar.ics"
	uidDomain    = "syllabus-tracker"
)

type calendarEntry struct {
	key         string
	summary     string
	description string
	day         time.Time
}

// calendarEntries turns the current report into dated entries. Dates the
// parser cannot read are skipped and counted.
func (uc *implUseCase) calendarEntries(snap dashboard.Snapshot) ([]calendarEntry, int) {
	now := uc.now()
	var entries []calendarEntry
	skipped := 0

	for _, a := range snap.Upload.Upcoming {
		day, err := uc.dateMath.ParseDay(a.DueDate, now)
		if err != nil {
			skipped++
			continue
		}
		desc := a.Details
		if desc == "" {
			desc = dueDescription(uc.dateMath.DaysUntil(day, now))
		}
		entries = append(entries, calendarEntry{
			key:         entryKey("assignment", a.Name, a.DueDate),
			summary:     a.Name,
			description: desc,
			day:         day,
		})
	}

	for _, p := range snap.Upload.Priority {
		day, err := uc.dateMath.ParseDay(p.Date, now)
		if err != nil {
			skipped++
			continue
		}
		entries = append(entries, calendarEntry{
			key:         entryKey("priority", p.Event, p.Date),
			summary:     p.Event,
			description: "Priority date",
			day:         day,
		})
	}

	return entries, skipped
}

// SyncCalendar inserts the current assignments into Google Calendar as
// all-day events. Events already created by an earlier sync are left alone.
func (uc *implUseCase) SyncCalendar(ctx context.Context, sessionID string) (dashboard.SyncCalendarOutput, error) {
	if uc.cfg.Calendar == nil {
		return dashboard.SyncCalendarOutput{}, dashboard.ErrCalendarNotConfigured
	}

	ctx, b, err := uc.board(ctx, sessionID)
	if err != nil {
		return dashboard.SyncCalendarOutput{}, err
	}

	entries, skipped := uc.calendarEntries(b.Snapshot())
	if len(entries) == 0 {
		return dashboard.SyncCalendarOutput{Skipped: skipped}, dashboard.ErrNothingToExport
	}

	var created, existing atomic.Int32
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.SyncConcurrency)

	for _, e := range entries {
		g.Go(func() error {
			found, err := uc.cfg.Calendar.FindByKey(gctx, uc.cfg.CalendarID, e.key)
			if err != nil {
				return fmt.Errorf("calendar.FindByKey %q: %w", e.summary, err)
			}
			if found != nil {
				existing.Add(1)
				return nil
			}

			_, err = uc.cfg.Calendar.CreateAllDayEvent(gctx, gcalendar.AllDayEventRequest{
				CalendarID:  uc.cfg.CalendarID,
				Key:         e.key,
				Summary:     e.summary,
				Description: e.description,
				Day:         e.day,
			})
			if err != nil {
				return fmt.Errorf("calendar.CreateAllDayEvent %q: %w", e.summary, err)
			}
			created.Add(1)
			return nil
		})
	}

	out := dashboard.SyncCalendarOutput{Skipped: skipped}
	err = g.Wait()
	out.Created = int(created.Load())
	out.Existing = int(existing.Load())
	if err != nil {
		uc.l.Errorf(ctx, "calendar sync failed after %d created: %v", out.Created, err)
		return out, err
	}

	uc.l.Infof(ctx, "calendar sync: %d created, %d existing, %d skipped", out.Created, out.Existing, out.Skipped)
	return out, nil
}

// ExportCalendar renders the current assignments as an iCalendar file.
func (uc *implUseCase) ExportCalendar(ctx context.Context, sessionID string) (dashboard.ExportCalendarOutput, error) {
	_, b, err := uc.board(ctx, sessionID)
	if err != nil {
		return dashboard.ExportCalendarOutput{}, err
	}

	entries, _ := uc.calendarEntries(b.Snapshot())
	if len(entries) == 0 {
		return dashboard.ExportCalendarOutput{}, dashboard.ErrNothingToExport
	}

	cal := ical.Calendar{ProdID: icalProdID, Name: icalName}
	for _, e := range entries {
		cal.Events = append(cal.Events, ical.Event{
			UID:         e.key + "@" + uidDomain,
			Summary:     e.summary,
			Description: e.description,
			Day:         e.day,
		})
	}

	var buf bytes.Buffer
	if err := ical.Encode(&buf, cal, uc.now()); err != nil {
		return dashboard.ExportCalendarOutput{}, fmt.Errorf("ical.Encode: %w", err)
	}

	return dashboard.ExportCalendarOutput{FileName: icalFileName, Content: buf.Bytes()}, nil
}

// entryKey is stable across syncs for the same report row.
func entryKey(kind, name, date string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(kind+"|"+name+"|"+date)).String()
}

func dueDescription(days int) string {
	switch {
	case days < 0:
		return "Overdue"
	case days == 0:
		return "Due today"
	case days == 1:
		return "Due in 1 day"
	default:
		return fmt.Sprintf("Due in %d days", days)
	}
}
