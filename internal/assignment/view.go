// Package assignment projects the current report into the two dashboard lists.
package assignment

import "syllabus-tracker/internal/model"

const (
	PlaceholderUpcomingTitle   = "Nothing yet."
	PlaceholderUpcomingDetails = "Great job! You're up to date on all your work."
	PlaceholderPriority        = "Nothing yet!"
)

// Card is one upcoming-assignment card.
type Card struct {
	Name        string
	DueDate     string
	Details     string
	Placeholder bool
}

// PriorityItem is one row of the priority list.
type PriorityItem struct {
	Event       string
	Date        string
	Placeholder bool
}

// View holds both rendered lists. Neither list is ever empty.
type View struct {
	Upcoming []Card
	Priority []PriorityItem
}

// Project renders the lists in the order given. An empty list is replaced by
// a single placeholder element.
func Project(upcoming []model.Assignment, priority []model.PriorityAssignment) View {
	v := View{
		Upcoming: make([]Card, 0, max(len(upcoming), 1)),
		Priority: make([]PriorityItem, 0, max(len(priority), 1)),
	}

	for _, a := range upcoming {
		v.Upcoming = append(v.Upcoming, Card{Name: a.Name, DueDate: a.DueDate, Details: a.Details})
	}
	if len(v.Upcoming) == 0 {
		v.Upcoming = append(v.Upcoming, Card{
			Name:        PlaceholderUpcomingTitle,
			Details:     PlaceholderUpcomingDetails,
			Placeholder: true,
		})
	}

	for _, p := range priority {
		v.Priority = append(v.Priority, PriorityItem{Event: p.Event, Date: p.Date})
	}
	if len(v.Priority) == 0 {
		v.Priority = append(v.Priority, PriorityItem{Event: PlaceholderPriority, Placeholder: true})
	}

	return v
}
