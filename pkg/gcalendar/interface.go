package gcalendar

import "context"

// ICalendar is the subset of Google Calendar the dashboard syncs to.
// Implementations are safe for concurrent use.
type ICalendar interface {
	// FindByKey returns the event previously created with key, or nil.
	FindByKey(ctx context.Context, calendarID, key string) (*Event, error)

	// CreateAllDayEvent inserts a new all-day event.
	CreateAllDayEvent(ctx context.Context, req AllDayEventRequest) (*Event, error)
}
