package gcalendar

import "time"

// KeyProperty is the private extended property that identifies events
// created by the dashboard, so repeated syncs do not duplicate them.
const KeyProperty = "syllabus_key"

// AllDayEventRequest is the input for creating an all-day event.
type AllDayEventRequest struct {
	CalendarID  string
	Key         string
	Summary     string
	Description string
	Day         time.Time
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
	Day      string
}
