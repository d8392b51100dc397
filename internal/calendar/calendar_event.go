package calendar

import "time"

// Entry is the decided-request slice the calendar cares about.
type Entry struct {
	Requester     string
	CategoryLabel string
	Reason        string
	StartDate     time.Time
	EndDate       time.Time
}

type EventDate struct {
	Date     string
	TimeZone string
}

// Event is an all-day calendar event. End is exclusive per the calendar
// convention for all-day events.
type Event struct {
	Summary     string
	Description string
	Start       EventDate
	End         EventDate
}

const dateFormat = "2006-01-02"

// BuildEvent converts a decided request into an all-day event payload.
// The stored end date is the inclusive end date plus one day, always.
func BuildEvent(entry Entry, timeZone string) Event {
	return Event{
		Summary:     entry.Requester + " " + entry.CategoryLabel,
		Description: entry.Reason,
		Start: EventDate{
			Date:     entry.StartDate.Format(dateFormat),
			TimeZone: timeZone,
		},
		End: EventDate{
			Date:     entry.EndDate.AddDate(0, 0, 1).Format(dateFormat),
			TimeZone: timeZone,
		},
	}
}
