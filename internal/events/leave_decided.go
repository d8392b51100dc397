package events

import "time"

const LeaveDecidedTopic = "leave.request.decided.v1"

type LeaveDecidedEvent struct {
	EventType       string    `json:"event_type"`
	RequesterHandle string    `json:"requester_handle"`
	Decision        string    `json:"decision"`
	Category        string    `json:"category"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	Length          float64   `json:"length"`
	OccurredAt      time.Time `json:"occurred_at"`
}
