package models

import "time"

// EventKind classifies calendar events.
type EventKind string

const (
	EventClass      EventKind = "class"
	EventEvaluation EventKind = "evaluation"
	EventMeeting    EventKind = "meeting"
	EventHoliday    EventKind = "holiday"
	EventOther      EventKind = "other"
)

// Valid reports whether the kind is one of the known values.
func (k EventKind) Valid() bool {
	switch k {
	case EventClass, EventEvaluation, EventMeeting, EventHoliday, EventOther:
		return true
	}
	return false
}

// CalendarEvent is a scheduled event, optionally tied to a course. No
// invariant enforces start <= end and overlapping events are not detected.
type CalendarEvent struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description,omitempty"`
	Kind        EventKind `db:"event_type" json:"event_type"`
	StartTime   time.Time `db:"start_time" json:"start_time"`
	EndTime     time.Time `db:"end_time" json:"end_time"`
	CourseID    *int64    `db:"course_id" json:"course_id,omitempty"`
	CreatedBy   int64     `db:"created_by" json:"created_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// CalendarFilter captures filtering criteria for listing events.
type CalendarFilter struct {
	CourseID  int64
	StartDate *time.Time
	EndDate   *time.Time
}

// CalendarEventRequest is the create payload for calendar events.
type CalendarEventRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description *string   `json:"description,omitempty"`
	Kind        EventKind `json:"event_type" validate:"required"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`
	CourseID    *int64    `json:"course_id,omitempty"`
}
