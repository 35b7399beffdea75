package entity

import (
	"time"

	coreEntity "bump-planner/core/entity"
)

// EventType classifies where an event came from or what it represents.
type EventType string

const (
	EventTypeTask          EventType = "task"
	EventTypeCheckup       EventType = "checkup"
	EventTypeMood          EventType = "mood"
	EventTypeFetalMovement EventType = "fetal_movement"
	EventTypeCustom        EventType = "custom"
	EventTypeReminder      EventType = "reminder"
	EventTypeMilestone     EventType = "milestone"
)

type EventCategory string

const (
	EventCategoryMedical     EventCategory = "medical"
	EventCategoryPersonal    EventCategory = "personal"
	EventCategoryFamily      EventCategory = "family"
	EventCategoryHealth      EventCategory = "health"
	EventCategoryPreparation EventCategory = "preparation"
	EventCategoryOther       EventCategory = "other"
)

type EventPriority string

const (
	EventPriorityLow    EventPriority = "low"
	EventPriorityMedium EventPriority = "medium"
	EventPriorityHigh   EventPriority = "high"
	EventPriorityUrgent EventPriority = "urgent"
)

type EventStatus string

const (
	EventStatusPending    EventStatus = "pending"
	EventStatusInProgress EventStatus = "in_progress"
	EventStatusCompleted  EventStatus = "completed"
	EventStatusCancelled  EventStatus = "cancelled"
)

// Reminder is notification data attached to an event. Delivery is owned by
// the client; nothing here schedules anything.
type Reminder struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	MinutesBefore int    `json:"minutes_before"`
	Message       string `json:"message,omitempty"`
}

type RecurrenceFrequency string

const (
	RecurrenceDaily   RecurrenceFrequency = "daily"
	RecurrenceWeekly  RecurrenceFrequency = "weekly"
	RecurrenceMonthly RecurrenceFrequency = "monthly"
	RecurrenceYearly  RecurrenceFrequency = "yearly"
)

// Recurrence is a stored descriptor only. The engine never expands it into
// occurrences; a nil Recurrence means a single event.
type Recurrence struct {
	Frequency  RecurrenceFrequency `json:"frequency"`
	Interval   int                 `json:"interval"`
	EndDate    *time.Time          `json:"end_date,omitempty"`
	Count      *int                `json:"count,omitempty"`
	DaysOfWeek []time.Weekday      `json:"days_of_week,omitempty"`
	DayOfMonth *int                `json:"day_of_month,omitempty"`
}

// CalendarEvent is the unified event record everything else in the service
// reads and writes. Derived events carry SourceID/SourceType identifying the
// external record they were imported from; user-authored events leave both
// nil.
type CalendarEvent struct {
	coreEntity.BaseEntity

	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	AllDay      bool       `json:"all_day"`

	Type     EventType     `json:"type"`
	Category EventCategory `json:"category"`
	Priority EventPriority `json:"priority"`
	Status   EventStatus   `json:"status"`

	Color       string   `json:"color,omitempty"`
	Location    *string  `json:"location,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
	Attachments []string `json:"attachments,omitempty"`

	Reminders  []Reminder  `json:"reminders,omitempty"`
	Recurrence *Recurrence `json:"recurrence,omitempty"`

	SourceID   *string `json:"source_id,omitempty"`
	SourceType *string `json:"source_type,omitempty"`
	CreatedBy  string  `json:"created_by"`
}

// EffectiveEnd is the end of the event's occupied interval. Events without an
// end date are instantaneous.
func (e *CalendarEvent) EffectiveEnd() time.Time {
	if e.EndDate != nil {
		return *e.EndDate
	}
	return e.StartDate
}

// Intersects reports whether the event's interval touches [start, end],
// boundaries included.
func (e *CalendarEvent) Intersects(start, end time.Time) bool {
	return !e.StartDate.After(end) && !e.EffectiveEnd().Before(start)
}

// IsDerived reports whether the event was imported from an external record.
func (e *CalendarEvent) IsDerived() bool {
	return e.SourceID != nil && e.SourceType != nil
}

// IsActionable reports whether the event still needs attention.
func (e *CalendarEvent) IsActionable() bool {
	return e.Status != EventStatusCompleted && e.Status != EventStatusCancelled
}

// Clone returns a deep copy so internal store state never leaks through the
// API boundary.
func (e *CalendarEvent) Clone() *CalendarEvent {
	dup := *e
	if e.EndDate != nil {
		end := *e.EndDate
		dup.EndDate = &end
	}
	if e.Location != nil {
		loc := *e.Location
		dup.Location = &loc
	}
	if e.Notes != nil {
		notes := *e.Notes
		dup.Notes = &notes
	}
	if e.Attachments != nil {
		dup.Attachments = append([]string(nil), e.Attachments...)
	}
	if e.Reminders != nil {
		dup.Reminders = append([]Reminder(nil), e.Reminders...)
	}
	if e.Recurrence != nil {
		rec := *e.Recurrence
		if e.Recurrence.EndDate != nil {
			recEnd := *e.Recurrence.EndDate
			rec.EndDate = &recEnd
		}
		if e.Recurrence.Count != nil {
			count := *e.Recurrence.Count
			rec.Count = &count
		}
		if e.Recurrence.DaysOfWeek != nil {
			rec.DaysOfWeek = append([]time.Weekday(nil), e.Recurrence.DaysOfWeek...)
		}
		if e.Recurrence.DayOfMonth != nil {
			dom := *e.Recurrence.DayOfMonth
			rec.DayOfMonth = &dom
		}
		dup.Recurrence = &rec
	}
	if e.SourceID != nil {
		src := *e.SourceID
		dup.SourceID = &src
	}
	if e.SourceType != nil {
		st := *e.SourceType
		dup.SourceType = &st
	}
	return &dup
}

// ValidType reports whether t is a known event type.
func ValidType(t EventType) bool {
	switch t {
	case EventTypeTask, EventTypeCheckup, EventTypeMood, EventTypeFetalMovement,
		EventTypeCustom, EventTypeReminder, EventTypeMilestone:
		return true
	}
	return false
}

func ValidCategory(c EventCategory) bool {
	switch c {
	case EventCategoryMedical, EventCategoryPersonal, EventCategoryFamily,
		EventCategoryHealth, EventCategoryPreparation, EventCategoryOther:
		return true
	}
	return false
}

func ValidPriority(p EventPriority) bool {
	switch p {
	case EventPriorityLow, EventPriorityMedium, EventPriorityHigh, EventPriorityUrgent:
		return true
	}
	return false
}

func ValidStatus(s EventStatus) bool {
	switch s {
	case EventStatusPending, EventStatusInProgress, EventStatusCompleted, EventStatusCancelled:
		return true
	}
	return false
}
