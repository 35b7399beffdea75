package entity

import (
	eventEntity "bump-planner/modules/event/entity"
)

// WeekRange is an inclusive pregnancy-week applicability window.
type WeekRange struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Contains reports whether week falls inside the window.
func (w *WeekRange) Contains(week int) bool {
	return week >= w.From && week <= w.To
}

// EventTemplate is a reusable event blueprint. Templates with a nil Weeks
// window apply to the whole pregnancy.
type EventTemplate struct {
	ID              string                    `json:"id"`
	Title           string                    `json:"title"`
	Description     string                    `json:"description,omitempty"`
	Type            eventEntity.EventType     `json:"type"`
	Category        eventEntity.EventCategory `json:"category"`
	Priority        eventEntity.EventPriority `json:"priority"`
	DurationMinutes int                       `json:"duration_minutes"`
	Color           string                    `json:"color,omitempty"`
	Reminders       []eventEntity.Reminder    `json:"reminders,omitempty"`
	Weeks           *WeekRange                `json:"weeks,omitempty"`
	Builtin         bool                      `json:"builtin"`
}
