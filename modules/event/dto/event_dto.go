package dto

import (
	"time"

	"bump-planner/modules/event/entity"
)

// ===================== Request DTOs =====================

// CreateEventRequest for creating a user-authored event
type CreateEventRequest struct {
	Title       string             `json:"title" validate:"required"`
	Description string             `json:"description"`
	StartDate   time.Time          `json:"start_date" validate:"required"`
	EndDate     *time.Time         `json:"end_date"`
	AllDay      bool               `json:"all_day"`
	Type        string             `json:"type"`
	Category    string             `json:"category"`
	Priority    string             `json:"priority"`
	Color       string             `json:"color"`
	Location    *string            `json:"location"`
	Notes       *string            `json:"notes"`
	Attachments []string           `json:"attachments"`
	Reminders   []ReminderDTO      `json:"reminders"`
	Recurrence  *entity.Recurrence `json:"recurrence"`
}

// UpdateEventRequest carries a partial update; nil fields are left untouched.
type UpdateEventRequest struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	StartDate   *time.Time         `json:"start_date"`
	EndDate     *time.Time         `json:"end_date"`
	AllDay      *bool              `json:"all_day"`
	Type        *string            `json:"type"`
	Category    *string            `json:"category"`
	Priority    *string            `json:"priority"`
	Status      *string            `json:"status"`
	Color       *string            `json:"color"`
	Location    *string            `json:"location"`
	Notes       *string            `json:"notes"`
	Attachments []string           `json:"attachments"`
	Reminders   []ReminderDTO      `json:"reminders"`
	Recurrence  *entity.Recurrence `json:"recurrence"`
}

// ReminderDTO for reminder entries on create/update
type ReminderDTO struct {
	Type          string `json:"type"`
	MinutesBefore int    `json:"minutes_before"`
	Message       string `json:"message"`
}

// EventFilter restricts range queries. Empty lists mean no restriction.
type EventFilter struct {
	Types      []entity.EventType
	Categories []entity.EventCategory
	Statuses   []entity.EventStatus
}

// Matches reports whether the event passes every non-empty allow-list.
func (f *EventFilter) Matches(ev *entity.CalendarEvent) bool {
	if f == nil {
		return true
	}
	if len(f.Types) > 0 && !containsType(f.Types, ev.Type) {
		return false
	}
	if len(f.Categories) > 0 && !containsCategory(f.Categories, ev.Category) {
		return false
	}
	if len(f.Statuses) > 0 && !containsStatus(f.Statuses, ev.Status) {
		return false
	}
	return true
}

func containsType(list []entity.EventType, v entity.EventType) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsCategory(list []entity.EventCategory, v entity.EventCategory) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsStatus(list []entity.EventStatus, v entity.EventStatus) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// ===================== Response DTOs =====================

// EventResponse for event details
type EventResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	StartDate   time.Time          `json:"start_date"`
	EndDate     *time.Time         `json:"end_date,omitempty"`
	AllDay      bool               `json:"all_day"`
	Type        string             `json:"type"`
	Category    string             `json:"category"`
	Priority    string             `json:"priority"`
	Status      string             `json:"status"`
	Color       string             `json:"color,omitempty"`
	Location    *string            `json:"location,omitempty"`
	Notes       *string            `json:"notes,omitempty"`
	Attachments []string           `json:"attachments,omitempty"`
	Reminders   []entity.Reminder  `json:"reminders,omitempty"`
	Recurrence  *entity.Recurrence `json:"recurrence,omitempty"`
	SourceID    *string            `json:"source_id,omitempty"`
	SourceType  *string            `json:"source_type,omitempty"`
	CreatedBy   string             `json:"created_by,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// TodaySummary counts today's events. Upcoming and overdue split the
// actionable events purely by start time against "now".
type TodaySummary struct {
	Date            string `json:"date"`
	TotalEvents     int    `json:"total_events"`
	CompletedEvents int    `json:"completed_events"`
	PendingEvents   int    `json:"pending_events"`
	UpcomingEvents  int    `json:"upcoming_events"`
	OverdueEvents   int    `json:"overdue_events"`
}

// ===================== Mapper Functions =====================

// ToEventResponse maps entity to DTO
func ToEventResponse(e *entity.CalendarEvent) *EventResponse {
	return &EventResponse{
		ID:          e.ID.String(),
		Title:       e.Title,
		Description: e.Description,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		AllDay:      e.AllDay,
		Type:        string(e.Type),
		Category:    string(e.Category),
		Priority:    string(e.Priority),
		Status:      string(e.Status),
		Color:       e.Color,
		Location:    e.Location,
		Notes:       e.Notes,
		Attachments: e.Attachments,
		Reminders:   e.Reminders,
		Recurrence:  e.Recurrence,
		SourceID:    e.SourceID,
		SourceType:  e.SourceType,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToEventResponses maps a slice of entities to DTOs
func ToEventResponses(events []entity.CalendarEvent) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for i := range events {
		out = append(out, *ToEventResponse(&events[i]))
	}
	return out
}
