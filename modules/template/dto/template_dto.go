package dto

import (
	"time"

	eventEntity "bump-planner/modules/event/entity"
	"bump-planner/modules/template/entity"
)

// ===================== Request DTOs =====================

// InstantiateRequest creates an event from a template at the given time.
type InstantiateRequest struct {
	TemplateID string             `json:"template_id" validate:"required"`
	Date       time.Time          `json:"date" validate:"required"`
	Overrides  *TemplateOverrides `json:"overrides"`
}

// TemplateOverrides are applied on top of the template defaults; set fields
// win over the template.
type TemplateOverrides struct {
	Title       *string                    `json:"title"`
	Description *string                    `json:"description"`
	Category    *eventEntity.EventCategory `json:"category"`
	Priority    *eventEntity.EventPriority `json:"priority"`
	Color       *string                    `json:"color"`
	Location    *string                    `json:"location"`
	Notes       *string                    `json:"notes"`
	AllDay      *bool                      `json:"all_day"`
	EndDate     *time.Time                 `json:"end_date"`
	Reminders   []eventEntity.Reminder     `json:"reminders"`
}

// RegisterTemplateRequest adds a custom template to the catalog.
type RegisterTemplateRequest struct {
	Title           string                 `json:"title" validate:"required"`
	Description     string                 `json:"description"`
	Type            string                 `json:"type"`
	Category        string                 `json:"category"`
	Priority        string                 `json:"priority"`
	DurationMinutes int                    `json:"duration_minutes" validate:"required,min=1"`
	Color           string                 `json:"color"`
	Reminders       []eventEntity.Reminder `json:"reminders"`
	Weeks           *entity.WeekRange      `json:"weeks"`
}

// ===================== Response DTOs =====================

type TemplateResponse struct {
	ID              string                 `json:"id"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description,omitempty"`
	Type            string                 `json:"type"`
	Category        string                 `json:"category"`
	Priority        string                 `json:"priority"`
	DurationMinutes int                    `json:"duration_minutes"`
	Color           string                 `json:"color,omitempty"`
	Reminders       []eventEntity.Reminder `json:"reminders,omitempty"`
	Weeks           *entity.WeekRange      `json:"weeks,omitempty"`
	Builtin         bool                   `json:"builtin"`
}

// ===================== Mapper Functions =====================

func ToTemplateResponse(t *entity.EventTemplate) *TemplateResponse {
	return &TemplateResponse{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Type:            string(t.Type),
		Category:        string(t.Category),
		Priority:        string(t.Priority),
		DurationMinutes: t.DurationMinutes,
		Color:           t.Color,
		Reminders:       t.Reminders,
		Weeks:           t.Weeks,
		Builtin:         t.Builtin,
	}
}

func ToTemplateResponses(templates []entity.EventTemplate) []TemplateResponse {
	out := make([]TemplateResponse, 0, len(templates))
	for i := range templates {
		out = append(out, *ToTemplateResponse(&templates[i]))
	}
	return out
}
