package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bump-planner/core/errors"
	"bump-planner/core/logger"
	"bump-planner/core/utils"
	eventDto "bump-planner/modules/event/dto"
	eventEntity "bump-planner/modules/event/entity"
	eventRepository "bump-planner/modules/event/repository"
	"bump-planner/modules/template/dto"
	"bump-planner/modules/template/entity"

	"github.com/gosimple/slug"
)

// allDayThresholdMinutes: templates with at least a full day of duration
// instantiate as all-day events.
const allDayThresholdMinutes = 1440

// TemplateService holds the template catalog and instantiates events from it.
type TemplateService struct {
	events eventRepository.EventRepositoryInterface

	mu        sync.RWMutex
	templates []entity.EventTemplate
}

// TemplateServiceInterface defines the service contract
type TemplateServiceInterface interface {
	GetTemplates(week *int) []dto.TemplateResponse
	GetTemplate(id string) *entity.EventTemplate
	Instantiate(ctx context.Context, createdBy string, req *dto.InstantiateRequest) (*eventDto.EventResponse, *errors.AppError)
	Register(req *dto.RegisterTemplateRequest) (*dto.TemplateResponse, *errors.AppError)
}

// NewTemplateService creates a template service seeded with the built-in
// catalog.
func NewTemplateService(events eventRepository.EventRepositoryInterface) *TemplateService {
	return &TemplateService{
		events:    events,
		templates: builtinTemplates(),
	}
}

// GetTemplates returns the catalog. With a week given, only templates whose
// applicability window contains that week are returned; templates without a
// window always apply.
func (s *TemplateService) GetTemplates(week *int) []dto.TemplateResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if week == nil {
		return dto.ToTemplateResponses(s.templates)
	}

	matched := make([]entity.EventTemplate, 0, len(s.templates))
	for _, t := range s.templates {
		if t.Weeks == nil || t.Weeks.Contains(*week) {
			matched = append(matched, t)
		}
	}
	return dto.ToTemplateResponses(matched)
}

// GetTemplate resolves a template by id; nil means unknown.
func (s *TemplateService) GetTemplate(id string) *entity.EventTemplate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.templates {
		if s.templates[i].ID == id {
			t := s.templates[i]
			return &t
		}
	}
	return nil
}

// Instantiate builds an event from the template at the requested time,
// applies overrides on top of the template defaults and stores the result.
// An unknown template id is a not-found outcome, not a server error.
func (s *TemplateService) Instantiate(ctx context.Context, createdBy string, req *dto.InstantiateRequest) (*eventDto.EventResponse, *errors.AppError) {
	if req.Date.IsZero() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Date is required", nil)
	}

	tmpl := s.GetTemplate(req.TemplateID)
	if tmpl == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Template not found", nil)
	}

	end := req.Date.Add(time.Duration(tmpl.DurationMinutes) * time.Minute)
	ev := &eventEntity.CalendarEvent{
		Title:       tmpl.Title,
		Description: tmpl.Description,
		StartDate:   req.Date,
		EndDate:     &end,
		AllDay:      tmpl.DurationMinutes >= allDayThresholdMinutes,
		Type:        tmpl.Type,
		Category:    tmpl.Category,
		Priority:    tmpl.Priority,
		Status:      eventEntity.EventStatusPending,
		Color:       tmpl.Color,
		CreatedBy:   createdBy,
	}
	for _, r := range tmpl.Reminders {
		r.ID = utils.GenerateID()
		ev.Reminders = append(ev.Reminders, r)
	}

	applyOverrides(ev, req.Overrides)
	if ev.EndDate != nil && ev.EndDate.Before(ev.StartDate) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "End date must not be before start date", nil)
	}

	created, err := s.events.Create(ctx, ev)
	if err != nil {
		logger.Error("TemplateService:Instantiate", "error", err, "template_id", req.TemplateID)
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create event from template", err)
	}

	return eventDto.ToEventResponse(created), nil
}

// Register adds a custom template with an id derived from its title.
func (s *TemplateService) Register(req *dto.RegisterTemplateRequest) (*dto.TemplateResponse, *errors.AppError) {
	if req.Title == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Title is required", nil)
	}
	if req.DurationMinutes < 1 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Duration must be at least one minute", nil)
	}

	tmpl := entity.EventTemplate{
		Title:           req.Title,
		Description:     req.Description,
		Type:            eventEntity.EventTypeCustom,
		Category:        eventEntity.EventCategoryPersonal,
		Priority:        eventEntity.EventPriorityMedium,
		DurationMinutes: req.DurationMinutes,
		Color:           req.Color,
		Reminders:       req.Reminders,
		Weeks:           req.Weeks,
	}

	if req.Type != "" {
		t := eventEntity.EventType(req.Type)
		if !eventEntity.ValidType(t) {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown event type", nil)
		}
		tmpl.Type = t
	}
	if req.Category != "" {
		c := eventEntity.EventCategory(req.Category)
		if !eventEntity.ValidCategory(c) {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown event category", nil)
		}
		tmpl.Category = c
	}
	if req.Priority != "" {
		p := eventEntity.EventPriority(req.Priority)
		if !eventEntity.ValidPriority(p) {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown event priority", nil)
		}
		tmpl.Priority = p
	}
	if req.Weeks != nil && req.Weeks.From > req.Weeks.To {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Week range start must not exceed its end", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmpl.ID = s.uniqueID(slug.Make(req.Title))
	s.templates = append(s.templates, tmpl)

	return dto.ToTemplateResponse(&tmpl), nil
}

// uniqueID appends a numeric suffix until the slug is free. Callers hold the
// write lock.
func (s *TemplateService) uniqueID(base string) string {
	if base == "" {
		base = "template"
	}
	id := base
	for n := 2; s.hasID(id); n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	return id
}

func (s *TemplateService) hasID(id string) bool {
	for i := range s.templates {
		if s.templates[i].ID == id {
			return true
		}
	}
	return false
}

func applyOverrides(ev *eventEntity.CalendarEvent, ov *dto.TemplateOverrides) {
	if ov == nil {
		return
	}
	if ov.Title != nil {
		ev.Title = *ov.Title
	}
	if ov.Description != nil {
		ev.Description = *ov.Description
	}
	if ov.Category != nil {
		ev.Category = *ov.Category
	}
	if ov.Priority != nil {
		ev.Priority = *ov.Priority
	}
	if ov.Color != nil {
		ev.Color = *ov.Color
	}
	if ov.Location != nil {
		ev.Location = ov.Location
	}
	if ov.Notes != nil {
		ev.Notes = ov.Notes
	}
	if ov.AllDay != nil {
		ev.AllDay = *ov.AllDay
	}
	if ov.EndDate != nil {
		ev.EndDate = ov.EndDate
	}
	if ov.Reminders != nil {
		ev.Reminders = ov.Reminders
	}
}
