package service

import (
	"context"
	"time"

	"bump-planner/core/errors"
	"bump-planner/core/logger"
	"bump-planner/core/utils"
	"bump-planner/modules/event/dto"
	"bump-planner/modules/event/entity"
	"bump-planner/modules/event/repository"

	"github.com/google/uuid"
)

// EventService owns event CRUD and every read query layered on the store.
type EventService struct {
	repo repository.EventRepositoryInterface

	// Now is swappable for tests.
	Now func() time.Time
}

// EventServiceInterface defines the service contract
type EventServiceInterface interface {
	CreateEvent(ctx context.Context, createdBy string, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError)
	GetEvent(ctx context.Context, id uuid.UUID) (*dto.EventResponse, *errors.AppError)
	UpdateEvent(ctx context.Context, id uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError)
	DeleteEvent(ctx context.Context, id uuid.UUID) *errors.AppError

	Range(ctx context.Context, start, end time.Time, filter *dto.EventFilter) ([]entity.CalendarEvent, *errors.AppError)
	EventsForDate(ctx context.Context, date time.Time) ([]entity.CalendarEvent, *errors.AppError)
	GetEvents(ctx context.Context, start, end time.Time, filter *dto.EventFilter) ([]dto.EventResponse, *errors.AppError)
	SearchEvents(ctx context.Context, query string, start, end *time.Time) ([]dto.EventResponse, *errors.AppError)
	GetUpcomingEvents(ctx context.Context, days, limit int) ([]entity.CalendarEvent, *errors.AppError)
	GetTodaySummary(ctx context.Context) (*dto.TodaySummary, *errors.AppError)
}

// NewEventService creates a new event service
func NewEventService(repo repository.EventRepositoryInterface) *EventService {
	return &EventService{
		repo: repo,
		Now:  time.Now,
	}
}

// CreateEvent validates and stores a user-authored event.
func (s *EventService) CreateEvent(ctx context.Context, createdBy string, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError) {
	if req.Title == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Title is required", nil)
	}
	if req.StartDate.IsZero() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Start date is required", nil)
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "End date must not be before start date", nil)
	}

	ev := &entity.CalendarEvent{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		AllDay:      req.AllDay,
		Type:        entity.EventTypeCustom,
		Category:    entity.EventCategoryPersonal,
		Priority:    entity.EventPriorityMedium,
		Status:      entity.EventStatusPending,
		Color:       req.Color,
		Location:    req.Location,
		Notes:       req.Notes,
		Attachments: req.Attachments,
		Recurrence:  req.Recurrence,
		CreatedBy:   createdBy,
	}

	if req.Type != "" {
		t := entity.EventType(req.Type)
		if !entity.ValidType(t) {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown event type", nil)
		}
		ev.Type = t
	}
	if req.Category != "" {
		c := entity.EventCategory(req.Category)
		if !entity.ValidCategory(c) {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown event category", nil)
		}
		ev.Category = c
	}
	if req.Priority != "" {
		p := entity.EventPriority(req.Priority)
		if !entity.ValidPriority(p) {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown event priority", nil)
		}
		ev.Priority = p
	}
	ev.Reminders = toReminders(req.Reminders)

	created, err := s.repo.Create(ctx, ev)
	if err != nil {
		logger.Error("EventService:CreateEvent", "error", err)
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create event", err)
	}

	return dto.ToEventResponse(created), nil
}

// GetEvent retrieves a single event by id.
func (s *EventService) GetEvent(ctx context.Context, id uuid.UUID) (*dto.EventResponse, *errors.AppError) {
	ev, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get event", err)
	}
	if ev == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	return dto.ToEventResponse(ev), nil
}

// UpdateEvent merges the non-nil request fields onto the stored event.
func (s *EventService) UpdateEvent(ctx context.Context, id uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError) {
	ev, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get event", err)
	}
	if ev == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Title must not be empty", nil)
		}
		ev.Title = *req.Title
	}
	if req.Description != nil {
		ev.Description = *req.Description
	}
	if req.StartDate != nil {
		ev.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		ev.EndDate = req.EndDate
	}
	if ev.EndDate != nil && ev.EndDate.Before(ev.StartDate) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "End date must not be before start date", nil)
	}
	if req.AllDay != nil {
		ev.AllDay = *req.AllDay
	}
	if req.Type != nil {
		t := entity.EventType(*req.Type)
		if !entity.ValidType(t) {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown event type", nil)
		}
		ev.Type = t
	}
	if req.Category != nil {
		c := entity.EventCategory(*req.Category)
		if !entity.ValidCategory(c) {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown event category", nil)
		}
		ev.Category = c
	}
	if req.Priority != nil {
		p := entity.EventPriority(*req.Priority)
		if !entity.ValidPriority(p) {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown event priority", nil)
		}
		ev.Priority = p
	}
	if req.Status != nil {
		st := entity.EventStatus(*req.Status)
		if !entity.ValidStatus(st) {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown event status", nil)
		}
		ev.Status = st
	}
	if req.Color != nil {
		ev.Color = *req.Color
	}
	if req.Location != nil {
		ev.Location = req.Location
	}
	if req.Notes != nil {
		ev.Notes = req.Notes
	}
	if req.Attachments != nil {
		ev.Attachments = req.Attachments
	}
	if req.Reminders != nil {
		ev.Reminders = toReminders(req.Reminders)
	}
	if req.Recurrence != nil {
		ev.Recurrence = req.Recurrence
	}

	updated, err := s.repo.Update(ctx, ev)
	if err != nil {
		logger.Error("EventService:UpdateEvent", "error", err, "event_id", id)
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "Failed to update event", err)
	}
	if updated == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	return dto.ToEventResponse(updated), nil
}

// DeleteEvent removes an event by id.
func (s *EventService) DeleteEvent(ctx context.Context, id uuid.UUID) *errors.AppError {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "Failed to delete event", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	return nil
}

func toReminders(in []dto.ReminderDTO) []entity.Reminder {
	if in == nil {
		return nil
	}
	out := make([]entity.Reminder, 0, len(in))
	for _, r := range in {
		out = append(out, entity.Reminder{
			ID:            utils.GenerateID(),
			Type:          r.Type,
			MinutesBefore: r.MinutesBefore,
			Message:       r.Message,
		})
	}
	return out
}
