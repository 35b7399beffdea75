package service

import (
	"context"
	"strings"
	"time"

	"bump-planner/core/constants"
	"bump-planner/core/errors"
	"bump-planner/modules/event/dto"
	"bump-planner/modules/event/entity"
)

// Range returns every event whose interval intersects [start, end] with both
// boundaries inclusive, after applying the optional allow-list filter.
// Results keep the store's start-date ordering.
func (s *EventService) Range(ctx context.Context, start, end time.Time, filter *dto.EventFilter) ([]entity.CalendarEvent, *errors.AppError) {
	if end.Before(start) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Range end must not be before range start", nil)
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list events", err)
	}

	out := make([]entity.CalendarEvent, 0, len(all))
	for i := range all {
		ev := &all[i]
		if !ev.Intersects(start, end) {
			continue
		}
		if !filter.Matches(ev) {
			continue
		}
		out = append(out, *ev)
	}
	return out, nil
}

// EventsForDate is Range over the calendar day containing date.
func (s *EventService) EventsForDate(ctx context.Context, date time.Time) ([]entity.CalendarEvent, *errors.AppError) {
	start, end := DayBounds(date)
	return s.Range(ctx, start, end, nil)
}

// GetEvents is the DTO-returning form of Range for the HTTP layer.
func (s *EventService) GetEvents(ctx context.Context, start, end time.Time, filter *dto.EventFilter) ([]dto.EventResponse, *errors.AppError) {
	events, appErr := s.Range(ctx, start, end, filter)
	if appErr != nil {
		return nil, appErr
	}
	return dto.ToEventResponses(events), nil
}

// SearchEvents matches the query case-insensitively against title,
// description and notes. A non-nil start and end pre-restrict the scan to
// that window, otherwise the whole store is searched.
func (s *EventService) SearchEvents(ctx context.Context, query string, start, end *time.Time) ([]dto.EventResponse, *errors.AppError) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Search query is required", nil)
	}

	var events []entity.CalendarEvent
	if start != nil && end != nil {
		ranged, appErr := s.Range(ctx, *start, *end, nil)
		if appErr != nil {
			return nil, appErr
		}
		events = ranged
	} else {
		all, err := s.repo.List(ctx)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list events", err)
		}
		events = all
	}

	matched := make([]entity.CalendarEvent, 0)
	for i := range events {
		ev := &events[i]
		if strings.Contains(strings.ToLower(ev.Title), q) ||
			strings.Contains(strings.ToLower(ev.Description), q) ||
			(ev.Notes != nil && strings.Contains(strings.ToLower(*ev.Notes), q)) {
			matched = append(matched, *ev)
		}
	}
	return dto.ToEventResponses(matched), nil
}

// GetUpcomingEvents returns the earliest still-actionable events starting
// within the next `days` days. Zero values fall back to the defaults
// (7 days, 10 events).
func (s *EventService) GetUpcomingEvents(ctx context.Context, days, limit int) ([]entity.CalendarEvent, *errors.AppError) {
	if days <= 0 {
		days = constants.UpcomingDefaultDays
	}
	if limit <= 0 || limit > constants.UpcomingMaxEvents {
		limit = constants.UpcomingMaxEvents
	}

	now := s.Now()
	filter := &dto.EventFilter{
		Statuses: []entity.EventStatus{entity.EventStatusPending, entity.EventStatusInProgress},
	}
	events, appErr := s.Range(ctx, now, now.AddDate(0, 0, days), filter)
	if appErr != nil {
		return nil, appErr
	}
	if len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

// GetTodaySummary counts today's events. The upcoming/overdue split compares
// start times against "now" only; status is irrelevant to it beyond
// excluding completed and cancelled events.
func (s *EventService) GetTodaySummary(ctx context.Context) (*dto.TodaySummary, *errors.AppError) {
	now := s.Now()
	events, appErr := s.EventsForDate(ctx, now)
	if appErr != nil {
		return nil, appErr
	}

	summary := &dto.TodaySummary{
		Date:        now.Format("2006-01-02"),
		TotalEvents: len(events),
	}
	for i := range events {
		ev := &events[i]
		switch ev.Status {
		case entity.EventStatusCompleted:
			summary.CompletedEvents++
		case entity.EventStatusPending, entity.EventStatusInProgress:
			summary.PendingEvents++
		}
		if !ev.IsActionable() {
			continue
		}
		if ev.StartDate.After(now) {
			summary.UpcomingEvents++
		} else {
			summary.OverdueEvents++
		}
	}
	return summary, nil
}

// DayBounds returns the inclusive bounds of the calendar day containing t.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
	return start, end
}
