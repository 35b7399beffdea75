package service

import (
	"context"
	"time"

	"bump-planner/core/constants"
	"bump-planner/core/errors"
	eventDto "bump-planner/modules/event/dto"
	eventEntity "bump-planner/modules/event/entity"
	eventService "bump-planner/modules/event/service"
	"bump-planner/modules/view/dto"
)

// ViewService builds calendar views on top of the event range queries.
type ViewService struct {
	events eventService.EventServiceInterface

	// Now is swappable for tests.
	Now func() time.Time
}

// ViewServiceInterface defines the service contract
type ViewServiceInterface interface {
	MonthView(ctx context.Context, year int, month time.Month) (*dto.MonthViewData, *errors.AppError)
	WeekView(ctx context.Context, date time.Time) (*dto.WeekViewData, *errors.AppError)
	AgendaView(ctx context.Context, days int) (*dto.AgendaView, *errors.AppError)
}

// NewViewService creates a new view service
func NewViewService(events eventService.EventServiceInterface) *ViewService {
	return &ViewService{
		events: events,
		Now:    time.Now,
	}
}

// MonthView computes the display grid for the given month. The grid runs from
// the Sunday on or before the 1st to the Saturday on or after the last day of
// the month, so its length is always a multiple of seven.
func (s *ViewService) MonthView(ctx context.Context, year int, month time.Month) (*dto.MonthViewData, *errors.AppError) {
	if month < time.January || month > time.December {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Month must be between 1 and 12", nil)
	}

	now := s.Now()
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	gridStart := firstOfMonth.AddDate(0, 0, -int(firstOfMonth.Weekday()))
	gridEnd := lastOfMonth.AddDate(0, 0, int(time.Saturday-lastOfMonth.Weekday()))

	_, windowEnd := eventService.DayBounds(gridEnd)
	events, appErr := s.events.Range(ctx, gridStart, windowEnd, nil)
	if appErr != nil {
		return nil, appErr
	}

	view := &dto.MonthViewData{
		Year:  year,
		Month: int(month),
	}
	today := midnight(now)

	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		dayEvents := eventsOnDay(events, day)
		cell := dto.MonthDay{
			Date:           day,
			IsCurrentMonth: day.Month() == month,
			IsToday:        day.Equal(today),
			HasEvents:      len(dayEvents) > 0,
			Events:         eventDto.ToEventResponses(dayEvents),
		}
		if over := len(dayEvents) - constants.MonthCellMaxVisible; over > 0 {
			cell.MoreCount = over
		}
		view.Days = append(view.Days, cell)
	}
	return view, nil
}

// WeekView resolves the Sunday-start week containing date and buckets each
// day's non-all-day events by start hour.
func (s *ViewService) WeekView(ctx context.Context, date time.Time) (*dto.WeekViewData, *errors.AppError) {
	day := midnight(date)
	weekStart := day.AddDate(0, 0, -int(day.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 6)

	_, windowEnd := eventService.DayBounds(weekEnd)
	events, appErr := s.events.Range(ctx, weekStart, windowEnd, nil)
	if appErr != nil {
		return nil, appErr
	}

	view := &dto.WeekViewData{Start: weekStart}
	for d := weekStart; !d.After(weekEnd); d = d.AddDate(0, 0, 1) {
		weekDay := dto.WeekDay{Date: d}
		for _, ev := range eventsOnDay(events, d) {
			resp := *eventDto.ToEventResponse(&ev)
			if ev.AllDay {
				weekDay.AllDayEvents = append(weekDay.AllDayEvents, resp)
				continue
			}
			hour := hourOnDay(&ev, d)
			weekDay.Hours[hour] = append(weekDay.Hours[hour], resp)
		}
		view.Days = append(view.Days, weekDay)
	}
	return view, nil
}

// AgendaView groups the upcoming-events feed by calendar day.
func (s *ViewService) AgendaView(ctx context.Context, days int) (*dto.AgendaView, *errors.AppError) {
	if days <= 0 {
		days = constants.UpcomingDefaultDays
	}

	events, appErr := s.events.GetUpcomingEvents(ctx, days, 0)
	if appErr != nil {
		return nil, appErr
	}

	now := s.Now()
	view := &dto.AgendaView{
		From: now,
		To:   now.AddDate(0, 0, days),
	}
	for i := range events {
		ev := &events[i]
		day := midnight(ev.StartDate)
		if n := len(view.Days); n > 0 && view.Days[n-1].Date.Equal(day) {
			view.Days[n-1].Events = append(view.Days[n-1].Events, *eventDto.ToEventResponse(ev))
			continue
		}
		view.Days = append(view.Days, dto.AgendaDay{
			Date:   day,
			Events: []eventDto.EventResponse{*eventDto.ToEventResponse(ev)},
		})
	}
	return view, nil
}

// ===================== Helpers =====================

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// eventsOnDay selects the events whose interval touches the given day,
// preserving order.
func eventsOnDay(events []eventEntity.CalendarEvent, day time.Time) []eventEntity.CalendarEvent {
	start, end := eventService.DayBounds(day)
	out := make([]eventEntity.CalendarEvent, 0)
	for i := range events {
		if events[i].Intersects(start, end) {
			out = append(out, events[i])
		}
	}
	return out
}

// hourOnDay is the display hour for an event on a given day: its start hour
// on the day it starts, midnight on the following days of a multi-day span.
func hourOnDay(ev *eventEntity.CalendarEvent, day time.Time) int {
	if midnight(ev.StartDate).Equal(day) {
		return ev.StartDate.Hour()
	}
	return 0
}
