package dto

import (
	"time"

	eventDto "bump-planner/modules/event/dto"
)

// MonthDay is one cell of the month grid. Events is the full day's list; the
// UI caps visible dots and shows MoreCount as "+N more".
type MonthDay struct {
	Date           time.Time                `json:"date"`
	IsCurrentMonth bool                     `json:"is_current_month"`
	IsToday        bool                     `json:"is_today"`
	HasEvents      bool                     `json:"has_events"`
	Events         []eventDto.EventResponse `json:"events"`
	MoreCount      int                      `json:"more_count"`
}

// MonthViewData is the full display grid for one month: the Sunday on or
// before the 1st through the Saturday on or after the last day, always a
// whole number of weeks.
type MonthViewData struct {
	Year  int        `json:"year"`
	Month int        `json:"month"` // 1-12
	Days  []MonthDay `json:"days"`
}

// WeekDay buckets one day of the week view. Non-all-day events are grouped by
// start hour for the hourly grid.
type WeekDay struct {
	Date         time.Time                    `json:"date"`
	AllDayEvents []eventDto.EventResponse     `json:"all_day_events"`
	Hours        [24][]eventDto.EventResponse `json:"hours"`
}

// WeekViewData is a Sunday-start week.
type WeekViewData struct {
	Start time.Time `json:"start"`
	Days  []WeekDay `json:"days"`
}

// AgendaDay groups upcoming events by calendar day.
type AgendaDay struct {
	Date   time.Time                `json:"date"`
	Events []eventDto.EventResponse `json:"events"`
}

// AgendaView is the flat date-grouped upcoming list.
type AgendaView struct {
	From time.Time   `json:"from"`
	To   time.Time   `json:"to"`
	Days []AgendaDay `json:"days"`
}
