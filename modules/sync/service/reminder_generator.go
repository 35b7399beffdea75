package service

import (
	"context"
	"fmt"
	"time"

	"bump-planner/core/constants"
	"bump-planner/core/errors"
	"bump-planner/core/logger"
	"bump-planner/core/utils"
	eventEntity "bump-planner/modules/event/entity"
	"bump-planner/modules/sync/dto"
)

// reminderSlot is one fixed daily reminder time.
type reminderSlot struct {
	key             string
	hour            int
	title           string
	message         string
	eventType       eventEntity.EventType
	durationMinutes int
}

func reminderSlots() []reminderSlot {
	return []reminderSlot{
		{
			key:             "mood-evening",
			hour:            constants.MoodReminderHour,
			title:           "Evening mood check-in",
			message:         "How are you feeling today?",
			eventType:       eventEntity.EventTypeMood,
			durationMinutes: 10,
		},
		{
			key:             "fetal-morning",
			hour:            constants.FetalMovementMorningHour,
			title:           "Morning kick count",
			message:         "Time to count fetal movements",
			eventType:       eventEntity.EventTypeFetalMovement,
			durationMinutes: 60,
		},
		{
			key:             "fetal-evening",
			hour:            constants.FetalMovementEveningHour,
			title:           "Evening kick count",
			message:         "Time to count fetal movements",
			eventType:       eventEntity.EventTypeFetalMovement,
			durationMinutes: 60,
		},
	}
}

// GenerateDailyReminders creates today's time-anchored mood and
// fetal-movement reminder events, skipping times of day that have already
// passed. Each reminder's source id is scoped to the calendar day, so running
// twice on the same day creates nothing new while the next day produces a
// fresh set. This is deliberately a separate operation from SyncSources,
// whose imports are idempotent across days.
func (s *SyncService) GenerateDailyReminders(ctx context.Context) (*dto.ReminderReport, *errors.AppError) {
	now := s.Now()
	day := now.Format("2006-01-02")
	report := &dto.ReminderReport{Date: day}

	for _, slot := range reminderSlots() {
		at := time.Date(now.Year(), now.Month(), now.Day(), slot.hour, 0, 0, 0, now.Location())
		if at.Before(now) {
			report.Skipped++
			continue
		}

		sourceID := fmt.Sprintf("%s-%s", slot.key, day)
		existing, err := s.events.GetBySource(ctx, sourceID, SourceTypeReminder)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrSyncFailed, "Failed to look up reminder", err)
		}
		if existing != nil {
			report.Skipped++
			continue
		}

		end := at.Add(time.Duration(slot.durationMinutes) * time.Minute)
		srcID := sourceID
		sourceType := SourceTypeReminder
		ev := &eventEntity.CalendarEvent{
			Title:     slot.title,
			StartDate: at,
			EndDate:   &end,
			Type:      slot.eventType,
			Category:  eventEntity.EventCategoryHealth,
			Priority:  eventEntity.EventPriorityMedium,
			Status:    eventEntity.EventStatusPending,
			Color:     "#9C27B0",
			Reminders: []eventEntity.Reminder{
				{ID: utils.GenerateID(), Type: "notification", MinutesBefore: 0, Message: slot.message},
			},
			SourceID:   &srcID,
			SourceType: &sourceType,
			CreatedBy:  "sync",
		}

		if _, err := s.events.Create(ctx, ev); err != nil {
			return nil, errors.NewAppError(errors.ErrSyncFailed, "Failed to create reminder event", err)
		}
		report.Created++
	}

	logger.Info("SyncService:GenerateDailyReminders:Done", "date", day, "created", report.Created, "skipped", report.Skipped)
	return report, nil
}
