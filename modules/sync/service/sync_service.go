package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bump-planner/core/constants"
	"bump-planner/core/errors"
	"bump-planner/core/logger"
	eventEntity "bump-planner/modules/event/entity"
	eventRepository "bump-planner/modules/event/repository"
	"bump-planner/modules/sync/dto"
	"bump-planner/modules/sync/source"
)

const (
	SourceTypeTask     = "task"
	SourceTypeCheckup  = "checkup"
	SourceTypeReminder = "reminder"
)

// taskCategoryMap remaps task categories onto event categories. Anything not
// listed lands in family.
var taskCategoryMap = map[string]eventEntity.EventCategory{
	"medical":  eventEntity.EventCategoryMedical,
	"shopping": eventEntity.EventCategoryPreparation,
	"care":     eventEntity.EventCategoryHealth,
}

// SyncService derives calendar events from the external collaborators. Source
// imports are idempotent per (sourceID, sourceType); reminder generation is a
// separate, date-scoped operation (see reminder_generator.go).
type SyncService struct {
	events   eventRepository.EventRepositoryInterface
	tasks    source.TaskSource
	checkups source.CheckupSource

	// pregnancyStart anchors gestational-week arithmetic.
	pregnancyStart time.Time

	// Now is swappable for tests.
	Now func() time.Time
}

// SyncServiceInterface defines the service contract
type SyncServiceInterface interface {
	SyncSources(ctx context.Context) *dto.SyncReport
	ImportTasks(ctx context.Context) (imported, skipped int, err error)
	ImportCheckups(ctx context.Context) (imported, skipped int, err error)
	GenerateDailyReminders(ctx context.Context) (*dto.ReminderReport, *errors.AppError)
	CurrentWeek() int
}

// NewSyncService creates a sync service. tasks may be nil when no task
// collaborator is configured.
func NewSyncService(
	events eventRepository.EventRepositoryInterface,
	tasks source.TaskSource,
	checkups source.CheckupSource,
	pregnancyStart time.Time,
) *SyncService {
	return &SyncService{
		events:         events,
		tasks:          tasks,
		checkups:       checkups,
		pregnancyStart: pregnancyStart,
		Now:            time.Now,
	}
}

// CurrentWeek returns the gestational week for "now" (week 1 starts on the
// pregnancy start date). Zero when no anchor is configured.
func (s *SyncService) CurrentWeek() int {
	if s.pregnancyStart.IsZero() {
		return 0
	}
	days := int(s.Now().Sub(s.pregnancyStart).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days/7 + 1
}

// SyncSources runs one import pass per collaborator. Each source is
// best-effort: a failure is recorded in the report and logged, and the
// remaining sources still run.
func (s *SyncService) SyncSources(ctx context.Context) *dto.SyncReport {
	report := &dto.SyncReport{StartedAt: s.Now()}

	imported, skipped, err := s.ImportTasks(ctx)
	report.Results = append(report.Results, sourceResult("tasks", imported, skipped, err))

	imported, skipped, err = s.ImportCheckups(ctx)
	report.Results = append(report.Results, sourceResult("checkups", imported, skipped, err))

	return report
}

func sourceResult(name string, imported, skipped int, err error) dto.SourceResult {
	result := dto.SourceResult{Source: name, Imported: imported, Skipped: skipped}
	if err != nil {
		logger.Error("SyncService:SyncSources:SourceFailed", "source", name, "error", err)
		result.Error = err.Error()
	} else {
		logger.Info("SyncService:SyncSources:SourceDone", "source", name, "imported", imported, "skipped", skipped)
	}
	return result
}

// ImportTasks derives one all-day event per task that carries a due date.
// Re-running is a no-op for tasks already imported.
func (s *SyncService) ImportTasks(ctx context.Context) (int, int, error) {
	if s.tasks == nil {
		return 0, 0, nil
	}

	tasks, err := s.tasks.ListTasks(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("list tasks: %w", err)
	}

	imported, skipped := 0, 0
	for _, task := range tasks {
		if task.DueDate == nil {
			skipped++
			continue
		}

		existing, err := s.events.GetBySource(ctx, task.ID, SourceTypeTask)
		if err != nil {
			return imported, skipped, fmt.Errorf("lookup task %s: %w", task.ID, err)
		}
		if existing != nil {
			skipped++
			continue
		}

		sourceID := task.ID
		sourceType := SourceTypeTask
		ev := &eventEntity.CalendarEvent{
			Title:       task.Title,
			Description: task.Description,
			StartDate:   *task.DueDate,
			AllDay:      true,
			Type:        eventEntity.EventTypeTask,
			Category:    mapTaskCategory(task.Category),
			Priority:    mapPriority(task.Priority),
			Status:      mapStatus(task.Status),
			Color:       "#607D8B",
			SourceID:    &sourceID,
			SourceType:  &sourceType,
			CreatedBy:   task.CreatedBy,
		}

		if _, err := s.events.Create(ctx, ev); err != nil {
			return imported, skipped, fmt.Errorf("create event for task %s: %w", task.ID, err)
		}
		imported++
	}
	return imported, skipped, nil
}

// ImportCheckups derives one appointment per schedule entry, dated from the
// pregnancy anchor. Re-running is a no-op for entries already imported.
func (s *SyncService) ImportCheckups(ctx context.Context) (int, int, error) {
	if s.checkups == nil {
		return 0, 0, nil
	}
	if s.pregnancyStart.IsZero() {
		return 0, 0, fmt.Errorf("pregnancy start date not configured")
	}

	schedule, err := s.checkups.ListSchedule(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("list checkup schedule: %w", err)
	}

	imported, skipped := 0, 0
	for _, checkup := range schedule {
		existing, err := s.events.GetBySource(ctx, checkup.ID, SourceTypeCheckup)
		if err != nil {
			return imported, skipped, fmt.Errorf("lookup checkup %s: %w", checkup.ID, err)
		}
		if existing != nil {
			skipped++
			continue
		}

		start := s.checkupDate(checkup.Week)
		duration := checkup.EstimatedDuration
		if duration <= 0 {
			duration = 60
		}
		end := start.Add(time.Duration(duration) * time.Minute)

		var notes *string
		if len(checkup.Preparation) > 0 {
			joined := "Preparation: " + strings.Join(checkup.Preparation, "; ")
			notes = &joined
		}

		sourceID := checkup.ID
		sourceType := SourceTypeCheckup
		ev := &eventEntity.CalendarEvent{
			Title:       checkup.Title,
			Description: strings.Join(checkup.Items, ", "),
			StartDate:   start,
			EndDate:     &end,
			Type:        eventEntity.EventTypeCheckup,
			Category:    eventEntity.EventCategoryMedical,
			Priority:    mapImportance(checkup.Importance),
			Status:      eventEntity.EventStatusPending,
			Color:       "#E91E63",
			Notes:       notes,
			Reminders: []eventEntity.Reminder{
				{Type: "notification", MinutesBefore: 24 * 60, Message: "Checkup tomorrow: " + checkup.Title},
			},
			SourceID:   &sourceID,
			SourceType: &sourceType,
			CreatedBy:  "sync",
		}

		if _, err := s.events.Create(ctx, ev); err != nil {
			return imported, skipped, fmt.Errorf("create event for checkup %s: %w", checkup.ID, err)
		}
		imported++
	}
	return imported, skipped, nil
}

// checkupDate places a gestational-week checkup on the first day of that week
// at the standard appointment hour.
func (s *SyncService) checkupDate(week int) time.Time {
	day := s.pregnancyStart.AddDate(0, 0, (week-1)*7)
	return time.Date(day.Year(), day.Month(), day.Day(), constants.CheckupStartHour, 0, 0, 0, day.Location())
}

func mapTaskCategory(category string) eventEntity.EventCategory {
	if mapped, ok := taskCategoryMap[category]; ok {
		return mapped
	}
	return eventEntity.EventCategoryFamily
}

func mapPriority(priority string) eventEntity.EventPriority {
	p := eventEntity.EventPriority(priority)
	if eventEntity.ValidPriority(p) {
		return p
	}
	return eventEntity.EventPriorityMedium
}

func mapStatus(status string) eventEntity.EventStatus {
	st := eventEntity.EventStatus(status)
	if eventEntity.ValidStatus(st) {
		return st
	}
	return eventEntity.EventStatusPending
}

func mapImportance(importance string) eventEntity.EventPriority {
	switch importance {
	case "high":
		return eventEntity.EventPriorityHigh
	case "medium":
		return eventEntity.EventPriorityMedium
	default:
		return eventEntity.EventPriorityLow
	}
}
