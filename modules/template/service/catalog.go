package service

import (
	eventEntity "bump-planner/modules/event/entity"
	"bump-planner/modules/template/entity"
)

// builtinTemplates is the fixed catalog shipped with the service. Durations
// of a full day or more instantiate as all-day events.
func builtinTemplates() []entity.EventTemplate {
	return []entity.EventTemplate{
		{
			ID:              "prenatal-checkup",
			Title:           "Prenatal checkup",
			Description:     "Regular appointment with the obstetrician",
			Type:            eventEntity.EventTypeCheckup,
			Category:        eventEntity.EventCategoryMedical,
			Priority:        eventEntity.EventPriorityHigh,
			DurationMinutes: 120,
			Color:           "#E91E63",
			Reminders: []eventEntity.Reminder{
				{Type: "notification", MinutesBefore: 24 * 60, Message: "Checkup tomorrow"},
				{Type: "notification", MinutesBefore: 60, Message: "Checkup in an hour"},
			},
			Builtin: true,
		},
		{
			ID:              "mood-check-in",
			Title:           "Mood check-in",
			Description:     "Take a minute to record how you feel today",
			Type:            eventEntity.EventTypeMood,
			Category:        eventEntity.EventCategoryHealth,
			Priority:        eventEntity.EventPriorityLow,
			DurationMinutes: 10,
			Color:           "#9C27B0",
			Reminders: []eventEntity.Reminder{
				{Type: "notification", MinutesBefore: 0, Message: "Time for your mood check-in"},
			},
			Builtin: true,
		},
		{
			ID:              "fetal-movement-session",
			Title:           "Fetal movement count",
			Description:     "Count kicks for one hour while resting",
			Type:            eventEntity.EventTypeFetalMovement,
			Category:        eventEntity.EventCategoryHealth,
			Priority:        eventEntity.EventPriorityMedium,
			DurationMinutes: 60,
			Color:           "#FF9800",
			Reminders: []eventEntity.Reminder{
				{Type: "notification", MinutesBefore: 10, Message: "Kick counting session coming up"},
			},
			// Counting is only meaningful once movements are regular.
			Weeks:   &entity.WeekRange{From: 28, To: 42},
			Builtin: true,
		},
		{
			ID:              "prenatal-exercise",
			Title:           "Prenatal exercise",
			Description:     "Light exercise: walking, yoga or swimming",
			Type:            eventEntity.EventTypeCustom,
			Category:        eventEntity.EventCategoryHealth,
			Priority:        eventEntity.EventPriorityMedium,
			DurationMinutes: 45,
			Color:           "#4CAF50",
			Weeks:           &entity.WeekRange{From: 12, To: 36},
			Builtin:         true,
		},
		{
			ID:              "supplement-intake",
			Title:           "Daily supplements",
			Description:     "Folic acid, iron and vitamin D",
			Type:            eventEntity.EventTypeReminder,
			Category:        eventEntity.EventCategoryHealth,
			Priority:        eventEntity.EventPriorityMedium,
			DurationMinutes: 1440,
			Color:           "#03A9F4",
			Reminders: []eventEntity.Reminder{
				{Type: "notification", MinutesBefore: 0, Message: "Don't forget your supplements"},
			},
			Builtin: true,
		},
	}
}
