package constants

const (
	ServerDefaultHost = "0.0.0.0"
	ServerDefaultPort = 7070

	TokenDefaultExpiryHours = 72

	// Month grid cells show at most this many event dots; the rest is
	// reported as a "+N more" count.
	MonthCellMaxVisible = 3

	// Agenda feed defaults.
	UpcomingDefaultDays = 7
	UpcomingMaxEvents   = 10

	// Time-of-day anchors for generated reminders (local hours).
	MoodReminderHour         = 20
	FetalMovementMorningHour = 9
	FetalMovementEveningHour = 21

	// Imported checkup appointments default to this local start hour.
	CheckupStartHour = 9

	SyncHTTPTimeoutSeconds = 15

	JobsDefaultReminderCron = "0 6 * * *"
	JobsDefaultSyncInterval = "@every 6h"
)
