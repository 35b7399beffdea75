package dto

import "time"

// SourceResult reports one source's import pass.
type SourceResult struct {
	Source   string `json:"source"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
	Error    string `json:"error,omitempty"`
}

// SyncReport summarizes a full sync pass. A failed source appears with its
// error; it never aborts the others.
type SyncReport struct {
	StartedAt time.Time      `json:"started_at"`
	Results   []SourceResult `json:"results"`
}

// ReminderReport summarizes a reminder-generation pass.
type ReminderReport struct {
	Date    string `json:"date"`
	Created int    `json:"created"`
	Skipped int    `json:"skipped"`
}
