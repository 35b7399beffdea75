package source

import (
	"context"
	"time"
)

// TaskRecord is the shape of a task as published by the task collaborator.
type TaskRecord struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	CreatedBy   string     `json:"created_by"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// CheckupRecord is one entry of the prenatal checkup schedule.
type CheckupRecord struct {
	ID                string   `json:"id"`
	Week              int      `json:"week"`
	Title             string   `json:"title"`
	Items             []string `json:"items"`
	Preparation       []string `json:"preparation"`
	Importance        string   `json:"importance"` // low | medium | high
	EstimatedDuration int      `json:"estimated_duration"` // minutes
}

// TaskSource reads tasks from the owning collaborator.
type TaskSource interface {
	ListTasks(ctx context.Context) ([]TaskRecord, error)
}

// CheckupSource reads the checkup schedule.
type CheckupSource interface {
	ListSchedule(ctx context.Context) ([]CheckupRecord, error)
}
