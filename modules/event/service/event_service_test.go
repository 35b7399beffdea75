package service_test

import (
	"context"
	"testing"
	"time"

	"bump-planner/core/errors"
	"bump-planner/modules/event/dto"
	"bump-planner/modules/event/entity"
	"bump-planner/modules/event/repository"
	"bump-planner/modules/event/service"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestService() (*service.EventService, *repository.EventRepository) {
	repo := repository.NewEventRepository()
	svc := service.NewEventService(repo)
	svc.Now = func() time.Time { return testNow }
	return svc, repo
}

func seed(t *testing.T, repo *repository.EventRepository, title string, start time.Time, end *time.Time, status entity.EventStatus) *entity.CalendarEvent {
	t.Helper()
	created, err := repo.Create(context.Background(), &entity.CalendarEvent{
		Title:     title,
		StartDate: start,
		EndDate:   end,
		Type:      entity.EventTypeCustom,
		Category:  entity.EventCategoryPersonal,
		Priority:  entity.EventPriorityMedium,
		Status:    status,
	})
	if err != nil {
		t.Fatalf("seed %s: %v", title, err)
	}
	return created
}

func TestCreateEventValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, appErr := svc.CreateEvent(ctx, "user-1", &dto.CreateEventRequest{StartDate: testNow}); appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("expected invalid input for missing title, got %v", appErr)
	}

	end := testNow.Add(-time.Hour)
	req := &dto.CreateEventRequest{Title: "backwards", StartDate: testNow, EndDate: &end}
	if _, appErr := svc.CreateEvent(ctx, "user-1", req); appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("expected invalid input for end before start, got %v", appErr)
	}

	if _, appErr := svc.CreateEvent(ctx, "user-1", &dto.CreateEventRequest{Title: "bad type", StartDate: testNow, Type: "party"}); appErr == nil {
		t.Fatal("expected invalid input for unknown type")
	}
}

func TestCreateEventDefaults(t *testing.T) {
	svc, _ := newTestService()

	created, appErr := svc.CreateEvent(context.Background(), "user-1", &dto.CreateEventRequest{
		Title:     "pack hospital bag",
		StartDate: testNow,
	})
	if appErr != nil {
		t.Fatalf("create: %v", appErr)
	}
	if created.Type != "custom" || created.Category != "personal" || created.Priority != "medium" || created.Status != "pending" {
		t.Fatalf("unexpected defaults: %+v", created)
	}
	if created.CreatedBy != "user-1" {
		t.Fatalf("expected created_by user-1, got %s", created.CreatedBy)
	}
}

func TestUpdateEventPartialMerge(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	ev := seed(t, repo, "original", testNow, nil, entity.EventStatusPending)

	status := "completed"
	updated, appErr := svc.UpdateEvent(ctx, ev.ID, &dto.UpdateEventRequest{Status: &status})
	if appErr != nil {
		t.Fatalf("update: %v", appErr)
	}
	if updated.Status != "completed" {
		t.Fatalf("status not updated: %s", updated.Status)
	}
	if updated.Title != "original" {
		t.Fatal("untouched field was changed")
	}
}

func TestUpdateEventNotFound(t *testing.T) {
	svc, repo := newTestService()
	ev := seed(t, repo, "victim", testNow, nil, entity.EventStatusPending)
	if appErr := svc.DeleteEvent(context.Background(), ev.ID); appErr != nil {
		t.Fatalf("delete: %v", appErr)
	}

	title := "too late"
	_, appErr := svc.UpdateEvent(context.Background(), ev.ID, &dto.UpdateEventRequest{Title: &title})
	if appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Fatalf("expected not found, got %v", appErr)
	}
	if appErr := svc.DeleteEvent(context.Background(), ev.ID); appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Fatalf("expected not found on second delete, got %v", appErr)
	}
}

func TestRangeIntersection(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end1 := day.Add(4 * time.Hour)
	seed(t, repo, "spans-into-window", day.Add(2*time.Hour), &end1, entity.EventStatusPending)      // 02:00-04:00
	seed(t, repo, "instant-inside", day.Add(10*time.Hour), nil, entity.EventStatusPending)          // 10:00
	seed(t, repo, "starts-at-window-end", day.Add(12*time.Hour), nil, entity.EventStatusPending)    // 12:00
	seed(t, repo, "outside", day.Add(20*time.Hour), nil, entity.EventStatusPending)                 // 20:00

	events, appErr := svc.Range(ctx, day.Add(4*time.Hour), day.Add(12*time.Hour), nil)
	if appErr != nil {
		t.Fatalf("range: %v", appErr)
	}
	// Boundaries are inclusive on both sides.
	want := map[string]bool{"spans-into-window": true, "instant-inside": true, "starts-at-window-end": true}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(events))
	}
	for _, ev := range events {
		if !want[ev.Title] {
			t.Fatalf("unexpected event %q in range", ev.Title)
		}
	}

	if _, appErr := svc.Range(ctx, day.Add(time.Hour), day, nil); appErr == nil {
		t.Fatal("expected invalid input for inverted range")
	}
}

func TestRangeResultsSorted(t *testing.T) {
	svc, repo := newTestService()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	seed(t, repo, "c", day.Add(9*time.Hour), nil, entity.EventStatusPending)
	seed(t, repo, "a", day.Add(7*time.Hour), nil, entity.EventStatusPending)
	seed(t, repo, "b", day.Add(8*time.Hour), nil, entity.EventStatusPending)

	events, appErr := svc.Range(context.Background(), day, day.Add(24*time.Hour), nil)
	if appErr != nil {
		t.Fatal(appErr)
	}
	for i := 1; i < len(events); i++ {
		if events[i].StartDate.Before(events[i-1].StartDate) {
			t.Fatal("range results not sorted by start date")
		}
	}
}

func TestRangeFilterAllowLists(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	checkup := seed(t, repo, "checkup", day.Add(9*time.Hour), nil, entity.EventStatusPending)
	checkup.Type = entity.EventTypeCheckup
	checkup.Category = entity.EventCategoryMedical
	if _, err := repo.Update(ctx, checkup); err != nil {
		t.Fatal(err)
	}
	seed(t, repo, "errand", day.Add(10*time.Hour), nil, entity.EventStatusCompleted)

	filter := &dto.EventFilter{Types: []entity.EventType{entity.EventTypeCheckup}}
	events, appErr := svc.Range(ctx, day, day.Add(24*time.Hour), filter)
	if appErr != nil {
		t.Fatal(appErr)
	}
	if len(events) != 1 || events[0].Title != "checkup" {
		t.Fatalf("type filter failed: %+v", events)
	}

	filter = &dto.EventFilter{Statuses: []entity.EventStatus{entity.EventStatusCompleted}}
	events, _ = svc.Range(ctx, day, day.Add(24*time.Hour), filter)
	if len(events) != 1 || events[0].Title != "errand" {
		t.Fatalf("status filter failed: %+v", events)
	}
}

func TestSearchEvents(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	notes := "bring the Vitamin list"
	ev := seed(t, repo, "pharmacy run", day.Add(9*time.Hour), nil, entity.EventStatusPending)
	ev.Notes = &notes
	if _, err := repo.Update(ctx, ev); err != nil {
		t.Fatal(err)
	}
	seed(t, repo, "unrelated", day.Add(10*time.Hour), nil, entity.EventStatusPending)

	results, appErr := svc.SearchEvents(ctx, "VITAMIN", nil, nil)
	if appErr != nil {
		t.Fatal(appErr)
	}
	if len(results) != 1 || results[0].Title != "pharmacy run" {
		t.Fatalf("case-insensitive notes search failed: %+v", results)
	}

	// Window pre-filter excludes the match.
	start := day.Add(11 * time.Hour)
	end := day.Add(12 * time.Hour)
	results, appErr = svc.SearchEvents(ctx, "vitamin", &start, &end)
	if appErr != nil {
		t.Fatal(appErr)
	}
	if len(results) != 0 {
		t.Fatalf("expected no match outside window, got %+v", results)
	}

	if _, appErr := svc.SearchEvents(ctx, "   ", nil, nil); appErr == nil {
		t.Fatal("expected invalid input for blank query")
	}
}

func TestGetUpcomingEvents(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		seed(t, repo, "upcoming", testNow.Add(time.Duration(i+1)*time.Hour), nil, entity.EventStatusPending)
	}
	seed(t, repo, "done", testNow.Add(time.Hour), nil, entity.EventStatusCompleted)
	seed(t, repo, "cancelled", testNow.Add(time.Hour), nil, entity.EventStatusCancelled)
	seed(t, repo, "too far", testNow.AddDate(0, 0, 30), nil, entity.EventStatusPending)

	events, appErr := svc.GetUpcomingEvents(ctx, 0, 0)
	if appErr != nil {
		t.Fatal(appErr)
	}
	if len(events) != 10 {
		t.Fatalf("expected cap of 10, got %d", len(events))
	}
	for _, ev := range events {
		if ev.Title != "upcoming" {
			t.Fatalf("unexpected event in agenda feed: %q", ev.Title)
		}
	}
}

func TestTodaySummaryPartition(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	// testNow is 12:00 UTC.
	seed(t, repo, "overdue-pending", testNow.Add(-3*time.Hour), nil, entity.EventStatusPending)
	seed(t, repo, "overdue-in-progress", testNow.Add(-time.Hour), nil, entity.EventStatusInProgress)
	seed(t, repo, "upcoming-pending", testNow.Add(2*time.Hour), nil, entity.EventStatusPending)
	seed(t, repo, "done", testNow.Add(-5*time.Hour), nil, entity.EventStatusCompleted)
	seed(t, repo, "dropped", testNow.Add(3*time.Hour), nil, entity.EventStatusCancelled)
	seed(t, repo, "tomorrow", testNow.AddDate(0, 0, 1), nil, entity.EventStatusPending)

	summary, appErr := svc.GetTodaySummary(ctx)
	if appErr != nil {
		t.Fatal(appErr)
	}
	if summary.TotalEvents != 5 {
		t.Fatalf("expected 5 events today, got %d", summary.TotalEvents)
	}
	if summary.CompletedEvents != 1 {
		t.Fatalf("completed: got %d", summary.CompletedEvents)
	}
	if summary.PendingEvents != 3 {
		t.Fatalf("pending: got %d", summary.PendingEvents)
	}
	if summary.OverdueEvents != 2 || summary.UpcomingEvents != 1 {
		t.Fatalf("overdue/upcoming split wrong: %+v", summary)
	}
	// Actionable events split cleanly; with terminal statuses they cover the day.
	if summary.UpcomingEvents+summary.OverdueEvents+2 != summary.TotalEvents {
		t.Fatalf("partition does not cover today's events: %+v", summary)
	}
}
