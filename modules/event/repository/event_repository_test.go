package repository_test

import (
	"context"
	"testing"
	"time"

	"bump-planner/modules/event/entity"
	"bump-planner/modules/event/repository"
)

func newEvent(title string, start time.Time) *entity.CalendarEvent {
	return &entity.CalendarEvent{
		Title:     title,
		StartDate: start,
		Type:      entity.EventTypeCustom,
		Category:  entity.EventCategoryPersonal,
		Priority:  entity.EventPriorityMedium,
		Status:    entity.EventStatusPending,
	}
}

func TestCreateAssignsIdentityAndTimestamps(t *testing.T) {
	repo := repository.NewEventRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newEvent("checkup", time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatal("expected assigned id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps set")
	}
	if created.UpdatedAt.Before(created.CreatedAt) {
		t.Fatal("updated_at before created_at")
	}
}

func TestCreateRejectsEndBeforeStart(t *testing.T) {
	repo := repository.NewEventRepository()
	ctx := context.Background()

	ev := newEvent("bad", time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	end := ev.StartDate.Add(-time.Hour)
	ev.EndDate = &end

	if _, err := repo.Create(ctx, ev); err == nil {
		t.Fatal("expected error for end before start")
	}
}

func TestListOrderedByStartWithInsertionTiebreak(t *testing.T) {
	repo := repository.NewEventRepository()
	ctx := context.Background()

	ts := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	if _, err := repo.Create(ctx, newEvent("later", ts.Add(2*time.Hour))); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Create(ctx, newEvent("tie-first", ts)); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Create(ctx, newEvent("tie-second", ts)); err != nil {
		t.Fatal(err)
	}

	events, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	got := []string{events[0].Title, events[1].Title, events[2].Title}
	want := []string{"tie-first", "tie-second", "later"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch at %d: got %v want %v", i, got, want)
		}
	}
	for i := 1; i < len(events); i++ {
		if events[i].StartDate.Before(events[i-1].StartDate) {
			t.Fatal("list not sorted by start date")
		}
	}
}

func TestUpdateRefreshesUpdatedAtAndResorts(t *testing.T) {
	repo := repository.NewEventRepository()
	ctx := context.Background()

	ts := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	first, _ := repo.Create(ctx, newEvent("first", ts))
	repo.Create(ctx, newEvent("second", ts.Add(time.Hour)))

	first.StartDate = ts.Add(3 * time.Hour)
	updated, err := repo.Update(ctx, first)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Fatal("expected updated_at refreshed past created_at")
	}

	events, _ := repo.List(ctx)
	if events[len(events)-1].Title != "first" {
		t.Fatal("expected moved event re-sorted to the end")
	}
}

func TestUpdateUnknownIDReturnsNil(t *testing.T) {
	repo := repository.NewEventRepository()
	ctx := context.Background()

	ghost := newEvent("ghost", time.Now())
	updated, err := repo.Update(ctx, ghost)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated != nil {
		t.Fatal("expected nil for unknown id")
	}
}

func TestDeleteReportsExistence(t *testing.T) {
	repo := repository.NewEventRepository()
	ctx := context.Background()

	created, _ := repo.Create(ctx, newEvent("gone", time.Now()))
	ok, err := repo.Delete(ctx, created.ID)
	if err != nil || !ok {
		t.Fatalf("delete existing: ok=%v err=%v", ok, err)
	}
	ok, err = repo.Delete(ctx, created.ID)
	if err != nil || ok {
		t.Fatalf("delete missing: ok=%v err=%v", ok, err)
	}
}

func TestGetBySource(t *testing.T) {
	repo := repository.NewEventRepository()
	ctx := context.Background()

	sourceID, sourceType := "task-1", "task"
	ev := newEvent("derived", time.Now())
	ev.SourceID = &sourceID
	ev.SourceType = &sourceType
	repo.Create(ctx, ev)

	found, err := repo.GetBySource(ctx, "task-1", "task")
	if err != nil || found == nil {
		t.Fatalf("expected derived event, err=%v", err)
	}
	missing, err := repo.GetBySource(ctx, "task-1", "checkup")
	if err != nil || missing != nil {
		t.Fatal("expected no event for different source type")
	}
}

func TestReturnedEventsAreCopies(t *testing.T) {
	repo := repository.NewEventRepository()
	ctx := context.Background()

	created, _ := repo.Create(ctx, newEvent("pristine", time.Now()))
	created.Title = "mutated"

	stored, _ := repo.GetByID(ctx, created.ID)
	if stored.Title != "pristine" {
		t.Fatal("external mutation leaked into the store")
	}

	events, _ := repo.List(ctx)
	events[0].Title = "mutated again"
	stored, _ = repo.GetByID(ctx, created.ID)
	if stored.Title != "pristine" {
		t.Fatal("list snapshot mutation leaked into the store")
	}
}
