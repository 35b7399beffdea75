package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	eventEntity "bump-planner/modules/event/entity"
	eventRepository "bump-planner/modules/event/repository"
	"bump-planner/modules/sync/service"
	"bump-planner/modules/sync/source"
)

// testNow sits mid-day so that morning reminder slots have passed and
// evening slots have not.
var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

// pregnancyStart makes testNow fall in week 10.
var pregnancyStart = time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

type fakeTaskSource struct {
	tasks []source.TaskRecord
	err   error
}

func (f *fakeTaskSource) ListTasks(_ context.Context) ([]source.TaskRecord, error) {
	return f.tasks, f.err
}

type fakeCheckupSource struct {
	schedule []source.CheckupRecord
	err      error
}

func (f *fakeCheckupSource) ListSchedule(_ context.Context) ([]source.CheckupRecord, error) {
	return f.schedule, f.err
}

func newTestService(tasks source.TaskSource, checkups source.CheckupSource) (*service.SyncService, *eventRepository.EventRepository) {
	repo := eventRepository.NewEventRepository()
	svc := service.NewSyncService(repo, tasks, checkups, pregnancyStart)
	svc.Now = func() time.Time { return testNow }
	return svc, repo
}

func dueDate(t time.Time) *time.Time { return &t }

func TestImportTasksMapsFields(t *testing.T) {
	due := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	tasks := &fakeTaskSource{tasks: []source.TaskRecord{
		{ID: "t-1", Title: "Buy crib", Category: "shopping", Priority: "high", Status: "pending", CreatedBy: "user-1", DueDate: dueDate(due)},
		{ID: "t-2", Title: "No deadline yet", Category: "care"},
	}}
	svc, repo := newTestService(tasks, nil)

	imported, skipped, err := svc.ImportTasks(context.Background())
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if imported != 1 || skipped != 1 {
		t.Fatalf("imported=%d skipped=%d", imported, skipped)
	}

	ev, _ := repo.GetBySource(context.Background(), "t-1", service.SourceTypeTask)
	if ev == nil {
		t.Fatal("imported task not found by source")
	}
	if !ev.AllDay {
		t.Fatal("task events are all-day")
	}
	if ev.Type != eventEntity.EventTypeTask {
		t.Fatalf("type: %s", ev.Type)
	}
	if ev.Category != eventEntity.EventCategoryPreparation {
		t.Fatalf("shopping must map to preparation, got %s", ev.Category)
	}
	if ev.Priority != eventEntity.EventPriorityHigh || ev.Status != eventEntity.EventStatusPending {
		t.Fatalf("priority/status carried wrong: %s/%s", ev.Priority, ev.Status)
	}
	if !ev.StartDate.Equal(due) {
		t.Fatalf("start: %v", ev.StartDate)
	}
}

func TestImportTasksUnknownCategoryAndPriority(t *testing.T) {
	due := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	tasks := &fakeTaskSource{tasks: []source.TaskRecord{
		{ID: "t-1", Title: "Odd one", Category: "misc", Priority: "urgent!!", Status: "???", DueDate: dueDate(due)},
	}}
	svc, repo := newTestService(tasks, nil)

	if _, _, err := svc.ImportTasks(context.Background()); err != nil {
		t.Fatal(err)
	}
	ev, _ := repo.GetBySource(context.Background(), "t-1", service.SourceTypeTask)
	if ev.Category != eventEntity.EventCategoryFamily {
		t.Fatalf("unknown category must fall back to family, got %s", ev.Category)
	}
	if ev.Priority != eventEntity.EventPriorityMedium || ev.Status != eventEntity.EventStatusPending {
		t.Fatalf("invalid priority/status must fall back, got %s/%s", ev.Priority, ev.Status)
	}
}

func TestImportTasksIdempotent(t *testing.T) {
	due := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	tasks := &fakeTaskSource{tasks: []source.TaskRecord{
		{ID: "t-1", Title: "Buy crib", DueDate: dueDate(due)},
	}}
	svc, repo := newTestService(tasks, nil)
	ctx := context.Background()

	if _, _, err := svc.ImportTasks(ctx); err != nil {
		t.Fatal(err)
	}
	imported, skipped, err := svc.ImportTasks(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if imported != 0 || skipped != 1 {
		t.Fatalf("second run must skip: imported=%d skipped=%d", imported, skipped)
	}
	count, _ := repo.Count(ctx)
	if count != 1 {
		t.Fatalf("expected one event after re-run, got %d", count)
	}
}

func TestImportCheckupsDatesFromAnchor(t *testing.T) {
	checkups := &fakeCheckupSource{schedule: []source.CheckupRecord{
		{ID: "c-12", Week: 12, Title: "NT scan", Items: []string{"Ultrasound"}, Preparation: []string{"Full bladder"}, Importance: "high", EstimatedDuration: 45},
		{ID: "c-16", Week: 16, Title: "Routine visit", Importance: "medium"},
	}}
	svc, repo := newTestService(nil, checkups)
	ctx := context.Background()

	imported, _, err := svc.ImportCheckups(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if imported != 2 {
		t.Fatalf("imported=%d", imported)
	}

	ev, _ := repo.GetBySource(ctx, "c-12", service.SourceTypeCheckup)
	// Week 12 starts 77 days after the anchor; appointments sit at 09:00.
	want := time.Date(2025, 3, 24, 9, 0, 0, 0, time.UTC)
	if !ev.StartDate.Equal(want) {
		t.Fatalf("start: got %v want %v", ev.StartDate, want)
	}
	if ev.EndDate == nil || !ev.EndDate.Equal(want.Add(45*time.Minute)) {
		t.Fatalf("end: %v", ev.EndDate)
	}
	if ev.Priority != eventEntity.EventPriorityHigh || ev.Category != eventEntity.EventCategoryMedical {
		t.Fatalf("priority/category: %s/%s", ev.Priority, ev.Category)
	}
	if ev.Notes == nil || *ev.Notes != "Preparation: Full bladder" {
		t.Fatalf("notes: %v", ev.Notes)
	}

	// Missing duration defaults to an hour.
	ev, _ = repo.GetBySource(ctx, "c-16", service.SourceTypeCheckup)
	if ev.EndDate == nil || !ev.EndDate.Equal(ev.StartDate.Add(time.Hour)) {
		t.Fatalf("default duration: %v", ev.EndDate)
	}
	if ev.Priority != eventEntity.EventPriorityMedium {
		t.Fatalf("priority: %s", ev.Priority)
	}
}

func TestImportCheckupsRequiresAnchor(t *testing.T) {
	repo := eventRepository.NewEventRepository()
	svc := service.NewSyncService(repo, nil, &fakeCheckupSource{}, time.Time{})
	svc.Now = func() time.Time { return testNow }

	if _, _, err := svc.ImportCheckups(context.Background()); err == nil {
		t.Fatal("expected error without a pregnancy start date")
	}
}

func TestSyncSourcesIsolatesFailures(t *testing.T) {
	tasks := &fakeTaskSource{err: fmt.Errorf("task service unavailable")}
	checkups := &fakeCheckupSource{schedule: []source.CheckupRecord{
		{ID: "c-20", Week: 20, Title: "Anatomy scan", Importance: "high"},
	}}
	svc, _ := newTestService(tasks, checkups)

	report := svc.SyncSources(context.Background())
	if len(report.Results) != 2 {
		t.Fatalf("results: %d", len(report.Results))
	}
	if report.Results[0].Error == "" {
		t.Fatal("task failure must be recorded")
	}
	if report.Results[1].Error != "" || report.Results[1].Imported != 1 {
		t.Fatalf("checkup import must still run: %+v", report.Results[1])
	}
}

func TestGenerateDailyRemindersSkipsPastSlots(t *testing.T) {
	svc, repo := newTestService(nil, nil)
	ctx := context.Background()

	report, appErr := svc.GenerateDailyReminders(ctx)
	if appErr != nil {
		t.Fatal(appErr)
	}
	// At noon the 09:00 kick count has passed; the 20:00 and 21:00 slots
	// remain.
	if report.Created != 2 || report.Skipped != 1 {
		t.Fatalf("created=%d skipped=%d", report.Created, report.Skipped)
	}

	ev, _ := repo.GetBySource(ctx, "mood-evening-2025-03-10", service.SourceTypeReminder)
	if ev == nil {
		t.Fatal("evening mood reminder missing")
	}
	if ev.StartDate.Hour() != 20 || ev.Type != eventEntity.EventTypeMood {
		t.Fatalf("slot wiring: %v %s", ev.StartDate, ev.Type)
	}
}

func TestGenerateDailyRemindersSameDayIdempotent(t *testing.T) {
	svc, repo := newTestService(nil, nil)
	ctx := context.Background()

	if _, appErr := svc.GenerateDailyReminders(ctx); appErr != nil {
		t.Fatal(appErr)
	}
	report, appErr := svc.GenerateDailyReminders(ctx)
	if appErr != nil {
		t.Fatal(appErr)
	}
	if report.Created != 0 {
		t.Fatalf("same-day re-run created %d", report.Created)
	}
	before, _ := repo.Count(ctx)

	// The next day produces a fresh set under new date-scoped source ids.
	svc.Now = func() time.Time { return testNow.AddDate(0, 0, 1) }
	report, appErr = svc.GenerateDailyReminders(ctx)
	if appErr != nil {
		t.Fatal(appErr)
	}
	if report.Created != 2 {
		t.Fatalf("next-day run created %d", report.Created)
	}
	after, _ := repo.Count(ctx)
	if after != before+2 {
		t.Fatalf("count: %d -> %d", before, after)
	}
}

func TestCurrentWeek(t *testing.T) {
	svc, _ := newTestService(nil, nil)
	if got := svc.CurrentWeek(); got != 10 {
		t.Fatalf("week: got %d want 10", got)
	}

	svc.Now = func() time.Time { return pregnancyStart }
	if got := svc.CurrentWeek(); got != 1 {
		t.Fatalf("week at anchor: %d", got)
	}

	repo := eventRepository.NewEventRepository()
	unanchored := service.NewSyncService(repo, nil, nil, time.Time{})
	if got := unanchored.CurrentWeek(); got != 0 {
		t.Fatalf("week without anchor: %d", got)
	}
}
