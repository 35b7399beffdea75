package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"bump-planner/modules/event/entity"

	"github.com/google/uuid"
)

// EventRepository is the canonical in-memory event store. Query results are
// ordered by start date ascending with insertion order as the tiebreak, and
// every event that crosses the API boundary is a copy.
type EventRepository struct {
	mu     sync.RWMutex
	events []record
	byID   map[uuid.UUID]int // index into events
	seq    uint64
}

type record struct {
	event entity.CalendarEvent
	seq   uint64
}

// EventRepositoryInterface defines the store contract.
type EventRepositoryInterface interface {
	Create(ctx context.Context, ev *entity.CalendarEvent) (*entity.CalendarEvent, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CalendarEvent, error)
	GetBySource(ctx context.Context, sourceID, sourceType string) (*entity.CalendarEvent, error)
	List(ctx context.Context) ([]entity.CalendarEvent, error)
	Update(ctx context.Context, ev *entity.CalendarEvent) (*entity.CalendarEvent, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Count(ctx context.Context) (int, error)
}

func NewEventRepository() *EventRepository {
	return &EventRepository{
		byID: make(map[uuid.UUID]int),
	}
}

// Create assigns identity and timestamps, stores a copy and returns a copy.
func (r *EventRepository) Create(ctx context.Context, ev *entity.CalendarEvent) (*entity.CalendarEvent, error) {
	if ev == nil {
		return nil, fmt.Errorf("nil event")
	}
	if ev.EndDate != nil && ev.EndDate.Before(ev.StartDate) {
		return nil, fmt.Errorf("end date %s before start date %s", ev.EndDate, ev.StartDate)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *ev.Clone()
	stored.ID = uuid.New()
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.seq++
	r.events = append(r.events, record{event: stored, seq: r.seq})
	r.resort()

	return stored.Clone(), nil
}

// GetByID returns (nil, nil) when the id is unknown.
func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CalendarEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return r.events[idx].event.Clone(), nil
}

// GetBySource returns the derived event imported from the given external
// record, or (nil, nil). The store holds at most one event per source pair.
func (r *EventRepository) GetBySource(ctx context.Context, sourceID, sourceType string) (*entity.CalendarEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.events {
		ev := &r.events[i].event
		if ev.SourceID != nil && ev.SourceType != nil &&
			*ev.SourceID == sourceID && *ev.SourceType == sourceType {
			return ev.Clone(), nil
		}
	}
	return nil, nil
}

// List returns a sorted snapshot of every event.
func (r *EventRepository) List(ctx context.Context) ([]entity.CalendarEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.CalendarEvent, 0, len(r.events))
	for i := range r.events {
		out = append(out, *r.events[i].event.Clone())
	}
	return out, nil
}

// Update replaces the stored event with the given one, keeping identity,
// creation metadata and insertion order, and refreshing UpdatedAt. Returns
// (nil, nil) when the id is unknown.
func (r *EventRepository) Update(ctx context.Context, ev *entity.CalendarEvent) (*entity.CalendarEvent, error) {
	if ev == nil {
		return nil, fmt.Errorf("nil event")
	}
	if ev.EndDate != nil && ev.EndDate.Before(ev.StartDate) {
		return nil, fmt.Errorf("end date %s before start date %s", ev.EndDate, ev.StartDate)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byID[ev.ID]
	if !ok {
		return nil, nil
	}

	prev := r.events[idx].event
	stored := *ev.Clone()
	stored.CreatedAt = prev.CreatedAt
	stored.CreatedBy = prev.CreatedBy
	stored.UpdatedAt = time.Now()
	if !stored.UpdatedAt.After(prev.UpdatedAt) {
		stored.UpdatedAt = prev.UpdatedAt.Add(time.Nanosecond)
	}

	r.events[idx].event = stored
	r.resort()

	return stored.Clone(), nil
}

// Delete removes the event and reports whether it existed.
func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byID[id]
	if !ok {
		return false, nil
	}

	r.events = append(r.events[:idx], r.events[idx+1:]...)
	r.resort()
	return true, nil
}

func (r *EventRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.events), nil
}

// resort restores start-date ordering and rebuilds the id index. Callers hold
// the write lock.
func (r *EventRepository) resort() {
	sort.SliceStable(r.events, func(i, j int) bool {
		a, b := &r.events[i], &r.events[j]
		if a.event.StartDate.Equal(b.event.StartDate) {
			return a.seq < b.seq
		}
		return a.event.StartDate.Before(b.event.StartDate)
	})

	if r.byID == nil {
		r.byID = make(map[uuid.UUID]int, len(r.events))
	}
	clear(r.byID)
	for i := range r.events {
		r.byID[r.events[i].event.ID] = i
	}
}
