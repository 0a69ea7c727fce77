package fleet

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Registry is the in-memory Store. Bus records are stored as immutable
// snapshots behind a single RWMutex; an update builds the replacement record
// outside the lock and swaps the pointer inside it, so readers always see a
// whole update generation and writers for different buses contend only on
// the swap itself.
type Registry struct {
	mu     sync.RWMutex
	buses  map[string]*Bus
	order  []string // bus numbers in insertion order, for stable listings
	routes []Route

	now func() time.Time
}

var _ Store = (*Registry)(nil)

// NewRegistry returns an empty in-memory registry.
func NewRegistry() *Registry {
	return &Registry{
		buses: map[string]*Bus{},
		now:   time.Now,
	}
}

func (r *Registry) Insert(_ context.Context, b Bus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.buses[b.BusNumber]; ok {
		return ErrDuplicateBus
	}
	if b.LastUpdated.IsZero() {
		b.LastUpdated = r.now()
	}
	r.buses[b.BusNumber] = &b
	r.order = append(r.order, b.BusNumber)
	return nil
}

func (r *Registry) ListActive(_ context.Context) ([]Bus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Bus, 0, len(r.order))
	for _, n := range r.order {
		if b := r.buses[n]; b != nil && b.IsActive {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *Registry) ListActiveByArea(ctx context.Context, area string) ([]Bus, error) {
	all, err := r.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Bus, 0, len(all))
	for _, b := range all {
		if b.Area == area {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *Registry) GetByNumber(_ context.Context, busNumber string) (Bus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.buses[busNumber]
	if !ok {
		return Bus{}, ErrBusNotFound
	}
	return *b, nil
}

func (r *Registry) Areas(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return distinct(r.buses, func(b *Bus) string { return b.Area }), nil
}

func (r *Registry) FromCities(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return distinct(r.buses, func(b *Bus) string { return b.FromCity }), nil
}

func (r *Registry) UpdateLocation(_ context.Context, busNumber string, pos Position) (Bus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.buses[busNumber]
	if !ok {
		return Bus{}, ErrBusNotFound
	}
	next := *prev
	next.CurrentLocation = pos.Location
	if pos.SpeedKMH != nil {
		next.CurrentSpeed = *pos.SpeedKMH
	}
	next.LastUpdated = r.now()
	r.buses[busNumber] = &next
	return next, nil
}

func (r *Registry) SetActive(_ context.Context, busNumber string, active bool) (Bus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.buses[busNumber]
	if !ok {
		return Bus{}, ErrBusNotFound
	}
	next := *prev
	next.IsActive = active
	r.buses[busNumber] = &next
	return next, nil
}

func (r *Registry) InsertRoute(_ context.Context, rt Route) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, rt)
	return nil
}

func (r *Registry) Routes(_ context.Context) ([]Route, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Route, len(r.routes))
	copy(out, r.routes)
	return out, nil
}

func (r *Registry) RoutesByArea(_ context.Context, area string) ([]Route, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Route
	for _, rt := range r.routes {
		if rt.Area == area {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (r *Registry) ReplaceFleet(_ context.Context, buses []Bus, routes []Route) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buses = make(map[string]*Bus, len(buses))
	r.order = r.order[:0]
	for i := range buses {
		b := buses[i]
		if _, ok := r.buses[b.BusNumber]; ok {
			return ErrDuplicateBus
		}
		if b.LastUpdated.IsZero() {
			b.LastUpdated = r.now()
		}
		r.buses[b.BusNumber] = &b
		r.order = append(r.order, b.BusNumber)
	}
	r.routes = append(r.routes[:0], routes...)
	return nil
}

func distinct(buses map[string]*Bus, key func(*Bus) string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, b := range buses {
		k := key(b)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
