package fleet

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/vignan-transit/shuttle-tracker/geo"
)

func testBus(number, area, fromCity string, active bool) Bus {
	return Bus{
		BusNumber:       number,
		Route:           "A1",
		Area:            area,
		FromCity:        fromCity,
		ToCity:          "Vignan University",
		Capacity:        50,
		CurrentLocation: geo.Coordinate{Latitude: 16.30, Longitude: 80.43},
		Destination:     geo.Coordinate{Latitude: 16.4419, Longitude: 80.5189},
		IsActive:        active,
		CurrentSpeed:    35,
	}
}

func TestRegistryInsertDuplicate(t *testing.T) {
	r := NewRegistry()
	ctx := context.Background()
	if err := r.Insert(ctx, testBus("VU-GT-101", "Guntur", "Guntur", true)); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	err := r.Insert(ctx, testBus("VU-GT-101", "Tenali", "Tenali", true))
	if !errors.Is(err, ErrDuplicateBus) {
		t.Errorf("expected ErrDuplicateBus, got %v", err)
	}
}

func TestRegistryListActive(t *testing.T) {
	r := NewRegistry()
	ctx := context.Background()
	for _, b := range []Bus{
		testBus("VU-GT-101", "Guntur", "Guntur", true),
		testBus("VU-GT-102", "Guntur", "Guntur", false),
		testBus("VU-TN-301", "Tenali", "Tenali", true),
	} {
		if err := r.Insert(ctx, b); err != nil {
			t.Fatalf("insert %s: %v", b.BusNumber, err)
		}
	}

	active, err := r.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	got := busNumbers(active)
	want := []string{"VU-GT-101", "VU-TN-301"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListActive = %v, want %v", got, want)
	}
}

func TestRegistryListActiveStableOrder(t *testing.T) {
	r := NewRegistry()
	ctx := context.Background()
	numbers := []string{"VU-ST-701", "VU-GT-101", "VU-BP-601", "VU-TN-301"}
	for _, n := range numbers {
		if err := r.Insert(ctx, testBus(n, "X", "X", true)); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	first, _ := r.ListActive(ctx)
	second, _ := r.ListActive(ctx)
	if !reflect.DeepEqual(busNumbers(first), numbers) {
		t.Errorf("expected insertion order %v, got %v", numbers, busNumbers(first))
	}
	if !reflect.DeepEqual(busNumbers(first), busNumbers(second)) {
		t.Errorf("order changed between reads: %v vs %v", busNumbers(first), busNumbers(second))
	}
}

func TestRegistryListActiveByArea(t *testing.T) {
	r := NewRegistry()
	ctx := context.Background()
	_ = r.Insert(ctx, testBus("VU-GT-101", "Guntur", "Guntur", true))
	_ = r.Insert(ctx, testBus("VU-TN-301", "Tenali", "Tenali", true))
	_ = r.Insert(ctx, testBus("VU-GT-102", "Guntur", "Guntur", false))

	buses, err := r.ListActiveByArea(ctx, "Guntur")
	if err != nil {
		t.Fatalf("ListActiveByArea: %v", err)
	}
	if want := []string{"VU-GT-101"}; !reflect.DeepEqual(busNumbers(buses), want) {
		t.Errorf("ListActiveByArea = %v, want %v", busNumbers(buses), want)
	}
}

func TestRegistryGetByNumberIncludesInactive(t *testing.T) {
	r := NewRegistry()
	ctx := context.Background()
	_ = r.Insert(ctx, testBus("VU-GT-102", "Guntur", "Guntur", false))

	b, err := r.GetByNumber(ctx, "VU-GT-102")
	if err != nil {
		t.Fatalf("GetByNumber should find inactive buses: %v", err)
	}
	if b.IsActive {
		t.Errorf("expected inactive bus")
	}

	if _, err := r.GetByNumber(ctx, "VU-XX-999"); !errors.Is(err, ErrBusNotFound) {
		t.Errorf("expected ErrBusNotFound, got %v", err)
	}
}

func TestRegistryDistinctProjections(t *testing.T) {
	r := NewRegistry()
	ctx := context.Background()
	_ = r.Insert(ctx, testBus("VU-GT-101", "Guntur", "Guntur", true))
	_ = r.Insert(ctx, testBus("VU-GT-102", "Guntur", "Guntur", false))
	_ = r.Insert(ctx, testBus("VU-TN-301", "Tenali", "Tenali", true))

	areas, err := r.Areas(ctx)
	if err != nil {
		t.Fatalf("Areas: %v", err)
	}
	if want := []string{"Guntur", "Tenali"}; !reflect.DeepEqual(areas, want) {
		t.Errorf("Areas = %v, want %v (inactive buses still project)", areas, want)
	}

	cities, err := r.FromCities(ctx)
	if err != nil {
		t.Fatalf("FromCities: %v", err)
	}
	if want := []string{"Guntur", "Tenali"}; !reflect.DeepEqual(cities, want) {
		t.Errorf("FromCities = %v, want %v", cities, want)
	}
}

func TestRegistryUpdateLocation(t *testing.T) {
	r := NewRegistry()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return base }
	_ = r.Insert(ctx, testBus("VU-GT-101", "Guntur", "Guntur", true))

	later := base.Add(30 * time.Second)
	r.now = func() time.Time { return later }

	speed := 42.0
	pos := Position{Location: geo.Coordinate{Latitude: 16.35, Longitude: 80.46}, SpeedKMH: &speed}
	updated, err := r.UpdateLocation(ctx, "VU-GT-101", pos)
	if err != nil {
		t.Fatalf("UpdateLocation: %v", err)
	}
	if updated.CurrentLocation != pos.Location {
		t.Errorf("location not replaced: %+v", updated.CurrentLocation)
	}
	if updated.CurrentSpeed != 42 {
		t.Errorf("speed not replaced: %v", updated.CurrentSpeed)
	}
	if !updated.LastUpdated.Equal(later) {
		t.Errorf("freshness not advanced: %v", updated.LastUpdated)
	}

	// Partial update: omitted speed keeps the prior sample but still
	// advances freshness.
	final := later.Add(15 * time.Second)
	r.now = func() time.Time { return final }
	updated, err = r.UpdateLocation(ctx, "VU-GT-101", Position{Location: geo.Coordinate{Latitude: 16.40, Longitude: 80.50}})
	if err != nil {
		t.Fatalf("UpdateLocation: %v", err)
	}
	if updated.CurrentSpeed != 42 {
		t.Errorf("omitted speed should keep prior value, got %v", updated.CurrentSpeed)
	}
	if !updated.LastUpdated.Equal(final) {
		t.Errorf("freshness not advanced on position-only update: %v", updated.LastUpdated)
	}

	if _, err := r.UpdateLocation(ctx, "VU-XX-999", pos); !errors.Is(err, ErrBusNotFound) {
		t.Errorf("expected ErrBusNotFound, got %v", err)
	}
}

func TestRegistrySetActiveExcludesFromListing(t *testing.T) {
	r := NewRegistry()
	ctx := context.Background()
	_ = r.Insert(ctx, testBus("VU-GT-101", "Guntur", "Guntur", true))

	if _, err := r.SetActive(ctx, "VU-GT-101", false); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	active, _ := r.ListActive(ctx)
	if len(active) != 0 {
		t.Errorf("deactivated bus still listed: %v", busNumbers(active))
	}
	if _, err := r.GetByNumber(ctx, "VU-GT-101"); err != nil {
		t.Errorf("deactivated bus should stay addressable: %v", err)
	}
}

func TestRegistryReplaceFleet(t *testing.T) {
	r := NewRegistry()
	ctx := context.Background()
	_ = r.Insert(ctx, testBus("OLD-1", "X", "X", true))

	if err := r.ReplaceFleet(ctx, SeedBuses(), SeedRoutes()); err != nil {
		t.Fatalf("ReplaceFleet: %v", err)
	}
	if _, err := r.GetByNumber(ctx, "OLD-1"); !errors.Is(err, ErrBusNotFound) {
		t.Errorf("old bus should be gone, got %v", err)
	}
	active, _ := r.ListActive(ctx)
	if len(active) != 9 {
		t.Errorf("expected 9 seeded buses, got %d", len(active))
	}
	routes, _ := r.Routes(ctx)
	if len(routes) != 3 {
		t.Errorf("expected 3 seeded routes, got %d", len(routes))
	}
	byArea, _ := r.RoutesByArea(ctx, "Guntur")
	if len(byArea) != 1 || byArea[0].RouteName != "A1" {
		t.Errorf("RoutesByArea(Guntur) = %+v", byArea)
	}
}

func busNumbers(buses []Bus) []string {
	out := make([]string, 0, len(buses))
	for _, b := range buses {
		out = append(out, b.BusNumber)
	}
	return out
}
