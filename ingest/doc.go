// Package ingest feeds out-of-band position updates into the fleet store.
//
// Two feed shapes are supported: a NATS subject carrying JSON position
// messages, and a GTFS-Realtime VehiclePositions feed polled over HTTP. Both
// resolve the reported vehicle to a bus number and apply the update through
// the store, which replaces the bus record atomically and refreshes its
// freshness timestamp.
package ingest
