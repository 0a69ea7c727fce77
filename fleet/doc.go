// Package fleet holds the authoritative set of shuttle buses and their
// read-mostly route reference data.
//
// The Store interface abstracts the backing storage. Registry is the
// in-memory implementation used for demos and tests; PGStore persists the
// fleet in Postgres. Both replace a bus record as a whole on location
// ingestion, so readers never observe a position from one update generation
// mixed with a speed or freshness timestamp from another.
package fleet
