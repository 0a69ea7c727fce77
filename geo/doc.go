// Package geo provides great-circle distance computation and arrival-time
// estimation for the shuttle tracker.
//
// Distances use the haversine formula with a mean Earth radius of 6371 km.
// ETAs are derived from distance and a speed sample; a bus reporting zero
// speed falls back to DefaultCruiseSpeedKMH so a stationary-but-active bus
// never produces an infinite ETA.
package geo
