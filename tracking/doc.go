// Package tracking composes the fleet registry with the geo primitives to
// answer the rider-facing tracking query: where is my bus, how far away is
// it, and when does it arrive.
//
// A tracking result is a transient projection built from a single bus
// snapshot: both distances and both ETAs are derived from the same position
// and speed sample, never mixed across update generations.
package tracking
