// Package itinerary extracts day-by-day itinerary records from Flight Centre
// cruise and tour pages.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, sqlite/).
package itinerary
