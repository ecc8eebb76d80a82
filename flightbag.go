// Package flightbag provides a terminal flight bag: CLI lookups for
// preferred routes, METAR/TAF weather, instrument procedure charts, and
// bookmarked publications. Chart queries are resolved against published
// procedure titles with a fuzzy matcher tuned for aviation naming.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, toml/, browser/).
package flightbag
