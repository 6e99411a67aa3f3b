// Package pagewatch provides a CLI tool that periodically fetches a URL,
// extracts a fragment of the response using a small CSS-like selector or a
// regular expression, and alerts when the extracted value changes.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., html/, http/, afplay/).
package pagewatch
