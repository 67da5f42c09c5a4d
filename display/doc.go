// Package display renders user-facing text for cliargs schemas: help
// listings, parse error reports, and "did you mean" suggestions.
//
// Rendering is a pure function of the schema and never parses anything.
// Output is deterministic: flags are listed sorted by identifier, and all
// styling collapses to plain text when the output profile has no color.
package display
