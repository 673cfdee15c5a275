// Package tabtalk provides a CLI tool that scrapes a single HTML table,
// persists it in tabular formats, and answers interactive substring
// queries over a designated entity column, narrating results via
// best-effort speech synthesis.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, htgotts/).
package tabtalk
