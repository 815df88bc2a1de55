// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Compare is the comparison engine. ReportService validates inputs,
// compares the snapshots, builds the fixed section list and composes it
// onto a canvas. SettingsService reads and writes report branding.
package services
