// Package domain defines the core entities of the condition report engine.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - InspectionSnapshot: One inspection captured at collection or delivery
//   - DamageMarker: A defect placed on a vehicle outline
//   - ComparisonResult: The difference between two snapshots
//   - JobMeta: Job and vehicle details printed on the report
//   - ReportSettings: Branding and paper format
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
