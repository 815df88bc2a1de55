// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CanvasFactory: Creates a Canvas per generated document
//   - Canvas: Fixed-size page surface with drawing primitives (PDF or recording)
//   - Measurer: Text metrics used for layout estimation
//   - DocumentReader: Reads a finished report back (page count, text)
//   - ConfigStore: Report settings persistence
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
