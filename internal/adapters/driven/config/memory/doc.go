// Package memory provides an in-memory driven.ConfigStore for tests.
package memory
