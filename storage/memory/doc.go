// Package memory provides an in-memory session.Storage backend.
// State does not survive process restarts; use it in tests or wherever
// rehydration is not needed.
package memory
