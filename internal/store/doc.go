// Package store defines the persistence interfaces for the JobVerse
// backend, one per entity, along with the sentinel errors those interfaces
// return. Implementations live in internal/platform/mongodb. Each store
// owns its collection exclusively; no entity is mutated through more than
// one store.
//
// Identifiers cross these interfaces as hex strings, exactly as they arrive
// at the transport boundary. Implementations parse them and return
// ErrInvalidID for malformed input.
package store
