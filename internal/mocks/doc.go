// Package mocks provides hand-written test doubles for the store and
// service interfaces. Each mock exposes optional function fields for
// per-test behavior and falls back to a small in-memory implementation, so
// the same type serves as both a stub and a fake.
package mocks
