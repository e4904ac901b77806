// Package config defines the application configuration structure and loads
// it from the process environment at startup. Configuration is immutable
// for the process lifetime; components receive the sections they need at
// construction time rather than reading ambient state.
package config
