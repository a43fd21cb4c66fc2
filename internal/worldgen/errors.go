package worldgen

import "fmt"

// ConfigError reports a MapConfig field outside its documented range.
// Generate detects these up front, before any stage runs, so no partial
// output is ever produced alongside a ConfigError.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("worldgen: config field %s invalid: %s", e.Field, e.Reason)
}

// InternalError reports a generation invariant that could not be locally
// recovered (e.g. a degenerate point set producing zero triangles, or a
// flow cycle surviving sink resolution). The caller may retry with a
// different seed; there is no partial state to roll back.
type InternalError struct {
	Stage  string
	Reason string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("worldgen: %s stage invariant violated: %s", e.Stage, e.Reason)
}
