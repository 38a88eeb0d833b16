package config

// Reset drops cached configuration so tests can reload with different env values.
func Reset() { reset() }
