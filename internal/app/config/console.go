package config

import "time"

// ConsoleConfig configures the scheduling console binary.
type ConsoleConfig struct {
	Env             string
	StudioAPIUrl    string
	RequestTimeout  time.Duration
	PreferencesFile string
	LogLevel        string
}
