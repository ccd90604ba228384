package config

// IServiceConfiguration defines a configuration structure which can be loaded and checked.
type IServiceConfiguration interface {
	// Validate validates configuration entries.
	Validate() error
}
