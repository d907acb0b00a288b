package config

// Default returns the default tabula configuration.
func Default() *Config {
	return &Config{
		AutoTableNaming: true,
		LogLevel:        "info",
		SoftDelete: &SoftDelete{
			Column: "deleted_at",
			Value:  "timestamp",
		},
		Repositories: map[string]*Repository{},
	}
}
