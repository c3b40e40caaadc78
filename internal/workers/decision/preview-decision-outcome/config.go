// internal/workers/decision/preview-decision-outcome/config.go
package previewdecisionoutcome

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
