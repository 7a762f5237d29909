package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Validate checks the configuration for values the server cannot start
// with. All problems are reported at once.
func (c *Config) Validate() error {
	var problems []string

	if c.Port == "" {
		problems = append(problems, "port is required")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			problems = append(problems, fmt.Sprintf("invalid port: %s", c.Port))
		} else if port < 1 || port > 65535 {
			problems = append(problems, fmt.Sprintf("port must be between 1 and 65535, got %d", port))
		}
	}

	if c.MaxUploadBytes < 1024 {
		problems = append(problems, "max upload size must be at least 1KB")
	}
	if c.SampleSize < 1 {
		problems = append(problems, "sample size must be at least 1")
	}
	if c.RateLimitRPS <= 0 {
		problems = append(problems, "rate limit rps must be positive")
	}
	if c.RateLimitBurst < 1 {
		problems = append(problems, "rate limit burst must be at least 1")
	}

	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("unknown log level: %s", c.LogLevel))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
