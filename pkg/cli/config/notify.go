package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

// Notify holds evaluation delivery configuration
type Notify struct {
	MaxAttempts int64
	BaseDelay   time.Duration
}

// Flags returns CLI flags for notifier configuration
func (c *Notify) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "notify-max-attempts",
			Usage:       "Total delivery attempts to the evaluation URL",
			Value:       5,
			Destination: &c.MaxAttempts,
			Sources:     cli.EnvVars("FOUNDRY_NOTIFY_MAX_ATTEMPTS"),
		},
		&cli.DurationFlag{
			Name:        "notify-base-delay",
			Usage:       "First backoff delay between delivery attempts (doubles each retry)",
			Value:       time.Second,
			Destination: &c.BaseDelay,
			Sources:     cli.EnvVars("FOUNDRY_NOTIFY_BASE_DELAY"),
		},
	}
}
