// Package lifecycle holds shared limits for service start and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook and graceful shutdown.
const DefaultTimeout = 10 * time.Second
