// Package lifecycle holds shared constants for process startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle operations such as dependency pings and
// graceful shutdown.
const DefaultTimeout = 10 * time.Second
