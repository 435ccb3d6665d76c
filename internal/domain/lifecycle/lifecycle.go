// Package lifecycle holds process lifecycle settings shared by deliveries and adapters.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and store clients.
const DefaultTimeout = 10 * time.Second
