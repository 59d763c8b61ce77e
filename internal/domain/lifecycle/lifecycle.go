// Package lifecycle holds timing constants shared by fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop hook.
const DefaultTimeout = 10 * time.Second

// StreamHeartbeat is how often idle event streams emit a keep-alive comment.
const StreamHeartbeat = 15 * time.Second
