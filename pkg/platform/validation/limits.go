package validation

// HTTP body limits
const (
	// MaxBodySize is the maximum allowed request body size (64 KB).
	// A custom letter body is the largest field a client sends.
	MaxBodySize = 64 * 1024
)
