package restapi

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// CompressionConfig holds configuration options for response compression
type CompressionConfig struct {
	// MinSize is the minimum response size in bytes to compress
	MinSize int
	// Level is the compression level 1-9
	Level int
	// ContentTypes limits compression to these media types; empty compresses everything gzhttp accepts
	ContentTypes []string
}

// DefaultCompressionConfig compresses the JSON API, the dashboard page, its
// stylesheet and the gauge. The PNG logo is already compressed.
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		MinSize: 1024,
		Level:   6,
		ContentTypes: []string{
			"application/json",
			"text/html",
			"text/css",
			"image/svg+xml",
		},
	}
}

// NewCompressionMiddleware creates a compression middleware with the given configuration
func NewCompressionMiddleware(config CompressionConfig) func(http.Handler) http.Handler {
	var wrapper func(http.Handler) http.HandlerFunc
	var err error
	if len(config.ContentTypes) > 0 {
		wrapper, err = gzhttp.NewWrapper(
			gzhttp.MinSize(config.MinSize),
			gzhttp.CompressionLevel(config.Level),
			gzhttp.ContentTypes(config.ContentTypes),
		)
	} else {
		wrapper, err = gzhttp.NewWrapper(
			gzhttp.MinSize(config.MinSize),
			gzhttp.CompressionLevel(config.Level),
		)
	}

	return func(next http.Handler) http.Handler {
		if err != nil {
			// Fallback to default if configuration fails
			return gzhttp.GzipHandler(next)
		}
		return wrapper(next)
	}
}

// CompressionMiddleware applies gzip compression with default settings
func CompressionMiddleware(next http.Handler) http.Handler {
	return NewCompressionMiddleware(DefaultCompressionConfig())(next)
}
