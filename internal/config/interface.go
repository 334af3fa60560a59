package config

import (
	"context"

	"github.com/specialistvlad/recprint/internal/record"
)

// Loader is the interface for a format-specific batch loader.
type Loader interface {
	// Load reads every record defined under the given paths and returns them
	// in definition order.
	Load(ctx context.Context, paths ...string) ([]record.Record, error)
}
