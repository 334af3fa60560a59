package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/recprint/internal/ctxlog"
	"github.com/specialistvlad/recprint/internal/record"
)

// Batch source names, as they appear in logs.
const (
	SourceSample    = "sample"
	SourceGenerated = "generated"
	SourceFile      = "file"
)

// loadBatch resolves the configured source into records.
func (a *App) loadBatch(ctx context.Context) ([]record.Record, string, error) {
	logger := ctxlog.FromContext(ctx)

	switch {
	case a.config.BatchPath != "":
		if a.loader == nil {
			return nil, SourceFile, errors.New("no batch loader configured")
		}
		logger.Debug("Loading batch from file.", "path", a.config.BatchPath)
		records, err := a.loader.Load(ctx, a.config.BatchPath)
		if err != nil {
			return nil, SourceFile, fmt.Errorf("failed to load batch: %w", err)
		}
		return records, SourceFile, nil
	case a.config.Generate >= 0:
		logger.Debug("Generating batch.", "count", a.config.Generate)
		return record.Generate(a.config.Generate), SourceGenerated, nil
	default:
		return record.Sample(), SourceSample, nil
	}
}
