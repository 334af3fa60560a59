package app

import (
	"context"

	"github.com/specialistvlad/recprint/internal/ctxlog"
	"github.com/specialistvlad/recprint/internal/formatter"
)

// Run loads the configured batch and prints it.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	records, source, err := a.loadBatch(ctx)
	if err != nil {
		return err
	}
	a.logger.Info("Batch ready.", "source", source, "count", len(records))

	f := formatter.New(a.outW, formatter.WithExpectedLen(a.config.ExpectedLen))
	if err := f.FormatAndPrint(ctx, records); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
