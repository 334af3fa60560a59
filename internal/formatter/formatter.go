// Package formatter prints a batch of records, one line per record, after
// decoding each opaque payload as ASCII text.
//
// A batch whose length differs from the expected length gets a warning line
// but is still printed. A payload that is not ASCII stops the batch: the
// lines already written stay written and the decode error is returned.
package formatter

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/recprint/internal/ctxlog"
	"github.com/specialistvlad/recprint/internal/record"
)

// InvalidLenWarning is the line written when a batch has an unexpected length.
const InvalidLenWarning = "invalid #(args)"

// Formatter writes formatted records to an output stream.
type Formatter struct {
	out         io.Writer
	expectedLen int
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithExpectedLen overrides the batch length that passes without a warning.
func WithExpectedLen(n int) Option {
	return func(f *Formatter) {
		f.expectedLen = n
	}
}

// New creates a Formatter writing to out.
func New(out io.Writer, opts ...Option) *Formatter {
	f := &Formatter{
		out:         out,
		expectedLen: record.ExpectedLen,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FormatAndPrint writes the records to the output in order.
func (f *Formatter) FormatAndPrint(ctx context.Context, records []record.Record) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Formatter started.", "count", len(records), "expected", f.expectedLen)

	if err := ctx.Err(); err != nil {
		return err
	}

	if len(records) != f.expectedLen {
		logger.Warn("Unexpected number of records, continuing.", "count", len(records), "expected", f.expectedLen)
		if _, err := fmt.Fprintln(f.out, InvalidLenWarning); err != nil {
			return fmt.Errorf("failed to write warning: %w", err)
		}
	}

	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return err
		}

		text, err := record.DecodeASCII(rec.Opaque)
		if err != nil {
			logger.Debug("Record payload is not ASCII.", "index", i, "error", err)
			return fmt.Errorf("record %d: %w", i, err)
		}

		if _, err := fmt.Fprintf(f.out, "value=%d, opaque=\"%s\"\n", rec.Value, text); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
		logger.Debug("Record printed.", "index", i, "value", rec.Value)
	}

	logger.Debug("Formatter finished.")
	return nil
}
