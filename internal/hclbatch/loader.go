package hclbatch

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/recprint/internal/config"
	"github.com/specialistvlad/recprint/internal/ctxlog"
	"github.com/specialistvlad/recprint/internal/fsutil"
	"github.com/specialistvlad/recprint/internal/record"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new HCL batch loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is the top-level schema of a batch file.
type fileRoot struct {
	Records []*recordBlock `hcl:"record,block"`
}

// recordBlock keeps raw expressions so they can be evaluated with functions.
type recordBlock struct {
	Value    hcl.Expression `hcl:"value"`
	Opaque   hcl.Expression `hcl:"opaque"`
	DefRange hcl.Range      `hcl:",def_range"`
}

// Load parses every batch file found under paths and returns the records in
// file order, then block order.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]record.Record, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL batch loader started.", "path_count", len(paths))

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFiles(path, ".hcl")
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	logger.Debug("Discovered batch files.", "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := newEvalContext()
	records := []record.Record{}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, blk := range root.Records {
			rec, err := translateRecord(blk, evalCtx)
			if err != nil {
				return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, err)
			}
			records = append(records, rec)
		}
		logger.Debug("Batch file loaded.", "file", file, "records", len(root.Records))
	}

	logger.Info("HCL batch loaded.", "files", len(files), "records", len(records))
	return records, nil
}
