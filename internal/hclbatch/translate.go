package hclbatch

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/recprint/internal/record"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

// newEvalContext exposes the functions usable inside record attributes.
func newEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"concat":    stdlib.ConcatFunc,
			"format":    stdlib.FormatFunc,
			"join":      stdlib.JoinFunc,
			"length":    stdlib.LengthFunc,
			"lower":     stdlib.LowerFunc,
			"range":     stdlib.RangeFunc,
			"strrev":    stdlib.ReverseFunc,
			"substr":    stdlib.SubstrFunc,
			"trimspace": stdlib.TrimSpaceFunc,
			"upper":     stdlib.UpperFunc,
		},
	}
}

// translateRecord evaluates a record block into a record.Record.
func translateRecord(blk *recordBlock, evalCtx *hcl.EvalContext) (record.Record, error) {
	value, err := decodeValue(blk.Value, evalCtx)
	if err != nil {
		return record.Record{}, fmt.Errorf("%s: value: %w", blk.DefRange, err)
	}
	opaque, err := decodeOpaque(blk.Opaque, evalCtx)
	if err != nil {
		return record.Record{}, fmt.Errorf("%s: opaque: %w", blk.DefRange, err)
	}
	return record.Record{Value: value, Opaque: opaque}, nil
}

func decodeValue(expr hcl.Expression, evalCtx *hcl.EvalContext) (int64, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return 0, diags
	}
	if val.IsNull() {
		return 0, errors.New("must not be null")
	}

	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("expected a number, got %s", val.Type().FriendlyName())
	}

	var n int64
	if err := gocty.FromCtyValue(num, &n); err != nil {
		return 0, err
	}
	return n, nil
}

// decodeOpaque accepts a string or a sequence of byte values. cty stores
// strings in Unicode NFC, so a string yields the UTF-8 bytes of its NFC form;
// use a byte list when exact bytes matter.
func decodeOpaque(expr hcl.Expression, evalCtx *hcl.EvalContext) ([]byte, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, errors.New("must not be null")
	}

	ty := val.Type()
	switch {
	case ty == cty.String:
		return []byte(val.AsString()), nil
	case ty.IsTupleType() || ty.IsListType():
		list, err := convert.Convert(val, cty.List(cty.Number))
		if err != nil {
			return nil, fmt.Errorf("byte list must contain only numbers: %w", err)
		}
		out := []byte{}
		if err := gocty.FromCtyValue(list, &out); err != nil {
			return nil, fmt.Errorf("invalid byte list: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected a string or a list of byte values, got %s", ty.FriendlyName())
	}
}
