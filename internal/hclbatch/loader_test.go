package hclbatch

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/recprint/internal/record"
	"github.com/specialistvlad/recprint/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestLoad_Forms(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		hcl  string
		want []record.Record
	}{
		{
			name: "sample batch",
			hcl: `
				record {
					value  = 123
					opaque = "hello"
				}
				record {
					value  = 456
					opaque = "world"
				}
			`,
			want: record.Sample(),
		},
		{
			name: "byte list",
			hcl: `
				record {
					value  = -1
					opaque = [104, 105, 0, 255]
				}
			`,
			want: []record.Record{{Value: -1, Opaque: []byte{'h', 'i', 0x00, 0xff}}},
		},
		{
			name: "empty byte list and empty string",
			hcl: `
				record {
					value  = 1
					opaque = []
				}
				record {
					value  = 2
					opaque = ""
				}
			`,
			want: []record.Record{
				{Value: 1, Opaque: []byte{}},
				{Value: 2, Opaque: []byte{}},
			},
		},
		{
			name: "functions",
			hcl: `
				record {
					value  = length([1, 2, 3])
					opaque = upper(format("opaque %d", 7))
				}
				record {
					value  = 10
					opaque = range(97, 100)
				}
			`,
			want: []record.Record{
				{Value: 3, Opaque: []byte("OPAQUE 7")},
				{Value: 10, Opaque: []byte("abc")},
			},
		},
		{
			name: "numeric string value",
			hcl: `
				record {
					value  = "42"
					opaque = "x"
				}
			`,
			want: []record.Record{{Value: 42, Opaque: []byte("x")}},
		},
		{
			name: "non-ascii string keeps utf-8 bytes",
			hcl: `
				record {
					value  = 5
					opaque = "é"
				}
			`,
			want: []record.Record{{Value: 5, Opaque: []byte{0xc3, 0xa9}}},
		},
		{
			name: "decomposed string is normalized to nfc",
			hcl: `
				record {
					value  = 6
					opaque = "e\u0301"
				}
			`,
			want: []record.Record{{Value: 6, Opaque: []byte{0xc3, 0xa9}}},
		},
		{
			name: "no records",
			hcl:  `# empty`,
			want: []record.Record{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := testutil.WriteFile(t, "batch.hcl", tc.hcl)

			got, err := NewLoader().Load(context.Background(), path)

			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		hcl     string
		wantErr string
	}{
		{
			name:    "syntax error",
			hcl:     "record {\n value = 1\n",
			wantErr: "failed to parse HCL file",
		},
		{
			name:    "missing opaque",
			hcl:     "record {\n value = 1\n}\n",
			wantErr: "Missing required argument",
		},
		{
			name:    "unknown attribute",
			hcl:     "record {\n value = 1\n opaque = \"a\"\n extra = true\n}\n",
			wantErr: "Unsupported argument",
		},
		{
			name:    "fractional value",
			hcl:     "record {\n value = 1.5\n opaque = \"a\"\n}\n",
			wantErr: "value:",
		},
		{
			name:    "boolean value",
			hcl:     "record {\n value = true\n opaque = \"a\"\n}\n",
			wantErr: "expected a number, got bool",
		},
		{
			name:    "null opaque",
			hcl:     "record {\n value = 1\n opaque = null\n}\n",
			wantErr: "opaque: must not be null",
		},
		{
			name:    "byte out of range",
			hcl:     "record {\n value = 1\n opaque = [256]\n}\n",
			wantErr: "invalid byte list",
		},
		{
			name:    "non-numeric byte",
			hcl:     "record {\n value = 1\n opaque = [\"a\"]\n}\n",
			wantErr: "byte list must contain only numbers",
		},
		{
			name:    "number opaque",
			hcl:     "record {\n value = 1\n opaque = 12\n}\n",
			wantErr: "expected a string or a list of byte values, got number",
		},
		{
			name:    "unknown function",
			hcl:     "record {\n value = 1\n opaque = base64decode(\"aGk=\")\n}\n",
			wantErr: "Call to unknown function",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := testutil.WriteFile(t, "batch.hcl", tc.hcl)

			_, err := NewLoader().Load(context.Background(), path)

			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
			require.Contains(t, err.Error(), path)
		})
	}
}

func TestLoad_DirectoryKeepsFileOrder(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := testutil.WriteFiles(t, map[string]string{
		"02_second.hcl": `record {
			value  = 2
			opaque = "second"
		}`,
		"01_first.hcl": `record {
			value  = 1
			opaque = "first"
		}`,
		"README.md": "not a batch",
	})

	// --- Act ---
	got, err := NewLoader().Load(context.Background(), dir)

	// --- Assert ---
	require.NoError(t, err)
	want := []record.Record{
		{Value: 1, Opaque: []byte("first")},
		{Value: 2, Opaque: []byte("second")},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing.hcl"))

	require.Error(t, err)
	require.Contains(t, err.Error(), "missing.hcl")
}
