package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/symplect/report"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestRecordKeyOrder: keys encode in insertion order, not sorted.
func TestRecordKeyOrder(t *testing.T) {
	r := report.NewRecord()
	require.NoError(t, r.Set("vertices", 40))
	require.NoError(t, r.Set("degree", 12))
	require.NoError(t, r.Set("betti", []int{1, 0, 5}))
	require.NoError(t, r.Set("euler", -15))

	var buf bytes.Buffer
	require.NoError(t, r.EncodeYAML(&buf))
	out := buf.String()

	iV := strings.Index(out, "vertices:")
	iD := strings.Index(out, "degree:")
	iB := strings.Index(out, "betti:")
	iE := strings.Index(out, "euler:")
	require.True(t, iV >= 0 && iV < iD && iD < iB && iB < iE, "order lost:\n%s", out)
}

// TestRecordOverwriteKeepsPosition: re-setting a key replaces the value in
// place.
func TestRecordOverwriteKeepsPosition(t *testing.T) {
	r := report.NewRecord()
	require.NoError(t, r.Set("seed", int64(1)))
	require.NoError(t, r.Set("group_order", 720))
	require.NoError(t, r.Set("seed", int64(42)))

	require.Equal(t, []string{"seed", "group_order"}, r.Keys())
	v, ok := r.Get("seed")
	require.True(t, ok)
	require.Equal(t, int64(42), v)

	require.ErrorIs(t, r.Set("", 1), report.ErrEmptyKey)
}

// TestNestedRecord: search results nest under their own record.
func TestNestedRecord(t *testing.T) {
	search := report.NewRecord()
	require.NoError(t, search.Set("status", "solved"))
	require.NoError(t, search.Set("objective", 0))
	require.NoError(t, search.Set("nodes", 131))

	r := report.NewRecord()
	require.NoError(t, r.Set("vertices", 15))
	require.NoError(t, r.Set("search", search))

	var buf bytes.Buffer
	require.NoError(t, r.EncodeYAML(&buf))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, 15, decoded["vertices"])
	nested, ok := decoded["search"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "solved", nested["status"])
	require.Equal(t, 131, nested["nodes"])
}

// TestLineTable: rows copy their input and round-trip through YAML.
func TestLineTable(t *testing.T) {
	lines := [][]int{{0, 1, 2}, {3, 4, 5}}
	table := report.NewLineTable(lines)
	lines[0][0] = 99
	require.Equal(t, 0, table.Rows[0].Vertices[0])

	table.Tag(1, "orbit:0")
	table.Tag(7, "ignored") // out of range, no panic

	r := report.NewRecord()
	require.NoError(t, r.Set("lines", table))
	var buf bytes.Buffer
	require.NoError(t, r.EncodeYAML(&buf))

	var decoded struct {
		Lines report.LineTable `yaml:"lines"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Lines.Rows, 2)
	require.Equal(t, []int{3, 4, 5}, decoded.Lines.Rows[1].Vertices)
	require.Equal(t, []string{"orbit:0"}, decoded.Lines.Rows[1].Tags)
}
