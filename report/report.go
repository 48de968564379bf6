// Package report holds the interchange records the command surface emits:
// a hierarchical key-value Record with stable, insertion-ordered keys, and
// a flat LineTable of vertex-index rows. Both encode to YAML.
//
// Stable top-level keys used across the module: vertices, degree, srg,
// group_order, betti, euler, search.status, search.objective, search.nodes,
// seed.
package report

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrEmptyKey indicates Set was called with an empty key.
var ErrEmptyKey = errors.New("report: empty key")

// Record is an ordered key→value map. Values are integers, floats,
// strings, bools, int lists, nested *Record values, or *LineTable values.
// Keys keep insertion order when encoded; setting an existing key replaces
// the value in place.
type Record struct {
	keys []string
	vals map[string]any
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{vals: make(map[string]any)}
}

// Set stores value under key, preserving the key's first insertion position.
func (r *Record) Set(key string, value any) error {
	if key == "" {
		return fmt.Errorf("Set: %w", ErrEmptyKey)
	}
	if _, ok := r.vals[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.vals[key] = value

	return nil
}

// Get returns the value under key and whether it is present.
func (r *Record) Get(key string) (any, bool) {
	v, ok := r.vals[key]

	return v, ok
}

// Keys returns the keys in insertion order.
func (r *Record) Keys() []string {
	return append([]string(nil), r.keys...)
}

// MarshalYAML renders the record as a mapping node with ordered keys, so
// yaml.Marshal and yaml.Encoder both respect insertion order.
func (r *Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range r.keys {
		kn := &yaml.Node{}
		if err := kn.Encode(key); err != nil {
			return nil, fmt.Errorf("MarshalYAML: key %q: %w", key, err)
		}
		vn := &yaml.Node{}
		if err := vn.Encode(r.vals[key]); err != nil {
			return nil, fmt.Errorf("MarshalYAML: value of %q: %w", key, err)
		}
		node.Content = append(node.Content, kn, vn)
	}

	return node, nil
}

// EncodeYAML writes the record as one YAML document to w.
func (r *Record) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("EncodeYAML: %w", err)
	}

	return enc.Close()
}

// LineRow is one line (or edge) of the graph/line interchange: an ordered
// vertex-index list plus derived tags such as an orbit label.
type LineRow struct {
	Vertices []int    `yaml:"vertices"`
	Tags     []string `yaml:"tags,omitempty"`
}

// LineTable is the flat tabular form of a line or edge set.
type LineTable struct {
	Rows []LineRow `yaml:"rows"`
}

// NewLineTable builds a table from vertex-index lists, copying each row.
func NewLineTable(lines [][]int) *LineTable {
	t := &LineTable{Rows: make([]LineRow, len(lines))}
	for i, line := range lines {
		t.Rows[i] = LineRow{Vertices: append([]int(nil), line...)}
	}

	return t
}

// Tag appends a tag to row i; out-of-range rows are ignored.
func (t *LineTable) Tag(i int, tag string) {
	if i < 0 || i >= len(t.Rows) {
		return
	}
	t.Rows[i].Tags = append(t.Rows[i].Tags, tag)
}
