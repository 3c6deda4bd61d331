package pages

import (
	"bytes"
	"encoding/json"
	"maps"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/pagegraph/internal/foundation/errors"
)

// Entries maps entry names to entry modules, keeping page order.
type Entries struct {
	names []string
	paths map[string]string
}

// ResolveEntries maps each descriptor to a named entry. Two descriptors with
// the same name fail with ErrDuplicateEntry.
func ResolveEntries(pages []Descriptor) (Entries, error) {
	e := Entries{
		names: make([]string, 0, len(pages)),
		paths: make(map[string]string, len(pages)),
	}
	for _, p := range pages {
		if first, exists := e.paths[p.Name]; exists {
			return Entries{}, ferrors.DuplicateEntry(p.Name, first, p.Entry)
		}
		e.names = append(e.names, p.Name)
		e.paths[p.Name] = p.Entry
	}
	return e, nil
}

// Names returns entry names in page order.
func (e Entries) Names() []string { return append([]string(nil), e.names...) }

// Len returns the number of entries.
func (e Entries) Len() int { return len(e.names) }

// Get returns the entry module for name.
func (e Entries) Get(name string) (string, bool) {
	p, ok := e.paths[name]
	return p, ok
}

// Map returns a copy of the entries as a plain map.
func (e Entries) Map() map[string]string {
	return maps.Clone(e.paths)
}

// MarshalJSON writes the entries as an object with keys in page order.
func (e Entries) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range e.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.paths[name])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML writes the entries as a mapping with keys in page order.
func (e Entries) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, name := range e.names {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.paths[name]},
		)
	}
	return node, nil
}
