// Package env captures the environment snapshot injected into generated code.
//
// The snapshot is an explicit value: components receive it as input and never
// read the process environment themselves.
package env

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Map holds serialized environment values. Each value is a JSON string
// literal, so it can be embedded verbatim in generated code.
type Map map[string]string

// Serialize encodes every value of snapshot as a string literal. The keys of
// the result are exactly the keys of snapshot.
func Serialize(snapshot map[string]string) Map {
	out := make(Map, len(snapshot))
	for k, v := range snapshot {
		out[k] = quote(v)
	}
	return out
}

// Decode reverses Serialize.
func Decode(m Map) (map[string]string, error) {
	out := make(map[string]string, len(m))
	for k, literal := range m {
		var v string
		if err := json.Unmarshal([]byte(literal), &v); err != nil {
			return nil, fmt.Errorf("decode %s: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}

func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}

// FromEnviron converts KEY=VALUE pairs, as returned by os.Environ, into a
// snapshot. Entries without a separator are ignored.
func FromEnviron(environ []string) map[string]string {
	out := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		out[k] = v
	}
	return out
}
