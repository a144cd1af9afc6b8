package gapps

import (
	"net/url"
	"strings"
)

// internalParamPrefix marks parameters that are kept on the builder but never
// rendered into the query string.
const internalParamPrefix = "_"

// Params is an ordered mapping of query-string parameters. Keys render in
// first-insertion order; overwriting a key keeps its position. The zero
// value is an empty mapping ready to use.
type Params struct {
	keys   []string
	values map[string]string
}

// Set stores value under key.
func (p *Params) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value stored under key and whether the key is present.
func (p *Params) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Delete removes key. Deleting an absent key is a no-op.
func (p *Params) Delete(key string) {
	if _, ok := p.values[key]; !ok {
		return
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of stored parameters, internal ones included.
func (p *Params) Len() int {
	return len(p.keys)
}

// Keys returns a copy of the stored keys in insertion order.
func (p *Params) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Encode renders the parameters as "?k1=v1&k2=v2" in insertion order with
// form encoding applied to keys and values. Internal parameters are skipped.
// Returns "" when nothing renders.
func (p *Params) Encode() string {
	var b strings.Builder
	for _, k := range p.keys {
		if strings.HasPrefix(k, internalParamPrefix) {
			continue
		}
		if b.Len() == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(formEscape(k))
		b.WriteByte('=')
		b.WriteString(formEscape(p.values[k]))
	}
	return b.String()
}

// formEscape is url.QueryEscape with '~' also percent-encoded, so values
// render byte-for-byte like classic form encoding.
func formEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "~", "%7E")
}
