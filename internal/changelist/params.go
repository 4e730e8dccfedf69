package changelist

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Params is an ordered set of request parameters. Unlike url.Values it keeps
// the order keys were first seen in, so links built from it stay stable for
// caching and sharing.
type Params struct {
	keys   []string
	values map[string][]string
}

// ParseParams parses a raw query string, preserving key order.
func ParseParams(rawQuery string) (Params, error) {
	p := Params{values: make(map[string][]string)}
	for _, part := range strings.Split(rawQuery, "&") {
		if part == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(part, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return Params{}, fmt.Errorf("invalid query key %q: %w", rawKey, err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return Params{}, fmt.Errorf("invalid query value for %q: %w", key, err)
		}
		p.add(key, value)
	}
	return p, nil
}

// ParamsFromValues converts url.Values. Since maps carry no order, keys are
// sorted.
func ParamsFromValues(values url.Values) Params {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	p := Params{values: make(map[string][]string, len(values))}
	for _, k := range keys {
		for _, v := range values[k] {
			p.add(k, v)
		}
	}
	return p
}

func (p *Params) add(key, value string) {
	if p.values == nil {
		p.values = make(map[string][]string)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = append(p.values[key], value)
}

// Get returns the first value for key, or "".
func (p Params) Get(key string) string {
	if vs := p.values[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Has reports whether key is present.
func (p Params) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Keys returns the keys in order.
func (p Params) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Clone returns a shallow copy that can be modified independently.
func (p Params) Clone() Params {
	c := Params{
		keys:   make([]string, len(p.keys)),
		values: make(map[string][]string, len(p.values)),
	}
	copy(c.keys, p.keys)
	for k, vs := range p.values {
		c.values[k] = append([]string(nil), vs...)
	}
	return c
}

// With returns a copy with key set to value. An existing key keeps its
// position; a new key is appended.
func (p Params) With(key, value string) Params {
	c := p.Clone()
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = []string{value}
	return c
}

// Encode URL-encodes the parameters in key order.
func (p Params) Encode() string {
	var b strings.Builder
	for _, k := range p.keys {
		ek := url.QueryEscape(k)
		for _, v := range p.values[k] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(ek)
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(v))
		}
	}
	return b.String()
}

// BuildQuery merges overrides on top of base and encodes the result. Keys new
// to base are appended in sorted order.
func BuildQuery(base Params, overrides map[string]string) string {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	merged := base
	for _, k := range keys {
		merged = merged.With(k, overrides[k])
	}
	return merged.Encode()
}
