package formstack

import (
	"strconv"
	"strings"
)

// subEntry is one sub-key of a nested parameter.
type subEntry struct {
	key   string
	value string
}

// paramEntry is one key of a Params mapping, holding either a scalar value
// or a one-level nested mapping. Deeper nesting is not supported.
type paramEntry struct {
	key    string
	value  string
	sub    []subEntry
	nested bool
}

// Params is an insertion-ordered mapping of request parameters. Keys map to
// either a scalar value or a flat mapping of sub-keys; both preserve the
// order in which they were first set. The zero value is not usable, call
// NewParams.
type Params struct {
	entries []paramEntry
}

// NewParams creates an empty parameter mapping.
func NewParams() *Params {
	return &Params{
		entries: make([]paramEntry, 0),
	}
}

// Set stores a scalar value under key, replacing any previous value while
// keeping the key's original position.
func (p *Params) Set(key, value string) *Params {
	for i := range p.entries {
		if p.entries[i].key == key {
			p.entries[i] = paramEntry{key: key, value: value}

			return p
		}
	}

	p.entries = append(p.entries, paramEntry{key: key, value: value})

	return p
}

// SetInt stores an integer value under key.
func (p *Params) SetInt(key string, value int) *Params {
	return p.Set(key, strconv.Itoa(value))
}

// SetInt64 stores a 64-bit integer value under key.
func (p *Params) SetInt64(key string, value int64) *Params {
	return p.Set(key, strconv.FormatInt(value, 10))
}

// SetBool stores a flag under key. True encodes as "1"; false omits the key
// entirely, matching how the API treats absent flags.
func (p *Params) SetBool(key string, value bool) *Params {
	if !value {
		return p
	}

	return p.Set(key, "1")
}

// SetSub stores a value under a nested key, emitted as key[subKey]=value.
// Sub-keys keep their insertion order; setting an existing sub-key replaces
// its value in place.
func (p *Params) SetSub(key, subKey, value string) *Params {
	for i := range p.entries {
		if p.entries[i].key != key {
			continue
		}

		entry := &p.entries[i]
		entry.nested = true
		entry.value = ""

		for j := range entry.sub {
			if entry.sub[j].key == subKey {
				entry.sub[j].value = value

				return p
			}
		}

		entry.sub = append(entry.sub, subEntry{key: subKey, value: value})

		return p
	}

	p.entries = append(p.entries, paramEntry{
		key:    key,
		nested: true,
		sub:    []subEntry{{key: subKey, value: value}},
	})

	return p
}

// Len returns the number of keys in the mapping.
func (p *Params) Len() int {
	return len(p.entries)
}

// Empty reports whether the mapping has no keys.
func (p *Params) Empty() bool {
	return p == nil || len(p.entries) == 0
}

// Encode serializes the mapping into the wire form the Formstack API
// expects. Segments are built unescaped in insertion order (key=value for
// scalars, key[subKey]=value per sub-entry for nested keys), joined with
// "&", and then the joined string is percent-escaped in a single pass.
//
// The escape pass leaves the separators "&" and "=" alone since they were
// introduced by the join; an "&" or "=" inside a raw value therefore
// survives as well and cannot be told apart from a separator afterwards.
func (p *Params) Encode() string {
	if p.Empty() {
		return ""
	}

	segments := make([]string, 0, len(p.entries))

	for _, entry := range p.entries {
		if entry.nested {
			for _, sub := range entry.sub {
				segments = append(segments, entry.key+"["+sub.key+"]="+sub.value)
			}

			continue
		}

		segments = append(segments, entry.key+"="+entry.value)
	}

	return escapeQuery(strings.Join(segments, "&"))
}

const upperhex = "0123456789ABCDEF"

// escapeQuery percent-escapes every byte outside the unreserved set except
// the separators "&" and "=". Spaces become %20, not "+".
func escapeQuery(s string) string {
	var builder strings.Builder

	builder.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) || c == '&' || c == '=' {
			builder.WriteByte(c)

			continue
		}

		builder.WriteByte('%')
		builder.WriteByte(upperhex[c>>4])
		builder.WriteByte(upperhex[c&0x0F])
	}

	return builder.String()
}

// isUnreserved reports whether c needs no escaping in a URI (RFC 3986
// unreserved characters).
func isUnreserved(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_' || c == '.' || c == '~':
		return true
	}

	return false
}
