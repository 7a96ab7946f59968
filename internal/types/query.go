package types

import "slices"

// QuerySegment is a single query component: either a bare value or a key-value pair.
type QuerySegment struct {
	key    string
	value  string
	hasKey bool
}

// KeyValue returns a QuerySegment holding a key-value pair.
func KeyValue(key, value string) QuerySegment {
	return QuerySegment{key: key, value: value, hasKey: true}
}

// ValueOnly returns a QuerySegment holding a bare value without a key.
func ValueOnly(value string) QuerySegment {
	return QuerySegment{value: value}
}

// Key returns the segment key and a bool flag indicating whether it is set.
func (qs QuerySegment) Key() (string, bool) { return qs.key, qs.hasKey }

// Value returns the segment value.
func (qs QuerySegment) Value() string { return qs.value }

// String returns the unescaped "key=value" or "value" form of the segment.
func (qs QuerySegment) String() string {
	if qs.hasKey {
		return qs.key + "=" + qs.value
	}
	return qs.value
}

// Equal compares this segment with another for equality.
func (qs QuerySegment) Equal(val any) bool {
	var other QuerySegment
	switch v := val.(type) {
	case QuerySegment:
		other = v
	case *QuerySegment:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return qs == other
}

// Query is an ordered list of query segments.
type Query []QuerySegment

// Clone returns a copy of the query.
func (q Query) Clone() Query { return slices.Clone(q) }

// Equal compares this query with another for equality, segment by segment.
func (q Query) Equal(val any) bool {
	var other Query
	switch v := val.(type) {
	case Query:
		other = v
	case *Query:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.Equal(q, other)
}

// String returns the unescaped "&"-joined form of the query.
func (q Query) String() string {
	var b []byte
	for i, qs := range q {
		if i > 0 {
			b = append(b, '&')
		}
		b = append(b, qs.String()...)
	}
	return string(b)
}

// Values is an ordered, repeat-key-permitting multi-value collection of
// string query parameters. Unlike a map, it preserves insertion order.
// Keys are case-sensitive.
type Values []QuerySegment

// Add appends a key-value pair to the end of the collection.
func (vals *Values) Add(key, value string) *Values {
	*vals = append(*vals, KeyValue(key, value))
	return vals
}

// Set replaces all values of the key with a single value.
// When the key is absent the pair is appended.
func (vals *Values) Set(key, value string) *Values {
	out := (*vals)[:0]
	done := false
	for _, qs := range *vals {
		if k, ok := qs.Key(); ok && k == key {
			if !done {
				out = append(out, KeyValue(key, value))
				done = true
			}
			continue
		}
		out = append(out, qs)
	}
	if !done {
		out = append(out, KeyValue(key, value))
	}
	*vals = out
	return vals
}

// Get returns all values associated with the key in insertion order.
func (vals Values) Get(key string) []string {
	var out []string
	for _, qs := range vals {
		if k, ok := qs.Key(); ok && k == key {
			out = append(out, qs.Value())
		}
	}
	return out
}

// First returns the first value associated with the key.
func (vals Values) First(key string) (string, bool) {
	for _, qs := range vals {
		if k, ok := qs.Key(); ok && k == key {
			return qs.Value(), true
		}
	}
	return "", false
}

// Last returns the last value associated with the key.
func (vals Values) Last(key string) (string, bool) {
	for i := len(vals) - 1; i >= 0; i-- {
		if k, ok := vals[i].Key(); ok && k == key {
			return vals[i].Value(), true
		}
	}
	return "", false
}

// Has checks whether a given key is in the collection.
func (vals Values) Has(key string) bool {
	_, ok := vals.First(key)
	return ok
}

// Del deletes all values associated with the key.
func (vals *Values) Del(key string) *Values {
	out := (*vals)[:0]
	for _, qs := range *vals {
		if k, ok := qs.Key(); ok && k == key {
			continue
		}
		out = append(out, qs)
	}
	*vals = out
	return vals
}

// Len returns the number of stored pairs.
func (vals Values) Len() int { return len(vals) }

// Clone returns a copy of the collection.
func (vals Values) Clone() Values { return slices.Clone(vals) }

// Segments returns the stored pairs as query segments, in stored order.
func (vals Values) Segments() Query { return Query(slices.Clone(vals)) }

// String returns the unescaped "&"-joined form of the collection.
func (vals Values) String() string { return Query(vals).String() }
