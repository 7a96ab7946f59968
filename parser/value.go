package parser

import (
	"fmt"
	"reflect"

	"github.com/ghettovoice/uritmpl/uri"
)

// valueShape classifies an embedded value by how it expands into the
// reference: absent values vanish, scalars contribute text, sequences and
// mappings expand into multiple path segments or query parameters.
type valueShape uint8

const (
	shapeAbsent valueShape = iota
	shapeScalar
	shapeSequence
	shapeMapping
	shapeParams
)

// embedded is a single value interpolated between two literal segments.
type embedded struct {
	raw      any
	shape    valueShape
	rendered string // cached text form, filled for scalars
}

var absentValue = &embedded{shape: shapeAbsent}

// newEmbedded classifies v into one of the value shapes. Nil values, nil
// pointers, nil maps and nil slices are absent; sequences and arrays expand
// element-wise; maps expand as key-value pairs; query types expand as
// ready-made parameter segments; everything else renders as a single scalar.
func newEmbedded(v any) *embedded {
	if v == nil {
		return absentValue
	}
	switch vv := v.(type) {
	case uri.Values:
		if vv == nil {
			return absentValue
		}
		return &embedded{raw: v, shape: shapeParams}
	case *uri.Values:
		if vv == nil || *vv == nil {
			return absentValue
		}
		return &embedded{raw: *vv, shape: shapeParams}
	case uri.Query:
		if vv == nil {
			return absentValue
		}
		return &embedded{raw: v, shape: shapeParams}
	case uri.QuerySegment:
		return &embedded{raw: v, shape: shapeParams}
	case string:
		return &embedded{raw: v, shape: shapeScalar, rendered: vv}
	case []byte:
		if vv == nil {
			return absentValue
		}
		return &embedded{raw: v, shape: shapeScalar, rendered: string(vv)}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return absentValue
		}
		if s, ok := v.(fmt.Stringer); ok {
			return &embedded{raw: v, shape: shapeScalar, rendered: s.String()}
		}
		return newEmbedded(rv.Elem().Interface())
	case reflect.Slice:
		if rv.IsNil() {
			return absentValue
		}
		return &embedded{raw: v, shape: shapeSequence}
	case reflect.Array:
		return &embedded{raw: v, shape: shapeSequence}
	case reflect.Map:
		if rv.IsNil() {
			return absentValue
		}
		return &embedded{raw: v, shape: shapeMapping}
	default:
		return &embedded{raw: v, shape: shapeScalar, rendered: renderScalar(v)}
	}
}

// render returns the text contribution of the value when it is used in a
// textual position (scheme, host chunk, path segment and so on).
func (e *embedded) render() string {
	switch e.shape {
	case shapeAbsent:
		return ""
	case shapeScalar:
		return e.rendered
	default:
		return renderScalar(e.raw)
	}
}

// items returns the elements of a sequence-shaped value.
func (e *embedded) items() []any {
	rv := reflect.ValueOf(e.raw)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// entries returns the key-value pairs of a mapping-shaped value, both sides
// rendered to text. Iteration order follows the map's own range order.
func (e *embedded) entries() [][2]string {
	rv := reflect.ValueOf(e.raw)
	out := make([][2]string, 0, rv.Len())
	for it := rv.MapRange(); it.Next(); {
		out = append(out, [2]string{
			renderScalar(it.Key().Interface()),
			renderScalar(it.Value().Interface()),
		})
	}
	return out
}

// params returns ready-made query segments of a params-shaped value.
func (e *embedded) params() uri.Query {
	switch vv := e.raw.(type) {
	case uri.Values:
		return vv.Segments()
	case uri.Query:
		return vv
	case uri.QuerySegment:
		return uri.Query{vv}
	default:
		return nil
	}
}

// renderScalar converts a single element to its text form.
func renderScalar(v any) string {
	switch vv := v.(type) {
	case nil:
		return ""
	case string:
		return vv
	case []byte:
		return string(vv)
	case fmt.Stringer:
		return vv.String()
	default:
		return fmt.Sprint(v)
	}
}

// querySegmentOf converts a sequence element into a query segment: ready
// segments pass through, two-element string pairs become key-value segments,
// anything else becomes a value-only segment.
func querySegmentOf(v any) uri.QuerySegment {
	switch vv := v.(type) {
	case uri.QuerySegment:
		return vv
	case [2]string:
		return uri.KeyValue(vv[0], vv[1])
	default:
		return uri.ValueOnly(renderScalar(v))
	}
}
