package types_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/uritmpl/internal/types"
)

func TestQuerySegment(t *testing.T) {
	t.Parallel()

	kv := types.KeyValue("a", "1")
	if k, ok := kv.Key(); !ok || k != "a" {
		t.Errorf("kv.Key() = %q, %v, want %q, true", k, ok, "a")
	}
	if got, want := kv.String(), "a=1"; got != want {
		t.Errorf("kv.String() = %q, want %q", got, want)
	}

	vo := types.ValueOnly("debug")
	if _, ok := vo.Key(); ok {
		t.Error("vo.Key() has = true, want false")
	}
	if got, want := vo.String(), "debug"; got != want {
		t.Errorf("vo.String() = %q, want %q", got, want)
	}

	if kv.Equal(vo) {
		t.Error("kv.Equal(vo) = true, want false")
	}
	if !kv.Equal(types.KeyValue("a", "1")) {
		t.Error(`kv.Equal(KeyValue("a", "1")) = false, want true`)
	}
	// A bare value and a key-value pair with an empty key are distinct.
	if types.ValueOnly("").Equal(types.KeyValue("", "")) {
		t.Error(`ValueOnly("").Equal(KeyValue("", "")) = true, want false`)
	}
}

func TestQuery_String(t *testing.T) {
	t.Parallel()

	q := types.Query{
		types.KeyValue("a", "1"),
		types.ValueOnly("debug"),
		types.KeyValue("a", "2"),
	}
	if got, want := q.String(), "a=1&debug&a=2"; got != want {
		t.Errorf("q.String() = %q, want %q", got, want)
	}
}

func TestValues(t *testing.T) {
	t.Parallel()

	var vals types.Values
	vals.Add("a", "1").Add("b", "2").Add("a", "3")

	if got, want := vals.Len(), 3; got != want {
		t.Fatalf("vals.Len() = %d, want %d", got, want)
	}
	if diff := cmp.Diff(vals.Get("a"), []string{"1", "3"}); diff != "" {
		t.Errorf("vals.Get(a) mismatch (-got +want):\n%v", diff)
	}
	if v, ok := vals.First("a"); !ok || v != "1" {
		t.Errorf("vals.First(a) = %q, %v, want %q, true", v, ok, "1")
	}
	if v, ok := vals.Last("a"); !ok || v != "3" {
		t.Errorf("vals.Last(a) = %q, %v, want %q, true", v, ok, "3")
	}
	if !vals.Has("b") || vals.Has("c") {
		t.Errorf("vals.Has(b), vals.Has(c) = %v, %v, want true, false", vals.Has("b"), vals.Has("c"))
	}

	vals.Set("a", "9")
	if diff := cmp.Diff(vals.Get("a"), []string{"9"}); diff != "" {
		t.Errorf("vals.Get(a) after Set mismatch (-got +want):\n%v", diff)
	}
	if got, want := vals.String(), "a=9&b=2"; got != want {
		t.Errorf("vals.String() = %q, want %q", got, want)
	}

	vals.Del("a")
	if vals.Has("a") {
		t.Error("vals.Has(a) after Del = true, want false")
	}

	segs := vals.Segments()
	if got, want := segs.String(), "b=2"; got != want {
		t.Errorf("segs.String() = %q, want %q", got, want)
	}
}
