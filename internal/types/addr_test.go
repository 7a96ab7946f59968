package types_test

import (
	"testing"

	"github.com/ghettovoice/uritmpl/internal/types"
)

func TestAddr_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		addr types.Addr
		want string
	}{
		{"zero", types.Addr{}, ""},
		{"hostname", types.Host("example.com"), "example.com"},
		{"hostname and port", types.HostPort("example.com", 5060), "example.com:5060"},
		{"ipv4", types.Host("192.0.2.1"), "192.0.2.1"},
		{"ipv4 and port", types.HostPort("192.0.2.1", 80), "192.0.2.1:80"},
		{"ipv6", types.Host("2001:db8::1"), "[2001:db8::1]"},
		{"ipv6 bracketed input", types.Host("[2001:db8::1]"), "[2001:db8::1]"},
		{"ipv6 and port", types.HostPort("2001:db8::1", 8080), "[2001:db8::1]:8080"},
		{"empty host and port", types.HostPort("", 80), ":80"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.addr.String(); got != c.want {
				t.Errorf("addr.String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestAddr_Equal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b types.Addr
		want bool
	}{
		{"zero", types.Addr{}, types.Addr{}, true},
		{"case-insensitive host", types.Host("Example.COM"), types.Host("example.com"), true},
		{"different host", types.Host("a.com"), types.Host("b.com"), false},
		{"port mismatch", types.HostPort("a.com", 80), types.Host("a.com"), false},
		{"ip forms", types.Host("2001:db8::1"), types.Host("[2001:db8::1]"), true},
		{"ip vs hostname", types.Host("192.0.2.1"), types.Host("example.com"), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.a.Equal(c.b); got != c.want {
				t.Errorf("addr.Equal(%v) = %v, want %v", c.b, got, c.want)
			}
		})
	}
}

func TestAddr_PortAndZero(t *testing.T) {
	t.Parallel()

	addr := types.HostPort("example.com", 8080)
	if port, ok := addr.Port(); !ok || port != 8080 {
		t.Errorf("addr.Port() = %d, %v, want 8080, true", port, ok)
	}
	if addr.IsZero() {
		t.Error("addr.IsZero() = true, want false")
	}
	if !(types.Addr{}).IsZero() {
		t.Error("Addr{}.IsZero() = false, want true")
	}

	clone := addr.Clone()
	if !addr.Equal(clone) {
		t.Errorf("addr.Clone() = %v, want %v", clone, addr)
	}
}

func TestAddr_IsValid(t *testing.T) {
	t.Parallel()

	if !types.Host("example.com").IsValid() {
		t.Error(`Host("example.com").IsValid() = false, want true`)
	}
	if types.Host("ex ample").IsValid() {
		t.Error(`Host("ex ample").IsValid() = true, want false`)
	}
}
