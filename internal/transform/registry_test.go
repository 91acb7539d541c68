package transform

import (
	"testing"

	"github.com/roboco-io/pnmedit/internal/ir"
)

func noop(img *ir.Image, enc ir.Encoding) error {
	return nil
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()

	if r == nil {
		t.Fatal("expected non-nil registry")
	}
	if r.Count() != 0 {
		t.Errorf("expected 0 transforms, got %d", r.Count())
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(Transform{Name: "test", Apply: noop}); err != nil {
		t.Fatalf("failed to register: %v", err)
	}
	if r.Count() != 1 {
		t.Errorf("expected 1 transform, got %d", r.Count())
	}
}

func TestRegistry_RegisterInvalid(t *testing.T) {
	tests := []struct {
		name string
		t    Transform
	}{
		{"nil function", Transform{Name: "test"}},
		{"empty name", Transform{Apply: noop}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRegistry()
			if err := r.Register(tc.t); err == nil {
				t.Error("expected error")
			}
			if r.Count() != 0 {
				t.Errorf("expected nothing registered, got %d", r.Count())
			}
		})
	}
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(Transform{Name: "test", Apply: noop}); err != nil {
		t.Fatalf("failed to register first: %v", err)
	}
	if err := r.Register(Transform{Name: "test", Apply: noop}); err == nil {
		t.Error("expected error for duplicate registration")
	}
}

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(Transform{Name: "test", Description: "does nothing", Apply: noop})

	got, err := r.Get("test")
	if err != nil {
		t.Fatalf("failed to get: %v", err)
	}
	if got.Name != "test" || got.Description != "does nothing" {
		t.Errorf("unexpected transform: %+v", got)
	}

	if _, err := r.Get("nonexistent"); err == nil {
		t.Error("expected error for nonexistent transform")
	}
}

func TestRegistry_List(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(Transform{Name: "gamma", Apply: noop})
	_ = r.Register(Transform{Name: "alpha", Apply: noop})
	_ = r.Register(Transform{Name: "beta", Apply: noop})

	names := r.List()

	if len(names) != 3 {
		t.Fatalf("expected 3 names, got %d", len(names))
	}
	// List should be sorted
	if names[0] != "alpha" || names[1] != "beta" || names[2] != "gamma" {
		t.Errorf("expected sorted list, got %v", names)
	}
}

func TestRegistry_Has(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(Transform{Name: "test", Apply: noop})

	if !r.Has("test") {
		t.Error("expected Has('test') to return true")
	}
	if r.Has("nonexistent") {
		t.Error("expected Has('nonexistent') to return false")
	}
}

func TestRegistry_Unregister(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(Transform{Name: "test", Apply: noop})

	if err := r.Unregister("test"); err != nil {
		t.Fatalf("failed to unregister: %v", err)
	}
	if r.Count() != 0 {
		t.Errorf("expected 0 transforms after unregister, got %d", r.Count())
	}
	if err := r.Unregister("test"); err == nil {
		t.Error("expected error for second unregister")
	}
}

func TestDefaultRegistry(t *testing.T) {
	want := []string{"flipX", "flipY", "grayscale", "rotateCCW", "rotateCW", "sepia"}

	got := List()
	if len(got) != len(want) {
		t.Fatalf("expected %d builtins, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	for _, name := range want {
		tr, err := Get(name)
		if err != nil {
			t.Errorf("Get(%q): %v", name, err)
			continue
		}
		if tr.Description == "" {
			t.Errorf("%s has no description", name)
		}
	}
}
