package transform

import (
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"
)

// Transform is a named operation.
type Transform struct {
	Name        string
	Description string
	Apply       Func
}

// Registry manages transforms by name.
type Registry struct {
	mu         sync.RWMutex
	transforms map[string]Transform
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		transforms: make(map[string]Transform),
	}
}

// Register adds a transform to the registry.
func (r *Registry) Register(t Transform) error {
	if t.Apply == nil {
		return fmt.Errorf("cannot register transform without a function")
	}
	if t.Name == "" {
		return fmt.Errorf("transform name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.transforms[t.Name]; exists {
		return fmt.Errorf("transform already registered: %s", t.Name)
	}

	r.transforms[t.Name] = t
	return nil
}

// Get returns a transform by name.
func (r *Registry) Get(name string) (Transform, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.transforms[name]
	if !ok {
		return Transform{}, fmt.Errorf("transform not found: %s", name)
	}
	return t, nil
}

// List returns all registered transform names (sorted).
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := lo.Keys(r.transforms)
	sort.Strings(names)
	return names
}

// Has checks if a transform is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.transforms[name]
	return ok
}

// Count returns the number of registered transforms.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.transforms)
}

// Unregister removes a transform from the registry.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.transforms[name]; !ok {
		return fmt.Errorf("transform not found: %s", name)
	}
	delete(r.transforms, name)
	return nil
}

// DefaultRegistry holds the six built-in transforms.
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	builtins := []Transform{
		{Name: OpFlipX.String(), Description: "Flip the image on the X axis", Apply: FlipX},
		{Name: OpFlipY.String(), Description: "Flip the image on the Y axis", Apply: FlipY},
		{Name: OpRotateCW.String(), Description: "Rotate the image clockwise", Apply: RotateCW},
		{Name: OpRotateCCW.String(), Description: "Rotate the image counter clockwise", Apply: RotateCCW},
		{Name: OpGrayscale.String(), Description: "Convert image to grayscale", Apply: Grayscale},
		{Name: OpSepia.String(), Description: "Antique a color image", Apply: Sepia},
	}
	for _, t := range builtins {
		if err := r.Register(t); err != nil {
			panic(err)
		}
	}
	return r
}

// Get returns a transform from the default registry.
func Get(name string) (Transform, error) {
	return DefaultRegistry.Get(name)
}

// List returns all transform names from the default registry.
func List() []string {
	return DefaultRegistry.List()
}
