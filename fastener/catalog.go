// Package fastener holds a catalog of fastener dimensions and builds
// bolts, nuts and washers from it.
package fastener

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/soypat/fanmount/attr"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNotNumeric is returned when a numeric attribute holds text.
	ErrNotNumeric = errors.New("fastener: attribute is not numeric")
	// ErrPrecondition is returned for dimensions no part can be built with.
	ErrPrecondition = errors.New("fastener: precondition violated")
)

// Attribute names used by the generators.
const (
	AttrThreadSpec      = "thread_spec"
	AttrThreadPitch     = "thread_pitch"
	AttrThreadDiameter  = "thread_diameter"
	AttrHeadAcrossFlats = "head_across_flats"
	AttrHeadThickness   = "head_thickness"
	AttrNutAcrossFlats  = "nut_across_flats"
	AttrNutThickness    = "nut_thickness"
	AttrWasherInner     = "washer_inner_diameter"
	AttrWasherOuter     = "washer_outer_diameter"
	AttrWasherThickness = "washer_thickness"
	AttrFenderInner     = "fender_washer_inner_diameter"
	AttrFenderOuter     = "fender_washer_outer_diameter"
	AttrFenderThickness = "fender_washer_thickness"
)

// Spec is the immutable set of attributes of one fastener size.
type Spec struct {
	name  string
	attrs attr.Table[Value]
}

// NewSpec builds a Spec. Duplicate attribute names are an error.
func NewSpec(name string, attrs ...attr.Pair[Value]) (*Spec, error) {
	t, err := attr.New(attrs...)
	if err != nil {
		return nil, fmt.Errorf("fastener: spec %q: %w", name, err)
	}
	return &Spec{name: name, attrs: t}, nil
}

// Name returns the catalog name of the spec.
func (s *Spec) Name() string { return s.name }

// Keys returns the attribute names in catalog order.
func (s *Spec) Keys() []string { return s.attrs.Keys() }

// Has reports whether the attribute is present.
func (s *Spec) Has(name string) bool { return s.attrs.Exists(name) }

// Value returns the raw attribute.
func (s *Spec) Value(name string) (Value, error) { return s.attrs.Get(name) }

// Float returns a numeric attribute.
func (s *Spec) Float(name string) (float64, error) {
	v, err := s.attrs.Get(name)
	if err != nil {
		return 0, err
	}
	f, ok := v.Float()
	if !ok {
		return 0, fmt.Errorf("%w: %s %s=%q", ErrNotNumeric, s.name, name, v.str)
	}
	return f, nil
}

// FloatOrZero returns a numeric attribute or 0 when it is absent.
func (s *Spec) FloatOrZero(name string) (float64, error) {
	if !s.Has(name) {
		return 0, nil
	}
	return s.Float(name)
}

// Text returns the attribute formatted as a string.
func (s *Spec) Text(name string) (string, error) {
	v, err := s.attrs.Get(name)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

func (s *Spec) resolve(*Catalog) (*Spec, error) {
	if s == nil {
		return nil, errors.New("fastener: nil spec")
	}
	return s, nil
}

// Ref refers to a Spec either by catalog name or directly.
// It is implemented by Name and *Spec only.
type Ref interface {
	resolve(c *Catalog) (*Spec, error)
}

// Name is a Ref to a catalog entry.
type Name string

func (n Name) resolve(c *Catalog) (*Spec, error) { return c.Spec(string(n)) }

var (
	_ Ref = Name("")
	_ Ref = (*Spec)(nil)
)

// Catalog is an ordered, read-only set of fastener specs.
type Catalog struct {
	specs attr.Table[*Spec]
}

// NewCatalog builds a catalog from specs. Duplicate names are an error.
func NewCatalog(specs ...*Spec) (*Catalog, error) {
	pairs := make([]attr.Pair[*Spec], len(specs))
	for i, s := range specs {
		pairs[i] = attr.Pair[*Spec]{Key: s.name, Value: s}
	}
	t, err := attr.New(pairs...)
	if err != nil {
		return nil, fmt.Errorf("fastener: catalog: %w", err)
	}
	return &Catalog{specs: t}, nil
}

// Names returns the spec names in catalog order.
func (c *Catalog) Names() []string { return c.specs.Keys() }

// Spec returns the spec named name.
func (c *Catalog) Spec(name string) (*Spec, error) { return c.specs.Get(name) }

// Resolve returns the spec ref refers to.
func (c *Catalog) Resolve(ref Ref) (*Spec, error) {
	if ref == nil {
		return nil, errors.New("fastener: nil ref")
	}
	return ref.resolve(c)
}

// Attribute returns a numeric attribute of ref.
func (c *Catalog) Attribute(ref Ref, name string) (float64, error) {
	s, err := c.Resolve(ref)
	if err != nil {
		return 0, err
	}
	return s.Float(name)
}

// AttributeOrZero returns a numeric attribute of ref or 0 when the
// attribute is absent. Errors only report an unresolvable ref or a
// non-numeric attribute.
func (c *Catalog) AttributeOrZero(ref Ref, name string) (float64, error) {
	s, err := c.Resolve(ref)
	if err != nil {
		return 0, err
	}
	return s.FloatOrZero(name)
}

// HasAttribute reports whether ref has the attribute.
func (c *Catalog) HasAttribute(ref Ref, name string) (bool, error) {
	s, err := c.Resolve(ref)
	if err != nil {
		return false, err
	}
	return s.Has(name), nil
}

// Parse reads a catalog from YAML: a mapping of spec names to mappings
// of attribute names to scalars. Order is preserved at both levels.
func Parse(r io.Reader) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return NewCatalog()
		}
		return nil, fmt.Errorf("fastener: parse catalog: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("fastener: line %d: catalog must be a mapping", root.Line)
	}
	specs := make([]*Spec, 0, len(root.Content)/2)
	for i := 0; i < len(root.Content); i += 2 {
		key, body := root.Content[i], root.Content[i+1]
		if body.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("fastener: line %d: spec %q must be a mapping", body.Line, key.Value)
		}
		pairs := make([]attr.Pair[Value], 0, len(body.Content)/2)
		for j := 0; j < len(body.Content); j += 2 {
			var v Value
			if err := body.Content[j+1].Decode(&v); err != nil {
				return nil, fmt.Errorf("fastener: spec %q attribute %q: %w", key.Value, body.Content[j].Value, err)
			}
			pairs = append(pairs, attr.Pair[Value]{Key: body.Content[j].Value, Value: v})
		}
		s, err := NewSpec(key.Value, pairs...)
		if err != nil {
			return nil, err
		}
		specs = append(specs, s)
	}
	return NewCatalog(specs...)
}

//go:embed catalog.yaml
var catalogYAML []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the built-in catalog. It is parsed on first use and
// shared by all callers.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(bytes.NewReader(catalogYAML))
		if defaultErr == nil {
			log.Debug().Int("specs", len(defaultCatalog.Names())).Msg("loaded fastener catalog")
		}
	})
	return defaultCatalog, defaultErr
}
