package structure

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

type schemaDoc struct {
	Name    string        `yaml:"name"`
	Extends string        `yaml:"extends"`
	Fields  []schemaField `yaml:"fields"`
}

type schemaField struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

// LoadSchema builds types from a YAML stream. Each document declares one type:
//
//	name: Stock
//	fields:
//	  - {name: name, kind: NonEmptyString}
//	  - {name: shares, kind: PositiveInteger}
//	---
//	name: DStock
//	extends: Stock
//	fields:
//	  - {name: price, kind: PositiveDecimal}
//
// Kind names resolve through registry. A document may extend any type
// declared earlier in the same stream. Types are returned in document order.
func LoadSchema(r io.Reader, registry *validator.Registry, opts ...Option) ([]*Type, error) {
	if registry == nil {
		registry = validator.DefaultRegistry()
	}

	dec := yaml.NewDecoder(r)
	byName := make(map[string]*Type)
	var types []*Type

	for n := 1; ; n++ {
		var doc schemaDoc
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: document %d: %w", ErrInvalidSchema, n, err)
		}

		if err := validator.Apply(
			validator.RequiredString("name", doc.Name),
			validator.MinNum("fields", len(doc.Fields), 1),
		); err != nil {
			return nil, fmt.Errorf("%w: document %d: %w", ErrInvalidSchema, n, err)
		}
		if _, dup := byName[doc.Name]; dup {
			return nil, fmt.Errorf("%w: document %d: type %q declared twice", ErrInvalidSchema, n, doc.Name)
		}

		typeOpts := append([]Option{WithRegistry(registry)}, opts...)
		if doc.Extends != "" {
			parent, ok := byName[doc.Extends]
			if !ok {
				return nil, fmt.Errorf("%w: document %d: %s extends unknown type %q",
					ErrInvalidSchema, n, doc.Name, doc.Extends)
			}
			typeOpts = append(typeOpts, Extends(parent))
		}

		b := Define(doc.Name, typeOpts...)
		for _, f := range doc.Fields {
			b.FieldOf(f.Name, f.Kind)
		}
		t, err := b.Build()
		if err != nil {
			return nil, fmt.Errorf("%w: document %d: %w", ErrInvalidSchema, n, err)
		}

		byName[t.Name()] = t
		types = append(types, t)
	}

	if len(types) == 0 {
		return nil, fmt.Errorf("%w: no type declarations", ErrInvalidSchema)
	}
	return types, nil
}
