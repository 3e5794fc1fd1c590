package structure

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// ReservedPrefix marks implementation-private attribute names. They bypass
// field declarations and validation.
const ReservedPrefix = "_"

// Field is one declared attribute: its name and the kind validating it.
type Field struct {
	Name string
	Kind validator.Kind
}

// Definition describes a type at the moment it is built.
// Fields lists only the names declared by this type, not inherited ones.
type Definition struct {
	Name   string
	Bases  []string
	Fields []string
}

// DefineHook observes type construction.
type DefineHook func(Definition)

// Option configures a Builder.
type Option func(*Builder)

// WithRegistry sets the registry FieldOf resolves kind names against.
func WithRegistry(r *validator.Registry) Option {
	return func(b *Builder) {
		if r != nil {
			b.registry = r
		}
	}
}

// Extends makes the new type inherit every field of parent, in parent order.
func Extends(parent *Type) Option {
	return func(b *Builder) { b.parent = parent }
}

// OnDefine registers hooks called once the type is built.
func OnDefine(hooks ...DefineHook) Option {
	return func(b *Builder) {
		for _, h := range hooks {
			if h != nil {
				b.hooks = append(b.hooks, h)
			}
		}
	}
}

// WithTracer logs every get, set and delete on instances of the type.
func WithTracer(log *slog.Logger) Option {
	return func(b *Builder) { b.tracer = log }
}

// Builder collects field declarations in order.
type Builder struct {
	name     string
	parent   *Type
	registry *validator.Registry
	decls    []Field
	hooks    []DefineHook
	tracer   *slog.Logger
	errs     []error
}

// Define starts the declaration of a type named name.
func Define(name string, opts ...Option) *Builder {
	b := &Builder{name: name}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Field declares a field validated by kind. Declaration order is the
// positional parameter order of Type.New.
func (b *Builder) Field(name string, kind validator.Kind) *Builder {
	b.decls = append(b.decls, Field{Name: name, Kind: kind})
	return b
}

// FieldOf declares a field whose kind is looked up by name in the builder's
// registry. Without WithRegistry the built-in kinds are used.
func (b *Builder) FieldOf(name, kindName string) *Builder {
	if b.registry == nil {
		b.registry = validator.DefaultRegistry()
	}
	kind, err := b.registry.Lookup(kindName)
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("field %q: %w", name, err))
		return b
	}
	return b.Field(name, kind)
}

// Build validates the declarations and returns the finished type.
func (b *Builder) Build() (*Type, error) {
	errs := append([]error(nil), b.errs...)

	if err := validator.Apply(
		validator.RequiredString("type", b.name),
		validator.Identifier("type", b.name),
	); err != nil {
		errs = append(errs, err)
	}

	var fields []Field
	if b.parent != nil {
		fields = append(fields, b.parent.fields...)
	}

	own := make([]string, 0, len(b.decls))
	seen := make(map[string]bool, len(b.decls))
	for _, decl := range b.decls {
		if err := validator.Apply(
			validator.Identifier("field", decl.Name),
			validator.NoPrefix("field", decl.Name, ReservedPrefix),
		); err != nil {
			errs = append(errs, err)
			continue
		}
		if seen[decl.Name] {
			errs = append(errs, fmt.Errorf("field %q declared twice", decl.Name))
			continue
		}
		seen[decl.Name] = true
		own = append(own, decl.Name)

		if i := indexOf(fields, decl.Name); i >= 0 {
			fields[i] = decl
			continue
		}
		fields = append(fields, decl)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidDeclaration, b.name, errors.Join(errs...))
	}

	t := &Type{
		name:   b.name,
		parent: b.parent,
		fields: fields,
		index:  make(map[string]int, len(fields)),
		tracer: b.tracer,
	}
	for i, f := range fields {
		t.index[f.Name] = i
	}
	if t.tracer == nil && b.parent != nil {
		t.tracer = b.parent.tracer
	}

	def := Definition{Name: t.name, Bases: t.bases(), Fields: own}
	for _, hook := range b.hooks {
		hook(def)
	}

	return t, nil
}

// MustBuild is like Build but panics on error. Use it for package-level types.
func (b *Builder) MustBuild() *Type {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}

func indexOf(fields []Field, name string) int {
	for i, f := range fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}
