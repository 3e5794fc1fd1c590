package structure

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Type is a built declaration: an ordered field list with one kind per field.
// It is immutable and safe to share.
type Type struct {
	name   string
	parent *Type
	fields []Field
	index  map[string]int
	tracer *slog.Logger
}

func (t *Type) Name() string { return t.name }

func (t *Type) Parent() *Type { return t.parent }

func (t *Type) NumField() int { return len(t.fields) }

// Fields returns field names in declaration order.
func (t *Type) Fields() []string {
	names := make([]string, len(t.fields))
	for i, f := range t.fields {
		names[i] = f.Name
	}
	return names
}

// Field returns the declaration for name.
func (t *Type) Field(name string) (Field, bool) {
	i, ok := t.index[name]
	if !ok {
		return Field{}, false
	}
	return t.fields[i], true
}

// IsA reports whether t is other or extends it.
func (t *Type) IsA(other *Type) bool {
	for cur := t; cur != nil; cur = cur.parent {
		if cur == other {
			return true
		}
	}
	return false
}

// New constructs an instance from positional arguments, one per field in
// declaration order. Each value goes through its field's validator.
func (t *Type) New(args ...any) (*Instance, error) {
	if len(args) != len(t.fields) {
		return nil, fmt.Errorf("%w: %s takes %d arguments but %d were given",
			ErrArity, t.name, len(t.fields), len(args))
	}

	inst := t.zero()
	for i, f := range t.fields {
		if err := inst.Set(f.Name, args[i]); err != nil {
			return nil, fmt.Errorf("new %s: %w", t.name, err)
		}
	}
	return inst, nil
}

// NewKW constructs an instance from named arguments. Every field must be
// present and no other names are allowed.
func (t *Type) NewKW(kwargs map[string]any) (*Instance, error) {
	var unknown []string
	for name := range kwargs {
		if _, ok := t.index[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return nil, fmt.Errorf("%w: %s got unexpected arguments %s",
			ErrNoAttribute, t.name, strings.Join(unknown, ", "))
	}

	args := make([]any, len(t.fields))
	var missing []string
	for i, f := range t.fields {
		v, ok := kwargs[f.Name]
		if !ok {
			missing = append(missing, f.Name)
			continue
		}
		args[i] = v
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s missing arguments %s",
			ErrArity, t.name, strings.Join(missing, ", "))
	}

	return t.New(args...)
}

// FromRow converts raw text columns with each field's parser, then
// constructs the instance positionally.
func (t *Type) FromRow(row []string) (*Instance, error) {
	if len(row) != len(t.fields) {
		return nil, fmt.Errorf("%w: %s expects %d columns but row has %d",
			ErrArity, t.name, len(t.fields), len(row))
	}

	args := make([]any, len(row))
	for i, f := range t.fields {
		v, err := f.Kind.ParseValue(row[i])
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t.name, f.Name, err)
		}
		args[i] = v
	}
	return t.New(args...)
}

func (t *Type) zero() *Instance {
	return &Instance{
		typ:    t,
		values: make([]any, len(t.fields)),
		set:    make([]bool, len(t.fields)),
	}
}

func (t *Type) bases() []string {
	var bases []string
	for p := t.parent; p != nil; p = p.parent {
		bases = append(bases, p.name)
	}
	return bases
}
