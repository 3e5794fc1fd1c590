package structure

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/fieldkit/pkg/logger"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// Instance holds validated values for the fields of its Type.
// It is not safe for concurrent mutation.
type Instance struct {
	typ     *Type
	values  []any
	set     []bool
	private map[string]any
}

func (i *Instance) Type() *Type { return i.typ }

// Set validates value against the field's kind and stores it. On failure the
// previous value is kept. Names with ReservedPrefix are stored unvalidated.
func (i *Instance) Set(name string, value any) error {
	if strings.HasPrefix(name, ReservedPrefix) {
		if i.private == nil {
			i.private = make(map[string]any)
		}
		i.private[name] = value
		return nil
	}

	idx, ok := i.typ.index[name]
	if !ok {
		return i.noAttribute(name)
	}

	checked, err := i.typ.fields[idx].Kind.Check(name, value)
	if err != nil {
		return err
	}
	i.values[idx] = checked
	i.set[idx] = true
	i.trace("set", name, logger.Value(checked))
	return nil
}

// Get returns the stored value for name.
func (i *Instance) Get(name string) (any, error) {
	if strings.HasPrefix(name, ReservedPrefix) {
		v, ok := i.private[name]
		if !ok {
			return nil, i.noAttribute(name)
		}
		return v, nil
	}

	idx, ok := i.typ.index[name]
	if !ok || !i.set[idx] {
		return nil, i.noAttribute(name)
	}
	i.trace("get", name)
	return i.values[idx], nil
}

// MustGet is like Get but panics when name is not set.
func (i *Instance) MustGet(name string) any {
	v, err := i.Get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Delete clears a stored value. Reading it afterwards fails until it is set again.
func (i *Instance) Delete(name string) error {
	if strings.HasPrefix(name, ReservedPrefix) {
		if _, ok := i.private[name]; !ok {
			return i.noAttribute(name)
		}
		delete(i.private, name)
		return nil
	}

	idx, ok := i.typ.index[name]
	if !ok || !i.set[idx] {
		return i.noAttribute(name)
	}
	i.values[idx] = nil
	i.set[idx] = false
	i.trace("delete", name)
	return nil
}

// Fields returns the declared field names in order.
func (i *Instance) Fields() []string { return i.typ.Fields() }

// Values returns field values in declaration order; unset fields are nil.
func (i *Instance) Values() []any {
	out := make([]any, len(i.values))
	copy(out, i.values)
	return out
}

// String renders the instance as a constructor call, e.g. Stock('GOOG', 100, 490.1).
func (i *Instance) String() string {
	parts := make([]string, len(i.values))
	for idx, v := range i.values {
		if !i.set[idx] {
			parts[idx] = "<unset>"
			continue
		}
		parts[idx] = Repr(v)
	}
	return fmt.Sprintf("%s(%s)", i.typ.name, strings.Join(parts, ", "))
}

// Equal reports whether other is an instance of i's type (or a subtype) with
// the same field values.
func (i *Instance) Equal(other *Instance) bool {
	if i == nil || other == nil {
		return i == other
	}
	if !other.typ.IsA(i.typ) && !i.typ.IsA(other.typ) {
		return false
	}
	if len(i.values) != len(other.values) {
		return false
	}
	for idx := range i.values {
		if i.set[idx] != other.set[idx] || !valuesEqual(i.values[idx], other.values[idx]) {
			return false
		}
	}
	return true
}

// Value reads a field and asserts its Go type.
func Value[T any](i *Instance, name string) (T, error) {
	var zero T
	v, err := i.Get(name)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s.%s holds %T", validator.ErrType, i.typ.name, name, v)
	}
	return typed, nil
}

func (i *Instance) noAttribute(name string) error {
	return fmt.Errorf("%w: %s has no attribute %q", ErrNoAttribute, i.typ.name, name)
}

func (i *Instance) trace(op, name string, attrs ...slog.Attr) {
	if i.typ.tracer == nil {
		return
	}
	args := []any{logger.Type(i.typ.name), logger.Field(name)}
	for _, a := range attrs {
		args = append(args, a)
	}
	i.typ.tracer.Info(op, args...)
}

func valuesEqual(a, b any) bool {
	da, aok := a.(decimal.Decimal)
	db, bok := b.(decimal.Decimal)
	if aok && bok {
		return da.Equal(db)
	}
	return reflect.DeepEqual(a, b)
}
