package mapper

import (
	"errors"
	"fmt"
	"reflect"
)

// Definition is anything that can hand a Mapping to the materializer.
// *Mapping[T] implements it, and so does any named type embedding *Mapping[T].
type Definition[T any] interface {
	mapping() *Mapping[T]
}

// binder is the type-erased view of a Binding[T, F] kept by its Mapping.
type binder[T any] interface {
	info() BindingInfo
	validate() error
	assign(dst *T, raw any, isNull bool) error
}

// Mapping is an ordered set of bindings for the struct type T.
// Build it once, then treat it as read-only; it may be shared by concurrent materializations.
type Mapping[T any] struct {
	bindings []binder[T]
	errs     []error
}

// New returns an empty mapping. Static definitions call it from their constructor.
func New[T any]() *Mapping[T] { return &Mapping[T]{} }

// Build creates a mapping inline and returns any registration error.
func Build[T any](init func(m *Mapping[T])) (*Mapping[T], error) {
	m := New[T]()
	init(m)
	if err := m.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// MustBuild is like Build but panics on a registration error.
func MustBuild[T any](init func(m *Mapping[T])) *Mapping[T] {
	m, err := Build(init)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Mapping[T]) mapping() *Mapping[T] { return m }

// Len returns the number of bindings.
func (m *Mapping[T]) Len() int { return len(m.bindings) }

// Bindings returns a snapshot of the bindings in registration order.
func (m *Mapping[T]) Bindings() []BindingInfo {
	out := make([]BindingInfo, len(m.bindings))
	for i, b := range m.bindings {
		out[i] = b.info()
	}
	return out
}

// Err reports every configuration mistake recorded so far, including bindings without a column.
func (m *Mapping[T]) Err() error {
	errs := append([]error(nil), m.errs...)
	for _, b := range m.bindings {
		if err := b.validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Mapping[T]) fail(err error) { m.errs = append(m.errs, err) }

// BindingInfo is a read-only description of one binding.
type BindingInfo struct {
	Member     string
	Column     string
	Type       reflect.Type
	HasDefault bool
	Default    any
	Converter  Converter
}

// Binding associates one member of T, of type F, with a column.
type Binding[T, F any] struct {
	mapping   *Mapping[T]
	selector  func(*T) *F
	member    string
	target    reflect.Type
	column    string
	mapped    bool
	rebound   bool
	def       F
	hasDef    bool
	converter Converter
}

// Property registers a new binding for the member returned by selector.
// The selector must return the address of a field of its argument, e.g.
//
//	mapper.Property(m, func(c *Car) *int64 { return &c.HorsePower })
//
// Anything else is recorded as ErrInvalidMappingExpression.
func Property[T, F any](m *Mapping[T], selector func(*T) *F) *Binding[T, F] {
	b := &Binding[T, F]{mapping: m, selector: selector, target: reflect.TypeFor[F]()}
	member, err := resolveMember(selector)
	if err != nil {
		m.fail(err)
		b.member = "?"
		return b
	}
	b.member = member
	m.bindings = append(m.bindings, b)
	return b
}

// MapField assigns the column read by this binding and returns the owning mapping.
// Column names are matched case-insensitively.
func (b *Binding[T, F]) MapField(column string) *Mapping[T] {
	if b.mapped {
		b.rebound = true
		return b.mapping
	}
	b.column = column
	b.mapped = true
	return b.mapping
}

// DefaultIfNull sets the value stored when the column is null.
func (b *Binding[T, F]) DefaultIfNull(v F) *Binding[T, F] {
	b.def = v
	b.hasDef = true
	return b
}

// MapConverter replaces the built-in coercion for this binding. A nil converter clears it.
func (b *Binding[T, F]) MapConverter(c Converter) *Binding[T, F] {
	b.converter = c
	return b
}

func (b *Binding[T, F]) info() BindingInfo {
	bi := BindingInfo{Member: b.member, Column: b.column, Type: b.target, HasDefault: b.hasDef, Converter: b.converter}
	if b.hasDef {
		bi.Default = b.def
	}
	return bi
}

func (b *Binding[T, F]) validate() error {
	switch {
	case b.rebound:
		return fmt.Errorf("member %s: %w", b.member, ErrFieldRebound)
	case !b.mapped || b.column == "":
		return fmt.Errorf("member %s: %w", b.member, ErrUnboundField)
	}
	return nil
}

func (b *Binding[T, F]) assign(dst *T, raw any, isNull bool) error {
	p := b.selector(dst)
	if isNull {
		if b.hasDef {
			*p = b.def
			return nil
		}
		if b.converter == nil {
			var zero F
			*p = zero
			return nil
		}
		raw = nil
	}
	if b.converter != nil {
		out, err := b.converter.ConvertTo(b.column, raw, b.target)
		if err != nil {
			return &ConverterError{Column: b.column, Member: b.member, Err: err}
		}
		v, err := converted[F](out, b.target)
		if err != nil {
			return &CoercionError{Column: b.column, Member: b.member, Value: out, Target: b.target, Err: err}
		}
		*p = v
		return nil
	}
	rv, err := coerce(raw, b.target)
	if err != nil {
		return &CoercionError{Column: b.column, Member: b.member, Value: raw, Target: b.target, Err: err}
	}
	*p = rv.Interface().(F)
	return nil
}
