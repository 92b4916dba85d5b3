/*
File    : oxymix/objects/objects.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package objects implements the runtime value model: the tagged union of
// values the evaluator produces and consumes. Every concrete type here
// implements the Value interface; a Go nil Value is the universal
// "no value" signal used throughout the evaluator for runtime failures
// (type mismatch, divide-by-zero, unknown name, arity mismatch, ...).
package objects

import (
	"fmt"
	"strconv"
	"strings"
)

// TypeTag is the closed set of user-visible type tags. It annotates
// declarations and selects default initial values for class fields.
type TypeTag string

const (
	I32Type    TypeTag = "i32"
	I64Type    TypeTag = "i64"
	F32Type    TypeTag = "f32"
	F64Type    TypeTag = "f64"
	BoolType   TypeTag = "bool"
	StringType TypeTag = "string"
	ListType   TypeTag = "list"
	// NoneType is internal only: it never appears in surface-language type
	// annotations, but is used as the fallback tag for an unrecognized
	// declared type when computing a class field's default value.
	NoneType TypeTag = "none"

	// InstanceType tags class instances. Not a declarable surface type -
	// instances are always produced by calling a class name, never by a
	// `let x: instance = ...` declaration.
	InstanceType TypeTag = "instance"
)

// Value is the runtime value interface. A value's Type() uniquely
// determines which concrete type it is safe to assert to.
type Value interface {
	Type() TypeTag
	String() string
}

// Int32 holds a signed 32-bit integer value.
type Int32 struct{ Value int32 }

func (v Int32) Type() TypeTag  { return I32Type }
func (v Int32) String() string { return strconv.FormatInt(int64(v.Value), 10) }

// Int64 holds a signed 64-bit integer value.
type Int64 struct{ Value int64 }

func (v Int64) Type() TypeTag  { return I64Type }
func (v Int64) String() string { return strconv.FormatInt(v.Value, 10) }

// Float32 holds a 32-bit floating point value.
type Float32 struct{ Value float32 }

func (v Float32) Type() TypeTag  { return F32Type }
func (v Float32) String() string { return strconv.FormatFloat(float64(v.Value), 'f', -1, 32) }

// Float64 holds a 64-bit floating point value.
type Float64 struct{ Value float64 }

func (v Float64) Type() TypeTag  { return F64Type }
func (v Float64) String() string { return strconv.FormatFloat(v.Value, 'f', -1, 64) }

// Bool holds a boolean value.
type Bool struct{ Value bool }

func (v Bool) Type() TypeTag  { return BoolType }
func (v Bool) String() string { return strconv.FormatBool(v.Value) }

// Str holds UTF-8 text of arbitrary length.
type Str struct{ Value string }

func (v Str) Type() TypeTag  { return StringType }
func (v Str) String() string { return v.Value }

// List is an ordered, possibly heterogeneous sequence of values.
type List struct{ Elements []Value }

func (v List) Type() TypeTag { return ListType }

// String renders a list the way the built-in print/println functions do:
// bracketed, comma-separated, with string elements quoted and nested
// lists rendered the same way recursively.
func (v List) String() string {
	parts := make([]string, len(v.Elements))
	for i, el := range v.Elements {
		parts[i] = formatListElement(el)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatListElement(v Value) string {
	if v == nil {
		return "none"
	}
	if s, ok := v.(Str); ok {
		return fmt.Sprintf("%q", s.Value)
	}
	return v.String()
}

// None is the internal "no surface value" marker. It is distinct from the
// universal nil-Value error signal: a None is still a Value (it has a
// type and a string form), it just carries no meaningful payload. It is
// the result of the print and println built-ins.
type None struct{}

func (v None) Type() TypeTag  { return NoneType }
func (v None) String() string { return "none" }

// Instance is a single-level class instance: the class name it was
// created from, and a mapping from field name to current value. The
// field set is fixed at instantiation time (see constructInstance in the
// eval package); methods are never stored here - they are resolved from
// the class definition at call time.
type Instance struct {
	ClassName string
	Fields    map[string]Value
}

func (v *Instance) Type() TypeTag { return InstanceType }
func (v *Instance) String() string {
	return fmt.Sprintf("<instance %s>", v.ClassName)
}

// Clone returns a shallow copy of the instance with its own field map, so
// that the flat-snapshot call convention (see env.Environment) can hand a
// method a copy of the receiver without aliasing the caller's binding.
func (v *Instance) Clone() *Instance {
	fields := make(map[string]Value, len(v.Fields))
	for k, val := range v.Fields {
		fields[k] = val
	}
	return &Instance{ClassName: v.ClassName, Fields: fields}
}

// DefaultForType returns the zero value for a declared type tag, used
// when constructing a class instance's initial field map.
func DefaultForType(t TypeTag) Value {
	switch t {
	case I32Type:
		return Int32{Value: 0}
	case I64Type:
		return Int64{Value: 0}
	case F32Type:
		return Float32{Value: 0}
	case F64Type:
		return Float64{Value: 0}
	case BoolType:
		return Bool{Value: false}
	case StringType:
		return Str{Value: ""}
	case ListType:
		return List{Elements: []Value{}}
	default:
		return Int32{Value: 0}
	}
}

// Truthy applies the truthiness coercion rule used by conditionals and
// while-loops (the logical operators accept only Bool operands and do
// not use it): bool -> itself;
// numerics -> non-zero; string/list -> non-empty; anything else -> false.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case Bool:
		return val.Value
	case Int32:
		return val.Value != 0
	case Int64:
		return val.Value != 0
	case Float32:
		return val.Value != 0
	case Float64:
		return val.Value != 0
	case Str:
		return val.Value != ""
	case List:
		return len(val.Elements) != 0
	default:
		return false
	}
}
