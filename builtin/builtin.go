/*
File    : oxymix/builtin/builtin.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package builtin implements the fixed, host-provided function
// registry. Each entry is grounded on the reference runtime's
// BuiltInFunction.function_map, adapted to the teacher's io.Writer-based
// callback shape (objects/builtins.go's CallbackFunc) rather than the
// richer Runtime-aware signature std/*.go uses for file-handle builtins -
// this language has no file-handle built-ins, so the simpler shape
// suffices.
//
// Per the design note that a clean implementation embeds the registry in
// the evaluator rather than relying on process-wide global state, this
// package exposes a constructor (Registry) instead of a package-level
// init()-populated slice; the evaluator owns the resulting map.
package builtin

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/akashmaji946/oxymix/objects"
)

// Func is a built-in's implementation. It returns the result value, or
// nil on failure - the universal "no value" signal. A failing built-in
// writes its own diagnostic to errOut before returning nil.
type Func func(out io.Writer, errOut io.Writer, args []objects.Value) objects.Value

// Builtin pairs a registry name with its implementation.
type Builtin struct {
	Name string
	Fn   Func
}

// Registry returns a fresh set of built-in definitions. Called once per
// evaluator instance so no state is process-wide.
func Registry() []*Builtin {
	return []*Builtin{
		{Name: "print", Fn: printFn},
		{Name: "println", Fn: printlnFn},
		{Name: "len", Fn: lenFn},
		{Name: "to_string", Fn: toStringFn},
		{Name: "parse_int", Fn: parseIntFn},
		{Name: "current_time", Fn: currentTimeFn},

		// Supplemental built-ins recovered from the broader reference
		// standard library, additive to the minimum required set.
		{Name: "type_of", Fn: typeOfFn},
		{Name: "upper", Fn: upperFn},
		{Name: "lower", Fn: lowerFn},
		{Name: "abs", Fn: absFn},
	}
}

func formatArg(v objects.Value) string {
	if v == nil {
		return "none"
	}
	return v.String()
}

func printFn(out io.Writer, errOut io.Writer, args []objects.Value) objects.Value {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = formatArg(a)
	}
	fmt.Fprint(out, strings.Join(parts, " "))
	return objects.None{}
}

func printlnFn(out io.Writer, errOut io.Writer, args []objects.Value) objects.Value {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = formatArg(a)
	}
	fmt.Fprintln(out, strings.Join(parts, " "))
	return objects.None{}
}

func lenFn(out io.Writer, errOut io.Writer, args []objects.Value) objects.Value {
	if len(args) != 1 {
		fmt.Fprintf(errOut, "[BUILTIN ERROR] len() expects 1 argument, got %d\n", len(args))
		return nil
	}
	switch v := args[0].(type) {
	case objects.Str:
		return objects.Int32{Value: int32(len(v.Value))}
	case objects.List:
		return objects.Int32{Value: int32(len(v.Elements))}
	default:
		fmt.Fprintf(errOut, "[BUILTIN ERROR] len() does not support %s\n", args[0].Type())
		return nil
	}
}

// toStringFn converts a scalar to its string form. Lists are
// unsupported, matching the reference implementation. Unlike the
// teacher's objects/std variants, the result is not quote-wrapped.
func toStringFn(out io.Writer, errOut io.Writer, args []objects.Value) objects.Value {
	if len(args) != 1 {
		fmt.Fprintf(errOut, "[BUILTIN ERROR] to_string() expects 1 argument, got %d\n", len(args))
		return nil
	}
	if _, isList := args[0].(objects.List); isList {
		fmt.Fprintln(errOut, "[BUILTIN ERROR] to_string() does not support list values")
		return nil
	}
	return objects.Str{Value: formatArg(args[0])}
}

// parseIntFn converts a string (base 10) or a numeric value (by
// truncation) to an i32.
func parseIntFn(out io.Writer, errOut io.Writer, args []objects.Value) objects.Value {
	if len(args) != 1 {
		fmt.Fprintf(errOut, "[BUILTIN ERROR] parse_int() expects 1 argument, got %d\n", len(args))
		return nil
	}
	switch v := args[0].(type) {
	case objects.Str:
		n, err := strconv.ParseInt(strings.TrimSpace(v.Value), 10, 32)
		if err != nil {
			fmt.Fprintf(errOut, "[BUILTIN ERROR] parse_int() could not parse %q\n", v.Value)
			return nil
		}
		return objects.Int32{Value: int32(n)}
	case objects.Int32:
		return v
	case objects.Int64:
		return objects.Int32{Value: int32(v.Value)}
	case objects.Float32:
		return objects.Int32{Value: int32(v.Value)}
	case objects.Float64:
		return objects.Int32{Value: int32(v.Value)}
	default:
		fmt.Fprintf(errOut, "[BUILTIN ERROR] parse_int() does not support %s\n", args[0].Type())
		return nil
	}
}

func currentTimeFn(out io.Writer, errOut io.Writer, args []objects.Value) objects.Value {
	return objects.Int64{Value: time.Now().Unix()}
}

func typeOfFn(out io.Writer, errOut io.Writer, args []objects.Value) objects.Value {
	if len(args) != 1 {
		fmt.Fprintf(errOut, "[BUILTIN ERROR] type_of() expects 1 argument, got %d\n", len(args))
		return nil
	}
	return objects.Str{Value: string(args[0].Type())}
}

func upperFn(out io.Writer, errOut io.Writer, args []objects.Value) objects.Value {
	s, ok := requireString(errOut, "upper", args)
	if !ok {
		return nil
	}
	return objects.Str{Value: strings.ToUpper(s)}
}

func lowerFn(out io.Writer, errOut io.Writer, args []objects.Value) objects.Value {
	s, ok := requireString(errOut, "lower", args)
	if !ok {
		return nil
	}
	return objects.Str{Value: strings.ToLower(s)}
}

func requireString(errOut io.Writer, name string, args []objects.Value) (string, bool) {
	if len(args) != 1 {
		fmt.Fprintf(errOut, "[BUILTIN ERROR] %s() expects 1 argument, got %d\n", name, len(args))
		return "", false
	}
	s, ok := args[0].(objects.Str)
	if !ok {
		fmt.Fprintf(errOut, "[BUILTIN ERROR] %s() expects a string, got %s\n", name, args[0].Type())
		return "", false
	}
	return s.Value, true
}

func absFn(out io.Writer, errOut io.Writer, args []objects.Value) objects.Value {
	if len(args) != 1 {
		fmt.Fprintf(errOut, "[BUILTIN ERROR] abs() expects 1 argument, got %d\n", len(args))
		return nil
	}
	switch v := args[0].(type) {
	case objects.Int32:
		if v.Value < 0 {
			return objects.Int32{Value: -v.Value}
		}
		return v
	case objects.Int64:
		if v.Value < 0 {
			return objects.Int64{Value: -v.Value}
		}
		return v
	case objects.Float32:
		if v.Value < 0 {
			return objects.Float32{Value: -v.Value}
		}
		return v
	case objects.Float64:
		if v.Value < 0 {
			return objects.Float64{Value: -v.Value}
		}
		return v
	default:
		fmt.Fprintf(errOut, "[BUILTIN ERROR] abs() does not support %s\n", args[0].Type())
		return nil
	}
}
