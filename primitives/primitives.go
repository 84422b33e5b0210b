// Package primitives is the native calling-convention catalogue: the small
// set of built-in PrimitiveMethods (small-integer arithmetic and
// comparison, byte-array and object-array accessors, string concatenation
// and printing, and a mirror stub) that the launcher installs onto the
// universe's primitives-holder object before running any module.
//
// None of this is interpreter machinery; the interpreter only ever sees a
// PrimitiveMethod's native_call(interpreter, args) contract, never this
// package directly.
package primitives

import (
	"fmt"
	"os"

	"github.com/UnizaMatBre/ore-vm"
)

// Install registers every primitive as a slot on universe.Primitives. The
// launcher calls it before running the bootloader and the named module.
func Install(universe *ore.Universe) {
	add := func(name string, arity int64, fn ore.NativeFunc) {
		universe.Primitives.AddSlot(ore.SymbolKey{Text: name, Arity: arity}, ore.SlotKind{}, universe.NewPrimitiveMethod(arity, fn))
	}

	add("smallIntegerAdd", 2, smallIntegerAdd)
	add("smallIntegerSub", 2, smallIntegerSub)
	add("smallIntegerMul", 2, smallIntegerMul)
	add("smallIntegerDiv", 2, smallIntegerDiv)
	add("smallIntegerLess", 2, smallIntegerLess)
	add("smallIntegerEqual", 2, smallIntegerEqual)

	add("byteArrayGet", 2, byteArrayGet)
	add("byteArrayPut", 3, byteArrayPut)

	add("objectArrayGet", 2, objectArrayGet)
	add("objectArrayPut", 3, objectArrayPut)

	add("stringConcat", 2, stringConcat)
	add("stringPrint", 1, stringPrint)

	add("mirror", 1, mirror)
}

func asSmallInteger(v ore.Value, who string) *ore.SmallInteger {
	n, ok := v.(*ore.SmallInteger)
	if !ok {
		panic(fmt.Sprintf("%s: expected SmallInteger argument, got %T", who, v))
	}
	return n
}

func smallIntegerAdd(interp *ore.Interpreter, args []ore.Value) ore.Value {
	a, b := asSmallInteger(args[0], "smallIntegerAdd"), asSmallInteger(args[1], "smallIntegerAdd")
	return interp.Universe.NewSmallInteger(a.Value + b.Value)
}

func smallIntegerSub(interp *ore.Interpreter, args []ore.Value) ore.Value {
	a, b := asSmallInteger(args[0], "smallIntegerSub"), asSmallInteger(args[1], "smallIntegerSub")
	return interp.Universe.NewSmallInteger(a.Value - b.Value)
}

func smallIntegerMul(interp *ore.Interpreter, args []ore.Value) ore.Value {
	a, b := asSmallInteger(args[0], "smallIntegerMul"), asSmallInteger(args[1], "smallIntegerMul")
	return interp.Universe.NewSmallInteger(a.Value * b.Value)
}

func smallIntegerDiv(interp *ore.Interpreter, args []ore.Value) ore.Value {
	a, b := asSmallInteger(args[0], "smallIntegerDiv"), asSmallInteger(args[1], "smallIntegerDiv")
	if b.Value == 0 {
		panic("smallIntegerDiv: division by zero")
	}
	return interp.Universe.NewSmallInteger(a.Value / b.Value)
}

func smallIntegerLess(interp *ore.Interpreter, args []ore.Value) ore.Value {
	a, b := asSmallInteger(args[0], "smallIntegerLess"), asSmallInteger(args[1], "smallIntegerLess")
	if a.Value < b.Value {
		return interp.Universe.True
	}
	return interp.Universe.False
}

func smallIntegerEqual(interp *ore.Interpreter, args []ore.Value) ore.Value {
	a, b := asSmallInteger(args[0], "smallIntegerEqual"), asSmallInteger(args[1], "smallIntegerEqual")
	if a.Value == b.Value {
		return interp.Universe.True
	}
	return interp.Universe.False
}

func byteArrayGet(interp *ore.Interpreter, args []ore.Value) ore.Value {
	ba, ok := args[0].(*ore.ByteArray)
	if !ok {
		panic(fmt.Sprintf("byteArrayGet: expected ByteArray receiver argument, got %T", args[0]))
	}
	idx := asSmallInteger(args[1], "byteArrayGet")
	v, ok := ba.Get(idx.Value)
	if !ok {
		return interp.Universe.None
	}
	return interp.Universe.NewSmallInteger(int64(v))
}

func byteArrayPut(interp *ore.Interpreter, args []ore.Value) ore.Value {
	ba, ok := args[0].(*ore.ByteArray)
	if !ok {
		panic(fmt.Sprintf("byteArrayPut: expected ByteArray receiver argument, got %T", args[0]))
	}
	idx := asSmallInteger(args[1], "byteArrayPut")
	val := asSmallInteger(args[2], "byteArrayPut")
	if !ba.Put(idx.Value, byte(val.Value)) {
		return interp.Universe.None
	}
	return ba
}

func objectArrayGet(interp *ore.Interpreter, args []ore.Value) ore.Value {
	oa, ok := args[0].(*ore.ObjectArray)
	if !ok {
		panic(fmt.Sprintf("objectArrayGet: expected ObjectArray receiver argument, got %T", args[0]))
	}
	idx := asSmallInteger(args[1], "objectArrayGet")
	v, ok := oa.Get(idx.Value)
	if !ok {
		return interp.Universe.None
	}
	return v
}

func objectArrayPut(interp *ore.Interpreter, args []ore.Value) ore.Value {
	oa, ok := args[0].(*ore.ObjectArray)
	if !ok {
		panic(fmt.Sprintf("objectArrayPut: expected ObjectArray receiver argument, got %T", args[0]))
	}
	idx := asSmallInteger(args[1], "objectArrayPut")
	if !oa.Put(idx.Value, args[2]) {
		return interp.Universe.None
	}
	return oa
}

func stringConcat(interp *ore.Interpreter, args []ore.Value) ore.Value {
	a, ok := args[0].(*ore.String)
	if !ok {
		panic(fmt.Sprintf("stringConcat: expected String argument, got %T", args[0]))
	}
	b, ok := args[1].(*ore.String)
	if !ok {
		panic(fmt.Sprintf("stringConcat: expected String argument, got %T", args[1]))
	}
	return interp.Universe.NewString(a.Text + b.Text)
}

func stringPrint(interp *ore.Interpreter, args []ore.Value) ore.Value {
	s, ok := args[0].(*ore.String)
	if !ok {
		panic(fmt.Sprintf("stringPrint: expected String argument, got %T", args[0]))
	}
	fmt.Fprint(os.Stdout, s.Text)
	return s
}

// mirror is the debugging-facility stub the spec allows in place of real
// inspection tools: it reports the Go type of its argument's kind and
// nothing else.
func mirror(interp *ore.Interpreter, args []ore.Value) ore.Value {
	return interp.Universe.NewString(fmt.Sprintf("%T", args[0]))
}
