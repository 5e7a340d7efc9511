package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two values. The result is 0
// when a equals b, -1 when a sorts before b, and +1 after. Values of
// different kinds order by kind rank:
// Undefined < Null < Bool < Int < Float < String < Array < Object.
func Compare(a, b Value) int {
	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case IntType:
		return cmp.Compare(a.Int, b.Int)
	case FloatType:
		return cmp.Compare(a.Float, b.Float)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ArrayType:
		return compareArrays(a.Array, b.Array)
	case ObjectType:
		return compareObjects(a.Object, b.Object)
	case UndefinedType, NullType:
		return 0
	}
	return 0
}

// Equal reports deep equality of a and b.
func Equal(a, b Value) bool {
	return Compare(a, b) == 0
}

func rank(t Type) int {
	switch t {
	case UndefinedType:
		return 0
	case NullType:
		return 1
	case BoolType:
		return 2
	case IntType:
		return 3
	case FloatType:
		return 4
	case StringType:
		return 5
	case ArrayType:
		return 6
	case ObjectType:
		return 7
	}
	return 100
}

func compareArrays(a, b *Array) int {
	lenA, lenB := 0, 0
	if a != nil {
		lenA = len(a.Values)
	}
	if b != nil {
		lenB = len(b.Values)
	}
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(*a.Values[i], *b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareObjects(a, b *Object) int {
	var keysA, keysB []string
	if a != nil {
		keysA = a.Keys()
	}
	if b != nil {
		keysB = b.Keys()
	}
	minLen := min(len(keysA), len(keysB))

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(keysA[i], keysB[i]); c != 0 {
			return c
		}
		if c := Compare(*a.Fields[keysA[i]], *b.Fields[keysB[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(keysA), len(keysB))
}
