package nion

import (
	"fmt"

	"github.com/nion-lang/nion/tower"
)

var heightNames = [...]string{"complex", "quaternion", "octonion", "sedenion"}

// TypeOf returns the type name of a value on the stack.
//
// Numbers of height 0 are named by their representation (integer, rational,
// float), higher numbers by their algebra; numbers above the sedenions are
// all named infinitenion.
func TypeOf(v any) string {
	switch v := v.(type) {
	case nil:
		return "unset"
	case tower.Integer:
		return "integer"
	case tower.Rational:
		return "rational"
	case tower.Float:
		return "float"
	case *tower.Node:
		if h := v.Height(); h <= len(heightNames) {
			return heightNames[h-1]
		}
		return "infinitenion"
	case string:
		return "string"
	default:
		panic(fmt.Sprintf("invalid type: %[1]T (%[1]v)", v))
	}
}
