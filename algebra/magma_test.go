package algebra_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborea/superdtlx/algebra"
)

// chain is a minimal Magma for testing: a dash-joined sequence of labels,
// with "" standing in for the empty composition.
type chain string

func (c chain) Unit() chain { return "" }

func (c chain) Mul(other chain) chain {
	switch {
	case c == "":
		return other
	case other == "":
		return c
	default:
		return c + "-" + other
	}
}

func (c chain) Key() string { return string(c) }

func label(parts ...string) chain { return chain(strings.Join(parts, "-")) }

func TestUnitChoicePrefersLeftWhenPresent(t *testing.T) {
	var s algebra.UnitChoice[chain]

	left := algebra.Optional[chain]{Ok: true, Value: label("a")}
	right := algebra.Optional[chain]{Ok: true, Value: label("b")}

	require.Equal(t, left, s.Add(left, right))
	require.Equal(t, right, s.Add(s.Null(), right))
}

func TestUnitChoiceMulJoinsAndPropagatesNull(t *testing.T) {
	var s algebra.UnitChoice[chain]

	left := algebra.Optional[chain]{Ok: true, Value: label("a")}
	right := algebra.Optional[chain]{Ok: true, Value: label("b")}

	joined := s.Mul(left, right)
	require.True(t, joined.Ok)
	require.Equal(t, label("a", "b"), joined.Value)

	require.False(t, s.Mul(left, s.Null()).Ok)
}

func TestUnitChoiceUnitIsEmptyCompositionNotNull(t *testing.T) {
	var s algebra.UnitChoice[chain]
	unit := s.Unit()
	require.True(t, unit.Ok, "the empty composition is a present solution")
	require.Equal(t, chain(""), unit.Value)

	present := algebra.Optional[chain]{Ok: true, Value: label("a")}
	require.Equal(t, present, s.Mul(present, unit))
}

func TestSolutionsUnionsAndDeduplicatesByKey(t *testing.T) {
	var s algebra.Solutions[chain]

	a := map[string]chain{"x": label("x"), "y": label("y")}
	b := map[string]chain{"y": label("y"), "z": label("z")}

	merged := s.Add(a, b)
	require.Len(t, merged, 3)
}

func TestSolutionsMulTakesCartesianProduct(t *testing.T) {
	var s algebra.Solutions[chain]

	a := map[string]chain{"x": label("x")}
	b := map[string]chain{"y": label("y"), "z": label("z")}

	product := s.Mul(a, b)
	require.Len(t, product, 2)
	require.Contains(t, product, label("x", "y").Key())
	require.Contains(t, product, label("x", "z").Key())
}
