package util

import (
	"math/rand"
	"sort"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Sum[A constraints.Integer](nums []A) A {
	var total A
	for _, v := range nums {
		total += v
	}
	return total
}

// FloorDiv divides rounding toward negative infinity, unlike Go's / operator.
func FloorDiv[A constraints.Signed](a A, b A) A {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// GetRandomInt returns a uniform integer in [inclusiveMin, inclusiveMax].
// An empty range yields inclusiveMin.
func GetRandomInt(r *rand.Rand, inclusiveMin int, inclusiveMax int) int {
	if inclusiveMax <= inclusiveMin {
		return inclusiveMin
	}
	return r.Intn(inclusiveMax-inclusiveMin+1) + inclusiveMin
}

// GetRandomArrayElement reports false for an empty array.
func GetRandomArrayElement[A any](r *rand.Rand, array []A) (A, bool) {
	if len(array) == 0 {
		var zero A
		return zero, false
	}
	return array[GetRandomInt(r, 0, len(array)-1)], true
}

func CapitalizeFirstChar(str string) string {
	if str == "" {
		return ""
	}
	runes := []rune(str)
	return cases.Upper(language.Und).String(string(runes[0])) + string(runes[1:])
}

func ToLower(str string) string {
	return cases.Lower(language.Und).String(str)
}

func Contains[A comparable](array []A, value A) bool {
	for _, v := range array {
		if v == value {
			return true
		}
	}
	return false
}
