package bench

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// InputKind names a family of generated benchmark inputs.
type InputKind string

const (
	InputRandom       InputKind = "random"
	InputSorted       InputKind = "sorted"
	InputReverse      InputKind = "reverse"
	InputNearlySorted InputKind = "nearly-sorted"
)

// MaxRandomValue is the inclusive upper bound of values in random inputs.
const MaxRandomValue = 1_000_000

// AllInputs lists every supported input kind in reporting order.
var AllInputs = []InputKind{InputRandom, InputSorted, InputReverse, InputNearlySorted}

// ErrUnknownInput is returned for input kinds outside AllInputs.
var ErrUnknownInput = errors.New("bench: unknown input kind")

// ParseInputKind maps a name such as "nearly-sorted" to its InputKind.
func ParseInputKind(s string) (InputKind, error) {
	kind := InputKind(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range AllInputs {
		if k == kind {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownInput, s)
}

// Generate returns n values of the given kind. The same kind, n and seed always
// produce the same values.
func Generate(kind InputKind, n int, seed uint64) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("bench: negative input size %d", n)
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	values := make([]int, n)

	switch kind {
	case InputRandom:
		for i := range values {
			values[i] = rng.IntN(MaxRandomValue + 1)
		}
	case InputSorted:
		for i := range values {
			values[i] = i + 1
		}
	case InputReverse:
		for i := range values {
			values[i] = n - i
		}
	case InputNearlySorted:
		for i := range values {
			values[i] = i + 1
		}
		if n == 0 {
			break
		}
		// one random transposition per hundred elements, at least one
		for range max(1, n/100) {
			a, b := rng.IntN(n), rng.IntN(n)
			values[a], values[b] = values[b], values[a]
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownInput, kind)
	}
	return values, nil
}
