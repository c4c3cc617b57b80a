package zapp

import (
	"fmt"
	"math/rand"
)

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	vowels   = "AEIOU"

	// MinVowels is the number of letters always drawn from the vowel pool.
	MinVowels = 2
)

// PickLetters draws size unique uppercase letters.
// The first MinVowels letters come from {A,E,I,O,U}; the rest are drawn
// from whatever remains of the alphabet. Both pools shrink as letters are
// taken, so no letter can be drawn twice.
//
// Panics if size is outside [MinVowels, 26].
func PickLetters(rng *rand.Rand, size int) []rune {
	if size < MinVowels || size > len(alphabet) {
		panic(fmt.Sprintf("zapp: cannot pick %d letters", size))
	}

	vowelPool := []rune(vowels)
	alphaPool := []rune(alphabet)
	letters := make([]rune, 0, size)

	for i := 0; i < MinVowels; i++ {
		var letter rune
		letter, vowelPool = draw(rng, vowelPool)
		alphaPool = without(alphaPool, letter)
		letters = append(letters, letter)
	}

	for i := MinVowels; i < size; i++ {
		var letter rune
		letter, alphaPool = draw(rng, alphaPool)
		letters = append(letters, letter)
	}

	return letters
}

// draw removes a uniformly random element from pool.
// Swap-remove keeps it O(1); pool order is not meaningful.
func draw(rng *rand.Rand, pool []rune) (rune, []rune) {
	i := rng.Intn(len(pool))
	r := pool[i]
	last := len(pool) - 1
	pool[i] = pool[last]
	return r, pool[:last]
}

// without removes r from pool if present.
func without(pool []rune, r rune) []rune {
	for i, p := range pool {
		if p == r {
			last := len(pool) - 1
			pool[i] = pool[last]
			return pool[:last]
		}
	}
	return pool
}

// IsVowel reports whether r is one of A, E, I, O, U.
func IsVowel(r rune) bool {
	switch r {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}
