package style

import (
	"strings"
	"unicode"
)

// CountSyllables estimates the syllables in a single word.
//
// The heuristic is deterministic: the word is lowercased, "aeiouy" are
// vowels, and every maximal run of vowels counts as one syllable. A trailing
// silent "e" is dropped unless the word ends in a consonant + "le" ("table").
// Any word containing a letter has at least one syllable; tokens without
// letters (numbers, symbols) count as one.
func CountSyllables(word string) int {
	w := strings.ToLower(word)

	var (
		letters  []rune
		count    int
		inVowels bool
	)
	for _, r := range w {
		if !unicode.IsLetter(r) {
			inVowels = false
			continue
		}
		letters = append(letters, r)
		if isVowel(r) {
			if !inVowels {
				count++
			}
			inVowels = true
		} else {
			inVowels = false
		}
	}
	if len(letters) == 0 {
		return 1
	}

	n := len(letters)
	if n > 2 && letters[n-1] == 'e' && !isVowel(letters[n-2]) {
		silent := true
		if letters[n-2] == 'l' && !isVowel(letters[n-3]) {
			silent = false
		}
		if silent {
			count--
		}
	}
	if count < 1 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
