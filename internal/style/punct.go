package style

import "unicode"

// CountPunctuation tallies punctuation marks in text by class.
//
// Runs of three or more periods count as one ellipsis; runs of two or more
// hyphens count as one dash. Apostrophes and hyphens between two letters or
// digits belong to the word and are not counted.
func CountPunctuation(text string) [NumPunctMarks]int {
	var counts [NumPunctMarks]int
	rs := []rune(text)

	for i := 0; i < len(rs); i++ {
		r := rs[i]
		switch r {
		case '.':
			j := runEnd(rs, i, '.')
			if j-i >= 3 {
				counts[PunctEllipsis]++
			} else {
				counts[PunctPeriod] += j - i
			}
			i = j - 1
		case '…':
			counts[PunctEllipsis]++
		case ',':
			counts[PunctComma]++
		case ';':
			counts[PunctSemicolon]++
		case ':':
			counts[PunctColon]++
		case '!':
			counts[PunctExclamation]++
		case '?':
			counts[PunctQuestion]++
		case '—', '–':
			counts[PunctDash]++
		case '-':
			j := runEnd(rs, i, '-')
			if j-i == 1 && wordInternal(rs, i) {
				continue
			}
			counts[PunctDash]++
			i = j - 1
		case '"', '“', '”', '„', '«', '»':
			counts[PunctQuote]++
		case '\'', '‘', '’':
			if wordInternal(rs, i) {
				continue
			}
			counts[PunctQuote]++
		case '(', ')', '[', ']', '{', '}':
			counts[PunctParen]++
		default:
			if unicode.IsPunct(r) {
				counts[PunctOther]++
			}
		}
	}
	return counts
}

// runEnd returns the index just past the run of r starting at i.
func runEnd(rs []rune, i int, r rune) int {
	j := i
	for j < len(rs) && rs[j] == r {
		j++
	}
	return j
}

func wordInternal(rs []rune, i int) bool {
	if i == 0 || i == len(rs)-1 {
		return false
	}
	return isWordRune(rs[i-1]) && isWordRune(rs[i+1])
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
