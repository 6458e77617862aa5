package analysis

import "strings"

// stemSuffixes is the priority-ordered suffix list for the stemmer. The first
// matching suffix is stripped; longer suffixes sort before their substrings
// so "ization" wins over "ion" variants.
var stemSuffixes = []string{
	"ization", "isation", "ational", "fulness", "ousness", "iveness",
	"ement", "ment", "ence", "ance", "able", "ible", "ness", "less",
	"tion", "sion", "ally", "ful", "ous", "ive", "ing", "ied", "ies",
	"ed", "er", "es", "ly", "s",
}

// Stem reduces a word to an approximate root by stripping the first matching
// suffix, but only when the remaining stem is longer than two characters.
// It matches grammatical variants ("developer"/"developed" -> "develop")
// without a full stemming algorithm.
func Stem(word string) string {
	result := strings.ToLower(word)
	for _, suffix := range stemSuffixes {
		if strings.HasSuffix(result, suffix) && len(result) > len(suffix)+2 {
			return result[:len(result)-len(suffix)]
		}
	}
	return result
}
