package document

import (
	"strings"
	"unicode"
)

func getNumberWords() map[string]bool {
	words := []string{
		"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
		"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
		"sixteen", "seventeen", "eighteen", "nineteen", "twenty", "thirty",
		"forty", "fifty", "sixty", "seventy", "eighty", "ninety", "hundred",
		"thousand", "million", "billion", "trillion", "quadrillion",
		"gajillion", "bazillion",
	}
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

var numberWords = getNumberWords()

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// likeNumber is the lexical number check used when the parser gives none.
func likeNumber(text string) bool {
	text = strings.TrimLeft(text, "+-±~")
	stripped := strings.NewReplacer(",", "", ".", "").Replace(text)
	if isDigits(stripped) {
		return true
	}
	if parts := strings.Split(text, "/"); len(parts) == 2 && isDigits(parts[0]) && isDigits(parts[1]) {
		return true
	}
	return numberWords[strings.ToLower(text)]
}
