package fuzzy

import (
	"strings"
	"unicode/utf8"
)

// Distance is the Levenshtein edit distance between a and b, counted in runes
// after normalization.
func Distance(a, b string) int {
	r1 := []rune(normalize(a))
	r2 := []rune(normalize(b))
	if len(r1) == 0 {
		return len(r2)
	}
	if len(r2) == 0 {
		return len(r1)
	}

	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= len(r2); j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(r2)]
}

// Threshold is the typo tolerance allowed for a query of the given length.
func Threshold(query string) int {
	n := utf8.RuneCountInString(query)
	switch {
	case n <= 3:
		return 1
	case n >= 8:
		return 3
	default:
		return 2
	}
}

// Match reports whether query appears in text, either as a substring, as the
// prefix of a word, or within Threshold edits of a word.
func Match(query, text string) bool {
	return wordScore(normalize(query), normalize(text), 1) > 0
}

// Field is a piece of searchable text and its weight.
type Field struct {
	Text   string
	Weight float64
}

// Score rates how relevant fields are to query. Zero means no match.
func Score(query string, fields ...Field) float64 {
	q := normalize(query)
	if q == "" {
		return 0
	}

	score := 0.0
	for _, f := range fields {
		score += wordScore(q, normalize(f.Text), f.Weight)
	}
	return score
}

func wordScore(q, text string, weight float64) float64 {
	if q == "" || text == "" {
		return 0
	}

	if strings.Contains(text, q) {
		score := 100.0
		if containsWord(text, q) {
			score += 50
		}
		return score * weight
	}

	threshold := Threshold(q)
	best := 0.0
	for _, word := range splitWords(text) {
		s := 0.0
		if strings.HasPrefix(word, q) {
			s = 40
		}
		if d := Distance(q, word); d <= threshold {
			s = max(s, 60-float64(d)*15)
		}
		best = max(best, s)
	}
	return best * weight
}

// normalize lower-cases s and collapses whitespace
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// splitWords breaks text on whitespace and the separators used in tag lists.
func splitWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == ',' || r == '#' || r == '/' || r == '\t' || r == '\n'
	})
}

func containsWord(text, q string) bool {
	for _, word := range splitWords(text) {
		if word == q {
			return true
		}
	}
	return false
}
