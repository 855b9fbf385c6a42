// Package redact masks configured sensitive terms in outbound search
// result content before it leaves the bot as an artifact.
package redact

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Redactor finds sensitive terms with an Aho-Corasick automaton built over
// a normalized alphabet, so obfuscated spellings ("s3cr3t", "s.e.c.r.e.t")
// are caught as well. An empty term list yields a passthrough Redactor.
type Redactor struct {
	matcher  *goahocorasick.Machine
	maskChar rune
	enabled  bool
}

// textMapping links the normalized searchable runes back to their position
// in the original text, so masking preserves spacing and punctuation.
type textMapping struct {
	normalized []rune
	origIdx    []int
}

func NewRedactor(terms []string, maskChar rune) (Redactor, error) {
	patterns := make([][]rune, 0, len(terms))
	for _, term := range terms {
		p := normalizeRunes([]rune(term))
		if len(p) == 0 {
			continue
		}
		patterns = append(patterns, p)
	}
	if len(patterns) == 0 {
		return Redactor{maskChar: maskChar}, nil
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return Redactor{}, err
	}
	return Redactor{matcher: m, maskChar: maskChar, enabled: true}, nil
}

// Redact replaces every occurrence of a configured term with the mask
// character, keeping all untouched characters in place.
func (r *Redactor) Redact(original string) string {
	if !r.enabled {
		return original
	}

	mapping := normalize(original)
	if len(mapping.normalized) == 0 {
		return original
	}

	origRunes := []rune(original)
	spans := r.matcher.MultiPatternSearch(mapping.normalized, false)
	if len(spans) == 0 {
		return original
	}

	for _, span := range spans {
		normStart := span.Pos
		normEnd := normStart + len(span.Word)
		if normStart < 0 || normEnd > len(mapping.origIdx) {
			continue
		}

		origStart := mapping.origIdx[normStart]
		origEnd := mapping.origIdx[normEnd-1] + 1
		for i := origStart; i < origEnd; i++ {
			origRunes[i] = r.maskChar
		}
	}

	return string(origRunes)
}

func normalize(input string) textMapping {
	origRunes := []rune(input)
	norm := make([]rune, 0, len(origRunes))
	origIdx := make([]int, 0, len(origRunes))

	for i, r := range origRunes {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		norm = append(norm, unicode.ToLower(clean))
		origIdx = append(origIdx, i)
	}
	return textMapping{normalized: norm, origIdx: origIdx}
}

func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

// simplifyRune maps common substitution characters back to their standard
// alphabet counterparts.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

// isNoise identifies characters ignored during pattern matching.
func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
