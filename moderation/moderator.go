// Package moderation masks banned terms in message content before it is
// stored or fanned out. Matching is language-aware: a base word list always
// applies, and per-language lists are switched in from the detected language
// of each message.
package moderation

import (
	"coachchat/errors"
	"unicode"

	"github.com/abadojack/whatlanggo"
	goahocorasick "github.com/anknown/ahocorasick"
)

// leet maps common substitution characters back to the letters they imitate,
// so "c0@ch" matches a pattern written as "coach".
var leet = map[rune]rune{
	'4': 'a', '@': 'a',
	'3': 'e', '€': 'e',
	'1': 'i', '!': 'i', '|': 'i',
	'0': 'o',
	'5': 's', '$': 's',
}

type Moderator struct {
	base   *goahocorasick.Machine
	byLang map[string]*goahocorasick.Machine // keyed by ISO 639-3 code
	mask   rune
}

// NewModerator compiles the automatons. baseWords must not be empty; the
// per-language lists (keyed by ISO 639-3, e.g. "tur", "eng") are optional.
func NewModerator(baseWords []string, wordsByLang map[string][]string, mask rune) (*Moderator, error) {
	if len(baseWords) == 0 {
		return nil, errors.ErrEmptyWords
	}
	base, err := compile(baseWords)
	if err != nil {
		return nil, err
	}

	byLang := make(map[string]*goahocorasick.Machine, len(wordsByLang))
	for lang, words := range wordsByLang {
		if len(words) == 0 {
			continue
		}
		machine, err := compile(words)
		if err != nil {
			return nil, err
		}
		byLang[lang] = machine
	}
	return &Moderator{base: base, byLang: byLang, mask: mask}, nil
}

// Censor replaces every banned term with the mask rune, preserving the
// message length and spacing. It never rejects a message.
func (m *Moderator) Censor(text string) string {
	norm, origIdx := normalize(text)
	if len(norm) == 0 {
		return text
	}

	masked := []rune(text)
	changed := m.apply(m.base, norm, origIdx, masked)

	info := whatlanggo.Detect(text)
	if info.IsReliable() {
		if machine, ok := m.byLang[whatlanggo.LangToString(info.Lang)]; ok {
			changed = m.apply(machine, norm, origIdx, masked) || changed
		}
	}

	if !changed {
		return text
	}
	return string(masked)
}

// apply masks every span the machine finds, mapping normalized positions back
// to the original runes.
func (m *Moderator) apply(machine *goahocorasick.Machine, norm []rune, origIdx []int, masked []rune) bool {
	spans := machine.MultiPatternSearch(norm, false)
	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(origIdx) {
			continue
		}
		for i := origIdx[start]; i <= origIdx[end-1]; i++ {
			masked[i] = m.mask
		}
	}
	return len(spans) > 0
}

func compile(words []string) (*goahocorasick.Machine, error) {
	patterns := make([][]rune, 0, len(words))
	for _, word := range words {
		if norm, _ := normalize(word); len(norm) > 0 {
			patterns = append(patterns, norm)
		}
	}
	if len(patterns) == 0 {
		return nil, errors.ErrEmptyWords
	}
	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	return machine, nil
}

// normalize lowercases, undoes leet substitutions, and strips punctuation and
// spacing. The second result maps every normalized rune back to its index in
// the input, which Censor needs to mask the original characters.
func normalize(input string) ([]rune, []int) {
	runes := []rune(input)
	norm := make([]rune, 0, len(runes))
	origIdx := make([]int, 0, len(runes))
	for i, r := range runes {
		if plain, ok := leet[r]; ok {
			r = plain
		}
		if unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
			continue
		}
		norm = append(norm, unicode.ToLower(r))
		origIdx = append(origIdx, i)
	}
	return norm, origIdx
}
