// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of SYLTRIE.
//
//  SYLTRIE is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  SYLTRIE is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with SYLTRIE.  If not, see <https://www.gnu.org/licenses/>.

// Package syllable implements deterministic vowel-nucleus syllabification.
// The produced syllable sequences serve as tree keys, so the segmentation
// must be pure and stable across runs - the same surface wordform always
// maps to the same key.
package syllable

import (
	"strings"
	"unicode"

	"syltrie/serror"
)

// ruVowels contains nucleus-forming characters of the Russian alphabet.
// Latin vowels are included so mixed tokens (abbreviations, product
// names) still yield usable keys.
const ruVowels = "аеёиоуыэюя" + "aeiouy"

// sonority ranks consonants roughly along the sonority hierarchy
// (glides > liquids > nasals > fricatives > stops). Consonants missing
// from the map (and digits) rank lowest.
var sonority = map[rune]int{
	'й': 7,
	'л': 6, 'р': 6,
	'м': 5, 'н': 5,
	'в': 4,
	'ж': 3, 'з': 3,
	'б': 2, 'г': 2, 'д': 2,
	'с': 1, 'ф': 1, 'х': 1, 'ш': 1, 'щ': 1,
	'l': 6, 'r': 6,
	'm': 5, 'n': 5,
	'w': 4, 'v': 4,
	'z': 3, 'j': 3,
	'b': 2, 'g': 2, 'd': 2,
	's': 1, 'f': 1, 'h': 1,
}

// indivisiblePairs lists consonant onsets which never split: a cluster
// between two nuclei starting with such a pair moves whole to the
// following syllable. Covers obstruent+liquid onsets plus the с- and
// в-initial clusters produced by Russian prefixation.
var indivisiblePairs = func() map[string]bool {
	pairs := []string{
		"бл", "вл", "гл", "дл", "жл", "зл", "кл", "мл", "пл", "сл", "тл", "фл", "хл", "цл", "чл", "шл", "щл",
		"бр", "вр", "гр", "др", "жр", "зр", "кр", "мр", "пр", "ср", "тр", "фр", "хр", "цр", "чр", "шр", "щр",
		"ст", "сп", "ск", "см", "сн", "св", "сб", "сг", "сд", "сж", "сз", "шт", "шк",
		"вз", "вс", "вб", "вг", "вд", "вж", "вт", "вп",
	}
	ans := make(map[string]bool, len(pairs))
	for _, p := range pairs {
		ans[p] = true
	}
	return ans
}()

// Key is an ordered, non-empty sequence of syllables identifying one
// wordform's path in a syllable tree.
type Key []string

func (k Key) String() string {
	return strings.Join(k, "-")
}

// Word reconstructs the original wordform by concatenating the
// syllables in order.
func (k Key) Word() string {
	return strings.Join(k, "")
}

// HasPrefix tests whether prefix is a syllable-wise prefix of k.
// Matching is done per whole syllable, never per character, so the
// prefix ["мо"] does not match a key starting with the syllable "мол".
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i, s := range prefix {
		if k[i] != s {
			return false
		}
	}
	return true
}

// Syllabifier splits wordforms into syllables. The zero value is not
// usable, use NewSyllabifier.
type Syllabifier struct {
	vowels map[rune]bool
}

// NewSyllabifier creates a syllabifier for the built-in alphabet,
// optionally extended with extra nucleus characters (e.g. for corpora
// mixing in another Cyrillic language).
func NewSyllabifier(extraVowels string) *Syllabifier {
	vowels := make(map[rune]bool)
	for _, v := range ruVowels {
		vowels[v] = true
	}
	for _, v := range strings.ToLower(extraVowels) {
		vowels[v] = true
	}
	return &Syllabifier{vowels: vowels}
}

// Syllabify maps a wordform to its syllable key. It fails with
// serror.EmptyInputError if the input is empty or contains no letter
// or digit at all; any other input produces a non-empty key. A word
// without a single vowel nucleus (acronyms, numerals) becomes a
// single-syllable key equal to the whole normalized word. The function
// is pure - no state survives between calls.
func (s *Syllabifier) Syllabify(word string) (Key, error) {
	norm := normalize(word)
	if len(norm) == 0 {
		return nil, serror.EmptyInputError{
			Msg: "cannot syllabify an empty or punctuation-only input",
		}
	}
	nuclei := make([]int, 0, len(norm))
	for i, c := range norm {
		if s.vowels[c] {
			nuclei = append(nuclei, i)
		}
	}
	if len(nuclei) == 0 {
		return Key{string(norm)}, nil
	}

	ans := make(Key, 0, len(nuclei))
	start := 0
	for i := 0; i < len(nuclei)-1; i++ {
		end := s.splitBoundary(norm, nuclei[i], nuclei[i+1])
		ans = append(ans, string(norm[start:end]))
		start = end
	}
	// the final syllable takes the whole trailing consonant cluster
	ans = append(ans, string(norm[start:]))
	return ans, nil
}

// splitBoundary decides where the boundary between the syllables
// around two adjacent nuclei falls. A single consonant between nuclei
// opens the following syllable, and so does a whole cluster starting
// with an indivisible onset pair. In any other cluster the first
// consonant trails the preceding syllable and the boundary falls
// before the most sonorant of the remaining consonants, which
// approximates the maximal onset principle; sonority ties go to the
// first maximum, so a cluster with no sonority contrast degenerates
// to a plain one-trails split.
func (s *Syllabifier) splitBoundary(word []rune, nucleus, next int) int {
	clusterLen := next - nucleus - 1
	if clusterLen <= 1 {
		return nucleus + 1
	}
	if indivisiblePairs[string(word[nucleus+1:nucleus+3])] {
		return nucleus + 1
	}
	best := sonority[word[nucleus+2]]
	bestPos := 1
	for i := 2; i < clusterLen; i++ {
		if son := sonority[word[nucleus+1+i]]; son > best {
			best = son
			bestPos = i
		}
	}
	return nucleus + 1 + bestPos
}

// normalize lowercases the input and strips everything which is
// neither a letter nor a digit. Tokenization has already split on
// whitespace and hyphens, so what remains here is typically trailing
// punctuation.
func normalize(word string) []rune {
	ans := make([]rune, 0, len(word))
	for _, c := range strings.ToLower(word) {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			ans = append(ans, c)
		}
	}
	return ans
}
