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

package morph

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/czcorpus/cnc-gokit/fs"

	"syltrie/serror"
)

//go:embed lexicon.json
var defaultLexiconData []byte

// Lexicon maps wordforms to their candidate analyses. It is loaded
// once at process start and passed by reference wherever tagging is
// needed - never kept as ambient global state.
type Lexicon struct {
	Language string                 `json:"language"`
	Entries  map[string][]Candidate `json:"entries"`
}

func (lex *Lexicon) validate() error {
	for word, cands := range lex.Entries {
		if len(cands) == 0 {
			return fmt.Errorf("lexicon entry %s has no candidates", word)
		}
		for _, cand := range cands {
			if err := cand.Tag.Validate(); err != nil {
				return fmt.Errorf("lexicon entry %s: %w", word, err)
			}
			if cand.Prior <= 0 {
				return fmt.Errorf("lexicon entry %s: prior must be positive", word)
			}
		}
	}
	return nil
}

// DefaultLexicon returns the built-in demo lexicon.
func DefaultLexicon() *Lexicon {
	var ans Lexicon
	if err := json.Unmarshal(defaultLexiconData, &ans); err != nil {
		panic(fmt.Errorf("failed to parse built-in lexicon: %w", err))
	}
	return &ans
}

// LoadLexicon reads a lexicon from a JSON file. With an empty path
// the built-in demo lexicon is returned.
func LoadLexicon(path string) (*Lexicon, error) {
	if path == "" {
		return DefaultLexicon(), nil
	}
	isFile, err := fs.IsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon: %w", err)
	}
	if !isFile {
		return nil, fmt.Errorf("failed to load lexicon: %s is not a file", path)
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon: %w", err)
	}
	var ans Lexicon
	if err := json.Unmarshal(rawData, &ans); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon %s: %w", path, err)
	}
	if err := ans.validate(); err != nil {
		return nil, err
	}
	return &ans, nil
}

// suffixRule guesses analyses for out-of-lexicon wordforms by their
// ending. The lemma is reconstructed by cutting lemmaCut runes off
// the wordform and appending lemmaAdd.
type suffixRule struct {
	suffix   string
	tag      PartOfSpeech
	features map[string]string
	prior    float64
	lemmaCut int
	lemmaAdd string
}

// suffixRules is ordered by decreasing suffix length; the first
// matching rule wins.
var suffixRules = []suffixRule{
	{"ость", PosNoun, map[string]string{"gender": "femn", "number": "sing", "case": "nomn"}, 0.7, 0, ""},
	{"ение", PosNoun, map[string]string{"gender": "neut", "number": "sing", "case": "nomn"}, 0.7, 0, ""},
	{"ация", PosNoun, map[string]string{"gender": "femn", "number": "sing", "case": "nomn"}, 0.7, 0, ""},
	{"ает", PosVerb, map[string]string{"tense": "pres", "person": "3per", "number": "sing"}, 0.7, 2, "ть"},
	{"яет", PosVerb, map[string]string{"tense": "pres", "person": "3per", "number": "sing"}, 0.7, 2, "ть"},
	{"ают", PosVerb, map[string]string{"tense": "pres", "person": "3per", "number": "plur"}, 0.7, 2, "ть"},
	{"яют", PosVerb, map[string]string{"tense": "pres", "person": "3per", "number": "plur"}, 0.7, 2, "ть"},
	{"ала", PosVerb, map[string]string{"tense": "past", "gender": "femn", "number": "sing"}, 0.6, 2, "ть"},
	{"или", PosVerb, map[string]string{"tense": "past", "number": "plur"}, 0.6, 2, "ть"},
	{"али", PosVerb, map[string]string{"tense": "past", "number": "plur"}, 0.6, 2, "ть"},
	{"ать", PosInfinitive, map[string]string{"aspect": "impf"}, 0.6, 0, ""},
	{"ять", PosInfinitive, map[string]string{"aspect": "impf"}, 0.6, 0, ""},
	{"ить", PosInfinitive, map[string]string{"aspect": "impf"}, 0.6, 0, ""},
	{"еть", PosInfinitive, map[string]string{"aspect": "impf"}, 0.6, 0, ""},
	{"ый", PosAdjectiveFull, map[string]string{"gender": "masc", "number": "sing", "case": "nomn"}, 0.7, 0, ""},
	{"ая", PosAdjectiveFull, map[string]string{"gender": "femn", "number": "sing", "case": "nomn"}, 0.7, 2, "ый"},
	{"ое", PosAdjectiveFull, map[string]string{"gender": "neut", "number": "sing", "case": "nomn"}, 0.65, 2, "ый"},
	{"ые", PosAdjectiveFull, map[string]string{"number": "plur", "case": "nomn"}, 0.65, 2, "ый"},
	{"ски", PosAdverb, nil, 0.6, 0, ""},
}

// LexiconTagger analyzes wordforms against a lexicon, guessing
// analyses for unknown forms by suffix and falling back to a
// PosUnknown candidate, so it never returns an empty candidate list
// for a non-empty wordform.
type LexiconTagger struct {
	lexicon *Lexicon
}

func NewLexiconTagger(lexicon *Lexicon) *LexiconTagger {
	return &LexiconTagger{lexicon: lexicon}
}

// Analyze implements the Tagger interface. It fails with
// serror.EmptyInputError when the wordform is empty after cleaning;
// otherwise it always returns at least one candidate.
func (lt *LexiconTagger) Analyze(word string) ([]Candidate, error) {
	clean := cleanWord(word)
	if clean == "" {
		return nil, serror.EmptyInputError{
			Msg: fmt.Sprintf("cannot analyze empty or punctuation-only token '%s'", word),
		}
	}
	if cands, ok := lt.lexicon.Entries[clean]; ok {
		ans := make([]Candidate, len(cands))
		copy(ans, cands)
		return ans, nil
	}
	if cand, ok := guessBySuffix(clean); ok {
		return []Candidate{cand}, nil
	}
	return []Candidate{UnknownCandidate(clean)}, nil
}

func guessBySuffix(word string) (Candidate, bool) {
	wordRunes := []rune(word)
	for _, rule := range suffixRules {
		suffRunes := []rune(rule.suffix)
		// a guessed wordform must be longer than the suffix itself
		if len(wordRunes) <= len(suffRunes) {
			continue
		}
		if !strings.HasSuffix(word, rule.suffix) {
			continue
		}
		lemma := word
		if rule.lemmaCut > 0 {
			lemma = string(wordRunes[:len(wordRunes)-rule.lemmaCut]) + rule.lemmaAdd
		}
		var features map[string]string
		if rule.features != nil {
			features = make(map[string]string, len(rule.features))
			for k, v := range rule.features {
				features[k] = v
			}
		}
		return Candidate{
			Parse: Parse{Lemma: lemma, Tag: rule.tag, Features: features},
			Prior: rule.prior,
		}, true
	}
	return Candidate{}, false
}

func cleanWord(word string) string {
	var tmp strings.Builder
	for _, c := range strings.ToLower(word) {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			tmp.WriteRune(c)
		}
	}
	return tmp.String()
}
