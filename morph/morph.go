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

// Package morph defines the morphological analysis boundary: candidate
// parses as supplied by a tagger and resolved records as stored in a
// syllable tree. The tagset follows the OpenCorpora conventions.
package morph

import (
	"fmt"
	"sort"
	"strings"
)

type PartOfSpeech string

// Part-of-speech categories (OpenCorpora tagset). PosUnknown is the
// sentinel for wordforms no analysis applies to.
const (
	PosNoun           PartOfSpeech = "NOUN"
	PosVerb           PartOfSpeech = "VERB"
	PosInfinitive     PartOfSpeech = "INFN"
	PosAdjectiveFull  PartOfSpeech = "ADJF"
	PosAdjectiveShort PartOfSpeech = "ADJS"
	PosParticiple     PartOfSpeech = "PRTF"
	PosAdverb         PartOfSpeech = "ADVB"
	PosPronoun        PartOfSpeech = "NPRO"
	PosNumeral        PartOfSpeech = "NUMR"
	PosPreposition    PartOfSpeech = "PREP"
	PosConjunction    PartOfSpeech = "CONJ"
	PosParticle       PartOfSpeech = "PRCL"
	PosInterjection   PartOfSpeech = "INTJ"
	PosUnknown        PartOfSpeech = "UNKN"
)

func (pos PartOfSpeech) Validate() error {
	switch pos {
	case PosNoun, PosVerb, PosInfinitive, PosAdjectiveFull, PosAdjectiveShort,
		PosParticiple, PosAdverb, PosPronoun, PosNumeral, PosPreposition,
		PosConjunction, PosParticle, PosInterjection, PosUnknown:
		return nil
	}
	return fmt.Errorf("unknown part of speech tag: %s", pos)
}

// Parse is the identity of one morphological analysis - lemma,
// part-of-speech tag and grammatical features (e.g. case=gent,
// number=plur). Two parses with equal lemma, tag and features
// describe the same analysis.
type Parse struct {
	Lemma    string            `json:"lemma"`
	Tag      PartOfSpeech      `json:"pos"`
	Features map[string]string `json:"features,omitempty"`
}

// Equals compares two parses including their feature mappings.
func (p Parse) Equals(other Parse) bool {
	if p.Lemma != other.Lemma || p.Tag != other.Tag ||
		len(p.Features) != len(other.Features) {
		return false
	}
	for k, v := range p.Features {
		if other.Features[k] != v {
			return false
		}
	}
	return true
}

// FeatureStr renders the feature mapping as a canonical
// "name=value|name=value" string with names sorted, usable as a
// stable identity fragment in logs and reports.
func (p Parse) FeatureStr() string {
	if len(p.Features) == 0 {
		return ""
	}
	names := make([]string, 0, len(p.Features))
	for k := range p.Features {
		names = append(names, k)
	}
	sort.Strings(names)
	var tmp strings.Builder
	for i, k := range names {
		if i > 0 {
			tmp.WriteString("|")
		}
		tmp.WriteString(k)
		tmp.WriteString("=")
		tmp.WriteString(p.Features[k])
	}
	return tmp.String()
}

func (p Parse) String() string {
	if fs := p.FeatureStr(); fs != "" {
		return fmt.Sprintf("%s/%s{%s}", p.Lemma, p.Tag, fs)
	}
	return fmt.Sprintf("%s/%s", p.Lemma, p.Tag)
}

// Candidate is one possible analysis of a wordform before homonymy
// resolution, weighted by an a priori plausibility score.
type Candidate struct {
	Parse
	Prior float64 `json:"prior"`
}

// Record is one resolved analysis as stored in a syllable tree.
// Count says how many occurrences in the source text resolved to
// exactly this parse; it only grows.
type Record struct {
	Parse
	Count int `json:"count"`
}

// Tagger provides candidate analyses for a wordform. Implementations
// must return at least one candidate for any analyzable input - a
// PosUnknown fallback when nothing applies - and may fail only when
// the wordform itself is not analyzable at all (e.g. empty after
// cleaning). Taggers are synchronous and local, a call must not block
// on I/O.
type Tagger interface {
	Analyze(word string) ([]Candidate, error)
}

// UnknownCandidate builds the fallback candidate for a wordform
// without any applicable analysis. The wordform itself serves as the
// lemma.
func UnknownCandidate(word string) Candidate {
	return Candidate{
		Parse: Parse{Lemma: word, Tag: PosUnknown},
		Prior: 0.1,
	}
}
