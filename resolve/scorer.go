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

package resolve

import "syltrie/morph"

const DefaultSignalBonus = 0.3

// Signal names as reported in resolutions.
const (
	SignalPrevPronoun       = "prevPronounSubject"
	SignalPrevAdverb        = "prevAdverbManner"
	SignalPrevPreposition   = "prevPrepositionGoverns"
	SignalNextVerb          = "nextVerbSubjectPosition"
	SignalNextAdverb        = "nextAdverb"
	SignalNextPreposition   = "nextPrepositionalPhrase"
	SignalNextNounAgreement = "nextNounAgreement"
)

// HeuristicScorer implements the default additive scoring: each
// contextual signal matching a candidate's expected co-occurrence
// signature adds a fixed bonus to the candidate's prior. Context
// tokens are categorized through a tagger by their highest-prior
// candidate; the scorer never resolves them recursively.
type HeuristicScorer struct {
	tagger morph.Tagger
	bonus  float64
}

// NewHeuristicScorer creates the default scorer. A non-positive
// bonus falls back to DefaultSignalBonus.
func NewHeuristicScorer(tagger morph.Tagger, bonus float64) *HeuristicScorer {
	if bonus <= 0 {
		bonus = DefaultSignalBonus
	}
	return &HeuristicScorer{tagger: tagger, bonus: bonus}
}

// Score implements the Scorer interface.
func (hs *HeuristicScorer) Score(cand morph.Candidate, win Window) (float64, []string) {
	score := cand.Prior
	var signals []string
	fire := func(name string) {
		score += hs.bonus
		signals = append(signals, name)
	}

	switch cand.Tag {
	case morph.PosVerb, morph.PosInfinitive:
		if hs.windowHasTag(win.Prev, morph.PosPronoun) {
			fire(SignalPrevPronoun)
		}
		if hs.windowHasTag(win.Prev, morph.PosAdverb) {
			fire(SignalPrevAdverb)
		}
		if hs.windowHasTag(win.Next, morph.PosAdverb) {
			fire(SignalNextAdverb)
		}
		if hs.windowHasTag(win.Next, morph.PosPreposition) {
			fire(SignalNextPreposition)
		}
	case morph.PosNoun, morph.PosPronoun:
		if hs.windowHasTag(win.Prev, morph.PosPreposition) {
			fire(SignalPrevPreposition)
		}
		if hs.windowHasTag(win.Next, morph.PosVerb) {
			fire(SignalNextVerb)
		}
	case morph.PosAdjectiveFull, morph.PosAdjectiveShort, morph.PosParticiple:
		if hs.nextNounAgrees(cand, win.Next) {
			fire(SignalNextNounAgreement)
		}
	}
	return score, signals
}

// bestParse categorizes a context token by its highest-prior
// candidate (first one wins a tie). The bool result is false when
// the tagger cannot analyze the token - such neighbors simply
// contribute no signal.
func (hs *HeuristicScorer) bestParse(word string) (morph.Parse, bool) {
	cands, err := hs.tagger.Analyze(word)
	if err != nil || len(cands) == 0 {
		return morph.Parse{}, false
	}
	best := 0
	for i := 1; i < len(cands); i++ {
		if cands[i].Prior > cands[best].Prior {
			best = i
		}
	}
	return cands[best].Parse, true
}

func (hs *HeuristicScorer) windowHasTag(words []string, tag morph.PartOfSpeech) bool {
	for _, w := range words {
		if parse, ok := hs.bestParse(w); ok && parse.Tag == tag {
			return true
		}
	}
	return false
}

// nextNounAgrees checks whether some following noun could agree with
// an adjective candidate. Gender and number block the signal only
// when both sides specify a differing value; unspecified features do
// not veto.
func (hs *HeuristicScorer) nextNounAgrees(cand morph.Candidate, next []string) bool {
	for _, w := range next {
		parse, ok := hs.bestParse(w)
		if !ok || parse.Tag != morph.PosNoun {
			continue
		}
		if featuresConflict(cand.Features, parse.Features, "gender") ||
			featuresConflict(cand.Features, parse.Features, "number") {
			continue
		}
		return true
	}
	return false
}

func featuresConflict(a, b map[string]string, name string) bool {
	va, okA := a[name]
	vb, okB := b[name]
	return okA && okB && va != vb
}
