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

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"syltrie/morph"
	"syltrie/serror"
)

func testResolver() *Resolver {
	tagger := morph.NewLexiconTagger(morph.DefaultLexicon())
	return NewResolver(NewHeuristicScorer(tagger, 0.3), 1)
}

func zamokCandidates() []morph.Candidate {
	return []morph.Candidate{
		{
			Parse: morph.Parse{
				Lemma:    "замок",
				Tag:      morph.PosNoun,
				Features: map[string]string{"stress": "initial"},
			},
			Prior: 0.5,
		},
		{
			Parse: morph.Parse{
				Lemma:    "замок",
				Tag:      morph.PosNoun,
				Features: map[string]string{"stress": "final"},
			},
			Prior: 0.5,
		},
	}
}

func TestResolveNoCandidates(t *testing.T) {
	rslv := testResolver()
	_, err := rslv.Resolve("замок", nil, Context{})
	assert.Error(t, err)
	assert.IsType(t, serror.NoCandidatesError{}, err)
}

func TestResolveEqualPriorsTakeFirstListed(t *testing.T) {
	rslv := testResolver()
	ans, err := rslv.Resolve("замок", zamokCandidates(), Context{})
	assert.NoError(t, err)
	assert.Equal(t, "initial", ans.Parse.Features["stress"])
	assert.Empty(t, ans.Signals)
}

func TestResolveIsDeterministic(t *testing.T) {
	rslv := testResolver()
	ctx := Context{Prev: []string{"старый"}, Next: []string{"стоит"}}
	first, err := rslv.Resolve("замок", zamokCandidates(), ctx)
	assert.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := rslv.Resolve("замок", zamokCandidates(), ctx)
		assert.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestResolveDefaultsToHighestPrior(t *testing.T) {
	rslv := testResolver()
	cands := []morph.Candidate{
		{Parse: morph.Parse{Lemma: "стекло", Tag: morph.PosUnknown}, Prior: 0.2},
		{Parse: morph.Parse{Lemma: "стекло", Tag: morph.PosUnknown, Features: map[string]string{"variant": "b"}}, Prior: 0.7},
	}
	ans, err := rslv.Resolve("стекло", cands, Context{})
	assert.NoError(t, err)
	assert.Equal(t, "b", ans.Parse.Features["variant"])
}

func TestResolveNounWhenFollowedByVerb(t *testing.T) {
	rslv := testResolver()
	tagger := morph.NewLexiconTagger(morph.DefaultLexicon())
	cands, err := tagger.Analyze("стекло")
	assert.NoError(t, err)

	ans, err := rslv.Resolve("стекло", cands, Context{Next: []string{"разбилось"}})
	assert.NoError(t, err)
	assert.Equal(t, morph.PosNoun, ans.Parse.Tag)
	assert.Equal(t, "стекло", ans.Parse.Lemma)
	assert.Contains(t, ans.Signals, SignalNextVerb)
}

func TestResolveVerbAfterAdverb(t *testing.T) {
	rslv := testResolver()
	tagger := morph.NewLexiconTagger(morph.DefaultLexicon())
	cands, err := tagger.Analyze("стекло")
	assert.NoError(t, err)

	ans, err := rslv.Resolve("стекло", cands, Context{
		Prev: []string{"медленно"},
		Next: []string{"по", "стене"},
	})
	assert.NoError(t, err)
	assert.Equal(t, morph.PosVerb, ans.Parse.Tag)
	assert.Equal(t, "стечь", ans.Parse.Lemma)
	assert.Contains(t, ans.Signals, SignalPrevAdverb)
}

func TestResolveWindowIsBounded(t *testing.T) {
	rslv := testResolver()
	tagger := morph.NewLexiconTagger(morph.DefaultLexicon())
	cands, err := tagger.Analyze("стекло")
	assert.NoError(t, err)

	// the adverb sits outside the one-token window and must not fire
	ans, err := rslv.Resolve("стекло", cands, Context{
		Prev: []string{"медленно", "окно"},
	})
	assert.NoError(t, err)
	assert.Equal(t, morph.PosNoun, ans.Parse.Tag)
	assert.NotContains(t, ans.Signals, SignalPrevAdverb)
}

func TestResolveAdjectiveAgreement(t *testing.T) {
	rslv := testResolver()
	cands := []morph.Candidate{
		{
			Parse: morph.Parse{
				Lemma:    "красивый",
				Tag:      morph.PosAdjectiveFull,
				Features: map[string]string{"gender": "femn", "number": "sing"},
			},
			Prior: 0.5,
		},
		{
			Parse: morph.Parse{Lemma: "красиво", Tag: morph.PosAdverb},
			Prior: 0.5,
		},
	}
	ans, err := rslv.Resolve("красивая", cands, Context{Next: []string{"книга"}})
	assert.NoError(t, err)
	assert.Equal(t, morph.PosAdjectiveFull, ans.Parse.Tag)
	assert.Contains(t, ans.Signals, SignalNextNounAgreement)
}

func TestResolveAgreementVetoedByGender(t *testing.T) {
	rslv := testResolver()
	cands := []morph.Candidate{
		{
			Parse: morph.Parse{
				Lemma:    "красивый",
				Tag:      morph.PosAdjectiveFull,
				Features: map[string]string{"gender": "masc", "number": "sing"},
			},
			Prior: 0.5,
		},
	}
	// книга is feminine, a masculine adjective gets no agreement bonus
	ans, err := rslv.Resolve("красивый", cands, Context{Next: []string{"книга"}})
	assert.NoError(t, err)
	assert.Empty(t, ans.Signals)
	assert.Equal(t, 0.5, ans.Score)
}

func TestNewResolverDefaultWindow(t *testing.T) {
	rslv := NewResolver(NewHeuristicScorer(nil, 0), 0)
	assert.Equal(t, DefaultWindowSize, rslv.WindowSize())
}
