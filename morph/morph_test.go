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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEquals(t *testing.T) {
	p1 := Parse{
		Lemma:    "книга",
		Tag:      PosNoun,
		Features: map[string]string{"gender": "femn", "number": "sing"},
	}
	p2 := Parse{
		Lemma:    "книга",
		Tag:      PosNoun,
		Features: map[string]string{"number": "sing", "gender": "femn"},
	}
	assert.True(t, p1.Equals(p2))
}

func TestParseEqualsDetectsFeatureDiff(t *testing.T) {
	p1 := Parse{
		Lemma:    "замок",
		Tag:      PosNoun,
		Features: map[string]string{"stress": "initial"},
	}
	p2 := Parse{
		Lemma:    "замок",
		Tag:      PosNoun,
		Features: map[string]string{"stress": "final"},
	}
	assert.False(t, p1.Equals(p2))

	p3 := Parse{Lemma: "замок", Tag: PosNoun}
	assert.False(t, p1.Equals(p3))
}

func TestParseEqualsDetectsTagDiff(t *testing.T) {
	p1 := Parse{Lemma: "стекло", Tag: PosNoun}
	p2 := Parse{Lemma: "стекло", Tag: PosVerb}
	assert.False(t, p1.Equals(p2))
}

func TestFeatureStrIsCanonical(t *testing.T) {
	p := Parse{
		Lemma:    "книга",
		Tag:      PosNoun,
		Features: map[string]string{"number": "sing", "case": "nomn", "gender": "femn"},
	}
	assert.Equal(t, "case=nomn|gender=femn|number=sing", p.FeatureStr())

	empty := Parse{Lemma: "и", Tag: PosConjunction}
	assert.Equal(t, "", empty.FeatureStr())
}

func TestPartOfSpeechValidate(t *testing.T) {
	assert.NoError(t, PosNoun.Validate())
	assert.NoError(t, PosUnknown.Validate())
	assert.Error(t, PartOfSpeech("FOO").Validate())
}

func TestUnknownCandidate(t *testing.T) {
	cand := UnknownCandidate("бжвскр")
	assert.Equal(t, PosUnknown, cand.Tag)
	assert.Equal(t, "бжвскр", cand.Lemma)
	assert.Greater(t, cand.Prior, 0.0)
}
