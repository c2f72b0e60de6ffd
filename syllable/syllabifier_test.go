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

package syllable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"syltrie/serror"
)

func TestSyllabifyKnownWords(t *testing.T) {
	tests := []struct {
		word string
		key  Key
	}{
		{"молоко", Key{"мо", "ло", "ко"}},
		{"книга", Key{"кни", "га"}},
		{"яблоко", Key{"я", "бло", "ко"}},
		{"дерево", Key{"де", "ре", "во"}},
		{"стол", Key{"стол"}},
		{"учитель", Key{"у", "чи", "тель"}},
		{"наука", Key{"на", "у", "ка"}},
		{"пример", Key{"при", "мер"}},
		{"встреча", Key{"встре", "ча"}},
		{"пст", Key{"пст"}},
		{"окне", Key{"ок", "не"}},
		{"сидит", Key{"си", "дит"}},
		{"замок", Key{"за", "мок"}},
	}
	syl := NewSyllabifier("")
	for _, tst := range tests {
		ans, err := syl.Syllabify(tst.word)
		assert.NoError(t, err)
		assert.Equal(t, tst.key, ans, "word: %s", tst.word)
	}
}

func TestSyllabifyIndivisibleOnsets(t *testing.T) {
	tests := []struct {
		word string
		key  Key
	}{
		{"место", Key{"ме", "сто"}},
		{"добрый", Key{"до", "брый"}},
		{"павлин", Key{"па", "влин"}},
		{"сестра", Key{"се", "стра"}},
		{"быстро", Key{"бы", "стро"}},
	}
	syl := NewSyllabifier("")
	for _, tst := range tests {
		ans, err := syl.Syllabify(tst.word)
		assert.NoError(t, err)
		assert.Equal(t, tst.key, ans, "word: %s", tst.word)
	}
}

func TestSyllabifyFlatClusterLeavesOneTrailing(t *testing.T) {
	// no indivisible pair and no sonority contrast in the cluster:
	// exactly one consonant trails the preceding syllable
	syl := NewSyllabifier("")
	ans, err := syl.Syllabify("cockpit")
	assert.NoError(t, err)
	assert.Equal(t, Key{"coc", "kpit"}, ans)
}

func TestSyllabifyConcatenationIdentity(t *testing.T) {
	words := []string{
		"мама", "сестра", "быстро", "ванна", "пальто", "англия",
		"устройство", "окно", "замок", "стекло", "перестройка",
		"электричество", "а", "б",
	}
	syl := NewSyllabifier("")
	for _, word := range words {
		ans, err := syl.Syllabify(word)
		assert.NoError(t, err)
		assert.NotEmpty(t, ans)
		assert.Equal(t, word, ans.Word(), "word: %s", word)
	}
}

func TestSyllabifyIsPure(t *testing.T) {
	syl := NewSyllabifier("")
	first, err := syl.Syllabify("перестройка")
	assert.NoError(t, err)
	second, err := syl.Syllabify("перестройка")
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSyllabifyEmptyInput(t *testing.T) {
	syl := NewSyllabifier("")
	_, err := syl.Syllabify("")
	assert.Error(t, err)
	assert.IsType(t, serror.EmptyInputError{}, err)
}

func TestSyllabifyPunctuationOnly(t *testing.T) {
	syl := NewSyllabifier("")
	_, err := syl.Syllabify("?!...,")
	assert.Error(t, err)
	assert.IsType(t, serror.EmptyInputError{}, err)
}

func TestSyllabifyNoVowelFallback(t *testing.T) {
	syl := NewSyllabifier("")
	ans, err := syl.Syllabify("пст")
	assert.NoError(t, err)
	assert.Equal(t, Key{"пст"}, ans)

	ans, err = syl.Syllabify("2024")
	assert.NoError(t, err)
	assert.Equal(t, Key{"2024"}, ans)
}

func TestSyllabifyStripsTrailingPunctuation(t *testing.T) {
	syl := NewSyllabifier("")
	ans, err := syl.Syllabify("окне.")
	assert.NoError(t, err)
	assert.Equal(t, Key{"ок", "не"}, ans)
}

func TestSyllabifyExtraVowels(t *testing.T) {
	syl := NewSyllabifier("і")
	ans, err := syl.Syllabify("віра")
	assert.NoError(t, err)
	assert.Equal(t, Key{"ві", "ра"}, ans)
}

func TestKeyWord(t *testing.T) {
	key := Key{"мо", "ло", "ко"}
	assert.Equal(t, "молоко", key.Word())
	assert.Equal(t, "мо-ло-ко", key.String())
}

func TestKeyHasPrefixIsSyllableWise(t *testing.T) {
	key := Key{"мол", "ва"}
	assert.False(t, key.HasPrefix(Key{"мо"}))
	assert.True(t, key.HasPrefix(Key{"мол"}))
	assert.True(t, key.HasPrefix(Key{}))
	assert.False(t, Key{"мо"}.HasPrefix(Key{"мо", "ло"}))
}
