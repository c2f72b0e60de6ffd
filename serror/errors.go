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

package serror

import (
	"encoding/json"
	"fmt"
)

// InputError covers malformed user input on the service level
// (bad query arguments, unparseable request bodies).
type InputError struct {
	Msg string
}

func (err InputError) Error() string {
	return err.Msg
}

func (err InputError) MarshalJSON() ([]byte, error) {
	if err.Msg != "" {
		return json.Marshal(err.Msg)
	}
	return json.Marshal(nil)
}

// ----------------------------

type InternalError struct {
	Msg string
}

func (err InternalError) Error() string {
	return err.Msg
}

func (err InternalError) MarshalJSON() ([]byte, error) {
	if err.Msg != "" {
		return json.Marshal(err.Msg)
	}
	return json.Marshal(nil)
}

// ---------------------------

type RecoveredError struct {
	Msg string
}

func (err RecoveredError) Error() string {
	return err.Msg
}

func (err RecoveredError) MarshalJSON() ([]byte, error) {
	if err.Msg != "" {
		return json.Marshal(err.Msg)
	}
	return json.Marshal(nil)
}

// ---------------------------

type TimeoutError struct {
	Msg string
}

func (err TimeoutError) Error() string {
	return err.Msg
}

func (err TimeoutError) MarshalJSON() ([]byte, error) {
	if err.Msg != "" {
		return json.Marshal(err.Msg)
	}
	return json.Marshal(nil)
}

// ---------------------------

// NotFoundError signals a request for a resource (typically
// a named syllable tree) that does not exist.
type NotFoundError struct {
	Msg string
}

func (err NotFoundError) Error() string {
	return err.Msg
}

func (err NotFoundError) MarshalJSON() ([]byte, error) {
	if err.Msg != "" {
		return json.Marshal(err.Msg)
	}
	return json.Marshal(nil)
}

// ---------------------------

// EmptyInputError signals that an empty or punctuation-only
// token reached the syllabifier. It is a contract violation of
// the calling layer and is fatal to the affected token only.
type EmptyInputError struct {
	Msg string
}

func (err EmptyInputError) Error() string {
	return err.Msg
}

func (err EmptyInputError) MarshalJSON() ([]byte, error) {
	if err.Msg != "" {
		return json.Marshal(err.Msg)
	}
	return json.Marshal(nil)
}

// ---------------------------

// NoCandidatesError signals that a resolver was called with an
// empty candidate list. The tagger contract requires at least
// an UNKNOWN-tagged fallback candidate for any wordform.
type NoCandidatesError struct {
	Msg string
}

func (err NoCandidatesError) Error() string {
	return err.Msg
}

func (err NoCandidatesError) MarshalJSON() ([]byte, error) {
	if err.Msg != "" {
		return json.Marshal(err.Msg)
	}
	return json.Marshal(nil)
}

// ---------------------------

// EmptyKeyError signals an attempt to insert an empty syllable
// key into a tree.
type EmptyKeyError struct {
	Msg string
}

func (err EmptyKeyError) Error() string {
	return err.Msg
}

func (err EmptyKeyError) MarshalJSON() ([]byte, error) {
	if err.Msg != "" {
		return json.Marshal(err.Msg)
	}
	return json.Marshal(nil)
}

// -----------------

// TypedOrInternal makes sure an error survives serialization with
// its category intact. Errors already belonging to this package are
// returned as they are, anything else is wrapped as InternalError.
func TypedOrInternal(err error) error {
	if err == nil {
		return nil
	}
	switch err.(type) {
	case InputError, InternalError, RecoveredError, TimeoutError,
		NotFoundError, EmptyInputError, NoCandidatesError, EmptyKeyError:
		return err
	}
	return InternalError{Msg: err.Error()}
}

func PanicValueToErr(v any) (err error) {
	switch tr := v.(type) {
	case error:
		err = fmt.Errorf("recovered panic: %w", tr)
	case string:
		err = fmt.Errorf("recovered panic: %s", tr)
	default:
		err = fmt.Errorf("recovered panic from an error of type %T", v)
	}
	return
}
