// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package model defines the core data structures for the application.
// This file, `transient.go`, contains the brief captured from the user and the
// script returned by the generative model. Both are "transient": a Brief is
// built fresh for each submission and a GeneratedScript only lives in the
// session's view state until the next submission replaces it. Nothing here is
// ever persisted.
package model

import (
	"errors"
	"fmt"
)

// Validation errors reported by GeneratedScript.Validate.
var (
	ErrMissingTitle     = errors.New("script title is missing")
	ErrEmptyScript      = errors.New("script contains no lines")
	ErrUnknownLineKind  = errors.New("script line has an unknown type")
	ErrMissingScriptKey = errors.New("script field is missing")
)

// Duration is the closed set of ad lengths (in seconds) the capture form offers.
type Duration string

// Allowed ad durations.
const (
	Duration15 Duration = "15"
	Duration30 Duration = "30"
	Duration45 Duration = "45"
	Duration60 Duration = "60"
)

// Durations returns the allowed durations in the order the form lists them.
func Durations() []Duration {
	return []Duration{Duration15, Duration30, Duration45, Duration60}
}

// IsValid reports whether d is one of the enumerated durations.
func (d Duration) IsValid() bool {
	switch d {
	case Duration15, Duration30, Duration45, Duration60:
		return true
	}
	return false
}

// Brief is the advertising brief entered by the user. Every field is required
// by the capture layer; the binding tags enforce that on the HTTP surface.
// Duration is kept as a Duration rather than an int so that an out-of-range
// value still travels to the prompt untouched.
type Brief struct {
	CompanyName        string   `json:"companyName" binding:"required"`        // Company or product name.
	ProductDescription string   `json:"productDescription" binding:"required"` // What is being sold.
	SellingPoints      string   `json:"sellingPoints" binding:"required"`      // Comma-separated key selling points.
	TargetAudience     string   `json:"targetAudience" binding:"required"`     // Audience and desired tone.
	CallToAction       string   `json:"callToAction" binding:"required"`       // What the listener should do.
	Tagline            string   `json:"tagline" binding:"required"`            // Closing tagline.
	Duration           Duration `json:"duration" binding:"required,oneof=15 30 45 60"`
}

// LineKind classifies a single line of an ad script.
type LineKind string

// The three kinds of script line the model may produce.
const (
	LineKindNarrator LineKind = "NARRATOR"
	LineKindMusic    LineKind = "MUSIC"
	LineKindSFX      LineKind = "SFX"
)

// LineKinds returns every valid line kind.
func LineKinds() []LineKind {
	return []LineKind{LineKindNarrator, LineKindMusic, LineKindSFX}
}

// IsValid reports whether k is NARRATOR, MUSIC or SFX. The match is exact.
func (k LineKind) IsValid() bool {
	switch k {
	case LineKindNarrator, LineKindMusic, LineKindSFX:
		return true
	}
	return false
}

// ScriptLine is one unit of the script. The JSON field for the kind is "type"
// to match the schema declared to the model.
type ScriptLine struct {
	Kind    LineKind `json:"type"`    // NARRATOR, MUSIC or SFX.
	Content string   `json:"content"` // Spoken text, music cue or sound effect description.
}

// GeneratedScript is the titled, ordered script returned by the model.
// Lines are kept in exactly the order the model produced them.
type GeneratedScript struct {
	Title string       `json:"title"`
	Lines []ScriptLine `json:"script"`
}

// Validate checks the invariants a script must hold before it is shown to the
// user: a non-empty title, at least one line, and a known kind on every line.
//
// Outputs:
//   - error: nil when the script is usable, otherwise one of the Err* values
//     above, wrapped with the offending line position where relevant.
func (s *GeneratedScript) Validate() error {
	if s == nil {
		return ErrMissingScriptKey
	}
	if s.Title == "" {
		return ErrMissingTitle
	}
	if s.Lines == nil {
		return ErrMissingScriptKey
	}
	if len(s.Lines) == 0 {
		return ErrEmptyScript
	}
	for i, line := range s.Lines {
		if !line.Kind.IsValid() {
			return fmt.Errorf("line %d (%q): %w", i, line.Kind, ErrUnknownLineKind)
		}
	}
	return nil
}
