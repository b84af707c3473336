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

// Package model_test contains unit tests for the data models defined in the
// model package.
package model_test

import (
	"encoding/json"
	"testing"

	"github.com/jaycherian/gcp-go-ad-script-writer/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDurations verifies the enumerated ad lengths and their validity checks.
// Values outside the enumeration are not valid but remain usable strings.
func TestDurations(t *testing.T) {
	assert.Equal(t, []model.Duration{"15", "30", "45", "60"}, model.Durations())
	for _, d := range model.Durations() {
		assert.True(t, d.IsValid(), "duration %s", d)
	}
	assert.False(t, model.Duration("90").IsValid())
	assert.False(t, model.Duration("").IsValid())
	assert.Equal(t, "90", string(model.Duration("90")))
}

func TestLineKindIsValid(t *testing.T) {
	for _, k := range model.LineKinds() {
		assert.True(t, k.IsValid())
	}
	assert.False(t, model.LineKind("narrator").IsValid())
	assert.False(t, model.LineKind("VOICE").IsValid())
}

// TestGeneratedScriptUnmarshal checks that the JSON payload declared to the
// model decodes into the script struct with its order preserved.
func TestGeneratedScriptUnmarshal(t *testing.T) {
	raw := `{"title":"Acme Radio Spot","script":[{"type":"MUSIC","content":"Upbeat jingle intro"},{"type":"NARRATOR","content":"Need it fast and cheap? Acme delivers."},{"type":"SFX","content":"Door bell"}]}`

	var script model.GeneratedScript
	require.NoError(t, json.Unmarshal([]byte(raw), &script))

	assert.Equal(t, "Acme Radio Spot", script.Title)
	require.Len(t, script.Lines, 3)
	assert.Equal(t, model.ScriptLine{Kind: model.LineKindMusic, Content: "Upbeat jingle intro"}, script.Lines[0])
	assert.Equal(t, model.LineKindNarrator, script.Lines[1].Kind)
	assert.Equal(t, model.LineKindSFX, script.Lines[2].Kind)
	assert.NoError(t, script.Validate())
}

func TestGeneratedScriptValidate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"missing title", `{"script":[{"type":"SFX","content":"boom"}]}`, model.ErrMissingTitle},
		{"empty title", `{"title":"","script":[{"type":"SFX","content":"boom"}]}`, model.ErrMissingTitle},
		{"missing script", `{"title":"T"}`, model.ErrMissingScriptKey},
		{"null script", `{"title":"T","script":null}`, model.ErrMissingScriptKey},
		{"empty script", `{"title":"T","script":[]}`, model.ErrEmptyScript},
		{"unknown kind", `{"title":"T","script":[{"type":"VOICE","content":"hi"}]}`, model.ErrUnknownLineKind},
		{"lowercase kind", `{"title":"T","script":[{"type":"sfx","content":"hi"}]}`, model.ErrUnknownLineKind},
		{"valid", `{"title":"T","script":[{"type":"NARRATOR","content":""}]}`, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var script model.GeneratedScript
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &script))
			err := script.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestScriptFieldNotASequence makes sure a single object in place of the line
// array is rejected at decode time rather than coerced.
func TestScriptFieldNotASequence(t *testing.T) {
	var script model.GeneratedScript
	err := json.Unmarshal([]byte(`{"title":"T","script":{"type":"SFX","content":"boom"}}`), &script)
	assert.Error(t, err)
}

// TestSampleBrief verifies that loading the sample twice yields identical
// briefs and that the sample passes the form's own rules.
func TestSampleBrief(t *testing.T) {
	first := model.SampleBrief()
	second := model.SampleBrief()
	assert.Equal(t, first, second)

	assert.Equal(t, "FUZETECH MOBILE", first.CompanyName)
	assert.Equal(t, model.Duration45, first.Duration)
	assert.True(t, first.Duration.IsValid())

	first.CompanyName = "changed"
	assert.Equal(t, "FUZETECH MOBILE", model.SampleBrief().CompanyName)
}

func TestExampleScriptIsValid(t *testing.T) {
	assert.NoError(t, model.GetExampleScript().Validate())
}
