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

package model_test

import (
	"testing"

	"github.com/jaycherian/gcp-go-ad-script-writer/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func acmeScript() *model.GeneratedScript {
	return &model.GeneratedScript{
		Title: "Acme Radio Spot",
		Lines: []model.ScriptLine{
			{Kind: model.LineKindMusic, Content: "Upbeat jingle intro"},
			{Kind: model.LineKindNarrator, Content: "Need it fast and cheap? Acme delivers."},
			{Kind: model.LineKindNarrator, Content: "Call now, Acme: just works."},
		},
	}
}

func TestFormatForClipboard(t *testing.T) {
	want := "Title: Acme Radio Spot\n\n" +
		"[MUSIC]\nUpbeat jingle intro\n" +
		"\n" +
		"[NARRATOR]\nNeed it fast and cheap? Acme delivers.\n" +
		"\n" +
		"[NARRATOR]\nCall now, Acme: just works.\n"

	assert.Equal(t, want, model.FormatForClipboard(acmeScript()))
}

// TestClipboardRoundTrip formats scripts for the clipboard and parses them
// back, expecting the same title and ordered (kind, content) pairs.
func TestClipboardRoundTrip(t *testing.T) {
	scripts := map[string]*model.GeneratedScript{
		"acme":    acmeScript(),
		"example": model.GetExampleScript(),
		"multiline and empty content": {
			Title: "Edge cases",
			Lines: []model.ScriptLine{
				{Kind: model.LineKindNarrator, Content: "first line\nsecond line"},
				{Kind: model.LineKindSFX, Content: ""},
				{Kind: model.LineKindMusic, Content: "trailing newline\n"},
				{Kind: model.LineKindNarrator, Content: "last"},
			},
		},
		"single line": {
			Title: "One",
			Lines: []model.ScriptLine{{Kind: model.LineKindSFX, Content: "Whoosh"}},
		},
	}

	for name, script := range scripts {
		t.Run(name, func(t *testing.T) {
			text := model.FormatForClipboard(script)
			parsed, err := model.ParseClipboardText(text)
			require.NoError(t, err)
			assert.Equal(t, script.Title, parsed.Title)
			assert.Equal(t, script.Lines, parsed.Lines)
		})
	}
}

func TestParseClipboardTextRejectsOtherText(t *testing.T) {
	for _, text := range []string{
		"",
		"Sorry, I can't help",
		"Title: no blank line",
		"Title: T\n\nstray content\n[SFX]\nboom\n",
	} {
		_, err := model.ParseClipboardText(text)
		assert.ErrorIs(t, err, model.ErrClipboardFormat, "text %q", text)
	}
}

func TestParseClipboardTextSplitsOnTagLines(t *testing.T) {
	script := &model.GeneratedScript{
		Title: "Tags",
		Lines: []model.ScriptLine{{Kind: model.LineKindSFX, Content: "a\n[MUSIC]\nb"}},
	}

	parsed, err := model.ParseClipboardText(model.FormatForClipboard(script))
	require.NoError(t, err)
	assert.Equal(t, []model.ScriptLine{
		{Kind: model.LineKindSFX, Content: "a"},
		{Kind: model.LineKindMusic, Content: "b"},
	}, parsed.Lines)
}
