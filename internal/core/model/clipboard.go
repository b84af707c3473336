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

package model

import (
	"errors"
	"fmt"
	"strings"
)

const (
	clipboardTitlePrefix = "Title: "
	clipboardTitleEnd    = "\n\n"
)

// ErrClipboardFormat is returned when text does not follow the clipboard layout.
var ErrClipboardFormat = errors.New("text is not a formatted script")

// FormatForClipboard renders a script as the plain text placed on the
// clipboard: a title line, a blank line, then every line as a bracketed kind
// tag followed by its content, with a blank line between entries.
//
//	Title: Acme Radio Spot
//
//	[MUSIC]
//	Upbeat jingle intro
//
//	[NARRATOR]
//	Call now.
func FormatForClipboard(script *GeneratedScript) string {
	var b strings.Builder
	b.WriteString(clipboardTitlePrefix)
	b.WriteString(script.Title)
	b.WriteString(clipboardTitleEnd)
	for i, line := range script.Lines {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "[%s]\n%s\n", line.Kind, line.Content)
	}
	return b.String()
}

// ParseClipboardText reverses FormatForClipboard. Content lines that are
// themselves exactly a kind tag such as "[SFX]" cannot be told apart from a
// new entry and will split it.
func ParseClipboardText(text string) (*GeneratedScript, error) {
	if !strings.HasPrefix(text, clipboardTitlePrefix) {
		return nil, fmt.Errorf("missing %q prefix: %w", clipboardTitlePrefix, ErrClipboardFormat)
	}
	rest := strings.TrimPrefix(text, clipboardTitlePrefix)
	title, body, ok := strings.Cut(rest, clipboardTitleEnd)
	if !ok {
		return nil, fmt.Errorf("missing blank line after title: %w", ErrClipboardFormat)
	}

	out := &GeneratedScript{Title: title, Lines: make([]ScriptLine, 0)}
	if body == "" {
		return out, nil
	}

	var current *ScriptLine
	var content []string
	flush := func() {
		if current == nil {
			return
		}
		// Every entry ends with one empty element: the newline after its
		// content, or the separator before the next tag.
		if n := len(content); n > 0 && content[n-1] == "" {
			content = content[:n-1]
		}
		current.Content = strings.Join(content, "\n")
		out.Lines = append(out.Lines, *current)
	}

	for _, l := range strings.Split(body, "\n") {
		if kind, isTag := parseKindTag(l); isTag {
			flush()
			current = &ScriptLine{Kind: kind}
			content = content[:0]
			continue
		}
		if current == nil {
			return nil, fmt.Errorf("content %q before first kind tag: %w", l, ErrClipboardFormat)
		}
		content = append(content, l)
	}
	flush()
	return out, nil
}

func parseKindTag(l string) (LineKind, bool) {
	if len(l) < 3 || l[0] != '[' || l[len(l)-1] != ']' {
		return "", false
	}
	kind := LineKind(l[1 : len(l)-1])
	return kind, kind.IsValid()
}
