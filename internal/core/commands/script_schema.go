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

package commands

import (
	"github.com/jaycherian/gcp-go-ad-script-writer/internal/core/model"
	"google.golang.org/genai"
)

// ScriptResponseSchema declares the JSON shape the model must answer with:
// an object with a string title and an array of lines, each carrying a type
// from the LineKind enumeration and a string content.
func ScriptResponseSchema() *genai.Schema {
	kinds := make([]string, 0, len(model.LineKinds()))
	for _, k := range model.LineKinds() {
		kinds = append(kinds, string(k))
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title": {
				Type:        genai.TypeString,
				Description: "A catchy title for the ad script.",
			},
			"script": {
				Type:        genai.TypeArray,
				Description: "The lines of the script in the order they are performed.",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"type": {
							Type:        genai.TypeString,
							Enum:        kinds,
							Description: "NARRATOR for spoken words, MUSIC for a music cue, SFX for a sound effect.",
						},
						"content": {
							Type:        genai.TypeString,
							Description: "The spoken text, or a description of the music or sound effect.",
						},
					},
					Required:         []string{"type", "content"},
					PropertyOrdering: []string{"type", "content"},
				},
			},
		},
		Required:         []string{"title", "script"},
		PropertyOrdering: []string{"title", "script"},
	}
}
