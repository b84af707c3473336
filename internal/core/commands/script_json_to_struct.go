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

// Package commands provides the concrete implementations of the Chain of
// Responsibility (COR) pattern's Command interface. This file defines the
// command that turns the model's raw answer into a validated script.
//
// Logic Flow:
//  1. It receives the raw response text from the context.
//  2. It removes surrounding whitespace and a markdown code fence, should the
//     model have added one despite being told not to.
//  3. It decodes the JSON into a `model.GeneratedScript`. A decode failure, such
//     as prose instead of JSON or a string where the line array belongs, is fatal.
//  4. It validates the script (title, at least one line, known line kinds).
//  5. It places the script into the context under the configured output key.
package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jaycherian/gcp-go-ad-script-writer/internal/core/cor"
	"github.com/jaycherian/gcp-go-ad-script-writer/internal/core/model"
)

// ScriptJsonToStruct parses and validates a script JSON document.
type ScriptJsonToStruct struct {
	cor.BaseCommand
}

// NewScriptJsonToStruct is the constructor for the ScriptJsonToStruct command.
//
// Inputs:
//   - name: A string name for this command instance.
//   - outputParamName: The context key where the resulting script will be stored.
//
// Outputs:
//   - *ScriptJsonToStruct: A pointer to the newly instantiated command.
func NewScriptJsonToStruct(name string, outputParamName string) *ScriptJsonToStruct {
	out := ScriptJsonToStruct{BaseCommand: *cor.NewBaseCommand(name)}
	out.OutputParamName = outputParamName
	return &out
}

// Execute decodes and validates the script.
//
// Inputs:
//   - context: The shared `cor.Context` for this workflow execution.
func (s *ScriptJsonToStruct) Execute(context cor.Context) {
	in, ok := context.Get(s.GetInputParam()).(string)
	if !ok {
		s.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(s.GetName(), fmt.Errorf("expected response string, got %T", context.Get(s.GetInputParam())))
		return
	}

	script := &model.GeneratedScript{}
	if err := json.Unmarshal([]byte(StripCodeFence(in)), script); err != nil {
		s.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(s.GetName(), fmt.Errorf("failed to decode script json: %w", err))
		return
	}
	if err := script.Validate(); err != nil {
		s.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(s.GetName(), fmt.Errorf("invalid script: %w", err))
		return
	}

	s.GetSuccessCounter().Add(context.GetContext(), 1)
	context.Add(s.GetOutputParam(), script)
}

// StripCodeFence trims whitespace and, when in is wrapped in a ``` fence
// (optionally tagged json in any case), returns only the fenced body.
func StripCodeFence(in string) string {
	out := strings.TrimSpace(in)
	if !strings.HasPrefix(out, "```") {
		return out
	}
	out = strings.TrimPrefix(out, "```")
	if len(out) >= 4 && strings.EqualFold(out[:4], "json") {
		out = out[4:]
	}
	out = strings.TrimSuffix(out, "```")
	return strings.TrimSpace(out)
}
