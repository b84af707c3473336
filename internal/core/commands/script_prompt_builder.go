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
// command that turns an advertising brief into the instruction sent to the model.
//
// Logic Flow:
//  1. It receives a `*model.Brief` from the context.
//  2. It executes the configured Go template with the brief as data. Every field,
//     the duration included, is substituted verbatim; nothing is validated here.
//  3. It places the rendered prompt string into the context for `ScriptGenerator`.
package commands

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/jaycherian/gcp-go-ad-script-writer/internal/core/cor"
	"github.com/jaycherian/gcp-go-ad-script-writer/internal/core/model"
)

// ScriptPromptBuilder renders the script prompt template for a brief.
type ScriptPromptBuilder struct {
	cor.BaseCommand
	template *template.Template
}

// NewScriptPromptBuilder is the constructor for the ScriptPromptBuilder command.
//
// Inputs:
//   - name: A string name for this command instance.
//   - template: A parsed Go template whose data is a `*model.Brief`.
//
// Outputs:
//   - *ScriptPromptBuilder: A pointer to the newly instantiated command.
func NewScriptPromptBuilder(name string, template *template.Template) *ScriptPromptBuilder {
	return &ScriptPromptBuilder{
		BaseCommand: *cor.NewBaseCommand(name),
		template:    template,
	}
}

// Execute renders the prompt.
//
// Inputs:
//   - context: The shared `cor.Context` for this workflow execution.
func (p *ScriptPromptBuilder) Execute(context cor.Context) {
	brief, ok := context.Get(p.GetInputParam()).(*model.Brief)
	if !ok {
		p.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(p.GetName(), fmt.Errorf("expected *model.Brief, got %T", context.Get(p.GetInputParam())))
		return
	}

	var buffer bytes.Buffer
	if err := p.template.Execute(&buffer, brief); err != nil {
		p.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(p.GetName(), fmt.Errorf("failed to execute prompt template: %w", err))
		return
	}

	p.GetSuccessCounter().Add(context.GetContext(), 1)
	context.Add(p.GetOutputParam(), buffer.String())
}
