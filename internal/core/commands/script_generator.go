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
// command that sends the rendered prompt to the generative model.
//
// Logic Flow:
//  1. It receives the prompt string from the context.
//  2. It sends it as a single user turn to the configured model. The model is
//     expected to have been configured with a JSON response MIME type and the
//     script response schema.
//  3. Token usage is recorded on OpenTelemetry counters.
//  4. The raw response text is placed into the context for `ScriptJsonToStruct`.
//
// There is exactly one attempt; a failure is recorded and ends the chain.
package commands

import (
	"fmt"

	"github.com/jaycherian/gcp-go-ad-script-writer/internal/cloud"
	"github.com/jaycherian/gcp-go-ad-script-writer/internal/core/cor"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// ScriptGenerator asks the generative model for a script.
type ScriptGenerator struct {
	cor.BaseCommand
	generativeAIModel        cloud.GenerativeModel
	geminiInputTokenCounter  metric.Int64Counter
	geminiOutputTokenCounter metric.Int64Counter
}

// NewScriptGenerator is the constructor for the ScriptGenerator command.
//
// Inputs:
//   - name: A string name for this command instance.
//   - generativeAIModel: The model to call.
//
// Outputs:
//   - *ScriptGenerator: A pointer to the newly instantiated command, including initialized token counters.
func NewScriptGenerator(name string, generativeAIModel cloud.GenerativeModel) *ScriptGenerator {
	out := &ScriptGenerator{
		BaseCommand:       *cor.NewBaseCommand(name),
		generativeAIModel: generativeAIModel,
	}
	out.geminiInputTokenCounter, _ = out.GetMeter().Int64Counter(fmt.Sprintf("%s.gemini.token.input", out.GetName()))
	out.geminiOutputTokenCounter, _ = out.GetMeter().Int64Counter(fmt.Sprintf("%s.gemini.token.output", out.GetName()))
	return out
}

// Execute calls the model once.
//
// Inputs:
//   - context: The shared `cor.Context` for this workflow execution.
func (g *ScriptGenerator) Execute(context cor.Context) {
	prompt, ok := context.Get(g.GetInputParam()).(string)
	if !ok {
		g.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(g.GetName(), fmt.Errorf("expected prompt string, got %T", context.Get(g.GetInputParam())))
		return
	}

	trace.SpanFromContext(context.GetContext()).SetAttributes(attribute.String("gemini.model", g.generativeAIModel.Name()))

	out, err := cloud.GenerateTextResponse(
		context.GetContext(),
		g.geminiInputTokenCounter,
		g.geminiOutputTokenCounter,
		g.generativeAIModel,
		cloud.NewTextPart(prompt))
	if err != nil {
		g.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(g.GetName(), fmt.Errorf("gemini request failed: %w", err))
		return
	}

	g.GetSuccessCounter().Add(context.GetContext(), 1)
	context.Add(g.GetOutputParam(), out)
}
