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

// Package workflow defines the high-level business logic orchestrations,
// combining various commands into coherent pipelines. This file implements the
// ad script writing workflow.
package workflow

import (
	"fmt"
	"text/template"

	"github.com/jaycherian/gcp-go-ad-script-writer/internal/cloud"
	"github.com/jaycherian/gcp-go-ad-script-writer/internal/core/commands"
	"github.com/jaycherian/gcp-go-ad-script-writer/internal/core/cor"
)

// ScriptOutputParamName is the context key under which the workflow leaves the
// validated *model.GeneratedScript.
const ScriptOutputParamName = "__script_output__"

// ScriptWriterWorkflow turns a brief into a validated script. It expects a
// *model.Brief under cor.CtxIn and, on success, leaves the script under
// ScriptOutputParamName. Failures are recorded on the context by the command
// that hit them.
type ScriptWriterWorkflow struct {
	cor.BaseCommand
	genaiModel     cloud.GenerativeModel
	scriptTemplate *template.Template
	chain          cor.Chain
}

// Execute runs the underlying chain.
//
// Inputs:
//   - context: The chain of responsibility context for this execution.
func (s *ScriptWriterWorkflow) Execute(context cor.Context) {
	s.chain.Execute(context)
}

// initializeChain builds the sequence of commands that make up this workflow.
func (s *ScriptWriterWorkflow) initializeChain() {
	out := cor.NewBaseChain(s.GetName())

	// Step 1: Render the prompt from the brief.
	out.AddCommand(commands.NewScriptPromptBuilder("build-script-prompt", s.scriptTemplate))

	// Step 2: One call to the model; the raw answer is piped on.
	out.AddCommand(commands.NewScriptGenerator("generate-script", s.genaiModel))

	// Step 3: Decode and validate the answer.
	out.AddCommand(commands.NewScriptJsonToStruct("convert-script", ScriptOutputParamName))

	s.chain = out
}

// NewScriptWriterWorkflow is the constructor for the ScriptWriterWorkflow. It looks
// up the named agent model, declares the script response schema on it, and
// compiles the prompt template.
//
// Inputs:
//   - config: The application's overall configuration.
//   - serviceClients: A struct containing the initialized GenAI client and agent models.
//   - agentModelName: The name of the agent model config to use (e.g., "script-writer").
//
// Returns:
//   - A pointer to a newly created and fully initialized ScriptWriterWorkflow.
//   - An error if the agent model is not configured or the template does not parse.
func NewScriptWriterWorkflow(
	config *cloud.Config,
	serviceClients *cloud.ServiceClients,
	agentModelName string) (*ScriptWriterWorkflow, error) {

	agent, ok := serviceClients.AgentModels[agentModelName]
	if !ok {
		return nil, fmt.Errorf("agent model %q is not configured", agentModelName)
	}
	return NewScriptWriterWorkflowWithModel(config, agent.WithResponseSchema(commands.ScriptResponseSchema()))
}

// NewScriptWriterWorkflowWithModel builds the workflow around an already configured
// model. Tests use it with a stub.
//
// Inputs:
//   - config: The application's overall configuration; only the prompt template is read.
//   - genaiModel: The model the generator command calls.
//
// Returns:
//   - A pointer to the workflow, or an error if the template does not parse.
func NewScriptWriterWorkflowWithModel(config *cloud.Config, genaiModel cloud.GenerativeModel) (*ScriptWriterWorkflow, error) {
	scriptTemplate, err := template.New("script-template").Option("missingkey=error").Parse(config.PromptTemplates.ScriptPrompt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse script prompt template: %w", err)
	}

	pipeline := &ScriptWriterWorkflow{
		BaseCommand:    *cor.NewBaseCommand("script-writer-pipeline"),
		genaiModel:     genaiModel,
		scriptTemplate: scriptTemplate,
	}
	pipeline.initializeChain()
	return pipeline, nil
}
