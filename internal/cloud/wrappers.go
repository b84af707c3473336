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

// Package cloud provides components for interacting with Google Cloud services.
// This file implements a thin wrapper around the Generative AI client that binds
// a model name to its generation settings, so callers only hand over contents.
//
// Interfaces:
//   - GenerativeModel: The seam between workflow commands and the Gemini API. Tests
//     substitute a stub that returns canned responses.
//
// Structs:
//   - AgentModel: A configured model (name plus GenerateContentConfig) backed by
//     the shared `genai.Models` handle.
//
// Functions:
//   - NewAgentModel: Builds an AgentModel from its TOML configuration.
//   - WithResponseSchema: Returns a copy of the model that declares a response schema.
package cloud

import (
	"context"

	"google.golang.org/genai"
)

// GenerativeModel is anything that can answer a list of contents with a
// generation response.
type GenerativeModel interface {
	GenerateContent(ctx context.Context, contents []*genai.Content) (*genai.GenerateContentResponse, error)
	Name() string
}

// ContentGenerator is the subset of *genai.Models used by AgentModel.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// AgentModel pairs a Gemini model name with the settings every request to it uses.
type AgentModel struct {
	GenerativeContentConfig *genai.GenerateContentConfig
	ModelName               string
	ModelHandle             ContentGenerator
}

// NewAgentModel translates an agent model configuration into generation settings.
// Zero TopP, TopK and MaxTokens values are left unset so the service default applies.
//
// Inputs:
//   - values: The agent model configuration from TOML.
//   - handle: The models endpoint of a genai client (usually `client.Models`).
//
// Outputs:
//   - *AgentModel: The configured model.
func NewAgentModel(values GenAILLMModel, handle ContentGenerator) *AgentModel {
	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(values.Temperature),
		SafetySettings:   DefaultSafetySettings,
		ResponseMIMEType: values.OutputFormat,
	}
	if values.TopP > 0 {
		config.TopP = genai.Ptr(values.TopP)
	}
	if values.MaxTokens > 0 {
		config.MaxOutputTokens = values.MaxTokens
	}
	if values.TopK > 0 {
		config.TopK = genai.Ptr(values.TopK)
	}
	if values.SystemInstructions != "" {
		config.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: values.SystemInstructions}}}
	}
	return &AgentModel{
		GenerativeContentConfig: config,
		ModelName:               values.Model,
		ModelHandle:             handle,
	}
}

// WithResponseSchema returns a copy of the model whose requests declare the given
// response schema. The receiver is not modified.
func (a *AgentModel) WithResponseSchema(schema *genai.Schema) *AgentModel {
	config := *a.GenerativeContentConfig
	config.ResponseSchema = schema
	return &AgentModel{
		GenerativeContentConfig: &config,
		ModelName:               a.ModelName,
		ModelHandle:             a.ModelHandle,
	}
}

// Name returns the Gemini model name.
func (a *AgentModel) Name() string {
	return a.ModelName
}

// GenerateContent sends one request with the model's settings. There is no
// retry; the first error is returned.
func (a *AgentModel) GenerateContent(ctx context.Context, contents []*genai.Content) (*genai.GenerateContentResponse, error) {
	return a.ModelHandle.GenerateContent(ctx, a.ModelName, contents, a.GenerativeContentConfig)
}
