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

// Package cloud defines the data structures for application configuration,
// loaded from TOML files. It provides a structured way to manage settings
// for the HTTP server, telemetry, the generative AI models and the prompt
// templates sent to them.
//
// Structs:
//   - PromptTemplates: Holds the text templates for prompts sent to GenAI models.
//   - GenAILLMModel: Configuration for a Gemini large language model (LLM).
//   - Config: The top-level struct that aggregates all other configuration structs.
//
// Functions:
//   - NewConfig: A constructor that initializes a new Config object with empty maps.
package cloud

import "google.golang.org/genai"

// DefaultSafetySettings defines the default content safety thresholds for GenAI models.
// Ad copy for ordinary products rarely trips the filters, so only content rated
// high-risk is blocked.
var DefaultSafetySettings = []*genai.SafetySetting{
	{
		Category:  genai.HarmCategoryDangerousContent,
		Threshold: genai.HarmBlockThresholdBlockOnlyHigh,
	},
	{
		Category:  genai.HarmCategoryHarassment,
		Threshold: genai.HarmBlockThresholdBlockOnlyHigh,
	},
	{
		Category:  genai.HarmCategoryHateSpeech,
		Threshold: genai.HarmBlockThresholdBlockOnlyHigh,
	},
	{
		Category:  genai.HarmCategorySexuallyExplicit,
		Threshold: genai.HarmBlockThresholdBlockOnlyHigh,
	},
}

// PromptTemplates holds the templates for different types of prompts.
type PromptTemplates struct {
	ScriptPrompt string `toml:"script"` // The template for generating an ad script from a brief.
}

// GenAILLMModel represents the configuration for a Gemini large language model (LLM).
type GenAILLMModel struct {
	Model              string  `toml:"model"`               // The name of the Gemini model.
	SystemInstructions string  `toml:"system_instructions"` // The system instructions for the LLM.
	Temperature        float32 `toml:"temperature"`         // The temperature parameter for the LLM.
	TopP               float32 `toml:"top_p"`               // The top_p parameter for the LLM; zero leaves the model default.
	TopK               float32 `toml:"top_k"`               // The top_k parameter for the LLM; zero leaves the model default.
	MaxTokens          int32   `toml:"max_tokens"`          // The maximum number of tokens for the LLM output.
	OutputFormat       string  `toml:"output_format"`       // The desired response MIME type for the LLM.
}

// Config represents the overall configuration for the application, loaded from TOML files.
// It acts as the root container for all other configuration structs.
type Config struct {
	// Application holds general application settings.
	Application struct {
		Name            string `toml:"name"`              // The name of the application, used as the OpenTelemetry service name.
		GoogleProjectId string `toml:"google_project_id"` // The Google Cloud project that receives traces and metrics.
		ListenAddress   string `toml:"listen_address"`    // The address the HTTP server binds to (e.g., ":8080").
		LogFile         string `toml:"log_file"`          // Optional file that receives a copy of the structured logs.
	} `toml:"application"`
	// Telemetry controls export of traces and metrics.
	Telemetry struct {
		Enabled bool `toml:"enabled"` // Export to Cloud Trace and Cloud Monitoring when true.
	} `toml:"telemetry"`
	// ScriptWriter selects the agent model used to write ad scripts.
	ScriptWriter struct {
		AgentModel string `toml:"agent_model"` // Key into AgentModels.
	} `toml:"script_writer"`
	// GenAI holds the credential for the Gemini API. It is never read from TOML,
	// only from the process environment (see LoadConfig).
	GenAI struct {
		APIKey string `toml:"-"`
	} `toml:"-"`
	PromptTemplates PromptTemplates          `toml:"prompt_templates"` // Prompt templates configuration.
	AgentModels     map[string]GenAILLMModel `toml:"agent_models"`     // Gemini LLM models, keyed by a logical name (e.g., "script-writer").
}

// NewConfig is a constructor function that creates a new, initialized Config instance.
// The maps are initialized so the TOML decoder can populate them.
//
// Outputs:
//   - *Config: A pointer to a new Config struct with its map fields initialized.
func NewConfig() *Config {
	return &Config{
		AgentModels: make(map[string]GenAILLMModel),
	}
}
