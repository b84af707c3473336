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
// This file is responsible for initializing and holding the client objects needed
// to communicate with the Gemini API. It acts as a dependency injection container,
// creating a single, shared `ServiceClients` struct that can be passed throughout
// the application.
//
// Logic Flow:
//  1. The `NewCloudServiceClients` function is called at application startup.
//  2. It refuses to continue when no API key was configured.
//  3. It creates the GenAI client against the Gemini API backend.
//  4. It wraps every configured agent model in an `AgentModel`, keyed by its
//     logical name from the config.
package cloud

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// ErrMissingAPIKey is returned when the API_KEY environment variable is not set.
var ErrMissingAPIKey = errors.New("API_KEY environment variable not set")

// ServiceClients is a central container for the clients that talk to external services.
type ServiceClients struct {
	GenAIClient *genai.Client          // Client for the Gemini API.
	AgentModels map[string]*AgentModel // Configured agent (LLM) models, keyed by a logical name.
}

// NewCloudServiceClients initializes the GenAI client and the configured agent models.
//
// Inputs:
//   - ctx: The root context.Context for the application.
//   - config: A pointer to the loaded application configuration (`Config`).
//
// Outputs:
//   - *ServiceClients: A pointer to the initialized ServiceClients struct.
//   - error: ErrMissingAPIKey when no key is configured, or the client construction error.
func NewCloudServiceClients(ctx context.Context, config *Config) (*ServiceClients, error) {
	if config.GenAI.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.GenAI.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating genai client: %w", err)
	}

	agentModels := make(map[string]*AgentModel, len(config.AgentModels))
	for amKey, values := range config.AgentModels {
		agentModels[amKey] = NewAgentModel(values, gc.Models)
	}

	return &ServiceClients{
		GenAIClient: gc,
		AgentModels: agentModels,
	}, nil
}
