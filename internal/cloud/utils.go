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
// This file contains general-purpose utility functions that support the cloud package.
// These helpers cover hierarchical configuration loading, file system checks,
// and the single-shot text call to the Generative AI API.
//
// Functions:
//   - fileExists: A simple helper to check if a file exists.
//   - LoadConfig: Implements a hierarchical configuration loader. It decodes the
//     embedded defaults, then a base configuration file, then an environment-specific
//     file (e.g., .env.local.toml, .env.test.toml), and finally reads the API
//     credential from the environment.
//   - GenerateTextResponse: A wrapper for making one call to the GenAI model and
//     collecting the text of the response while recording token usage.
package cloud

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/metric"
	"google.golang.org/genai"
)

// Cloud Constants define key strings used for configuration loading.
const (
	ConfigFileBaseName  = ".env"              // The base name for configuration files (e.g., ".env.toml").
	ConfigFileExtension = ".toml"             // The file extension for configuration files.
	ConfigSeparator     = "."                 // The separator used in config file names (e.g., ".env.local.toml").
	EnvConfigFilePrefix = "GCP_CONFIG_PREFIX" // The environment variable for specifying the config directory.
	EnvConfigRuntime    = "GCP_RUNTIME"       // The environment variable for specifying the runtime context (e.g., "local", "test", "prod").
	EnvAPIKey           = "API_KEY"           // The environment variable holding the Gemini API key.
)

// ErrEmptyResponse is returned when the model answers without any text.
var ErrEmptyResponse = errors.New("model returned no text")

//go:embed defaults.toml
var defaultConfig string

// fileExists checks if a file or directory exists at the given path.
func fileExists(in string) bool {
	_, err := os.Stat(in)
	return !errors.Is(err, os.ErrNotExist)
}

// LoadConfig provides a hierarchical configuration loading mechanism. It first decodes
// the built-in defaults, then merges or overwrites those values with a base configuration
// file and an environment-specific configuration file. The paths and environment are
// determined by environment variables. Map entries such as an agent model are replaced
// as a whole by a later file, so an override must repeat every field of the entry.
//
// The API key is taken from the API_KEY environment variable. A `.env` file in the
// working directory is loaded first when present; it never overrides variables that
// are already set.
//
// Inputs:
//   - config: A pointer to the configuration struct to populate.
//
// Outputs:
//   - error: An error if any configuration file is present but cannot be decoded.
func LoadConfig(config *Config) error {
	if _, err := toml.Decode(defaultConfig, config); err != nil {
		return fmt.Errorf("failed to decode built-in configuration: %w", err)
	}

	// Read the directory path for config files from an environment variable.
	configurationFilePrefix := os.Getenv(EnvConfigFilePrefix)
	if len(configurationFilePrefix) > 0 && !strings.HasSuffix(configurationFilePrefix, string(os.PathSeparator)) {
		configurationFilePrefix = configurationFilePrefix + string(os.PathSeparator)
	}

	// Default to "test" if the runtime is not set.
	runtimeEnvironment := os.Getenv(EnvConfigRuntime)
	if runtimeEnvironment == "" {
		runtimeEnvironment = "test"
	}

	baseConfigFileName := configurationFilePrefix + ConfigFileBaseName + ConfigFileExtension
	envConfigFileName := configurationFilePrefix + ConfigFileBaseName + ConfigSeparator + runtimeEnvironment + ConfigFileExtension

	for _, fileName := range []string{baseConfigFileName, envConfigFileName} {
		if !fileExists(fileName) {
			continue
		}
		if _, err := toml.DecodeFile(fileName, config); err != nil {
			return fmt.Errorf("failed to decode configuration file %s: %w", fileName, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}
	config.GenAI.APIKey = os.Getenv(EnvAPIKey)
	return nil
}

// GenerateTextResponse sends one request to a generative model and returns the
// concatenated text of every candidate part. Nothing is retried: a failed call is
// returned to the caller as is.
//
// Inputs:
//   - ctx: The context for the request, which controls cancellation and tracing.
//   - inputTokenCounter: An OpenTelemetry counter for prompt tokens used.
//   - outputTokenCounter: An OpenTelemetry counter for response tokens generated.
//   - model: The generative model to call.
//   - contents: The prompt contents.
//
// Outputs:
//   - string: The text of the model's response with surrounding whitespace removed.
//   - error: The transport or API error, or ErrEmptyResponse when no text came back.
func GenerateTextResponse(
	ctx context.Context,
	inputTokenCounter metric.Int64Counter,
	outputTokenCounter metric.Int64Counter,
	model GenerativeModel,
	contents []*genai.Content) (value string, err error) {
	resp, err := model.GenerateContent(ctx, contents)
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", ErrEmptyResponse
	}

	if resp.UsageMetadata != nil {
		inputTokenCounter.Add(ctx, int64(resp.UsageMetadata.PromptTokenCount))
		outputTokenCounter.Add(ctx, int64(resp.UsageMetadata.CandidatesTokenCount))
	}

	var b strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil {
			continue
		}
		if candidate.FinishReason != "" && candidate.FinishReason != genai.FinishReasonStop {
			slog.WarnContext(ctx, "generation did not finish normally", "model", model.Name(), "finish_reason", string(candidate.FinishReason))
		}
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part != nil {
				b.WriteString(part.Text)
			}
		}
	}
	value = strings.TrimSpace(b.String())
	if value == "" {
		return "", ErrEmptyResponse
	}
	return value, nil
}

// NewTextPart is a simple factory function for creating user text content.
//
// Inputs:
//   - in: The string content for the text part.
//
// Outputs:
//   - []*genai.Content: A single user content holding the text.
func NewTextPart(in string) []*genai.Content {
	return genai.Text(in)
}
