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

// Package test provides utility functions and mock data to support the application's
// test suite. It helps in setting up a consistent test environment, loading
// test-specific configurations, and providing canned model responses together
// with a stub model so workflows can run without reaching the Gemini API.
package test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"

	"github.com/jaycherian/gcp-go-ad-script-writer/internal/cloud"
	"github.com/jaycherian/gcp-go-ad-script-writer/internal/core/model"
	"google.golang.org/genai"
)

// StateManager acts as a simple in-memory cache for the application configuration
// during test runs.
type StateManager struct {
	config *cloud.Config
}

var state = &StateManager{}

// HandleErr fails the test immediately when err is not nil.
//
// Inputs:
//   - err: The error to check.
//   - t: The *testing.T object from the current test.
func HandleErr(err error, t *testing.T) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// SetupOS points the configuration loader (`cloud.LoadConfig`) at the test
// configuration directory and runtime.
//
// Returns:
//   - An error if setting any environment variable fails.
func SetupOS() (err error) {
	err = os.Setenv(cloud.EnvConfigFilePrefix, "configs")
	if err != nil {
		return err
	}
	return os.Setenv(cloud.EnvConfigRuntime, "test")
}

// GetConfig is a singleton accessor for the test configuration. The configuration
// is loaded once and cached for subsequent calls.
//
// Returns:
//   - A pointer to the loaded and cached cloud.Config struct.
func GetConfig() *cloud.Config {
	if state.config == nil {
		if err := SetupOS(); err != nil {
			log.Fatalf("failed to setup environment for test: %v\n", err)
		}
		config := cloud.NewConfig()
		if err := cloud.LoadConfig(config); err != nil {
			log.Fatalf("failed to load test configuration: %v\n", err)
		}
		state.config = config
	}
	return state.config
}

// AcmeBrief returns the brief used by the Acme Coffee scenario.
func AcmeBrief() *model.Brief {
	return &model.Brief{
		CompanyName:        "Acme Coffee",
		ProductDescription: "Cold brew",
		SellingPoints:      "smooth, bold",
		TargetAudience:     "commuters, upbeat",
		CallToAction:       "Visit acme.com",
		Tagline:            "Wake up happy",
		Duration:           model.Duration15,
	}
}

// AcmeScriptJSON is a well formed model answer for AcmeBrief.
const AcmeScriptJSON = `{"title":"Acme Morning","script":[{"type":"MUSIC","content":"Upbeat jingle"},{"type":"NARRATOR","content":"Meet Acme cold brew."},{"type":"SFX","content":"Ice clinking"}]}`

// FencedScriptJSON is AcmeScriptJSON wrapped in a markdown code fence.
const FencedScriptJSON = "```json\n" + AcmeScriptJSON + "\n```"

// NonJSONResponse is a refusal in plain prose.
const NonJSONResponse = "Sorry, I can't help"

// MissingTitleJSON has a script but no title.
const MissingTitleJSON = `{"script":[{"type":"NARRATOR","content":"Hi"}]}`

// NonArrayScriptJSON carries a string where the list of lines belongs.
const NonArrayScriptJSON = `{"title":"T","script":"NARRATOR: hi"}`

// UnknownKindJSON uses a line kind outside NARRATOR, MUSIC and SFX.
const UnknownKindJSON = `{"title":"T","script":[{"type":"VOICEOVER","content":"Hi"}]}`

// TextResponse wraps text in a single candidate response with usage metadata.
func TextResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: genai.NewContentFromText(text, genai.RoleModel)},
		},
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:     12,
			CandidatesTokenCount: 34,
		},
	}
}

// StubModel is a cloud.GenerativeModel that answers with a canned text or error.
// When Gate is set, every call waits for a value (or close) on it before answering.
type StubModel struct {
	Text string
	Err  error
	Gate chan struct{}

	mu       sync.Mutex
	calls    int
	contents [][]*genai.Content
}

// NewStubModel returns a stub that answers every request with text.
func NewStubModel(text string) *StubModel {
	return &StubModel{Text: text}
}

// GenerateContent records the request and returns the canned answer.
func (s *StubModel) GenerateContent(ctx context.Context, contents []*genai.Content) (*genai.GenerateContentResponse, error) {
	s.mu.Lock()
	s.calls++
	s.contents = append(s.contents, contents)
	s.mu.Unlock()

	if s.Gate != nil {
		select {
		case <-s.Gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return TextResponse(s.Text), nil
}

// Name identifies the stub in logs and spans.
func (s *StubModel) Name() string {
	return "stub-model"
}

// Calls returns how many requests the stub has received.
func (s *StubModel) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// LastPrompt returns the text of the most recent request, or "" if there was none.
func (s *StubModel) LastPrompt() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.contents) == 0 {
		return ""
	}
	var text string
	for _, c := range s.contents[len(s.contents)-1] {
		for _, p := range c.Parts {
			text += p.Text
		}
	}
	return text
}
