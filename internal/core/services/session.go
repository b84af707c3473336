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

// Package services contains the business logic exposed to the HTTP layer.
// This file, `session.go`, holds the presentation state of the script writer:
// whether a generation is idle, running, failed or finished, and the script
// that the last successful generation produced.
package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/jaycherian/gcp-go-ad-script-writer/internal/core/model"
)

// Errors returned by ScriptSession.
var (
	ErrGenerationInProgress = errors.New("a script is already being generated")
	ErrNoScript             = errors.New("no generated script to export")
)

// Status is the phase of the session's view state.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusError   Status = "error"
	StatusResult  Status = "result"
)

// ViewState is what the user currently sees. Message is set only in the error
// state and Script only in the result state.
type ViewState struct {
	Status       Status                 `json:"status"`
	Message      string                 `json:"message,omitempty"`
	Script       *model.GeneratedScript `json:"script,omitempty"`
	GenerationID string                 `json:"generationId,omitempty"`
}

// ScriptGenerator is the adapter a session drives.
type ScriptGenerator interface {
	GenerateScript(ctx context.Context, brief *model.Brief) (*model.GeneratedScript, error)
}

// ScriptSession is a single-flight state machine over a ScriptGenerator. It is
// safe for concurrent use.
type ScriptSession struct {
	generator ScriptGenerator

	mu    sync.Mutex
	state ViewState
}

// NewScriptSession returns a session in the idle state.
func NewScriptSession(generator ScriptGenerator) *ScriptSession {
	return &ScriptSession{
		generator: generator,
		state:     ViewState{Status: StatusIdle},
	}
}

// Submit generates a script for brief. The previous result or error is cleared
// as soon as the generation starts. A submit while another one is loading is
// rejected with ErrGenerationInProgress and leaves the state unchanged.
//
// Inputs:
//   - ctx: Passed to the generator.
//   - brief: The brief to generate from.
//
// Outputs:
//   - ViewState: The state after the call.
//   - error: ErrGenerationInProgress, or the generator's error.
func (s *ScriptSession) Submit(ctx context.Context, brief *model.Brief) (ViewState, error) {
	s.mu.Lock()
	if s.state.Status == StatusLoading {
		current := s.state
		s.mu.Unlock()
		return current, ErrGenerationInProgress
	}
	id := uuid.NewString()
	s.state = ViewState{Status: StatusLoading, GenerationID: id}
	s.mu.Unlock()

	script, err := s.generator.GenerateScript(ctx, brief)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = ViewState{Status: StatusError, Message: err.Error(), GenerationID: id}
		return s.state, err
	}
	s.state = ViewState{Status: StatusResult, Script: script, GenerationID: id}
	return s.state, nil
}

// State returns a copy of the current view state. The script it points to is
// never modified after generation.
func (s *ScriptSession) State() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LoadSample returns the sample brief. It does not touch the view state.
func (s *ScriptSession) LoadSample() model.Brief {
	return model.SampleBrief()
}

// Export returns the current script in clipboard text form.
func (s *ScriptSession) Export() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Status != StatusResult || s.state.Script == nil {
		return "", ErrNoScript
	}
	return model.FormatForClipboard(s.state.Script), nil
}
