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
// This file, `script.go`, defines the ScriptService, the single entry point for
// turning an advertising brief into a generated script. It runs the script
// writer workflow once and hides every failure behind one user-facing error.
package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jaycherian/gcp-go-ad-script-writer/internal/core/cor"
	"github.com/jaycherian/gcp-go-ad-script-writer/internal/core/model"
	"github.com/jaycherian/gcp-go-ad-script-writer/internal/core/workflow"
)

// ErrScriptGeneration is the only error GenerateScript returns. The underlying
// cause is logged, never surfaced.
var ErrScriptGeneration = errors.New("Failed to generate script. The AI model may have returned an invalid format. Please try again.")

// ScriptService generates ad scripts.
type ScriptService struct {
	Writer cor.Command // Workflow that reads a *model.Brief from cor.CtxIn and stores the script under OutputParam.
	// OutputParam is the context key of the finished script. Defaults to workflow.ScriptOutputParamName.
	OutputParam string
}

// NewScriptService wraps a script writer workflow.
func NewScriptService(writer *workflow.ScriptWriterWorkflow) *ScriptService {
	return &ScriptService{Writer: writer, OutputParam: workflow.ScriptOutputParamName}
}

// GenerateScript makes a single attempt to produce a script for brief.
//
// Inputs:
//   - ctx: The context for the model call, used for cancellation and tracing.
//   - brief: The advertising brief. Field values are used as given.
//
// Outputs:
//   - *model.GeneratedScript: The parsed and validated script, exactly as the model returned it.
//   - error: ErrScriptGeneration on any failure.
func (s *ScriptService) GenerateScript(ctx context.Context, brief *model.Brief) (*model.GeneratedScript, error) {
	if brief == nil {
		slog.ErrorContext(ctx, "script generation called without a brief")
		return nil, ErrScriptGeneration
	}

	chainCtx := cor.NewBaseContext(ctx)
	chainCtx.Add(cor.CtxIn, brief)
	s.Writer.Execute(chainCtx)

	if chainCtx.HasErrors() {
		for command, err := range chainCtx.GetErrors() {
			slog.ErrorContext(ctx, "script generation failed", "command", command, "error", err)
		}
		return nil, ErrScriptGeneration
	}

	script, ok := chainCtx.Get(s.outputParam()).(*model.GeneratedScript)
	if !ok || script == nil {
		slog.ErrorContext(ctx, "script generation produced no script", "command", s.Writer.GetName())
		return nil, ErrScriptGeneration
	}

	slog.InfoContext(ctx, "script generated", "title", script.Title, "lines", len(script.Lines))
	return script, nil
}

func (s *ScriptService) outputParam() string {
	if s.OutputParam == "" {
		return workflow.ScriptOutputParamName
	}
	return s.OutputParam
}
