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

package cloud_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jaycherian/gcp-go-ad-script-writer/internal/cloud"
	test "github.com/jaycherian/gcp-go-ad-script-writer/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	"google.golang.org/genai"
)

type recordingModels struct {
	model  string
	config *genai.GenerateContentConfig
	resp   *genai.GenerateContentResponse
	err    error
}

func (r *recordingModels) GenerateContent(_ context.Context, model string, _ []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	r.model = model
	r.config = config
	return r.resp, r.err
}

func TestNewAgentModel(t *testing.T) {
	handle := &recordingModels{resp: test.TextResponse("ok")}
	agent := cloud.NewAgentModel(cloud.GenAILLMModel{
		Model:              "gemini-2.5-flash",
		SystemInstructions: "be brief",
		Temperature:        0.8,
		MaxTokens:          512,
		OutputFormat:       "application/json",
	}, handle)

	_, err := agent.GenerateContent(context.Background(), genai.Text("hello"))
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-flash", handle.model)
	require.NotNil(t, handle.config)
	assert.Equal(t, float32(0.8), *handle.config.Temperature)
	assert.Nil(t, handle.config.TopP)
	assert.Nil(t, handle.config.TopK)
	assert.Equal(t, int32(512), handle.config.MaxOutputTokens)
	assert.Equal(t, "application/json", handle.config.ResponseMIMEType)
	assert.Equal(t, "be brief", handle.config.SystemInstruction.Parts[0].Text)
}

func TestNewAgentModelZeroLimits(t *testing.T) {
	handle := &recordingModels{resp: test.TextResponse("ok")}
	agent := cloud.NewAgentModel(cloud.GenAILLMModel{
		Model:       "gemini-2.5-flash",
		Temperature: 0.8,
	}, handle)

	_, err := agent.GenerateContent(context.Background(), genai.Text("hello"))
	require.NoError(t, err)

	require.NotNil(t, handle.config)
	assert.Zero(t, handle.config.MaxOutputTokens)
	assert.Nil(t, handle.config.TopP)
	assert.Nil(t, handle.config.TopK)
	assert.Nil(t, handle.config.SystemInstruction)
}

func TestWithResponseSchemaCopies(t *testing.T) {
	handle := &recordingModels{resp: test.TextResponse("ok")}
	agent := cloud.NewAgentModel(cloud.GenAILLMModel{Model: "m"}, handle)
	schema := &genai.Schema{Type: genai.TypeObject}

	withSchema := agent.WithResponseSchema(schema)
	assert.Nil(t, agent.GenerativeContentConfig.ResponseSchema)
	assert.Same(t, schema, withSchema.GenerativeContentConfig.ResponseSchema)

	_, err := withSchema.GenerateContent(context.Background(), genai.Text("hello"))
	require.NoError(t, err)
	assert.Same(t, schema, handle.config.ResponseSchema)
}

func TestGenerateTextResponse(t *testing.T) {
	counter := noop.Int64Counter{}

	stub := test.NewStubModel("  " + test.AcmeScriptJSON + "\n")
	out, err := cloud.GenerateTextResponse(context.Background(), counter, counter, stub, genai.Text("p"))
	require.NoError(t, err)
	assert.Equal(t, test.AcmeScriptJSON, out)
	assert.Equal(t, 1, stub.Calls())
}

func TestGenerateTextResponseErrors(t *testing.T) {
	counter := noop.Int64Counter{}

	failing := &test.StubModel{Err: errors.New("boom")}
	_, err := cloud.GenerateTextResponse(context.Background(), counter, counter, failing, genai.Text("p"))
	assert.EqualError(t, err, "boom")
	assert.Equal(t, 1, failing.Calls(), "no retry")

	empty := test.NewStubModel("   ")
	_, err = cloud.GenerateTextResponse(context.Background(), counter, counter, empty, genai.Text("p"))
	assert.ErrorIs(t, err, cloud.ErrEmptyResponse)

	handle := &recordingModels{resp: &genai.GenerateContentResponse{}}
	agent := cloud.NewAgentModel(cloud.GenAILLMModel{Model: "m"}, handle)
	_, err = cloud.GenerateTextResponse(context.Background(), counter, counter, agent, genai.Text("p"))
	assert.ErrorIs(t, err, cloud.ErrEmptyResponse)
}
