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

package cor_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jaycherian/gcp-go-ad-script-writer/internal/core/cor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// upper writes the upper-cased string input to its output.
type upper struct {
	cor.BaseCommand
	ran int
}

func (u *upper) Execute(ctx cor.Context) {
	u.ran++
	ctx.Add(u.GetOutputParam(), strings.ToUpper(ctx.Get(u.GetInputParam()).(string)))
}

// failing records an error and produces no output.
type failing struct {
	cor.BaseCommand
}

func (f *failing) Execute(ctx cor.Context) {
	ctx.AddError(f.GetName(), errors.New("bad input"))
}

func newUpper(name string) *upper {
	return &upper{BaseCommand: *cor.NewBaseCommand(name)}
}

func TestChainPipesOutputToInput(t *testing.T) {
	first := newUpper("first")
	second := newUpper("second")
	chain := cor.NewBaseChain("pipeline")
	chain.AddCommand(first).AddCommand(second)

	chCtx := cor.NewBaseContext(context.Background())
	chCtx.Add(cor.CtxIn, "hello")
	chain.Execute(chCtx)

	require.False(t, chCtx.HasErrors())
	assert.Equal(t, "HELLO", chCtx.Get(cor.CtxIn))
	assert.Nil(t, chCtx.Get(cor.CtxOut))
	assert.Equal(t, 1, first.ran)
	assert.Equal(t, 1, second.ran)
}

func TestChainStopsOnFailure(t *testing.T) {
	after := newUpper("after")
	chain := cor.NewBaseChain("pipeline")
	chain.AddCommand(&failing{BaseCommand: *cor.NewBaseCommand("fail")}).AddCommand(after)

	chCtx := cor.NewBaseContext(context.Background())
	chCtx.Add(cor.CtxIn, "hello")
	chain.Execute(chCtx)

	assert.True(t, chCtx.HasErrors())
	assert.Equal(t, 0, after.ran)
	assert.EqualError(t, chCtx.Err(), "fail: bad input")
}

func TestChainContinueOnFailure(t *testing.T) {
	chain := cor.NewBaseChain("pipeline")
	chain.ContinueOnFailure(true).
		AddCommand(&failing{BaseCommand: *cor.NewBaseCommand("fail")}).
		AddCommand(newUpper("after"))

	chCtx := cor.NewBaseContext(context.Background())
	chCtx.Add(cor.CtxIn, "hello")
	chain.Execute(chCtx)

	// The failure left no output, so the second command had no input.
	errs := chCtx.GetErrors()
	require.Len(t, errs, 2)
	assert.ErrorIs(t, errs["after"], cor.ErrNotExecutable)
	assert.ErrorIs(t, chCtx.Err(), cor.ErrNotExecutable)
}

func TestChainMissingInput(t *testing.T) {
	only := newUpper("only")
	chain := cor.NewBaseChain("pipeline")
	chain.AddCommand(only)

	chCtx := cor.NewBaseContext(context.Background())
	chain.Execute(chCtx)

	assert.Equal(t, 0, only.ran)
	assert.ErrorIs(t, chCtx.GetErrors()["only"], cor.ErrNotExecutable)
}

func TestChainRestoresGoContext(t *testing.T) {
	type key struct{}
	parent := context.WithValue(context.Background(), key{}, "parent")
	chain := cor.NewBaseChain("pipeline")
	chain.AddCommand(newUpper("only"))

	chCtx := cor.NewBaseContext(parent)
	chCtx.Add(cor.CtxIn, "x")
	chain.Execute(chCtx)

	assert.Equal(t, parent, chCtx.GetContext())
}

func TestCommandParams(t *testing.T) {
	cmd := cor.NewBaseCommand("c")
	assert.Equal(t, cor.CtxIn, cmd.GetInputParam())
	assert.Equal(t, cor.CtxOut, cmd.GetOutputParam())

	cmd.InputParamName = "brief"
	cmd.OutputParamName = "prompt"
	assert.Equal(t, "brief", cmd.GetInputParam())
	assert.Equal(t, "prompt", cmd.GetOutputParam())
	assert.NotNil(t, cmd.GetSuccessCounter())
	assert.NotNil(t, cmd.GetErrorCounter())
}

func TestContextErrOrder(t *testing.T) {
	chCtx := cor.NewBaseContext(context.Background())
	assert.NoError(t, chCtx.Err())

	chCtx.AddError("b", errors.New("second"))
	chCtx.AddError("a", errors.New("first"))
	assert.EqualError(t, chCtx.Err(), "b: second\na: first")
}
