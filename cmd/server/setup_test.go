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

package main

import (
	"context"
	"os"
	"testing"

	"github.com/jaycherian/gcp-go-ad-script-writer/internal/cloud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupOSDefaults(t *testing.T) {
	t.Setenv(cloud.EnvConfigFilePrefix, "")
	t.Setenv(cloud.EnvConfigRuntime, "")
	require.NoError(t, os.Unsetenv(cloud.EnvConfigFilePrefix))
	require.NoError(t, os.Unsetenv(cloud.EnvConfigRuntime))

	require.NoError(t, SetupOS())
	assert.Equal(t, "configs", os.Getenv(cloud.EnvConfigFilePrefix))
	assert.Equal(t, "local", os.Getenv(cloud.EnvConfigRuntime))
}

func TestSetupOSKeepsEnvironment(t *testing.T) {
	t.Setenv(cloud.EnvConfigFilePrefix, "/etc/ad-script-writer")
	t.Setenv(cloud.EnvConfigRuntime, "prod")

	require.NoError(t, SetupOS())
	assert.Equal(t, "/etc/ad-script-writer", os.Getenv(cloud.EnvConfigFilePrefix))
	assert.Equal(t, "prod", os.Getenv(cloud.EnvConfigRuntime))
}

func TestInitStateMissingAPIKey(t *testing.T) {
	config := cloud.NewConfig()
	err := InitState(context.Background(), config)
	assert.ErrorIs(t, err, cloud.ErrMissingAPIKey)
}
