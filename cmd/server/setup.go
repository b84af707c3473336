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

// Package main contains the setup and initialization logic for the application's state.
// This file creates the state manager that holds the shared dependencies: the
// configuration, the GenAI clients, the script service, and the session the
// HTTP routes drive.
//
// Functions:
//   - SetupOS: Points the configuration loader at the config directory and runtime,
//     unless the environment already does.
//   - GetConfig: Loads the configuration once.
//   - InitState: Creates the clients, the script writer workflow, the service and the session.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jaycherian/gcp-go-ad-script-writer/internal/cloud"
	"github.com/jaycherian/gcp-go-ad-script-writer/internal/core/services"
	"github.com/jaycherian/gcp-go-ad-script-writer/internal/core/workflow"
)

// StateManager holds all the shared dependencies for the application.
type StateManager struct {
	config        *cloud.Config
	cloud         *cloud.ServiceClients
	scriptService *services.ScriptService
	session       *services.ScriptSession
}

// state is a package-level variable that holds the single instance of StateManager.
var state = &StateManager{}

// SetupOS defaults GCP_CONFIG_PREFIX to "configs" and GCP_RUNTIME to "local".
// Values already present in the environment win.
func SetupOS() (err error) {
	if _, ok := os.LookupEnv(cloud.EnvConfigFilePrefix); !ok {
		if err = os.Setenv(cloud.EnvConfigFilePrefix, "configs"); err != nil {
			return err
		}
	}
	if _, ok := os.LookupEnv(cloud.EnvConfigRuntime); !ok {
		err = os.Setenv(cloud.EnvConfigRuntime, "local")
	}
	return err
}

// GetConfig provides a singleton instance of the application configuration.
func GetConfig() (*cloud.Config, error) {
	if state.config == nil {
		if err := SetupOS(); err != nil {
			return nil, fmt.Errorf("failed to setup environment: %w", err)
		}
		config := cloud.NewConfig()
		if err := cloud.LoadConfig(config); err != nil {
			return nil, err
		}
		state.config = config
	}
	return state.config, nil
}

// InitState builds every dependency the routes need. It fails with
// cloud.ErrMissingAPIKey when API_KEY is not set.
//
// Inputs:
//   - ctx: The application's root context.
//   - config: The loaded configuration.
func InitState(ctx context.Context, config *cloud.Config) error {
	cloudClients, err := cloud.NewCloudServiceClients(ctx, config)
	if err != nil {
		return err
	}
	state.cloud = cloudClients

	writer, err := workflow.NewScriptWriterWorkflow(config, cloudClients, config.ScriptWriter.AgentModel)
	if err != nil {
		return err
	}
	state.scriptService = services.NewScriptService(writer)
	state.session = services.NewScriptSession(state.scriptService)
	return nil
}
