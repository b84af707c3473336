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

// Package api contains the HTTP route definitions for the ad script writer.
// This file defines the health check and the view-state endpoint a front end
// polls while a script is being generated.
//
// Functions:
//   - Health: Registers GET /healthz on the engine.
//   - Dashboard: Registers GET /scripts/state under the given group.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jaycherian/gcp-go-ad-script-writer/internal/core/services"
)

// Health registers a liveness endpoint that always answers {"status":"ok"}.
func Health(r gin.IRoutes) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// Dashboard exposes the session's current view state.
//
// Inputs:
//   - r: The router group the routes are added to (usually /api/v1).
//   - session: The session whose state is reported.
func Dashboard(r *gin.RouterGroup, session *services.ScriptSession) {
	scripts := r.Group("/scripts")
	{
		scripts.GET("/state", func(c *gin.Context) {
			c.JSON(http.StatusOK, session.State())
		})
	}
}
