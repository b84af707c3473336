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

package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/jaycherian/gcp-go-ad-script-writer/internal/core/services"
)

// NewRouter builds the gin engine with tracing, CORS and every route mounted.
//
// Inputs:
//   - serviceName: The name reported on otelgin spans.
//   - session: The session behind the script routes. Every client shares it,
//     so the service serves a single user.
//
// Outputs:
//   - *gin.Engine: The configured engine, ready to be used as an http.Handler.
func NewRouter(serviceName string, session *services.ScriptSession) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(otelgin.Middleware(serviceName))
	r.Use(cors.Default())

	Health(r)

	apiV1 := r.Group("/api/v1")
	{
		BriefRouter(apiV1, session)
		ScriptRouter(apiV1, session)
		Dashboard(apiV1, session)
	}
	return r
}
