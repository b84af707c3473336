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
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jaycherian/gcp-go-ad-script-writer/internal/core/model"
	"github.com/jaycherian/gcp-go-ad-script-writer/internal/core/services"
)

// ScriptRouter sets up script generation and export.
//
//   - POST /scripts binds a brief and generates a script. Missing fields or an
//     unknown duration answer 400, a generation already in flight 409, and a
//     failed generation 502 with the user-facing message.
//   - GET /scripts/export answers the current script as plain text, or 404.
func ScriptRouter(r *gin.RouterGroup, session *services.ScriptSession) {
	scripts := r.Group("/scripts")
	{
		scripts.POST("", func(c *gin.Context) {
			brief := &model.Brief{}
			if err := c.ShouldBindJSON(brief); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			// A started generation runs to completion even if the client goes away.
			ctx := context.WithoutCancel(c.Request.Context())
			state, err := session.Submit(ctx, brief)
			switch {
			case errors.Is(err, services.ErrGenerationInProgress):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			case err != nil:
				slog.WarnContext(ctx, "script generation request failed", "generation_id", state.GenerationID)
				c.JSON(http.StatusBadGateway, gin.H{"error": state.Message})
			default:
				c.JSON(http.StatusOK, state.Script)
			}
		})

		scripts.GET("/export", func(c *gin.Context) {
			text, err := session.Export()
			if err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
		})
	}
}
