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
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jaycherian/gcp-go-ad-script-writer/internal/core/model"
	"github.com/jaycherian/gcp-go-ad-script-writer/internal/core/services"
)

// BriefRouter sets up the routes that help fill in the capture form: the sample
// brief and the list of allowed durations.
func BriefRouter(r *gin.RouterGroup, session *services.ScriptSession) {
	briefs := r.Group("/briefs")
	{
		briefs.GET("/sample", func(c *gin.Context) {
			c.JSON(http.StatusOK, session.LoadSample())
		})

		briefs.GET("/durations", func(c *gin.Context) {
			c.JSON(http.StatusOK, model.Durations())
		})
	}
}
