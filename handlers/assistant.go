// File: handlers/assistant.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KennyLightfoot/hmnp-site-sub021/models"
	ai "github.com/KennyLightfoot/hmnp-site-sub021/services/intelligence"
	"github.com/KennyLightfoot/hmnp-site-sub021/utils"
)

// AssistantChatHandler serves POST /api/assistant/chat.
func AssistantChatHandler(assistant ai.AssistantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AIRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}

		resp, err := assistant.ProcessUserInput(c.Request.Context(), req)
		if err != nil {
			utils.JSONError(c, http.StatusBadGateway, "assistant unavailable", "")
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
