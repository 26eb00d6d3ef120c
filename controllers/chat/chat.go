package chatControllers

import (
	"net/http"

	"github.com/afnankhn654-alt/ShopNest/chatbot"
	"github.com/afnankhn654-alt/ShopNest/controllers"
	"github.com/afnankhn654-alt/ShopNest/middleware"
	"github.com/gin-gonic/gin"
)

type MessageInput struct {
	Text string `json:"text" binding:"required"`
}

// TranscriptResponse is the chat window state.
type TranscriptResponse struct {
	Messages []chatbot.Message `json:"messages"`
	Pending  bool              `json:"pending"`
}

func transcriptResponse(t *chatbot.Transcript) TranscriptResponse {
	return TranscriptResponse{Messages: t.Messages(), Pending: t.Pending()}
}

// GET /chat
func GetTranscript() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.CurrentSession(c)
		c.JSON(http.StatusOK, transcriptResponse(session.Chat))
	}
}

// POST /chat
func SendMessage(assistant *chatbot.Assistant) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input MessageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		session := middleware.CurrentSession(c)
		reply, err := assistant.Reply(c.Request.Context(), session.Chat, input.Text)
		if err != nil {
			controllers.Error(c, err, "Failed to send message")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"reply":      reply,
			"transcript": transcriptResponse(session.Chat),
		})
	}
}
