package controllers

import (
	"carrental/pkg/chatbot"
	"carrental/pkg/resp"

	"github.com/gin-gonic/gin"
)

type ChatbotController struct{}

func NewChatbotController() *ChatbotController { return &ChatbotController{} }

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// POST /chatbot
func (h *ChatbotController) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{
		"intent":   chatbot.Classify(req.Message),
		"response": chatbot.Reply(req.Message),
	})
}
