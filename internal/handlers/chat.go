package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/goal-achiever-backend/internal/logger"
	"github.com/yungbote/goal-achiever-backend/internal/requestdata"
	"github.com/yungbote/goal-achiever-backend/internal/services"
)

type ChatHandler struct {
	log         *logger.Logger
	chatService services.ChatService
}

func NewChatHandler(log *logger.Logger, chatService services.ChatService) *ChatHandler {
	return &ChatHandler{
		log:         log.With("handler", "ChatHandler"),
		chatService: chatService,
	}
}

func (ch *ChatHandler) Send(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	var req struct {
		Message      string `json:"message"`
		SessionID    string `json:"session_id"`
		ContextTopic string `json:"context_topic"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	reply, err := ch.chatService.SendMessage(c.Request.Context(), rd.UserID, req.SessionID, req.Message, req.ContextTopic)
	if err != nil {
		if errors.Is(err, services.ErrEmptyMessage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		RespondError(c, http.StatusInternalServerError, "chat_send_failed", err)
		return
	}
	RespondOK(c, reply)
}

func (ch *ChatHandler) History(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	sessionID := c.Param("session_id")
	messages, err := ch.chatService.GetHistory(c.Request.Context(), rd.UserID, sessionID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "chat_history_failed", err)
		return
	}
	RespondOK(c, gin.H{
		"session_id": sessionID,
		"messages":   messages,
	})
}

func (ch *ChatHandler) Sessions(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	sessions, err := ch.chatService.ListSessions(c.Request.Context(), rd.UserID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "chat_sessions_failed", err)
		return
	}
	RespondOK(c, sessions)
}
