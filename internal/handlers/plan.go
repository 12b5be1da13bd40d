package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/goal-achiever-backend/internal/logger"
	"github.com/yungbote/goal-achiever-backend/internal/requestdata"
	"github.com/yungbote/goal-achiever-backend/internal/services"
)

type PlanHandler struct {
	log            *logger.Logger
	dayPlanService services.DayPlanService
	chatService    services.ChatService
}

func NewPlanHandler(log *logger.Logger, dayPlanService services.DayPlanService, chatService services.ChatService) *PlanHandler {
	return &PlanHandler{
		log:            log.With("handler", "PlanHandler"),
		dayPlanService: dayPlanService,
		chatService:    chatService,
	}
}

func (ph *PlanHandler) GetByDate(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	plan, err := ph.dayPlanService.GetPlanByDate(c.Request.Context(), rd.UserID, c.Param("date"))
	if err != nil {
		ph.respondPlanError(c, err)
		return
	}
	RespondOK(c, plan)
}

// GetDynamicByDate mirrors GetByDate but reports whether content has been
// generated. Content is pre-generated at goal creation, so this is a plain
// read.
func (ph *PlanHandler) GetDynamicByDate(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	plan, err := ph.dayPlanService.GetPlanByDate(c.Request.Context(), rd.UserID, c.Param("date"))
	if err != nil {
		ph.respondPlanError(c, err)
		return
	}
	RespondOK(c, gin.H{
		"id":           plan.ID,
		"goal_id":      plan.GoalID,
		"day_number":   plan.DayNumber,
		"date":         plan.Date,
		"topic":        plan.Topic,
		"content":      plan.Content,
		"completed":    plan.Completed,
		"completed_at": plan.CompletedAt,
		"created_at":   plan.CreatedAt,
		"dynamic":      plan.Content != nil,
	})
}

func (ph *PlanHandler) Complete(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}
	plan, err := ph.dayPlanService.CompletePlan(c.Request.Context(), rd.UserID, planID)
	if err != nil {
		ph.respondPlanError(c, err)
		return
	}
	RespondOK(c, plan)
}

func (ph *PlanHandler) AddNote(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}
	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	note, err := ph.dayPlanService.AddNote(c.Request.Context(), rd.UserID, planID, req.Content)
	if err != nil {
		ph.respondPlanError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

func (ph *PlanHandler) ListNotes(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}
	notes, err := ph.dayPlanService.ListNotes(c.Request.Context(), rd.UserID, planID)
	if err != nil {
		ph.respondPlanError(c, err)
		return
	}
	RespondOK(c, notes)
}

// TopicChat is the contextual chat within a day plan for doubt clarification.
func (ph *PlanHandler) TopicChat(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}
	var req struct {
		Message   string `json:"message"`
		SessionID string `json:"session_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	reply, err := ph.chatService.SendTopicMessage(c.Request.Context(), rd.UserID, planID, req.SessionID, req.Message)
	if err != nil {
		if errors.Is(err, services.ErrEmptyMessage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ph.respondPlanError(c, err)
		return
	}
	RespondOK(c, reply)
}

func (ph *PlanHandler) respondPlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
	default:
		RespondError(c, http.StatusInternalServerError, "plan_request_failed", err)
	}
}
