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

type GoalHandler struct {
	log         *logger.Logger
	goalService services.GoalService
}

func NewGoalHandler(log *logger.Logger, goalService services.GoalService) *GoalHandler {
	return &GoalHandler{
		log:         log.With("handler", "GoalHandler"),
		goalService: goalService,
	}
}

func (gh *GoalHandler) Create(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		TotalDays   int    `json:"total_days"`
		StartDate   string `json:"start_date"`
		UseAI       bool   `json:"use_ai"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	goal, err := gh.goalService.CreateGoal(c.Request.Context(), rd.UserID, services.CreateGoalInput{
		Title:       req.Title,
		Description: req.Description,
		TotalDays:   req.TotalDays,
		StartDate:   req.StartDate,
		UseAI:       req.UseAI,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, goal)
}

func (gh *GoalHandler) List(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	goals, err := gh.goalService.ListGoals(c.Request.Context(), rd.UserID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "goal_list_failed", err)
		return
	}
	RespondOK(c, goals)
}

func (gh *GoalHandler) Get(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal id"})
		return
	}
	goal, err := gh.goalService.GetGoal(c.Request.Context(), rd.UserID, goalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return
		}
		RespondError(c, http.StatusInternalServerError, "goal_get_failed", err)
		return
	}
	RespondOK(c, goal)
}

func (gh *GoalHandler) Delete(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal id"})
		return
	}
	if err := gh.goalService.DeleteGoal(c.Request.Context(), rd.UserID, goalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return
		}
		RespondError(c, http.StatusInternalServerError, "goal_delete_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
