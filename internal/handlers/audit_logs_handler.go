package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/headz-api/internal/httperr"
	"github.com/BruksfildServices01/headz-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

type auditQuery struct {
	action string
	entity string
	userID *uuid.UUID
	from   *time.Time
	to     *time.Time
	page   int
	limit  int
}

func parseAuditQuery(c *gin.Context) auditQuery {
	q := auditQuery{
		action: c.Query("action"),
		entity: c.Query("entity"),
	}

	if id, err := uuid.Parse(c.Query("user_id")); err == nil {
		q.userID = &id
	}

	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		q.from = &from
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		end := to.Add(24 * time.Hour)
		q.to = &end
	}

	q.page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if q.page <= 0 {
		q.page = 1
	}

	q.limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	if q.limit <= 0 || q.limit > 200 {
		q.limit = 50
	}

	return q
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	params := parseAuditQuery(c)

	q := h.db.WithContext(c.Request.Context()).
		Model(&models.AuditLog{})

	// --------------------------------------------------
	// Optional filters
	// --------------------------------------------------

	if params.action != "" {
		q = q.Where("action = ?", params.action)
	}
	if params.entity != "" {
		q = q.Where("entity = ?", params.entity)
	}
	if params.userID != nil {
		q = q.Where("user_id = ?", *params.userID)
	}
	if params.from != nil {
		q = q.Where("created_at >= ?", *params.from)
	}
	if params.to != nil {
		q = q.Where("created_at < ?", *params.to)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Respond(c, err, "audit_count_failed")
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(params.limit).
		Offset((params.page - 1) * params.limit).
		Find(&logs).Error; err != nil {
		httperr.Respond(c, err, "audit_list_failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  params.page,
		"limit": params.limit,
		"total": total,
		"logs":  logs,
	})
}
