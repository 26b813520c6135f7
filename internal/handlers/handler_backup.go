package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lancarbooks/lancar_backend/internal/middleware"

	portssvc "github.com/lancarbooks/lancar_backend/internal/core/ports/services"
	"github.com/lancarbooks/lancar_backend/internal/dto"
)

// backupHandler records and lists backup runs.
type backupHandler struct {
	backupService portssvc.BackupSvcFacade
}

func newBackupHandler(bs portssvc.BackupSvcFacade) *backupHandler {
	return &backupHandler{backupService: bs}
}

// registerBackupRoutes registers backup routes.
func registerBackupRoutes(rg *gin.RouterGroup, backupService portssvc.BackupSvcFacade) {
	h := newBackupHandler(backupService)

	backups := rg.Group("/backups")
	{
		backups.POST("", h.triggerBackup)
		backups.GET("", h.listBackups)
	}
}

// triggerBackup godoc
// @Summary Trigger a backup run
// @Description Captures per-table row counts and appends a record to the backup history.
// @Tags backups
// @Accept json
// @Produce json
// @Param backup body dto.TriggerBackupRequest false "Optional notes"
// @Success 201 {object} dto.BackupRecordResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /backups [post]
func (h *backupHandler) triggerBackup(c *gin.Context) {
	var req dto.TriggerBackupRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	record, err := h.backupService.TriggerBackup(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to trigger backup")
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("backup recorded", "backupID", record.BackupID, "status", record.Status)
	c.JSON(http.StatusCreated, dto.ToBackupRecordResponse(record))
}

// listBackups godoc
// @Summary List backup history
// @Description Returns backup runs, newest first.
// @Tags backups
// @Produce json
// @Param limit query int false "Maximum records to return" default(50)
// @Success 200 {array} dto.BackupRecordResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /backups [get]
func (h *backupHandler) listBackups(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid limit parameter"})
		return
	}

	records, err := h.backupService.ListBackups(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err, "Failed to list backups")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBackupRecordResponse(records))
}
