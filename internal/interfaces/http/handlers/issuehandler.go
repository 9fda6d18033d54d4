package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dormdesk/internal/application/issue/usecases"
	"dormdesk/internal/shared/logger"
	"dormdesk/internal/shared/utils"
)

type IssueHandler struct {
	listIssuesUC   usecases.ListIssuesExecutor
	getIssueUC     usecases.GetIssueExecutor
	changeStatusUC usecases.ChangeStatusExecutor
	logger         logger.Interface
}

func NewIssueHandler(
	listIssuesUC usecases.ListIssuesExecutor,
	getIssueUC usecases.GetIssueExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	log logger.Interface,
) *IssueHandler {
	return &IssueHandler{
		listIssuesUC:   listIssuesUC,
		getIssueUC:     getIssueUC,
		changeStatusUC: changeStatusUC,
		logger:         log,
	}
}

type UpdateStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	ActorID *uint  `json:"actor_id"`
}

func (h *IssueHandler) ListIssues(c *gin.Context) {
	p := utils.ParsePagination(c)

	query := usecases.ListIssuesQuery{
		Page:     p.Page,
		PageSize: p.PageSize,
	}
	if hallID, ok := parseQueryUint(c, "hall_id"); ok {
		query.HallID = &hallID
	}
	if categoryID, ok := parseQueryUint(c, "category_id"); ok {
		query.CategoryID = &categoryID
	}
	if status := c.Query("status"); status != "" {
		query.Status = &status
	}
	if email := c.Query("email"); email != "" {
		query.Email = &email
	}

	result, err := h.listIssuesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Issues, result.Total, result.Page, p.PageSize)
}

func (h *IssueHandler) GetIssue(c *gin.Context) {
	issueID, err := utils.ParseUintParam(c, "id", "issue")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getIssueUC.Execute(c.Request.Context(), usecases.GetIssueQuery{IssueID: issueID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *IssueHandler) UpdateStatus(c *gin.Context) {
	issueID, err := utils.ParseUintParam(c, "id", "issue")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for status update", "issue_id", issueID, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.ChangeStatusCommand{
		IssueID:   issueID,
		NewStatus: req.Status,
		ActorID:   req.ActorID,
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Issue status updated", result)
}

func parseQueryUint(c *gin.Context, key string) (uint, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, false
	}
	val, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || val == 0 {
		return 0, false
	}
	return uint(val), true
}
