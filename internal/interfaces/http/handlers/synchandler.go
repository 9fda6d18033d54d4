package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dormdesk/internal/application/sync/usecases"
	"dormdesk/internal/domain/syncrun"
	"dormdesk/internal/shared/logger"
	"dormdesk/internal/shared/utils"
)

type SyncHandler struct {
	runSyncUC   usecases.RunSyncExecutor
	getStatusUC usecases.GetSyncStatusExecutor
	listRunsUC  usecases.ListSyncRunsExecutor
	logger      logger.Interface
}

func NewSyncHandler(
	runSyncUC usecases.RunSyncExecutor,
	getStatusUC usecases.GetSyncStatusExecutor,
	listRunsUC usecases.ListSyncRunsExecutor,
	log logger.Interface,
) *SyncHandler {
	return &SyncHandler{
		runSyncUC:   runSyncUC,
		getStatusUC: getStatusUC,
		listRunsUC:  listRunsUC,
		logger:      log,
	}
}

// TriggerSync runs one reconciliation pass synchronously and returns its
// summary. A run already in flight answers 409.
func (h *SyncHandler) TriggerSync(c *gin.Context) {
	cmd := usecases.RunSyncCommand{Kind: syncrun.KindManual.String()}

	result, err := h.runSyncUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Sync run completed", result)
}

func (h *SyncHandler) GetStatus(c *gin.Context) {
	result, err := h.getStatusUC.Execute(c.Request.Context(), usecases.GetSyncStatusQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *SyncHandler) ListRuns(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listRunsUC.Execute(c.Request.Context(), usecases.ListSyncRunsQuery{
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Runs, result.Total, result.Page, p.PageSize)
}
