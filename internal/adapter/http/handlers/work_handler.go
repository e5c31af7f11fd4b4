package handlers

import (
	"net/http"

	request "tender_service/internal/adapter/http/dto/request"
	response "tender_service/internal/adapter/http/dto/response"
	"tender_service/internal/usecase"
	"tender_service/internal/usecase/readview"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// WorkHandler handles the tender and execution status of a work.
type WorkHandler struct {
	usecase usecase.ITenderWorkflowUseCase
	summary readview.IWorkSummaryService
}

func NewWorkHandler(uc usecase.ITenderWorkflowUseCase, summary readview.IWorkSummaryService) *WorkHandler {
	return &WorkHandler{usecase: uc, summary: summary}
}

func (h *WorkHandler) GetWork(c *gin.Context) {
	work, err := h.usecase.GetWork(c.Request.Context(), c.Param("work_id"))
	if err != nil {
		writeWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWork(work))
}

// AdvanceTenderStage moves the work to the requested tender status. The only
// legal targets are the next stage, Cancelled and Retender.
func (h *WorkHandler) AdvanceTenderStage(c *gin.Context) {
	workID := c.Param("work_id")
	var payload request.AdvanceStageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}
	target, err := payload.Target()
	if err != nil {
		writeInvalidPayload(c, err)
		return
	}

	log.WithFields(log.Fields{"work_id": workID, "target": target}).Debug("[work][handler] advance start")
	work, err := h.usecase.AdvanceTenderStage(c.Request.Context(), workID, target)
	if err != nil {
		writeWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWork(work))
}

func (h *WorkHandler) CancelWork(c *gin.Context) {
	work, err := h.usecase.CancelWork(c.Request.Context(), c.Param("work_id"))
	if err != nil {
		writeWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWork(work))
}

func (h *WorkHandler) RetenderWork(c *gin.Context) {
	work, err := h.usecase.RetenderWork(c.Request.Context(), c.Param("work_id"))
	if err != nil {
		writeWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWork(work))
}

func (h *WorkHandler) ChangeWorkStatus(c *gin.Context) {
	var payload request.WorkStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}
	target, err := payload.Target()
	if err != nil {
		writeInvalidPayload(c, err)
		return
	}

	work, err := h.usecase.ChangeWorkStatus(c.Request.Context(), c.Param("work_id"), target)
	if err != nil {
		writeWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWork(work))
}

func (h *WorkHandler) QualificationStatus(c *gin.Context) {
	summary, err := h.usecase.QualificationStatus(c.Request.Context(), c.Param("work_id"))
	if err != nil {
		writeWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetSummary serves the cached dashboard view of a work.
func (h *WorkHandler) GetSummary(c *gin.Context) {
	summary, err := h.summary.Get(c.Request.Context(), c.Param("work_id"))
	if err != nil {
		writeWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkSummary(summary))
}
