package handlers

import (
	"net/http"

	request "tender_service/internal/adapter/http/dto/request"
	response "tender_service/internal/adapter/http/dto/response"
	"tender_service/internal/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// NitHandler handles HTTP requests for NITs and the works tendered under them.
type NitHandler struct {
	usecase usecase.ITenderWorkflowUseCase
}

func NewNitHandler(uc usecase.ITenderWorkflowUseCase) *NitHandler {
	return &NitHandler{usecase: uc}
}

func (h *NitHandler) PublishNit(c *gin.Context) {
	var payload request.PublishNitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeInvalidPayload(c, err)
		return
	}

	nit, err := h.usecase.PublishNit(c.Request.Context(), in)
	if err != nil {
		writeWorkflowError(c, err)
		return
	}
	log.WithFields(log.Fields{"nit_id": nit.ID, "memo_no": nit.MemoNo}).Debug("[nit][handler] published")

	c.JSON(http.StatusCreated, response.FromNit(nit))
}

func (h *NitHandler) GetNit(c *gin.Context) {
	detail, err := h.usecase.GetNit(c.Request.Context(), c.Param("nit_id"))
	if err != nil {
		writeWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNitDetail(detail))
}

// DeleteNit removes a NIT that has no works yet.
func (h *NitHandler) DeleteNit(c *gin.Context) {
	if err := h.usecase.DeleteNit(c.Request.Context(), c.Param("nit_id")); err != nil {
		writeWorkflowError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NitHandler) AddWork(c *gin.Context) {
	var payload request.AddWorkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeInvalidPayload(c, err)
		return
	}

	work, err := h.usecase.AddWork(c.Request.Context(), c.Param("nit_id"), in)
	if err != nil {
		writeWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromWork(work))
}
