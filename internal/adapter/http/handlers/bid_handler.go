package handlers

import (
	"net/http"

	request "tender_service/internal/adapter/http/dto/request"
	response "tender_service/internal/adapter/http/dto/response"
	"tender_service/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BidHandler handles bid registration, technical evaluation and financial bids.
type BidHandler struct {
	usecase usecase.ITenderWorkflowUseCase
}

func NewBidHandler(uc usecase.ITenderWorkflowUseCase) *BidHandler {
	return &BidHandler{usecase: uc}
}

func (h *BidHandler) RegisterBid(c *gin.Context) {
	var payload request.RegisterBidRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}

	bid, err := h.usecase.RegisterBid(c.Request.Context(), c.Param("work_id"), payload.AgencyID)
	if err != nil {
		writeWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromBid(bid))
}

func (h *BidHandler) WithdrawBid(c *gin.Context) {
	if err := h.usecase.WithdrawBid(c.Request.Context(), c.Param("bid_id")); err != nil {
		writeWorkflowError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SubmitTechnicalEvaluation records (or overwrites) the qualify verdict.
func (h *BidHandler) SubmitTechnicalEvaluation(c *gin.Context) {
	var payload request.TechnicalEvaluationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}

	bid, err := h.usecase.SubmitTechnicalEvaluation(c.Request.Context(), c.Param("bid_id"), *payload.Qualify, payload.DocumentRef)
	if err != nil {
		writeWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBid(bid))
}

func (h *BidHandler) RecordBidAmount(c *gin.Context) {
	var payload request.BidAmountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}
	if payload.BiddingAmount == nil {
		writeInvalidPayload(c, request.ErrMissingAmount)
		return
	}

	bid, err := h.usecase.RecordBidAmount(c.Request.Context(), c.Param("bid_id"), *payload.BiddingAmount)
	if err != nil {
		writeWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBid(bid))
}
