package handlers

import (
	"net/http"

	request "tender_service/internal/adapter/http/dto/request"
	response "tender_service/internal/adapter/http/dto/response"
	"tender_service/internal/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// AwardHandler handles the award of contract, the agreement and delivery.
type AwardHandler struct {
	usecase usecase.ITenderWorkflowUseCase
}

func NewAwardHandler(uc usecase.ITenderWorkflowUseCase) *AwardHandler {
	return &AwardHandler{usecase: uc}
}

func (h *AwardHandler) AwardContract(c *gin.Context) {
	workID := c.Param("work_id")
	var payload request.AwardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}
	in, err := payload.ToInput(workID)
	if err != nil {
		writeInvalidPayload(c, err)
		return
	}

	res, err := h.usecase.AwardContract(c.Request.Context(), in)
	if err != nil {
		writeWorkflowError(c, err)
		return
	}
	log.WithFields(log.Fields{
		"work_id":    workID,
		"award_id":   res.Award.ID,
		"percentage": res.Detail.Percentage,
	}).Debug("[award][handler] awarded")

	c.JSON(http.StatusCreated, response.FromAwardResult(res))
}

func (h *AwardHandler) RecordAgreement(c *gin.Context) {
	var payload request.AgreementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}
	date, err := request.ParseDate(payload.AgreementDate)
	if err != nil {
		writeInvalidPayload(c, err)
		return
	}

	agreement, err := h.usecase.RecordAgreement(c.Request.Context(), c.Param("award_id"), payload.AgreementNo, date)
	if err != nil {
		writeWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromAgreement(agreement))
}

// RecordDelivery accepts an empty body; the delivery date then defaults to today.
func (h *AwardHandler) RecordDelivery(c *gin.Context) {
	var payload request.DeliveryRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			writeInvalidPayload(c, err)
			return
		}
	}
	date, err := request.ParseDate(payload.DeliveryDate)
	if err != nil {
		writeInvalidPayload(c, err)
		return
	}

	award, err := h.usecase.RecordDelivery(c.Request.Context(), c.Param("award_id"), date)
	if err != nil {
		writeWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAward(award))
}
