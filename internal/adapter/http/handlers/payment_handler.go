package handlers

import (
	"net/http"

	request "tender_service/internal/adapter/http/dto/request"
	response "tender_service/internal/adapter/http/dto/response"
	"tender_service/internal/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// PaymentHandler handles the payment ledger of a work and its completion
// certificate.
type PaymentHandler struct {
	usecase usecase.ITenderWorkflowUseCase
}

func NewPaymentHandler(uc usecase.ITenderWorkflowUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	workID := c.Param("work_id")
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeInvalidPayload(c, err)
		return
	}

	receipt, err := h.usecase.RecordPayment(c.Request.Context(), workID, in)
	if err != nil {
		writeWorkflowError(c, err)
		return
	}
	if receipt.Totals.Anomaly != nil {
		log.WithFields(log.Fields{"work_id": workID, "payment_id": receipt.Entry.ID}).
			Info("[payment][handler] recorded with overpayment anomaly")
	}

	c.JSON(http.StatusCreated, response.FromPaymentReceipt(receipt))
}

func (h *PaymentHandler) ComputeTotals(c *gin.Context) {
	totals, err := h.usecase.ComputeTotals(c.Request.Context(), c.Param("work_id"))
	if err != nil {
		writeWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTotals(totals))
}

func (h *PaymentHandler) CompletionCertificate(c *gin.Context) {
	cert, err := h.usecase.CompletionCertificate(c.Request.Context(), c.Param("work_id"))
	if err != nil {
		writeWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCertificate(cert))
}
