package routes

import (
	"tender_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathNits   = "/nits"
	PathWorks  = "/works"
	PathBids   = "/bids"
	PathAwards = "/awards"
)

type tenderHandlers struct {
	nit     *handlers.NitHandler
	work    *handlers.WorkHandler
	bid     *handlers.BidHandler
	award   *handlers.AwardHandler
	payment *handlers.PaymentHandler
}

func newTenderHandlers(app *application) tenderHandlers {
	return tenderHandlers{
		nit:     handlers.NewNitHandler(app.workflow),
		work:    handlers.NewWorkHandler(app.workflow, app.summary),
		bid:     handlers.NewBidHandler(app.workflow),
		award:   handlers.NewAwardHandler(app.workflow),
		payment: handlers.NewPaymentHandler(app.workflow),
	}
}

func addTenderRoutes(rg *gin.RouterGroup, h tenderHandlers) {
	nits := rg.Group(PathNits)
	{
		nits.POST("", h.nit.PublishNit)
		nits.GET("/:nit_id", h.nit.GetNit)
		nits.DELETE("/:nit_id", h.nit.DeleteNit)
		nits.POST("/:nit_id/works", h.nit.AddWork)
	}

	works := rg.Group(PathWorks)
	{
		works.GET("/:work_id", h.work.GetWork)
		works.GET("/:work_id/summary", h.work.GetSummary)
		works.PATCH("/:work_id/tender-status", h.work.AdvanceTenderStage)
		works.POST("/:work_id/cancel", h.work.CancelWork)
		works.POST("/:work_id/retender", h.work.RetenderWork)
		works.PATCH("/:work_id/work-status", h.work.ChangeWorkStatus)

		works.POST("/:work_id/bids", h.bid.RegisterBid)
		works.GET("/:work_id/qualification", h.work.QualificationStatus)

		works.POST("/:work_id/award", h.award.AwardContract)

		works.POST("/:work_id/payments", h.payment.RecordPayment)
		works.GET("/:work_id/payments/totals", h.payment.ComputeTotals)
		works.GET("/:work_id/certificate", h.payment.CompletionCertificate)
	}

	bids := rg.Group(PathBids)
	{
		bids.DELETE("/:bid_id", h.bid.WithdrawBid)
		bids.PUT("/:bid_id/evaluation", h.bid.SubmitTechnicalEvaluation)
		bids.PUT("/:bid_id/amount", h.bid.RecordBidAmount)
	}

	awards := rg.Group(PathAwards)
	{
		awards.POST("/:award_id/agreement", h.award.RecordAgreement)
		awards.PATCH("/:award_id/delivery", h.award.RecordDelivery)
	}
}
