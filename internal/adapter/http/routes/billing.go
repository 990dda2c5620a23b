package routes

import (
	"github.com/gin-gonic/gin"

	"eisen_qms/internal/adapter/http/handlers"
)

const (
	PathInvoices  = "/invoices"
	PathPayments  = "/payments"
	PathDashboard = "/dashboard"
)

func addBillingRoutes(
	rg *gin.RouterGroup,
	invoiceHandler *handlers.InvoiceHandler,
	paymentHandler *handlers.PaymentHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.POST("/:id/payments", invoiceHandler.RecordPayment)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.GET("", paymentHandler.ListPayments)
		payments.GET("/:id", paymentHandler.GetPayment)
		payments.PATCH("/:id/confirm", paymentHandler.ConfirmPayment)
	}

	rg.GET(PathDashboard, dashboardHandler.GetDashboard)
}
