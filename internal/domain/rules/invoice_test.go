package rules

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eisen_qms/internal/domain"
	"eisen_qms/internal/domain/entities"
)

func sentInvoice() entities.Invoice {
	return entities.Invoice{
		ID:         "FAC-001",
		ProjectID:  "EM26-01",
		IssueDate:  date("2026-02-10"),
		CreditDays: 30,
		Total:      total1600,
		Subtotal:   total1600,
		Status:     entities.InvoiceStatusEnviada,
	}
}

func TestRecordPayment_FullConfirmedPaymentMarksPaid(t *testing.T) {
	in := sentInvoice()
	out, err := RecordPayment(in, entities.PaymentRecord{
		PaymentID: "PAG-001",
		Amount:    total1600,
		Status:    entities.PaymentStatusConfirmado,
	}, date("2026-03-01"))

	require.NoError(t, err)
	assert.Equal(t, entities.InvoiceStatusPagada, out.Status)
	assert.Len(t, out.Payments, 1)
	assert.Empty(t, in.Payments, "input must not change")
}

func TestRecordPayment_OnOverdueInvoice(t *testing.T) {
	asOf := date("2026-04-01")
	inv := DeriveInvoiceStatus(sentInvoice(), asOf)
	require.Equal(t, entities.InvoiceStatusVencida, inv.Status)

	out, err := RecordPayment(inv, entities.PaymentRecord{Amount: total1600}, asOf)
	require.NoError(t, err)
	assert.Equal(t, entities.InvoiceStatusPagada, out.Status)
	assert.Equal(t, entities.PaymentStatusConfirmado, out.Payments[0].Status)
}

func TestRecordPayment_PartialStaysOpen(t *testing.T) {
	out, err := RecordPayment(sentInvoice(), entities.PaymentRecord{
		Amount: decimal.NewFromInt(600),
		Status: entities.PaymentStatusConfirmado,
	}, date("2026-03-01"))

	require.NoError(t, err)
	assert.Equal(t, entities.InvoiceStatusEnviada, out.Status)
	assert.True(t, InvoiceBalance(out).Equal(decimal.NewFromInt(1000)))
}

func TestRecordPayment_ReplacesSamePayment(t *testing.T) {
	asOf := date("2026-03-01")
	inv, err := RecordPayment(sentInvoice(), entities.PaymentRecord{
		PaymentID: "PAG-002",
		Amount:    total1600,
		Status:    entities.PaymentStatusPendiente,
	}, asOf)
	require.NoError(t, err)
	assert.Equal(t, entities.InvoiceStatusEnviada, inv.Status)

	inv, err = RecordPayment(inv, entities.PaymentRecord{
		PaymentID: "PAG-002",
		Amount:    total1600,
		Status:    entities.PaymentStatusConfirmado,
	}, asOf)
	require.NoError(t, err)
	assert.Len(t, inv.Payments, 1)
	assert.Equal(t, entities.InvoiceStatusPagada, inv.Status)
}

func TestRecordPayment_NonPositiveAmount(t *testing.T) {
	for _, amt := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := RecordPayment(sentInvoice(), entities.PaymentRecord{Amount: amt}, date("2026-03-01"))
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestDeriveInvoiceStatus_KeepsRecordedPaid(t *testing.T) {
	inv := sentInvoice()
	inv.Status = entities.InvoiceStatusPagada

	out := DeriveInvoiceStatus(inv, date("2027-01-01"))
	assert.Equal(t, entities.InvoiceStatusPagada, out.Status)
	assert.Negative(t, out.DaysUntilDue)
}

func TestInvoiceBalance_NeverNegative(t *testing.T) {
	inv := sentInvoice()
	inv.Payments = []entities.PaymentRecord{{Amount: decimal.NewFromInt(2000), Status: entities.PaymentStatusConfirmado}}
	assert.True(t, InvoiceBalance(inv).IsZero())
}
