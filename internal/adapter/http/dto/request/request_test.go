package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eisen_qms/internal/domain"
	"eisen_qms/internal/domain/entities"
	"eisen_qms/internal/domain/rules"
)

func TestMoney_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		set   bool
	}{
		{name: "number", input: `1600`, want: "1600", set: true},
		{name: "display string", input: `"$1,600.00"`, want: "1600", set: true},
		{name: "hourly rate", input: `"$40/hr"`, want: "40", set: true},
		{name: "null", input: `null`, want: "0"},
		{name: "blank", input: `"  "`, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Money
			require.NoError(t, json.Unmarshal([]byte(tt.input), &m))
			assert.Equal(t, tt.want, m.Value.String())
			assert.Equal(t, tt.set, m.Set)
		})
	}
}

func TestMoney_UnmarshalJSON_Invalid(t *testing.T) {
	var m Money
	err := json.Unmarshal([]byte(`"forty"`), &m)
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = json.Unmarshal([]byte(`true`), &m)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var body struct {
		Date  Date `json:"fecha"`
		Empty Date `json:"vacia"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"fecha":"2026-02-10","vacia":""}`), &body))
	assert.Equal(t, "2026-02-10", rules.FormatDate(body.Date.Time))
	assert.True(t, body.Empty.IsZero())

	err := json.Unmarshal([]byte(`{"fecha":"10/02/2026"}`), &body)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStatusFilters(t *testing.T) {
	s, err := TicketStatusFilter(" En Espera ")
	require.NoError(t, err)
	assert.Equal(t, entities.TicketStatusEnEspera, s)

	w, err := WeekStatusFilter("")
	require.NoError(t, err)
	assert.Empty(t, w)

	_, err = InvoiceStatusFilter("Cancelada")
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "estado", ve.Field)

	c, err := ComplianceStatusFilter("Incompleto")
	require.NoError(t, err)
	assert.Equal(t, rules.ComplianceIncompleto, c)
}

func TestTicketCreateRequest_DefaultsRequiresPO(t *testing.T) {
	var r TicketCreateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"cliente":"Eurospec","issue":"Sorteo","tarifa":"$40/hr"}`), &r))

	tk := r.ToEntity()
	assert.True(t, tk.RequiresPO)
	assert.Equal(t, "40", tk.Rate.String())

	require.NoError(t, json.Unmarshal([]byte(`{"cliente":"Eurospec","issue":"Sorteo","ocRequerida":false}`), &r))
	assert.False(t, r.ToEntity().RequiresPO)
}

func TestWeekCreateRequest_FlatDocuments(t *testing.T) {
	var r WeekCreateRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"id":"SEM-06-EM","proyecto":"EM26-01","semana":"S06",
		"horasTotal":40,"tarifa":"$40/hr","pod":true,"firma":true,"oc":" PO-31764 "
	}`), &r))

	w := r.ToEntity()
	assert.True(t, w.Documents.POD.Present)
	assert.False(t, w.Documents.Report.Present)
	assert.True(t, w.Documents.PurchaseOrder.Present)
	assert.Equal(t, "PO-31764", w.Documents.PurchaseOrder.Number)
	assert.Equal(t, "40", w.Rate.String())
}

func TestAttachDocumentRequest_DefaultsPresent(t *testing.T) {
	kind, slot := AttachDocumentRequest{Kind: "pod"}.ToSlot()
	assert.Equal(t, entities.DocumentPOD, kind)
	assert.True(t, slot.Present)

	absent := false
	_, slot = AttachDocumentRequest{Kind: "pod", Present: &absent}.ToSlot()
	assert.False(t, slot.Present)
}
