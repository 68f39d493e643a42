package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larifa/raffles-api/internal/domain"
	"github.com/larifa/raffles-api/internal/service"
)

type fakeDolibarrService struct {
	integration    domain.Integration
	integrationErr error

	result     domain.IssuanceResult
	processErr error

	gotInvoice domain.Invoice
	processed  bool
}

func (f *fakeDolibarrService) GetIntegration(_ context.Context) (domain.Integration, error) {
	return f.integration, f.integrationErr
}

func (f *fakeDolibarrService) ProcessInvoice(_ context.Context, _ domain.Integration, invoice domain.Invoice) (domain.IssuanceResult, error) {
	f.processed = true
	f.gotInvoice = invoice

	return f.result, f.processErr
}

func webhookRouter(svc DolibarrService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/api/dolibarr/webhook/", NewDolibarrHandler(svc).HandleWebhook)

	return router
}

func postWebhook(router *gin.Engine, authorization, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/dolibarr/webhook/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func testIntegration() domain.Integration {
	return domain.Integration{
		APIKey:           "secret-key-123",
		ActiveRaffle:     &domain.Raffle{ID: 1, Name: "Rifa 2024", Year: 2024},
		TicketsPerAmount: 1,
		AmountStep:       decimal.NewFromInt(100),
		IsActive:         true,
	}
}

const validBody = `{
	"customer_identification": "0912345678",
	"customer_name": "Juan Perez",
	"total_amount": 250.00,
	"ref": "INV-001"
}`

func TestHandleWebhook_Unauthorized(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		svc := &fakeDolibarrService{integration: testIntegration()}
		recorder := postWebhook(webhookRouter(svc), "", validBody)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, svc.processed)
	})

	t.Run("wrong key", func(t *testing.T) {
		svc := &fakeDolibarrService{integration: testIntegration()}
		recorder := postWebhook(webhookRouter(svc), "Bearer wrong-key", validBody)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, svc.processed)
	})

	t.Run("wrong key regardless of body", func(t *testing.T) {
		svc := &fakeDolibarrService{integration: testIntegration()}
		recorder := postWebhook(webhookRouter(svc), "Bearer wrong-key", `{not json`)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestHandleWebhook_BareTokenAccepted(t *testing.T) {
	svc := &fakeDolibarrService{
		integration: testIntegration(),
		result: domain.IssuanceResult{
			Customer:      "Juan Perez",
			Raffle:        "Rifa 2024",
			Ref:           "INV-001",
			TicketNumbers: []int{1, 2},
		},
	}
	recorder := postWebhook(webhookRouter(svc), "secret-key-123", validBody)

	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestHandleWebhook_IntegrationNotConfigured(t *testing.T) {
	svc := &fakeDolibarrService{integrationErr: service.ErrIntegrationNotConfigured}
	recorder := postWebhook(webhookRouter(svc), "Bearer secret-key-123", validBody)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "not configured")
}

func TestHandleWebhook_IntegrationDisabled(t *testing.T) {
	integration := testIntegration()
	integration.IsActive = false

	svc := &fakeDolibarrService{integration: integration}
	recorder := postWebhook(webhookRouter(svc), "Bearer secret-key-123", validBody)

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.False(t, svc.processed)
}

func TestHandleWebhook_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "malformed JSON",
			body: `{not json at all`,
		},
		{
			name: "missing identification",
			body: `{"customer_name": "Juan Perez", "total_amount": 250.00}`,
		},
		{
			name: "missing amount",
			body: `{"customer_identification": "0912345678"}`,
		},
		{
			name: "non-numeric amount",
			body: `{"customer_identification": "0912345678", "total_amount": "lots"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeDolibarrService{integration: testIntegration()}
			recorder := postWebhook(webhookRouter(svc), "Bearer secret-key-123", tt.body)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.False(t, svc.processed)
		})
	}
}

func TestHandleWebhook_Duplicate(t *testing.T) {
	svc := &fakeDolibarrService{
		integration: testIntegration(),
		processErr: &service.DuplicateTransactionError{
			Ref:              "INV-001",
			TicketsGenerated: 2,
		},
	}
	recorder := postWebhook(webhookRouter(svc), "Bearer secret-key-123", validBody)

	assert.Equal(t, http.StatusConflict, recorder.Code)

	var body struct {
		Error                      string `json:"error"`
		Ref                        string `json:"ref"`
		TicketsPreviouslyGenerated int    `json:"tickets_previously_generated"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error)
	assert.Equal(t, "INV-001", body.Ref)
	assert.Equal(t, 2, body.TicketsPreviouslyGenerated)
}

func TestHandleWebhook_ConfigurationErrors(t *testing.T) {
	for _, processErr := range []error{service.ErrNoActiveRaffle, service.ErrInvalidAmountStep} {
		svc := &fakeDolibarrService{
			integration: testIntegration(),
			processErr:  processErr,
		}
		recorder := postWebhook(webhookRouter(svc), "Bearer secret-key-123", validBody)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	}
}

func TestHandleWebhook_InternalError(t *testing.T) {
	svc := &fakeDolibarrService{
		integration: testIntegration(),
		processErr:  errors.New("connection reset"),
	}
	recorder := postWebhook(webhookRouter(svc), "Bearer secret-key-123", validBody)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.NotContains(t, body["error"], "connection reset")
}

func TestHandleWebhook_BelowThreshold(t *testing.T) {
	svc := &fakeDolibarrService{integration: testIntegration()}
	body := `{"customer_identification": "0912345678", "total_amount": 50.00}`
	recorder := postWebhook(webhookRouter(svc), "Bearer secret-key-123", body)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Message          string          `json:"message"`
		TicketsGenerated int             `json:"tickets_generated"`
		AmountReceived   decimal.Decimal `json:"amount_received"`
		AmountRequired   decimal.Decimal `json:"amount_required"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.TicketsGenerated)
	assert.True(t, resp.AmountReceived.Equal(decimal.NewFromInt(50)))
	assert.True(t, resp.AmountRequired.Equal(decimal.NewFromInt(100)))
}

func TestHandleWebhook_Success(t *testing.T) {
	svc := &fakeDolibarrService{
		integration: testIntegration(),
		result: domain.IssuanceResult{
			Customer:      "Juan Perez",
			Raffle:        "Rifa 2024",
			Ref:           "INV-001",
			TicketNumbers: []int{1, 2},
		},
	}
	recorder := postWebhook(webhookRouter(svc), "Bearer secret-key-123", validBody)

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var resp struct {
		Message          string `json:"message"`
		Customer         string `json:"customer"`
		TicketsGenerated int    `json:"tickets_generated"`
		TicketNumbers    []int  `json:"ticket_numbers"`
		Raffle           string `json:"raffle"`
		Ref              string `json:"ref"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "Juan Perez", resp.Customer)
	assert.Equal(t, 2, resp.TicketsGenerated)
	assert.Equal(t, []int{1, 2}, resp.TicketNumbers)
	assert.Equal(t, "Rifa 2024", resp.Raffle)
	assert.Equal(t, "INV-001", resp.Ref)

	assert.Equal(t, "0912345678", svc.gotInvoice.Identification)
	assert.Equal(t, "Juan Perez", svc.gotInvoice.CustomerName)
	assert.True(t, svc.gotInvoice.TotalAmount.Equal(decimal.RequireFromString("250.00")))
}

func TestHandleWebhook_CustomerIDFallback(t *testing.T) {
	svc := &fakeDolibarrService{
		integration: testIntegration(),
		result: domain.IssuanceResult{
			Customer:      "Unknown",
			Raffle:        "Rifa 2024",
			TicketNumbers: []int{1},
		},
	}
	body := `{"customer_id": 7, "total_amount": 100.00}`
	recorder := postWebhook(webhookRouter(svc), "Bearer secret-key-123", body)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "7", svc.gotInvoice.Identification)
	assert.Equal(t, "7", svc.gotInvoice.SourceID)
}

func TestHandleWebhook_FactureIDForwarded(t *testing.T) {
	svc := &fakeDolibarrService{
		integration: testIntegration(),
		result: domain.IssuanceResult{
			Customer:      "Juan Perez",
			Raffle:        "Rifa 2024",
			Ref:           "FA-001",
			TicketNumbers: []int{1, 2},
		},
	}
	body := `{
		"customer_identification": "0912345678",
		"total_amount": 200.00,
		"ref": "FA-001",
		"facture_id": 42
	}`
	recorder := postWebhook(webhookRouter(svc), "Bearer secret-key-123", body)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "42", svc.gotInvoice.FactureID)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{header: "Bearer secret-key-123", want: "secret-key-123", ok: true},
		{header: "secret-key-123", want: "secret-key-123", ok: true},
		{header: "Bearer  secret-key-123 ", want: "secret-key-123", ok: true},
		{header: "", ok: false},
		{header: "   ", ok: false},
		{header: "Bearer ", ok: false},
	}

	for _, tt := range tests {
		got, ok := bearerToken(tt.header)

		assert.Equal(t, tt.ok, ok, "header %q", tt.header)
		assert.Equal(t, tt.want, got, "header %q", tt.header)
	}
}
