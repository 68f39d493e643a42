package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/larifa/raffles-api/internal/api/handler/v1/request"
	"github.com/larifa/raffles-api/internal/api/handler/v1/response"
	"github.com/larifa/raffles-api/internal/domain"
	"github.com/larifa/raffles-api/internal/metrics"
	"github.com/larifa/raffles-api/internal/service"
)

type DolibarrService interface {
	GetIntegration(ctx context.Context) (domain.Integration, error)
	ProcessInvoice(ctx context.Context, integration domain.Integration, invoice domain.Invoice) (domain.IssuanceResult, error)
}

type DolibarrHandler struct {
	svc DolibarrService
}

func NewDolibarrHandler(svc DolibarrService) *DolibarrHandler {
	return &DolibarrHandler{
		svc: svc,
	}
}

// HandleWebhook godoc
// @Summary      Process a Dolibarr invoice-validation webhook
// @Description  Mints raffle tickets for a paid invoice. Replays of an already processed ref or facture_id are answered with 409 and the original ticket count.
// @Tags         dolibarr
// @Accept       json
// @Produce      json
// @Param        request  body      request.DolibarrWebhookRequest  true  "invoice payload"
// @Success      200      {object}  response.WebhookBelowThresholdResponse
// @Success      201      {object}  response.WebhookCreatedResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      409      {object}  response.WebhookDuplicateResponse
// @Failure      500      {object}  response.Err
// @Failure      503      {object}  response.Err
// @Router       /dolibarr/webhook/ [post]
// @Security     IntegrationKey
func (h *DolibarrHandler) HandleWebhook(ctx *gin.Context) {
	defer func() {
		metrics.WebhookRequests.WithLabelValues(strconv.Itoa(ctx.Writer.Status())).Inc()
	}()

	token, ok := bearerToken(ctx.GetHeader("Authorization"))
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized("missing or invalid authorization header"))
		return
	}

	// The configuration is read fresh on every delivery so key
	// rotations and raffle switches apply immediately.
	integration, err := h.svc.GetIntegration(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrIntegrationNotConfigured) {
			response.RenderErr(ctx, response.ErrConfiguration("dolibarr integration is not configured"))
			return
		}

		err = fmt.Errorf("v1.HandleWebhook -> h.svc.GetIntegration -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if !integration.IsActive {
		response.RenderErr(ctx, response.ErrServiceUnavailable("dolibarr integration is disabled"))
		return
	}

	if token != strings.TrimSpace(integration.APIKey) {
		response.RenderErr(ctx, response.ErrUnauthorized("invalid API key"))
		return
	}

	var req request.DolibarrWebhookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	invoice := domain.Invoice{
		Ref:             strings.TrimSpace(req.Ref),
		FactureID:       strings.TrimSpace(string(req.FactureID)),
		Identification:  req.Identification(),
		SourceID:        string(req.CustomerID),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		TotalAmount:     *req.TotalAmount,
	}

	result, err := h.svc.ProcessInvoice(ctx.Request.Context(), integration, invoice)
	if err != nil {
		var duplicate *service.DuplicateTransactionError
		switch {
		case errors.As(err, &duplicate):
			metrics.DuplicateDeliveries.Inc()
			ctx.JSON(http.StatusConflict, response.WebhookDuplicateResponse{
				Error:                      "transaction already processed",
				Ref:                        duplicate.Ref,
				TicketsPreviouslyGenerated: duplicate.TicketsGenerated,
			})

		case errors.Is(err, service.ErrNoActiveRaffle):
			response.RenderErr(ctx, response.ErrConfiguration("no active raffle configured"))

		case errors.Is(err, service.ErrInvalidAmountStep):
			response.RenderErr(ctx, response.ErrConfiguration("amount_step must be positive"))

		default:
			err = fmt.Errorf("v1.HandleWebhook -> h.svc.ProcessInvoice -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	if result.TicketsGenerated() == 0 {
		ctx.JSON(http.StatusOK, response.WebhookBelowThresholdResponse{
			Message:          "amount below minimum, no tickets generated",
			TicketsGenerated: 0,
			AmountReceived:   invoice.TotalAmount,
			AmountRequired:   integration.AmountStep,
		})
		return
	}

	metrics.TicketsIssued.Add(float64(result.TicketsGenerated()))
	ctx.JSON(http.StatusCreated, response.WebhookCreatedResponse{
		Message:          "tickets generated successfully",
		Customer:         result.Customer,
		TicketsGenerated: result.TicketsGenerated(),
		TicketNumbers:    result.TicketNumbers,
		Raffle:           result.Raffle,
		Ref:              result.Ref,
	})
}

// bearerToken extracts the integration key from the Authorization
// header, accepting both "Bearer <key>" and the bare key.
func bearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}

	if token, found := strings.CutPrefix(header, "Bearer "); found {
		token = strings.TrimSpace(token)
		if token == "" {
			return "", false
		}

		return token, true
	}

	return header, true
}
