package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/larifa/raffles-api/internal/api/handler/v1/response"
	"github.com/larifa/raffles-api/internal/domain"
	"github.com/larifa/raffles-api/internal/service"
)

const qrImageEndpoint = "https://api.qrserver.com/v1/create-qr-code/?size=100x100&data="

type TicketService interface {
	VerifyTicket(ctx context.Context, qrCode uuid.UUID) (domain.Ticket, error)
}

type TicketHandler struct {
	svc TicketService
}

func NewTicketHandler(svc TicketService) *TicketHandler {
	return &TicketHandler{
		svc: svc,
	}
}

// HandleVerifyTicket godoc
// @Summary      Verify a ticket by its QR token
// @Tags         tickets
// @Produce      json
// @Param        qrCode  path      string  true  "verification token (UUID)"
// @Success      200     {object}  response.TicketVerificationResponse
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /tickets/verify/{qrCode} [get]
func (h *TicketHandler) HandleVerifyTicket(ctx *gin.Context) {
	qrCode, err := uuid.Parse(ctx.Param("qrCode"))
	if err != nil {
		response.RenderErr(ctx, response.ErrNotFound("ticket not found"))
		return
	}

	ticket, err := h.svc.VerifyTicket(ctx.Request.Context(), qrCode)
	if err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("ticket not found"))
			return
		}

		err = fmt.Errorf("v1.HandleVerifyTicket -> h.svc.VerifyTicket -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.TicketVerificationResponse{
		Valid:        true,
		TicketNumber: ticket.TicketNumber,
		Raffle:       ticket.Raffle.Name,
		Year:         ticket.Raffle.Year,
		Customer:     ticket.Customer.FirstName,
		SoldAt:       ticket.SoldAt,
		QRImageURL:   qrImageURL(ctx, ticket.QRCode),
	})
}

// qrImageURL builds the external QR image link for a ticket's
// verification page. Image generation stays delegated to the external
// service; only the URL is constructed here.
func qrImageURL(ctx *gin.Context, qrCode uuid.UUID) string {
	scheme := "http"
	if ctx.Request.TLS != nil {
		scheme = "https"
	}

	verifyURL := fmt.Sprintf("%v://%v/api/tickets/verify/%v", scheme, ctx.Request.Host, qrCode)

	return qrImageEndpoint + url.QueryEscape(verifyURL)
}
