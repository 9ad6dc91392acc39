package handlers

import (
	"errors"
	"net/http"

	"stayfront/models"
	"stayfront/services/booking"
	"stayfront/upstream"
	"stayfront/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler owns the booking form surface: it binds the guest's draft,
// delegates to the orchestrator and maps the outcome to exactly one of an
// error body or a confirmation body.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// SubmitBooking runs the gateway-mediated path.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var draft models.BookingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft.PaymentMode = booking.PaymentModeGateway
	h.submit(c, draft)
}

// BookDirect runs the legacy direct card path.
func (h *BookingHandler) BookDirect(c *gin.Context) {
	var draft models.BookingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft.PaymentMode = booking.PaymentModeDirect
	h.submit(c, draft)
}

func (h *BookingHandler) submit(c *gin.Context, draft models.BookingDraft) {
	out, err := h.Svc.Submit(c.Request.Context(), draft)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, out)
}

// statusForError maps orchestrator and upstream failures onto response
// codes. The error message itself is always passed through verbatim.
func statusForError(err error) int {
	var flowErr *booking.FlowError
	if errors.As(err, &flowErr) {
		switch flowErr.Stage {
		case booking.StageValidating:
			return http.StatusBadRequest
		case booking.StageConfirmingCard:
			if apiStatus, ok := apiErrorStatus(err); ok {
				return apiStatus
			}
			return http.StatusPaymentRequired
		}
	}
	if apiStatus, ok := apiErrorStatus(err); ok {
		return apiStatus
	}
	return http.StatusInternalServerError
}

func apiErrorStatus(err error) (int, bool) {
	var apiErr *upstream.APIError
	if !errors.As(err, &apiErr) {
		return 0, false
	}
	if apiErr.Status >= 400 && apiErr.Status < 500 {
		return apiErr.Status, true
	}
	return http.StatusBadGateway, true
}
