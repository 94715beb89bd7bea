package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"partner-trx-api/internal/domain"
	"partner-trx-api/pkg/e"
)

// @title Partner Transaction Validation Api
// @version 1
//
//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type PaymentValidator interface {
	Validate(ctx context.Context, req *domain.PaymentRequest) (domain.PaymentResponse, error)
}

type TransactionValidator interface {
	Submit(ctx context.Context, req domain.TransactionRequest) (domain.TransactionResponse, error)
}

var requestsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "validation_requests_total",
	Help: "Total number of validation requests by path and outcome",
}, []string{"path", "outcome"})

type Handler struct {
	payments     PaymentValidator
	transactions TransactionValidator
	logger       *slog.Logger
}

func NewHandler(logger *slog.Logger, payments PaymentValidator, transactions TransactionValidator) *Handler {
	return &Handler{
		payments:     payments,
		transactions: transactions,
		logger:       logger,
	}
}

// ValidatePayment godoc
// @Summary Validate a payment request
// @Description Relaxed validation: freshness check plus tiered discount computation.
// @ID validate-payment
// @Accept  json
// @Produce  json
// @Param payment body domain.PaymentRequest true "Payment request"
// @Success 200 {object} domain.PaymentResponse "Validation outcome, accepted or expired"
// @Failure 400 {object} domain.PaymentResponse "Malformed request body"
// @Failure 500 {object} domain.PaymentResponse "Internal server error"
// @Router /api/payment/validate [post]
func (h *Handler) ValidatePayment(c *gin.Context) {
	var req domain.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("failed to bind payment request", slog.String("error", err.Error()))
		requestsCounter.WithLabelValues("payment", "bad_request").Inc()
		c.JSON(http.StatusBadRequest, domain.PaymentResponse{Result: 0, Message: "invalid request body"})
		return
	}

	resp, err := h.payments.Validate(c, &req)
	if err != nil {
		requestsCounter.WithLabelValues("payment", "internal_error").Inc()
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	if resp.Result == 1 {
		requestsCounter.WithLabelValues("payment", "success").Inc()
	} else {
		requestsCounter.WithLabelValues("payment", "expired").Inc()
	}
	// expired requests still answer 200 with result=0
	c.JSON(http.StatusOK, resp)
}

// SubmitTransaction godoc
// @Summary Submit a partner transaction
// @Description Strict validation: mandatory fields, partner credential, freshness, item reconciliation and signature.
// @ID submit-transaction
// @Accept  json
// @Produce  json
// @Param transaction body domain.TransactionRequest true "Partner transaction"
// @Success 200 {object} domain.TransactionResponse "Transaction accepted"
// @Failure 400 {object} domain.TransactionResponse "Validation failure"
// @Failure 401 {object} domain.TransactionResponse "Access denied"
// @Failure 500 {object} domain.TransactionResponse "Internal server error"
// @Router /api/transaction [post]
func (h *Handler) SubmitTransaction(c *gin.Context) {
	var req domain.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("failed to bind transaction request", slog.String("error", err.Error()))
		requestsCounter.WithLabelValues("transaction", "bad_request").Inc()
		c.JSON(http.StatusBadRequest, domain.TransactionResponse{Result: 0, ResultMessage: "invalid request body"})
		return
	}

	resp, err := h.transactions.Submit(c, req)

	requestsCounter.WithLabelValues("transaction", outcomeLabel(err)).Inc()
	c.JSON(statusFor(err), resp)
}

func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, e.ErrUnauthorized), errors.Is(err, e.ErrSignatureMismatch):
		return http.StatusUnauthorized
	case errors.Is(err, e.ErrInternal):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, e.ErrFieldMissing):
		return "field_missing"
	case errors.Is(err, e.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, e.ErrInvalidTimestamp):
		return "invalid_timestamp"
	case errors.Is(err, e.ErrExpired):
		return "expired"
	case errors.Is(err, e.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, e.ErrItemValidation):
		return "item_validation_failed"
	case errors.Is(err, e.ErrAmountMismatch):
		return "amount_mismatch"
	case errors.Is(err, e.ErrSignatureMismatch):
		return "signature_mismatch"
	default:
		return "internal_error"
	}
}
