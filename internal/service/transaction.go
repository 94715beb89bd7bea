package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"partner-trx-api/internal/domain"
	"partner-trx-api/internal/signature"
	"partner-trx-api/pkg/e"
	"partner-trx-api/pkg/hashing"
)

//go:generate mockgen -source=transaction.go -destination=mocks/transaction_mock.go

// CredentialStore is the read-only partner credential registry.
type CredentialStore interface {
	Lookup(key string) (string, bool)
	Authenticate(key, passwordB64 string) bool
}

const (
	MsgAccessDenied       = "Access Denied!"
	MsgTrxExpired         = "Expired."
	MsgInvalidTimestamp   = "Invalid timestamp format."
	MsgAmountNotPositive  = "totalamount must be positive."
	MsgInvalidTotalAmount = "Invalid Total Amount."
)

// TransactionService is the strict validator: an ordered gate sequence
// where each gate short-circuits with its own rejection message.
type TransactionService struct {
	logger    *slog.Logger
	clock     Clock
	window    time.Duration
	partners  CredentialStore
	validate  *validator.Validate
	publisher OutcomePublisher
}

func NewTransactionService(logger *slog.Logger, clock Clock, window time.Duration, partners CredentialStore, publisher OutcomePublisher) *TransactionService {
	v := validator.New()

	// report wire names, not Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(e.Wrap("service.NewTransactionService: failed to register notblank", err))
	}

	return &TransactionService{
		logger:    logger,
		clock:     clock,
		window:    window,
		partners:  partners,
		validate:  v,
		publisher: publisher,
	}
}

// Submit runs the gate sequence: mandatory fields, partner credential,
// timestamp freshness, amount, item reconciliation, signature. The
// returned error is one of the pkg/e sentinels (nil on success) and is
// meant for status mapping and metrics, never for the response body.
func (s *TransactionService) Submit(ctx context.Context, req domain.TransactionRequest) (resp domain.TransactionResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("unexpected failure while processing transaction",
				slog.Any("panic", r),
				slog.String("partnerrefno", req.PartnerRefNo),
			)
			resp = reject(MsgInternalError)
			err = e.ErrInternal
		}
	}()

	s.logger.Info("new transaction request received", slog.Any("request", req))

	// 1. mandatory fields, first blank one wins
	if verr := s.validate.Struct(req); verr != nil {
		var verrs validator.ValidationErrors
		if !errors.As(verr, &verrs) || len(verrs) == 0 {
			return reject(MsgInternalError), e.ErrInternal
		}
		field := verrs[0].Field()
		s.logger.Warn("mandatory field is missing", slog.String("field", field))
		return s.rejected(ctx, req, fmt.Sprintf("%s is required.", field), e.ErrFieldMissing)
	}

	// 2. partner identity, same external message for both failure causes
	if _, ok := s.partners.Lookup(req.PartnerKey); !ok {
		s.logger.Warn("unauthorized partner key", slog.String("partnerkey", req.PartnerKey))
		return s.rejected(ctx, req, MsgAccessDenied, e.ErrUnauthorized)
	}
	if !s.partners.Authenticate(req.PartnerKey, req.PartnerPassword) {
		s.logger.Warn("invalid password for partner", slog.String("partnerkey", req.PartnerKey))
		return s.rejected(ctx, req, MsgAccessDenied, e.ErrUnauthorized)
	}

	// 3. timestamp freshness
	reqTime, perr := signature.ParseTimestamp(req.Timestamp)
	if perr != nil {
		s.logger.Warn("invalid timestamp format received", slog.String("timestamp", req.Timestamp))
		return s.rejected(ctx, req, MsgInvalidTimestamp, e.ErrInvalidTimestamp)
	}

	requestUTC := reqTime.UTC()
	serverUTC := s.clock.Now().UTC()
	diff := serverUTC.Sub(requestUTC)
	if diff < 0 {
		diff = -diff
	}
	if diff > s.window {
		s.logger.Warn("timestamp expired",
			slog.Time("requestTime", requestUTC),
			slog.Time("serverTime", serverUTC),
		)
		return s.rejected(ctx, req, MsgTrxExpired, e.ErrExpired)
	}

	// 4. amount validity
	if req.TotalAmount <= 0 {
		s.logger.Warn("invalid totalamount received", slog.Int64("totalamount", req.TotalAmount))
		return s.rejected(ctx, req, MsgAmountNotPositive, e.ErrInvalidAmount)
	}

	// 5. item reconciliation, skipped entirely when no items are supplied
	if len(req.Items) > 0 {
		var sum int64
		for _, item := range req.Items {
			if msg := validateItem(item); msg != "" {
				s.logger.Warn("invalid item detail",
					slog.String("partneritemref", item.PartnerItemRef),
					slog.String("reason", msg),
				)
				return s.rejected(ctx, req, msg, e.ErrItemValidation)
			}
			sum += item.Qty * item.UnitPrice
		}
		if sum != req.TotalAmount {
			s.logger.Warn("item total mismatch",
				slog.Int64("expected", sum),
				slog.Int64("received", req.TotalAmount),
			)
			return s.rejected(ctx, req, MsgInvalidTotalAmount, e.ErrAmountMismatch)
		}
	}

	// 6. signature
	if !signature.Verify(req) {
		s.logger.Warn("signature validation failed", slog.String("partnerkey", req.PartnerKey))
		return s.rejected(ctx, req, MsgAccessDenied, e.ErrSignatureMismatch)
	}

	s.logger.Info("transaction accepted",
		slog.String("partnerkey", req.PartnerKey),
		slog.String("partnerrefno", req.PartnerRefNo),
		slog.Int64("totalamount", req.TotalAmount),
		slog.String("password", hashing.ShortMask(req.PartnerPassword)),
	)
	s.publish(ctx, domain.OutcomeEvent{
		Path:         "transaction",
		PartnerKey:   req.PartnerKey,
		PartnerRefNo: req.PartnerRefNo,
		Outcome:      "success",
		TotalAmount:  strconv.FormatInt(req.TotalAmount, 10),
		At:           serverUTC,
	})

	amount := req.TotalAmount
	var zero int64
	return domain.TransactionResponse{
		Result:        1,
		TotalAmount:   &amount,
		TotalDiscount: &zero,
		FinalAmount:   &amount,
	}, nil
}

func validateItem(item domain.ItemDetail) string {
	switch {
	case strings.TrimSpace(item.PartnerItemRef) == "":
		return "partneritemref is required."
	case strings.TrimSpace(item.Name) == "":
		return "name is required."
	case item.Qty < 1 || item.Qty > 5:
		return "qty must be between 1 and 5."
	case item.UnitPrice <= 0:
		return "unitprice must be positive."
	}
	return ""
}

func reject(msg string) domain.TransactionResponse {
	return domain.TransactionResponse{Result: 0, ResultMessage: msg}
}

func (s *TransactionService) rejected(ctx context.Context, req domain.TransactionRequest, msg string, cause error) (domain.TransactionResponse, error) {
	s.publish(ctx, domain.OutcomeEvent{
		Path:         "transaction",
		PartnerKey:   req.PartnerKey,
		PartnerRefNo: req.PartnerRefNo,
		Outcome:      "rejected",
		Message:      msg,
		TotalAmount:  strconv.FormatInt(req.TotalAmount, 10),
		At:           s.clock.Now().UTC(),
	})
	return reject(msg), cause
}

func (s *TransactionService) publish(ctx context.Context, event domain.OutcomeEvent) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(ctx, event)
}
