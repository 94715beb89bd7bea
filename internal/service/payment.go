package service

import (
	"context"
	"log/slog"
	"time"

	"partner-trx-api/internal/discount"
	"partner-trx-api/internal/domain"
	"partner-trx-api/pkg/e"
	"partner-trx-api/pkg/hashing"
)

//go:generate mockgen -source=payment.go -destination=mocks/mock.go

// Clock abstracts server time so freshness checks are testable.
type Clock interface {
	Now() time.Time
}

// OutcomePublisher is the best-effort side channel for validation
// outcomes. Implementations must never block the request path.
type OutcomePublisher interface {
	Publish(ctx context.Context, event domain.OutcomeEvent)
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func RealClock() Clock { return realClock{} }

const (
	MsgExpired       = "Expired. Provided timestamp exceed server time ±5min"
	MsgInternalError = "Internal Server Error"
)

// PaymentService is the relaxed validator: freshness check plus discount,
// no partner authentication.
type PaymentService struct {
	logger    *slog.Logger
	clock     Clock
	window    time.Duration
	publisher OutcomePublisher
}

func NewPaymentService(logger *slog.Logger, clock Clock, window time.Duration, publisher OutcomePublisher) *PaymentService {
	return &PaymentService{
		logger:    logger,
		clock:     clock,
		window:    window,
		publisher: publisher,
	}
}

// Validate runs the relaxed pipeline: mask password, normalize the
// timestamp to UTC, check freshness, compute the discount. All validation
// outcomes come back as a response value; the error is non-nil only for an
// unexpected internal fault, which is reported generically.
func (s *PaymentService) Validate(ctx context.Context, req *domain.PaymentRequest) (resp domain.PaymentResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("unexpected failure while validating payment request",
				slog.Any("panic", r),
				slog.String("partnerrefno", req.PartnerRefNo),
			)
			resp = domain.PaymentResponse{Result: 0, Message: MsgInternalError}
			err = e.ErrInternal
		}
	}()

	// The caller must never observe plaintext after this point.
	if req.Password != "" {
		req.Password = hashing.MaskPassword(req.Password)
	}
	s.logger.Info("incoming payment request", slog.Any("request", *req))

	requestUTC := req.Timestamp.UTC()
	serverUTC := s.clock.Now().UTC()

	diff := serverUTC.Sub(requestUTC)
	if diff < 0 {
		diff = -diff
	}
	diffMinutes := diff.Minutes()

	if diff > s.window {
		resp = domain.PaymentResponse{
			Result:      0,
			Message:     MsgExpired,
			ServerTime:  serverUTC.Format(time.RFC3339Nano),
			RequestTime: requestUTC.Format(time.RFC3339Nano),
			DiffMinutes: diffMinutes,
		}
		s.logger.Warn("expired payment request",
			slog.String("partnerrefno", req.PartnerRefNo),
			slog.Time("requestTime", requestUTC),
			slog.Time("serverTime", serverUTC),
			slog.Float64("diffMinutes", diffMinutes),
		)
		s.publish(ctx, domain.OutcomeEvent{
			Path:         "payment",
			PartnerRefNo: req.PartnerRefNo,
			Outcome:      "expired",
			Message:      MsgExpired,
			TotalAmount:  req.TotalAmount.String(),
			At:           serverUTC,
		})
		return resp, nil
	}

	res := discount.Calculate(req.TotalAmount)

	resp = domain.PaymentResponse{
		Result:                 1,
		TotalAmount:            &req.TotalAmount,
		TotalDiscount:          &res.Discount,
		FinalAmount:            &res.Final,
		AppliedDiscountPercent: &res.Percent,
		ServerTime:             serverUTC.Format(time.RFC3339Nano),
		RequestTime:            requestUTC.Format(time.RFC3339Nano),
		DiffMinutes:            diffMinutes,
	}

	s.logger.Info("payment request validated",
		slog.String("partnerrefno", req.PartnerRefNo),
		slog.String("totalamount", req.TotalAmount.String()),
		slog.String("appliedDiscountPercent", res.Percent.String()),
		slog.String("finalamount", res.Final.String()),
	)
	s.publish(ctx, domain.OutcomeEvent{
		Path:         "payment",
		PartnerRefNo: req.PartnerRefNo,
		Outcome:      "success",
		TotalAmount:  req.TotalAmount.String(),
		At:           serverUTC,
	})

	return resp, nil
}

func (s *PaymentService) publish(ctx context.Context, event domain.OutcomeEvent) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(ctx, event)
}
