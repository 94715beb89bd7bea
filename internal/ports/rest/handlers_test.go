package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"partner-trx-api/internal/domain"
	handler_mocks "partner-trx-api/internal/ports/rest/mocks"
	"partner-trx-api/pkg/e"
	"partner-trx-api/pkg/logger"
	"partner-trx-api/tests"
)

func setupHandlerTest(t *testing.T) (*Handler, *handler_mocks.MockPaymentValidator, *handler_mocks.MockTransactionValidator, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockPayments := handler_mocks.NewMockPaymentValidator(ctrl)
	mockTransactions := handler_mocks.NewMockTransactionValidator(ctrl)
	handler := NewHandler(logger.SetupPrettySlog(), mockPayments, mockTransactions)

	return handler, mockPayments, mockTransactions, ctrl
}

func performRequest(handler *Handler, target string, body []byte) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	r.POST("/api/payment/validate", handler.ValidatePayment)
	r.POST("/api/transaction", handler.SubmitTransaction)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", target, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	return w
}

func TestSubmitTransactionHandler(t *testing.T) {
	amount := int64(150)
	zero := int64(0)

	testCases := []struct {
		name               string
		response           domain.TransactionResponse
		serviceErr         error
		expectedStatusCode int
		expectedResponse   string
	}{
		{
			name:               "OK",
			response:           domain.TransactionResponse{Result: 1, TotalAmount: &amount, TotalDiscount: &zero, FinalAmount: &amount},
			serviceErr:         nil,
			expectedStatusCode: http.StatusOK,
			expectedResponse:   `{"result":1,"totalAmount":150,"totalDiscount":0,"finalAmount":150}`,
		},
		{
			name:               "Missing field",
			response:           domain.TransactionResponse{Result: 0, ResultMessage: "sig is required."},
			serviceErr:         e.ErrFieldMissing,
			expectedStatusCode: http.StatusBadRequest,
			expectedResponse:   `{"result":0,"resultMessage":"sig is required."}`,
		},
		{
			name:               "Access denied",
			response:           domain.TransactionResponse{Result: 0, ResultMessage: "Access Denied!"},
			serviceErr:         e.ErrUnauthorized,
			expectedStatusCode: http.StatusUnauthorized,
			expectedResponse:   `{"result":0,"resultMessage":"Access Denied!"}`,
		},
		{
			name:               "Signature mismatch",
			response:           domain.TransactionResponse{Result: 0, ResultMessage: "Access Denied!"},
			serviceErr:         e.ErrSignatureMismatch,
			expectedStatusCode: http.StatusUnauthorized,
			expectedResponse:   `{"result":0,"resultMessage":"Access Denied!"}`,
		},
		{
			name:               "Internal error",
			response:           domain.TransactionResponse{Result: 0, ResultMessage: "Internal Server Error"},
			serviceErr:         e.ErrInternal,
			expectedStatusCode: http.StatusInternalServerError,
			expectedResponse:   `{"result":0,"resultMessage":"Internal Server Error"}`,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			handler, _, mockTransactions, ctrl := setupHandlerTest(t)
			defer ctrl.Finish()

			inputTrx := tests.SignedTrxInstance(tests.ServerTime)
			mockTransactions.EXPECT().Submit(gomock.Any(), inputTrx).Return(testCase.response, testCase.serviceErr)

			body, err := json.Marshal(inputTrx)
			assert.NoError(t, err)

			w := performRequest(handler, "/api/transaction", body)

			assert.Equal(t, testCase.expectedStatusCode, w.Code)
			assert.JSONEq(t, testCase.expectedResponse, w.Body.String())
		})
	}
}

func TestSubmitTransactionHandler_BadBody(t *testing.T) {
	handler, _, _, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	w := performRequest(handler, "/api/transaction", []byte("this is not json"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"result":0,"resultMessage":"invalid request body"}`, w.Body.String())
}

func TestValidatePaymentHandler_OK(t *testing.T) {
	handler, mockPayments, _, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	total := decimal.NewFromInt(905)
	discountAmount := decimal.NewFromInt(181)
	final := decimal.NewFromInt(724)
	percent := decimal.NewFromInt(20)

	mockPayments.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(domain.PaymentResponse{
		Result:                 1,
		TotalAmount:            &total,
		TotalDiscount:          &discountAmount,
		FinalAmount:            &final,
		AppliedDiscountPercent: &percent,
		ServerTime:             "2025-06-15T10:30:00Z",
		RequestTime:            "2025-06-15T10:30:00Z",
	}, nil)

	body, err := json.Marshal(tests.PaymentInstance)
	assert.NoError(t, err)

	w := performRequest(handler, "/api/payment/validate", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"result": 1,
		"totalamount": "905",
		"totaldiscount": "181",
		"finalamount": "724",
		"appliedDiscountPercent": "20",
		"serverTime": "2025-06-15T10:30:00Z",
		"requestTime": "2025-06-15T10:30:00Z",
		"diffMinutes": 0
	}`, w.Body.String())
}

func TestValidatePaymentHandler_InternalError(t *testing.T) {
	handler, mockPayments, _, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockPayments.EXPECT().Validate(gomock.Any(), gomock.Any()).
		Return(domain.PaymentResponse{Result: 0, Message: "Internal Server Error"}, e.ErrInternal)

	body, err := json.Marshal(tests.PaymentInstance)
	assert.NoError(t, err)

	w := performRequest(handler, "/api/payment/validate", body)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"result":0,"message":"Internal Server Error","diffMinutes":0}`, w.Body.String())
}

func TestValidatePaymentHandler_BadBody(t *testing.T) {
	handler, _, _, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	w := performRequest(handler, "/api/payment/validate", []byte(`{"totalamount": {}}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"result":0,"message":"invalid request body","diffMinutes":0}`, w.Body.String())
}
