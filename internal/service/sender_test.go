package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/esteria/esteria-go/internal/config"
	"github.com/esteria/esteria-go/internal/constants"
	"github.com/esteria/esteria-go/internal/metrics"
	"github.com/esteria/esteria-go/internal/mocks"
	"github.com/esteria/esteria-go/internal/service"
	"github.com/esteria/esteria-go/pkg/esteria"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	return &config.Config{
		Provider: esteria.Config{
			BaseURL:  "https://gateway.esteria.test",
			APIKey:   "secret-key",
			Sender:   "ESTERIA",
			Timeout:  time.Second,
			MaxRetry: 3,
		},
	}
}

func newSender(gateway *mocks.GatewayClient) service.SenderService {
	m := metrics.NewMetrics(prometheus.NewRegistry())
	return service.NewSenderService(gateway, zap.NewNop(), m, testConfig())
}

func TestSender_SendWithRetry(t *testing.T) {
	cmd := service.SendSMSCommand{
		ToNumber: "+15551234567",
		Text:     "hello",
		UserKey:  "track-42",
	}

	t.Run("success on first attempt", func(t *testing.T) {
		mockGateway := &mocks.GatewayClient{}
		svc := newSender(mockGateway)

		mockGateway.On("Send", mock.Anything, mock.AnythingOfType("*esteria.Request")).
			Return(4521, nil).Once()

		result, err := svc.SendWithRetry(context.Background(), cmd)

		require.NoError(t, err)
		assert.Equal(t, 4521, result.MessageID)
		assert.Equal(t, "track-42", result.UserKey)
		mockGateway.AssertExpectations(t)
	})

	t.Run("request built from command and config defaults", func(t *testing.T) {
		mockGateway := &mocks.GatewayClient{}
		svc := newSender(mockGateway)

		mockGateway.On("Send", mock.Anything, mock.MatchedBy(func(req *esteria.Request) bool {
			params := req.Params()
			return params.Get("api-key") == "secret-key" &&
				params.Get("sender") == "ESTERIA" &&
				params.Get("number") == "15551234567" &&
				params.Get("text") == "hello" &&
				params.Get("user-key") == "track-42" &&
				params.Get("coding") == "1"
		})).Return(4521, nil).Once()

		_, err := svc.SendWithRetry(context.Background(), cmd)

		require.NoError(t, err)
		mockGateway.AssertExpectations(t)
	})

	t.Run("gateway rejection is not retried", func(t *testing.T) {
		mockGateway := &mocks.GatewayClient{}
		svc := newSender(mockGateway)

		rejection := &esteria.SendError{Number: "+15551234567", Message: "invalid NUMBER parameter"}
		mockGateway.On("Send", mock.Anything, mock.AnythingOfType("*esteria.Request")).
			Return(0, rejection).Once()

		_, err := svc.SendWithRetry(context.Background(), cmd)

		var serviceErr service.Error
		require.ErrorAs(t, err, &serviceErr)
		assert.Equal(t, constants.ErrCodeSendRejected, serviceErr.Code)

		var sendErr *esteria.SendError
		assert.ErrorAs(t, err, &sendErr)

		mockGateway.AssertExpectations(t)
		mockGateway.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("transport failure retried until success", func(t *testing.T) {
		mockGateway := &mocks.GatewayClient{}
		svc := newSender(mockGateway)

		transportErr := &esteria.RequestError{Err: errors.New("connection refused")}
		mockGateway.On("Send", mock.Anything, mock.AnythingOfType("*esteria.Request")).
			Return(0, transportErr).Once()
		mockGateway.On("Send", mock.Anything, mock.AnythingOfType("*esteria.Request")).
			Return(4522, nil).Once()

		result, err := svc.SendWithRetry(context.Background(), cmd)

		require.NoError(t, err)
		assert.Equal(t, 4522, result.MessageID)
		mockGateway.AssertNumberOfCalls(t, "Send", 2)
	})

	t.Run("retries exhausted", func(t *testing.T) {
		mockGateway := &mocks.GatewayClient{}
		svc := newSender(mockGateway)

		transportErr := &esteria.RequestError{Err: errors.New("connection refused")}
		mockGateway.On("Send", mock.Anything, mock.AnythingOfType("*esteria.Request")).
			Return(0, transportErr)

		_, err := svc.SendWithRetry(context.Background(), cmd)

		var serviceErr service.Error
		require.ErrorAs(t, err, &serviceErr)
		assert.Equal(t, constants.ErrCodeGatewayUnavailable, serviceErr.Code)

		mockGateway.AssertNumberOfCalls(t, "Send", 3)
	})

	t.Run("invalid command rejected before any attempt", func(t *testing.T) {
		mockGateway := &mocks.GatewayClient{}
		svc := newSender(mockGateway)

		_, err := svc.SendWithRetry(context.Background(), service.SendSMSCommand{ToNumber: "+15551234567"})

		var serviceErr service.Error
		require.ErrorAs(t, err, &serviceErr)
		assert.Equal(t, constants.ErrCodeValidationFailed, serviceErr.Code)
		assert.ErrorIs(t, err, esteria.ErrEmptyField)

		mockGateway.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("optional attributes forwarded to request", func(t *testing.T) {
		mockGateway := &mocks.GatewayClient{}
		svc := newSender(mockGateway)

		scheduled := time.Date(2024, 5, 17, 9, 30, 45, 0, time.UTC)
		expiry := 60
		encoding := esteria.EncodingUDH

		fullCmd := service.SendSMSCommand{
			Sender:        "CUSTOM",
			ToNumber:      "+15551234567",
			Text:          "hello",
			ScheduledAt:   &scheduled,
			DLRURL:        "https://example.com/dlr",
			ExpiryMinutes: &expiry,
			Flags:         esteria.FlagNoLog | esteria.FlagFlash,
			UserKey:       "track-42",
			Encoding:      &encoding,
		}

		mockGateway.On("Send", mock.Anything, mock.MatchedBy(func(req *esteria.Request) bool {
			params := req.Params()
			return params.Get("sender") == "CUSTOM" &&
				params.Get("time") == "2024-05-17T09:30:45" &&
				params.Get("dlr-url") == "https://example.com/dlr" &&
				params.Get("expired") == "60" &&
				params.Get("flag-nolog") == "3" &&
				params.Get("flag-flash") == "1" &&
				params.Get("udh") == "1" &&
				params.Get("coding") == "1"
		})).Return(4523, nil).Once()

		_, err := svc.SendWithRetry(context.Background(), fullCmd)

		require.NoError(t, err)
		mockGateway.AssertExpectations(t)
	})
}
