package service

import (
	"context"
	"errors"
	"time"

	"github.com/esteria/esteria-go/internal/config"
	"github.com/esteria/esteria-go/internal/constants"
	"github.com/esteria/esteria-go/internal/metrics"
	"github.com/esteria/esteria-go/pkg/esteria"
	"go.uber.org/zap"
)

// SenderService wraps the gateway client with per-attempt timeouts and
// bounded retries. The client itself performs exactly one round trip per
// call; retry policy lives here.
type SenderService interface {
	SendWithRetry(ctx context.Context, cmd SendSMSCommand) (SendSMSResult, error)
}

type Sender struct {
	gateway esteria.Client
	logger  *zap.Logger
	metrics *metrics.Metrics
	config  esteria.Config
}

func NewSenderService(gateway esteria.Client, logger *zap.Logger, m *metrics.Metrics, cfg *config.Config) SenderService {
	providerCfg := cfg.Provider
	if providerCfg.MaxRetry < 1 {
		providerCfg.MaxRetry = 1
	}

	return &Sender{gateway: gateway, logger: logger, metrics: m, config: providerCfg}
}

func (s *Sender) SendWithRetry(ctx context.Context, cmd SendSMSCommand) (SendSMSResult, error) {
	request, err := s.buildRequest(cmd)
	if err != nil {
		return SendSMSResult{}, NewServiceError(constants.ErrCodeValidationFailed, err)
	}

	var lastErr error

	for attempt := 1; attempt <= s.config.MaxRetry; attempt++ {
		s.logger.Debug("Attempting to send SMS",
			zap.Int("attempt", attempt),
			zap.String("to", cmd.ToNumber))

		start := time.Now()
		gatewayCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
		messageID, err := s.gateway.Send(gatewayCtx, request)
		cancel()

		if err == nil {
			s.metrics.RecordSend(metrics.OutcomeSubmitted, time.Since(start))
			s.logger.Info("SMS sent successfully",
				zap.Int("messageId", messageID),
				zap.String("to", cmd.ToNumber),
				zap.Int("attempt", attempt))

			return SendSMSResult{MessageID: messageID, UserKey: cmd.UserKey}, nil
		}

		var sendErr *esteria.SendError
		if errors.As(err, &sendErr) {
			s.metrics.RecordSend(metrics.OutcomeRejected, time.Since(start))
			s.logger.Error("Gateway rejected message",
				zap.String("to", sendErr.Number),
				zap.String("reason", sendErr.Message),
				zap.Int("attempt", attempt))

			return SendSMSResult{}, NewServiceError(constants.ErrCodeSendRejected, err)
		}

		s.metrics.RecordSend(metrics.OutcomeTransportError, time.Since(start))
		lastErr = err
		s.logger.Warn("SMS send attempt failed",
			zap.Error(err),
			zap.Int("attempt", attempt),
			zap.String("to", cmd.ToNumber))

		if attempt < s.config.MaxRetry {
			s.metrics.SendRetries.Inc()
			delay := time.Duration(attempt) * 100 * time.Millisecond

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return SendSMSResult{}, NewServiceError(constants.ErrCodeGatewayUnavailable, ctx.Err())
			}
		}
	}

	s.logger.Error("All retry attempts exhausted",
		zap.Error(lastErr),
		zap.Int("maxRetries", s.config.MaxRetry),
		zap.String("to", cmd.ToNumber))

	return SendSMSResult{}, NewServiceError(constants.ErrCodeGatewayUnavailable, lastErr)
}

func (s *Sender) buildRequest(cmd SendSMSCommand) (*esteria.Request, error) {
	sender := cmd.Sender
	if sender == "" {
		sender = s.config.Sender
	}

	request, err := esteria.NewRequest(s.config.APIKey, sender, cmd.ToNumber, cmd.Text)
	if err != nil {
		return nil, err
	}

	if cmd.ScheduledAt != nil {
		request.WithTime(*cmd.ScheduledAt)
	}

	if cmd.DLRURL != "" {
		request.WithDLRURL(cmd.DLRURL)
	}

	if cmd.ExpiryMinutes != nil {
		request.WithExpiry(*cmd.ExpiryMinutes)
	}

	if cmd.Flags != 0 {
		request.WithFlags(cmd.Flags)
	}

	if cmd.UserKey != "" {
		request.WithUserKey(cmd.UserKey)
	}

	if cmd.Encoding != nil {
		request.WithEncoding(*cmd.Encoding)
	}

	return request, nil
}
