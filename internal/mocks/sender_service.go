package mocks

import (
	"context"

	"github.com/esteria/esteria-go/internal/service"
	"github.com/stretchr/testify/mock"
)

type SenderService struct {
	mock.Mock
}

func (s *SenderService) SendWithRetry(ctx context.Context, cmd service.SendSMSCommand) (service.SendSMSResult, error) {
	args := s.Called(ctx, cmd)
	return args.Get(0).(service.SendSMSResult), args.Error(1)
}
