package mocks

import (
	"context"

	"github.com/esteria/esteria-go/pkg/esteria"
	"github.com/stretchr/testify/mock"
)

type GatewayClient struct {
	mock.Mock
}

func (g *GatewayClient) Send(ctx context.Context, request *esteria.Request) (int, error) {
	args := g.Called(ctx, request)
	return args.Int(0), args.Error(1)
}
