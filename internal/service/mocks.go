package service

import (
	"context"

	"citibike/backend/internal/model"

	"github.com/stretchr/testify/mock"
)

type QueryClientMock struct {
	mock.Mock
}

func (o *QueryClientMock) Connect(ctx context.Context, target string) error {
	args := o.Called(ctx, target)
	return args.Error(0)
}

func (o *QueryClientMock) Disconnect() error {
	args := o.Called()
	return args.Error(0)
}

func (o *QueryClientMock) RunQuery(ctx context.Context, query string, limit int) (model.ResultSet, error) {
	args := o.Called(ctx, query, limit)
	rows, _ := args.Get(0).(model.ResultSet)
	return rows, args.Error(1)
}
