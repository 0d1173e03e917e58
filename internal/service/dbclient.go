package service

import (
	"context"
	"fmt"

	"citibike/backend/internal/model"
)

type QueryClient interface {
	Connect(ctx context.Context, target string) error
	Disconnect() error
	RunQuery(ctx context.Context, query string, limit int) (model.ResultSet, error)
}

func NewClient(driver string) (QueryClient, error) {
	switch driver {
	case "bigquery":
		return NewBigQueryClient(), nil
	case "postgres":
		return NewPostgresClient(), nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
}
