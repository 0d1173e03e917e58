package service

import (
	"context"

	"citibike/backend/internal/model"
)

// MaxRows bounds every result set, whatever the query's own LIMIT says.
const MaxRows = 100

// Fetch runs query on an already connected client and returns at most
// MaxRows rows. An empty result is an empty, non-nil set.
func Fetch(ctx context.Context, client QueryClient, query string) (model.ResultSet, error) {
	rows, err := client.RunQuery(ctx, query, MaxRows)
	if err != nil {
		return nil, err
	}
	if len(rows) > MaxRows {
		rows = rows[:MaxRows]
	}
	if rows == nil {
		rows = model.ResultSet{}
	}
	return rows, nil
}
