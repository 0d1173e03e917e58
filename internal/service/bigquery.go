package service

import (
	"context"
	"errors"

	"citibike/backend/internal/model"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
)

// BigQueryClient authenticates with the ambient Application Default
// Credentials of the host.
type BigQueryClient struct {
	client *bigquery.Client
}

func NewBigQueryClient() *BigQueryClient {
	return &BigQueryClient{}
}

func (b *BigQueryClient) Connect(ctx context.Context, projectID string) error {
	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return err
	}
	b.client = client
	return nil
}

func (b *BigQueryClient) Disconnect() error {
	if b.client != nil {
		return b.client.Close()
	}
	return nil
}

func (b *BigQueryClient) RunQuery(ctx context.Context, query string, limit int) (model.ResultSet, error) {
	if b.client == nil {
		return nil, errors.New("bigquery client is not connected")
	}

	job, err := b.client.Query(query).Run(ctx)
	if err != nil {
		return nil, err
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, err
	}
	if err := status.Err(); err != nil {
		return nil, err
	}

	it, err := job.Read(ctx)
	if err != nil {
		return nil, err
	}
	return readRows(it, limit)
}

// valueIterator is the subset of *bigquery.RowIterator used by readRows.
type valueIterator interface {
	Next(dst interface{}) error
}

func readRows(it valueIterator, limit int) (model.ResultSet, error) {
	results := model.ResultSet{}
	for len(results) < limit {
		var values map[string]bigquery.Value
		err := it.Next(&values)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		row := make(model.Row, len(values))
		for name, v := range values {
			row[name] = toNative(v)
		}
		results = append(results, row)
	}
	return results, nil
}

// toNative unwraps REPEATED and RECORD values into plain slices and maps.
func toNative(v bigquery.Value) any {
	switch v := v.(type) {
	case []bigquery.Value:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = toNative(e)
		}
		return out
	case map[string]bigquery.Value:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = toNative(e)
		}
		return out
	default:
		return v
	}
}
