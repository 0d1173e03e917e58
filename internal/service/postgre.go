package service

import (
	"context"
	"database/sql"
	"errors"

	"citibike/backend/internal/model"

	_ "github.com/lib/pq"
)

type PostgresClient struct {
	db *sql.DB
}

func NewPostgresClient() *PostgresClient {
	return &PostgresClient{}
}

func (p *PostgresClient) Connect(ctx context.Context, dsn string) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return err
	}
	p.db = db
	return nil
}

func (p *PostgresClient) Disconnect() error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}

func (p *PostgresClient) RunQuery(ctx context.Context, query string, limit int) (model.ResultSet, error) {
	if p.db == nil {
		return nil, errors.New("postgres client is not connected")
	}
	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRows(rows, limit)
}

// rowScanner is the subset of *sql.Rows used by scanRows.
type rowScanner interface {
	Columns() ([]string, error)
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanRows(rows rowScanner, limit int) (model.ResultSet, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	results := model.ResultSet{}
	for len(results) < limit && rows.Next() {
		columns := make([]any, len(cols))
		columnPointers := make([]any, len(cols))

		for i := range columns {
			columnPointers[i] = &columns[i]
		}

		if err := rows.Scan(columnPointers...); err != nil {
			return nil, err
		}

		row := model.Row{}
		for i, colName := range cols {
			val := *columnPointers[i].(*any)
			// pq hands back text, numeric and json columns as raw bytes
			if b, ok := val.([]byte); ok {
				val = string(b)
			}
			row[colName] = val
		}

		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
