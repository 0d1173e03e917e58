package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"citibike/backend/internal/config"
	"citibike/backend/internal/log"
	"citibike/backend/internal/model"
	"citibike/backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() config.Query {
	return config.Query{
		Driver:  "bigquery",
		Project: config.DefaultProject,
		SQL:     config.DefaultSQL,
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		connectErr   error
		rows         model.ResultSet
		queryErr     error
		expectedOut  string
		expectedErr  string
		expectsQuery bool
	}{
		{
			name:         "rows",
			rows:         model.ResultSet{{"id": 1, "name": "a"}},
			expectedOut:  `[{"id": 1, "name": "a"}]`,
			expectsQuery: true,
		},
		{
			name:         "no rows",
			rows:         model.ResultSet{},
			expectedOut:  "[]",
			expectsQuery: true,
		},
		{
			name:        "auth failure",
			connectErr:  errors.New("could not find default credentials"),
			expectedErr: "could not find default credentials",
		},
		{
			name:         "table not found",
			queryErr:     errors.New("notFound: Table citibike_trips"),
			expectedErr:  "notFound: Table citibike_trips",
			expectsQuery: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			client := &service.QueryClientMock{}
			client.On("Connect", mock.Anything, cfg.Project).Return(tc.connectErr)
			if tc.connectErr == nil {
				client.On("Disconnect").Return(nil)
			}
			if tc.expectsQuery {
				client.On("RunQuery", mock.Anything, cfg.SQL, service.MaxRows).Return(tc.rows, tc.queryErr)
			}

			var out bytes.Buffer
			err := run(context.Background(), cfg, client, &out, log.NewZapLogger(zap.NewNop()))
			client.AssertExpectations(t)

			if tc.expectedErr != "" {
				assert.EqualError(t, err, tc.expectedErr)
				assert.Empty(t, out.String())
				return
			}
			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(out.String(), "\n"))
			assert.JSONEq(t, tc.expectedOut, out.String())
		})
	}
}

func TestRun_CapsOutputAtMaxRows(t *testing.T) {
	rows := make(model.ResultSet, 130)
	for i := range rows {
		rows[i] = model.Row{"bikeid": i}
	}

	cfg := testConfig()
	client := &service.QueryClientMock{}
	client.On("Connect", mock.Anything, cfg.Project).Return(nil)
	client.On("Disconnect").Return(nil)
	client.On("RunQuery", mock.Anything, cfg.SQL, service.MaxRows).Return(rows, nil)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, client, &out, log.NewZapLogger(zap.NewNop())))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Len(t, decoded, service.MaxRows)
}

func TestRun_PostgresTarget(t *testing.T) {
	cfg := config.Query{Driver: "postgres", DSN: "postgres://localhost/trips", SQL: "SELECT 1"}
	client := &service.QueryClientMock{}
	client.On("Connect", mock.Anything, cfg.DSN).Return(errors.New("connection refused"))

	var out bytes.Buffer
	err := run(context.Background(), cfg, client, &out, log.NewZapLogger(zap.NewNop()))
	assert.EqualError(t, err, "connection refused")
	assert.Empty(t, out.String())
	client.AssertExpectations(t)
}

func TestFetchCmd_RejectsArgs(t *testing.T) {
	assert.Error(t, fetchCmd.Args(fetchCmd, []string{"extra"}))
	assert.NoError(t, fetchCmd.Args(fetchCmd, nil))
}

func TestExecute_ErrorsGoToStderr(t *testing.T) {
	var stderr bytes.Buffer
	fetchCmd.SetArgs([]string{"extra"})
	defer fetchCmd.SetArgs(nil)

	code := execute(context.Background(), fetchCmd, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "extra")
}
