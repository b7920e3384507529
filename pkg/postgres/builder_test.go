package postgres

import (
	"bytes"
	"context"
	"testing"

	"github.com/bytebury/ctrunner/pkg/logger"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionBuilder(t *testing.T) {
	dsn := ConnectionBuilder("localhost", 5432, "user", "secret", "ctrunner", "disable")

	assert.Equal(t, "host=localhost port=5432 user=user password=secret dbname=ctrunner sslmode=disable", dsn)
}

func TestURLBuilder(t *testing.T) {
	dsn := URLBuilder("db", 5432, "user", "p@ss", "ctrunner", "disable")

	assert.Equal(t, "postgres://user:p%40ss@db:5432/ctrunner?sslmode=disable", dsn)
	assert.Equal(t, "pgx5://user:p%40ss@db:5432/ctrunner?sslmode=disable", migrateURL(dsn))
	assert.Equal(t, "pgx5://u@h/db", migrateURL("postgresql://u@h/db"))
}

func TestNewTracer(t *testing.T) {
	var buf bytes.Buffer

	l := logger.NewWithWriter(&buf, "debug")

	assert.Nil(t, NewTracer(l, "none"))
	assert.Nil(t, NewTracer(l, "loud"))

	tracer := NewTracer(l, "info")
	require.NotNil(t, tracer)
	assert.Equal(t, tracelog.LogLevelInfo, tracer.LogLevel)

	tracer.Logger.Log(context.Background(), tracelog.LogLevelInfo, "Query", map[string]any{
		"sql":  "SELECT 1",
		"args": []any{},
	})

	assert.Contains(t, buf.String(), `"component":"pgx"`)
	assert.Contains(t, buf.String(), `"sql":"SELECT 1"`)
	assert.Contains(t, buf.String(), `"message":"Query"`)
}
