package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bytebury/ctrunner/pkg/logger/mock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var _ Interface = (*mock.MockInterface)(nil)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer

	l := NewWithWriter(&buf, "warn")

	l.Debug("debug message")
	l.Info("info message")
	assert.Empty(t, buf.String())

	l.Warn("towns cache miss for %s", "all")
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "towns cache miss for all")

	buf.Reset()
	l.Error(errors.New("boom"))
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "boom")
}

func TestLogger_UnknownMessageType(t *testing.T) {
	var buf bytes.Buffer

	l := NewWithWriter(&buf, "info")
	l.Info(42)

	assert.Contains(t, buf.String(), "Info message 42 has an unknown type 42")
}

func TestMockInterface_RecordsFormatArgs(t *testing.T) {
	ctrl := gomock.NewController(t)

	m := mock.NewMockInterface(ctrl)
	m.EXPECT().Warn("towns cache miss for %s", "all").Times(1)
	m.EXPECT().Error(gomock.Any()).Times(1)

	var l Interface = m
	l.Warn("towns cache miss for %s", "all")
	l.Error(errors.New("boom"))
}
