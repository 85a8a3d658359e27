package logger

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	t.Parallel()

	l, err := New(Options{Level: "debug"})
	require.NoError(t, err)
	require.True(t, l.Core().Enabled(zapcore.DebugLevel))

	file := filepath.Join(t.TempDir(), "logs", "books.log")
	l, err = New(Options{Level: "warn", File: file})
	require.NoError(t, err)
	require.False(t, l.Core().Enabled(zapcore.InfoLevel))
	require.FileExists(t, file)

	_, err = New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestCheckError(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	l := zap.New(core)

	require.False(t, CheckError(nil, l, "no error"))
	require.Zero(t, logs.Len())

	require.True(t, CheckError(errors.New("boom"), l, "failed", zap.String("book_id", "1")))
	require.Equal(t, 1, logs.Len())
	require.Equal(t, "failed", logs.All()[0].Message)

	require.True(t, CheckError(errors.New("boom"), nil, "silent"))
}

func TestEnabled(t *testing.T) {
	t.Parallel()

	l := zap.NewNop()
	require.Same(t, l, Enabled(l, true))
	require.Nil(t, Enabled(l, false))

	MakeInfo(nil, "ignored")
	MakeWarn(nil, "ignored")
}
