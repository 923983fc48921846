package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strto/pkg/logger"
	"github.com/dmitrymomot/strto/pkg/strto"
)

func TestGroup(t *testing.T) {
	t.Parallel()

	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestField(t *testing.T) {
	t.Parallel()

	attr := logger.Field("Port")
	assert.Equal(t, "field", attr.Key)
	assert.Equal(t, "Port", attr.Value.String())

	assert.True(t, logger.Field("").Equal(slog.Attr{}))
}

func TestInput(t *testing.T) {
	t.Parallel()

	attr := logger.Input("")
	assert.Equal(t, "input", attr.Key)
	assert.Empty(t, attr.Value.String())
}

func TestBase(t *testing.T) {
	t.Parallel()

	attr := logger.Base(16)
	assert.Equal(t, "base", attr.Key)
	assert.Equal(t, int64(16), attr.Value.Int64())

	auto := logger.Base(0)
	assert.Equal(t, "auto", auto.Value.String())
}

func TestComponent(t *testing.T) {
	t.Parallel()

	attr := logger.Component("binder")
	assert.Equal(t, "component", attr.Key)
	assert.Equal(t, "binder", attr.Value.String())
}

func TestConversion(t *testing.T) {
	t.Parallel()

	t.Run("unwraps conversion error", func(t *testing.T) {
		t.Parallel()

		_, perr := strto.ParseString[uint8]("300", 10)
		require.Error(t, perr)
		wrapped := fmt.Errorf("field Port: %w", perr)

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("rejected", logger.Conversion(wrapped))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		conv, ok := entry["conversion"].(map[string]any)
		require.True(t, ok, "conversion group missing: %s", buf.String())
		assert.Equal(t, "out_of_bounds", conv["kind"])
		assert.Equal(t, "integer too big", conv["reason"])
		assert.Equal(t, float64(10), conv["base"])
		assert.Equal(t, float64(2), conv["offset"])
	})

	t.Run("ignores foreign errors", func(t *testing.T) {
		t.Parallel()

		assert.True(t, logger.Conversion(errors.New("boom")).Equal(slog.Attr{}))
		assert.True(t, logger.Conversion(nil).Equal(slog.Attr{}))
	})
}
