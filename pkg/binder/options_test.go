package binder_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strto/pkg/binder"
	"github.com/dmitrymomot/strto/pkg/logger"
)

func TestWithLogger(t *testing.T) {
	t.Parallel()

	type target struct {
		Small uint8  `query:"small"`
		Mask  uint16 `query:"mask,base=auto"`
	}

	t.Run("logs rejected field", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))

		var result target
		req := httptest.NewRequest(http.MethodGet, "/?small=256", nil)
		err := binder.BindQuery(binder.WithLogger(log))(req, &result)
		require.Error(t, err)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
		assert.Equal(t, "DEBUG", entry["level"])
		assert.Equal(t, "field rejected", entry["msg"])
		assert.Equal(t, "binder", entry["component"])
		assert.Equal(t, "Small", entry["field"])
		assert.Equal(t, "256", entry["input"])
		assert.Equal(t, float64(10), entry["base"])
		assert.Contains(t, entry["error"], "integer too big")

		conv, ok := entry["conversion"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "out_of_bounds", conv["kind"])
		assert.Equal(t, float64(2), conv["offset"])
	})

	t.Run("auto base is labelled", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))

		var result target
		req := httptest.NewRequest(http.MethodGet, "/?mask=0x", nil)
		require.Error(t, binder.BindQuery(binder.WithLogger(log))(req, &result))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
		assert.Equal(t, "auto", entry["base"])
		conv, ok := entry["conversion"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "invalid_input", conv["kind"])
		assert.Equal(t, "no digits after base prefix", conv["reason"])
	})

	t.Run("silent on success and at info level", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		var result target

		debug := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))
		require.NoError(t, binder.BindQuery(binder.WithLogger(debug))(
			httptest.NewRequest(http.MethodGet, "/?small=255", nil), &result))
		assert.Zero(t, buf.Len())

		info := logger.New(logger.WithOutput(buf))
		require.Error(t, binder.BindQuery(binder.WithLogger(info))(
			httptest.NewRequest(http.MethodGet, "/?small=999", nil), &result))
		assert.Zero(t, buf.Len())
	})

	t.Run("nil logger is ignored", func(t *testing.T) {
		t.Parallel()

		var result target
		req := httptest.NewRequest(http.MethodGet, "/?small=256", nil)
		assert.Error(t, binder.BindQuery(binder.WithLogger(nil))(req, &result))
	})
}

func requestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id := middleware.GetReqID(ctx)
	return slog.String("request_id", id), id != ""
}

func TestWithContextExtractors(t *testing.T) {
	t.Parallel()

	type target struct {
		Page uint16 `query:"page"`
	}

	t.Run("stamps request id from chi middleware", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))
		bind := binder.BindQuery(
			binder.WithLogger(log),
			binder.WithContextExtractors(requestIDExtractor),
		)

		r := chi.NewRouter()
		r.Use(middleware.RequestID)
		r.Get("/items", func(w http.ResponseWriter, r *http.Request) {
			var result target
			if err := bind(r, &result); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
			}
		})

		req := httptest.NewRequest(http.MethodGet, "/items?page=70000", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-42")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
		assert.Equal(t, "req-42", entry["request_id"])
		assert.Equal(t, "binder", entry["component"])
		assert.Equal(t, "Page", entry["field"])
	})

	t.Run("keeps extractors of the caller logger", func(t *testing.T) {
		t.Parallel()

		type tenantKey struct{}
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithLevel(slog.LevelDebug),
			logger.WithContextValue("tenant", tenantKey{}),
		)
		bind := binder.BindQuery(
			binder.WithLogger(log),
			binder.WithContextExtractors(nil, requestIDExtractor),
		)

		ctx := context.WithValue(context.Background(), tenantKey{}, "acme")
		ctx = context.WithValue(ctx, middleware.RequestIDKey, "req-7")
		req := httptest.NewRequestWithContext(ctx, http.MethodGet, "/?page=-1", nil)

		var result target
		require.Error(t, bind(req, &result))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
		assert.Equal(t, "acme", entry["tenant"])
		assert.Equal(t, "req-7", entry["request_id"])
	})

	t.Run("no record without a failure", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))
		bind := binder.BindQuery(binder.WithLogger(log), binder.WithContextExtractors(requestIDExtractor))

		var result target
		require.NoError(t, bind(httptest.NewRequest(http.MethodGet, "/?page=8", nil), &result))
		assert.Zero(t, buf.Len())
		assert.Equal(t, uint16(8), result.Page)
	})
}
