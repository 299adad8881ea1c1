package googlesheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type staticToken string

func (s staticToken) Token(_ context.Context) (string, error) {
	return string(s), nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(server.URL, 5*time.Second, staticToken("test-token"), nopLogger{}, nil)
}

func TestListSheetNames(t *testing.T) {
	t.Run("returns sheet titles in order", func(t *testing.T) {
		var gotPath, gotAuth string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"sheets": [
					{"properties": {"title": "トヨタ"}},
					{"properties": {"title": "ホンダ"}},
					{"properties": {"title": "日産"}}
				]
			}`))
		})

		names, err := client.ListSheetNames(context.Background(), "sheet-123")
		require.NoError(t, err)

		assert.Equal(t, []string{"トヨタ", "ホンダ", "日産"}, names)
		assert.Equal(t, "/spreadsheets/sheet-123", gotPath)
		assert.Equal(t, "Bearer test-token", gotAuth)
	})

	t.Run("unauthorized status maps to a dedicated error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		_, err := client.ListSheetNames(context.Background(), "sheet-123")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestGetValues(t *testing.T) {
	t.Run("decodes the value grid", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"range": "'トヨタ'!A1:K1000",
				"values": [
					["メーカー", "車種"],
					["", ""],
					["トヨタ", "プリウス", "ぷりうす", "25,000"]
				]
			}`))
		})

		values, err := client.GetValues(context.Background(), "sheet-123", "トヨタ!A1:K1000")
		require.NoError(t, err)

		assert.Equal(t, "'トヨタ'!A1:K1000", values.Range)
		require.Len(t, values.Values, 3)
		assert.Equal(t, []string{"トヨタ", "プリウス", "ぷりうす", "25,000"}, values.Values[2])
	})

	t.Run("api error message is surfaced", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error": {"code": 400, "message": "Unable to parse range"}}`))
		})

		_, err := client.GetValues(context.Background(), "sheet-123", "nope!!A1")
		assert.ErrorIs(t, err, ErrInvalidResponse)
		assert.Contains(t, err.Error(), "Unable to parse range")
	})
}
