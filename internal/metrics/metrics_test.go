package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/go-faster/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	m := New()
	m.Observe("sendMessage", nil)
	m.Observe("sendMessage", nil)
	m.Observe("sendMessage", errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues("sendMessage", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("sendMessage", OutcomeError)))
}

func TestHandler(t *testing.T) {
	m := New()
	m.StoredMessages.Set(4)
	m.Observe("getMe", nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "telegram_mock_stored_messages 4")
	assert.Contains(t, body, `telegram_mock_requests_total{method="getMe",outcome="ok"} 1`)
}
