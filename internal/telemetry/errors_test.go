package telemetry

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReportError(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/42/") {
			hits.Add(1)
		}
	}))
	defer srv.Close()

	t.Run("disabled without dsn", func(t *testing.T) {
		require.NoError(t, SetupErrorReporting("", "test"))
		ReportError(errors.New("boom"))
		require.Zero(t, hits.Load())
	})

	t.Run("rejects a bad dsn", func(t *testing.T) {
		require.Error(t, SetupErrorReporting("not a dsn", "test"))
	})

	t.Run("sends captured errors", func(t *testing.T) {
		dsn := strings.Replace(srv.URL, "http://", "http://public@", 1) + "/42"
		require.NoError(t, SetupErrorReporting(dsn, "test"))
		ReportError(nil)
		ReportError(errors.New("boom"))
		require.Equal(t, int32(1), hits.Load())
	})
}
