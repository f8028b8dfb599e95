// scraper/release_info_test.go
package scraper

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchReleaseInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body>
			<h1>Releasable Aircraft Database Download</h1>
			<p>The archive is updated each federal business day.</p>
			<p>Last updated: 08/24/2026</p>
		</body></html>`))
	}))
	defer srv.Close()

	info, err := FetchReleaseInfo(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), info.UpdatedOn)
	assert.Contains(t, info.RawDateString, "08/24/2026")
}

func TestFetchReleaseInfoNoDateOnPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>Nothing to see here.</p></body></html>`))
	}))
	defer srv.Close()

	_, err := FetchReleaseInfo(srv.URL)
	require.Error(t, err)
}

func TestFetchReleaseInfoHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := FetchReleaseInfo(srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status code 403")
}
