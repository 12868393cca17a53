package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcmbdata/go-evds/internal/access"
	"github.com/tcmbdata/go-evds/internal/dates"
	"github.com/tcmbdata/go-evds/internal/request"
)

func testRequest(t *testing.T) request.Request {
	t.Helper()
	cfg, err := access.NewConfig("T", access.FormatJSON)
	require.NoError(t, err)
	return request.NewData(cfg, "TP.DK.USD.S", dates.Single(dates.MustParse("13-12-2011")))
}

func TestDoReturnsResponseBody(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"items":[]}`))
	}))
	defer server.Close()

	tr := NewHTTPTransport(WithBaseURL(server.URL))
	body, err := tr.Do(context.Background(), testRequest(t))

	require.NoError(t, err)
	assert.Equal(t, `{"items":[]}`, string(body))
	assert.Equal(t, "/service/evds", gotPath)
	assert.Equal(t, "key=T&type=json&series=TP.DK.USD.S&startDate=13-12-2011&endDate=13-12-2011", gotQuery)
}

func TestDoReturnsStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	tr := NewHTTPTransport(WithBaseURL(server.URL))
	_, err := tr.Do(context.Background(), testRequest(t))

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.Code)
	assert.Contains(t, string(statusErr.Body), "unauthorized")
}

func TestDoHonorsContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr := NewHTTPTransport(WithBaseURL(server.URL))
	_, err := tr.Do(ctx, testRequest(t))
	assert.Error(t, err)
}

func TestDoSetsUserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	tr := NewHTTPTransport(WithBaseURL(server.URL))
	_, err := tr.Do(context.Background(), testRequest(t))

	require.NoError(t, err)
	assert.Equal(t, "go-evds/1.0", gotAgent)
}
