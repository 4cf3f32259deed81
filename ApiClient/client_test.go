package ApiClient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestBearerTokenAttached(t *testing.T) {
	var got string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	client := New(ts.URL, staticToken("abc123"))
	_, err := client.GetNewVehicles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", got)
}

func TestNoHeaderWithoutToken(t *testing.T) {
	var got string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	client := New(ts.URL, staticToken(""))
	_, err := client.GetNewVehicles(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUnauthorizedBecomesAuthExpired(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid or expired token"}`))
	}))
	defer ts.Close()

	client := New(ts.URL, nil)
	_, err := client.GetAnalytics(context.Background())
	assert.ErrorIs(t, err, ErrAuthExpired)
}

func TestServerMessageSurfacedVerbatim(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Selected vehicle is no longer available"}`))
	}))
	defer ts.Close()

	client := New(ts.URL, nil)
	_, err := client.GetSales(context.Background(), 0)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Selected vehicle is no longer available", apiErr.Error())
}

func TestGenericMessageWhenBodyUnreadable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`boom`))
	}))
	defer ts.Close()

	client := New(ts.URL, nil)
	_, err := client.GetSales(context.Background(), 0)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "request failed with status 500", apiErr.Error())
}

func TestLimitQueryParam(t *testing.T) {
	var got string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.RequestURI()
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	client := New(ts.URL, nil)
	_, err := client.GetSales(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "/sales?limit=10", got)
}

func TestCancelledContextAborts(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := New(ts.URL, nil)
	_, err := client.GetNewVehicles(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
