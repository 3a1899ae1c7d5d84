package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independent(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_Options(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(WithBaseURL(srv.URL), WithTimeout(time.Second), WithBearer("sk-test"))

	assert.Equal(t, srv.URL, client.BaseURL)
	assert.Equal(t, time.Second, client.GetClient().Timeout)

	resp, err := client.R().Get("/ping")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, "Bearer sk-test", gotAuth)
}

func TestNewHTTPClient_EmptyBearerIgnored(t *testing.T) {
	client := NewHTTPClient(WithBearer(""))
	assert.Empty(t, client.Token)
}
