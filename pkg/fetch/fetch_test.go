package fetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/iconswap/pkg/errors"
	"github.com/arthur-debert/iconswap/pkg/fetch"
)

func TestIconURL(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    string
		wantErr bool
	}{
		{
			name: "simple spec",
			spec: "mdi-home",
			want: "https://api.iconify.design/mdi/home.svg?color=%23000000",
		},
		{
			name: "rest keeps further dashes",
			spec: "mdi-home-circle-outline",
			want: "https://api.iconify.design/mdi/home-circle-outline.svg?color=%23000000",
		},
		{
			name:    "no dash is malformed",
			spec:    "noDashHere",
			wantErr: true,
		},
		{
			name:    "empty prefix is malformed",
			spec:    "-home",
			wantErr: true,
		},
		{
			name:    "empty rest is malformed",
			spec:    "mdi-",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, err := fetch.IconURL("https://api.iconify.design", tt.spec, "%23000000")
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.ErrIconSpecInvalid, errors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, url)
		})
	}
}

func TestHTTPFetcher_Success(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("<svg/>"))
	}))
	defer server.Close()

	f := fetch.NewHTTPFetcher(5 * time.Second)
	body, err := f.Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, []byte("<svg/>"), body)
	assert.Contains(t, gotUA, "iconswap")
}

func TestHTTPFetcher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	f := fetch.NewHTTPFetcher(5 * time.Second)
	_, err := f.Fetch(context.Background(), server.URL)

	require.Error(t, err)
	assert.Equal(t, errors.ErrFetchFailed, errors.GetCode(err))
}

func TestHTTPFetcher_EmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	f := fetch.NewHTTPFetcher(5 * time.Second)
	_, err := f.Fetch(context.Background(), server.URL)

	require.Error(t, err)
	assert.Equal(t, errors.ErrEmptyBody, errors.GetCode(err))
}

func TestHTTPFetcher_NetworkError(t *testing.T) {
	f := fetch.NewHTTPFetcher(time.Second)
	_, err := f.Fetch(context.Background(), "http://127.0.0.1:1/icon.svg")

	require.Error(t, err)
	assert.Equal(t, errors.ErrFetchFailed, errors.GetCode(err))
}
