package network_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/leighmacdonald/puppybowl-tui/internal/network"
	"github.com/leighmacdonald/puppybowl-tui/internal/network/encoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingResponse struct {
	Pong bool   `json:"pong"`
	ID   string `json:"id"`
}

func TestFetchJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ping":
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			_, _ = w.Write([]byte(`{"pong": true, "id": "` + r.Header.Get("X-Request-ID") + `"}`))
		case "/broken":
			_, _ = w.Write([]byte(`{"pong": tr`))
		default:
			http.Error(w, "nope", http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	client := network.NewClient(time.Second)

	resp, err := network.FetchJSON[pingResponse](t.Context(), client, server.URL+"/ping",
		http.Header{"X-Request-ID": []string{"abc"}})
	require.NoError(t, err)
	require.True(t, resp.Pong)
	require.Equal(t, "abc", resp.ID)

	_, errBroken := network.FetchJSON[pingResponse](t.Context(), client, server.URL+"/broken", nil)
	require.ErrorIs(t, errBroken, encoding.ErrDecodeJSON)

	_, errMissing := network.FetchJSON[pingResponse](t.Context(), client, server.URL+"/missing", nil)
	require.ErrorIs(t, errMissing, network.ErrUnexpectedCode)
	require.Contains(t, errMissing.Error(), "404")
}

func TestFetchJSONUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := network.FetchJSON[pingResponse](t.Context(), network.NewClient(time.Second), url, nil)
	require.ErrorIs(t, err, network.ErrResponse)
}
