package publisher

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventUsecases "github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/event/usecases"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/config"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

func TestPinningClient_PublishEventMetadata(t *testing.T) {
	var got eventUsecases.EventMetadata
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer pin-key", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "public", r.FormValue("network"))

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "evt-1.json", hdr.Filename)

		raw, err := io.ReadAll(f)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &got))

		_, _ = w.Write([]byte(`{"data":{"id":"file-1","cid":"bafycid"}}`))
	}))
	defer srv.Close()

	p := NewPinningClient(config.PublisherConfig{
		Endpoint:   srv.URL,
		APIKey:     "pin-key",
		GatewayURL: "https://gateway.example.com/ipfs",
	}, logger.NewNopLogger())

	uri, err := p.PublishEventMetadata(context.Background(), eventUsecases.EventMetadata{
		Name:       "Final",
		Image:      "https://img/1.png",
		Attributes: map[string]string{"event_id": "evt-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://gateway.example.com/ipfs/bafycid", uri)
	assert.Equal(t, "Final", got.Name)
}

func TestPinningClient_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		payload string
	}{
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`},
		{"no cid", http.StatusOK, `{"data":{}}`},
		{"bad json", http.StatusOK, `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.payload))
			}))
			defer srv.Close()

			p := NewPinningClient(config.PublisherConfig{Endpoint: srv.URL}, logger.NewNopLogger())
			_, err := p.PublishEventMetadata(context.Background(), eventUsecases.EventMetadata{Name: "x"})
			assert.Error(t, err)
		})
	}
}

func TestPinningClient_DefaultGateway(t *testing.T) {
	p := NewPinningClient(config.PublisherConfig{}, logger.NewNopLogger())
	assert.Equal(t, "ipfs://abc", p.contentURI("abc"))

	p = NewPinningClient(config.PublisherConfig{GatewayURL: "ipfs://"}, logger.NewNopLogger())
	assert.Equal(t, "ipfs://abc", p.contentURI("abc"))
}
