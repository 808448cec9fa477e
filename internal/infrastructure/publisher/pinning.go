// Package publisher pins public event metadata to a content-addressed store.
package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	eventUsecases "github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/event/usecases"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/config"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

const defaultPinTimeout = 30 * time.Second

type uploadResponse struct {
	Data struct {
		ID  string `json:"id"`
		CID string `json:"cid"`
	} `json:"data"`
}

// PinningClient uploads metadata files to a pinning service and returns the
// content URI under the configured gateway.
type PinningClient struct {
	endpoint   string
	apiKey     string
	gateway    string
	httpClient *http.Client
	logger     logger.Interface
}

func NewPinningClient(cfg config.PublisherConfig, logger logger.Interface) *PinningClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultPinTimeout
	}
	return &PinningClient{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		gateway:    cfg.GatewayURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (p *PinningClient) PublishEventMetadata(ctx context.Context, metadata eventUsecases.EventMetadata) (string, error) {
	content, err := json.Marshal(metadata)
	if err != nil {
		return "", fmt.Errorf("failed to encode event metadata: %w", err)
	}

	fileName := "event.json"
	if id := metadata.Attributes["event_id"]; id != "" {
		fileName = id + ".json"
	}

	body, contentType, err := multipartFile(fileName, content)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload event metadata: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("pinning service returned status %d: %s", resp.StatusCode, string(snippet))
	}

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode pinning response: %w", err)
	}
	if out.Data.CID == "" {
		return "", fmt.Errorf("pinning service returned no content id")
	}

	uri := p.contentURI(out.Data.CID)
	p.logger.Infow("event metadata pinned", "file", fileName, "cid", out.Data.CID, "uri", uri)
	return uri, nil
}

func (p *PinningClient) contentURI(cid string) string {
	if p.gateway == "" {
		return "ipfs://" + cid
	}
	if strings.HasSuffix(p.gateway, "/") {
		return p.gateway + cid
	}
	return p.gateway + "/" + cid
}

func multipartFile(name string, content []byte) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("network", "public"); err != nil {
		return nil, "", fmt.Errorf("failed to write form field: %w", err)
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, name))
	h.Set("Content-Type", "application/json")
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, "", fmt.Errorf("failed to write form file: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
