package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type (
	// MediaFetcher is the read side of the media service, the only part the
	// Aggregator needs.
	MediaFetcher interface {
		ByProduct(ctx context.Context, productID string) ([]MediaAttachment, error)
	}

	// MediaAPI is the full media service boundary.
	MediaAPI interface {
		MediaFetcher
		Upload(ctx context.Context, token, productID, fileName string, file io.Reader) (MediaAttachment, error)
	}

	MediaClient struct {
		host         string
		pipeline     RequestPipeline
		formPipeline RequestPipeline
	}
)

func NewMediaClient(host string, timeout time.Duration) *MediaClient {
	return &MediaClient{
		host:         host,
		pipeline:     NewRequestPipeline(timeout, prepareJSONBody),
		formPipeline: NewRequestPipeline(timeout, prepareMultipartFile),
	}
}

func (m *MediaClient) ByProduct(ctx context.Context, productID string) ([]MediaAttachment, error) {
	responseBytes, err := m.pipeline.Execute(ctx, http.MethodGet, fmt.Sprintf("%s/api/media/product/%s", m.host, productID), "", nil)
	if err != nil {
		return nil, err
	}
	attachments := []MediaAttachment{}
	if err := json.Unmarshal(responseBytes, &attachments); err != nil {
		return nil, fmt.Errorf("can not unmarshal media list: %w", err)
	}
	return attachments, nil
}

func (m *MediaClient) Upload(ctx context.Context, token, productID, fileName string, file io.Reader) (MediaAttachment, error) {
	requestParams := MultipartParams{
		Fields:    map[string]string{"productId": productID},
		FileField: "file",
		FileName:  fileName,
		File:      file,
	}
	responseBytes, err := m.formPipeline.Execute(ctx, http.MethodPost, fmt.Sprintf("%s/api/media/upload", m.host), token, requestParams)
	if err != nil {
		return MediaAttachment{}, err
	}
	attachment := MediaAttachment{}
	if err := json.Unmarshal(responseBytes, &attachment); err != nil {
		return MediaAttachment{}, fmt.Errorf("can not unmarshal media attachment: %w", err)
	}
	return attachment, nil
}
