package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

type (
	// RequestPipeline executes one round trip against a backend REST service.
	// The body builder is swapped per call site (JSON or multipart).
	RequestPipeline struct {
		parametersParser func(params any) (io.Reader, string, error)
		transport        *http.Transport
		timeout          time.Duration
	}

	// MultipartParams carries one file plus form fields for a multipart request.
	MultipartParams struct {
		Fields    map[string]string
		FileField string
		FileName  string
		File      io.Reader
	}

	// APIError carries a backend error envelope verbatim so the view layer can
	// surface it unchanged.
	APIError struct {
		Status  int
		Message string
	}
)

func (e *APIError) Error() string {
	return fmt.Sprintf("backend replied %d: %s", e.Status, e.Message)
}

func NewRequestPipeline(timeout time.Duration, parser func(params any) (io.Reader, string, error)) RequestPipeline {
	return RequestPipeline{
		parametersParser: parser,
		transport: &http.Transport{
			MaxIdleConns:       10,
			IdleConnTimeout:    timeout,
			DisableCompression: true,
		},
		timeout: timeout,
	}
}

// Execute sends one request and returns the raw response body. A non-2xx reply is
// decoded as the backend {error} envelope and returned as *APIError.
func (r RequestPipeline) Execute(ctx context.Context, restCmd, hostname, token string, params any) ([]byte, error) {
	var body io.Reader
	contentType := ""
	if params != nil {
		reader, parsedType, err := r.parametersParser(params)
		if err != nil {
			return nil, fmt.Errorf("error during prepare: %w", err)
		}
		body = reader
		contentType = parsedType
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	request, err := http.NewRequestWithContext(ctx, restCmd, hostname, body)
	if err != nil {
		return nil, fmt.Errorf("error during request prepare: %w", err)
	}
	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	client := &http.Client{Transport: r.transport}
	resp, err := client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("error during request sending: %w", err)
	}
	defer resp.Body.Close()
	responseBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error during body response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, decodeErrorEnvelope(resp.StatusCode, responseBytes)
	}
	return responseBytes, nil
}

func prepareJSONBody(params any) (io.Reader, string, error) {
	parsedJSON, err := json.Marshal(params)
	if err != nil {
		return nil, "", fmt.Errorf("can not marshal JSON: %w", err)
	}
	return bytes.NewReader(parsedJSON), "application/json", nil
}

func prepareMultipartFile(params any) (io.Reader, string, error) {
	mp, ok := params.(MultipartParams)
	if !ok {
		return nil, "", fmt.Errorf("multipart parser needs MultipartParams, got %T", params)
	}
	bodyReader := new(bytes.Buffer)
	writer := multipart.NewWriter(bodyReader)
	for field, value := range mp.Fields {
		if err := writer.WriteField(field, value); err != nil {
			return nil, "", fmt.Errorf("can not write form field %s: %w", field, err)
		}
	}
	part, err := writer.CreateFormFile(mp.FileField, mp.FileName)
	if err != nil {
		return nil, "", fmt.Errorf("can not create form file: %w", err)
	}
	if _, err := io.Copy(part, mp.File); err != nil {
		return nil, "", fmt.Errorf("can not copy file data: %w", err)
	}
	writer.Close()
	return bodyReader, writer.FormDataContentType(), nil
}

// The backend services reply {"error": "..."} on failures; anything else falls back
// to the HTTP status text.
func decodeErrorEnvelope(status int, responseBody []byte) *APIError {
	envelope := struct {
		Error string `json:"error"`
	}{}
	if err := json.Unmarshal(responseBody, &envelope); err != nil || envelope.Error == "" {
		return &APIError{Status: status, Message: http.StatusText(status)}
	}
	return &APIError{Status: status, Message: envelope.Error}
}
