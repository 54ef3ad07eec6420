package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type (
	// AuthAPI is the auth service boundary: register and login, both returning a
	// self-issued bearer token.
	AuthAPI interface {
		Register(ctx context.Context, body RegisterBody) (TokenResponse, error)
		Login(ctx context.Context, body LoginBody) (TokenResponse, error)
	}

	AuthClient struct {
		host     string
		pipeline RequestPipeline
	}
)

func NewAuthClient(host string, timeout time.Duration) *AuthClient {
	return &AuthClient{
		host:     host,
		pipeline: NewRequestPipeline(timeout, prepareJSONBody),
	}
}

func (a *AuthClient) Register(ctx context.Context, body RegisterBody) (TokenResponse, error) {
	return a.postCredentials(ctx, fmt.Sprintf("%s/api/auth/register", a.host), body)
}

func (a *AuthClient) Login(ctx context.Context, body LoginBody) (TokenResponse, error) {
	return a.postCredentials(ctx, fmt.Sprintf("%s/api/auth/login", a.host), body)
}

func (a *AuthClient) postCredentials(ctx context.Context, hostname string, body any) (TokenResponse, error) {
	responseBytes, err := a.pipeline.Execute(ctx, http.MethodPost, hostname, "", body)
	if err != nil {
		return TokenResponse{}, err
	}
	token := TokenResponse{}
	if err := json.Unmarshal(responseBytes, &token); err != nil {
		return TokenResponse{}, fmt.Errorf("can not unmarshal token response: %w", err)
	}
	return token, nil
}
