package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type (
	// ProductAPI is the product service boundary. Mutating calls carry the bearer
	// token; the product service is the one that actually authorizes them.
	ProductAPI interface {
		ListAll(ctx context.Context) ([]*Product, error)
		GetOne(ctx context.Context, id string) (*Product, error)
		Create(ctx context.Context, token string, input ProductInput) (*Product, error)
		Update(ctx context.Context, token, id string, input ProductInput) (*Product, error)
		Delete(ctx context.Context, token, id string) error
	}

	ProductClient struct {
		host     string
		pipeline RequestPipeline
	}
)

func NewProductClient(host string, timeout time.Duration) *ProductClient {
	return &ProductClient{
		host:     host,
		pipeline: NewRequestPipeline(timeout, prepareJSONBody),
	}
}

func (p *ProductClient) ListAll(ctx context.Context) ([]*Product, error) {
	responseBytes, err := p.pipeline.Execute(ctx, http.MethodGet, fmt.Sprintf("%s/api/products", p.host), "", nil)
	if err != nil {
		return nil, err
	}
	products := []*Product{}
	if err := json.Unmarshal(responseBytes, &products); err != nil {
		return nil, fmt.Errorf("can not unmarshal product list: %w", err)
	}
	return products, nil
}

func (p *ProductClient) GetOne(ctx context.Context, id string) (*Product, error) {
	responseBytes, err := p.pipeline.Execute(ctx, http.MethodGet, fmt.Sprintf("%s/api/products/%s", p.host, id), "", nil)
	if err != nil {
		return nil, err
	}
	return unmarshalProduct(responseBytes)
}

func (p *ProductClient) Create(ctx context.Context, token string, input ProductInput) (*Product, error) {
	responseBytes, err := p.pipeline.Execute(ctx, http.MethodPost, fmt.Sprintf("%s/api/products", p.host), token, input)
	if err != nil {
		return nil, err
	}
	return unmarshalProduct(responseBytes)
}

func (p *ProductClient) Update(ctx context.Context, token, id string, input ProductInput) (*Product, error) {
	responseBytes, err := p.pipeline.Execute(ctx, http.MethodPut, fmt.Sprintf("%s/api/products/%s", p.host, id), token, input)
	if err != nil {
		return nil, err
	}
	return unmarshalProduct(responseBytes)
}

func (p *ProductClient) Delete(ctx context.Context, token, id string) error {
	_, err := p.pipeline.Execute(ctx, http.MethodDelete, fmt.Sprintf("%s/api/products/%s", p.host, id), token, nil)
	return err
}

func unmarshalProduct(responseBytes []byte) (*Product, error) {
	product := &Product{}
	if err := json.Unmarshal(responseBytes, product); err != nil {
		return nil, fmt.Errorf("can not unmarshal product: %w", err)
	}
	return product, nil
}
