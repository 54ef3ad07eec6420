package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuthClient(t *testing.T) {
	t.Run("LoginReturnsToken", func(t *testing.T) {
		backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/auth/login", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			body := LoginBody{}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "a@x.com", body.Email)
			json.NewEncoder(w).Encode(TokenResponse{Token: "T", UserID: "u1"})
		}))
		defer backend.Close()

		client := NewAuthClient(backend.URL, time.Second)
		token, err := client.Login(context.Background(), LoginBody{Email: "a@x.com", Password: "p"})
		assert.NoError(t, err)
		assert.Equal(t, "T", token.Token)
		assert.Equal(t, "u1", token.UserID)
	})

	t.Run("ErrorEnvelopeSurfacedVerbatim", func(t *testing.T) {
		backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
		}))
		defer backend.Close()

		client := NewAuthClient(backend.URL, time.Second)
		_, err := client.Login(context.Background(), LoginBody{Email: "a@x.com", Password: "wrong"})
		apiErr := &APIError{}
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
		assert.Equal(t, "Invalid credentials", apiErr.Message)
	})

	t.Run("RegisterPostsRole", func(t *testing.T) {
		backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/auth/register", r.URL.Path)
			body := RegisterBody{}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "SELLER", body.Role)
			json.NewEncoder(w).Encode(TokenResponse{Token: "T"})
		}))
		defer backend.Close()

		client := NewAuthClient(backend.URL, time.Second)
		token, err := client.Register(context.Background(), RegisterBody{Name: "s", Email: "s@x.com", Password: "p", Role: "SELLER"})
		assert.NoError(t, err)
		assert.Equal(t, "T", token.Token)
	})
}

func TestProductClient(t *testing.T) {
	t.Run("ListAll", func(t *testing.T) {
		backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/products", r.URL.Path)
			json.NewEncoder(w).Encode([]*Product{{ID: "p1", Name: "one"}, {ID: "p2", Name: "two"}})
		}))
		defer backend.Close()

		client := NewProductClient(backend.URL, time.Second)
		products, err := client.ListAll(context.Background())
		assert.NoError(t, err)
		assert.Len(t, products, 2)
		assert.Equal(t, "p1", products[0].ID)
	})

	t.Run("CreateCarriesBearerToken", func(t *testing.T) {
		backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "Bearer T", r.Header.Get("Authorization"))
			input := ProductInput{}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&input))
			json.NewEncoder(w).Encode(Product{ID: "p1", Name: input.Name, UserID: "u1"})
		}))
		defer backend.Close()

		client := NewProductClient(backend.URL, time.Second)
		product, err := client.Create(context.Background(), "T", ProductInput{Name: "chair", Price: 10})
		assert.NoError(t, err)
		assert.Equal(t, "chair", product.Name)
		assert.Equal(t, "u1", product.UserID)
	})

	t.Run("UpdateAndDeleteHitIdPath", func(t *testing.T) {
		var paths []string
		backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			paths = append(paths, r.Method+" "+r.URL.Path)
			json.NewEncoder(w).Encode(Product{ID: "p1"})
		}))
		defer backend.Close()

		client := NewProductClient(backend.URL, time.Second)
		_, err := client.Update(context.Background(), "T", "p1", ProductInput{Name: "new"})
		assert.NoError(t, err)
		assert.NoError(t, client.Delete(context.Background(), "T", "p1"))
		assert.Equal(t, []string{"PUT /api/products/p1", "DELETE /api/products/p1"}, paths)
	})

	t.Run("NotFoundSurfaced", func(t *testing.T) {
		backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "Product not found"})
		}))
		defer backend.Close()

		client := NewProductClient(backend.URL, time.Second)
		_, err := client.GetOne(context.Background(), "nope")
		apiErr := &APIError{}
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
		assert.Equal(t, "Product not found", apiErr.Message)
	})
}

func TestMediaClient(t *testing.T) {
	t.Run("ByProduct", func(t *testing.T) {
		backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/media/product/p1", r.URL.Path)
			json.NewEncoder(w).Encode([]MediaAttachment{{ID: "m1", ProductID: "p1"}})
		}))
		defer backend.Close()

		client := NewMediaClient(backend.URL, time.Second)
		attachments, err := client.ByProduct(context.Background(), "p1")
		assert.NoError(t, err)
		assert.Len(t, attachments, 1)
		assert.Equal(t, "m1", attachments[0].ID)
	})

	t.Run("UploadSendsMultipart", func(t *testing.T) {
		backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/media/upload", r.URL.Path)
			assert.Equal(t, "Bearer T", r.Header.Get("Authorization"))
			assert.NoError(t, r.ParseMultipartForm(4<<20))
			assert.Equal(t, "p1", r.FormValue("productId"))
			file, header, err := r.FormFile("file")
			assert.NoError(t, err)
			defer file.Close()
			assert.Equal(t, "photo.png", header.Filename)
			json.NewEncoder(w).Encode(MediaAttachment{ID: "m1", ImagePath: "/files/photo.png", ProductID: "p1"})
		}))
		defer backend.Close()

		client := NewMediaClient(backend.URL, time.Second)
		attachment, err := client.Upload(context.Background(), "T", "p1", "photo.png", bytes.NewReader([]byte("png-bytes")))
		assert.NoError(t, err)
		assert.Equal(t, "m1", attachment.ID)
	})

	t.Run("UploadRejectionSurfaced", func(t *testing.T) {
		backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]string{"error": "Only sellers can upload media"})
		}))
		defer backend.Close()

		client := NewMediaClient(backend.URL, time.Second)
		_, err := client.Upload(context.Background(), "T", "p1", "photo.png", bytes.NewReader(nil))
		apiErr := &APIError{}
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Only sellers can upload media", apiErr.Message)
	})
}
