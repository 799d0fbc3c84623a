package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	categorydomain "github.com/minimarket/admin-api/internal/category/domain"
)

func TestClient_SendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]categorydomain.Category{})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("abc123")

	_, err := c.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", gotAuth)
}

func TestClient_DecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/categories", r.URL.Path)
		json.NewEncoder(w).Encode([]categorydomain.Category{
			{ID: 1, Name: "Lácteos", IsActive: true},
		})
	}))
	defer srv.Close()

	categories, err := New(srv.URL).Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Lácteos", categories[0].Name)
}

func TestClient_ExtractsErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "name is required"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).CreateCategory(context.Background(), "", "")
	require.Error(t, err)
	assert.Equal(t, "name is required", err.Error())
}

func TestClient_ExtractsMessageField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).Categories(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
}

func TestClient_FallsBackToStatusCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Categories(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestClient_LoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana@minimarket.mx", body["email"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"ok":      true,
			"status":  200,
			"message": "Login successful",
			"token":   "jwt-token",
			"user":    map[string]interface{}{"id": 1, "name": "Ana", "role": "admin"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Login(context.Background(), "ana@minimarket.mx", "secret")
	require.NoError(t, err)

	assert.Equal(t, "jwt-token", c.Token())
	require.NotNil(t, resp.User)
	assert.Equal(t, "Ana", resp.User.Name)
}

func TestClient_LoginRejectedWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"ok":      false,
			"status":  401,
			"message": "Invalid credentials",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Login(context.Background(), "ana@minimarket.mx", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials")
	assert.Empty(t, c.Token())
}
