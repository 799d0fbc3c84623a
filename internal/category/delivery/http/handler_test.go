package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minimarket/admin-api/internal/category/domain"
	"github.com/minimarket/admin-api/pkg/auth"
)

type stubCategoryRepo struct {
	categories map[uint]*domain.Category
	nextID     uint
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[uint]*domain.Category), nextID: 1}
}

func (r *stubCategoryRepo) Create(category *domain.Category) error {
	category.ID = r.nextID
	r.nextID++
	r.categories[category.ID] = category
	return nil
}

func (r *stubCategoryRepo) FindByID(id uint) (*domain.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, assert.AnError
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) FindAll() ([]domain.Category, error) {
	out := make([]domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoryRepo) Update(category *domain.Category) error {
	r.categories[category.ID] = category
	return nil
}

func newTestServer(t *testing.T) (*httptest.Server, *stubCategoryRepo) {
	t.Helper()

	repo := newStubCategoryRepo()
	handler := NewCategoryHandler(repo, prometheus.NewRegistry())

	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, repo
}

func authedRequest(t *testing.T, method, url string, body interface{}) *http.Request {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)

	token, err := auth.GenerateToken(1, "ana@minimarket.mx", "employee")
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestCategoryRoutes_RequireAuth(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/categories")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body["error"])
}

func TestCategoryRoutes_RejectMalformedToken(t *testing.T) {
	srv, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/categories", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer garbage")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateCategoryEndpoint(t *testing.T) {
	srv, repo := newTestServer(t)

	req := authedRequest(t, http.MethodPost, srv.URL+"/categories", map[string]string{
		"name":        "Lácteos",
		"description": "Leche y derivados",
	})

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created domain.Category
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "Lácteos", created.Name)
	assert.True(t, created.IsActive)
	assert.Len(t, repo.categories, 1)
}

func TestCreateCategoryEndpoint_ValidationError(t *testing.T) {
	srv, _ := newTestServer(t)

	req := authedRequest(t, http.MethodPost, srv.URL+"/categories", map[string]string{})
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "name is required")
}

func TestListAndGetCategoryEndpoints(t *testing.T) {
	srv, repo := newTestServer(t)
	require.NoError(t, repo.Create(&domain.Category{Name: "Lácteos", IsActive: true}))

	req := authedRequest(t, http.MethodGet, srv.URL+"/categories", nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listed []domain.Category
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
	require.Len(t, listed, 1)

	req = authedRequest(t, http.MethodGet, srv.URL+"/categories/1", nil)
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()

	require.Equal(t, http.StatusOK, resp2.StatusCode)
	var got domain.Category
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&got))
	assert.Equal(t, "Lácteos", got.Name)
}

func TestGetCategoryEndpoint_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	req := authedRequest(t, http.MethodGet, srv.URL+"/categories/99", nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateCategoryEndpoint(t *testing.T) {
	srv, repo := newTestServer(t)
	require.NoError(t, repo.Create(&domain.Category{Name: "Lácteos", IsActive: true}))

	req := authedRequest(t, http.MethodPatch, srv.URL+"/categories/1", map[string]interface{}{
		"description": "actualizada",
	})
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated domain.Category
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, "actualizada", updated.Description)
	assert.Equal(t, "Lácteos", updated.Name)
}

func TestDeactivateCategoryEndpoint(t *testing.T) {
	srv, repo := newTestServer(t)
	require.NoError(t, repo.Create(&domain.Category{Name: "Lácteos", IsActive: true}))

	req := authedRequest(t, http.MethodDelete, srv.URL+"/categories/1", nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Category deactivated", body["message"])
	assert.False(t, repo.categories[1].IsActive)
}

func TestCategoryEndpoint_InvalidID(t *testing.T) {
	srv, _ := newTestServer(t)

	req := authedRequest(t, http.MethodGet, srv.URL+"/categories/abc", nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
