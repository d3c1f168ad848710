package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"telecare/models"
)

// fakeProviderStore keeps provider profiles in a map, mirroring the Mongo
// repo's upsert semantics.
type fakeProviderStore struct {
	byID map[string]models.Provider
}

func newFakeProviderStore() *fakeProviderStore {
	return &fakeProviderStore{byID: map[string]models.Provider{}}
}

func (s *fakeProviderStore) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	prov, ok := s.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &prov, nil
}

func (s *fakeProviderStore) Upsert(ctx context.Context, provider models.Provider) (*models.Provider, error) {
	if provider.CreatedAt.IsZero() {
		provider.CreatedAt = time.Now()
	}
	provider.UpdatedAt = time.Now()
	s.byID[provider.ID] = provider
	return &provider, nil
}

func providerRouter(store *fakeProviderStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewProviderHandler(store, nil, nil)
	r.GET("/providers/:id", h.GetProviderHandler)
	r.PUT("/providers/:id", h.UpsertProviderHandler)
	return r
}

func putProvider(t *testing.T, r *gin.Engine, id, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/providers/"+id, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpsertProviderCreates(t *testing.T) {
	store := newFakeProviderStore()
	r := providerRouter(store)

	w := putProvider(t, r, "prov-1",
		`{"name":"Dr. Grey","specialty":"dermatology","timezone":"America/New_York","currency":"USD"}`)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	var got models.Provider
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "prov-1", got.ID)
	require.Equal(t, "active", got.Status)
	require.False(t, got.CreatedAt.IsZero())

	stored, ok := store.byID["prov-1"]
	require.True(t, ok)
	require.Equal(t, "Dr. Grey", stored.Name)
}

func TestUpsertProviderUpdatePreservesCreatedAt(t *testing.T) {
	store := newFakeProviderStore()
	r := providerRouter(store)

	require.Equal(t, http.StatusOK, putProvider(t, r, "prov-1",
		`{"name":"Dr. Grey","timezone":"UTC"}`).Code)
	created := store.byID["prov-1"].CreatedAt

	w := putProvider(t, r, "prov-1", `{"name":"Dr. Grey-Shepherd","timezone":"UTC","status":"inactive"}`)
	require.Equal(t, http.StatusOK, w.Code)

	stored := store.byID["prov-1"]
	require.Equal(t, "Dr. Grey-Shepherd", stored.Name)
	require.Equal(t, "inactive", stored.Status)
	require.Equal(t, created, stored.CreatedAt)
}

func TestUpsertProviderRequiresName(t *testing.T) {
	store := newFakeProviderStore()
	r := providerRouter(store)

	w := putProvider(t, r, "prov-1", `{"timezone":"UTC"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Empty(t, store.byID)
}
