package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onex-platform/omniintelligence/ent"
	"github.com/onex-platform/omniintelligence/ent/patterndisable"
	"github.com/onex-platform/omniintelligence/pkg/api"
	"github.com/onex-platform/omniintelligence/pkg/database"
	"github.com/onex-platform/omniintelligence/pkg/store"
	"github.com/onex-platform/omniintelligence/test/util"
)

type apiFixture struct {
	client *ent.Client
	store  *store.Store
	router http.Handler
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	client, db, dsn := util.SetupTestDatabaseWithDSN(t)
	st := store.New()
	srv := api.NewServer(database.NewClientFromEnt(client, db, dsn), nil, st)
	return &apiFixture{client: client, store: st, router: srv.Router()}
}

func (f *apiFixture) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *apiFixture) seedPattern(t *testing.T, signature, body string) string {
	t.Helper()
	ctx := context.Background()
	tx, err := f.client.Tx(ctx)
	require.NoError(t, err)
	id, created, err := f.store.UpsertPattern(ctx, tx, signature, body, nil)
	require.NoError(t, err)
	require.True(t, created)
	require.NoError(t, tx.Commit())
	return id
}

func TestHealthEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	w := f.get(t, "/api/v1/health")
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "healthy", resp.Checks["database"].Status)
	// No engine wired; the dispatch check is absent rather than failing.
	_, ok := resp.Checks["dispatch"]
	assert.False(t, ok)
}

func TestGetPattern(t *testing.T) {
	f := newAPIFixture(t)
	id := f.seedPattern(t, "sig-api-1", "Always run the linter before committing.")

	t.Run("found", func(t *testing.T) {
		w := f.get(t, "/api/v1/patterns/"+id)
		require.Equal(t, http.StatusOK, w.Code)

		var resp api.PatternResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, id, resp.PatternID)
		assert.Equal(t, "sig-api-1", resp.SignatureHash)
		assert.Equal(t, "candidate", resp.LifecycleStatus)
		assert.Equal(t, "Always run the linter before committing.", resp.Body)
	})

	t.Run("missing", func(t *testing.T) {
		w := f.get(t, "/api/v1/patterns/no-such-id")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListPatterns(t *testing.T) {
	f := newAPIFixture(t)
	id1 := f.seedPattern(t, "sig-list-1", "pattern one")
	f.seedPattern(t, "sig-list-2", "pattern two")

	t.Run("all patterns", func(t *testing.T) {
		w := f.get(t, "/api/v1/patterns")
		require.Equal(t, http.StatusOK, w.Code)

		var resp []api.PatternResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
	})

	t.Run("status filter", func(t *testing.T) {
		w := f.get(t, "/api/v1/patterns?status=validated")
		require.Equal(t, http.StatusOK, w.Code)

		var resp []api.PatternResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Empty(t, resp)
	})

	t.Run("signature lookup", func(t *testing.T) {
		w := f.get(t, "/api/v1/patterns?signature_hash=sig-list-1")
		require.Equal(t, http.StatusOK, w.Code)

		var resp []api.PatternResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, id1, resp[0].PatternID)
	})

	t.Run("unknown signature", func(t *testing.T) {
		w := f.get(t, "/api/v1/patterns?signature_hash=sig-nope")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("disabled filter", func(t *testing.T) {
		ctx := context.Background()
		tx, err := f.client.Tx(ctx)
		require.NoError(t, err)
		_, err = f.store.RecordDisable(ctx, tx, id1,
			patterndisable.ActionDisable, patterndisable.ReasonSafety,
			"advises deleting user data", "oncall")
		require.NoError(t, err)
		require.NoError(t, tx.Commit())

		w := f.get(t, "/api/v1/patterns?disabled=true")
		require.Equal(t, http.StatusOK, w.Code)

		var resp []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, id1, resp[0]["pattern_id"])
		assert.Equal(t, "safety", resp[0]["reason"])
	})
}
