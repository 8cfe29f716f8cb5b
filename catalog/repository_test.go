package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sitara.io/store/driver"
	"sitara.io/store/gateway"
	"sitara.io/store/models"
	"sitara.io/store/query"
)

func newTestRepository(t *testing.T, mux *http.ServeMux) (Repository, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	gw, err := gateway.NewClient(srv.URL, srv.Client(), nil, zap.NewNop())
	require.NoError(t, err)
	cache := query.NewCache(driver.NewMemKV(), zap.NewNop())
	return NewRepository(gw, cache, zap.NewNop()), &calls
}

func TestProductsCaching(t *testing.T) {
	ctx := context.Background()
	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":[{"id":1,"name":"ستارة معتمة"},{"id":2,"name":"ستارة شفافة"}]}`))
	})
	repo, calls := newTestRepository(t, mux)

	first, err := repo.Products(ctx, ListParams{})
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := repo.Products(ctx, ListParams{})
	require.NoError(t, err)
	require.Len(t, second, 2)

	assert.Equal(t, int32(1), atomic.LoadInt32(calls), "second read is served from cache")
}

func TestProductsCategoryFilter(t *testing.T) {
	ctx := context.Background()
	var gotCategory string
	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		gotCategory = r.URL.Query().Get("category")
		w.Write([]byte(`{"success":true,"data":[]}`))
	})
	repo, calls := newTestRepository(t, mux)

	_, err := repo.Products(ctx, ListParams{Category: "blackout"})
	require.NoError(t, err)
	assert.Equal(t, "blackout", gotCategory)

	// A different category is a different cache entry.
	_, err = repo.Products(ctx, ListParams{Category: "sheer"})
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(calls))
}

func TestProductsSearchIsClientSide(t *testing.T) {
	ctx := context.Background()
	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":[
			{"id":1,"name":"ستارة معتمة","description":"عازلة للضوء"},
			{"id":2,"name":"Sheer Curtain","description":"light fabric"}]}`))
	})
	repo, calls := newTestRepository(t, mux)

	got, err := repo.Products(ctx, ListParams{Search: "sheer"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)

	got, err = repo.Products(ctx, ListParams{Search: "معتمة"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)

	assert.Equal(t, int32(1), atomic.LoadInt32(calls), "search never refetches")
}

func TestProductDetail(t *testing.T) {
	ctx := context.Background()
	mux := http.NewServeMux()
	mux.HandleFunc("/products/9", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"id":9,"name":"برادي رول"}}`))
	})
	repo, calls := newTestRepository(t, mux)

	p, err := repo.Product(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "برادي رول", p.Name)

	_, err = repo.Product(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestProductNotFound(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t, http.NewServeMux())

	_, err := repo.Product(ctx, 404)
	assert.ErrorIs(t, err, gateway.ErrNotFound)
}

func TestCategoryTree(t *testing.T) {
	parent := func(id int) *int { return &id }
	categories := []*models.Category{
		{ID: 1, Name: "ستائر"},
		{ID: 2, Name: "معتمة", ParentID: parent(1)},
		{ID: 3, Name: "شفافة", ParentID: parent(1)},
		{ID: 4, Name: "اكسسوارات"},
		{ID: 5, Name: "يتيمة", ParentID: parent(99)},
	}

	roots := buildCategoryTree(categories)
	require.Len(t, roots, 2)
	assert.Equal(t, "ستائر", roots[0].Name)
	require.Len(t, roots[0].Nodes, 2)
	assert.Equal(t, "معتمة", roots[0].Nodes[0].Name)
	assert.Empty(t, roots[1].Nodes)
}

func TestHomeFeed(t *testing.T) {
	ctx := context.Background()
	mux := http.NewServeMux()
	mux.HandleFunc("/home", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":[{"id":1,"title":"مميز"}]}`))
	})
	repo, calls := newTestRepository(t, mux)

	sections, err := repo.Home(ctx)
	require.NoError(t, err)
	require.Len(t, sections, 1)

	_, err = repo.Home(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}
