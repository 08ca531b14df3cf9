package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/commercekit/commercekit/commerce"
	"github.com/commercekit/commercekit/errors"
)

// fakeCatalog is a canned CatalogClient.
type fakeCatalog struct {
	lastSearch commerce.SearchProductsParams
	lastList   commerce.GetAllProductsParams
	listErr    error
}

func (f *fakeCatalog) SearchProducts(ctx context.Context, params commerce.SearchProductsParams) (commerce.ProductList, error) {
	f.lastSearch = params
	return commerce.ProductList{
		Products: []commerce.Product{{ID: "p1", Slug: "tartan-scarf", Name: "Tartan Scarf"}},
		Found:    true,
	}, nil
}

func (f *fakeCatalog) GetProduct(ctx context.Context, params commerce.GetProductParams) (*commerce.Product, error) {
	if params.Slug == "missing" {
		return nil, nil
	}
	return &commerce.Product{ID: "p1", Slug: params.Slug, Name: "Tartan Scarf"}, nil
}

func (f *fakeCatalog) GetAllProducts(ctx context.Context, params commerce.GetAllProductsParams) (commerce.ProductList, error) {
	f.lastList = params
	if f.listErr != nil {
		return commerce.ProductList{}, f.listErr
	}
	return commerce.ProductList{
		Products: []commerce.Product{
			{ID: "p1", Slug: "tartan-scarf", Name: "Tartan Scarf"},
			{ID: "p2", Slug: "wool-hat", Name: "Wool Hat"},
		},
		Found: true,
	}, nil
}

func newTestEngine(client CatalogClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	RegisterCatalog(engine, client)
	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestCatalog_ListProducts_Search(t *testing.T) {
	fake := &fakeCatalog{}
	w := doRequest(t, newTestEngine(fake), "/api/catalog/products?search=scarf&sort=price-asc")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}
	if fake.lastSearch.Search != "scarf" || fake.lastSearch.Sort != "price-asc" {
		t.Errorf("search params = %+v, want scarf sorted price-asc", fake.lastSearch)
	}

	var resp struct {
		Data commerce.ProductList `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !resp.Data.Found || len(resp.Data.Products) != 1 {
		t.Errorf("data = %+v, want one found product", resp.Data)
	}
}

func TestCatalog_ListProducts_Listing(t *testing.T) {
	fake := &fakeCatalog{}
	w := doRequest(t, newTestEngine(fake), "/api/catalog/products?field=trending&count=10")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if fake.lastList.Field != "trending" || fake.lastList.Count != 10 {
		t.Errorf("list params = %+v, want trending count 10", fake.lastList)
	}
}

func TestCatalog_ListProducts_InvalidCount(t *testing.T) {
	w := doRequest(t, newTestEngine(&fakeCatalog{}), "/api/catalog/products?count=banana")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCatalog_GetProduct_Found(t *testing.T) {
	w := doRequest(t, newTestEngine(&fakeCatalog{}), "/api/catalog/products/tartan-scarf")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		Data commerce.Product `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Data.Slug != "tartan-scarf" {
		t.Errorf("slug = %q, want tartan-scarf", resp.Data.Slug)
	}
}

func TestCatalog_GetProduct_NotFound(t *testing.T) {
	w := doRequest(t, newTestEngine(&fakeCatalog{}), "/api/catalog/products/missing")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestCatalog_Feed(t *testing.T) {
	fake := &fakeCatalog{}
	w := doRequest(t, newTestEngine(fake), "/api/catalog/feed")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if fake.lastList.Count != defaultFeedCount {
		t.Errorf("feed count = %d, want %d", fake.lastList.Count, defaultFeedCount)
	}
	var resp struct {
		Data []FeedEntry `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(resp.Data) != 2 || resp.Data[0].Path != "/tartan-scarf/" {
		t.Errorf("feed = %+v, want two entries with slash-wrapped paths", resp.Data)
	}
}

func TestCatalog_UpstreamErrorKeepsStatus(t *testing.T) {
	fake := &fakeCatalog{listErr: errors.Upstream(http.StatusTooManyRequests, "rate limited")}
	w := doRequest(t, newTestEngine(fake), "/api/catalog/feed")
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want the backend's 429", w.Code)
	}
}

func TestCatalog_NetworkErrorBecomesBadGateway(t *testing.T) {
	fake := &fakeCatalog{listErr: errors.Network(context.DeadlineExceeded)}
	w := doRequest(t, newTestEngine(fake), "/api/catalog/feed")
	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", w.Code)
	}
}

func TestCatalog_Health(t *testing.T) {
	w := doRequest(t, newTestEngine(&fakeCatalog{}), "/health")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
