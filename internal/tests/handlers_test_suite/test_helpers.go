package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"

	api "github.com/rogerio-castellano/inventory-dashboard/internal/http"
	handler "github.com/rogerio-castellano/inventory-dashboard/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-dashboard/internal/repo"
	"github.com/rogerio-castellano/inventory-dashboard/internal/seed"
	"github.com/rogerio-castellano/inventory-dashboard/internal/stock"
)

var (
	catalogRepo *repo.InMemoryCatalogRepository
	eventRepo   *repo.InMemoryHerdEventRepository
)

// setupTestStore wires fresh repositories and seeded stock machinery into
// the handler package. The fixed seed keeps catalog contents stable
// across runs.
func setupTestStore(productCount int) {
	rng := rand.New(rand.NewSource(42))

	catalogRepo = repo.NewInMemoryCatalogRepository()
	catalogRepo.Load(seed.GenerateProducts(productCount, rng))
	handler.SetCatalogRepo(catalogRepo)

	salesRepo := repo.NewInMemorySalesRepository(seed.GenerateSalesData(30, rng))
	handler.SetSalesRepo(salesRepo)

	eventRepo = repo.NewInMemoryHerdEventRepository()
	handler.SetHerdEventRepo(eventRepo)

	statsRepo := repo.NewInMemoryStatsRepository()
	statsRepo.SetRepositories(catalogRepo, eventRepo)
	handler.SetStatsRepo(statsRepo)

	resolver := stock.NewResolver(catalogRepo, rand.New(rand.NewSource(43)))
	handler.SetProcessor(stock.NewProcessor(catalogRepo, eventRepo, resolver, rand.New(rand.NewSource(44))))
	handler.SetSimulator(stock.NewSimulator(catalogRepo, eventRepo, resolver, rand.New(rand.NewSource(45))))
}

func doRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postStockUpdate(r http.Handler, u handler.StockUpdateRequest) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, "/api/stock-update", u)
}

func newRouter() http.Handler {
	return api.NewRouter()
}
