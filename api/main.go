package main

import (
	"math/rand"
	"net/http"
	"time"

	"go.uber.org/zap"

	_ "github.com/rogerio-castellano/inventory-dashboard/docs"
	"github.com/rogerio-castellano/inventory-dashboard/internal/config"
	api "github.com/rogerio-castellano/inventory-dashboard/internal/http"
	"github.com/rogerio-castellano/inventory-dashboard/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-dashboard/internal/logger"
	"github.com/rogerio-castellano/inventory-dashboard/internal/repo"
	"github.com/rogerio-castellano/inventory-dashboard/internal/seed"
	"github.com/rogerio-castellano/inventory-dashboard/internal/stock"
)

// @title Inventory Dashboard API
// @version 1.0
// @description Mock inventory-management dashboard: in-memory catalog, optimistic-concurrency stock updates, conflict resolution and thundering-herd simulation.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("could not load configuration: " + err.Error())
	}

	log := logger.New(cfg.Environment)
	defer log.Sync()

	randomSeed := cfg.RandomSeed
	if randomSeed == 0 {
		randomSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(randomSeed))

	catalogRepo := repo.NewInMemoryCatalogRepository()
	catalogRepo.Load(seed.GenerateProducts(cfg.ProductCount, rng))
	salesRepo := repo.NewInMemorySalesRepository(seed.GenerateSalesData(cfg.SalesDays, rng))
	eventRepo := repo.NewInMemoryHerdEventRepository()
	statsRepo := repo.NewInMemoryStatsRepository()
	statsRepo.SetRepositories(catalogRepo, eventRepo)

	// Each component gets its own rand stream so concurrent requests
	// never share an unsynchronized source.
	resolver := stock.NewResolver(catalogRepo, rand.New(rand.NewSource(randomSeed+1)))
	processor := stock.NewProcessor(catalogRepo, eventRepo, resolver, rand.New(rand.NewSource(randomSeed+2)))
	simulator := stock.NewSimulator(catalogRepo, eventRepo, resolver, rand.New(rand.NewSource(randomSeed+3)))

	handlers.SetCatalogRepo(catalogRepo)
	handlers.SetSalesRepo(salesRepo)
	handlers.SetHerdEventRepo(eventRepo)
	handlers.SetStatsRepo(statsRepo)
	handlers.SetProcessor(processor)
	handlers.SetSimulator(simulator)
	api.SetLogger(log)

	r := api.NewRouter()
	log.Info("server listening",
		zap.String("addr", cfg.Addr),
		zap.Int("products", catalogRepo.Count()),
		zap.Int64("random_seed", randomSeed),
	)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
