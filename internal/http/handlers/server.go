package handlers

import (
	repo "github.com/rogerio-castellano/inventory-dashboard/internal/repo"
	"github.com/rogerio-castellano/inventory-dashboard/internal/stock"
)

var (
	catalogRepo repo.CatalogRepository
	salesRepo   repo.SalesRepository
	eventRepo   repo.HerdEventRepository
	statsRepo   repo.StatsRepository

	processor *stock.Processor
	simulator *stock.Simulator
)

func SetCatalogRepo(r repo.CatalogRepository) {
	catalogRepo = r
}

func SetSalesRepo(r repo.SalesRepository) {
	salesRepo = r
}

func SetHerdEventRepo(r repo.HerdEventRepository) {
	eventRepo = r
}

func SetStatsRepo(r repo.StatsRepository) {
	statsRepo = r
}

func SetProcessor(p *stock.Processor) {
	processor = p
}

func SetSimulator(s *stock.Simulator) {
	simulator = s
}
