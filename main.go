package main

import (
	"fmt"
	"os"

	"bid-exchange/config"
	"bid-exchange/internal/bidservice"
	model "bid-exchange/internal/models"
	"bid-exchange/internal/notifier"
	"bid-exchange/internal/repository"
	"bid-exchange/internal/server"
)

func main() {
	cfg := config.Parse()
	if !cfg.Validate() {
		fmt.Fprintln(os.Stderr, "missing arguments")
		os.Exit(1)
	}

	templates, err := cfg.LoadTemplates()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load templates: %v\n", err)
		os.Exit(1)
	}

	repo, err := buildRepo(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open store: %v\n", err)
		os.Exit(1)
	}

	gateway := notifier.NewGateway(cfg.Notifier)
	dispatcher := notifier.NewGatewayDispatcher(gateway, templates, cfg.Notifier.Timeout)
	defer dispatcher.Wait()

	bidSvc := bidservice.NewBidService(repo, dispatcher)

	router := server.SetupRouter(bidSvc)

	fmt.Printf("Starting bid exchange server on %s...\n", cfg.ListenAddr)
	if err := router.Run(cfg.ListenAddr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// buildRepo selects the SQL store when a database is configured, otherwise
// an in-memory store seeded with demo data.
func buildRepo(cfg config.Config) (repository.ExchangeDB, error) {
	if cfg.DB.Enabled() {
		db, err := repository.OpenPostgres(cfg.DB.DSN())
		if err != nil {
			return nil, err
		}
		return repository.NewGormRepo(db), nil
	}

	repo := repository.NewMemoryRepo()
	prepopulate(repo)
	return repo, nil
}

// prepopulate adds sample parties and inventory to the in-memory repo
func prepopulate(repo *repository.MemoryRepo) {
	parties := []model.Party{
		{PartyID: "buyer1", Name: "Asha Traders", MobileNo: "9800000001", AltMobileNo: "9800000002", Email: "asha@example.com"},
		{PartyID: "seller1", Name: "Mehta Recyclers", MobileNo: "9800000011", Email: "mehta@example.com"},
	}
	for _, p := range parties {
		repo.AddParty(p)
	}

	repo.AddItem(model.Item{
		ItemID:   "item1",
		SellerID: "seller1",
		Details: model.ItemDetails{
			"glass":   {Quantity: 50},
			"plastic": {Quantity: 120},
			"metal":   {Quantity: 30},
		},
	})
}
