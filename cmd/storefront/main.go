package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/ceramics-cart/internal/api"
	"github.com/nikolayk812/ceramics-cart/internal/cart"
	"github.com/nikolayk812/ceramics-cart/internal/config"
	"github.com/nikolayk812/ceramics-cart/internal/customize"
	"github.com/nikolayk812/ceramics-cart/internal/domain"
	"github.com/nikolayk812/ceramics-cart/internal/listing"
	"github.com/nikolayk812/ceramics-cart/internal/logger"
	"github.com/nikolayk812/ceramics-cart/internal/migrations"
	"github.com/nikolayk812/ceramics-cart/internal/repository"
	"go.uber.org/zap"
	"maps"
	"os"
	"os/signal"
	"slices"
	"syscall"
)

type flags struct {
	productType string
	color       string
	size        string
	design      string
	glaze       string
	quantity    int
	note        string

	search   string
	category string
	sort     string
	addFirst bool
}

func main() {
	var f flags
	flag.StringVar(&f.productType, "type", "mug", "product type id")
	flag.StringVar(&f.color, "color", "sage", "color id")
	flag.StringVar(&f.size, "size", "medium", "size id")
	flag.StringVar(&f.design, "design", "minimal", "design id")
	flag.StringVar(&f.glaze, "glaze", "matte", "glaze id")
	flag.IntVar(&f.quantity, "qty", 1, "quantity, 1-10")
	flag.StringVar(&f.note, "note", "", "personal message")
	flag.StringVar(&f.search, "search", "", "filter listed products by name or description")
	flag.StringVar(&f.category, "category", listing.AllCategories, "filter listed products by category")
	flag.StringVar(&f.sort, "sort", string(listing.SortName), "name, price-low or price-high")
	flag.BoolVar(&f.addFirst, "add-first", false, "add the first listed product to the cart")
	flag.Parse()

	if err := run(f); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(f flags) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.AppEnv)
	if err != nil {
		return fmt.Errorf("logger.New: %w", err)
	}
	defer func() { _ = log.Sync() }()

	catalog, err := loadCatalog(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("loadCatalog: %w", err)
	}

	store := cart.NewStore(catalog.Currency, cart.WithLogger(log))
	unsubscribe := store.Subscribe(func() {
		log.Info("cart changed",
			zap.Int("count", store.Count()),
			zap.Stringer("total", store.Total()))
	})
	defer unsubscribe()

	if cfg.APIBaseURL != "" {
		if err := addFromListing(ctx, cfg, f, store, log); err != nil {
			return fmt.Errorf("addFromListing: %w", err)
		}
	}

	wizard := customize.NewWizard(customize.NewPricer(catalog), store)
	if err := fillWizard(wizard, f); err != nil {
		return fmt.Errorf("fillWizard: %w", err)
	}

	item, err := wizard.Submit()
	if err != nil {
		return fmt.Errorf("wizard.Submit: %w", err)
	}
	log.Info("customized item added", zap.String("item_id", item.ID), zap.Stringer("unit_price", item.UnitPrice))

	c, summary, err := store.Checkout()
	if err != nil {
		return fmt.Errorf("store.Checkout: %w", err)
	}

	printCart(c, summary)
	return nil
}

func loadCatalog(ctx context.Context, cfg config.Config, log *zap.Logger) (domain.Catalog, error) {
	if cfg.DatabaseURL == "" {
		log.Info("using built-in catalog")
		return customize.DefaultCatalog(), nil
	}

	if err := migrations.Up(cfg.DatabaseURL); err != nil {
		return domain.Catalog{}, fmt.Errorf("migrations.Up: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("pgxpool.New: %w", err)
	}
	defer pool.Close()

	repo := repository.NewCatalog(pool)

	catalog, err := repo.GetCatalog(ctx)
	if errors.Is(err, repository.ErrCatalogEmpty) {
		log.Info("catalog table is empty, seeding built-in catalog")
		catalog = customize.DefaultCatalog()
		if err := repo.SaveCatalog(ctx, catalog); err != nil {
			return domain.Catalog{}, fmt.Errorf("repo.SaveCatalog: %w", err)
		}
		return catalog, nil
	}
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("repo.GetCatalog: %w", err)
	}

	log.Info("catalog loaded from database", zap.Int("product_types", len(catalog.ProductTypes)))
	return catalog, nil
}

func addFromListing(ctx context.Context, cfg config.Config, f flags, store *cart.Store, log *zap.Logger) error {
	client, err := api.NewClient(cfg.APIBaseURL,
		api.WithTimeout(cfg.APITimeout),
		api.WithCurrency(cfg.Currency),
		api.WithLogger(log))
	if err != nil {
		return fmt.Errorf("api.NewClient: %w", err)
	}

	products, err := client.ListProducts(ctx)
	if err != nil {
		// the listing is optional, the customizer still works without it
		log.Warn("products unavailable", zap.Error(err))
		return nil
	}

	matched := listing.Filter(products, listing.Query{
		Search:   f.search,
		Category: f.category,
		Sort:     listing.SortOrder(f.sort),
	})
	for _, p := range matched {
		fmt.Printf("%-12s %-30s %s\n", p.ID, p.Name, p.Price)
	}

	if f.addFirst && len(matched) > 0 {
		addListed(store, matched[0], log)
	}

	return nil
}

// addListed adds p unless it is priced in another currency than the cart,
// the store sums amounts without converting.
func addListed(store *cart.Store, p domain.Product, log *zap.Logger) bool {
	if p.Price.Currency != store.Currency() {
		log.Warn("product skipped, currency differs from cart",
			zap.String("product_id", p.ID),
			zap.Stringer("product_currency", p.Price.Currency),
			zap.Stringer("cart_currency", store.Currency()))
		return false
	}

	store.AddItem(listing.LineItemFor(p))
	return true
}

func fillWizard(w *customize.Wizard, f flags) error {
	if err := w.SetProductType(f.productType); err != nil {
		return err
	}
	if err := w.Next(); err != nil {
		return err
	}

	if err := w.SetColor(f.color); err != nil {
		return err
	}
	if err := w.SetSize(f.size); err != nil {
		return err
	}
	if err := w.Next(); err != nil {
		return err
	}

	if err := w.SetDesign(f.design); err != nil {
		return err
	}
	if err := w.SetGlaze(f.glaze); err != nil {
		return err
	}
	if err := w.Next(); err != nil {
		return err
	}

	if err := w.SetQuantity(f.quantity); err != nil {
		return err
	}
	w.SetNote(f.note)

	return nil
}

func printCart(c domain.Cart, s cart.Summary) {
	for _, item := range c.Items {
		fmt.Printf("%3d x %-30s %s\n", item.Quantity, item.Name, item.UnitPrice)
		for _, key := range slices.Sorted(maps.Keys(item.Customization)) {
			fmt.Printf("        %s: %s\n", key, item.Customization[key])
		}
	}

	fmt.Printf("subtotal %s\n", s.Subtotal)
	fmt.Printf("shipping %s\n", s.Shipping)
	fmt.Printf("tax      %s\n", s.Tax)
	fmt.Printf("total    %s\n", s.Total)
}
