package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"quotation_desk/internal/adapter/http/handlers"
	"quotation_desk/internal/adapter/http/routes"
	"quotation_desk/internal/adapter/persistence/repository"
	"quotation_desk/internal/adapter/render"
	"quotation_desk/internal/config"
	"quotation_desk/internal/infrastructure/database"
	"quotation_desk/internal/infrastructure/logger"
	"quotation_desk/internal/infrastructure/payments"
	"quotation_desk/internal/infrastructure/pdf"
	"quotation_desk/internal/infrastructure/textgen"
	"quotation_desk/internal/usecase"
	"quotation_desk/internal/usecase/interfaces"
)

// @title           Quotation Desk API
// @version         1.0
// @description     Quotations, invoices and receipts for a smart home installer, backed by a relational store with a spreadsheet fallback.

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, log, err := bootstrap()
	if err != nil {
		// zap is not built yet, so this goes to stderr.
		stdlog.Fatalf("[main] %v", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	mirror := newMirror(ctx, cfg, log)
	gateway := newGateway(ctx, cfg, mirror, log)
	if err := gateway.EnsureCustomersFile(ctx); err != nil {
		log.Warn("[main] customers file not created", zap.Error(err))
	}

	customers := usecase.NewCustomerUseCase(gateway, mirror, log)
	documents := usecase.NewDocumentUseCase(usecase.DocumentDeps{
		Drafts:    repository.NewDraftMemoryRepository(),
		Gateway:   gateway,
		Customers: customers,
		TextGen:   textgen.New(cfg.TextGen, log),
		HTML:      render.NewHTMLRenderer(cfg.Data.TemplatesDir()),
		Word:      render.NewWordRenderer(wordTemplatePath(cfg.Data)),
		PDF:       pdf.NewChain(log, pdf.NewWkhtmltopdfEngine(cfg.PDF.WkhtmltopdfPath), pdf.NewMarotoEngine()),
		Company:   cfg.Company,
		ExportDir: cfg.Data.ExportsDir(),
		Log:       log,
	})
	dashboard := usecase.NewDashboardUseCase(gateway)
	receipts := usecase.NewReceiptUseCase(gateway, newPaymentGateway(cfg, log), log)

	router := routes.NewRouter(routes.Handlers{
		Dashboard: handlers.NewDashboardHandler(dashboard, customers),
		Document:  handlers.NewDocumentHandler(documents, log),
		Receipt:   handlers.NewReceiptHandler(receipts, log),
	}, log)
	if err := routes.Run(router, cfg.Server.Port, log); err != nil {
		log.Fatal("failed to startup the application", zap.Error(err))
	}
}

// bootstrap loads the config and builds the process logger.
func bootstrap(configPaths ...string) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPaths...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return cfg, log, nil
}

// newGateway wires the flat files, the optional primary store and the
// optional cloud mirror. A primary store that cannot be reached is skipped.
func newGateway(ctx context.Context, cfg *config.Config, mirror interfaces.ICloudMirror, log *zap.Logger) *repository.PersistenceGateway {
	flat := repository.NewFlatFileExcelStore(cfg.Data.Dir)

	var primary interfaces.IPrimaryStore
	if db, err := database.ConnectPrimary(cfg.Primary, log); err == nil {
		store := repository.NewPrimaryGormStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			log.Warn("[main] primary schema not ensured", zap.Error(err))
		}
		primary = store
	} else {
		log.Info("[main] primary store not used, flat files only", zap.Error(err))
	}

	return repository.NewPersistenceGateway(primary, flat, mirror, log)
}

func newMirror(ctx context.Context, cfg *config.Config, log *zap.Logger) interfaces.ICloudMirror {
	if !cfg.Mirror.Enabled {
		return nil
	}
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		log.Warn("[main] cloud mirror disabled", zap.Error(err))
		return nil
	}
	return repository.NewDynamoMirrorRepository(ddb, repository.MirrorTables{
		Records:    cfg.Mirror.RecordsTable,
		Customers:  cfg.Mirror.CustomersTable,
		Quotations: cfg.Mirror.QuotationsTable,
	}, log)
}

func newPaymentGateway(cfg *config.Config, log *zap.Logger) interfaces.IPaymentGateway {
	gw, err := payments.New(cfg.Payments, log)
	if err != nil {
		log.Warn("[main] payment gateway not configured", zap.String("provider", cfg.Payments.Provider), zap.Error(err))
		return nil
	}
	return gw
}

// wordTemplatePath returns the Word template override when one exists, or
// "" for the built-in template.
func wordTemplatePath(d config.DataConfig) string {
	path := filepath.Join(d.TemplatesDir(), usecase.WordTemplateName)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
