package app

import (
	"net/http"

	"family-dues-go/internal/config"
	"family-dues-go/internal/db"
	calcdomain "family-dues-go/internal/domain/calculation"
	familydomain "family-dues-go/internal/domain/family"
	ledgerdomain "family-dues-go/internal/domain/ledger"
	statementdomain "family-dues-go/internal/domain/statement"
	weddingdomain "family-dues-go/internal/domain/wedding"
	calcrepo "family-dues-go/internal/repository/postgres/calculation"
	familyrepo "family-dues-go/internal/repository/postgres/family"
	ledgerrepo "family-dues-go/internal/repository/postgres/ledger"
	statementrepo "family-dues-go/internal/repository/postgres/statement"
	"family-dues-go/internal/transport/httpserver"
	"family-dues-go/internal/transport/httpserver/handler"
	"family-dues-go/pkg/logger"
	"gorm.io/gorm"
)

// Services bundles the wired domain services for transports and jobs.
type Services struct {
	Families     *familydomain.Service
	Ledger       *ledgerdomain.Service
	Calculations *calcdomain.Service
	Statements   *statementdomain.Service
	Wedding      *weddingdomain.Service
}

type App struct {
	cfg        config.Config
	log        logger.Logger
	db         *gorm.DB
	services   Services
	httpServer *http.Server
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: running migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	services := buildServices(dbConn, cfg, log)

	handlers := handler.New(
		services.Families,
		services.Ledger,
		services.Calculations,
		services.Statements,
		services.Wedding,
		log,
	)
	router := httpserver.NewRouter(handlers)
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		log:        log,
		db:         dbConn,
		services:   services,
		httpServer: srv,
	}, nil
}

// NewJobRunner wires the services without an HTTP server, for one-shot
// batch binaries.
func NewJobRunner(log logger.Logger) (*App, error) {
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	return &App{
		cfg:      cfg,
		log:      log,
		db:       dbConn,
		services: buildServices(dbConn, cfg, log),
	}, nil
}

func buildServices(dbConn *gorm.DB, cfg config.Config, log logger.Logger) Services {
	familyRepository := familyrepo.NewPostgres(dbConn)
	ledgerRepository := ledgerrepo.NewPostgres(dbConn)
	calcRepository := calcrepo.NewPostgres(dbConn)
	statementRepository := statementrepo.NewPostgres(dbConn)

	familyService := familydomain.NewService(familyRepository)
	ledgerService := ledgerdomain.NewService(ledgerRepository, familyRepository, cfg.Rates)
	calcService := calcdomain.NewService(familyRepository, ledgerRepository, calcRepository, cfg.Rates)
	statementService := statementdomain.NewService(familyRepository, ledgerService, ledgerRepository, statementRepository, log)
	weddingService := weddingdomain.NewService(familyRepository, log)

	return Services{
		Families:     familyService,
		Ledger:       ledgerService,
		Calculations: calcService,
		Statements:   statementService,
		Wedding:      weddingService,
	}
}

func (a *App) Services() Services {
	return a.services
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
