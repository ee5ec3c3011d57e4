// Package daemon wires configuration, storage, the editing service client
// and the web service into a running backend.
package daemon

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	assetsvc "github.com/Greengage-project/interlinker-ceditor/internal/asset"
	"github.com/Greengage-project/interlinker-ceditor/internal/auth"
	"github.com/Greengage-project/interlinker-ceditor/internal/config"
	"github.com/Greengage-project/interlinker-ceditor/internal/db/dsn"
	"github.com/Greengage-project/interlinker-ceditor/internal/db/models"
	"github.com/Greengage-project/interlinker-ceditor/internal/etherpad"
	viewsvc "github.com/Greengage-project/interlinker-ceditor/internal/view"
	"github.com/Greengage-project/interlinker-ceditor/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start starts the Daemon's web service and blocks until shutdown.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	db := openStore(cfg)

	if err := db.AutoMigrate(&models.Asset{}); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	padClient := etherpad.New(etherpad.Config{
		APIURL:    cfg.Etherpad.APIURL,
		PublicURL: cfg.Etherpad.PublicURL,
		APIKey:    cfg.Etherpad.APIKey,
		Timeout:   time.Duration(cfg.Etherpad.Timeout) * time.Second,
	})

	deps := &web.Deps{
		DB:     db,
		Assets: assetsvc.NewService(db, padClient),
		Views:  viewsvc.NewService(padClient, sessionPolicy(cfg)),
		OIDC:   oidcProvider(cfg),
	}

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, deps),
	}
}

// openStore opens the document store with the configured gorm engine.
func openStore(cfg *config.Config) *gorm.DB {
	dialector := gormmysql.Open(dsn.Create(cfg))
	if cfg.DB.GormEngine == "sqlite" {
		dialector = sqlite.Open(cfg.DB.SQLitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	return db
}

// sessionPolicy selects the session expiry policy. An unset policy falls
// back to the variant default: the wrapper keeps its legacy fixed deadline,
// the full backend uses the sliding TTL.
func sessionPolicy(cfg *config.Config) viewsvc.Policy {
	sessionCfg := cfg.Session

	if sessionCfg.Policy == "" {
		sessionCfg.Policy = config.SessionPolicySliding
		if cfg.Variant == config.VariantWrapper {
			sessionCfg.Policy = config.SessionPolicyFixed
		}
	}

	return viewsvc.PolicyFromConfig(sessionCfg)
}

// oidcProvider initializes the OIDC provider; a disabled or failing
// provider downgrades to anonymous-only identities instead of aborting.
func oidcProvider(cfg *config.Config) *auth.OIDCProvider {
	if !cfg.Auth.OIDC.Enabled {
		return nil
	}

	provider, err := auth.NewOIDCProvider(context.Background(), &cfg.Auth.OIDC)
	if err != nil {
		log.Warn().Err(err).Msg("failed to initialize OIDC provider, authentication disabled")
		return nil
	}

	return provider
}
