package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	assetsvc "github.com/Greengage-project/interlinker-ceditor/internal/asset"
	"github.com/Greengage-project/interlinker-ceditor/internal/auth"
	"github.com/Greengage-project/interlinker-ceditor/internal/config"
	fiberlogger "github.com/Greengage-project/interlinker-ceditor/internal/logger/adapter/fiber"
	viewsvc "github.com/Greengage-project/interlinker-ceditor/internal/view"
	assethandler "github.com/Greengage-project/interlinker-ceditor/internal/web/handler/asset"
	oidchandler "github.com/Greengage-project/interlinker-ceditor/internal/web/handler/auth/oidc"
	"github.com/Greengage-project/interlinker-ceditor/internal/web/handler/docs"
	"github.com/Greengage-project/interlinker-ceditor/internal/web/handler/healthcheck"
	"github.com/Greengage-project/interlinker-ceditor/internal/web/handler/pads"
	viewhandler "github.com/Greengage-project/interlinker-ceditor/internal/web/handler/view"
)

// WrapperPrefix is the route prefix of the wrapper variant.
const WrapperPrefix = "/api/v1"

// Deps bundles the collaborators the web service is constructed with.
// Everything is created once at startup; handlers never reach for globals.
type Deps struct {
	DB     *gorm.DB
	Assets *assetsvc.Service
	Views  *viewsvc.Service
	// OIDC is nil when authentication is disabled.
	OIDC *auth.OIDCProvider
}

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	deps         *Deps
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: healthcheck starts failing so
	// the LB removes this instance before the listener stops.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 for %d seconds to let LB remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		if err := s.App.Shutdown(); err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration and
// collaborators.
func New(cfg *config.Config, deps *Deps) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if deps == nil || deps.DB == nil || deps.Assets == nil || deps.Views == nil {
		panic("deps are incomplete")
	}

	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          templateEngine,
		},
	)

	service := &Service{
		cfg:  cfg,
		App:  app,
		deps: deps,
	}
	service.alive.Store(true)

	// access log middleware
	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:         cfg.Log,
		HealthcheckURI: healthcheck.Path,
	}))

	// identity resolution middleware
	var verifier auth.Verifier
	if deps.OIDC != nil {
		verifier = deps.OIDC
	}

	app.Use(auth.Middleware(verifier))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// root level handlers
	healthcheck.Handler.Init(app, service.alive.Load)
	docs.Handler.Init(app, cfg)
	oidchandler.Handler.Init(app, cfg, deps.OIDC)

	// the wrapper variant serves its API under a route prefix
	var router fiber.Router = app
	if cfg.Variant == config.VariantWrapper {
		router = app.Group(WrapperPrefix)
	}

	assethandler.Handler.Init(router, cfg, deps.Assets)
	viewhandler.Handler.Init(router, cfg, deps.Assets, deps.Views)
	pads.Handler.Init(router, cfg, deps.Assets)

	// redirect root to the API description page
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(docs.Path)
	})

	return service
}
