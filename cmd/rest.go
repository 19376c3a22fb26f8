package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	clientsApp "github.com/ezdiharweb/agency-api/clients/application"
	clientsRest "github.com/ezdiharweb/agency-api/clients/adapter/rest"
	clientsRepo "github.com/ezdiharweb/agency-api/clients/repository"
	coreconfig "github.com/ezdiharweb/agency-api/core/config"
	coreDB "github.com/ezdiharweb/agency-api/core/database"
	pkgError "github.com/ezdiharweb/agency-api/pkg/error"
	socialApp "github.com/ezdiharweb/agency-api/social/application"
	socialRest "github.com/ezdiharweb/agency-api/social/adapter/rest"
	socialRepo "github.com/ezdiharweb/agency-api/social/repository"
	"github.com/ezdiharweb/agency-api/social/providers"
	uiRest "github.com/ezdiharweb/agency-api/ui/rest"
	"github.com/ezdiharweb/agency-api/ui/rest/middleware"
)

var restCmd = &cobra.Command{
	Use:   "rest",
	Short: "Serve the admin API over http",
	Run:   restServer,
}

func init() {
	restCmd.Flags().String("basic-auth", "", "Basic auth for API (format: user:pass,user2:pass2)")
	rootCmd.AddCommand(restCmd)
}

func restServer(cmd *cobra.Command, _ []string) {
	cfg := coreconfig.Global

	// Override basic auth if flag is provided
	if baFlag, _ := cmd.Flags().GetString("basic-auth"); baFlag != "" {
		cfg.App.BasicAuth = strings.Split(baFlag, ",")
	}

	db, err := coreDB.NewDatabase(cfg)
	if err != nil {
		logrus.Fatalf("Failed to connect to the database: %v", err)
	}

	// Repositories
	clientRepository := clientsRepo.NewClientGormRepository(db)
	profileRepository := socialRepo.NewProfileGormRepository(db)
	planRepository := socialRepo.NewPlanGormRepository(db)
	postRepository := socialRepo.NewPostGormRepository(db)

	ctx := context.Background()
	for name, migrator := range map[string]interface {
		InitSchema(ctx context.Context) error
	}{
		"clients":  clientRepository,
		"profiles": profileRepository,
		"plans":    planRepository,
		"posts":    postRepository,
	} {
		if err := migrator.InitSchema(ctx); err != nil {
			logrus.Fatalf("Failed to migrate %s schema: %v", name, err)
		}
	}

	// AI gateway
	gateway, err := providers.NewFromConfig(cfg.AI)
	if err != nil {
		logrus.Fatalf("Failed to configure AI gateway: %v", err)
	}

	// Services
	clientService := clientsApp.NewClientService(clientRepository)
	socialService := socialApp.NewSocialService(profileRepository, planRepository, postRepository)
	generator := socialApp.NewContentGenerator(
		planRepository,
		postRepository,
		profileRepository,
		clientRepository,
		gateway,
		cfg.AI.WeekTimeout,
	)

	fiberConfig := fiber.Config{
		EnableTrustedProxyCheck: true,
		Network:                 "tcp",
		AppName:                 "Agency Admin API",
		ServerHeader:            "Hidden",
	}
	if len(cfg.App.TrustedProxies) > 0 {
		fiberConfig.TrustedProxies = cfg.App.TrustedProxies
		fiberConfig.ProxyHeader = fiber.HeaderXForwardedHost
	}

	app := fiber.New(fiberConfig)

	app.Use(requestid.New())

	origins := strings.Join(cfg.App.CorsAllowedOrigins, ", ")
	if !strings.Contains(origins, cfg.App.BaseUrl) {
		origins += ", " + cfg.App.BaseUrl
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.Recovery())
	app.Use(helmet.New(helmet.Config{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        1000,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	if cfg.App.Debug {
		app.Use(logger.New())
	}

	apiGroup := app.Group(cfg.App.BasePath + "/api")

	if len(cfg.App.BasicAuth) > 0 {
		account := make(map[string]string)
		for _, basicAuth := range cfg.App.BasicAuth {
			ba := strings.Split(basicAuth, ":")
			if len(ba) != 2 {
				logrus.Fatalln("Basic auth is not valid, please use the following format <user>:<secret>")
			}
			account[ba[0]] = ba[1]
		}

		apiGroup.Use(basicauth.New(basicauth.Config{
			Users: account,
			Next: func(c *fiber.Ctx) bool {
				// Allow CORS preflight without credentials.
				return c.Method() == fiber.MethodOptions
			},
		}))
	}

	// Graceful shutdown handler
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logrus.Info("[REST] Reception of termination signal, shutting down gracefully...")
		if err := app.Shutdown(); err != nil {
			logrus.Errorf("[REST] Error during Fiber shutdown: %v", err)
		}
		if sqlDB, err := coreDB.GetSQLDB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	// Register handlers
	uiRest.NewHealthHandler().RegisterRoutes(apiGroup)
	clientsRest.NewClientHandler(clientService).RegisterRoutes(apiGroup)
	socialRest.NewSocialHandler(socialService, generator).RegisterRoutes(apiGroup)

	apiGroup.All("/*", func(c *fiber.Ctx) error {
		notFound := pkgError.NotFoundError("API Endpoint not found")
		return c.Status(notFound.StatusCode()).JSON(fiber.Map{
			"error": notFound.Error(),
			"path":  c.Path(),
		})
	})

	if err := app.Listen(":" + cfg.App.Port); err != nil {
		logrus.Fatalln("Failed to start: ", err.Error())
	}
}
