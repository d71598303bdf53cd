package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"tripmanager/cmd"
	httpserver "tripmanager/internal/adapters/in/http"
	"tripmanager/internal/adapters/out/postgres"
	"tripmanager/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := createDbConnection(configs)
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	if err := postgres.Seed(gormDB); err != nil {
		log.Fatalf("Error seeding database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(app.CreateCountPendingOrdersQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:     goDotEnvVariable("HTTP_PORT"),
		DBHost:       goDotEnvVariable("DB_HOST"),
		DBPort:       goDotEnvVariable("DB_PORT"),
		DBUser:       goDotEnvVariable("DB_USER"),
		DBPassword:   goDotEnvVariable("DB_PASSWORD"),
		DBName:       goDotEnvVariable("DB_NAME"),
		DBSslMode:    goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:    goDotEnvVariable("JWT_SECRET"),
		JWTTTL:       goDotEnvVariable("JWT_TTL"),
		SMTPHost:     goDotEnvVariable("SMTP_HOST"),
		SMTPPort:     goDotEnvVariable("SMTP_PORT"),
		SMTPUsername: goDotEnvVariable("SMTP_USERNAME"),
		SMTPPassword: goDotEnvVariable("SMTP_PASSWORD"),
		SMTPFrom:     goDotEnvVariable("SMTP_FROM"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func createDbConnection(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpserver.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderDetailsCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateLoginQueryHandler(),
		app.CreateAuthedUserQueryHandler(),
		app.CreateListDestinationsQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
