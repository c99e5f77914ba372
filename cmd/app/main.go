package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"reporting/cmd"
	httpin "reporting/internal/adapters/in/http"
	"reporting/internal/adapters/out/postgres/schedulerepo"
	"reporting/internal/adapters/out/postgres/sourcerepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	scheduler := app.Scheduler()
	if err := scheduler.Reconcile(context.Background()); err != nil {
		log.Fatalf("Failed to reconcile schedules: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	startWebServer(app, configs.HTTPPort)
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
		SMTPHost:     goDotEnvVariable("SMTP_HOST"),
		SMTPPort:     goDotEnvVariable("SMTP_PORT"),
		SMTPUser:     goDotEnvVariable("SMTP_USER"),
		SMTPPassword: goDotEnvVariable("SMTP_PASSWORD"),
		ExportDir:    goDotEnvVariable("EXPORT_DIR"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&schedulerepo.ScheduleDTO{},
		&sourcerepo.SourceDTO{},
		&sourcerepo.EntryDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateScheduleCommandHandler(),
		app.CreateUpdateScheduleCommandHandler(),
		app.CreateDeleteScheduleCommandHandler(),
		app.CreateRunScheduleCommandHandler(),
		app.CreateGetAllSchedulesQueryHandler(),
		app.CreateGetSourceFieldsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
