package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"sitebuilder/cmd"
	httpadapter "sitebuilder/internal/adapters/in/http"
	"sitebuilder/internal/adapters/out/postgres/customerrepo"
	"sitebuilder/internal/adapters/out/postgres/orderrepo"
	"sitebuilder/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB, err := gorm.Open(postgres.Open(postgresDSN(configs)), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &customerrepo.CustomerDTO{}); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	root, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Error building composition root: %v", err)
	}

	jobManager := jobs.NewJobManager(root.CreateRemindPastDueCommandHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:       goDotEnvVariable("JWT_SECRET"),
		StripeSecretKey: goDotEnvVariable("STRIPE_SECRET_KEY"),
		SMTPHost:        goDotEnvVariable("SMTP_HOST"),
		SMTPUser:        goDotEnvVariable("SMTP_USER"),
		SMTPPassword:    goDotEnvVariable("SMTP_PASSWORD"),
		SMTPFrom:        goDotEnvVariable("SMTP_FROM"),
		BlobDir:         goDotEnvVariable("BLOB_DIR"),
		BlobBaseURL:     goDotEnvVariable("BLOB_BASE_URL"),
	}

	smtpPort, err := strconv.Atoi(goDotEnvVariable("SMTP_PORT"))
	if err != nil {
		log.Fatalf("Error parsing SMTP_PORT: %v", err)
	}
	config.SMTPPort = smtpPort

	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func postgresDSN(configs cmd.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		root.Authenticator(),
		root.CreateCreateOrderCommandHandler(),
		root.CreateChangeStatusCommandHandler(),
		root.CreateUpdateRequirementsCommandHandler(),
		root.CreateUpdateAdminDetailsCommandHandler(),
		root.CreateSetPaymentStatusCommandHandler(),
		root.CreateAddDeliveredFileCommandHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateListOrdersQueryHandler(),
		root.CreateAdminListOrdersQueryHandler(),
		root.CreateGetOrderStatsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
