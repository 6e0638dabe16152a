package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"buyback/cmd"
	httpadapter "buyback/internal/adapters/in/http"
	"buyback/internal/adapters/out/postgres/coinrepo"
	"buyback/internal/adapters/out/postgres/counterrepo"
	"buyback/internal/adapters/out/postgres/orderrepo"
	"buyback/internal/adapters/out/postgres/outboxrepo"
	"buyback/internal/adapters/out/postgres/partnerrepo"
	"buyback/internal/adapters/out/postgres/refundrepo"
	"buyback/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.CreateDispatchNotificationsCommandHandler(),
		app.CreateAuditWalletsQueryHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:      goDotEnvVariable("JWT_SECRET"),
		PushGatewayURL: goDotEnvVariable("PUSH_GATEWAY_URL"),
		OrderIDPrefix:  goDotEnvVariable("ORDER_ID_PREFIX"),
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
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLogDTO{},
		&partnerrepo.PartnerDTO{},
		&partnerrepo.PickupAgentDTO{},
		&partnerrepo.WalletTransactionDTO{},
		&refundrepo.RefundDTO{},
		&outboxrepo.NotificationDTO{},
		&counterrepo.CounterDTO{},
		&coinrepo.CoinRangeDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAcceptOrderCommandHandler(),
		app.CreateAssignPartnerCommandHandler(),
		app.CreateAssignAgentCommandHandler(),
		app.CreateDeassignAgentCommandHandler(),
		app.CreateDeassignPartnerCommandHandler(),
		app.CreateRequoteOrderCommandHandler(),
		app.CreateRescheduleOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateCompleteOrderCommandHandler(),
		app.CreateCreatePartnerCommandHandler(),
		app.CreateAddPickupAgentCommandHandler(),
		app.CreateRemovePickupAgentCommandHandler(),
		app.CreateTopUpWalletCommandHandler(),
		app.CreateAdjustWalletCommandHandler(),
		app.CreateSettleRefundCommandHandler(),
		app.CreateAddCoinRangeCommandHandler(),
		app.CreateRegisterSessionCommandHandler(),
		app.CreateSetPartnerStatusCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetClaimableOrdersQueryHandler(),
		app.CreateGetPartnerOrdersQueryHandler(),
		app.CreateGetWalletStatementQueryHandler(),
		app.CreateGetRefundsQueryHandler(),
		app.CreateAuditWalletsQueryHandler(),
	)
	server.RegisterRoutes(e, httpadapter.SessionMiddleware(configs.JWTSecret))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
