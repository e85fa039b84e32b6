package main

import (
	"urban/internal/config"
	"urban/internal/domain/model"
	"urban/internal/handler"
	"urban/internal/infra/db"
	"urban/internal/infra/payment"
	infraRepo "urban/internal/infra/repository"
	"urban/internal/server"
	"urban/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal("db connect failed", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Brand{},
		&model.Category{},
		&model.MenuItem{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.OrderStatusEvent{},
		&model.Review{},
		&model.StoreLocation{},
		&model.MpesaTransaction{},
	); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	// Repository（GORM実装）生成
	menuItemRepo := infraRepo.NewMenuItemGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	mpesaTxRepo := infraRepo.NewMpesaTransactionGormRepository(gormDB)
	reviewRepo := infraRepo.NewReviewGormRepository(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	profileRepo := infraRepo.NewProfileGormRepository(gormDB)
	storeRepo := infraRepo.NewStoreLocationGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	// 外部サービス
	gateway := payment.NewDarajaClient(cfg.Mpesa, logger)

	// Usecase生成
	menuUC := usecase.NewMenuUsecase(menuItemRepo, categoryRepo)
	storeUC := usecase.NewStoreUsecase(storeRepo)
	cartUC := usecase.NewCartUsecase(cartItemRepo, menuItemRepo, cfg.DeliveryFee)
	checkoutUC := usecase.NewCheckoutUsecase(txManager, cfg.DeliveryFee)
	orderUC := usecase.NewOrderUsecase(txManager)
	paymentUC := usecase.NewPaymentUsecase(txManager, orderRepo, mpesaTxRepo, gateway, cfg.Mpesa.AccountPrefix, logger)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, menuItemRepo)
	authUC := usecase.NewAuthUsecase(userRepo, cfg.JWTSecret)
	profileUC := usecase.NewProfileUsecase(profileRepo)

	// Handler生成
	h := server.Handlers{
		Auth:     handler.NewAuthHandler(authUC),
		Profile:  handler.NewProfileHandler(profileUC),
		Menu:     handler.NewMenuHandler(menuUC),
		Store:    handler.NewStoreHandler(storeUC),
		Cart:     handler.NewCartHandler(cartUC),
		Checkout: handler.NewCheckoutHandler(checkoutUC, paymentUC),
		Order:    handler.NewOrderHandler(orderUC),
		Review:   handler.NewReviewHandler(reviewUC),
		Payment:  handler.NewPaymentHandler(paymentUC),
	}

	e := server.New(cfg, logger, h)

	addr := ":" + cfg.Port
	logger.Info("starting server", zap.String("addr", addr), zap.String("env", cfg.GoEnv))
	if err := server.Start(e, addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.GoEnv == "dev" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
