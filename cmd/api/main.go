package main

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/assistant"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	repo "app/internal/repository"
	"app/internal/server"
	"app/internal/usecase"
	"app/internal/usecase/auth"
	"app/internal/validator"

	"github.com/joho/godotenv"
)

// devの初期管理者。本番では起動後すぐパスワードを変えること
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "123456"
)

func ensureAdmin(ctx context.Context, users repo.UserRepository, hasher auth.PasswordHasher) error {
	_, err := users.FindByUsername(ctx, defaultAdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return err
	}

	hashed, err := hasher.Hash(defaultAdminPassword)
	if err != nil {
		return err
	}

	return users.Create(ctx, &model.User{
		Username: defaultAdminUsername,
		Password: hashed,
		Role:     model.RoleAdmin,
	})
}

func main() {
	//.envはあれば読む（Docker等では環境変数を直接渡す）
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg := config.Load()

	gormDB, err := db.Connect()
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.Review{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	reviewRepo := infraRepo.NewReviewGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()

	ctx := context.Background()
	if err := ensureAdmin(ctx, userRepo, hasher); err != nil {
		log.Fatalf("ensure admin: %v", err)
	}

	if err := os.MkdirAll(filepath.Join(cfg.StaticDir, "images"), 0o755); err != nil {
		log.Fatalf("static dir: %v", err)
	}

	//外部補完APIクライアント
	chatClient := assistant.NewOpenRouterClient(
		cfg.OpenRouterBaseURL,
		cfg.OpenRouterAPIKey,
		cfg.ChatModel,
		cfg.ChatTimeout,
	)

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo)
	authUC := usecase.NewAuthUsecase(userRepo, hasher, verifier, validator.NewCredentialValidator())
	orderUC := usecase.NewOrderUsecase(txManager)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, userRepo)
	dashboardUC := usecase.NewDashboardUsecase(orderRepo, productRepo)
	chatUC := usecase.NewChatUsecase(productRepo, chatClient, cfg.ChatPrompt)
	seedUC := usecase.NewSeedUsecase(productRepo)

	//Handler生成
	handlers := server.Handlers{
		Product:   handler.NewProductHandler(productUC),
		Auth:      handler.NewAuthHandler(authUC),
		Order:     handler.NewOrderHandler(orderUC),
		Review:    handler.NewReviewHandler(reviewUC),
		Dashboard: handler.NewDashboardHandler(dashboardUC),
		Chat:      handler.NewChatHandler(chatUC),
		Upload:    handler.NewUploadHandler(cfg.StaticDir, cfg.PublicBaseURL),
		Seed:      handler.NewSeedHandler(seedUC),
	}

	//Server起動
	if err := server.Start(":"+cfg.Port, cfg.StaticDir, handlers); err != nil {
		log.Fatalf("server: %v", err)
	}
}
