package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"MuTeLu-App/internal/application"
	"MuTeLu-App/internal/config"
	"MuTeLu-App/internal/domain/recommend"
	domainrepo "MuTeLu-App/internal/domain/repository"
	"MuTeLu-App/internal/handler"
	"MuTeLu-App/internal/infrastructure/database"
	"MuTeLu-App/internal/infrastructure/firestore"
	"MuTeLu-App/internal/infrastructure/maps"
	"MuTeLu-App/internal/repository"
	"MuTeLu-App/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込み失敗: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()
	var closers []func() error
	defer func() {
		for _, closeFn := range closers {
			if err := closeFn(); err != nil {
				log.Printf("⚠️ クローズ処理失敗: %v", err)
			}
		}
	}()

	// リポジトリの初期化
	placesRepo, err := newPlacesRepository(cfg)
	if err != nil {
		log.Fatalf("カタログリポジトリ初期化失敗: %v", err)
	}

	checkInsRepo, closeCheckIns, err := newCheckInsRepository(ctx, cfg)
	if err != nil {
		log.Fatalf("チェックインリポジトリ初期化失敗: %v", err)
	}
	closers = append(closers, closeCheckIns)

	membersRepo, closeMembers, err := newMembersRepository(ctx, cfg)
	if err != nil {
		log.Fatalf("会員リポジトリ初期化失敗: %v", err)
	}
	closers = append(closers, closeMembers)

	// サービス・ユースケースの組み立て
	snapshot := recommend.NewSnapshot()
	placesService := application.NewPlacesService(placesRepo, snapshot)
	membersService := application.NewMembersService(membersRepo, checkInsRepo)
	checkInsService := application.NewCheckInsService(checkInsRepo, membersService, placesService, application.CheckInPolicy{
		RadiusMeters: cfg.CheckInRadiusMeters,
		MeritPoints:  cfg.CheckInMeritPoints,
	})
	recommendationUseCase := usecase.NewRecommendationUseCase(snapshot, placesService, checkInsService)

	var directionsProvider domainrepo.DirectionsProvider
	if cfg.GoogleMapsAPIKey != "" {
		directionsProvider = maps.NewGoogleDirectionsProvider(cfg.GoogleMapsAPIKey)
	} else {
		log.Printf("⚠️ GOOGLE_MAPS_API_KEYが未設定のため徒歩ルート検索は無効です")
	}
	directionsService := application.NewDirectionsService(placesService, directionsProvider)

	if _, err := placesService.Reload(ctx); err != nil {
		log.Fatalf("カタログの初回読み込み失敗: %v", err)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	handler.RegisterRoutes(router, handler.Handlers{
		Places:          handler.NewPlacesHandler(placesService, directionsService),
		Members:         handler.NewMembersHandler(membersService),
		CheckIns:        handler.NewCheckInsHandler(checkInsService),
		Recommendations: handler.NewRecommendationHandler(recommendationUseCase, cfg.DefaultRecommendLimit),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("🚀 MuTeLu-App server starting on :%s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("サーバー起動失敗: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Printf("🛑 サーバーを停止しています...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️ サーバー停止失敗: %v", err)
	}
}

// newPlacesRepository 設定に応じてカタログの読み込み元を選択
func newPlacesRepository(cfg *config.Config) (domainrepo.PlacesRepository, error) {
	switch cfg.CatalogSource {
	case config.CatalogSourceSupabase:
		client, err := database.NewSupabaseClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
		if err != nil {
			return nil, err
		}
		if err := client.HealthCheck(); err != nil {
			return nil, fmt.Errorf("Supabaseヘルスチェック失敗: %w", err)
		}
		log.Printf("✅ Supabase connection successful!")
		return repository.NewSupabasePlacesRepository(client), nil
	default:
		log.Printf("📄 カタログファイル: %s", cfg.CatalogPath)
		return repository.NewJSONPlacesRepository(cfg.CatalogPath), nil
	}
}

// newCheckInsRepository 設定に応じてチェックイン記録の保存先を選択
func newCheckInsRepository(ctx context.Context, cfg *config.Config) (domainrepo.CheckInsRepository, func() error, error) {
	switch cfg.CheckInStore {
	case config.StorePostgres:
		client, err := database.NewPostgreSQLClientWithRetry(cfg.DatabaseURL, 3, 2*time.Second)
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewPostgresCheckInsRepository(client)
		if err := repo.EnsureSchema(ctx); err != nil {
			client.Close()
			return nil, nil, err
		}
		return repo, client.Close, nil
	default:
		return repository.NewMemoryCheckInsRepository(), noopClose, nil
	}
}

// newMembersRepository 設定に応じて会員情報の保存先を選択
func newMembersRepository(ctx context.Context, cfg *config.Config) (domainrepo.MembersRepository, func() error, error) {
	switch cfg.MemberStore {
	case config.StoreFirestore:
		client, err := firestore.NewFirestoreClient(ctx, cfg.FirestoreProjectID)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewFirestoreMembersRepository(client.GetClient()), client.Close, nil
	default:
		return repository.NewMemoryMembersRepository(), noopClose, nil
	}
}

func noopClose() error { return nil }
