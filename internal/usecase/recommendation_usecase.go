package usecase

import (
	"context"
	"fmt"
	"log"

	"MuTeLu-App/internal/application"
	"MuTeLu-App/internal/domain/model"
	"MuTeLu-App/internal/domain/recommend"
)

type RecommendationUseCase interface {
	// Recommend は会員が最後にチェックインしたスポットを基準に、未訪問のスポットを推薦する
	Recommend(ctx context.Context, email string, limit int) (*model.RecommendationResponse, error)

	// ReloadCatalog はカタログを再読み込みし、推薦エンジンを差し替える
	ReloadCatalog(ctx context.Context) (*model.ReloadCatalogResponse, error)
}

// recommendationUseCaseImpl はRecommendationUseCaseの実装
type recommendationUseCaseImpl struct {
	snapshot        *recommend.Snapshot
	placesService   application.PlacesService
	checkInsService application.CheckInsService
}

// NewRecommendationUseCase は新しいRecommendationUseCaseインスタンスを作成
func NewRecommendationUseCase(
	snapshot *recommend.Snapshot,
	placesService application.PlacesService,
	checkInsService application.CheckInsService,
) RecommendationUseCase {
	return &recommendationUseCaseImpl{
		snapshot:        snapshot,
		placesService:   placesService,
		checkInsService: checkInsService,
	}
}

func (u *recommendationUseCaseImpl) Recommend(ctx context.Context, email string, limit int) (*model.RecommendationResponse, error) {
	// Step 1: チェックイン履歴を取得（新しい順）
	records, err := u.checkInsService.History(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("チェックイン履歴の取得に失敗: %w", err)
	}

	response := &model.RecommendationResponse{
		Recommendations: []model.ScoredPlace{},
	}
	if len(records) == 0 {
		log.Printf("ℹ️ チェックイン履歴がないため推薦なし: %s", email)
		return response, nil
	}

	// 以降は同じスナップショットを使う
	engine := u.snapshot.Load()

	// Step 2: 最新チェックインのスポットを基準にする
	source, ok := engine.Place(records[0].PlaceID)
	if !ok {
		log.Printf("⚠️ 最新チェックインのスポットがカタログにありません: %s", records[0].PlaceID)
		return response, nil
	}

	// Step 3: 訪問済みスポットを除外して推薦
	visited := make(map[string]struct{}, len(records))
	for _, r := range records {
		visited[r.PlaceID] = struct{}{}
	}

	response.Source = &source
	response.Recommendations = engine.RecommendScored(source, visited, limit)
	return response, nil
}

func (u *recommendationUseCaseImpl) ReloadCatalog(ctx context.Context) (*model.ReloadCatalogResponse, error) {
	log.Printf("🚀 カタログ再読み込み開始")

	engine, err := u.placesService.Reload(ctx)
	if err != nil {
		return nil, err
	}

	return &model.ReloadCatalogResponse{
		Status:         "success",
		PlaceCount:     engine.Len(),
		VocabularySize: len(engine.Vocabulary()),
	}, nil
}
