package application

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/paulmach/orb"

	"MuTeLu-App/internal/domain/helper"
	"MuTeLu-App/internal/domain/model"
	"MuTeLu-App/internal/domain/recommend"
	"MuTeLu-App/internal/domain/repository"
)

// PlaceFilter スポット一覧の絞り込み条件
type PlaceFilter struct {
	Tag          string     // 空文字の場合は絞り込まない
	Bound        *orb.Bound // nilの場合は絞り込まない
	SortByRating bool       // falseの場合はカタログ順
}

// PlacesService スポットカタログの参照と再読み込みを提供するサービス
type PlacesService interface {
	// List 条件に合うスポットをカタログ順で取得
	List(ctx context.Context, filter PlaceFilter) ([]model.Place, error)

	// Get 指定IDのスポットを取得
	Get(ctx context.Context, id string) (*model.Place, error)

	// Nearby 指定地点から半径内のスポットを近い順に取得
	Nearby(ctx context.Context, origin model.LatLng, radiusMeters float64) ([]model.Place, error)

	// Tags カタログに現れるタグを辞書順で取得
	Tags(ctx context.Context) ([]model.TagSummary, error)

	// Reload カタログを再読み込みし、推薦エンジンを再構築する
	Reload(ctx context.Context) (*recommend.Recommender, error)
}

// placesServiceImpl PlacesServiceの実装
type placesServiceImpl struct {
	placesRepo repository.PlacesRepository
	snapshot   *recommend.Snapshot
}

// NewPlacesService PlacesServiceの新しいインスタンスを作成
func NewPlacesService(placesRepo repository.PlacesRepository, snapshot *recommend.Snapshot) PlacesService {
	return &placesServiceImpl{
		placesRepo: placesRepo,
		snapshot:   snapshot,
	}
}

func (s *placesServiceImpl) List(ctx context.Context, filter PlaceFilter) ([]model.Place, error) {
	places := s.snapshot.Load().Places()
	if filter.Tag != "" {
		places = helper.FilterByTag(places, filter.Tag)
	}
	if filter.Bound != nil {
		places = helper.FilterByBound(places, *filter.Bound)
	}
	if filter.SortByRating {
		helper.SortByRating(places)
	}
	return places, nil
}

func (s *placesServiceImpl) Get(ctx context.Context, id string) (*model.Place, error) {
	place, ok := s.snapshot.Load().Place(id)
	if !ok {
		return nil, fmt.Errorf("スポットID %s: %w", id, model.ErrPlaceNotFound)
	}
	return &place, nil
}

func (s *placesServiceImpl) Nearby(ctx context.Context, origin model.LatLng, radiusMeters float64) ([]model.Place, error) {
	if math.IsNaN(radiusMeters) || math.IsInf(radiusMeters, 0) || radiusMeters <= 0 {
		return nil, fmt.Errorf("半径は正の値である必要があります: %w", model.ErrInvalidInput)
	}
	return helper.FindNearby(origin, s.snapshot.Load().Places(), radiusMeters), nil
}

func (s *placesServiceImpl) Tags(ctx context.Context) ([]model.TagSummary, error) {
	engine := s.snapshot.Load()
	places := engine.Places()

	vocabulary := engine.Vocabulary()
	tags := make([]model.TagSummary, 0, len(vocabulary))
	for _, tag := range vocabulary {
		tagged := helper.FilterByTag(places, tag)
		summary := model.TagSummary{
			Tag:        tag,
			NameTH:     model.GetTagThaiName(tag),
			PlaceCount: len(tagged),
		}
		if top := helper.FindHighestRated(tagged); top != nil {
			summary.TopPlaceID = top.ID
		}
		tags = append(tags, summary)
	}
	return tags, nil
}

// Reload 実行中の推薦は差し替え前のカタログで完了する
func (s *placesServiceImpl) Reload(ctx context.Context) (*recommend.Recommender, error) {
	places, err := s.placesRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("カタログの読み込み失敗: %w", err)
	}

	r := s.snapshot.Rebuild(places)
	log.Printf("✅ カタログ再構築完了: %d件, タグ語彙%d件", r.Len(), len(r.Vocabulary()))
	return r, nil
}
