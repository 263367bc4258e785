package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"MuTeLu-App/internal/domain/model"
	"MuTeLu-App/internal/domain/repository"
)

// JSONPlacesRepository 同梱のJSONファイルからスポットカタログを読み込むリポジトリ
type JSONPlacesRepository struct {
	path string
}

// NewJSONPlacesRepository 新しいJSONPlacesRepositoryインスタンスを作成
func NewJSONPlacesRepository(path string) repository.PlacesRepository {
	return &JSONPlacesRepository{
		path: path,
	}
}

// GetAll はファイルを読み込み、全スポットを返す（呼び出しごとに再読み込みする）
func (r *JSONPlacesRepository) GetAll(ctx context.Context) ([]model.Place, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("カタログファイルの読み込み失敗: %w", err)
	}

	places, err := DecodePlaces(data)
	if err != nil {
		return nil, err
	}

	log.Printf("📄 カタログ読み込み完了: %s (%d件)", r.path, len(places))
	return places, nil
}

// DecodePlaces はJSON配列をスポットのスライスに変換する
func DecodePlaces(data []byte) ([]model.Place, error) {
	var places []model.Place
	if err := json.Unmarshal(data, &places); err != nil {
		return nil, fmt.Errorf("カタログJSONアンマーシャル失敗: %w", err)
	}
	if places == nil {
		places = []model.Place{}
	}
	return normalizePlaces(places), nil
}
