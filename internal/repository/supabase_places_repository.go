package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"MuTeLu-App/internal/domain/model"
	"MuTeLu-App/internal/domain/repository"
	"MuTeLu-App/internal/infrastructure/database"
)

const sacredPlacesTable = "sacred_places"

// SupabasePlacesRepository Supabaseの sacred_places テーブルからカタログを読み込むリポジトリ
type SupabasePlacesRepository struct {
	client *database.SupabaseClient
}

func NewSupabasePlacesRepository(client *database.SupabaseClient) repository.PlacesRepository {
	return &SupabasePlacesRepository{
		client: client,
	}
}

// placeRow sacred_places テーブルの1行（location列がある場合は緯度経度より優先）
type placeRow struct {
	model.Place
	Location *GeoPoint `json:"location,omitempty"`
}

func (r *SupabasePlacesRepository) GetAll(ctx context.Context) ([]model.Place, error) {
	data, _, err := r.client.GetClient().From(sacredPlacesTable).Select("*", "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("スポットデータの取得失敗: %w", err)
	}
	return decodePlaceRows(data)
}

// decodePlaceRows はSupabaseのレスポンスJSONをスポットに変換する
func decodePlaceRows(data []byte) ([]model.Place, error) {
	var rows []placeRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("スポットデータのJSONアンマーシャル失敗: %w", err)
	}

	places := make([]model.Place, 0, len(rows))
	for _, row := range rows {
		p := row.Place
		if lat, lng, ok := GeoPointToLatLng(row.Location); ok {
			p.Latitude, p.Longitude = lat, lng
		}
		places = append(places, p)
	}
	return normalizePlaces(places), nil
}
