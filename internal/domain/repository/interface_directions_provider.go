package repository

import (
	"context"

	"MuTeLu-App/internal/domain/model"
)

// DirectionsProvider 外部の経路検索APIから徒歩ルートを取得する
type DirectionsProvider interface {
	GetWalkingRoute(ctx context.Context, origin model.LatLng, destination model.LatLng) (*model.WalkingRoute, error)
}
