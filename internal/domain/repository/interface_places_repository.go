package repository

import (
	"context"

	"MuTeLu-App/internal/domain/model"
)

// PlacesRepository はスポットカタログの読み込みを担当する
type PlacesRepository interface {
	GetAll(ctx context.Context) ([]model.Place, error)
}
