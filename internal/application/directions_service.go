package application

import (
	"context"
	"fmt"

	"MuTeLu-App/internal/domain/helper"
	"MuTeLu-App/internal/domain/model"
	"MuTeLu-App/internal/domain/repository"
)

// DirectionsService 現在地からスポットへの徒歩ルートを提供するサービス
type DirectionsService interface {
	WalkingRoute(ctx context.Context, origin model.LatLng, placeID string) (*model.WalkingRoute, error)
}

type directionsServiceImpl struct {
	placesService PlacesService
	provider      repository.DirectionsProvider
}

// NewDirectionsService providerがnilの場合、経路検索は常にErrDirectionsDisabledを返す
func NewDirectionsService(placesService PlacesService, provider repository.DirectionsProvider) DirectionsService {
	return &directionsServiceImpl{
		placesService: placesService,
		provider:      provider,
	}
}

func (s *directionsServiceImpl) WalkingRoute(ctx context.Context, origin model.LatLng, placeID string) (*model.WalkingRoute, error) {
	place, err := s.placesService.Get(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if s.provider == nil {
		return nil, model.ErrDirectionsDisabled
	}

	route, err := s.provider.GetWalkingRoute(ctx, origin, place.ToLatLng())
	if err != nil {
		return nil, fmt.Errorf("徒歩ルートの取得失敗: %w", err)
	}

	route.PlaceID = place.ID
	route.MapsURL = helper.MapsURL(place)
	route.StraightLineM = helper.DistanceToPlace(origin, place)
	return route, nil
}
