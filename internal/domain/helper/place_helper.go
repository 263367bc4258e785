package helper

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"MuTeLu-App/internal/domain/model"
)

// ToPoint LatLng を orb.Point（[経度, 緯度]）に変換
func ToPoint(l model.LatLng) orb.Point {
	return orb.Point{l.Lng, l.Lat}
}

// DistanceMeters は2地点間の距離を計算する (m)
func DistanceMeters(p1, p2 model.LatLng) float64 {
	return geo.Distance(ToPoint(p1), ToPoint(p2))
}

// DistanceToPlace は現在地からスポットまでの距離を計算する (m)
func DistanceToPlace(from model.LatLng, place *model.Place) float64 {
	return DistanceMeters(from, place.ToLatLng())
}

// WithinRadius は現在地がスポットから radiusMeters 未満の距離にあるかチェックする
func WithinRadius(from model.LatLng, place *model.Place, radiusMeters float64) bool {
	return DistanceToPlace(from, place) < radiusMeters
}

// FilterByTag は指定されたタグを持つスポットのみを抽出する
func FilterByTag(places []model.Place, tag string) []model.Place {
	filtered := []model.Place{}
	for _, p := range places {
		if p.HasTag(tag) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FilterByBound は境界ボックス内のスポットのみを抽出する
func FilterByBound(places []model.Place, bound orb.Bound) []model.Place {
	filtered := []model.Place{}
	for _, p := range places {
		if bound.Contains(ToPoint(p.ToLatLng())) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FindNearby は基準地点から radiusMeters 以内のスポットを近い順に返す
func FindNearby(origin model.LatLng, places []model.Place, radiusMeters float64) []model.Place {
	nearby := []model.Place{}
	for _, p := range places {
		if DistanceToPlace(origin, &p) <= radiusMeters {
			nearby = append(nearby, p)
		}
	}
	SortByDistanceFromLocation(origin, nearby)
	return nearby
}

// FindByID はスライスから指定IDのスポットを探す
func FindByID(places []model.Place, id string) (*model.Place, bool) {
	for i := range places {
		if places[i].ID == id {
			return &places[i], true
		}
	}
	return nil, false
}

// FindHighestRated は最も評価の高いスポットを見つける
func FindHighestRated(places []model.Place) *model.Place {
	if len(places) == 0 {
		return nil
	}
	highest := &places[0]
	for i := range places {
		if places[i].Rating > highest.Rating {
			highest = &places[i]
		}
	}
	return highest
}

// SortByDistanceFromLocation は基準座標からの距離でスポットスライスをソートする
func SortByDistanceFromLocation(origin model.LatLng, targets []model.Place) {
	sort.SliceStable(targets, func(i, j int) bool {
		return DistanceMeters(origin, targets[i].ToLatLng()) < DistanceMeters(origin, targets[j].ToLatLng())
	})
}

// SortByRating は評価の高い順にスポットスライスをソートする
func SortByRating(places []model.Place) {
	sort.SliceStable(places, func(i, j int) bool {
		return places[i].Rating > places[j].Rating
	})
}

// MapsURL はスポットへの経路案内URL（Apple Maps）を生成する
func MapsURL(place *model.Place) string {
	return fmt.Sprintf("http://maps.apple.com/?daddr=%f,%f&dirflg=d", place.Latitude, place.Longitude)
}

// NewBound は最小・最大の経度緯度から境界ボックスを作成する
func NewBound(minLng, minLat, maxLng, maxLat float64) (orb.Bound, error) {
	if minLng >= maxLng || minLat >= maxLat {
		return orb.Bound{}, fmt.Errorf("無効な境界ボックス: min値がmax値以上です")
	}
	if minLng < -180 || maxLng > 180 || minLat < -90 || maxLat > 90 {
		return orb.Bound{}, fmt.Errorf("座標値が有効範囲外です")
	}
	return orb.Bound{
		Min: orb.Point{minLng, minLat},
		Max: orb.Point{maxLng, maxLat},
	}, nil
}
