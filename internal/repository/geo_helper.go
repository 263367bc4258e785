package repository

import (
	"github.com/paulmach/orb"
)

// GeoPoint PostGIS POINT 型の JSON 表現
type GeoPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// GeoPointToLatLng PostGIS POINT を緯度経度に変換（不正な値の場合は ok=false）
func GeoPointToLatLng(geoPoint *GeoPoint) (lat, lng float64, ok bool) {
	if geoPoint == nil || len(geoPoint.Coordinates) < 2 {
		return 0, 0, false
	}

	point := orb.Point{geoPoint.Coordinates[0], geoPoint.Coordinates[1]}
	return point.Lat(), point.Lon(), true
}
