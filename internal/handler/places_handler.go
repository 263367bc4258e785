package handler

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"

	"MuTeLu-App/internal/application"
	"MuTeLu-App/internal/domain/helper"
	"MuTeLu-App/internal/domain/model"
)

// PlacesHandler 聖地スポットに関するHTTPハンドラー
type PlacesHandler struct {
	placesService     application.PlacesService
	directionsService application.DirectionsService
}

// NewPlacesHandler PlacesHandlerの新しいインスタンスを作成
func NewPlacesHandler(placesService application.PlacesService, directionsService application.DirectionsService) *PlacesHandler {
	return &PlacesHandler{
		placesService:     placesService,
		directionsService: directionsService,
	}
}

// ListPlaces GET /places - タグ・境界ボックスで絞り込んだスポット一覧を取得（sort=ratingで評価順）
func (h *PlacesHandler) ListPlaces(c *gin.Context) {
	filter := application.PlaceFilter{
		Tag:          strings.TrimSpace(c.Query("tag")),
		SortByRating: c.Query("sort") == "rating",
	}

	if bbox := c.Query("bbox"); bbox != "" {
		bound, err := parseBoundingBox(bbox)
		if err != nil {
			respondError(c, err)
			return
		}
		filter.Bound = &bound
	}

	places, err := h.placesService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.GetPlacesResponse{Places: places})
}

// GetPlaceDetail GET /places/:id - スポット詳細と経路案内URLを取得
func (h *PlacesHandler) GetPlaceDetail(c *gin.Context) {
	place, err := h.placesService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.PlaceDetailResponse{
		Place:   *place,
		MapsURL: helper.MapsURL(place),
	})
}

// GetNearbyPlaces GET /places/nearby - 指定地点周辺のスポットを近い順に取得
func (h *PlacesHandler) GetNearbyPlaces(c *gin.Context) {
	lat, err := parseFloatQuery(c, "lat", -90, 90)
	if err != nil {
		respondError(c, err)
		return
	}
	lng, err := parseFloatQuery(c, "lng", -180, 180)
	if err != nil {
		respondError(c, err)
		return
	}

	radius := model.DefaultNearbyRadiusMeters
	if c.Query("radius") != "" {
		var ok bool
		radius, ok = parseFinite(c.Query("radius"))
		if !ok {
			respondError(c, &ValidationError{Field: "radius", Message: "数値で指定してください"})
			return
		}
	}

	places, err := h.placesService.Nearby(c.Request.Context(), model.LatLng{Lat: lat, Lng: lng}, radius)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.GetPlacesResponse{Places: places})
}

// GetWalkingRoute GET /places/:id/route - 現在地からスポットまでの徒歩ルート
func (h *PlacesHandler) GetWalkingRoute(c *gin.Context) {
	lat, err := parseFloatQuery(c, "lat", -90, 90)
	if err != nil {
		respondError(c, err)
		return
	}
	lng, err := parseFloatQuery(c, "lng", -180, 180)
	if err != nil {
		respondError(c, err)
		return
	}

	route, err := h.directionsService.WalkingRoute(c.Request.Context(), model.LatLng{Lat: lat, Lng: lng}, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, route)
}

// ListTags GET /tags - カタログのタグ一覧
func (h *PlacesHandler) ListTags(c *gin.Context) {
	tags, err := h.placesService.Tags(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

// parseBoundingBox "min_lng,min_lat,max_lng,max_lat" 形式の文字列を解析
func parseBoundingBox(bbox string) (orb.Bound, error) {
	coords := strings.Split(bbox, ",")
	if len(coords) != 4 {
		return orb.Bound{}, &ValidationError{Field: "bbox", Message: "min_lng,min_lat,max_lng,max_lat の4つの値が必要です"}
	}

	names := []string{"min_lng", "min_lat", "max_lng", "max_lat"}
	values := make([]float64, 4)
	for i, raw := range coords {
		v, ok := parseFinite(strings.TrimSpace(raw))
		if !ok {
			return orb.Bound{}, &ValidationError{Field: "bbox." + names[i], Message: "数値で指定してください"}
		}
		values[i] = v
	}

	bound, err := helper.NewBound(values[0], values[1], values[2], values[3])
	if err != nil {
		return orb.Bound{}, &ValidationError{Field: "bbox", Message: err.Error()}
	}
	return bound, nil
}

// parseFloatQuery 必須の数値クエリパラメータを範囲チェック付きで取得
func parseFloatQuery(c *gin.Context, name string, lo, hi float64) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, &ValidationError{Field: name, Message: "必須パラメータです"}
	}
	v, ok := parseFinite(raw)
	if !ok {
		return 0, &ValidationError{Field: name, Message: "数値で指定してください"}
	}
	if v < lo || v > hi {
		return 0, &ValidationError{Field: name, Message: "範囲外の値です"}
	}
	return v, nil
}

// parseFinite は有限の数値のみ受け付ける（NaN, ±Inf は不可）
func parseFinite(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
