package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"MuTeLu-App/internal/domain/model"
	"MuTeLu-App/internal/domain/repository"
)

const defaultDirectionsURL = "https://maps.googleapis.com/maps/api/directions/json"

// GoogleDirectionsProvider はGoogle Maps Directions APIを使用した経路検索の実装
type GoogleDirectionsProvider struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

// NewGoogleDirectionsProvider は新しいプロバイダを生成する
func NewGoogleDirectionsProvider(apiKey string) *GoogleDirectionsProvider {
	return &GoogleDirectionsProvider{
		apiKey:     apiKey,
		baseURL:    defaultDirectionsURL,
		language:   model.LangTH,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// WithBaseURL はAPIのエンドポイントを差し替える（テスト用）
func (g *GoogleDirectionsProvider) WithBaseURL(baseURL string) *GoogleDirectionsProvider {
	g.baseURL = baseURL
	return g
}

var _ repository.DirectionsProvider = (*GoogleDirectionsProvider)(nil)

// GetWalkingRoute はGoogle Maps Directions APIを呼び出して徒歩ルート情報を取得する
func (g *GoogleDirectionsProvider) GetWalkingRoute(ctx context.Context, origin model.LatLng, destination model.LatLng) (*model.WalkingRoute, error) {
	// 1. HTTPリクエストを作成・実行
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.buildURL(origin, destination), nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("APIからエラーステータスが返されました: %s", resp.Status)
	}

	// 2. JSONレスポンスをパース
	var apiResp googleRouteResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}
	if apiResp.Status != "" && apiResp.Status != "OK" {
		return nil, fmt.Errorf("APIエラー %s: %s", apiResp.Status, apiResp.ErrorMessage)
	}
	if len(apiResp.Routes) == 0 {
		return nil, errors.New("APIから有効なルートが返されませんでした")
	}

	// 3. ドメインモデルに変換して返す
	firstRoute := apiResp.Routes[0]
	result := &model.WalkingRoute{
		Polyline: firstRoute.OverviewPolyline.Points,
	}
	for _, leg := range firstRoute.Legs {
		result.DurationSeconds += leg.Duration.Value
		result.DistanceMeters += leg.Distance.Value
	}
	return result, nil
}

func (g *GoogleDirectionsProvider) buildURL(origin, destination model.LatLng) string {
	params := url.Values{}
	params.Set("origin", fmt.Sprintf("%f,%f", origin.Lat, origin.Lng))
	params.Set("destination", fmt.Sprintf("%f,%f", destination.Lat, destination.Lng))
	params.Set("mode", "walking")
	params.Set("language", g.language)
	params.Set("key", g.apiKey)

	return fmt.Sprintf("%s?%s", g.baseURL, params.Encode())
}

// --- Google Maps APIのレスポンスをパースするための構造体 ---

type googleRouteResponse struct {
	Routes       []route `json:"routes"`
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message,omitempty"`
}
type route struct {
	Legs             []leg            `json:"legs"`
	OverviewPolyline overviewPolyline `json:"overview_polyline"`
}
type leg struct {
	Duration valueField `json:"duration"` // seconds
	Distance valueField `json:"distance"` // meters
}
type valueField struct {
	Value int `json:"value"`
}
type overviewPolyline struct {
	Points string `json:"points"`
}
