package model

import "strings"

// LatLng 緯度経度を表す基本的な型（距離計算などで使用）
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// LocalizedText タイ語・英語の2言語テキスト
type LocalizedText struct {
	TH string `json:"th" firestore:"th"`
	EN string `json:"en" firestore:"en"`
}

// Localized 言語コードに応じたテキストを返す（"th"以外は英語）
func (t LocalizedText) Localized(lang string) string {
	if lang == "th" {
		return t.TH
	}
	return t.EN
}

// DetailItem スポット詳細のキー・値ペア（表示順を保持する）
type DetailItem struct {
	Key   LocalizedText `json:"key"`
	Value LocalizedText `json:"value"`
}

// Place 聖地・寺院などのスポットを表すモデル
type Place struct {
	ID            string       `json:"id" db:"id"`                        // 安定したスポットID
	NameTH        string       `json:"nameTH" db:"name_th"`               // スポット名（タイ語）
	NameEN        string       `json:"nameEN" db:"name_en"`               // スポット名（英語）
	DescriptionTH string       `json:"descriptionTH" db:"description_th"` // 説明（タイ語）
	DescriptionEN string       `json:"descriptionEN" db:"description_en"` // 説明（英語）
	LocationTH    string       `json:"locationTH" db:"location_th"`       // 所在地（タイ語）
	LocationEN    string       `json:"locationEN" db:"location_en"`       // 所在地（英語）
	Latitude      float64      `json:"latitude" db:"latitude"`            // 緯度
	Longitude     float64      `json:"longitude" db:"longitude"`          // 経度
	ImageName     string       `json:"imageName" db:"image_name"`         // 画像リソース名
	Tags          []string     `json:"tags" db:"tags"`                    // タグ（推薦の特徴量）
	Rating        float64      `json:"rating" db:"rating"`                // 評価値
	Details       []DetailItem `json:"details" db:"details"`              // 詳細情報
}

// ToLatLng スポットの位置情報をLatLng型に変換
func (p *Place) ToLatLng() LatLng {
	return LatLng{Lat: p.Latitude, Lng: p.Longitude}
}

// Name 言語コードに応じたスポット名を返す
func (p *Place) Name(lang string) string {
	return LocalizedText{TH: p.NameTH, EN: p.NameEN}.Localized(lang)
}

// HasTag スポットが指定タグを持つかチェック
func (p *Place) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// NormalizeTags タグの前後空白を除去し、空文字と重複を取り除く（出現順は保持）
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	result := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		result = append(result, t)
	}
	return result
}

// Location リクエストで受け取る現在地
type Location struct {
	Latitude  float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"min=-180,max=180"`
}

// ToLatLng Location を LatLng に変換
func (l *Location) ToLatLng() LatLng {
	return LatLng{Lat: l.Latitude, Lng: l.Longitude}
}

// ScoredPlace 類似度スコア付きのスポット
type ScoredPlace struct {
	Place Place   `json:"place"`
	Score float64 `json:"score"`
}

// PlaceDetailResponse スポット詳細APIのレスポンス
type PlaceDetailResponse struct {
	Place   Place  `json:"place"`
	MapsURL string `json:"maps_url"`
}

// GetPlacesResponse スポット一覧APIのレスポンス
type GetPlacesResponse struct {
	Places []Place `json:"places"`
}

// TagSummary タグ一覧APIの1要素
type TagSummary struct {
	Tag        string `json:"tag"`
	NameTH     string `json:"nameTH"`
	PlaceCount int    `json:"placeCount"`
	TopPlaceID string `json:"topPlaceID"` // タグ内で最も評価の高いスポット
}

// WalkingRoute 現在地からスポットまでの徒歩ルート
type WalkingRoute struct {
	PlaceID         string  `json:"place_id"`
	DurationSeconds int     `json:"duration_seconds"`
	DistanceMeters  int     `json:"distance_meters"`
	Polyline        string  `json:"polyline"` // Google形式のエンコード済みポリライン
	MapsURL         string  `json:"maps_url"`
	StraightLineM   float64 `json:"straight_line_meters"`
}
