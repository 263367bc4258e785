package model

import "time"

// CheckInRecord スポットへのチェックイン記録
type CheckInRecord struct {
	ID          string    `json:"id" db:"id"`
	PlaceID     string    `json:"placeID" db:"place_id"`
	PlaceNameTH string    `json:"placeNameTH" db:"place_name_th"`
	PlaceNameEN string    `json:"placeNameEN" db:"place_name_en"`
	MeritPoints int       `json:"meritPoints" db:"merit_points"`
	MemberEmail string    `json:"memberEmail" db:"member_email"`
	Date        time.Time `json:"date" db:"date"`
	Latitude    float64   `json:"latitude" db:"latitude"`
	Longitude   float64   `json:"longitude" db:"longitude"`
}

// SameDay 2つの時刻が同じ暦日かどうか（aのタイムゾーンで判定）
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// CheckInRequest チェックインAPIのリクエスト
type CheckInRequest struct {
	MemberEmail  string    `json:"member_email" binding:"required,email"`
	PlaceID      string    `json:"place_id" binding:"required"`
	UserLocation *Location `json:"user_location" binding:"required"`
}

// CheckInResponse チェックインAPIのレスポンス
type CheckInResponse struct {
	Status           string        `json:"status"`
	Record           CheckInRecord `json:"record"`
	TotalMeritPoints int           `json:"total_merit_points"`
	DistanceMeters   float64       `json:"distance_meters"`
}

// MeritSummary 会員の徳ポイント集計
type MeritSummary struct {
	MemberEmail string          `json:"member_email"`
	TotalPoints int             `json:"total_points"`
	Records     []CheckInRecord `json:"records"`
}
