package model

// RecommendationResponse おすすめスポットAPIのレスポンス
type RecommendationResponse struct {
	Source          *Place        `json:"source"` // 最後にチェックインしたスポット（履歴がない場合はnull）
	Recommendations []ScoredPlace `json:"recommendations"`
}

// ReloadCatalogResponse カタログ再読み込みAPIのレスポンス
type ReloadCatalogResponse struct {
	Status         string `json:"status"`
	PlaceCount     int    `json:"place_count"`
	VocabularySize int    `json:"vocabulary_size"`
}
