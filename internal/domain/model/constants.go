package model

// アプリケーション全体で使用するデフォルト値
const (
	// DefaultRecommendationLimit おすすめスポットのデフォルト件数
	DefaultRecommendationLimit = 3

	// DefaultCheckInRadiusMeters チェックインが可能なスポットからの距離（メートル）
	DefaultCheckInRadiusMeters = 100.0

	// DefaultCheckInMeritPoints チェックイン1回で獲得できる徳ポイント
	DefaultCheckInMeritPoints = 15

	// DefaultNearbyRadiusMeters 周辺スポット検索のデフォルト半径（メートル）
	DefaultNearbyRadiusMeters = 200.0
)

// 言語コード
const (
	LangTH = "th"
	LangEN = "en"
)

// よく使われるタグ
const (
	TagTemple = "temple"
	TagShrine = "shrine"
	TagLuck   = "luck"
	TagLove   = "love"
	TagMoney  = "money"
	TagCareer = "career"
	TagHealth = "health"

	TagSuccess    = "success"
	TagEducation  = "education"
	TagLongevity  = "longevity"
	TagProtection = "protection"
)

// TagNameMap はタグから表示名（タイ語）へのマッピング
var TagNameMap = map[string]string{
	TagTemple: "วัด",
	TagShrine: "ศาลเจ้า",
	TagLuck:   "โชคลาภ",
	TagLove:   "ความรัก",
	TagMoney:  "การเงิน",
	TagCareer: "การงาน",
	TagHealth: "สุขภาพ",

	TagSuccess:    "ความสำเร็จ",
	TagEducation:  "การเรียน",
	TagLongevity:  "อายุยืน",
	TagProtection: "แคล้วคลาด",
}

// GetTagThaiName はタグからタイ語の表示名を取得する
func GetTagThaiName(tag string) string {
	if name, ok := TagNameMap[tag]; ok {
		return name
	}
	return tag // デフォルトはそのまま返す
}
