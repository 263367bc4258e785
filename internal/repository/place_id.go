package repository

import (
	"strings"

	"github.com/google/uuid"

	"MuTeLu-App/internal/domain/model"
)

// placeIDNamespace スポットID生成用の名前空間
var placeIDNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://mutelu.app/sacred-places"))

// StablePlaceID は英語名と所在地からスポットIDを決定的に生成する
// 同じ名前・所在地からは常に同じIDになる
func StablePlaceID(nameEN, locationEN string) string {
	key := strings.ToLower(strings.TrimSpace(nameEN)) + "|" + strings.ToLower(strings.TrimSpace(locationEN))
	return uuid.NewSHA1(placeIDNamespace, []byte(key)).String()
}

// normalizePlaces はタグを正規化し、IDのないスポットに安定IDを割り当てる
func normalizePlaces(places []model.Place) []model.Place {
	for i := range places {
		places[i].Tags = model.NormalizeTags(places[i].Tags)
		if strings.TrimSpace(places[i].ID) == "" {
			places[i].ID = StablePlaceID(places[i].NameEN, places[i].LocationEN)
		}
	}
	return places
}
