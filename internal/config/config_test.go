package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "GIN_MODE", "CATALOG_SOURCE", "CATALOG_PATH", "SUPABASE_URL", "SUPABASE_ANON_KEY",
		"CHECKIN_STORE", "DATABASE_URL", "MEMBER_STORE", "FIRESTORE_PROJECT_ID",
		"CHECKIN_RADIUS_METERS", "CHECKIN_MERIT_POINTS", "RECOMMEND_DEFAULT_LIMIT", "GOOGLE_MAPS_API_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, CatalogSourceFile, cfg.CatalogSource)
	assert.Equal(t, "data/sacred_places.json", cfg.CatalogPath)
	assert.Equal(t, StoreMemory, cfg.CheckInStore)
	assert.Equal(t, StoreMemory, cfg.MemberStore)
	assert.Equal(t, 100.0, cfg.CheckInRadiusMeters)
	assert.Equal(t, 15, cfg.CheckInMeritPoints)
	assert.Equal(t, 3, cfg.DefaultRecommendLimit)
	assert.Empty(t, cfg.GoogleMapsAPIKey)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("CHECKIN_STORE", StorePostgres)
	t.Setenv("DATABASE_URL", "postgres://localhost/mutelu?sslmode=disable")
	t.Setenv("CHECKIN_RADIUS_METERS", "250.5")
	t.Setenv("RECOMMEND_DEFAULT_LIMIT", "5")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, StorePostgres, cfg.CheckInStore)
	assert.Equal(t, 250.5, cfg.CheckInRadiusMeters)
	assert.Equal(t, 5, cfg.DefaultRecommendLimit)
}

func TestFromEnv_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"supabaseにはURLが必要", map[string]string{"CATALOG_SOURCE": CatalogSourceSupabase}},
		{"postgresにはDATABASE_URLが必要", map[string]string{"CHECKIN_STORE": StorePostgres}},
		{"firestoreにはプロジェクトIDが必要", map[string]string{"MEMBER_STORE": StoreFirestore}},
		{"不明なカタログソース", map[string]string{"CATALOG_SOURCE": "s3"}},
		{"整数でないポイント", map[string]string{"CHECKIN_MERIT_POINTS": "many"}},
		{"負の半径", map[string]string{"CHECKIN_RADIUS_METERS": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
