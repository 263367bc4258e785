package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"MuTeLu-App/internal/domain/model"
)

// カタログ・ストアの種類
const (
	CatalogSourceFile     = "file"
	CatalogSourceSupabase = "supabase"

	StoreMemory    = "memory"
	StorePostgres  = "postgres"
	StoreFirestore = "firestore"
)

// Config アプリケーション設定
type Config struct {
	Port    string
	GinMode string

	CatalogSource string
	CatalogPath   string

	SupabaseURL     string
	SupabaseAnonKey string

	CheckInStore string
	DatabaseURL  string

	MemberStore        string
	FirestoreProjectID string

	GoogleMapsAPIKey string

	CheckInRadiusMeters   float64
	CheckInMeritPoints    int
	DefaultRecommendLimit int
}

// Load は.envファイルと環境変数から設定を読み込む
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️ .envファイルが見つかりません。システム環境変数を使用します")
	}
	return FromEnv()
}

// FromEnv は環境変数のみから設定を読み込む
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		CatalogSource:      getEnv("CATALOG_SOURCE", CatalogSourceFile),
		CatalogPath:        getEnv("CATALOG_PATH", "data/sacred_places.json"),
		SupabaseURL:        os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey:    os.Getenv("SUPABASE_ANON_KEY"),
		CheckInStore:       getEnv("CHECKIN_STORE", StoreMemory),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		MemberStore:        getEnv("MEMBER_STORE", StoreMemory),
		FirestoreProjectID: os.Getenv("FIRESTORE_PROJECT_ID"),
		GoogleMapsAPIKey:   os.Getenv("GOOGLE_MAPS_API_KEY"),
	}

	var err error
	if cfg.CheckInRadiusMeters, err = getFloat("CHECKIN_RADIUS_METERS", model.DefaultCheckInRadiusMeters); err != nil {
		return nil, err
	}
	if cfg.CheckInMeritPoints, err = getInt("CHECKIN_MERIT_POINTS", model.DefaultCheckInMeritPoints); err != nil {
		return nil, err
	}
	if cfg.DefaultRecommendLimit, err = getInt("RECOMMEND_DEFAULT_LIMIT", model.DefaultRecommendationLimit); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate は選択されたストアに必要な設定が揃っているかチェックする
func (c *Config) Validate() error {
	switch c.CatalogSource {
	case CatalogSourceFile:
		if c.CatalogPath == "" {
			return fmt.Errorf("CATALOG_PATH環境変数が設定されていません")
		}
	case CatalogSourceSupabase:
		if c.SupabaseURL == "" {
			return fmt.Errorf("SUPABASE_URL環境変数が設定されていません")
		}
		if c.SupabaseAnonKey == "" {
			return fmt.Errorf("SUPABASE_ANON_KEY環境変数が設定されていません")
		}
	default:
		return fmt.Errorf("CATALOG_SOURCEが不正です: %s", c.CatalogSource)
	}

	switch c.CheckInStore {
	case StoreMemory:
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL環境変数が設定されていません")
		}
	default:
		return fmt.Errorf("CHECKIN_STOREが不正です: %s", c.CheckInStore)
	}

	switch c.MemberStore {
	case StoreMemory:
	case StoreFirestore:
		if c.FirestoreProjectID == "" {
			return fmt.Errorf("FIRESTORE_PROJECT_ID環境変数が設定されていません")
		}
	default:
		return fmt.Errorf("MEMBER_STOREが不正です: %s", c.MemberStore)
	}

	if c.CheckInRadiusMeters <= 0 {
		return fmt.Errorf("CHECKIN_RADIUS_METERSは正の値である必要があります")
	}
	if c.DefaultRecommendLimit < 0 {
		return fmt.Errorf("RECOMMEND_DEFAULT_LIMITは0以上である必要があります")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s環境変数が整数ではありません: %w", key, err)
	}
	return n, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s環境変数が数値ではありません: %w", key, err)
	}
	return f, nil
}
