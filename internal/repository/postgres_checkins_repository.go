package repository

import (
	"context"
	"errors"
	"fmt"

	"MuTeLu-App/internal/domain/model"
	"MuTeLu-App/internal/infrastructure/database"

	"github.com/lib/pq"
)

// CheckInRecordsSchema checkin_records テーブルの定義
const CheckInRecordsSchema = `
CREATE TABLE IF NOT EXISTS checkin_records (
	id            UUID PRIMARY KEY,
	place_id      TEXT NOT NULL,
	place_name_th TEXT NOT NULL,
	place_name_en TEXT NOT NULL,
	merit_points  INTEGER NOT NULL,
	member_email  TEXT NOT NULL,
	date          TIMESTAMPTZ NOT NULL,
	latitude      DOUBLE PRECISION NOT NULL,
	longitude     DOUBLE PRECISION NOT NULL,
	check_day     DATE NOT NULL
);
ALTER TABLE checkin_records ADD COLUMN IF NOT EXISTS check_day DATE;
UPDATE checkin_records SET check_day = (date AT TIME ZONE 'UTC')::date WHERE check_day IS NULL;
CREATE INDEX IF NOT EXISTS idx_checkin_records_member ON checkin_records (member_email, date DESC);
CREATE UNIQUE INDEX IF NOT EXISTS uq_checkin_records_member_place_day ON checkin_records (member_email, place_id, check_day);
`

// checkDayLayout check_day 列に渡す暦日の書式（記録日時のタイムゾーンで評価する）
const checkDayLayout = "2006-01-02"

// uniqueViolation PostgreSQLの一意制約違反コード
const uniqueViolation = "23505"

// PostgresCheckInsRepository PostgreSQLの checkin_records テーブルを使用するリポジトリ
type PostgresCheckInsRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresCheckInsRepository(client *database.PostgreSQLClient) *PostgresCheckInsRepository {
	return &PostgresCheckInsRepository{
		client: client,
	}
}

// EnsureSchema はテーブルが存在しない場合に作成する
func (r *PostgresCheckInsRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.client.DB.ExecContext(ctx, CheckInRecordsSchema); err != nil {
		return fmt.Errorf("checkin_recordsテーブルの作成失敗: %w", err)
	}
	return nil
}

func (r *PostgresCheckInsRepository) AddIfAbsentOnDay(ctx context.Context, record *model.CheckInRecord) (bool, error) {
	query := `
		INSERT INTO checkin_records
			(id, place_id, place_name_th, place_name_en, merit_points, member_email, date, latitude, longitude, check_day)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::date)
		ON CONFLICT (member_email, place_id, check_day) DO NOTHING
	`
	result, err := r.client.DB.ExecContext(ctx, query,
		record.ID, record.PlaceID, record.PlaceNameTH, record.PlaceNameEN,
		record.MeritPoints, record.MemberEmail, record.Date, record.Latitude, record.Longitude,
		record.Date.Format(checkDayLayout))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return false, nil
		}
		return false, fmt.Errorf("チェックイン記録の保存失敗: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("保存件数の取得失敗: %w", err)
	}
	return affected == 1, nil
}

func (r *PostgresCheckInsRepository) ListByMember(ctx context.Context, email string) ([]model.CheckInRecord, error) {
	query := `
		SELECT id, place_id, place_name_th, place_name_en, merit_points, member_email, date, latitude, longitude
		FROM checkin_records
		WHERE member_email = $1
		ORDER BY date DESC
	`
	rows, err := r.client.DB.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("チェックイン記録の取得失敗: %w", err)
	}
	defer rows.Close()

	records := []model.CheckInRecord{}
	for rows.Next() {
		var rec model.CheckInRecord
		err := rows.Scan(&rec.ID, &rec.PlaceID, &rec.PlaceNameTH, &rec.PlaceNameEN,
			&rec.MeritPoints, &rec.MemberEmail, &rec.Date, &rec.Latitude, &rec.Longitude)
		if err != nil {
			return nil, fmt.Errorf("チェックイン記録スキャンエラー: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("行イテレーション中のエラー: %w", err)
	}
	return records, nil
}

func (r *PostgresCheckInsRepository) RemoveAllByMember(ctx context.Context, email string) (int, error) {
	query := `
		WITH removed AS (
			DELETE FROM checkin_records WHERE member_email = $1 RETURNING merit_points
		)
		SELECT COALESCE(SUM(merit_points), 0) FROM removed
	`
	var removedPoints int
	if err := r.client.DB.QueryRowContext(ctx, query, email).Scan(&removedPoints); err != nil {
		return 0, fmt.Errorf("チェックイン記録の削除失敗: %w", err)
	}
	return removedPoints, nil
}
