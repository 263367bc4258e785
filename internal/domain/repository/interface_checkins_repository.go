package repository

import (
	"context"

	"MuTeLu-App/internal/domain/model"
)

// CheckInsRepository はチェックイン記録の永続化を担当する
type CheckInsRepository interface {
	// AddIfAbsentOnDay は同じ会員・スポット・暦日の記録がない場合のみ保存する
	// 判定と保存は不可分に行い、保存した場合にtrueを返す
	AddIfAbsentOnDay(ctx context.Context, record *model.CheckInRecord) (bool, error)
	// ListByMember は会員のチェックイン記録を新しい順に返す
	ListByMember(ctx context.Context, email string) ([]model.CheckInRecord, error)
	// RemoveAllByMember は会員の記録を全て削除し、削除した記録の徳ポイント合計を返す
	RemoveAllByMember(ctx context.Context, email string) (int, error)
}
