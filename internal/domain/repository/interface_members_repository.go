package repository

import (
	"context"

	"MuTeLu-App/internal/domain/model"
)

// MembersRepository は会員情報の永続化を担当する
type MembersRepository interface {
	Create(ctx context.Context, member *model.Member) error
	GetByEmail(ctx context.Context, email string) (*model.Member, error)
	GetAll(ctx context.Context) ([]model.Member, error)
	// Update はプロフィールと状態を更新する（徳ポイントは変更しない）
	Update(ctx context.Context, member *model.Member) error
	// IncrementMeritPoints は徳ポイントを不可分に加算し、加算後の合計を返す
	IncrementMeritPoints(ctx context.Context, id string, delta int) (int, error)
	Delete(ctx context.Context, id string) error
}
