package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"MuTeLu-App/internal/domain/model"
	"MuTeLu-App/internal/domain/repository"
)

const membersCollection = "members"

// FirestoreMembersRepository Firestoreの members コレクションを使用する会員リポジトリ
// ドキュメントIDは会員ID、メールアドレスは小文字で保存する
type FirestoreMembersRepository struct {
	client *firestore.Client
}

// NewFirestoreMembersRepository 新しいFirestoreMembersRepositoryインスタンスを作成
func NewFirestoreMembersRepository(client *firestore.Client) repository.MembersRepository {
	return &FirestoreMembersRepository{
		client: client,
	}
}

func (r *FirestoreMembersRepository) Create(ctx context.Context, member *model.Member) error {
	if _, err := r.GetByEmail(ctx, member.Email); err == nil {
		return fmt.Errorf("%s: %w", member.Email, model.ErrEmailTaken)
	} else if !errors.Is(err, model.ErrMemberNotFound) {
		return err
	}

	doc := *member
	doc.Email = strings.ToLower(doc.Email)
	_, err := r.client.Collection(membersCollection).Doc(member.ID).Create(ctx, doc)
	if err != nil {
		log.Printf("❌ Failed to save member %s: %v", member.ID, err)
		return fmt.Errorf("会員情報の保存に失敗しました: %w", err)
	}

	log.Printf("✅ Member saved: %s", member.ID)
	return nil
}

func (r *FirestoreMembersRepository) GetByEmail(ctx context.Context, email string) (*model.Member, error) {
	iter := r.client.Collection(membersCollection).
		Where("email", "==", strings.ToLower(email)).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, fmt.Errorf("%s: %w", email, model.ErrMemberNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("会員情報の取得に失敗しました: %w", err)
	}

	var member model.Member
	if err := doc.DataTo(&member); err != nil {
		return nil, fmt.Errorf("データの変換に失敗しました: %w", err)
	}
	return &member, nil
}

func (r *FirestoreMembersRepository) GetAll(ctx context.Context) ([]model.Member, error) {
	docs, err := r.client.Collection(membersCollection).OrderBy("joined_date", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("会員一覧の取得に失敗しました: %w", err)
	}

	members := make([]model.Member, 0, len(docs))
	for _, doc := range docs {
		var member model.Member
		if err := doc.DataTo(&member); err != nil {
			return nil, fmt.Errorf("データの変換に失敗しました: %w", err)
		}
		members = append(members, member)
	}
	return members, nil
}

// Update は merit_points 以外のフィールドを更新する
// 徳ポイントは IncrementMeritPoints でのみ変更する
func (r *FirestoreMembersRepository) Update(ctx context.Context, member *model.Member) error {
	updates := []firestore.Update{
		{Path: "email", Value: strings.ToLower(member.Email)},
		{Path: "password_hash", Value: member.PasswordHash},
		{Path: "full_name", Value: member.FullName},
		{Path: "gender", Value: member.Gender},
		{Path: "birthdate", Value: member.Birthdate},
		{Path: "birth_time", Value: member.BirthTime},
		{Path: "phone_number", Value: member.PhoneNumber},
		{Path: "house_number", Value: member.HouseNumber},
		{Path: "car_plate", Value: member.CarPlate},
		{Path: "role", Value: member.Role},
		{Path: "status", Value: member.Status},
		{Path: "joined_date", Value: member.JoinedDate},
	}

	if _, err := r.client.Collection(membersCollection).Doc(member.ID).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("会員ID %s: %w", member.ID, model.ErrMemberNotFound)
		}
		return fmt.Errorf("会員情報の更新に失敗しました: %w", err)
	}
	return nil
}

// IncrementMeritPoints はトランザクション内で merit_points を加算する
func (r *FirestoreMembersRepository) IncrementMeritPoints(ctx context.Context, id string, delta int) (int, error) {
	ref := r.client.Collection(membersCollection).Doc(id)

	var total int
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return err
		}

		var member model.Member
		if err := snap.DataTo(&member); err != nil {
			return fmt.Errorf("データの変換に失敗しました: %w", err)
		}

		total = member.MeritPoints + delta
		return tx.Update(ref, []firestore.Update{{Path: "merit_points", Value: total}})
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return 0, fmt.Errorf("会員ID %s: %w", id, model.ErrMemberNotFound)
		}
		return 0, fmt.Errorf("徳ポイントの更新に失敗しました: %w", err)
	}
	return total, nil
}

func (r *FirestoreMembersRepository) Delete(ctx context.Context, id string) error {
	ref := r.client.Collection(membersCollection).Doc(id)
	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("会員ID %s: %w", id, model.ErrMemberNotFound)
		}
		return fmt.Errorf("会員情報の取得に失敗しました: %w", err)
	}

	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("会員情報の削除に失敗しました: %w", err)
	}
	log.Printf("🗑️ Member deleted: %s", id)
	return nil
}
