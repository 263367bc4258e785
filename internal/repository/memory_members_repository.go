package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"MuTeLu-App/internal/domain/model"
	"MuTeLu-App/internal/domain/repository"
)

// MemoryMembersRepository プロセス内メモリに会員情報を保持するリポジトリ
type MemoryMembersRepository struct {
	mu      sync.RWMutex
	members []model.Member
}

func NewMemoryMembersRepository() repository.MembersRepository {
	return &MemoryMembersRepository{}
}

func (r *MemoryMembersRepository) Create(ctx context.Context, member *model.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.members {
		if strings.EqualFold(m.Email, member.Email) {
			return fmt.Errorf("%s: %w", member.Email, model.ErrEmailTaken)
		}
	}
	r.members = append(r.members, *member)
	return nil
}

func (r *MemoryMembersRepository) GetByEmail(ctx context.Context, email string) (*model.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.members {
		if strings.EqualFold(m.Email, email) {
			found := m
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", email, model.ErrMemberNotFound)
}

func (r *MemoryMembersRepository) GetAll(ctx context.Context) ([]model.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Member, len(r.members))
	copy(result, r.members)
	return result, nil
}

func (r *MemoryMembersRepository) Update(ctx context.Context, member *model.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.members {
		if r.members[i].ID == member.ID {
			points := r.members[i].MeritPoints
			r.members[i] = *member
			r.members[i].MeritPoints = points
			return nil
		}
	}
	return fmt.Errorf("会員ID %s: %w", member.ID, model.ErrMemberNotFound)
}

func (r *MemoryMembersRepository) IncrementMeritPoints(ctx context.Context, id string, delta int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.members {
		if r.members[i].ID == id {
			r.members[i].MeritPoints += delta
			return r.members[i].MeritPoints, nil
		}
	}
	return 0, fmt.Errorf("会員ID %s: %w", id, model.ErrMemberNotFound)
}

func (r *MemoryMembersRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.members {
		if r.members[i].ID == id {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("会員ID %s: %w", id, model.ErrMemberNotFound)
}
