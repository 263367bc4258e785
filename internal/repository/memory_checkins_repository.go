package repository

import (
	"context"
	"sort"
	"sync"

	"MuTeLu-App/internal/domain/model"
	"MuTeLu-App/internal/domain/repository"
)

// MemoryCheckInsRepository プロセス内メモリにチェックイン記録を保持するリポジトリ
type MemoryCheckInsRepository struct {
	mu      sync.RWMutex
	records []model.CheckInRecord
}

func NewMemoryCheckInsRepository() repository.CheckInsRepository {
	return &MemoryCheckInsRepository{}
}

func (r *MemoryCheckInsRepository) AddIfAbsentOnDay(ctx context.Context, record *model.CheckInRecord) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if rec.MemberEmail == record.MemberEmail && rec.PlaceID == record.PlaceID && model.SameDay(record.Date, rec.Date) {
			return false, nil
		}
	}
	r.records = append(r.records, *record)
	return true, nil
}

func (r *MemoryCheckInsRepository) ListByMember(ctx context.Context, email string) ([]model.CheckInRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []model.CheckInRecord{}
	for _, rec := range r.records {
		if rec.MemberEmail == email {
			result = append(result, rec)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

func (r *MemoryCheckInsRepository) RemoveAllByMember(ctx context.Context, email string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	kept := r.records[:0]
	for _, rec := range r.records {
		if rec.MemberEmail == email {
			removed += rec.MeritPoints
			continue
		}
		kept = append(kept, rec)
	}
	r.records = kept
	return removed, nil
}
