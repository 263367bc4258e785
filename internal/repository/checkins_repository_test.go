package repository

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MuTeLu-App/internal/domain/model"
	"MuTeLu-App/internal/domain/repository"
	"MuTeLu-App/internal/infrastructure/database"
)

func newRecord(email, placeID string, date time.Time) *model.CheckInRecord {
	return &model.CheckInRecord{
		ID:          uuid.New().String(),
		PlaceID:     placeID,
		PlaceNameTH: placeID,
		PlaceNameEN: placeID,
		MeritPoints: 15,
		MemberEmail: email,
		Date:        date,
		Latitude:    13.7,
		Longitude:   100.5,
	}
}

// runCheckInsRepositoryContract はリポジトリ実装共通の振る舞いを検証する
func runCheckInsRepositoryContract(t *testing.T, repo repository.CheckInsRepository) {
	ctx := context.Background()
	email := "user-" + uuid.New().String() + "@example.com"
	other := "other-" + uuid.New().String() + "@example.com"
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	add := func(email, placeID string, date time.Time) bool {
		added, err := repo.AddIfAbsentOnDay(ctx, newRecord(email, placeID, date))
		require.NoError(t, err)
		return added
	}

	require.True(t, add(email, "p1", base))
	require.True(t, add(email, "p2", base.Add(2*time.Hour)))
	require.True(t, add(email, "p3", base.Add(-24*time.Hour)))
	require.True(t, add(other, "p1", base))

	t.Run("新しい順に取得できる", func(t *testing.T) {
		records, err := repo.ListByMember(ctx, email)
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "p2", records[0].PlaceID)
		assert.Equal(t, "p1", records[1].PlaceID)
		assert.Equal(t, "p3", records[2].PlaceID)
	})

	t.Run("同日の同じスポットは保存されない", func(t *testing.T) {
		assert.False(t, add(email, "p1", base.Add(10*time.Hour)))

		records, err := repo.ListByMember(ctx, email)
		require.NoError(t, err)
		assert.Len(t, records, 3)
	})

	t.Run("翌日なら同じスポットでも保存される", func(t *testing.T) {
		assert.True(t, add(email, "p3", base))
		assert.True(t, add(email, "p1", base.Add(24*time.Hour)))
	})

	t.Run("会員の記録を全削除すると削除したポイント合計を返す", func(t *testing.T) {
		removed, err := repo.RemoveAllByMember(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, 5*15, removed)

		records, err := repo.ListByMember(ctx, email)
		require.NoError(t, err)
		assert.Empty(t, records)

		others, err := repo.ListByMember(ctx, other)
		require.NoError(t, err)
		assert.Len(t, others, 1)

		removed, err = repo.RemoveAllByMember(ctx, email)
		require.NoError(t, err)
		assert.Zero(t, removed)
	})

	t.Run("同時に保存しても1日1件に限られる", func(t *testing.T) {
		const workers = 20
		day := base.Add(72 * time.Hour)

		var wg sync.WaitGroup
		var addedCount atomic.Int32
		errs := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				added, err := repo.AddIfAbsentOnDay(ctx, newRecord(email, "p1", day))
				if err != nil {
					errs <- err
					return
				}
				if added {
					addedCount.Add(1)
				}
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			require.NoError(t, err)
		}
		assert.Equal(t, int32(1), addedCount.Load())

		records, err := repo.ListByMember(ctx, email)
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})
}

func TestMemoryCheckInsRepository(t *testing.T) {
	runCheckInsRepositoryContract(t, NewMemoryCheckInsRepository())
}

func TestPostgresCheckInsRepository(t *testing.T) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		t.Skip("DATABASE_URLが設定されていません。統合テストをスキップします。")
	}

	client, err := database.NewPostgreSQLClient(databaseURL)
	require.NoError(t, err)
	defer client.Close()

	repo := NewPostgresCheckInsRepository(client)
	require.NoError(t, repo.EnsureSchema(context.Background()))
	runCheckInsRepositoryContract(t, repo)
}
