package recommend

import (
	"sync/atomic"

	"MuTeLu-App/internal/domain/model"
)

// Snapshot は現在のRecommenderを保持し、カタログ更新時に差し替える
//
// 再構築は新しいインスタンスを作ってからポインタを入れ替えるため、
// 実行中の推薦処理は古いスナップショットのまま完了する。
type Snapshot struct {
	current atomic.Pointer[Recommender]
}

// NewSnapshot は空のカタログで初期化されたSnapshotを作成する
func NewSnapshot() *Snapshot {
	s := &Snapshot{}
	s.current.Store(New(nil))
	return s
}

// Load は現在のRecommenderを返す
func (s *Snapshot) Load() *Recommender {
	return s.current.Load()
}

// Rebuild はカタログから新しいRecommenderを構築して差し替える
func (s *Snapshot) Rebuild(catalog []model.Place) *Recommender {
	r := New(catalog)
	s.current.Store(r)
	return r
}
