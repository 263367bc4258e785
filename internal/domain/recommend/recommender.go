package recommend

import (
	"log"
	"math"
	"sort"

	"MuTeLu-App/internal/domain/helper"
	"MuTeLu-App/internal/domain/model"
)

// Recommender はタグの一致度（コサイン類似度）でスポットを推薦する
//
// 構築時に語彙とベクトルを全て計算し、その後は読み取り専用となる。
// 複数のgoroutineから同時にRecommendを呼び出しても安全。
// カタログが変わった場合は新しいインスタンスを作成すること。
type Recommender struct {
	places     []model.Place
	vocabulary []string
	vectors    map[string][]float64
}

// New はカタログのスナップショットから語彙とベクトルを構築する
func New(catalog []model.Place) *Recommender {
	places := make([]model.Place, len(catalog))
	copy(places, catalog)

	r := &Recommender{
		places:     places,
		vocabulary: buildVocabulary(places),
		vectors:    make(map[string][]float64, len(places)),
	}

	index := make(map[string]int, len(r.vocabulary))
	for i, tag := range r.vocabulary {
		index[tag] = i
	}
	for _, p := range places {
		r.vectors[p.ID] = vectorize(p.Tags, index, len(r.vocabulary))
	}

	return r
}

// buildVocabulary は全スポットのタグを重複なしで辞書順に並べる
func buildVocabulary(places []model.Place) []string {
	seen := make(map[string]struct{})
	for _, p := range places {
		for _, tag := range p.Tags {
			seen[tag] = struct{}{}
		}
	}
	vocabulary := make([]string, 0, len(seen))
	for tag := range seen {
		vocabulary = append(vocabulary, tag)
	}
	sort.Strings(vocabulary)
	return vocabulary
}

// vectorize はタグ集合を語彙に対する0/1ベクトルに変換する
func vectorize(tags []string, index map[string]int, size int) []float64 {
	vector := make([]float64, size)
	for _, tag := range tags {
		if i, ok := index[tag]; ok {
			vector[i] = 1
		}
	}
	return vector
}

// CosineSimilarity は2つのベクトルのコサイン類似度を返す
// どちらかのノルムが0の場合は0を返す
func CosineSimilarity(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
	}
	for _, v := range a {
		normA += v * v
	}
	for _, v := range b {
		normB += v * v
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Recommend は source に似たスポットを類似度の高い順に最大 limit 件返す
func (r *Recommender) Recommend(source model.Place, excluded map[string]struct{}, limit int) []model.Place {
	scored := r.RecommendScored(source, excluded, limit)
	places := make([]model.Place, len(scored))
	for i, s := range scored {
		places[i] = s.Place
	}
	return places
}

// RecommendScored は Recommend と同じ結果を類似度スコア付きで返す
//
// source がカタログに存在しない場合は空の結果を返す。
// 類似度が0のスポット、source自身、excluded に含まれるスポットは結果に含まれない。
// 類似度が同じ場合はカタログ内の順序を保つ。
func (r *Recommender) RecommendScored(source model.Place, excluded map[string]struct{}, limit int) []model.ScoredPlace {
	if limit < 0 {
		limit = 0
	}

	sourceVector, ok := r.vectors[source.ID]
	if !ok {
		log.Printf("⚠️ 推薦元スポットのベクトルが見つかりません: %s (%s)", source.NameTH, source.ID)
		return []model.ScoredPlace{}
	}
	if limit == 0 {
		return []model.ScoredPlace{}
	}

	var candidates []model.ScoredPlace
	for _, target := range r.places {
		if target.ID == source.ID {
			continue
		}
		if _, skip := excluded[target.ID]; skip {
			continue
		}

		score := CosineSimilarity(sourceVector, r.vectors[target.ID])
		if score > 0 {
			candidates = append(candidates, model.ScoredPlace{Place: target, Score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	if candidates == nil {
		candidates = []model.ScoredPlace{}
	}

	log.Printf("✅ 推薦結果: %s を基準に%d件", source.NameTH, len(candidates))
	return candidates
}

// Vocabulary は語彙（辞書順のタグ一覧）のコピーを返す
func (r *Recommender) Vocabulary() []string {
	vocabulary := make([]string, len(r.vocabulary))
	copy(vocabulary, r.vocabulary)
	return vocabulary
}

// Vector は指定スポットの特徴ベクトルのコピーを返す
func (r *Recommender) Vector(placeID string) ([]float64, bool) {
	v, ok := r.vectors[placeID]
	if !ok {
		return nil, false
	}
	vector := make([]float64, len(v))
	copy(vector, v)
	return vector, true
}

// Places はカタログ（構築時の順序）のコピーを返す
func (r *Recommender) Places() []model.Place {
	places := make([]model.Place, len(r.places))
	copy(places, r.places)
	return places
}

// Len はカタログのスポット数を返す
func (r *Recommender) Len() int {
	return len(r.places)
}

// Place は指定IDのスポットをカタログから探す
func (r *Recommender) Place(placeID string) (model.Place, bool) {
	p, ok := helper.FindByID(r.places, placeID)
	if !ok {
		return model.Place{}, false
	}
	return *p, true
}
