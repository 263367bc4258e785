package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"MuTeLu-App/internal/domain/model"
	"MuTeLu-App/internal/domain/recommend"
	"MuTeLu-App/internal/domain/repository"
	infra "MuTeLu-App/internal/repository"
)

// staticPlacesRepository テスト用の固定カタログ
type staticPlacesRepository struct {
	places []model.Place
}

func (r *staticPlacesRepository) GetAll(ctx context.Context) ([]model.Place, error) {
	return r.places, nil
}

func bangkokPlaces() []model.Place {
	return []model.Place{
		{ID: "erawan", NameEN: "Erawan Shrine", NameTH: "ศาลพระพรหมเอราวัณ", Latitude: 13.74434, Longitude: 100.54033, Tags: []string{"wealth", "love", "career"}, Rating: 4.7},
		{ID: "trimurti", NameEN: "Trimurti Shrine", NameTH: "ศาลพระตรีมูรติ", Latitude: 13.74665, Longitude: 100.53925, Tags: []string{"love"}, Rating: 4.6},
		{ID: "ganesha", NameEN: "Ganesha Shrine", NameTH: "ศาลพระพิฆเนศ", Latitude: 13.74690, Longitude: 100.53985, Tags: []string{"career", "success"}, Rating: 4.5},
		{ID: "watpho", NameEN: "Wat Pho", NameTH: "วัดโพธิ์", Latitude: 13.74654, Longitude: 100.49297, Tags: []string{"health"}, Rating: 4.8},
	}
}

type testServices struct {
	snapshot     *recommend.Snapshot
	places       PlacesService
	members      MembersService
	checkIns     CheckInsService
	checkInsRepo repository.CheckInsRepository
	clock        *time.Time
}

// newTestServices メモリリポジトリで全サービスを組み立て、カタログを読み込む
func newTestServices(t *testing.T) *testServices {
	t.Helper()

	snapshot := recommend.NewSnapshot()
	placesService := NewPlacesService(&staticPlacesRepository{places: bangkokPlaces()}, snapshot)
	_, err := placesService.Reload(context.Background())
	require.NoError(t, err)

	checkInsRepo := infra.NewMemoryCheckInsRepository()
	membersService := NewMembersService(infra.NewMemoryMembersRepository(), checkInsRepo)
	checkInsService := NewCheckInsService(checkInsRepo, membersService, placesService, DefaultCheckInPolicy())

	clock := time.Date(2025, 4, 13, 9, 0, 0, 0, time.UTC)
	s := &testServices{
		snapshot:     snapshot,
		places:       placesService,
		members:      membersService,
		checkIns:     checkInsService,
		checkInsRepo: checkInsRepo,
		clock:        &clock,
	}
	now := func() time.Time { return *s.clock }
	membersService.(*membersServiceImpl).now = now
	checkInsService.(*checkInsServiceImpl).now = now
	return s
}

func (s *testServices) register(t *testing.T, email string) *model.Member {
	t.Helper()
	member, err := s.members.Register(context.Background(), &model.RegisterMemberRequest{
		Email:    email,
		Password: "secret123",
		FullName: "Somchai Jaidee",
	})
	require.NoError(t, err)
	return member
}

func (s *testServices) advance(d time.Duration) {
	*s.clock = s.clock.Add(d)
}

func checkInAt(email, placeID string, lat, lng float64) *model.CheckInRequest {
	return &model.CheckInRequest{
		MemberEmail:  email,
		PlaceID:      placeID,
		UserLocation: &model.Location{Latitude: lat, Longitude: lng},
	}
}
