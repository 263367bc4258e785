package application

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"MuTeLu-App/internal/domain/helper"
	"MuTeLu-App/internal/domain/model"
	"MuTeLu-App/internal/domain/repository"
)

// CheckInPolicy チェックインの条件と獲得ポイント
type CheckInPolicy struct {
	RadiusMeters float64
	MeritPoints  int
}

// DefaultCheckInPolicy デフォルトのチェックイン条件（100m以内、15ポイント）
func DefaultCheckInPolicy() CheckInPolicy {
	return CheckInPolicy{
		RadiusMeters: model.DefaultCheckInRadiusMeters,
		MeritPoints:  model.DefaultCheckInMeritPoints,
	}
}

// CheckInsService チェックインと徳ポイントに関するビジネスロジックを提供するサービス
type CheckInsService interface {
	// CheckIn スポットへのチェックインを記録
	CheckIn(ctx context.Context, req *model.CheckInRequest) (*model.CheckInResponse, error)

	// History 会員のチェックイン履歴を新しい順に取得
	History(ctx context.Context, email string) ([]model.CheckInRecord, error)

	// MeritSummary 会員の徳ポイント合計と履歴を取得
	MeritSummary(ctx context.Context, email string) (*model.MeritSummary, error)

	// ClearHistory 会員のチェックイン履歴を全て削除し、削除分の徳ポイントを会員合計から差し引く
	ClearHistory(ctx context.Context, email string) error
}

type checkInsServiceImpl struct {
	checkInsRepo   repository.CheckInsRepository
	membersService MembersService
	placesService  PlacesService
	policy         CheckInPolicy
	now            func() time.Time
}

// NewCheckInsService CheckInsServiceの新しいインスタンスを作成
func NewCheckInsService(
	checkInsRepo repository.CheckInsRepository,
	membersService MembersService,
	placesService PlacesService,
	policy CheckInPolicy,
) CheckInsService {
	return &checkInsServiceImpl{
		checkInsRepo:   checkInsRepo,
		membersService: membersService,
		placesService:  placesService,
		policy:         policy,
		now:            time.Now,
	}
}

func (s *checkInsServiceImpl) CheckIn(ctx context.Context, req *model.CheckInRequest) (*model.CheckInResponse, error) {
	if req.UserLocation == nil {
		return nil, fmt.Errorf("リクエストの検証失敗: 現在地は必須です: %w", model.ErrInvalidInput)
	}

	member, err := s.membersService.Get(ctx, req.MemberEmail)
	if err != nil {
		return nil, err
	}
	if !member.IsActive() {
		return nil, model.ErrMemberSuspended
	}

	place, err := s.placesService.Get(ctx, req.PlaceID)
	if err != nil {
		return nil, err
	}

	// 距離チェック
	distance := helper.DistanceToPlace(req.UserLocation.ToLatLng(), place)
	if !helper.WithinRadius(req.UserLocation.ToLatLng(), place, s.policy.RadiusMeters) {
		return nil, fmt.Errorf("%.0fm離れています（%.0fm以内でチェックイン可能）: %w", distance, s.policy.RadiusMeters, model.ErrTooFarFromPlace)
	}

	now := s.now()
	record := model.CheckInRecord{
		ID:          uuid.New().String(),
		PlaceID:     place.ID,
		PlaceNameTH: place.NameTH,
		PlaceNameEN: place.NameEN,
		MeritPoints: s.policy.MeritPoints,
		MemberEmail: member.Email,
		Date:        now,
		Latitude:    req.UserLocation.Latitude,
		Longitude:   req.UserLocation.Longitude,
	}
	// 1日1回チェック（判定と保存はリポジトリ側で不可分）
	added, err := s.checkInsRepo.AddIfAbsentOnDay(ctx, &record)
	if err != nil {
		return nil, fmt.Errorf("チェックイン記録の保存失敗: %w", err)
	}
	if !added {
		return nil, model.ErrAlreadyCheckedIn
	}

	total, err := s.membersService.AddMeritPoints(ctx, member.Email, s.policy.MeritPoints)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ チェックイン: %s @ %s (+%d, 合計%d)", member.Email, place.NameEN, s.policy.MeritPoints, total)
	return &model.CheckInResponse{
		Status:           "success",
		Record:           record,
		TotalMeritPoints: total,
		DistanceMeters:   distance,
	}, nil
}

func (s *checkInsServiceImpl) History(ctx context.Context, email string) ([]model.CheckInRecord, error) {
	member, err := s.membersService.Get(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.checkInsRepo.ListByMember(ctx, member.Email)
}

func (s *checkInsServiceImpl) MeritSummary(ctx context.Context, email string) (*model.MeritSummary, error) {
	records, err := s.History(ctx, email)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, r := range records {
		total += r.MeritPoints
	}
	return &model.MeritSummary{
		MemberEmail: email,
		TotalPoints: total,
		Records:     records,
	}, nil
}

func (s *checkInsServiceImpl) ClearHistory(ctx context.Context, email string) error {
	member, err := s.membersService.Get(ctx, email)
	if err != nil {
		return err
	}
	removed, err := s.checkInsRepo.RemoveAllByMember(ctx, member.Email)
	if err != nil {
		return err
	}
	if removed == 0 {
		return nil
	}

	total, err := s.membersService.AddMeritPoints(ctx, member.Email, -removed)
	if err != nil {
		return err
	}
	log.Printf("🧹 チェックイン履歴を削除: %s (-%d, 合計%d)", member.Email, removed, total)
	return nil
}
