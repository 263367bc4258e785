package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"MuTeLu-App/internal/domain/model"
	"MuTeLu-App/internal/domain/repository"
)

// MembersService 会員管理に関するビジネスロジックを提供するサービス
type MembersService interface {
	Register(ctx context.Context, req *model.RegisterMemberRequest) (*model.Member, error)
	Authenticate(ctx context.Context, email, password string) (*model.Member, error)
	Get(ctx context.Context, email string) (*model.Member, error)
	List(ctx context.Context) ([]model.Member, error)
	Update(ctx context.Context, email string, req *model.UpdateMemberRequest) (*model.Member, error)
	SetStatus(ctx context.Context, email string, status model.AccountStatus) (*model.Member, error)
	// Delete 会員と、その会員のチェックイン記録を削除
	Delete(ctx context.Context, email string) error
	// AddMeritPoints 徳ポイントを加算（負の値なら減算）し、加算後の合計を返す
	AddMeritPoints(ctx context.Context, email string, points int) (int, error)
}

type membersServiceImpl struct {
	membersRepo  repository.MembersRepository
	checkInsRepo repository.CheckInsRepository
	now          func() time.Time
}

// NewMembersService MembersServiceの新しいインスタンスを作成
func NewMembersService(membersRepo repository.MembersRepository, checkInsRepo repository.CheckInsRepository) MembersService {
	return &membersServiceImpl{
		membersRepo:  membersRepo,
		checkInsRepo: checkInsRepo,
		now:          time.Now,
	}
}

func (s *membersServiceImpl) Register(ctx context.Context, req *model.RegisterMemberRequest) (*model.Member, error) {
	if err := validateRegisterRequest(req); err != nil {
		return nil, fmt.Errorf("リクエストの検証失敗: %v: %w", err, model.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("パスワードのハッシュ化失敗: %w", err)
	}

	role := req.Role
	if role == "" {
		role = model.RoleUser
	}

	member := &model.Member{
		ID:           uuid.New().String(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(req.FullName),
		Gender:       req.Gender,
		Birthdate:    req.Birthdate,
		BirthTime:    req.BirthTime,
		PhoneNumber:  req.PhoneNumber,
		HouseNumber:  req.HouseNumber,
		CarPlate:     req.CarPlate,
		Role:         role,
		Status:       model.StatusActive,
		JoinedDate:   s.now(),
	}

	if err := s.membersRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("会員登録失敗: %w", err)
	}

	log.Printf("✅ 会員登録完了: %s", member.Email)
	return member, nil
}

func (s *membersServiceImpl) Authenticate(ctx context.Context, email, password string) (*model.Member, error) {
	member, err := s.membersRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrMemberNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}
	if !member.IsActive() {
		return nil, model.ErrMemberSuspended
	}
	return member, nil
}

func (s *membersServiceImpl) Get(ctx context.Context, email string) (*model.Member, error) {
	return s.membersRepo.GetByEmail(ctx, email)
}

func (s *membersServiceImpl) List(ctx context.Context) ([]model.Member, error) {
	return s.membersRepo.GetAll(ctx)
}

func (s *membersServiceImpl) Update(ctx context.Context, email string, req *model.UpdateMemberRequest) (*model.Member, error) {
	member, err := s.membersRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		if strings.TrimSpace(*req.FullName) == "" {
			return nil, fmt.Errorf("氏名は必須です: %w", model.ErrInvalidInput)
		}
		member.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Gender != nil {
		member.Gender = *req.Gender
	}
	if req.Birthdate != nil {
		member.Birthdate = *req.Birthdate
	}
	if req.BirthTime != nil {
		member.BirthTime = *req.BirthTime
	}
	if req.PhoneNumber != nil {
		member.PhoneNumber = *req.PhoneNumber
	}
	if req.HouseNumber != nil {
		member.HouseNumber = *req.HouseNumber
	}
	if req.CarPlate != nil {
		member.CarPlate = *req.CarPlate
	}

	if err := s.membersRepo.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("会員情報の更新失敗: %w", err)
	}
	return s.membersRepo.GetByEmail(ctx, member.Email)
}

func (s *membersServiceImpl) SetStatus(ctx context.Context, email string, status model.AccountStatus) (*model.Member, error) {
	if status != model.StatusActive && status != model.StatusSuspended {
		return nil, fmt.Errorf("不正なアカウント状態です: %s: %w", status, model.ErrInvalidInput)
	}

	member, err := s.membersRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	member.Status = status

	if err := s.membersRepo.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("アカウント状態の更新失敗: %w", err)
	}
	log.Printf("✅ アカウント状態変更: %s -> %s", member.Email, status)
	return s.membersRepo.GetByEmail(ctx, member.Email)
}

func (s *membersServiceImpl) Delete(ctx context.Context, email string) error {
	member, err := s.membersRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	if _, err := s.checkInsRepo.RemoveAllByMember(ctx, member.Email); err != nil {
		return fmt.Errorf("チェックイン記録の削除失敗: %w", err)
	}
	if err := s.membersRepo.Delete(ctx, member.ID); err != nil {
		return fmt.Errorf("会員の削除失敗: %w", err)
	}
	return nil
}

func (s *membersServiceImpl) AddMeritPoints(ctx context.Context, email string, points int) (int, error) {
	member, err := s.membersRepo.GetByEmail(ctx, email)
	if err != nil {
		return 0, err
	}

	total, err := s.membersRepo.IncrementMeritPoints(ctx, member.ID, points)
	if err != nil {
		return 0, fmt.Errorf("徳ポイントの更新失敗: %w", err)
	}
	return total, nil
}

// validateRegisterRequest リクエストのバリデーション
func validateRegisterRequest(req *model.RegisterMemberRequest) error {
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("メールアドレスは必須です")
	}
	if len(req.Password) < 6 {
		return fmt.Errorf("パスワードは6文字以上である必要があります")
	}
	if strings.TrimSpace(req.FullName) == "" {
		return fmt.Errorf("氏名は必須です")
	}
	if req.Role != "" && req.Role != model.RoleAdmin && req.Role != model.RoleUser {
		return fmt.Errorf("不正な権限です: %s", req.Role)
	}
	return nil
}
