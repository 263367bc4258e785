package model

import "time"

// UserRole 会員の権限
type UserRole string

const (
	RoleAdmin UserRole = "Admin"
	RoleUser  UserRole = "User"
)

// AccountStatus アカウントの状態
type AccountStatus string

const (
	StatusActive    AccountStatus = "Active"
	StatusSuspended AccountStatus = "Suspended"
)

// Member 登録会員を表すモデル
type Member struct {
	ID           string        `json:"id" firestore:"id"`
	Email        string        `json:"email" firestore:"email"`
	PasswordHash string        `json:"-" firestore:"password_hash"`
	FullName     string        `json:"fullName" firestore:"full_name"`
	Gender       string        `json:"gender" firestore:"gender"`
	Birthdate    time.Time     `json:"birthdate" firestore:"birthdate"`
	BirthTime    string        `json:"birthTime" firestore:"birth_time"`
	PhoneNumber  string        `json:"phoneNumber" firestore:"phone_number"`
	HouseNumber  string        `json:"houseNumber" firestore:"house_number"`
	CarPlate     string        `json:"carPlate" firestore:"car_plate"`
	MeritPoints  int           `json:"meritPoints" firestore:"merit_points"`
	Role         UserRole      `json:"role" firestore:"role"`
	Status       AccountStatus `json:"status" firestore:"status"`
	JoinedDate   time.Time     `json:"joinedDate" firestore:"joined_date"`
}

// IsActive アカウントが有効かどうか
func (m *Member) IsActive() bool {
	return m.Status == StatusActive
}

// RegisterMemberRequest 会員登録APIのリクエスト
type RegisterMemberRequest struct {
	Email       string    `json:"email" binding:"required,email"`
	Password    string    `json:"password" binding:"required,min=6"`
	FullName    string    `json:"full_name" binding:"required"`
	Gender      string    `json:"gender"`
	Birthdate   time.Time `json:"birthdate"`
	BirthTime   string    `json:"birth_time"`
	PhoneNumber string    `json:"phone_number"`
	HouseNumber string    `json:"house_number"`
	CarPlate    string    `json:"car_plate"`
	Role        UserRole  `json:"role"`
}

// UpdateMemberRequest 会員情報更新APIのリクエスト（nilの項目は変更しない）
type UpdateMemberRequest struct {
	FullName    *string    `json:"full_name"`
	Gender      *string    `json:"gender"`
	Birthdate   *time.Time `json:"birthdate"`
	BirthTime   *string    `json:"birth_time"`
	PhoneNumber *string    `json:"phone_number"`
	HouseNumber *string    `json:"house_number"`
	CarPlate    *string    `json:"car_plate"`
}

// LoginRequest ログインAPIのリクエスト
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateStatusRequest アカウント状態変更APIのリクエスト
type UpdateStatusRequest struct {
	Status AccountStatus `json:"status" binding:"required,oneof=Active Suspended"`
}

// GetMembersResponse 会員一覧APIのレスポンス
type GetMembersResponse struct {
	Members []Member `json:"members"`
}
