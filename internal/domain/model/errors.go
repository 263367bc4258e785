package model

import "errors"

// ドメインで共通に使用するエラー
var (
	ErrPlaceNotFound      = errors.New("スポットが見つかりません")
	ErrMemberNotFound     = errors.New("会員が見つかりません")
	ErrEmailTaken         = errors.New("このメールアドレスは既に登録されています")
	ErrInvalidCredentials = errors.New("メールアドレスまたはパスワードが正しくありません")
	ErrMemberSuspended    = errors.New("このアカウントは停止されています")
	ErrAlreadyCheckedIn   = errors.New("本日は既にこのスポットにチェックイン済みです")
	ErrTooFarFromPlace    = errors.New("スポットから離れすぎています")
	ErrInvalidInput       = errors.New("入力値が不正です")
	ErrDirectionsDisabled = errors.New("経路検索は設定されていません")
)
