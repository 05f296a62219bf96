package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"treqsy/models"
	"treqsy/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -destination=./mocks/mock_repository.go -package=mocks treqsy/service Repository

type Repository interface {
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByID(ctx context.Context, id int) (models.User, error)
	CreateUser(ctx context.Context, email, passwordHash string, role models.Role) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUserRole(ctx context.Context, id int, role models.Role) error
	UpdateUserActive(ctx context.Context, id int, active bool) error
	UpdateUserVIP(ctx context.Context, id int, vip bool) error

	PurchaseCoins(ctx context.Context, userID, amount int) error
	GiftCoins(ctx context.Context, fromID, toID, amount int) error
	CreatePayoutRequest(ctx context.Context, userID, amount int) (models.PayoutRequest, error)
	ApprovePayoutRequest(ctx context.Context, requestID int) (models.PayoutRequest, error)
	PendingPayoutRequests(ctx context.Context) ([]models.PayoutRequest, error)
	UserTransactions(ctx context.Context, userID int) ([]models.CoinTransaction, error)

	GetSetting(ctx context.Context, key string) (string, error)
	UpsertSetting(ctx context.Context, key, value string) error
	CoinAnalytics(ctx context.Context) (models.CoinAnalytics, error)

	CreateStream(ctx context.Context, s models.StreamSession) error
	EndStream(ctx context.Context, id string) (models.StreamSession, error)
	ActiveStreams(ctx context.Context) ([]models.StreamSession, error)
}

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveUser       = errors.New("user account is deactivated")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrSelfGift           = errors.New("cannot gift coins to yourself")
)

type Service struct {
	repo   Repository
	tokens TokenManager
}

func NewService(repo Repository, tokens TokenManager) Service {
	return Service{
		repo:   repo,
		tokens: tokens,
	}
}

type AuthResult struct {
	Tokens TokenPair   `json:"tokens"`
	Role   models.Role `json:"role"`
}

func (s Service) Register(
	ctx context.Context,
	email, password string,
	role models.Role,
) (models.User, error) {
	hashed, err := bcryptHash(password)
	if err != nil {
		return models.User{}, err
	}
	return s.repo.CreateUser(ctx, email, hashed, role)
}

func (s Service) Login(
	ctx context.Context,
	email, password string,
) (AuthResult, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, err
	}
	if !bcryptCompare(user.PasswordHash, password) {
		return AuthResult{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return AuthResult{}, ErrInactiveUser
	}
	pair, err := s.tokens.IssuePair(user.ID, user.Role)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Tokens: pair, Role: user.Role}, nil
}

// Refresh exchanges a valid refresh token for a fresh pair. The user is
// re-read so a deactivated account or a changed role takes effect here.
func (s Service) Refresh(
	ctx context.Context,
	refreshToken string,
) (AuthResult, error) {
	identity, err := s.tokens.Verify(refreshToken, TokenRefresh)
	if err != nil {
		return AuthResult{}, err
	}
	user, err := s.repo.GetUserByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return AuthResult{}, ErrInvalidToken
		}
		return AuthResult{}, err
	}
	if !user.IsActive {
		return AuthResult{}, ErrInactiveUser
	}
	pair, err := s.tokens.IssuePair(user.ID, user.Role)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Tokens: pair, Role: user.Role}, nil
}

func (s Service) Profile(
	ctx context.Context,
	userID int,
) (models.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

func (s Service) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s Service) SetRole(
	ctx context.Context,
	userID int,
	role models.Role,
) error {
	return s.repo.UpdateUserRole(ctx, userID, role)
}

func (s Service) SetActive(
	ctx context.Context,
	userID int,
	active bool,
) error {
	return s.repo.UpdateUserActive(ctx, userID, active)
}

func (s Service) SetVIP(
	ctx context.Context,
	userID int,
	vip bool,
) error {
	return s.repo.UpdateUserVIP(ctx, userID, vip)
}

func (s Service) Purchase(
	ctx context.Context,
	userID, amount int,
) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return s.repo.PurchaseCoins(ctx, userID, amount)
}

func (s Service) Gift(
	ctx context.Context,
	fromID, toID, amount int,
) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if fromID == toID {
		return ErrSelfGift
	}
	return s.repo.GiftCoins(ctx, fromID, toID, amount)
}

func (s Service) RequestPayout(
	ctx context.Context,
	userID, amount int,
) (models.PayoutRequest, error) {
	if amount <= 0 {
		return models.PayoutRequest{}, ErrInvalidAmount
	}
	return s.repo.CreatePayoutRequest(ctx, userID, amount)
}

func (s Service) ApprovePayout(
	ctx context.Context,
	requestID int,
) (models.PayoutRequest, error) {
	return s.repo.ApprovePayoutRequest(ctx, requestID)
}

func (s Service) PendingPayouts(
	ctx context.Context,
) ([]models.PayoutRequest, error) {
	return s.repo.PendingPayoutRequests(ctx)
}

func (s Service) Transactions(
	ctx context.Context,
	userID int,
) ([]models.CoinTransaction, error) {
	return s.repo.UserTransactions(ctx, userID)
}

const (
	settingAppName      = "app_name"
	settingCoinSettings = "coin_settings"

	defaultAppName = "Treqsy"
)

// CoinSettings is the adjustable pricing stored in the settings table.
// The json tags are the persisted format.
type CoinSettings struct {
	CoinPrice int `json:"coin_price"`
	BonusRate int `json:"bonus_rate"`
}

func defaultCoinSettings() CoinSettings {
	return CoinSettings{CoinPrice: 1, BonusRate: 0}
}

// AppName returns the configured application name, falling back to the
// default when nothing has been stored yet.
func (s Service) AppName(ctx context.Context) (string, error) {
	name, err := s.repo.GetSetting(ctx, settingAppName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return defaultAppName, nil
		}
		return "", err
	}
	return name, nil
}

func (s Service) SetAppName(ctx context.Context, name string) error {
	return s.repo.UpsertSetting(ctx, settingAppName, name)
}

func (s Service) CoinSettings(ctx context.Context) (CoinSettings, error) {
	raw, err := s.repo.GetSetting(ctx, settingCoinSettings)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return defaultCoinSettings(), nil
		}
		return CoinSettings{}, err
	}
	var cs CoinSettings
	if err := json.Unmarshal([]byte(raw), &cs); err != nil {
		return CoinSettings{}, fmt.Errorf("decode coin settings: %w", err)
	}
	return cs, nil
}

func (s Service) SetCoinSettings(ctx context.Context, cs CoinSettings) error {
	raw, err := json.Marshal(cs)
	if err != nil {
		return err
	}
	return s.repo.UpsertSetting(ctx, settingCoinSettings, string(raw))
}

func (s Service) CoinAnalytics(ctx context.Context) (models.CoinAnalytics, error) {
	return s.repo.CoinAnalytics(ctx)
}

func (s Service) StartStream(
	ctx context.Context,
	hostID int,
	title string,
) (models.StreamSession, error) {
	session := models.StreamSession{
		ID:        uuid.NewString(),
		HostID:    hostID,
		Title:     title,
		IsActive:  true,
		StartedAt: time.Now(),
	}
	if err := s.repo.CreateStream(ctx, session); err != nil {
		return models.StreamSession{}, err
	}
	return session, nil
}

func (s Service) EndStream(
	ctx context.Context,
	streamID string,
) (models.StreamSession, error) {
	return s.repo.EndStream(ctx, streamID)
}

func (s Service) ActiveStreams(
	ctx context.Context,
) ([]models.StreamSession, error) {
	return s.repo.ActiveStreams(ctx)
}

func bcryptHash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func bcryptCompare(hashed, password string) bool {
	err := bcrypt.CompareHashAndPassword(
		[]byte(hashed),
		[]byte(password),
	)
	return err == nil
}
