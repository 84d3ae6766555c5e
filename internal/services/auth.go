package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/shoply/admin-backend/internal/domain"
	"github.com/shoply/admin-backend/internal/pkg/logger"
	"github.com/shoply/admin-backend/internal/repos"
)

const minPasswordLen = 8

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AccessClaims is the JWT payload of an access token. Subject carries
// the admin id.
type AccessClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.AdminUser, error)
	Login(ctx context.Context, email, password string) (*domain.AdminUser, TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	ParseAccessToken(tokenString string) (*AccessClaims, error)
	GetAdmin(ctx context.Context, adminID uuid.UUID) (*domain.AdminUser, error)
	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}

type authService struct {
	db           *gorm.DB
	log          *logger.Logger
	adminRepo    repos.AdminUserRepo
	tokenRepo    repos.AdminTokenRepo
	jwtSecretKey string
	accessTTL    time.Duration
	refreshTTL   time.Duration
}

func NewAuthService(
	db *gorm.DB,
	baseLog *logger.Logger,
	adminRepo repos.AdminUserRepo,
	tokenRepo repos.AdminTokenRepo,
	jwtSecretKey string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) AuthService {
	return &authService{
		db:           db,
		log:          baseLog.With("service", "AuthService"),
		adminRepo:    adminRepo,
		tokenRepo:    tokenRepo,
		jwtSecretKey: jwtSecretKey,
		accessTTL:    accessTTL,
		refreshTTL:   refreshTTL,
	}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*domain.AdminUser, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return nil, domain.ErrEmailRequired
	}
	if len(in.Password) < minPasswordLen {
		return nil, domain.ErrPasswordTooShort
	}
	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.TrimSpace(in.LastName)
	if firstName == "" || lastName == "" {
		return nil, domain.ErrNameRequired
	}

	exists, err := s.adminRepo.EmailExists(ctx, nil, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, domain.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := &domain.AdminUser{
		Email:     email,
		Password:  string(hashed),
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		created, err := s.adminRepo.Create(ctx, tx, []*domain.AdminUser{admin})
		if err != nil {
			return fmt.Errorf("create admin: %w", err)
		}
		admin = created[0]
		return nil
	}); err != nil {
		return nil, err
	}
	s.log.Info("admin registered", "admin_id", admin.ID, "email", admin.Email)
	return admin, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.AdminUser, TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, TokenPair{}, domain.ErrInvalidCredentials
	}

	admins, err := s.adminRepo.GetByEmails(ctx, nil, []string{email})
	if err != nil {
		return nil, TokenPair{}, fmt.Errorf("load admin by email: %w", err)
	}
	if len(admins) == 0 {
		return nil, TokenPair{}, domain.ErrInvalidCredentials
	}
	admin := admins[0]
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, TokenPair{}, domain.ErrInvalidCredentials
	}

	var pair TokenPair
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.tokenRepo.DeleteExpired(ctx, tx, time.Now()); err != nil {
			return fmt.Errorf("sweep expired tokens: %w", err)
		}
		issued, err := s.issueTokens(ctx, tx, admin)
		if err != nil {
			return err
		}
		pair = issued
		return nil
	}); err != nil {
		return nil, TokenPair{}, err
	}
	s.log.Info("admin logged in", "admin_id", admin.ID)
	return admin, pair, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return TokenPair{}, domain.ErrInvalidRefreshToken
	}

	var pair TokenPair
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tokens, err := s.tokenRepo.GetByRefreshTokens(ctx, tx, []string{refreshToken})
		if err != nil {
			return fmt.Errorf("load refresh token: %w", err)
		}
		if len(tokens) == 0 {
			return domain.ErrInvalidRefreshToken
		}
		existing := tokens[0]
		if existing.ExpiresAt.Before(time.Now()) {
			if err := s.tokenRepo.DeleteByID(ctx, tx, existing.ID); err != nil {
				return fmt.Errorf("delete expired token: %w", err)
			}
			return domain.ErrInvalidRefreshToken
		}
		admins, err := s.adminRepo.GetByIDs(ctx, tx, []uuid.UUID{existing.AdminUserID})
		if err != nil {
			return fmt.Errorf("load admin for refresh: %w", err)
		}
		if len(admins) == 0 {
			return domain.ErrInvalidRefreshToken
		}
		issued, err := s.issueTokens(ctx, tx, admins[0])
		if err != nil {
			return err
		}
		// Rotation: the presented token is single-use.
		if err := s.tokenRepo.DeleteByID(ctx, tx, existing.ID); err != nil {
			return fmt.Errorf("delete rotated token: %w", err)
		}
		pair = issued
		return nil
	})
	if err != nil {
		return TokenPair{}, err
	}
	return pair, nil
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tokens, err := s.tokenRepo.GetByRefreshTokens(ctx, tx, []string{refreshToken})
		if err != nil {
			return fmt.Errorf("load token for logout: %w", err)
		}
		if len(tokens) == 0 {
			return nil
		}
		if err := s.tokenRepo.DeleteByID(ctx, tx, tokens[0].ID); err != nil {
			return fmt.Errorf("delete token: %w", err)
		}
		return nil
	})
}

func (s *authService) ParseAccessToken(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.jwtSecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("parse access token: %w", err)
	}
	if !parsed.Valid {
		return nil, errors.New("invalid access token")
	}
	return claims, nil
}

func (s *authService) GetAdmin(ctx context.Context, adminID uuid.UUID) (*domain.AdminUser, error) {
	admins, err := s.adminRepo.GetByIDs(ctx, nil, []uuid.UUID{adminID})
	if err != nil {
		return nil, fmt.Errorf("load admin: %w", err)
	}
	if len(admins) == 0 {
		return nil, domain.ErrAdminNotFound
	}
	return admins[0], nil
}

func (s *authService) AccessTTL() time.Duration  { return s.accessTTL }
func (s *authService) RefreshTTL() time.Duration { return s.refreshTTL }

func (s *authService) issueTokens(ctx context.Context, tx *gorm.DB, admin *domain.AdminUser) (TokenPair, error) {
	accessToken, err := s.signAccessToken(admin)
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}
	refreshToken := uuid.NewString()
	row := &domain.AdminToken{
		AdminUserID:  admin.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(s.refreshTTL),
	}
	if _, err := s.tokenRepo.Create(ctx, tx, []*domain.AdminToken{row}); err != nil {
		return TokenPair{}, fmt.Errorf("store token: %w", err)
	}
	return TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *authService) signAccessToken(admin *domain.AdminUser) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		Email: admin.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecretKey))
}
