package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/uknowme/member-server/internal/member"
	"github.com/uknowme/member-server/internal/shared/logger"
	"github.com/uknowme/member-server/internal/shared/password"
	"github.com/uknowme/member-server/internal/shared/token"
	"gorm.io/gorm"
)

type AuthService struct {
	db               *gorm.DB
	memberRepository *member.MemberRepository
	hasher           password.Hasher
	tokenManager     token.Manager
}

func NewAuthService(db *gorm.DB, memberRepository *member.MemberRepository, hasher password.Hasher, tokenManager token.Manager) *AuthService {
	return &AuthService{
		db:               db,
		memberRepository: memberRepository,
		hasher:           hasher,
		tokenManager:     tokenManager,
	}
}

// Login issues tokens for an active member. Unknown ids and wrong
// passwords fail the same way.
func (a *AuthService) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	log := logger.FromContext(ctx)

	// 1. Find active member by id
	found, err := a.memberRepository.FindByID(ctx, a.db, request.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("로그인 실패 - member id not found", "id", logger.MaskID(request.ID))
			return nil, fmt.Errorf("login: %w", ErrIncorrectIDPassword)
		}
		log.Error("로그인 실패 - 알 수 없는 오류", "error", err)
		return nil, fmt.Errorf("로그인 실패: %w", err)
	}

	// 2. Validate password
	if !a.hasher.Matches(request.Password, found.Password) {
		log.Warn("로그인 실패 - invalid password", "id", logger.MaskID(request.ID))
		return nil, fmt.Errorf("login: %w", ErrIncorrectIDPassword)
	}

	// 3. Generate JWT tokens
	role := string(found.Role)
	accessToken, err := a.tokenManager.GenerateAccessToken(found.ID, role)
	if err != nil {
		log.Error("access token 생성 실패", "error", err)
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := a.tokenManager.GenerateRefreshToken(found.ID, role)
	if err != nil {
		log.Error("refresh token 생성 실패", "error", err)
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	log.Info("로그인 성공", "id", logger.MaskID(request.ID))

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
