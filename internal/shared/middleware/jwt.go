package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	sharedContext "github.com/uknowme/member-server/internal/shared/context"
	sharedError "github.com/uknowme/member-server/internal/shared/error"
	"github.com/uknowme/member-server/internal/shared/logger"
	"github.com/uknowme/member-server/internal/shared/token"

	"github.com/gin-gonic/gin"
)

const (
	AuthorizationHeader = "Authorization"
	BearerScheme        = "Bearer"
)

// JWT error constants (errInfo)
const (
	missingToken  = "MISSING_TOKEN"
	invalidToken  = "INVALID_TOKEN"
	expiredToken  = "EXPIRED_TOKEN"
	invalidClaims = "INVALID_CLAIMS"
)

// Domain errors
var (
	ErrMissingToken  = sharedError.NewDomainError(missingToken, sharedError.KindAuthorization)
	ErrInvalidToken  = sharedError.NewDomainError(invalidToken, sharedError.KindAuthorization)
	ErrExpiredToken  = sharedError.NewDomainError(expiredToken, sharedError.KindAuthorization)
	ErrInvalidClaims = sharedError.NewDomainError(invalidClaims, sharedError.KindAuthorization)
)

// Register JWT error responses
func init() {
	loginRequired := sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-000",
		Message: "로그인을 해주세요.",
	}

	sharedError.RegisterDomainErrorResponse(missingToken, loginRequired)
	sharedError.RegisterDomainErrorResponse(invalidToken, loginRequired)
	sharedError.RegisterDomainErrorResponse(invalidClaims, loginRequired)
	sharedError.RegisterDomainErrorResponse(expiredToken, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-001",
		Message: "로그인이 만료되었습니다. 다시 로그인 해주세요.",
	})
}

// JWT rejects requests without a valid access token.
func JWT(tokenManager token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawToken, err := extractToken(c)
		if err != nil {
			logJWTFailure(c, "extract_token", err)
			handleJWTError(c, err)
			return
		}

		claims, err := validateAccessToken(tokenManager, rawToken)
		if err != nil {
			logJWTFailure(c, "validate_token", err)
			handleJWTError(c, err)
			return
		}

		setCaller(c, claims)
		c.Next()
	}
}

// OptionalJWT sets the caller when a valid access token is present and
// lets anonymous requests through. A present but invalid token is rejected.
func OptionalJWT(tokenManager token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawToken, err := extractToken(c)
		if errors.Is(err, ErrMissingToken) {
			c.Next()
			return
		}
		if err != nil {
			logJWTFailure(c, "extract_token", err)
			handleJWTError(c, err)
			return
		}

		claims, err := validateAccessToken(tokenManager, rawToken)
		if err != nil {
			logJWTFailure(c, "validate_token", err)
			handleJWTError(c, err)
			return
		}

		setCaller(c, claims)
		c.Next()
	}
}

// setCaller exposes the caller to handlers and tags the request logger.
func setCaller(c *gin.Context, claims *token.Claims) {
	sharedContext.SetCaller(c, claims.MemberID, claims.Role)
	c.Request = c.Request.WithContext(logger.With(c.Request.Context(), "member", logger.MaskID(claims.MemberID)))
}

func validateAccessToken(tokenManager token.Manager, rawToken string) (*token.Claims, error) {
	claims, err := tokenManager.ValidateToken(rawToken)
	if err != nil {
		return nil, mapTokenError(err)
	}
	// refresh 토큰으로 API 호출 불가
	if claims.TokenType != token.ACCESS {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func logJWTFailure(c *gin.Context, step string, err error) {
	slog.Warn("JWT 인증 실패",
		"step", step,
		"error", err.Error(),
		"client_ip", c.ClientIP(),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"request_id", GetRequestID(c),
	)
}

// handleJWTError handles JWT errors using the standardized error response format
func handleJWTError(c *gin.Context, err error) {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		c.JSON(resp.Status, resp)
	} else {
		c.JSON(http.StatusUnauthorized, sharedError.ErrorResponse{
			Status:  http.StatusUnauthorized,
			Code:    "AUTH-999",
			Message: "인증에 실패했습니다.",
		})
	}
	c.Abort()
}

func extractToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], BearerScheme) || strings.TrimSpace(parts[1]) == "" {
		return "", ErrInvalidToken
	}

	return strings.TrimSpace(parts[1]), nil
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, token.ErrExpiredToken):
		return ErrExpiredToken
	case errors.Is(err, token.ErrInvalidClaims):
		return ErrInvalidClaims
	default:
		return ErrInvalidToken
	}
}
