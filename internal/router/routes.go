package router

import (
	"fmt"
	"log/slog"

	"github.com/uknowme/member-server/internal/auth"
	"github.com/uknowme/member-server/internal/config"
	"github.com/uknowme/member-server/internal/member"
	"github.com/uknowme/member-server/internal/meta"
	"github.com/uknowme/member-server/internal/shared/database"
	"github.com/uknowme/member-server/internal/shared/metrics"
	"github.com/uknowme/member-server/internal/shared/middleware"
	"github.com/uknowme/member-server/internal/shared/password"
	"github.com/uknowme/member-server/internal/shared/token"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB, m *metrics.Metrics, gatherer prometheus.Gatherer) error {
	// Meta handler (health check)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)
	router.GET("/metrics", metrics.APIKeyAuth(cfg.Metrics.APIKey), metrics.Handler(gatherer))

	// repository
	memberRepository := member.NewMemberRepository()

	// shared services
	tokenManager := token.NewJWTManager(cfg)
	hasher, err := password.NewBcryptHasher(cfg.Password.BcryptCost)
	if err != nil {
		return fmt.Errorf("password hasher 생성 실패: %w", err)
	}
	slog.Debug("password hasher 설정", "algorithm", "bcrypt", "cost", hasher.Cost())
	directoryAuthorizer, err := member.NewDirectoryAuthorizer(cfg.Member.DirectoryAccess)
	if err != nil {
		return fmt.Errorf("member directory 정책 생성 실패: %w", err)
	}
	if cfg.Member.DirectoryAccess == config.DirectoryPublic {
		slog.Warn("회원 목록이 공개되어 있습니다. MEMBER_DIRECTORY_ACCESS로 제한할 수 있습니다.",
			"access", cfg.Member.DirectoryAccess)
	}

	// service
	authService := auth.NewAuthService(db.DB, memberRepository, hasher, tokenManager)
	memberService := member.NewMemberService(db.DB, memberRepository, hasher, directoryAuthorizer, m)

	// handler
	authHandler := auth.NewAuthHandler(authService)
	memberHandler := member.NewMemberHandler(memberService)

	// API v1 routes
	authV1 := router.Group("/api/v1/auth")
	{
		authV1.POST("/login", authHandler.Login)
	}

	memberV1 := router.Group("/api/v1/members")
	{
		// public
		memberV1.POST("", memberHandler.Join)
		memberV1.GET("/exists/id/:id", memberHandler.ExistsByID)
		memberV1.GET("/exists/nickname/:nickname", memberHandler.ExistsByNickname)
		memberV1.GET("/exists/tel/:tel", memberHandler.ExistsByTel)
		memberV1.POST("/find-id", memberHandler.FindID)
	}

	// directory: access decided by MEMBER_DIRECTORY_ACCESS
	directoryV1 := memberV1.Group("", middleware.OptionalJWT(tokenManager))
	{
		directoryV1.GET("", memberHandler.GetMemberList)
		directoryV1.GET("/:seq", memberHandler.GetMemberBySeq)
	}

	meV1 := memberV1.Group("", middleware.JWT(tokenManager))
	{
		meV1.PUT("", memberHandler.Update)
		meV1.GET("/me", memberHandler.GetMemberInfo)
		meV1.DELETE("/me", memberHandler.Delete)
		meV1.POST("/me/password", memberHandler.ValidatePassword)
	}

	return nil
}
