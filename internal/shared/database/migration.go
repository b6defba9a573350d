package database

import (
	"fmt"
	"log/slog"

	"github.com/uknowme/member-server/internal/config"
	"github.com/uknowme/member-server/internal/model"

	"gorm.io/gorm"
)

// Models lists every table in dependency order (FK 참조 순서).
func Models() []any {
	return []any{
		&model.Member{},
	}
}

// Migrate drops and recreates all tables when DB_AUTO_MIGRATE=true.
func Migrate(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Database.IsAutoMigrate {
		slog.Info("데이터베이스 마이그레이션 비활성화됨",
			"auto_migrate", false, "env", cfg.App.Env,
		)
		return nil
	}

	// Safety check: prevent accidental data loss in production
	if cfg.IsProduction() {
		return fmt.Errorf("PRODUCTION 환경에서는 DB_AUTO_MIGRATE=true를 사용할 수 없습니다")
	}

	slog.Warn("데이터베이스 마이그레이션 시작 - 모든 테이블이 삭제되고 재생성됩니다!",
		"auto_migrate", true, "env", cfg.App.Env, "driver", cfg.Database.Driver,
	)

	models := Models()

	// Drop in reverse dependency order
	for i := len(models) - 1; i >= 0; i-- {
		m := models[i]
		if !db.Migrator().HasTable(m) {
			continue
		}
		if err := db.Migrator().DropTable(m); err != nil {
			return fmt.Errorf("%T 테이블 삭제 실패: %w", m, err)
		}
		slog.Debug("테이블 삭제 성공", "model", fmt.Sprintf("%T", m))
	}

	if err := AutoMigrate(db); err != nil {
		return fmt.Errorf("테이블 생성 실패: %w", err)
	}

	slog.Info("마이그레이션 완료")
	return nil
}

// AutoMigrate creates tables and indexes from the model definitions.
func AutoMigrate(db *gorm.DB) error {
	for _, m := range Models() {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("%T 마이그레이션 실패: %w", m, err)
		}
		slog.Debug("테이블 생성됨", "model", fmt.Sprintf("%T", m))
	}
	return nil
}
