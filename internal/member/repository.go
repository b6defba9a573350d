package member

import (
	"context"

	"github.com/uknowme/member-server/internal/model"
	"gorm.io/gorm"
)

// updatableColumns are the only columns Update may write.
// member_id, role and seq are never among them.
var updatableColumns = []string{
	"password", "name", "nickname", "gender", "birth", "tel", "smoke", "address", "updated_at", "updated_by",
}

type MemberRepository struct{}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

// Existence checks include withdrawn members: their unique values stay
// reserved by the unique indexes.

func (m *MemberRepository) ExistsByID(ctx context.Context, db *gorm.DB, id string) (bool, error) {
	return m.existsBy(ctx, db, "member_id", id)
}

func (m *MemberRepository) ExistsByNickname(ctx context.Context, db *gorm.DB, nickname string) (bool, error) {
	return m.existsBy(ctx, db, "nickname", nickname)
}

func (m *MemberRepository) ExistsByTel(ctx context.Context, db *gorm.DB, tel string) (bool, error) {
	return m.existsBy(ctx, db, "tel", tel)
}

func (m *MemberRepository) existsBy(ctx context.Context, db *gorm.DB, column, value string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Unscoped().
		Model(&model.Member{}).
		Where(column+" = ?", value).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (m *MemberRepository) Create(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).Create(member).Error
}

func (m *MemberRepository) UpdateProfile(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).
		Model(member).
		Select(updatableColumns).
		Updates(member).Error
}

// SoftDelete marks the member withdrawn (deleted_at); the row stays.
func (m *MemberRepository) SoftDelete(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).Delete(member).Error
}

func (m *MemberRepository) FindByID(ctx context.Context, db *gorm.DB, id string) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("member_id = ?", id).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (m *MemberRepository) FindBySeq(ctx context.Context, db *gorm.DB, seq uint32) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("seq = ?", seq).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (m *MemberRepository) FindByNameAndTel(ctx context.Context, db *gorm.DB, name, tel string) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("name = ? AND tel = ?", name, tel).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (m *MemberRepository) FindAll(ctx context.Context, db *gorm.DB) ([]model.Member, error) {
	var members []model.Member
	err := db.WithContext(ctx).Order("seq").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}
