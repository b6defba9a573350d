package model

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleUser  Role = "ROLE_USER"
	RoleAdmin Role = "ROLE_ADMIN"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// Member represents a registered account.
// Seq is the store-assigned sequence number and storage primary key;
// ID is the identifier the member chose at join and never changes.
type Member struct {
	Seq uint32 `gorm:"column:seq;primaryKey;autoIncrement"`

	// 아이디/닉네임/전화번호는 unique
	ID       string    `gorm:"column:member_id;size:50;not null;uniqueIndex:idx_member_member_id"`
	Password string    `gorm:"column:password;size:100;not null"` // bcrypt 해시
	Name     string    `gorm:"column:name;size:50;not null;index:idx_member_name_tel,priority:1"`
	Nickname string    `gorm:"column:nickname;size:50;not null;uniqueIndex:idx_member_nickname"`
	Gender   Gender    `gorm:"column:gender;size:10"`
	Birth    time.Time `gorm:"column:birth;type:date"`
	Tel      string    `gorm:"column:tel;size:20;not null;uniqueIndex:idx_member_tel;index:idx_member_name_tel,priority:2"`
	Smoke    *bool     `gorm:"column:smoke"` // nil: 미응답
	Address  string    `gorm:"column:address;size:255"`
	Role     Role      `gorm:"column:role;size:20;not null"`

	// 탈퇴 시 설정. 탈퇴 회원의 아이디/닉네임/전화번호는 계속 점유됨
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`

	BaseEntity
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "member"
}

// NewMember creates a member for join. The role is always RoleUser;
// password must already be hashed.
func NewMember(id, hashedPassword, name, nickname string, gender Gender, birth time.Time, tel string, smoke *bool, address string) *Member {
	return &Member{
		ID:       id,
		Password: hashedPassword,
		Name:     name,
		Nickname: nickname,
		Gender:   gender,
		Birth:    birth,
		Tel:      tel,
		Smoke:    smoke,
		Address:  address,
		Role:     RoleUser,
	}
}
