package member

import (
	"github.com/uknowme/member-server/internal/model"
	"github.com/uknowme/member-server/internal/shared/validator"
)

type JoinRequest struct {
	ID       string       `json:"id" binding:"required,memberid"`
	Password string       `json:"password" binding:"required,min=8,max=20"`
	Name     string       `json:"name" binding:"required,min=1,max=20"`
	Nickname string       `json:"nickname" binding:"required,min=2,max=20"`
	Gender   model.Gender `json:"gender" binding:"required,oneof=MALE FEMALE"`
	Birth    string       `json:"birth" binding:"required,birthdate"` // YYYY-MM-DD
	Tel      string       `json:"tel" binding:"required,phone"`
	Smoke    *bool        `json:"smoke"`
	Address  string       `json:"address" binding:"max=255"`
}

// UpdateRequest changes the fields that are set. ID names the target
// member and must be the caller.
type UpdateRequest struct {
	ID       string        `json:"id" binding:"required"`
	Password *string       `json:"password" binding:"omitempty,min=8,max=20"`
	Name     *string       `json:"name" binding:"omitempty,min=1,max=20"`
	Nickname *string       `json:"nickname" binding:"omitempty,min=2,max=20"`
	Gender   *model.Gender `json:"gender" binding:"omitempty,oneof=MALE FEMALE"`
	Birth    *string       `json:"birth" binding:"omitempty,birthdate"`
	Tel      *string       `json:"tel" binding:"omitempty,phone"`
	Smoke    *bool         `json:"smoke"`
	Address  *string       `json:"address" binding:"omitempty,max=255"`
}

type ValidatePasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

type ValidatePasswordResponse struct {
	Valid bool `json:"valid"`
}

type FindIDRequest struct {
	Name string `json:"name" binding:"required"`
	Tel  string `json:"tel" binding:"required"`
}

type FindIDResponse struct {
	ID string `json:"id"`
}

type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// MemberInfoResponse is the read-only projection of a member; it never
// carries the password hash.
type MemberInfoResponse struct {
	Seq      uint32       `json:"seq"`
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Nickname string       `json:"nickname"`
	Gender   model.Gender `json:"gender"`
	Birth    string       `json:"birth"`
	Tel      string       `json:"tel"`
	Smoke    *bool        `json:"smoke"`
	Address  string       `json:"address"`
	Role     model.Role   `json:"role"`
}

func newMemberInfoResponse(member *model.Member) MemberInfoResponse {
	var birth string
	if !member.Birth.IsZero() {
		birth = member.Birth.Format(validator.BirthLayout)
	}

	return MemberInfoResponse{
		Seq:      member.Seq,
		ID:       member.ID,
		Name:     member.Name,
		Nickname: member.Nickname,
		Gender:   member.Gender,
		Birth:    birth,
		Tel:      member.Tel,
		Smoke:    member.Smoke,
		Address:  member.Address,
		Role:     member.Role,
	}
}

type seqURI struct {
	Seq uint32 `uri:"seq" binding:"required,gt=0"`
}
