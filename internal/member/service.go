package member

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/uknowme/member-server/internal/model"
	"github.com/uknowme/member-server/internal/shared/database"
	"github.com/uknowme/member-server/internal/shared/logger"
	"github.com/uknowme/member-server/internal/shared/metrics"
	"github.com/uknowme/member-server/internal/shared/password"
	"github.com/uknowme/member-server/internal/shared/validator"
	"gorm.io/gorm"
)

// MemberService implements the member account operations.
//
// Operations that act on "my account" take the authenticated caller's
// identifier explicitly; an empty callerID means the request is anonymous.
// Failures are domain errors: ErrUnauthenticated / ErrNotOwner /
// ErrDirectoryAccessDenied (authorization), ErrDuplicate* / ErrInvalidBirth
// (validation) and ErrMemberNotFound. Each operation runs in one
// transaction; the unique indexes on member_id, nickname and tel back the
// existence pre-checks.
type MemberService struct {
	db                  *gorm.DB
	memberRepository    *MemberRepository
	hasher              password.Hasher
	directoryAuthorizer DirectoryAuthorizer
	metrics             *metrics.Metrics
}

func NewMemberService(
	db *gorm.DB,
	memberRepository *MemberRepository,
	hasher password.Hasher,
	directoryAuthorizer DirectoryAuthorizer,
	m *metrics.Metrics,
) *MemberService {
	if directoryAuthorizer == nil {
		directoryAuthorizer = AllowPublic
	}
	return &MemberService{
		db:                  db,
		memberRepository:    memberRepository,
		hasher:              hasher,
		directoryAuthorizer: directoryAuthorizer,
		metrics:             m,
	}
}

func (s *MemberService) Join(ctx context.Context, request *JoinRequest) (err error) {
	log := logger.FromContext(ctx)
	defer func() { s.observe("join", err) }()

	birth, err := parseBirth(request.Birth)
	if err != nil {
		log.Warn("회원가입 실패 - 생년월일 형식 오류", "birth", request.Birth)
		return err
	}

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.checkJoinUniqueness(ctx, tx, request); err != nil {
			return err
		}

		hashedPassword, err := s.hasher.Encode(request.Password)
		if err != nil {
			log.Error("Failed to hash password", "error", err)
			return fmt.Errorf("hash password: %w", err)
		}

		member := model.NewMember(
			request.ID,
			hashedPassword,
			request.Name,
			request.Nickname,
			request.Gender,
			birth,
			request.Tel,
			request.Smoke,
			request.Address,
		)
		if err := s.memberRepository.Create(ctx, tx, member); err != nil {
			// 동시 가입으로 사전 검사를 통과한 경우 unique 인덱스가 막음
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				log.Warn("Member already exists (unique constraint)", "id", logger.MaskID(request.ID))
				return fmt.Errorf("create member: %w", ErrMemberAlreadyExists)
			}
			log.Error("Failed to create member", "error", err)
			return fmt.Errorf("create member: %w", err)
		}

		log.Info("Member created successfully", "id", logger.MaskID(request.ID), "seq", member.Seq)
		return nil
	})
}

// checkJoinUniqueness reports the first collision in id, nickname, tel order.
func (s *MemberService) checkJoinUniqueness(ctx context.Context, tx *gorm.DB, request *JoinRequest) error {
	log := logger.FromContext(ctx)

	checks := []struct {
		field  string
		value  string
		exists func(context.Context, *gorm.DB, string) (bool, error)
		errDup error
	}{
		{field: "id", value: request.ID, exists: s.memberRepository.ExistsByID, errDup: ErrDuplicateMemberID},
		{field: "nickname", value: request.Nickname, exists: s.memberRepository.ExistsByNickname, errDup: ErrDuplicateNickname},
		{field: "tel", value: request.Tel, exists: s.memberRepository.ExistsByTel, errDup: ErrDuplicateTel},
	}

	for _, check := range checks {
		exists, err := check.exists(ctx, tx, check.value)
		if err != nil {
			log.Error("Failed to check member existence", "field", check.field, "error", err)
			return fmt.Errorf("check %s existence: %w", check.field, err)
		}
		if exists {
			log.Warn("회원가입 실패 - 중복", "field", check.field, "id", logger.MaskID(request.ID))
			return fmt.Errorf("%s already in use: %w", check.field, check.errDup)
		}
	}
	return nil
}

func (s *MemberService) Update(ctx context.Context, callerID string, request *UpdateRequest) (err error) {
	log := logger.FromContext(ctx)
	defer func() { s.observe("update", err) }()

	if callerID == "" {
		log.Info("로그인한 회원이 아닙니다.")
		return fmt.Errorf("update member: %w", ErrUnauthenticated)
	}

	if callerID != request.ID {
		log.Warn("본인만 정보를 변경할 수 있습니다.", "caller", logger.MaskID(callerID), "target", logger.MaskID(request.ID))
		return fmt.Errorf("update member: %w", ErrNotOwner)
	}

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		member, err := s.findMember(ctx, tx, request.ID)
		if err != nil {
			return err
		}

		if err := s.applyUpdate(ctx, tx, member, request); err != nil {
			return err
		}

		if err := s.memberRepository.UpdateProfile(ctx, tx, member); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("update member: %w", ErrMemberAlreadyExists)
			}
			log.Error("Failed to update member", "error", err)
			return fmt.Errorf("update member: %w", err)
		}

		log.Info("Member updated successfully", "id", logger.MaskID(member.ID))
		return nil
	})
}

// applyUpdate copies the set fields of request onto member, re-checking
// uniqueness of a changed nickname or tel and hashing a new password.
func (s *MemberService) applyUpdate(ctx context.Context, tx *gorm.DB, member *model.Member, request *UpdateRequest) error {
	if request.Nickname != nil && *request.Nickname != member.Nickname {
		exists, err := s.memberRepository.ExistsByNickname(ctx, tx, *request.Nickname)
		if err != nil {
			return fmt.Errorf("check nickname existence: %w", err)
		}
		if exists {
			return fmt.Errorf("nickname already in use: %w", ErrDuplicateNickname)
		}
		member.Nickname = *request.Nickname
	}

	if request.Tel != nil && *request.Tel != member.Tel {
		exists, err := s.memberRepository.ExistsByTel(ctx, tx, *request.Tel)
		if err != nil {
			return fmt.Errorf("check tel existence: %w", err)
		}
		if exists {
			return fmt.Errorf("tel already in use: %w", ErrDuplicateTel)
		}
		member.Tel = *request.Tel
	}

	if request.Birth != nil {
		birth, err := parseBirth(*request.Birth)
		if err != nil {
			return err
		}
		member.Birth = birth
	}

	if request.Password != nil {
		hashedPassword, err := s.hasher.Encode(*request.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		member.Password = hashedPassword
	}

	if request.Name != nil {
		member.Name = *request.Name
	}
	if request.Gender != nil {
		member.Gender = *request.Gender
	}
	if request.Smoke != nil {
		smoke := *request.Smoke
		member.Smoke = &smoke
	}
	if request.Address != nil {
		member.Address = *request.Address
	}

	member.UpdatedBy = &member.Seq
	return nil
}

// Delete withdraws the caller's own account.
func (s *MemberService) Delete(ctx context.Context, callerID string) (err error) {
	log := logger.FromContext(ctx)
	defer func() { s.observe("delete", err) }()

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		member, err := s.findCaller(ctx, tx, callerID)
		if err != nil {
			return err
		}

		if err := s.memberRepository.SoftDelete(ctx, tx, member); err != nil {
			log.Error("Failed to delete member", "error", err)
			return fmt.Errorf("delete member: %w", err)
		}

		log.Info("Member withdrawn", "id", logger.MaskID(member.ID))
		return nil
	})
}

func (s *MemberService) GetMemberInfo(ctx context.Context, callerID string) (response *MemberInfoResponse, err error) {
	defer func() { s.observe("get_member_info", err) }()

	err = database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		member, err := s.findCaller(ctx, tx, callerID)
		if err != nil {
			return err
		}

		info := newMemberInfoResponse(member)
		response = &info
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}

// ValidatePassword reports whether plaintext matches the caller's password.
// A mismatch is (false, nil).
func (s *MemberService) ValidatePassword(ctx context.Context, callerID string, request *ValidatePasswordRequest) (valid bool, err error) {
	log := logger.FromContext(ctx)
	defer func() { s.observe("validate_password", err) }()

	err = database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		member, err := s.findCaller(ctx, tx, callerID)
		if err != nil {
			return err
		}

		valid = s.hasher.Matches(request.Password, member.Password)
		if !valid {
			log.Info("비밀번호가 다릅니다.", "id", logger.MaskID(member.ID))
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	return valid, nil
}

// FindID recovers an identifier from an exact name and tel match.
// It needs no authentication and applies no rate limiting.
func (s *MemberService) FindID(ctx context.Context, request *FindIDRequest) (response *FindIDResponse, err error) {
	log := logger.FromContext(ctx)
	defer func() { s.observe("find_id", err) }()

	member, err := s.memberRepository.FindByNameAndTel(ctx, s.db, request.Name, request.Tel)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Info("아이디 찾기 실패 - 일치하는 회원 없음",
				"name", logger.MaskName(request.Name), "tel", logger.MaskTel(request.Tel))
			return nil, fmt.Errorf("find id: %w", ErrMemberNotFound)
		}
		return nil, fmt.Errorf("find id: %w", err)
	}

	return &FindIDResponse{ID: member.ID}, nil
}

func (s *MemberService) GetMemberList(ctx context.Context, callerID string) (response []MemberInfoResponse, err error) {
	defer func() { s.observe("get_member_list", err) }()

	err = database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.authorizeDirectory(ctx, tx, callerID); err != nil {
			return err
		}

		members, err := s.memberRepository.FindAll(ctx, tx)
		if err != nil {
			return fmt.Errorf("회원 목록 조회 실패: %w", err)
		}

		response = make([]MemberInfoResponse, 0, len(members))
		for i := range members {
			response = append(response, newMemberInfoResponse(&members[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}

func (s *MemberService) GetMemberBySeq(ctx context.Context, callerID string, seq uint32) (response *MemberInfoResponse, err error) {
	defer func() { s.observe("get_member_by_seq", err) }()

	err = database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.authorizeDirectory(ctx, tx, callerID); err != nil {
			return err
		}

		member, err := s.memberRepository.FindBySeq(ctx, tx, seq)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("회원을 찾을 수 없습니다 seq=%d %w", seq, ErrMemberNotFound)
			}
			return fmt.Errorf("회원 조회 실패: %w", err)
		}

		info := newMemberInfoResponse(member)
		response = &info
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}

func (s *MemberService) ExistsByID(ctx context.Context, id string) (bool, error) {
	return s.memberRepository.ExistsByID(ctx, s.db, id)
}

func (s *MemberService) ExistsByNickname(ctx context.Context, nickname string) (bool, error) {
	return s.memberRepository.ExistsByNickname(ctx, s.db, nickname)
}

func (s *MemberService) ExistsByTel(ctx context.Context, tel string) (bool, error) {
	return s.memberRepository.ExistsByTel(ctx, s.db, tel)
}

// findCaller loads the authenticated caller's own record.
func (s *MemberService) findCaller(ctx context.Context, tx *gorm.DB, callerID string) (*model.Member, error) {
	if callerID == "" {
		logger.FromContext(ctx).Info("로그인한 회원이 아닙니다.")
		return nil, ErrUnauthenticated
	}
	return s.findMember(ctx, tx, callerID)
}

func (s *MemberService) findMember(ctx context.Context, tx *gorm.DB, id string) (*model.Member, error) {
	member, err := s.memberRepository.FindByID(ctx, tx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.FromContext(ctx).Warn("해당 아이디가 없습니다.", "id", logger.MaskID(id))
			return nil, fmt.Errorf("회원을 찾을 수 없습니다 id=%s %w", logger.MaskID(id), ErrMemberNotFound)
		}
		return nil, fmt.Errorf("회원 조회 실패: %w", err)
	}
	return member, nil
}

// authorizeDirectory runs the directory policy. Anonymous callers and
// callers without an active record are passed as nil.
func (s *MemberService) authorizeDirectory(ctx context.Context, tx *gorm.DB, callerID string) error {
	var caller *model.Member
	if callerID != "" {
		member, err := s.memberRepository.FindByID(ctx, tx, callerID)
		switch {
		case err == nil:
			caller = member
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return fmt.Errorf("회원 조회 실패: %w", err)
		}
	}

	if err := s.directoryAuthorizer(caller); err != nil {
		logger.FromContext(ctx).Warn("회원 목록 접근 거부", "caller", logger.MaskID(callerID), "error", err)
		return fmt.Errorf("member directory: %w", err)
	}
	return nil
}

func (s *MemberService) observe(operation string, err error) {
	s.metrics.ObserveMemberOperation(operation, metrics.OutcomeOf(err))
}

func parseBirth(value string) (time.Time, error) {
	birth, err := time.Parse(validator.BirthLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse birth %q: %w", value, ErrInvalidBirth)
	}
	return birth, nil
}
