package member

import (
	"net/http"

	sharedError "github.com/uknowme/member-server/internal/shared/error"
)

const (
	memberNotFound        = "MEMBER_NOT_FOUND"        // errInfo
	memberAlreadyExists   = "MEMBER_ALREADY_EXISTS"   // errInfo
	duplicateMemberID     = "DUPLICATE_MEMBER_ID"     // errInfo
	duplicateNickname     = "DUPLICATE_NICKNAME"      // errInfo
	duplicateTel          = "DUPLICATE_TEL"           // errInfo
	invalidBirth          = "INVALID_BIRTH"           // errInfo
	unauthenticated       = "UNAUTHENTICATED"         // errInfo
	notOwner              = "NOT_OWNER"               // errInfo
	directoryAccessDenied = "DIRECTORY_ACCESS_DENIED" // errInfo
)

var (
	// NotFound
	ErrMemberNotFound = sharedError.NewDomainError(memberNotFound, sharedError.KindNotFound)

	// ValidationFailure
	ErrMemberAlreadyExists = sharedError.NewDomainError(memberAlreadyExists, sharedError.KindValidation)
	ErrDuplicateMemberID   = sharedError.NewDomainError(duplicateMemberID, sharedError.KindValidation)
	ErrDuplicateNickname   = sharedError.NewDomainError(duplicateNickname, sharedError.KindValidation)
	ErrDuplicateTel        = sharedError.NewDomainError(duplicateTel, sharedError.KindValidation)
	ErrInvalidBirth        = sharedError.NewDomainError(invalidBirth, sharedError.KindValidation)

	// AuthorizationFailure
	ErrUnauthenticated       = sharedError.NewDomainError(unauthenticated, sharedError.KindAuthorization)
	ErrNotOwner              = sharedError.NewDomainError(notOwner, sharedError.KindAuthorization)
	ErrDirectoryAccessDenied = sharedError.NewDomainError(directoryAccessDenied, sharedError.KindAuthorization)
)

func init() {
	sharedError.RegisterDomainErrorResponse(memberNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "MEMBER-001",
		Message: "회원 정보를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(memberAlreadyExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "MEMBER-002",
		Message: "이미 가입된 사용자입니다.",
	})

	sharedError.RegisterDomainErrorResponse(duplicateMemberID, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "MEMBER-003",
		Message: "이미 사용 중인 아이디입니다.",
	})

	sharedError.RegisterDomainErrorResponse(duplicateNickname, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "MEMBER-004",
		Message: "이미 사용 중인 닉네임입니다.",
	})

	sharedError.RegisterDomainErrorResponse(duplicateTel, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "MEMBER-005",
		Message: "이미 가입된 전화번호입니다.",
	})

	sharedError.RegisterDomainErrorResponse(invalidBirth, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "MEMBER-006",
		Message: "생년월일 형식이 올바르지 않습니다.",
	})

	sharedError.RegisterDomainErrorResponse(unauthenticated, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-000",
		Message: "로그인을 해주세요.",
	})

	sharedError.RegisterDomainErrorResponse(notOwner, sharedError.ErrorResponse{
		Status:  http.StatusForbidden,
		Code:    "MEMBER-007",
		Message: "본인만 정보를 변경할 수 있습니다.",
	})

	sharedError.RegisterDomainErrorResponse(directoryAccessDenied, sharedError.ErrorResponse{
		Status:  http.StatusForbidden,
		Code:    "MEMBER-008",
		Message: "회원 목록을 조회할 권한이 없습니다.",
	})
}
