package auth

import (
	"net/http"

	sharedError "github.com/uknowme/member-server/internal/shared/error"
)

const (
	incorrectIDPassword = "INCORRECT_ID_PASSWORD" // errInfo
)

var (
	ErrIncorrectIDPassword = sharedError.NewDomainError(incorrectIDPassword, sharedError.KindAuthorization)
)

func init() {
	sharedError.RegisterDomainErrorResponse(incorrectIDPassword, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "AUTH-003",
		Message: "아이디 또는 비밀번호가 일치하지 않습니다.",
	})
}
