package member

import (
	"fmt"

	"github.com/uknowme/member-server/internal/config"
	"github.com/uknowme/member-server/internal/model"
)

// DirectoryAuthorizer decides whether caller may read other members
// (member list, lookup by seq). caller is nil for anonymous requests.
type DirectoryAuthorizer func(caller *model.Member) error

// AllowPublic lets anyone read the directory.
func AllowPublic(*model.Member) error {
	return nil
}

// RequireAuthenticated admits any active member.
func RequireAuthenticated(caller *model.Member) error {
	if caller == nil {
		return ErrUnauthenticated
	}
	return nil
}

// RequireRole admits active members holding role.
func RequireRole(role model.Role) DirectoryAuthorizer {
	return func(caller *model.Member) error {
		if caller == nil {
			return ErrUnauthenticated
		}
		if caller.Role != role {
			return ErrDirectoryAccessDenied
		}
		return nil
	}
}

// NewDirectoryAuthorizer maps MEMBER_DIRECTORY_ACCESS to a policy.
func NewDirectoryAuthorizer(access string) (DirectoryAuthorizer, error) {
	switch access {
	case config.DirectoryPublic:
		return AllowPublic, nil
	case config.DirectoryAuthenticated:
		return RequireAuthenticated, nil
	case config.DirectoryAdmin:
		return RequireRole(model.RoleAdmin), nil
	default:
		return nil, fmt.Errorf("member: unknown directory access %q", access)
	}
}
