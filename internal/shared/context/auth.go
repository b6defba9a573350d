package context

import (
	"github.com/gin-gonic/gin"
)

// Context keys for storing caller authentication information
const (
	MemberIDKey   = "member_id"
	MemberRoleKey = "member_role"
)

// SetCaller stores the authenticated caller on the gin context.
func SetCaller(c *gin.Context, memberID, role string) {
	c.Set(MemberIDKey, memberID)
	c.Set(MemberRoleKey, role)
}

func GetMemberID(c *gin.Context) (string, bool) {
	memberID, exists := c.Get(MemberIDKey)
	if !exists {
		return "", false
	}

	id, ok := memberID.(string)
	if !ok || id == "" {
		return "", false
	}

	return id, true
}

// CallerID returns the authenticated member identifier, or "" for an
// anonymous request. Services treat "" as unauthenticated.
func CallerID(c *gin.Context) string {
	id, _ := GetMemberID(c)
	return id
}
