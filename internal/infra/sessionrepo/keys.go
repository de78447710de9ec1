package sessionrepo

import "movecar/internal/domain/session"

// Each semantic role owns one key per user. Roles never collide with each
// other because no role is a prefix of another up to the separator, and
// user keys are already case-folded by session.NewUserKey.
type role string

const (
	roleStatus       role = "status"
	roleRequesterLoc role = "loc"
	roleOwnerLoc     role = "owner_loc"
	roleLock         role = "lock"
)

func storageKey(r role, user session.UserKey) string {
	return string(r) + "_" + user.String()
}
