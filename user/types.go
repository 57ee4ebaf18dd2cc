package user

import "time"

// Role is a user's access level. Admins manage events, criteria and
// awards; judges score.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleJudge Role = "judge"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleJudge
}

type User struct {
	ID       string
	Email    string
	FullName *string
	Role     Role

	CreatedAt time.Time
}
