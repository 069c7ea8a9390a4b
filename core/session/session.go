package session

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// User is the profile record carried by an authenticated session.
//
// Avatar is deliberately excluded from the serialized session record: the blob
// is persisted under its own storage key so a large image never inflates every
// session write.
type User struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Role       string    `json:"role"`
	Privileges []string  `json:"privileges,omitempty"`
	Avatar     []byte    `json:"-"`
}

// FullName returns the display name composed from first and last name.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// HasPrivilege reports whether the user holds the named privilege.
func (u User) HasPrivilege(name string) bool {
	return slices.Contains(u.Privileges, name)
}

// Session represents the authenticated identity for the current process.
// A session is either fully present (token and user both set) or absent;
// the store rejects anything in between.
type Session struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// isComplete reports whether both the token and the user identity are set.
func (s *Session) isComplete() bool {
	return s != nil && s.AccessToken != "" && s.User.ID != uuid.Nil
}

// clone returns a deep copy so callers can never mutate store-owned state.
func (s *Session) clone() *Session {
	if s == nil {
		return nil
	}
	cp := *s
	cp.User.Privileges = slices.Clone(s.User.Privileges)
	cp.User.Avatar = slices.Clone(s.User.Avatar)
	return &cp
}

// UserPatch carries a partial profile update. Nil fields are left unchanged;
// a non-nil Privileges slice replaces the granted set wholesale.
type UserPatch struct {
	FirstName  *string
	LastName   *string
	Role       *string
	Privileges []string
}

func (p UserPatch) apply(u *User) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Privileges != nil {
		u.Privileges = slices.Clone(p.Privileges)
	}
}
