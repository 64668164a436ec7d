package domain

// Session identifies the caller of an operation. It is built from a verified
// token (or the guest fallback) and passed explicitly to every service call
// that needs authorization; there is no ambient current-user state.
type Session struct {
	UserID   int64
	Username string
	FullName string
	IsAdmin  bool
}

// Guest is the anonymous session: may submit and browse surveys, nothing else.
func Guest() Session {
	return Session{Username: "guest", FullName: "Guest User"}
}

// IsGuest reports whether the session belongs to an unauthenticated caller.
func (s Session) IsGuest() bool {
	return s.UserID == 0
}

// Owner returns the owner value recorded on surveys created by this session.
// Guest submissions are stored with an empty owner.
func (s Session) Owner() string {
	if s.IsGuest() {
		return ""
	}
	return s.Username
}
