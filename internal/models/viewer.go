package models

// Viewer identifies who is looking at a resource: either an authenticated
// user or nobody. It replaces a nullable user id threaded through feed and
// presentation logic.
type Viewer struct {
	user *User
}

// Anonymous is the viewer for requests carrying no valid token.
func Anonymous() Viewer {
	return Viewer{}
}

// Authenticated returns a viewer bound to the given user.
func Authenticated(u *User) Viewer {
	return Viewer{user: u}
}

// IsAuthenticated reports whether the viewer is a logged-in user.
func (v Viewer) IsAuthenticated() bool {
	return v.user != nil
}

// User returns the authenticated user, or nil for the anonymous viewer.
func (v Viewer) User() *User {
	return v.user
}

// UserID returns the authenticated user's id, or 0 for the anonymous viewer.
func (v Viewer) UserID() uint {
	if v.user == nil {
		return 0
	}
	return v.user.ID
}
