package model

// Role values stored on a user record.  A role is assigned exactly once at
// registration and never changed afterwards.  Admin users manage the catalog
// and every booking; guests only see their own bookings.
const (
	RoleGuest = "guest"
	RoleAdmin = "admin"
)

// User represents a registered guest or administrator.  The email address is
// unique across the collection and doubles as the login key; no password or
// other credential is stored with the record.
//
// Fields:
//  ID        – opaque identifier of the user.
//  Name      – display name shown on dashboards and in emails.
//  Email     – unique, normalized (lower-case, trimmed) email address.
//  Role      – "guest" or "admin", assigned at registration.
//  Mobile    – optional contact number.
//  CreatedAt – RFC 3339 timestamp of registration.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Mobile    string `json:"mobile,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
