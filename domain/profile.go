package domain

// Role distinguishes the two sides of the marketplace.
type Role string

const (
	RoleCoach   Role = "coach"
	RoleStudent Role = "student"
)

// Profile is the external directory's view of a user. The messaging core
// never stores profiles; it only decorates conversations with them.
type Profile struct {
	ID          string
	DisplayName string
	AvatarURL   string
	Role        Role
}
