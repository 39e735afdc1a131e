package domain

// Actor is whoever invoked a command, as seen by permission checks.
type Actor struct {
	UserID string
	// RoleIDs are the roles the actor holds in the managed community.
	RoleIDs []string
	// GuildAdministrator is true when the chat platform grants the actor full administrator permission.
	GuildAdministrator bool
}
