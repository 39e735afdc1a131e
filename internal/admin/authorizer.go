// Package admin decides who may run administrator commands.
package admin

import (
	"fmt"
	"strings"

	"github.com/osse101/GrimArmory_Go/internal/domain"
)

// Authorizer is the single capability predicate for administrator commands.
// An actor is an administrator when they hold one of the configured roles, or
// when bypass is enabled and the chat platform grants them full administrator
// permission in the managed community.
type Authorizer struct {
	roles  map[string]struct{}
	bypass bool
}

// NewAuthorizer creates an Authorizer for the given role ids
func NewAuthorizer(roleIDs []string, bypass bool) *Authorizer {
	roles := make(map[string]struct{}, len(roleIDs))
	for _, id := range roleIDs {
		if id = strings.TrimSpace(id); id != "" {
			roles[id] = struct{}{}
		}
	}
	return &Authorizer{roles: roles, bypass: bypass}
}

// IsAdministrator reports whether actor may run administrator commands
func (a *Authorizer) IsAdministrator(actor domain.Actor) bool {
	if a.bypass && actor.GuildAdministrator {
		return true
	}
	for _, r := range actor.RoleIDs {
		if _, ok := a.roles[r]; ok {
			return true
		}
	}
	return false
}

// Require returns domain.ErrNotAdministrator unless actor is an administrator
func (a *Authorizer) Require(actor domain.Actor) error {
	if a.IsAdministrator(actor) {
		return nil
	}
	return fmt.Errorf("%w: user %s", domain.ErrNotAdministrator, actor.UserID)
}
