package discord

import (
	"context"
	"fmt"

	"github.com/osse101/GrimArmory_Go/internal/domain"
)

// fetchMembers pages through the whole guild member list
func (b *Bot) fetchMembers(ctx context.Context) ([]domain.Member, error) {
	var (
		out   []domain.Member
		after string
	)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page, err := b.platform.members(b.cfg.GuildID, after, RosterPageSize)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgFetchMembers, after, err)
		}
		previous := after
		for _, m := range page {
			if m == nil || m.User == nil {
				continue
			}
			after = m.User.ID
			if m.User.Bot {
				continue
			}
			out = append(out, domain.Member{
				UserID:      m.User.ID,
				DisplayName: displayName(m, m.User),
				RoleIDs:     m.Roles,
			})
		}
		if len(page) < RosterPageSize || after == previous {
			return out, nil
		}
	}
}
