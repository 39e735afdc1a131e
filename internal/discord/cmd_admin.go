package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/GrimArmory_Go/internal/worker"
)

// money <amount> @user
func (b *Bot) handleMoney(ctx context.Context, inv *Invocation) (string, error) {
	if len(inv.Args) < 2 {
		return "", usage(MsgMoneyUsageFmt, inv.Prefix)
	}
	delta, ok := parseAmount(inv.Args[0])
	if !ok {
		return "", usage(MsgMoneyUsageFmt, inv.Prefix)
	}
	target, ok := b.targetUser(inv, inv.Args[1])
	if !ok {
		return "", usage(MsgMoneyUsageFmt, inv.Prefix)
	}

	balance, err := b.svc.Ledger.AdjustBalance(ctx, target, delta)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(MsgMoneyFmt, mention(target), delta, balance), nil
}

// item @user <item name> <quantity>; a negative quantity removes
func (b *Bot) handleItem(ctx context.Context, inv *Invocation) (string, error) {
	if len(inv.Args) < 3 {
		return "", usage(MsgItemUsageFmt, inv.Prefix)
	}
	target, ok := b.targetUser(inv, inv.Args[0])
	if !ok {
		return "", usage(MsgItemUsageFmt, inv.Prefix)
	}
	delta, err := strconv.Atoi(inv.Args[len(inv.Args)-1])
	if err != nil {
		return "", usage(MsgItemUsageFmt, inv.Prefix)
	}
	itemName := strings.Join(inv.Args[1:len(inv.Args)-1], " ")

	if _, err := b.svc.Inventory.AdjustItem(ctx, target, itemName, delta); err != nil {
		return "", err
	}
	return fmt.Sprintf(MsgItemFmt, mention(target), itemName, delta), nil
}

// perk add <@role> <bonus> <name> | perk remove <@role> | perk list
func (b *Bot) handlePerk(ctx context.Context, inv *Invocation) (string, error) {
	if len(inv.Args) == 0 {
		return "", usage(MsgPerkUsageFmt, inv.Prefix)
	}

	switch strings.ToLower(inv.Args[0]) {
	case ActionAdd:
		if len(inv.Args) < 4 {
			return "", usage(MsgPerkUsageFmt, inv.Prefix)
		}
		roleID, ok := parseRoleMention(inv.Args[1])
		if !ok {
			return "", usage(MsgPerkUsageFmt, inv.Prefix)
		}
		bonus, ok := parseAmount(inv.Args[2])
		if !ok {
			return "", usage(MsgPerkUsageFmt, inv.Prefix)
		}
		name := strings.Join(inv.Args[3:], " ")
		if err := b.svc.Perks.AddPerk(ctx, roleID, name, bonus); err != nil {
			return "", err
		}
		return fmt.Sprintf(MsgPerkAddedFmt, name, bonus, roleID), nil

	case ActionRemove:
		if len(inv.Args) < 2 {
			return "", usage(MsgPerkUsageFmt, inv.Prefix)
		}
		roleID, ok := parseRoleMention(inv.Args[1])
		if !ok {
			return "", usage(MsgPerkUsageFmt, inv.Prefix)
		}
		if err := b.svc.Perks.RemovePerk(ctx, roleID); err != nil {
			return "", err
		}
		return fmt.Sprintf(MsgPerkRemovedFmt, roleID), nil

	case ActionList:
		perks, err := b.svc.Perks.ListPerks(ctx)
		if err != nil {
			return "", err
		}
		if len(perks) == 0 {
			return MsgPerkListEmpty, nil
		}
		lines := make([]string, 0, len(perks))
		for _, p := range perks {
			lines = append(lines, fmt.Sprintf(MsgPerkRowFmt, p.PerkName, p.RoleID, p.Bonus))
		}
		return strings.Join(lines, "\n"), nil

	default:
		return "", usage(MsgPerkUsageFmt, inv.Prefix)
	}
}

func (b *Bot) handleAssignCrowns(ctx context.Context, inv *Invocation) (string, error) {
	b.reply(ctx, inv.Message.ChannelID, MsgPayoutStarting)
	report, err := b.svc.Payout.RunNow(ctx)
	if errors.Is(err, worker.ErrPayoutInProgress) {
		return MsgPayoutBusy, nil
	}
	if err != nil {
		return "", err
	}

	text := fmt.Sprintf(MsgPayoutDoneFmt, len(report.Credited), report.TotalCredited())
	if len(report.Failures) > 0 {
		text += fmt.Sprintf(MsgPayoutFailuresFmt, len(report.Failures))
	}
	return text, nil
}

func (b *Bot) handleExport(ctx context.Context, _ *Invocation) (string, error) {
	n, err := b.svc.Backup.ExportFile(ctx, b.cfg.ExportPath)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(MsgExportDoneFmt, n), nil
}
