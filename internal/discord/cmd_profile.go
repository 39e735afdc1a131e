package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/GrimArmory_Go/internal/domain"
)

func (b *Bot) handleInventory(ctx context.Context, inv *Invocation) (string, error) {
	items, err := b.svc.Inventory.ListInventory(ctx, inv.UserID())
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return MsgInventoryEmpty, nil
	}
	return MsgInventoryHeader + "\n" + formatInventory(items), nil
}

func (b *Bot) handleProfile(ctx context.Context, inv *Invocation) (string, error) {
	balance, err := b.svc.Ledger.GetBalance(ctx, inv.UserID())
	if err != nil {
		return "", err
	}
	items, err := b.svc.Inventory.ListInventory(ctx, inv.UserID())
	if err != nil {
		return "", err
	}
	characters, err := b.svc.Profile.ListCharacters(ctx, inv.UserID())
	if err != nil {
		return "", err
	}

	inventoryText := MsgNoItems
	if len(items) > 0 {
		inventoryText = formatInventory(items)
	}
	charactersText := MsgNoCharacters
	if len(characters) > 0 {
		charactersText = formatCharacters(characters)
	}

	name := inv.DisplayName()
	return fmt.Sprintf(MsgProfileFmt, name, name, balance, inventoryText, charactersText), nil
}

func formatInventory(items []domain.InventoryItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s [x%d]", item.ItemName, item.Quantity))
	}
	return strings.Join(lines, "\n")
}

func formatCharacters(characters []domain.Character) string {
	lines := make([]string, 0, len(characters))
	for _, c := range characters {
		lines = append(lines, fmt.Sprintf("[%s - %s](%s)", c.Name, c.Title, c.SheetURL))
	}
	return strings.Join(lines, "\n")
}

func (b *Bot) handleCharacter(ctx context.Context, inv *Invocation) (string, error) {
	if len(inv.Args) == 0 {
		return b.offerCharacterHelp(inv), nil
	}

	switch strings.ToLower(inv.Args[0]) {
	case ActionAdd:
		if len(inv.Args) < 4 {
			return b.offerCharacterHelp(inv), nil
		}
		name, title, sheetURL := inv.Args[1], inv.Args[2], inv.Args[3]
		if _, err := b.svc.Profile.AddCharacter(ctx, inv.UserID(), name, title, sheetURL); err != nil {
			return "", err
		}
		return fmt.Sprintf(MsgCharacterAddedFmt, name), nil

	case ActionRemove:
		if len(inv.Args) < 2 {
			return "", usage(MsgCharacterUsageFmt, inv.Prefix)
		}
		name := strings.Join(inv.Args[1:], " ")
		removed, err := b.svc.Profile.RemoveCharacter(ctx, inv.UserID(), name)
		if err != nil {
			return "", err
		}
		if removed == 0 {
			return fmt.Sprintf(MsgCharacterMissingFmt, name), nil
		}
		return fmt.Sprintf(MsgCharacterRemovedFmt, name), nil

	default:
		return MsgUnknownSubcommand + "\n" + b.offerCharacterHelp(inv), nil
	}
}

// offerCharacterHelp opens the guided add: confirm, then name, title and sheet link
func (b *Bot) offerCharacterHelp(inv *Invocation) string {
	var name, title string

	askURL := func(ctx context.Context, reply *Invocation) (string, ReplyHandler, error) {
		sheetURL := strings.TrimSpace(reply.Message.Content)
		if _, err := b.svc.Profile.AddCharacter(ctx, reply.UserID(), name, title, sheetURL); err != nil {
			return "", nil, err
		}
		return fmt.Sprintf(MsgCharacterAddedFmt, name), nil, nil
	}
	askTitle := func(_ context.Context, reply *Invocation) (string, ReplyHandler, error) {
		title = strings.TrimSpace(reply.Message.Content)
		return MsgCharacterAskURL, askURL, nil
	}
	askName := func(_ context.Context, reply *Invocation) (string, ReplyHandler, error) {
		name = strings.TrimSpace(reply.Message.Content)
		if name == "" {
			return MsgCharacterEmptyName, nil, nil
		}
		return MsgCharacterAskTitle, askTitle, nil
	}
	confirm := func(_ context.Context, reply *Invocation) (string, ReplyHandler, error) {
		if !confirmReplies[strings.ToLower(strings.TrimSpace(reply.Message.Content))] {
			return MsgCharacterHelpNo, nil, nil
		}
		return MsgCharacterAskName, askName, nil
	}

	b.sessions.open(inv.Message.ChannelID, inv.UserID(), confirm)
	return usage(MsgCharacterUsageFmt, inv.Prefix).Error() + "\n" + MsgCharacterHelpOffer
}
