package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/GrimArmory_Go/internal/domain"
	"github.com/osse101/GrimArmory_Go/internal/utils"
)

func (b *Bot) handleBalance(ctx context.Context, inv *Invocation) (string, error) {
	balance, err := b.svc.Ledger.GetBalance(ctx, inv.UserID())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(MsgBalanceFmt, inv.DisplayName(), balance), nil
}

func (b *Bot) handleGive(ctx context.Context, inv *Invocation) (string, error) {
	if len(inv.Args) < 2 {
		return "", usage(MsgGiveUsage, inv.Prefix)
	}
	amount, ok := parseAmount(inv.Args[0])
	if !ok {
		return "", usage(MsgGiveUsage, inv.Prefix)
	}
	recipient, ok := b.targetUser(inv, inv.Args[1])
	if !ok {
		return "", usage(MsgGiveUsage, inv.Prefix)
	}

	if _, err := b.svc.Ledger.Transfer(ctx, inv.UserID(), recipient, amount); err != nil {
		return "", err
	}
	return fmt.Sprintf(MsgGiveFmt, mention(inv.UserID()), amount, mention(recipient)), nil
}

// targetUser prefers the first user mention of the message, then the raw argument
func (b *Bot) targetUser(inv *Invocation, arg string) (string, bool) {
	if id, ok := parseUserMention(arg); ok {
		return id, true
	}
	for _, u := range inv.Message.Mentions {
		if u != nil && u.ID != "" {
			return u.ID, true
		}
	}
	return "", false
}

func (b *Bot) handleLeaderboard(ctx context.Context, inv *Invocation) (string, error) {
	entries, err := b.svc.Ledger.GetLeaderboard(ctx, LeaderboardSize)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return MsgLeaderboardEmpty, nil
	}

	lines := []string{MsgLeaderboardHeader}
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf(MsgLeaderboardRowFmt, e.Rank, b.memberName(inv.Message.GuildID, e.UserID), e.Balance))
	}
	return strings.Join(lines, "\n"), nil
}

// memberName resolves a display name, falling back to the raw id
func (b *Bot) memberName(guildID, userID string) string {
	if guildID == "" {
		guildID = b.cfg.GuildID
	}
	m, err := b.platform.member(guildID, userID)
	if err != nil || m == nil {
		return userID
	}
	if name := displayName(m, m.User); name != "" {
		return name
	}
	return userID
}

func (b *Bot) handleStore(ctx context.Context, inv *Invocation) (string, error) {
	if len(inv.Args) > 0 {
		return b.storeCategory(ctx, inv.Prefix, inv.Text())
	}

	categories, err := b.svc.Catalog.Categories(ctx)
	if err != nil {
		return "", err
	}
	if len(categories) == 0 {
		return b.storeAll(ctx, inv.Prefix)
	}

	lines := []string{MsgStoreHeader}
	for i, c := range categories {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, c))
	}

	b.sessions.open(inv.Message.ChannelID, inv.UserID(), func(ctx context.Context, reply *Invocation) (string, ReplyHandler, error) {
		choice := strings.TrimSpace(reply.Message.Content)
		if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(categories) {
			choice = categories[n-1]
		}
		text, err := b.storeCategory(ctx, inv.Prefix, choice)
		return text, nil, err
	})

	return strings.Join(lines, "\n"), nil
}

func (b *Bot) storeCategory(ctx context.Context, prefix, category string) (string, error) {
	categories, err := b.svc.Catalog.Categories(ctx)
	if err != nil {
		return "", err
	}
	for _, c := range categories {
		if utils.SameName(c, category) {
			category = c
			break
		}
	}

	items, err := b.svc.Catalog.ListByCategory(ctx, category)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return MsgStoreUnknownCat, nil
	}
	return formatStore(prefix, items[0].CategoryTag, items), nil
}

func (b *Bot) storeAll(ctx context.Context, prefix string) (string, error) {
	items, err := b.svc.Catalog.ListItems(ctx)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return MsgStoreEmpty, nil
	}
	return formatStore(prefix, "", items), nil
}

func formatStore(prefix, title string, items []domain.CatalogItem) string {
	var lines []string
	if title != "" {
		lines = append(lines, fmt.Sprintf(MsgStoreCategoryFmt, title))
	}
	for _, item := range items {
		lines = append(lines, fmt.Sprintf(MsgStoreItemFmt, item.ItemName, item.Price))
	}
	lines = append(lines, "", fmt.Sprintf(MsgStoreFooterFmt, prefix))
	return strings.Join(lines, "\n")
}

func (b *Bot) handleBuy(ctx context.Context, inv *Invocation) (string, error) {
	name, quantity, ok := splitTrailingQuantity(inv.Args)
	if !ok {
		return "", usage(MsgBuyUsageFmt, inv.Prefix)
	}

	quote, err := b.svc.Shop.Quote(ctx, inv.UserID(), name, quantity)
	if err != nil {
		return "", err
	}
	if !quote.CanAfford() {
		return fmt.Sprintf(MsgBuyTooExpensiveFmt, quote.Item.ItemName, quote.TotalCost), nil
	}

	itemName := quote.Item.ItemName
	b.sessions.open(inv.Message.ChannelID, inv.UserID(), func(ctx context.Context, reply *Invocation) (string, ReplyHandler, error) {
		if !confirmReplies[strings.ToLower(strings.TrimSpace(reply.Message.Content))] {
			return MsgBuyCancelled, nil, nil
		}
		purchase, err := b.svc.Shop.BuyItem(ctx, reply.UserID(), itemName, quantity)
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf(MsgBuyDoneFmt, purchase.Quantity, purchase.ItemName, purchase.TotalCost, purchase.Balance), nil, nil
	})

	return fmt.Sprintf(MsgBuyConfirmFmt, quantity, itemName, quote.TotalCost, quote.Balance), nil
}
