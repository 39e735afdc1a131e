package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/GrimArmory_Go/internal/domain"
	"github.com/osse101/GrimArmory_Go/internal/logger"
	"github.com/osse101/GrimArmory_Go/internal/metrics"
)

// CommandHandler runs a command and returns the text to send back
type CommandHandler func(ctx context.Context, inv *Invocation) (string, error)

// Command is a prefix text command
type Command struct {
	Name    string
	Aliases []string
	Help    string
	// Admin commands require administrator clearance and are left out of help.
	Admin   bool
	Handler CommandHandler
}

// Invocation is one use of a command, or one reply to an open prompt
type Invocation struct {
	Message *discordgo.Message
	Actor   domain.Actor
	Args    []string
	Prefix  string
}

// UserID is the invoking user
func (inv *Invocation) UserID() string {
	return inv.Actor.UserID
}

// DisplayName is the invoking user's name in the community
func (inv *Invocation) DisplayName() string {
	return displayName(inv.Message.Member, inv.Message.Author)
}

// Text is the raw argument text after the command name
func (inv *Invocation) Text() string {
	return strings.Join(inv.Args, " ")
}

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	commands []*Command
	byName   map[string]*Command
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{byName: make(map[string]*Command)}
}

// Register adds a command under its name and aliases
func (r *CommandRegistry) Register(cmd *Command) {
	r.commands = append(r.commands, cmd)
	r.byName[cmd.Name] = cmd
	for _, alias := range cmd.Aliases {
		r.byName[alias] = cmd
	}
}

// Lookup finds a command by name or alias
func (r *CommandRegistry) Lookup(name string) (*Command, bool) {
	cmd, ok := r.byName[strings.ToLower(name)]
	return cmd, ok
}

// Commands returns the commands in registration order
func (r *CommandRegistry) Commands() []*Command {
	return r.commands
}

func (b *Bot) registerCommands() {
	for _, cmd := range []*Command{
		{Name: CmdBalance, Help: "Shows your current Crowns balance.", Handler: b.handleBalance},
		{Name: CmdGive, Help: "Gift Crowns to another user.\nSyntax: %sgive <amount> @user", Handler: b.handleGive},
		{Name: CmdInventory, Aliases: []string{"i"}, Help: "Shows what you've collected in your inventory so far.", Handler: b.handleInventory},
		{Name: CmdProfile, Aliases: []string{"p"}, Help: "Displays your profile.", Handler: b.handleProfile},
		{Name: CmdCharacter, Aliases: []string{"c"}, Help: "Add or remove characters from your profile.\nSyntax: %scharacter add <name> <title> <URL> || %scharacter remove <name>", Handler: b.handleCharacter},
		{Name: CmdLeaderboard, Aliases: []string{"l"}, Help: "Displays the top 10 leaderboard.", Handler: b.handleLeaderboard},
		{Name: CmdStore, Help: "Browse the Grim Armory by category.", Handler: b.handleStore},
		{Name: CmdBuy, Help: "Buy an item from the store.\nSyntax: %sbuy <item> [quantity]", Handler: b.handleBuy},
		{Name: CmdHelp, Aliases: []string{"h"}, Help: "Shows this list.", Handler: b.handleHelp},

		{Name: CmdMoney, Admin: true, Handler: b.handleMoney},
		{Name: CmdItem, Admin: true, Handler: b.handleItem},
		{Name: CmdPerk, Admin: true, Handler: b.handlePerk},
		{Name: CmdAssignCrowns, Admin: true, Handler: b.handleAssignCrowns},
		{Name: CmdExport, Admin: true, Handler: b.handleExport},
	} {
		b.Registry.Register(cmd)
	}
}

// dispatch checks clearance, runs the command and answers in the same channel
func (b *Bot) dispatch(ctx context.Context, cmd *Command, inv *Invocation) {
	ctx = logger.WithAttrs(ctx, "command", cmd.Name)
	log := logger.FromContext(ctx)

	if cmd.Admin {
		b.resolveAdministrator(ctx, inv)
		if err := b.svc.Authorizer.Require(inv.Actor); err != nil {
			metrics.CommandsTotal.WithLabelValues(cmd.Name, metrics.ResultDenied).Inc()
			b.reply(ctx, inv.Message.ChannelID, domain.UserMessage(err))
			return
		}
	}

	reply, err := cmd.Handler(ctx, inv)
	if err != nil {
		metrics.CommandsTotal.WithLabelValues(cmd.Name, metrics.ResultFailed).Inc()
		b.replyError(ctx, inv.Message.ChannelID, err)
		return
	}

	metrics.CommandsTotal.WithLabelValues(cmd.Name, metrics.ResultSuccess).Inc()
	log.Debug(LogMsgCommandHandled)
	b.reply(ctx, inv.Message.ChannelID, reply)
}

// replyError logs unexpected failures and answers with a safe sentence
func (b *Bot) replyError(ctx context.Context, channelID string, err error) {
	var ue *usageError
	if errors.As(err, &ue) {
		b.reply(ctx, channelID, ue.msg)
		return
	}
	if !isUserError(err) {
		logger.FromContext(ctx).Error(LogMsgCommandFailed, "error", err)
	}
	b.reply(ctx, channelID, domain.UserMessage(err))
}

// isUserError reports errors caused by the user's input rather than the system
func isUserError(err error) bool {
	for _, target := range []error{
		domain.ErrAccountNotFound,
		domain.ErrItemNotFound,
		domain.ErrPerkNotFound,
		domain.ErrInsufficientFunds,
		domain.ErrInvalidAmount,
		domain.ErrSelfTransfer,
		domain.ErrDuplicateCharacter,
		domain.ErrValidation,
		domain.ErrNotAdministrator,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (b *Bot) handleHelp(_ context.Context, inv *Invocation) (string, error) {
	var sb strings.Builder
	sb.WriteString(MsgHelpHeader)
	for _, cmd := range b.Registry.Commands() {
		if cmd.Admin || cmd.Name == CmdHelp {
			continue
		}
		sb.WriteString("\n\n**")
		sb.WriteString(inv.Prefix + cmd.Name)
		for _, alias := range cmd.Aliases {
			sb.WriteString(" or " + inv.Prefix + alias)
		}
		sb.WriteString("**\n")
		sb.WriteString(strings.ReplaceAll(cmd.Help, "%s", inv.Prefix))
	}
	return sb.String(), nil
}

// usage renders a syntax hint as a validation error
func usage(format string, prefix string) error {
	n := strings.Count(format, "%s")
	args := make([]any, n)
	for i := range args {
		args[i] = prefix
	}
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// usageError carries a syntax hint that is shown to the user verbatim
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func (e *usageError) Unwrap() error { return domain.ErrValidation }
