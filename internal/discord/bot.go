// Package discord binds the crown economy to chat: member and message events
// plus the prefix text commands.
package discord

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/GrimArmory_Go/internal/admin"
	"github.com/osse101/GrimArmory_Go/internal/backup"
	"github.com/osse101/GrimArmory_Go/internal/catalog"
	"github.com/osse101/GrimArmory_Go/internal/domain"
	"github.com/osse101/GrimArmory_Go/internal/economy"
	"github.com/osse101/GrimArmory_Go/internal/inventory"
	"github.com/osse101/GrimArmory_Go/internal/ledger"
	"github.com/osse101/GrimArmory_Go/internal/logger"
	"github.com/osse101/GrimArmory_Go/internal/perk"
	"github.com/osse101/GrimArmory_Go/internal/profile"
	"github.com/osse101/GrimArmory_Go/internal/worker"
)

// Config holds the bot configuration
type Config struct {
	Token              string
	GuildID            string
	Prefix             string
	ExportPath         string
	InteractionTimeout time.Duration
}

// PayoutTrigger runs the perk payout outside its schedule
type PayoutTrigger interface {
	RunNow(ctx context.Context) (*domain.PayoutReport, error)
}

// Enqueuer accepts background jobs
type Enqueuer interface {
	Enqueue(job worker.Job) error
}

// Services are the domain services the commands drive
type Services struct {
	Ledger     ledger.Service
	Inventory  inventory.Service
	Profile    profile.Service
	Catalog    catalog.Service
	Shop       economy.Service
	Perks      perk.Service
	Backup     backup.Service
	Payout     PayoutTrigger
	Jobs       Enqueuer
	Authorizer *admin.Authorizer
}

// platform is the subset of the chat API the bot calls
type platform struct {
	send        func(channelID, content string) error
	member      func(guildID, userID string) (*discordgo.Member, error)
	members     func(guildID, after string, limit int) ([]*discordgo.Member, error)
	permissions func(userID, channelID string) (int64, error)
}

func newPlatform(s *discordgo.Session) platform {
	return platform{
		send: func(channelID, content string) error {
			_, err := s.ChannelMessageSend(channelID, content)
			return err
		},
		member: func(guildID, userID string) (*discordgo.Member, error) {
			if m, err := s.State.Member(guildID, userID); err == nil {
				return m, nil
			}
			return s.GuildMember(guildID, userID)
		},
		members: func(guildID, after string, limit int) ([]*discordgo.Member, error) {
			return s.GuildMembers(guildID, after, limit)
		},
		permissions: func(userID, channelID string) (int64, error) {
			return s.UserChannelPermissions(userID, channelID)
		},
	}
}

// Bot represents the chat bot
type Bot struct {
	Session  *discordgo.Session
	Registry *CommandRegistry

	cfg      Config
	svc      Services
	platform platform
	sessions *sessionStore
}

// New creates a new chat bot
func New(cfg Config, svc Services) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateSession, err)
	}
	s.Identify.Intents = discordgo.IntentGuilds |
		discordgo.IntentGuildMembers |
		discordgo.IntentGuildMessages |
		discordgo.IntentMessageContent

	return newBot(s, cfg, svc, newPlatform(s)), nil
}

func newBot(s *discordgo.Session, cfg Config, svc Services, p platform) *Bot {
	if cfg.Prefix == "" {
		cfg.Prefix = "!"
	}
	b := &Bot{
		Session:  s,
		Registry: NewCommandRegistry(),
		cfg:      cfg,
		svc:      svc,
		platform: p,
	}
	b.sessions = newSessionStore(cfg.InteractionTimeout, func(key sessionKey) {
		slog.Default().Debug(LogMsgSessionExpired, "user_id", key.userID, "channel_id", key.channelID)
		b.reply(context.Background(), key.channelID, MsgTimedOut)
	})
	b.registerCommands()
	return b
}

// Start opens the gateway connection
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.guildMemberAdd)
	b.Session.AddHandler(b.messageCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf(ErrMsgOpenSession, err)
	}

	slog.Default().Info(LogMsgBotStarted, "guild_id", b.cfg.GuildID, "prefix", b.cfg.Prefix)
	return nil
}

// Stop closes the gateway connection and drops pending prompts
func (b *Bot) Stop() error {
	b.sessions.closeAll()
	return b.Session.Close()
}

// Roster enumerates the managed community for the perk payout
func (b *Bot) Roster() perk.MemberSource {
	return perk.MemberSourceFunc(b.fetchMembers)
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Default().Info(LogMsgBotReady, "user", r.User.Username)
}

func (b *Bot) guildMemberAdd(_ *discordgo.Session, m *discordgo.GuildMemberAdd) {
	if m.Member == nil || m.User == nil || m.User.Bot {
		return
	}
	ctx := logger.WithNewRequestID(context.Background())
	b.handleMemberJoin(ctx, m.GuildID, m.User.ID)
}

func (b *Bot) handleMemberJoin(ctx context.Context, guildID, userID string) {
	if !b.managedGuild(guildID) {
		return
	}
	log := logger.FromContext(ctx)
	if err := b.svc.Ledger.EnsureAccount(ctx, userID); err != nil {
		log.Error(LogMsgEnsureFailed, "user_id", userID, "error", err)
		return
	}
	log.Info(LogMsgMemberJoined, "user_id", userID)
}

func (b *Bot) messageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	ctx := logger.WithNewRequestID(context.Background())
	b.handleMessage(ctx, m.Message)
}

// handleMessage rewards the message, then routes it to an open prompt or a command
func (b *Bot) handleMessage(ctx context.Context, msg *discordgo.Message) {
	if msg == nil || msg.Author == nil || msg.Author.Bot || !b.managedGuild(msg.GuildID) {
		return
	}
	ctx = logger.WithAttrs(ctx, "user_id", msg.Author.ID, "channel_id", msg.ChannelID)

	if err := b.svc.Jobs.Enqueue(&worker.MessageGrantJob{
		Granter:       b.svc.Ledger,
		UserID:        msg.Author.ID,
		MessageLength: utf8.RuneCountInString(msg.Content),
	}); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEnqueueFailed, "error", err)
	}

	name, args, isCommand := parseCommand(b.cfg.Prefix, msg.Content)

	if handler, ok := b.sessions.take(msg.ChannelID, msg.Author.ID); ok && !isCommand {
		b.continueSession(ctx, msg, handler)
		return
	}
	if !isCommand {
		return
	}

	cmd, ok := b.Registry.Lookup(name)
	if !ok {
		return
	}
	b.dispatch(ctx, cmd, b.newInvocation(msg, args))
}

func (b *Bot) managedGuild(guildID string) bool {
	return b.cfg.GuildID == "" || guildID == b.cfg.GuildID
}

func (b *Bot) newInvocation(msg *discordgo.Message, args []string) *Invocation {
	actor := domain.Actor{UserID: msg.Author.ID}
	if msg.Member != nil {
		actor.RoleIDs = msg.Member.Roles
	}
	return &Invocation{
		Message: msg,
		Actor:   actor,
		Args:    args,
		Prefix:  b.cfg.Prefix,
	}
}

// resolveAdministrator fills in the platform administrator flag, which costs an API lookup
func (b *Bot) resolveAdministrator(ctx context.Context, inv *Invocation) {
	perms, err := b.platform.permissions(inv.Actor.UserID, inv.Message.ChannelID)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgPermissionsFailed, "error", err)
		return
	}
	inv.Actor.GuildAdministrator = perms&discordgo.PermissionAdministrator != 0
}

func (b *Bot) continueSession(ctx context.Context, msg *discordgo.Message, handler ReplyHandler) {
	ctx = logger.WithAttrs(ctx, "command", LogValueSession)
	inv := b.newInvocation(msg, splitArgs(msg.Content))
	reply, next, err := handler(ctx, inv)
	if err != nil {
		b.replyError(ctx, msg.ChannelID, err)
		return
	}
	if next != nil {
		b.sessions.open(msg.ChannelID, msg.Author.ID, next)
	}
	b.reply(ctx, msg.ChannelID, reply)
}

// reply sends text, split at line boundaries to fit the platform limit
func (b *Bot) reply(ctx context.Context, channelID, text string) {
	for _, chunk := range splitMessage(text, MaxMessageLength) {
		if err := b.platform.send(channelID, chunk); err != nil {
			logger.FromContext(ctx).Error(LogMsgSendFailed, "channel_id", channelID, "error", err)
			return
		}
	}
}
