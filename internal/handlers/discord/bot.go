package discord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/mixladder/internal/services/ladder"
	"github.com/KirkDiggler/mixladder/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	mix        *MixCommand
	config     *Config
	logger     *zap.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Tournament service
	Service ladder.Service

	// Optional flavor text for announcements
	Messages messaging.Service

	// Optional logger, defaults to a no-op logger
	Logger *zap.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.Service == nil {
		return nil, errors.New("ladder service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		mix:        NewMixCommand(cfg.Service, cfg.Messages, logger),
		config:     cfg,
		logger:     logger,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(b.mix); err != nil {
		return fmt.Errorf("failed to register mix command: %w", err)
	}

	b.logger.Info("discord bot running")
	return nil
}

// Stop removes the registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command",
				zap.String("command", cmdName),
				zap.String("command_id", cmdID),
				zap.Error(err),
			)
			continue
		}
		b.logger.Debug("deleted command", zap.String("command", cmdName))
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord. Commands are created for
// GuildID when set, otherwise globally.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("registered command",
		zap.String("command", cmd.GetName()),
		zap.String("command_id", createdCmd.ID),
		zap.String("guild_id", b.config.GuildID),
	)

	return nil
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error("failed to handle command", zap.String("command", name), zap.Error(err))
			}
		}
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		if !strings.HasPrefix(customID, SelectPickPrefix) {
			if err := RespondWithError(s, i, "Unknown component: "+customID); err != nil {
				b.logger.Error("failed to respond", zap.Error(err))
			}
			return
		}
		if err := b.mix.HandleComponent(s, i); err != nil {
			b.logger.Error("failed to handle component", zap.String("custom_id", customID), zap.Error(err))
		}
	}
}
