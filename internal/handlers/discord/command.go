package discord

import (
	"github.com/bwmarrin/discordgo"
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// RespondWithEmbeds sends a public embed response with optional components
func RespondWithEmbeds(s *discordgo.Session, i *discordgo.InteractionCreate, embeds []*discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     embeds,
			Components: components,
		},
	})
}

// UpdateWithEmbeds replaces the message a component belongs to
func UpdateWithEmbeds(s *discordgo.Session, i *discordgo.InteractionCreate, embeds []*discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	if components == nil {
		// an empty slice removes the old menu, nil would keep it
		components = []discordgo.MessageComponent{}
	}
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     embeds,
			Components: components,
		},
	})
}

// RespondWithError sends an ephemeral error embed
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, errorMessage string) error {
	embed := &discordgo.MessageEmbed{
		Title:       "Error",
		Description: errorMessage,
		Color:       colorError,
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

// RespondWithEphemeralMessage sends an ephemeral message response to an interaction
func RespondWithEphemeralMessage(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

type options map[string]*discordgo.ApplicationCommandInteractionDataOption

func optionMap(opts []*discordgo.ApplicationCommandInteractionDataOption) options {
	m := make(options, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

func (o options) stringOpt(name string) string {
	if opt, ok := o[name]; ok {
		return opt.StringValue()
	}
	return ""
}

func (o options) intOpt(name string) (int, bool) {
	if opt, ok := o[name]; ok {
		return int(opt.IntValue()), true
	}
	return 0, false
}

// userOpt returns the ID of a user option
func (o options) userOpt(name string) string {
	if opt, ok := o[name]; ok {
		if id, ok := opt.Value.(string); ok {
			return id
		}
	}
	return ""
}

// invoker returns the ID and display name of whoever triggered the interaction
func invoker(i *discordgo.InteractionCreate) (id, name string) {
	switch {
	case i.Member != nil && i.Member.User != nil:
		name = i.Member.User.Username
		if i.Member.Nick != "" {
			name = i.Member.Nick
		}
		return i.Member.User.ID, name
	case i.User != nil:
		return i.User.ID, i.User.Username
	}
	return "", ""
}
