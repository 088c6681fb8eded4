package discord

import (
	"context"
	"strings"
	"time"

	"github.com/KirkDiggler/mixladder/internal/draft"
	"github.com/KirkDiggler/mixladder/internal/models"
	"github.com/KirkDiggler/mixladder/internal/services/ladder"
	"github.com/KirkDiggler/mixladder/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const (
	// SelectPickPrefix prefixes the custom ID of a lobby's pick menu
	SelectPickPrefix = "mix_pick:"

	commandTimeout = 10 * time.Second
)

var minSlot = float64(1)

// MixCommand handles the /mix command
type MixCommand struct {
	BaseCommand
	service  ladder.Service
	messages messaging.Service
	logger   *zap.Logger
}

func lobbyOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "lobby",
		Description: "Lobby ID",
		Required:    true,
	}
}

// NewMixCommand creates a new mix command handler. messages is optional and
// adds flavor lines to round, draft and result announcements.
func NewMixCommand(service ladder.Service, messages messaging.Service, logger *zap.Logger) *MixCommand {
	return &MixCommand{
		BaseCommand: BaseCommand{
			Name:        "mix",
			Description: "Dota 2 mix tournament",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "register",
					Description: "Join the tournament or update your profile",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "rating",
							Description: "Your MMR",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "nickname",
							Description: "Display name, defaults to your server nickname",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "roles",
							Description: "Preferred positions, comma separated (e.g. 1,2)",
						},
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "player",
							Description: "Register someone else",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "round",
					Description: "Generate the next round of lobbies",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "draft",
					Description: "Seed captains and flip the coin for a lobby",
					Options:     []*discordgo.ApplicationCommandOption{lobbyOption()},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "firstpick",
					Description: "Lottery winner chooses which captain picks first",
					Options: []*discordgo.ApplicationCommandOption{
						lobbyOption(),
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "captain",
							Description: "Captain making the first pick",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "pick",
					Description: "Draft a player onto your team",
					Options: []*discordgo.ApplicationCommandOption{
						lobbyOption(),
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "player",
							Description: "Player to draft",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "slot",
							Description: "Team slot, defaults to the next open one",
							MinValue:    &minSlot,
							MaxValue:    models.TeamSize - 1,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "undo",
					Description: "Take back the latest pick",
					Options:     []*discordgo.ApplicationCommandOption{lobbyOption()},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "finish",
					Description: "Record the winner of a lobby",
					Options: []*discordgo.ApplicationCommandOption{
						lobbyOption(),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "winner",
							Description: "Winning team",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Team 1", Value: "team1"},
								{Name: "Team 2", Value: "team2"},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "lobby",
					Description: "Show a lobby",
					Options:     []*discordgo.ApplicationCommandOption{lobbyOption()},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "standings",
					Description: "Show the tournament ladder",
				},
			},
		},
		service:  service,
		messages: messages,
		logger:   logger,
	}
}

// Handle processes a Discord interaction for the mix command
func (c *MixCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	// one tournament per server
	tournamentID := i.GuildID
	if tournamentID == "" {
		return RespondWithEphemeralMessage(s, i, "Mix tournaments run inside a server, not in DMs.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	sub := data.Options[0]
	opts := optionMap(sub.Options)

	var err error
	switch sub.Name {
	case "register":
		err = c.handleRegister(ctx, s, i, tournamentID, opts)
	case "round":
		err = c.handleRound(ctx, s, i, tournamentID)
	case "draft":
		err = c.handleDraft(ctx, s, i, opts)
	case "firstpick":
		err = c.handleFirstPick(ctx, s, i, opts)
	case "pick":
		err = c.handlePick(ctx, s, i, opts)
	case "undo":
		err = c.handleUndo(ctx, s, i, opts)
	case "finish":
		err = c.handleFinish(ctx, s, i, opts)
	case "lobby":
		err = c.handleLobby(ctx, s, i, opts)
	case "standings":
		err = c.handleStandings(ctx, s, i, tournamentID)
	default:
		return RespondWithError(s, i, "Unknown subcommand: "+sub.Name)
	}

	if err != nil {
		c.logger.Info("mix command rejected",
			zap.String("subcommand", sub.Name),
			zap.String("tournament_id", tournamentID),
			zap.Error(err),
		)
		return RespondWithError(s, i, userMessage(err))
	}
	return nil
}

// HandleComponent processes a selection from a lobby's pick menu
func (c *MixCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.MessageComponentData()
	lobbyID := strings.TrimPrefix(data.CustomID, SelectPickPrefix)
	if len(data.Values) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	actorID, _ := invoker(i)
	out, err := c.pick(ctx, lobbyID, actorID, data.Values[0], 0)
	if err != nil {
		c.logger.Info("pick menu rejected",
			zap.String("lobby_id", lobbyID),
			zap.String("actor_id", actorID),
			zap.Error(err),
		)
		return RespondWithError(s, i, userMessage(err))
	}

	return UpdateWithEmbeds(s, i, []*discordgo.MessageEmbed{renderLobby(out.Lobby)}, pickMenu(out.Lobby))
}

func (c *MixCommand) handleRegister(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, tournamentID string, opts options) error {
	playerID, nickname := invoker(i)
	if other := opts.userOpt("player"); other != "" && other != playerID {
		playerID = other
		nickname = ""
		if resolved := i.ApplicationCommandData().Resolved; resolved != nil {
			if u, ok := resolved.Users[other]; ok {
				nickname = u.Username
			}
		}
	}
	if n := opts.stringOpt("nickname"); n != "" {
		nickname = n
	}

	rating, _ := opts.intOpt("rating")

	var roles []string
	for _, r := range strings.Split(opts.stringOpt("roles"), ",") {
		if r = strings.TrimSpace(r); r != "" {
			roles = append(roles, r)
		}
	}

	out, err := c.service.RegisterPlayer(ctx, &ladder.RegisterPlayerInput{
		TournamentID: tournamentID,
		PlayerID:     playerID,
		Nickname:     nickname,
		Rating:       rating,
		Roles:        roles,
	})
	if err != nil {
		return err
	}

	verb := "updated"
	if out.Created {
		verb = "registered"
	}
	return RespondWithEphemeralMessage(s, i, registrationMessage(verb, out.Player))
}

func (c *MixCommand) handleRound(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, tournamentID string) error {
	out, err := c.service.GenerateRound(ctx, &ladder.GenerateRoundInput{
		TournamentID: tournamentID,
	})
	if err != nil {
		return err
	}

	embeds := renderRound(out.Round, out.Lobbies)
	embeds[0].Description = c.chillZoneLine(ctx, out.Round)

	return RespondWithEmbeds(s, i, embeds, nil)
}

func (c *MixCommand) handleDraft(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts options) error {
	out, err := c.service.StartDraft(ctx, &ladder.StartDraftInput{
		LobbyID: opts.stringOpt("lobby"),
	})
	if err != nil {
		return err
	}

	embed := renderLobby(out.Lobby)
	if line := c.lotteryLine(ctx, out.Lobby); line != "" {
		embed.Description += "\n" + line
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{embed}, nil)
}

func (c *MixCommand) handleFirstPick(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts options) error {
	actorID, _ := invoker(i)
	out, err := c.service.SetFirstPicker(ctx, &ladder.SetFirstPickerInput{
		LobbyID:   opts.stringOpt("lobby"),
		CaptainID: opts.userOpt("captain"),
		ActorID:   actorID,
	})
	if err != nil {
		return err
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{renderLobby(out.Lobby)}, pickMenu(out.Lobby))
}

func (c *MixCommand) handlePick(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts options) error {
	actorID, _ := invoker(i)
	slot, _ := opts.intOpt("slot")

	out, err := c.pick(ctx, opts.stringOpt("lobby"), actorID, opts.userOpt("player"), slot)
	if err != nil {
		return err
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{renderLobby(out.Lobby)}, pickMenu(out.Lobby))
}

// pick drafts playerID onto the actor's team. A zero slot takes the next
// open one.
func (c *MixCommand) pick(ctx context.Context, lobbyID, actorID, playerID string, slot int) (*ladder.PickOutput, error) {
	current, err := c.service.GetLobby(ctx, &ladder.GetLobbyInput{LobbyID: lobbyID})
	if err != nil {
		return nil, err
	}

	team, ok := current.Lobby.CaptainTeam(actorID)
	if !ok {
		return nil, ladder.ErrNotCaptain
	}

	if slot == 0 {
		free, ok := nextFreeSlot(current.Lobby, team)
		if !ok {
			return nil, draft.Errorf(draft.KindSlotConflict, "%s is already full", teamLabel(team))
		}
		slot = free
	}

	return c.service.Pick(ctx, &ladder.PickInput{
		LobbyID:  lobbyID,
		Team:     team,
		Slot:     slot,
		PlayerID: playerID,
		ActorID:  actorID,
	})
}

func (c *MixCommand) handleUndo(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts options) error {
	lobbyID := opts.stringOpt("lobby")
	current, err := c.service.GetLobby(ctx, &ladder.GetLobbyInput{LobbyID: lobbyID})
	if err != nil {
		return err
	}

	latest := latestPick(current.Lobby)
	if latest == nil {
		return draft.Errorf(draft.KindInvalidTransition, "there is no pick to undo")
	}

	actorID, _ := invoker(i)
	out, err := c.service.Pick(ctx, &ladder.PickInput{
		LobbyID: lobbyID,
		Team:    latest.Team,
		Slot:    latest.Slot,
		ActorID: actorID,
	})
	if err != nil {
		return err
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{renderLobby(out.Lobby)}, pickMenu(out.Lobby))
}

func (c *MixCommand) handleFinish(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts options) error {
	winner, err := models.ParseTeam(opts.stringOpt("winner"))
	if err != nil {
		return draft.Errorf(draft.KindInvalidInput, "%v", err)
	}

	out, err := c.service.FinishLobby(ctx, &ladder.FinishLobbyInput{
		LobbyID:     opts.stringOpt("lobby"),
		WinningTeam: winner,
	})
	if err != nil {
		return err
	}

	embed := renderFinish(out)
	c.decorateFinish(ctx, embed, out)

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{embed}, nil)
}

func (c *MixCommand) handleLobby(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts options) error {
	out, err := c.service.GetLobby(ctx, &ladder.GetLobbyInput{
		LobbyID: opts.stringOpt("lobby"),
	})
	if err != nil {
		return err
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{renderLobby(out.Lobby)}, pickMenu(out.Lobby))
}

func (c *MixCommand) handleStandings(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, tournamentID string) error {
	out, err := c.service.GetStandings(ctx, &ladder.GetStandingsInput{
		TournamentID: tournamentID,
	})
	if err != nil {
		return err
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{renderStandings(out.Standings)}, nil)
}

func (c *MixCommand) chillZoneLine(ctx context.Context, round *models.Round) string {
	if c.messages == nil {
		return ""
	}

	names := make([]string, 0, len(round.ChillZone))
	for _, e := range round.ChillZone {
		names = append(names, e.Nickname)
	}

	out, err := c.messages.GetChillZoneMessage(ctx, &messaging.GetChillZoneMessageInput{Nicknames: names})
	if err != nil {
		c.logger.Debug("no chill zone message", zap.Error(err))
		return ""
	}
	return out.Message
}

func (c *MixCommand) lotteryLine(ctx context.Context, l *models.Lobby) string {
	if c.messages == nil {
		return ""
	}

	winner := l.Participation(l.LotteryWinnerID)
	if winner == nil {
		return ""
	}

	out, err := c.messages.GetLotteryMessage(ctx, &messaging.GetLotteryMessageInput{WinnerName: winner.Nickname})
	if err != nil {
		c.logger.Debug("no lottery message", zap.Error(err))
		return ""
	}
	return out.Message
}

// decorateFinish titles the result embed and adds the elimination line
func (c *MixCommand) decorateFinish(ctx context.Context, embed *discordgo.MessageEmbed, out *ladder.FinishLobbyOutput) {
	if c.messages == nil {
		return
	}

	captain := ""
	if p := out.Lobby.Participation(captainOf(out.Lobby, out.Lobby.WinningTeam)); p != nil {
		captain = p.Nickname
	}

	victory, err := c.messages.GetVictoryMessage(ctx, &messaging.GetVictoryMessageInput{CaptainName: captain})
	if err != nil {
		c.logger.Debug("no victory message", zap.Error(err))
		return
	}
	embed.Title = victory.Title + " " + embed.Title
	embed.Description += "\n" + victory.Message

	if len(out.Eliminated) == 0 {
		return
	}

	names := make([]string, 0, len(out.Eliminated))
	for _, p := range out.Eliminated {
		names = append(names, p.Nickname)
	}
	elim, err := c.messages.GetEliminationMessage(ctx, &messaging.GetEliminationMessageInput{Nicknames: names})
	if err != nil {
		c.logger.Debug("no elimination message", zap.Error(err))
		return
	}
	embed.Description += "\n" + elim.Message
}
