package discord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/mixladder/internal/draft"
	"github.com/KirkDiggler/mixladder/internal/models"
	"github.com/KirkDiggler/mixladder/internal/services/ladder"
	"github.com/bwmarrin/discordgo"
)

const (
	colorPending  = 0x95a5a6
	colorDrafting = 0xf1c40f
	colorPlaying  = 0x3498db
	colorFinished = 0x2ecc71
	colorError    = 0xff0000

	// Discord caps select menus at 25 options
	maxSelectOptions = 25
)

func lobbyColor(status models.LobbyStatus) int {
	switch status {
	case models.LobbyStatusDrafting:
		return colorDrafting
	case models.LobbyStatusPlaying:
		return colorPlaying
	case models.LobbyStatusFinished:
		return colorFinished
	}
	return colorPending
}

// renderLobby builds the embed showing a lobby's teams and draft progress
func renderLobby(l *models.Lobby) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Status",
			Value:  string(l.Status),
			Inline: true,
		},
		{
			Name:   "Picks",
			Value:  fmt.Sprintf("%d/%d", l.PicksMade(), len(draft.PickOrder)),
			Inline: true,
		},
	}

	if l.LotteryWinnerID != "" && l.FirstPickerID == "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Lottery",
			Value: fmt.Sprintf("<@%s> won the coin flip and chooses who picks first", l.LotteryWinnerID),
		})
	}

	if team, ok := draft.CurrentPicker(l); ok {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "On the clock",
			Value:  fmt.Sprintf("%s (<@%s>)", teamLabel(team), captainOf(l, team)),
			Inline: true,
		})
	}

	for _, team := range []models.Team{models.Team1, models.Team2} {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   teamHeading(l, team),
			Value:  renderTeam(l, team),
			Inline: true,
		})
	}

	if unassigned := l.Unassigned(); len(unassigned) > 0 && l.Status != models.LobbyStatusFinished {
		names := make([]string, 0, len(unassigned))
		for _, p := range unassigned {
			names = append(names, fmt.Sprintf("%s (%d)", p.Nickname, p.Rating))
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Available",
			Value: strings.Join(names, "\n"),
		})
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Round %d, lobby %d", l.Round, l.Number),
		Description: fmt.Sprintf("Lobby ID: `%s`", l.ID),
		Color:       lobbyColor(l.Status),
		Fields:      fields,
	}
}

func teamHeading(l *models.Lobby, team models.Team) string {
	heading := teamLabel(team)
	if l.Status == models.LobbyStatusFinished && l.WinningTeam == team {
		heading += " 🏆"
	}
	return heading
}

func renderTeam(l *models.Lobby, team models.Team) string {
	members := l.TeamMembers(team)
	if len(members) == 0 {
		return "-"
	}

	lines := make([]string, 0, len(members))
	for _, p := range members {
		line := fmt.Sprintf("%d. %s", p.Slot+1, p.Nickname)
		if p.IsCaptain {
			line += " (C)"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func teamLabel(team models.Team) string {
	switch team {
	case models.Team1:
		return "Team 1"
	case models.Team2:
		return "Team 2"
	}
	return "No team"
}

func captainOf(l *models.Lobby, team models.Team) string {
	if team == models.Team1 {
		return l.Captain1ID
	}
	return l.Captain2ID
}

// pickMenu offers the available players to the captain on the clock. It
// returns nil when nobody can pick.
func pickMenu(l *models.Lobby) []discordgo.MessageComponent {
	if _, ok := draft.CurrentPicker(l); !ok {
		return nil
	}

	var options []discordgo.SelectMenuOption
	for _, p := range l.Unassigned() {
		if len(options) == maxSelectOptions {
			break
		}
		options = append(options, discordgo.SelectMenuOption{
			Label:       p.Nickname,
			Value:       p.PlayerID,
			Description: fmt.Sprintf("Rating %d", p.Rating),
		})
	}
	if len(options) == 0 {
		return nil
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    pickMenuID(l.ID),
					Placeholder: "Pick a player",
					Options:     options,
				},
			},
		},
	}
}

func pickMenuID(lobbyID string) string {
	return SelectPickPrefix + lobbyID
}

// nextFreeSlot returns the lowest open non-captain slot on a team
func nextFreeSlot(l *models.Lobby, team models.Team) (int, bool) {
	for slot := 1; slot < models.TeamSize; slot++ {
		if l.AtSlot(team, slot) == nil {
			return slot, true
		}
	}
	return 0, false
}

// latestPick returns the most recent non-captain pick, if any
func latestPick(l *models.Lobby) *models.Participation {
	var latest *models.Participation
	for _, p := range l.Participations {
		if p.PickNumber > 0 && (latest == nil || p.PickNumber > latest.PickNumber) {
			latest = p
		}
	}
	return latest
}

// renderRound builds one embed for the round summary and one per lobby
func renderRound(round *models.Round, lobbies []*models.Lobby) []*discordgo.MessageEmbed {
	chill := "Nobody"
	if len(round.ChillZone) > 0 {
		names := make([]string, 0, len(round.ChillZone))
		for _, e := range round.ChillZone {
			names = append(names, e.Nickname)
		}
		chill = strings.Join(names, ", ")
	}

	embeds := []*discordgo.MessageEmbed{
		{
			Title: fmt.Sprintf("Round %d", round.Number),
			Color: colorPending,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Lobbies", Value: fmt.Sprintf("%d", len(lobbies)), Inline: true},
				{Name: "Chill zone", Value: chill},
			},
		},
	}

	// Discord allows at most 10 embeds per message
	for _, l := range lobbies {
		if len(embeds) == 10 {
			break
		}
		embeds = append(embeds, renderLobby(l))
	}
	return embeds
}

// renderStandings builds the ladder embed
func renderStandings(st *models.Standings) *discordgo.MessageEmbed {
	if len(st.Entries) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "Standings",
			Description: "No players registered yet. Use `/mix register` to join.",
			Color:       colorPending,
		}
	}

	var sb strings.Builder
	for _, e := range st.Entries {
		status := fmt.Sprintf("%d ❤️", e.Player.Lives)
		if e.Eliminated {
			status = "eliminated"
		}
		fmt.Fprintf(&sb, "**%d.** %s (%d) %s\n", e.Rank, e.Player.Nickname, e.Player.Rating, status)
	}

	return &discordgo.MessageEmbed{
		Title:       "Standings",
		Description: sb.String(),
		Color:       colorFinished,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d of %d players still alive", st.Remaining, len(st.Entries)),
		},
	}
}

// renderFinish summarizes a recorded result
func renderFinish(out *ladder.FinishLobbyOutput) *discordgo.MessageEmbed {
	embed := renderLobby(out.Lobby)

	if len(out.Eliminated) > 0 {
		names := make([]string, 0, len(out.Eliminated))
		for _, p := range out.Eliminated {
			names = append(names, p.Nickname)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Eliminated",
			Value: strings.Join(names, ", "),
		})
	}
	return embed
}

// userMessage turns a service error into something safe to show in Discord
func userMessage(err error) string {
	var ladderErr ladder.LadderError
	if errors.As(err, &ladderErr) {
		return string(ladderErr)
	}

	var draftErr *draft.Error
	if errors.As(err, &draftErr) {
		if draftErr.Message != "" {
			return draftErr.Message
		}
		return strings.ReplaceAll(string(draftErr.Kind), "_", " ")
	}

	return "Something went wrong, try again in a moment."
}

func registrationMessage(verb string, p *models.Player) string {
	msg := fmt.Sprintf("%s %s with rating %d and %d lives.", strings.ToUpper(verb[:1])+verb[1:], p.Nickname, p.Rating, p.Lives)
	if len(p.Roles) > 0 {
		msg += " Roles: " + strings.Join(p.Roles, ", ") + "."
	}
	return msg
}
