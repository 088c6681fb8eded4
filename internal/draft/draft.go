// Package draft implements the lobby state machine: captain seeding, the
// pick-order lottery, the alternating captain draft and result recording.
//
// Every operation validates the whole request before touching the lobby, so
// a rejected call leaves the lobby exactly as it was.
package draft

import (
	"time"

	"github.com/KirkDiggler/mixladder/internal/models"
	"github.com/KirkDiggler/mixladder/internal/random"
)

// Start seeds captains, places them at slot 0 of their teams, flips the
// lottery coin and moves the lobby from pending to drafting.
func Start(l *models.Lobby, rng random.Source, now time.Time) error {
	if err := requireStatus(l, models.LobbyStatusPending); err != nil {
		return err
	}
	if len(l.Participations) != models.LobbySize {
		return Errorf(KindDegenerateInput, "lobby %s has %d members, a draft needs %d", l.ID, len(l.Participations), models.LobbySize)
	}
	for _, p := range l.Participations {
		if p.Assigned() {
			return Errorf(KindInvalidTransition, "lobby %s already has team assignments", l.ID)
		}
	}

	captains, err := SeedCaptains(l, rng)
	if err != nil {
		return err
	}
	winner := ResolveLottery(captains, rng)

	placeCaptain(l.Participation(captains.Captain1ID), models.Team1, now)
	placeCaptain(l.Participation(captains.Captain2ID), models.Team2, now)
	l.Captain1ID = captains.Captain1ID
	l.Captain2ID = captains.Captain2ID
	l.LotteryWinnerID = winner
	l.FirstPickerID = ""
	l.Status = models.LobbyStatusDrafting
	return nil
}

// SetFirstPicker records the lottery winner's decision of which captain picks
// first. The choice can be revised until the first pick is made.
func SetFirstPicker(l *models.Lobby, captainID string) error {
	if err := requireStatus(l, models.LobbyStatusDrafting); err != nil {
		return err
	}
	if l.LotteryWinnerID == "" {
		return Errorf(KindInvalidTransition, "lobby %s has no lottery winner yet", l.ID)
	}
	if _, ok := l.CaptainTeam(captainID); !ok {
		return Errorf(KindInvalidInput, "player %s is not a captain of lobby %s", captainID, l.ID)
	}
	if l.PicksMade() > 0 {
		return Errorf(KindInvalidTransition, "lobby %s first picker is locked once picks have started", l.ID)
	}

	l.FirstPickerID = captainID
	return nil
}

// Pick places playerID at the given team slot. An empty playerID undoes the
// pick at that slot, which is only allowed for the most recent pick.
func Pick(l *models.Lobby, team models.Team, slot int, playerID string, now time.Time) error {
	if err := requireStatus(l, models.LobbyStatusDrafting); err != nil {
		return err
	}
	if l.FirstPickerID == "" {
		return Errorf(KindInvalidTransition, "lobby %s: first picker has not been chosen", l.ID)
	}
	if !team.Valid() {
		return Errorf(KindInvalidInput, "unknown team %d", int(team))
	}
	if slot < 1 || slot >= models.TeamSize {
		return Errorf(KindInvalidInput, "slot %d is outside 1-%d", slot, models.TeamSize-1)
	}

	if playerID == "" {
		return undo(l, team, slot)
	}

	member := l.Participation(playerID)
	if member == nil {
		return Errorf(KindInvalidInput, "player %s is not in lobby %s", playerID, l.ID)
	}
	if member.Assigned() {
		return Errorf(KindSlotConflict, "player %s is already on %s", playerID, member.Team)
	}
	expected, ok := CurrentPicker(l)
	if !ok {
		return Errorf(KindInvalidTransition, "lobby %s has no outstanding pick", l.ID)
	}
	if team != expected {
		return Errorf(KindSlotConflict, "it is %s's turn to pick, not %s", expected, team)
	}
	if taken := l.AtSlot(team, slot); taken != nil {
		return Errorf(KindSlotConflict, "%s slot %d is already taken by %s", team, slot, taken.PlayerID)
	}

	pickedAt := now
	member.Team = team
	member.Slot = slot
	member.PickNumber = l.PicksMade() + 1
	member.PickedAt = &pickedAt

	if l.IsTeamFull(models.Team1) && l.IsTeamFull(models.Team2) {
		l.Status = models.LobbyStatusPlaying
	}
	return nil
}

// Finish records the winning team, marks every participation with its result
// and returns the losing players whose lives must be reduced.
func Finish(l *models.Lobby, winner models.Team) ([]string, error) {
	if err := requireStatus(l, models.LobbyStatusPlaying); err != nil {
		return nil, err
	}
	if !winner.Valid() {
		return nil, Errorf(KindInvalidInput, "unknown winning team %d", int(winner))
	}

	var losers []string
	for _, p := range l.Participations {
		switch p.Team {
		case winner:
			p.Result = models.MatchResultWin
		case winner.Opponent():
			p.Result = models.MatchResultLoss
			losers = append(losers, p.PlayerID)
		}
	}
	l.WinningTeam = winner
	l.Status = models.LobbyStatusFinished
	return losers, nil
}

// ApplyLifeLoss removes one life from each loser present in players
func ApplyLifeLoss(players map[string]*models.Player, losers []string) []*models.Player {
	var eliminated []*models.Player
	for _, id := range losers {
		p, ok := players[id]
		if !ok {
			continue
		}
		wasAlive := !p.IsEliminated()
		p.LoseLife()
		if wasAlive && p.IsEliminated() {
			eliminated = append(eliminated, p)
		}
	}
	return eliminated
}

func undo(l *models.Lobby, team models.Team, slot int) error {
	member := l.AtSlot(team, slot)
	if member == nil {
		return Errorf(KindInvalidInput, "%s slot %d is empty", team, slot)
	}
	if member.PickNumber != l.PicksMade() {
		return Errorf(KindSlotConflict, "only the latest pick can be undone, %s slot %d was pick %d of %d", team, slot, member.PickNumber, l.PicksMade())
	}
	member.Unassign()
	return nil
}

func placeCaptain(p *models.Participation, team models.Team, now time.Time) {
	pickedAt := now
	p.Team = team
	p.Slot = 0
	p.IsCaptain = true
	p.PickNumber = 0
	p.PickedAt = &pickedAt
}

func requireStatus(l *models.Lobby, want models.LobbyStatus) error {
	if l.Status == want {
		return nil
	}
	if l.Status.IsTerminal() {
		return Errorf(KindAlreadyFinished, "lobby %s is finished", l.ID)
	}
	return Errorf(KindInvalidTransition, "lobby %s is %s, expected %s", l.ID, l.Status, want)
}
