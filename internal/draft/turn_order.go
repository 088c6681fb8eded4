package draft

import "github.com/KirkDiggler/mixladder/internal/models"

// Turn names which captain picks, relative to the chosen first picker
type Turn int

const (
	TurnFirst Turn = iota
	TurnSecond
)

// PickOrder is the 1-2-2-1-1-2-2-1 pattern for the eight non-captain picks
var PickOrder = []Turn{
	TurnFirst,
	TurnSecond,
	TurnSecond,
	TurnFirst,
	TurnFirst,
	TurnSecond,
	TurnSecond,
	TurnFirst,
}

// CurrentPicker returns the team expected to pick next. ok is false before the
// first picker is chosen or once every pick has been made.
func CurrentPicker(l *models.Lobby) (team models.Team, ok bool) {
	if l.Status != models.LobbyStatusDrafting {
		return models.TeamNone, false
	}
	first, ok := l.CaptainTeam(l.FirstPickerID)
	if !ok {
		return models.TeamNone, false
	}
	made := l.PicksMade()
	if made >= len(PickOrder) {
		return models.TeamNone, false
	}
	if PickOrder[made] == TurnFirst {
		return first, true
	}
	return first.Opponent(), true
}
