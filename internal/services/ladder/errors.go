package ladder

// LadderError is a custom error type for tournament errors
type LadderError string

// Error implements the error interface
func (e LadderError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrLobbyNotFound      LadderError = "lobby not found"
	ErrPlayerNotFound     LadderError = "player not found"
	ErrRoundNotFound      LadderError = "round not found"
	ErrRoundConflict      LadderError = "the tournament changed while the round was generated"
	ErrPlayerConflict     LadderError = "player was updated concurrently, try again"
	ErrRegistrationClosed LadderError = "registration closes once the first round is generated"
	ErrNotCaptain         LadderError = "only the captain on the clock can do that"
	ErrNilConfig          LadderError = "config cannot be nil"
	ErrNilPlayerRepo      LadderError = "player repository cannot be nil"
	ErrNilLobbyRepo       LadderError = "lobby repository cannot be nil"
	ErrNilRoundRepo       LadderError = "round repository cannot be nil"
	ErrNilRandom          LadderError = "random source cannot be nil"
	ErrNilClock           LadderError = "clock cannot be nil"
	ErrNilIDGenerator     LadderError = "ID generator cannot be nil"
	ErrInvalidLives       LadderError = "starting lives must be positive"
)
