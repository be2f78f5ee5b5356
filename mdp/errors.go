package mdp

import "errors"

var (
	ErrInvalidEpisodes  = errors.New("number of episodes must be positive")
	ErrInvalidGamma     = errors.New("discount factor must lie in [0, 1]")
	ErrUnknownPolicy    = errors.New("unknown policy")
	ErrUnknownMethod    = errors.New("unknown method")
	ErrInvalidSchedule  = errors.New("invalid snapshot schedule")
	ErrUnknownBehaviour = errors.New("unknown behaviour policy")
	ErrInvalidBehaviour = errors.New("invalid behaviour policy")
)
