package model

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
)

// Action selects which synchronization runs
type Action int

const (
	ActionDownload Action = iota + 1
	ActionUpload
)

// ErrInvalidAction is returned when an action selector is neither download nor upload
var ErrInvalidAction = errors.New("invalid action")

// ParseAction converts a selector string into an Action
func ParseAction(s string) (Action, error) {
	switch s {
	case "download":
		return ActionDownload, nil
	case "upload":
		return ActionUpload, nil
	default:
		return 0, goerr.Wrap(ErrInvalidAction, "unknown action", goerr.V("action", s))
	}
}

func (a Action) String() string {
	switch a {
	case ActionDownload:
		return "download"
	case ActionUpload:
		return "upload"
	default:
		return "unknown"
	}
}
