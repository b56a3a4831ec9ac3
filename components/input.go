package components

import (
	cfg "github.com/automoto/summit/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod
}

// Held reports whether the action is down this frame.
func (in *InputData) Held(action cfg.ActionID) bool {
	return in.Current[action]
}

// JustPressed reports whether the action went down this frame.
func (in *InputData) JustPressed(action cfg.ActionID) bool {
	return in.Current[action] && !in.Previous[action]
}

var Input = donburi.NewComponentType[InputData]()
