package systems

import (
	"log"

	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/movement"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input, updates the Input component and hands the
// player its controller snapshot. Must run BEFORE UpdatePlayer.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	pollActions(input)

	if input.JustPressed(cfg.ActionToggleDebug) {
		cfg.Debug.Enabled = !cfg.Debug.Enabled
		log.Printf("[debug] overlay %v", cfg.Debug.Enabled)
	}

	if entry, ok := components.Player.First(ecs.World); ok {
		components.Player.Get(entry).Input = ControllerInput(input)
	}
}

// pollActions swaps the frame buffers and reads every binding.
func pollActions(input *components.InputData) {
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	// Merge the left stick into the directional actions
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if horizontal < -deadzone {
			input.Current[cfg.ActionMoveLeft] = true
			gamepadUsed = true
		}
		if horizontal > deadzone {
			input.Current[cfg.ActionMoveRight] = true
			gamepadUsed = true
		}
		if vertical > deadzone {
			input.Current[cfg.ActionDown] = true
			gamepadUsed = true
		}
	}

	// Gamepad takes priority if both were used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// ControllerInput converts the action buffers into the controller's key
// snapshot.
func ControllerInput(input *components.InputData) movement.Input {
	button := func(id cfg.ActionID) movement.Button {
		return movement.Button{Held: input.Held(id), JustPressed: input.JustPressed(id)}
	}
	return movement.Input{
		Left:  button(cfg.ActionMoveLeft),
		Right: button(cfg.ActionMoveRight),
		Down:  button(cfg.ActionDown),
		Jump:  button(cfg.ActionJump),
		Dash:  button(cfg.ActionDash),
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}
