package gestures

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mobile-next/wingest/winapi"
)

const (
	keyActionPause          = "pause"
	keyActionText           = "text"
	keyActionVirtualKeyCode = "virtualKeyCode"
	keyActionDown           = "down"
)

var keyActionProperties = []string{keyActionPause, keyActionText, keyActionVirtualKeyCode}

// KeyAction is one item of a keyboard input sequence. Exactly one of Pause,
// Text or VirtualKeyCode must be set. Down only applies to VirtualKeyCode:
// true depresses the key, false releases it, and nil presses it once.
type KeyAction struct {
	Pause          *int    `json:"pause,omitempty"`
	Text           *string `json:"text,omitempty"`
	VirtualKeyCode *uint16 `json:"virtualKeyCode,omitempty"`
	Down           *bool   `json:"down,omitempty"`

	raw       []byte
	present   map[string]bool
	typeError map[string]bool
}

// UnmarshalJSON tracks which properties were present, including explicit
// nulls, and defers type errors to ParseKeyActions so they are reported
// with the action's position.
func (a *KeyAction) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return winapi.InvalidArgumentf("key action must be an object, got %s", string(data))
	}

	*a = KeyAction{
		raw:       bytes.TrimSpace(data),
		present:   make(map[string]bool),
		typeError: make(map[string]bool),
	}

	targets := map[string]interface{}{
		keyActionPause:          &a.Pause,
		keyActionText:           &a.Text,
		keyActionVirtualKeyCode: &a.VirtualKeyCode,
		keyActionDown:           &a.Down,
	}
	for name, target := range targets {
		value, ok := fields[name]
		if !ok {
			continue
		}
		a.present[name] = true
		if err := json.Unmarshal(value, target); err != nil {
			a.typeError[name] = true
		}
	}
	return nil
}

func (a KeyAction) has(name string) bool {
	if a.present[name] {
		return true
	}
	switch name {
	case keyActionPause:
		return a.Pause != nil
	case keyActionText:
		return a.Text != nil
	case keyActionVirtualKeyCode:
		return a.VirtualKeyCode != nil
	case keyActionDown:
		return a.Down != nil
	}
	return false
}

func (a KeyAction) describe() string {
	if len(a.raw) > 0 {
		return string(a.raw)
	}
	data, _ := json.Marshal(a)
	return string(data)
}

// KeyActions accepts either a single action object or a list of them.
type KeyActions []KeyAction

func (k *KeyActions) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var single KeyAction
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return err
		}
		*k = KeyActions{single}
		return nil
	}

	var list []KeyAction
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return err
	}
	*k = list
	return nil
}

// KeyStep is either a batch of key records to submit at once, or a pause.
type KeyStep struct {
	Inputs []winapi.Input
	Pause  time.Duration
}

// IsPause reports whether the step is a delay rather than an input batch.
func (s KeyStep) IsPause() bool {
	return len(s.Inputs) == 0
}

// ParseKeyActions validates the actions and turns them into steps. Adjacent
// input batches are merged to keep the number of SendInput calls low, and
// pauses split them.
func ParseKeyActions(actions []KeyAction) ([]KeyStep, error) {
	if len(actions) == 0 {
		return nil, winapi.InvalidArgumentf("Key actions must not be empty")
	}

	var steps []KeyStep
	for i, action := range actions {
		step, err := parseKeyAction(action, i)
		if err != nil {
			return nil, err
		}

		if !step.IsPause() && len(steps) > 0 && !steps[len(steps)-1].IsPause() {
			last := &steps[len(steps)-1]
			last.Inputs = append(last.Inputs, step.Inputs...)
			continue
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func parseKeyAction(action KeyAction, index int) (KeyStep, error) {
	prefix := fmt.Sprintf("Key Action #%d (%s): ", index+1, action.describe())

	defined := 0
	for _, name := range keyActionProperties {
		if action.has(name) {
			defined++
		}
	}
	switch {
	case defined == 0:
		return KeyStep{}, winapi.InvalidArgumentf("%sSome key action (%s) must be defined", prefix, strings.Join(keyActionProperties, " or "))
	case defined > 1:
		return KeyStep{}, winapi.InvalidArgumentf("%sOnly one key action (%s) must be defined", prefix, strings.Join(keyActionProperties, " or "))
	}

	if action.has(keyActionPause) {
		if action.typeError[keyActionPause] || action.Pause == nil || *action.Pause < 0 {
			return KeyStep{}, winapi.InvalidArgumentf("%sPause value must be a valid positive integer number of milliseconds", prefix)
		}
		return KeyStep{Pause: time.Duration(*action.Pause) * time.Millisecond}, nil
	}

	if action.has(keyActionText) {
		if action.typeError[keyActionText] || action.Text == nil || *action.Text == "" {
			return KeyStep{}, winapi.InvalidArgumentf("%sText value must be a valid non-empty string", prefix)
		}
		return KeyStep{Inputs: winapi.UnicodeKeyInputs(*action.Text)}, nil
	}

	if action.typeError[keyActionVirtualKeyCode] || action.VirtualKeyCode == nil {
		return KeyStep{}, winapi.InvalidArgumentf("%sVirtual key code must be an integer in range 0..65535", prefix)
	}
	vk := *action.VirtualKeyCode

	if action.has(keyActionDown) {
		if action.typeError[keyActionDown] || action.Down == nil {
			return KeyStep{}, winapi.InvalidArgumentf("%sThe down argument must be of type boolean if provided", prefix)
		}
		// only depress or release, the caller holds the key across actions
		return KeyStep{Inputs: []winapi.Input{winapi.KeyInput(vk, *action.Down)}}, nil
	}

	return KeyStep{Inputs: []winapi.Input{
		winapi.KeyInput(vk, true),
		winapi.KeyInput(vk, false),
	}}, nil
}
