package gestures

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/mobile-next/wingest/winapi"
)

var modifierKeys = []struct {
	name string
	vk   uint16
}{
	{"shift", winapi.VKShift},
	{"ctrl", winapi.VKControl},
	{"alt", winapi.VKMenu},
	{"win", winapi.VKLWin},
}

// ModifierKeys is a list of modifier key names. In JSON it may also be given
// as a single string.
type ModifierKeys []string

func (m *ModifierKeys) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		*m = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*m = ModifierKeys{single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return winapi.InvalidArgumentf("modifierKeys must be a key name or a list of key names")
	}
	*m = list
	return nil
}

func lookupModifier(name string) (uint16, bool) {
	for _, m := range modifierKeys {
		if m.name == name {
			return m.vk, true
		}
	}
	return 0, false
}

func supportedModifiers() string {
	names := make([]string, len(modifierKeys))
	for i, m := range modifierKeys {
		names[i] = m.name
	}
	return strings.Join(names, ",")
}

// ModifierInputs translates modifier key names into key-down records in
// first-seen order and key-up records in the reverse order. Names are
// matched case-insensitively and duplicates are ignored.
func ModifierInputs(names []string) (press, release []winapi.Input, err error) {
	if len(names) == 0 {
		return nil, nil, nil
	}

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		lower := strings.ToLower(name)
		if seen[lower] {
			continue
		}

		vk, ok := lookupModifier(lower)
		if !ok {
			return nil, nil, winapi.InvalidArgumentf("Modifier key name '%s' is unknown. Supported key names are: %s", name, supportedModifiers())
		}
		seen[lower] = true
		press = append(press, winapi.KeyInput(vk, true))
	}

	release = make([]winapi.Input, len(press))
	for i, in := range press {
		release[len(press)-1-i] = winapi.KeyInput(in.Keyboard().VirtualKey, false)
	}
	return press, release, nil
}
