package gestures

import (
	"encoding/json"
	"testing"

	"github.com/mobile-next/wingest/winapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyCodes(inputs []winapi.Input) []uint16 {
	var codes []uint16
	for i := range inputs {
		codes = append(codes, inputs[i].Keyboard().VirtualKey)
	}
	return codes
}

func TestModifierInputs(t *testing.T) {
	press, release, err := ModifierInputs([]string{"Shift", "ctrl", "SHIFT", "alt"})
	require.NoError(t, err)

	assert.Equal(t, []uint16{winapi.VKShift, winapi.VKControl, winapi.VKMenu}, keyCodes(press))
	assert.Equal(t, []uint16{winapi.VKMenu, winapi.VKControl, winapi.VKShift}, keyCodes(release))

	for i := range press {
		assert.Equal(t, winapi.InputKeyboard, press[i].Type)
		assert.Zero(t, press[i].Keyboard().Flags)
	}
	for i := range release {
		assert.Equal(t, winapi.KeyEventFKeyUp, release[i].Keyboard().Flags)
	}
}

func TestModifierInputs_Empty(t *testing.T) {
	press, release, err := ModifierInputs(nil)
	require.NoError(t, err)
	assert.Empty(t, press)
	assert.Empty(t, release)
}

func TestModifierInputs_Unknown(t *testing.T) {
	_, _, err := ModifierInputs([]string{"shift", "hyper"})
	require.Error(t, err)
	assert.True(t, winapi.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "'hyper'")
	assert.Contains(t, err.Error(), "shift,ctrl,alt,win")
}

func TestModifierKeys_UnmarshalJSON(t *testing.T) {
	var single ModifierKeys
	require.NoError(t, json.Unmarshal([]byte(`"win"`), &single))
	assert.Equal(t, ModifierKeys{"win"}, single)

	var list ModifierKeys
	require.NoError(t, json.Unmarshal([]byte(`["ctrl","alt"]`), &list))
	assert.Equal(t, ModifierKeys{"ctrl", "alt"}, list)

	var bad ModifierKeys
	err := json.Unmarshal([]byte(`42`), &bad)
	require.Error(t, err)
}

func TestModifierKeys_UnmarshalNull(t *testing.T) {
	var req ClickRequest
	require.NoError(t, json.Unmarshal([]byte(`{"x":1,"y":2,"modifierKeys":null}`), &req))
	assert.Nil(t, req.ModifierKeys)
}
