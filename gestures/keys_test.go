package gestures

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/mobile-next/wingest/winapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseJSONActions(t *testing.T, data string) KeyActions {
	t.Helper()
	var actions KeyActions
	require.NoError(t, json.Unmarshal([]byte(data), &actions))
	return actions
}

func TestParseKeyActions(t *testing.T) {
	actions := parseJSONActions(t, `[{"virtualKeyCode":16,"down":true},{"pause":100},{"text":"ab"}]`)

	steps, err := ParseKeyActions(actions)
	require.NoError(t, err)
	require.Len(t, steps, 3)

	require.Len(t, steps[0].Inputs, 1)
	assert.Equal(t, winapi.VKShift, steps[0].Inputs[0].Keyboard().VirtualKey)
	assert.Zero(t, steps[0].Inputs[0].Keyboard().Flags)

	assert.True(t, steps[1].IsPause())
	assert.Equal(t, 100*time.Millisecond, steps[1].Pause)

	require.Len(t, steps[2].Inputs, 4)
	assert.Equal(t, uint16('a'), steps[2].Inputs[0].Keyboard().ScanCode)
	assert.Equal(t, winapi.KeyEventFUnicode, steps[2].Inputs[0].Keyboard().Flags)
	assert.Equal(t, winapi.KeyEventFUnicode|winapi.KeyEventFKeyUp, steps[2].Inputs[1].Keyboard().Flags)
	assert.Equal(t, uint16('b'), steps[2].Inputs[2].Keyboard().ScanCode)
}

func TestParseKeyActions_CoalescesAdjacentBatches(t *testing.T) {
	actions := parseJSONActions(t, `[{"virtualKeyCode":17,"down":true},{"text":"c"},{"virtualKeyCode":17,"down":false},{"virtualKeyCode":13}]`)

	steps, err := ParseKeyActions(actions)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Len(t, steps[0].Inputs, 1+2+1+2)

	last := steps[0].Inputs[5]
	assert.Equal(t, uint16(13), last.Keyboard().VirtualKey)
	assert.Equal(t, winapi.KeyEventFKeyUp, last.Keyboard().Flags)
}

func TestParseKeyActions_PausesAreNotMerged(t *testing.T) {
	steps, err := ParseKeyActions(parseJSONActions(t, `[{"pause":0},{"pause":10}]`))
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.True(t, steps[0].IsPause())
	assert.Equal(t, 10*time.Millisecond, steps[1].Pause)
}

func TestParseKeyActions_SingleObject(t *testing.T) {
	steps, err := ParseKeyActions(parseJSONActions(t, `{"text":"x"}`))
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Len(t, steps[0].Inputs, 2)
}

func TestParseKeyActions_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		actions string
		message string
	}{
		{"no property", `[{}]`, "Some key action"},
		{"two properties", `[{"text":"a","pause":1}]`, "Only one key action"},
		{"null still counts", `[{"text":"a","pause":null}]`, "Only one key action"},
		{"negative pause", `[{"pause":-1}]`, "Pause value"},
		{"fractional pause", `[{"pause":1.5}]`, "Pause value"},
		{"empty text", `[{"text":""}]`, "Text value"},
		{"text not a string", `[{"text":5}]`, "Text value"},
		{"bad key code", `[{"virtualKeyCode":"a"}]`, "Virtual key code"},
		{"key code out of range", `[{"virtualKeyCode":70000}]`, "Virtual key code"},
		{"down not a bool", `[{"virtualKeyCode":65,"down":"yes"}]`, "down argument"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseKeyActions(parseJSONActions(t, tt.actions))
			require.Error(t, err)
			assert.True(t, winapi.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), "Key Action #1")
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParseKeyActions_ReportsPosition(t *testing.T) {
	_, err := ParseKeyActions(parseJSONActions(t, `[{"text":"ok"},{"pause":-5}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Key Action #2 ({"pause":-5})`)
}

func TestParseKeyActions_Empty(t *testing.T) {
	_, err := ParseKeyActions(nil)
	require.Error(t, err)
	assert.True(t, winapi.IsInvalidArgument(err))
}
