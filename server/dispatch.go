package server

import (
	"encoding/json"
	"fmt"

	"github.com/mobile-next/wingest/commands"
	"github.com/mobile-next/wingest/gestures"
	"github.com/mobile-next/wingest/winapi"
)

// HandlerFunc is the signature for JSON-RPC method handlers
type HandlerFunc func(params json.RawMessage) (interface{}, error)

// GetMethodRegistry returns a map of method names to handler functions
// This is used by both the HTTP server and the WebSocket endpoint
func GetMethodRegistry() map[string]HandlerFunc {
	return map[string]HandlerFunc{
		"io_click":        handleIoClick,
		"io_scroll":       handleIoScroll,
		"io_drag":         handleIoDrag,
		"io_hover":        handleIoHover,
		"io_keys":         handleIoKeys,
		"screen_info":     handleScreenInfo,
		"server.shutdown": handleServerShutdown,
	}
}

func lookupMethod(method string) (HandlerFunc, bool) {
	handler, ok := GetMethodRegistry()[method]
	return handler, ok
}

// Execute dispatches a method call using the registry
func Execute(method string, params json.RawMessage) (interface{}, error) {
	handler, ok := lookupMethod(method)
	if !ok {
		return nil, fmt.Errorf("method not found: %s", method)
	}
	return handler(params)
}

func decodeParams(params json.RawMessage, v interface{}, fields string) error {
	if len(params) == 0 {
		return winapi.InvalidArgumentf("'params' is required with fields: %s", fields)
	}

	if err := json.Unmarshal(params, v); err != nil {
		return winapi.InvalidArgumentf("invalid parameters: %v. Expected fields: %s", err, fields)
	}
	return nil
}

func gestureResult(response *commands.CommandResponse) (interface{}, error) {
	if err := response.Err(); err != nil {
		return nil, err
	}
	return okResponse, nil
}

func handleIoClick(params json.RawMessage) (interface{}, error) {
	var req gestures.ClickRequest
	if err := decodeParams(params, &req, "elementId or x, y, button, modifierKeys, pressDurationMs, repeatCount, interRepeatDelayMs"); err != nil {
		return nil, err
	}
	return gestureResult(commands.ClickCommand(req))
}

func handleIoScroll(params json.RawMessage) (interface{}, error) {
	var req gestures.ScrollRequest
	if err := decodeParams(params, &req, "elementId or x, y, deltaX or deltaY, modifierKeys"); err != nil {
		return nil, err
	}
	return gestureResult(commands.ScrollCommand(req))
}

func handleIoDrag(params json.RawMessage) (interface{}, error) {
	var req gestures.DragRequest
	if err := decodeParams(params, &req, "startElementId or startX, startY, endElementId or endX, endY, modifierKeys, durationMs"); err != nil {
		return nil, err
	}
	return gestureResult(commands.DragCommand(req))
}

func handleIoHover(params json.RawMessage) (interface{}, error) {
	var req gestures.HoverRequest
	if err := decodeParams(params, &req, "startElementId or startX, startY, endElementId or endX, endY, modifierKeys, durationMs"); err != nil {
		return nil, err
	}
	return gestureResult(commands.HoverCommand(req))
}

func handleIoKeys(params json.RawMessage) (interface{}, error) {
	var req gestures.KeysRequest
	if err := decodeParams(params, &req, "actions"); err != nil {
		return nil, err
	}
	return gestureResult(commands.KeysCommand(req))
}

func handleScreenInfo(params json.RawMessage) (interface{}, error) {
	response := commands.ScreenCommand()
	if err := response.Err(); err != nil {
		return nil, err
	}
	return response.Data, nil
}

func handleServerShutdown(params json.RawMessage) (interface{}, error) {
	if !requestShutdown() {
		return nil, fmt.Errorf("server is not running in standalone mode")
	}
	return okResponse, nil
}
