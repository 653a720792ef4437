package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mobile-next/wingest/commands"
	"github.com/mobile-next/wingest/gestures"
	"github.com/mobile-next/wingest/winapi"
	"github.com/spf13/cobra"
)

var ioCmd = &cobra.Command{
	Use:   "io",
	Short: "Input operations on the desktop",
	Long:  `Perform mouse and keyboard operations like clicking, scrolling, dragging and typing.`,
}

// parseCoordinates parses "x,y" into two values
func parseCoordinates(coordsStr string) (*int, *int, error) {
	parts := strings.Split(coordsStr, ",")
	if len(parts) != 2 {
		return nil, nil, fmt.Errorf("invalid coordinate format. Expected 'x,y', got '%s'", coordsStr)
	}

	x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errX != nil || errY != nil {
		return nil, nil, fmt.Errorf("invalid coordinate values. x and y must be integers. Got x='%s', y='%s'", parts[0], parts[1])
	}

	return &x, &y, nil
}

// optionalInt returns the flag value only when it was given
func optionalInt(cmd *cobra.Command, name string, value int) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

func pointArgs(args []string) (*int, *int, error) {
	if len(args) == 0 {
		return nil, nil, nil
	}
	return parseCoordinates(args[0])
}

func optionalPoint(value string) (*int, *int, error) {
	if value == "" {
		return nil, nil, nil
	}
	return parseCoordinates(value)
}

var ioClickCmd = &cobra.Command{
	Use:   "click [x,y]",
	Short: "Click a mouse button",
	Long: `Moves the cursor and clicks. The target is either absolute "x,y" coordinates, or an element
given with --element, in which case "x,y" is an offset from the element's top left corner.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, y, err := pointArgs(args)
		if err != nil {
			return printResponse(commands.NewErrorResponse(err))
		}

		req := gestures.ClickRequest{
			ElementID:          elementID,
			X:                  x,
			Y:                  y,
			Button:             winapi.MouseButton(button),
			ModifierKeys:       modifierKeys,
			PressDurationMs:    optionalInt(cmd, "press-duration", pressDurationMs),
			RepeatCount:        optionalInt(cmd, "repeat", repeatCount),
			InterRepeatDelayMs: optionalInt(cmd, "repeat-delay", interRepeatDelayMs),
		}

		return printResponse(commands.ClickCommand(req))
	},
}

var ioScrollCmd = &cobra.Command{
	Use:   "scroll [x,y]",
	Short: "Rotate the mouse wheel",
	Long:  `Moves the cursor and scrolls by the given number of wheel detents. Exactly one of --delta-x and --delta-y must be given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, y, err := pointArgs(args)
		if err != nil {
			return printResponse(commands.NewErrorResponse(err))
		}

		req := gestures.ScrollRequest{
			ElementID:    elementID,
			X:            x,
			Y:            y,
			DeltaX:       optionalInt(cmd, "delta-x", deltaX),
			DeltaY:       optionalInt(cmd, "delta-y", deltaY),
			ModifierKeys: modifierKeys,
		}

		return printResponse(commands.ScrollCommand(req))
	},
}

// endpoints parses --from and --to
func endpoints() (*int, *int, *int, *int, error) {
	startX, startY, err := optionalPoint(fromPoint)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("--from: %w", err)
	}
	endX, endY, err := optionalPoint(toPoint)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("--to: %w", err)
	}
	return startX, startY, endX, endY, nil
}

var ioDragCmd = &cobra.Command{
	Use:   "drag",
	Short: "Drag and drop with the left mouse button",
	Long:  `Presses the left button at the start point, waits for --duration milliseconds, moves to the end point and releases the button.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		startX, startY, endX, endY, err := endpoints()
		if err != nil {
			return printResponse(commands.NewErrorResponse(err))
		}

		req := gestures.DragRequest{
			StartElementID: fromElement,
			StartX:         startX,
			StartY:         startY,
			EndElementID:   toElement,
			EndX:           endX,
			EndY:           endY,
			ModifierKeys:   modifierKeys,
			DurationMs:     optionalInt(cmd, "duration", durationMs),
		}

		return printResponse(commands.DragCommand(req))
	},
}

var ioHoverCmd = &cobra.Command{
	Use:   "hover",
	Short: "Move the cursor along a straight line",
	Long:  `Moves the cursor from the start point to the end point in steps of 5 milliseconds over --duration milliseconds.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		startX, startY, endX, endY, err := endpoints()
		if err != nil {
			return printResponse(commands.NewErrorResponse(err))
		}

		req := gestures.HoverRequest{
			StartElementID: fromElement,
			StartX:         startX,
			StartY:         startY,
			EndElementID:   toElement,
			EndX:           endX,
			EndY:           endY,
			ModifierKeys:   modifierKeys,
			DurationMs:     optionalInt(cmd, "duration", durationMs),
		}

		return printResponse(commands.HoverCommand(req))
	},
}

var ioKeysCmd = &cobra.Command{
	Use:   "keys [actions-json]",
	Short: "Send a sequence of key actions",
	Long: `Sends key actions given as JSON, e.g. '[{"virtualKeyCode":17,"down":true},{"text":"a"},{"virtualKeyCode":17,"down":false}]',
or plain text with --text.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var req gestures.KeysRequest

		switch {
		case len(args) == 1 && keysText != "":
			return printResponse(commands.NewErrorResponse(fmt.Errorf("either actions json or --text must be given, not both")))
		case len(args) == 1:
			if err := json.Unmarshal([]byte(args[0]), &req.Actions); err != nil {
				return printResponse(commands.NewErrorResponse(fmt.Errorf("invalid key actions: %w", err)))
			}
		case keysText != "":
			text := keysText
			req.Actions = gestures.KeyActions{{Text: &text}}
		}

		return printResponse(commands.KeysCommand(req))
	},
}

func init() {
	rootCmd.AddCommand(ioCmd)

	ioCmd.AddCommand(ioClickCmd, ioScrollCmd, ioDragCmd, ioHoverCmd, ioKeysCmd)

	for _, cmd := range []*cobra.Command{ioClickCmd, ioScrollCmd, ioDragCmd, ioHoverCmd} {
		cmd.Flags().StringSliceVar(&modifierKeys, "modifiers", nil, "modifier keys held during the gesture (shift, ctrl, alt, win)")
	}
	for _, cmd := range []*cobra.Command{ioClickCmd, ioScrollCmd} {
		cmd.Flags().StringVar(&elementID, "element", "", "element id to target instead of absolute coordinates")
	}

	ioClickCmd.Flags().StringVar(&button, "button", "left", "mouse button (left, middle, right, back, forward)")
	ioClickCmd.Flags().IntVar(&pressDurationMs, "press-duration", 0, "hold the button down for this many milliseconds")
	ioClickCmd.Flags().IntVar(&repeatCount, "repeat", gestures.DefaultRepeatCount, "number of clicks")
	ioClickCmd.Flags().IntVar(&interRepeatDelayMs, "repeat-delay", gestures.DefaultInterRepeatDelayMs, "milliseconds to wait after each click")

	ioScrollCmd.Flags().IntVar(&deltaX, "delta-x", 0, "horizontal wheel detents")
	ioScrollCmd.Flags().IntVar(&deltaY, "delta-y", 0, "vertical wheel detents")

	for _, cmd := range []*cobra.Command{ioDragCmd, ioHoverCmd} {
		cmd.Flags().StringVar(&fromPoint, "from", "", "start point as 'x,y', an offset when --from-element is set")
		cmd.Flags().StringVar(&toPoint, "to", "", "end point as 'x,y', an offset when --to-element is set")
		cmd.Flags().StringVar(&fromElement, "from-element", "", "start element id")
		cmd.Flags().StringVar(&toElement, "to-element", "", "end element id")
	}
	ioDragCmd.Flags().IntVar(&durationMs, "duration", gestures.DefaultDragDurationMs, "milliseconds between pressing the button and moving to the end point")
	ioHoverCmd.Flags().IntVar(&durationMs, "duration", gestures.DefaultHoverDurationMs, "milliseconds the movement takes")

	ioKeysCmd.Flags().StringVar(&keysText, "text", "", "text to type")
}
