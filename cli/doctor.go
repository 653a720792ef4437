package cli

import (
	"github.com/mobile-next/wingest/commands"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run system diagnostics",
	Long:  `Checks that native input is available, reports the virtual screen and whether the automation driver is reachable`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResponse(commands.DoctorCommand(GetVersion()))
	},
}

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Show the virtual screen size",
	Long:  `Prints the size of the virtual screen spanning all displays, and whether the mouse buttons are swapped`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResponse(commands.ScreenCommand())
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(screenCmd)
}
