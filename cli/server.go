package cli

import (
	"fmt"

	"github.com/mobile-next/wingest/daemon"
	"github.com/mobile-next/wingest/server"
	"github.com/mobile-next/wingest/utils"
	"github.com/spf13/cobra"
)

const defaultServerAddress = "localhost:12000"

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server management commands",
	Long:  `Commands for managing the wingest JSON-RPC server.`,
}

// listenAddress picks the --listen flag, then config.ini, then the default
func listenAddress(cmd *cobra.Command) string {
	// GetString cannot fail for defined flags
	addr, _ := cmd.Flags().GetString("listen")
	if addr == "" {
		addr = loadedConfig.Listen
	}
	if addr == "" {
		addr = defaultServerAddress
	}
	return addr
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the wingest server",
	Long:  `Starts the wingest server. When an API token is stored with 'wingest auth set-token', every RPC call must present it.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		listenAddr := listenAddress(cmd)

		// GetBool cannot fail for defined flags
		enableCORS, _ := cmd.Flags().GetBool("cors")
		if !cmd.Flags().Changed("cors") {
			enableCORS = loadedConfig.CORS
		}
		isDaemon, _ := cmd.Flags().GetBool("daemon")

		if isDaemon && !daemon.IsChild() {
			_, err := daemon.Daemonize()
			if err != nil {
				return fmt.Errorf("failed to start daemon: %w", err)
			}

			fmt.Printf("Server daemon spawned, attempting to listen on %s\n", listenAddr)
			return nil
		}

		token, err := loadToken()
		if err != nil {
			utils.Verbose("No API token stored, server accepts unauthenticated calls: %v", err)
		}

		return server.StartServer(listenAddr, enableCORS, token)
	},
}

var serverKillCmd = &cobra.Command{
	Use:   "kill",
	Short: "Stop the daemonized wingest server",
	Long:  `Connects to the server and sends a shutdown command via JSON-RPC.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// a missing token is fine, the server may not require one
		token, _ := loadToken()

		err := daemon.KillServer(listenAddress(cmd), token)
		if err != nil {
			return err
		}

		fmt.Printf("Server shutdown command sent successfully\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	// add server subcommands
	serverCmd.AddCommand(serverStartCmd)
	serverCmd.AddCommand(serverKillCmd)

	// server start flags
	serverStartCmd.Flags().String("listen", "", fmt.Sprintf("Address to listen on (default: %s)", defaultServerAddress))
	serverStartCmd.Flags().Bool("cors", false, "Enable CORS support")
	serverStartCmd.Flags().BoolP("daemon", "d", false, "Run server in daemon mode (background)")

	// server kill flags
	serverKillCmd.Flags().String("listen", "", fmt.Sprintf("Address of server to kill (default: %s)", defaultServerAddress))
}
