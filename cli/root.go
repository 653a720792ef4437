package cli

import (
	"encoding/json"
	"fmt"

	"github.com/mobile-next/wingest/commands"
	"github.com/mobile-next/wingest/utils"
	"github.com/spf13/cobra"
)

const version = "dev"

// loadedConfig holds config.ini merged with the command line flags
var loadedConfig = &utils.Config{}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wingest",
	Short: "Windows desktop input injection for UI automation",
	Long:  `Translates clicks, scrolls, drags, hovers and key sequences into native Windows input events`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
}

// GetVersion returns the build version
func GetVersion() string {
	return version
}

func initConfig(cmd *cobra.Command, args []string) error {
	utils.SetVerbose(verbose)

	path := configPath
	mustExist := path != ""
	if path == "" {
		defaultPath, err := utils.DefaultConfigPath()
		if err != nil {
			utils.Verbose("%v", err)
		}
		path = defaultPath
	}

	config := &utils.Config{}
	if path != "" {
		var err error
		config, err = utils.LoadConfig(path, mustExist)
		if err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") || !config.Verbose {
		config.Verbose = verbose
	}
	if flags.Changed("driver-url") {
		config.DriverURL = driverURL
	}
	if flags.Changed("session") {
		config.SessionID = sessionID
	}
	if flags.Changed("size-cache") {
		config.SizeCache = sizeCache
	}
	if config.SizeCache < 0 {
		return fmt.Errorf("--size-cache must not be negative, got %d", config.SizeCache)
	}

	utils.SetVerbose(config.Verbose)
	loadedConfig = config

	commands.Configure(commands.RunnerConfig{
		DriverURL: config.DriverURL,
		SessionID: config.SessionID,
		SizeCache: config.SizeCache,
	})
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.ini (default: <user config dir>/wingest/config.ini)")
	rootCmd.PersistentFlags().StringVar(&driverURL, "driver-url", "", "automation driver address used to resolve element ids (e.g. 127.0.0.1:4723)")
	rootCmd.PersistentFlags().StringVar(&sessionID, "session", "", "automation driver session id")
	rootCmd.PersistentFlags().IntVar(&sizeCache, "size-cache", 0, "cache up to N element sizes (0 disables caching)")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// printJson is a helper function to print JSON responses
func printJson(data interface{}) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		utils.Logger().Fatal(err)
	}
	fmt.Println(string(jsonData))
}

// printResponse prints the response and turns an error status into an error
func printResponse(response *commands.CommandResponse) error {
	printJson(response)
	if response.Status == "error" {
		return fmt.Errorf("%s", response.Error)
	}
	return nil
}
