package cli

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"
)

const keyringService = "wingest"
const keyringUser = "api-token"

// tokenBytes is the amount of randomness in a generated token
const tokenBytes = 24

func loadToken() (string, error) {
	return keyring.Get(keyringService, keyringUser)
}

func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "API token commands",
	Long:  `Commands for managing the API token the server requires from its clients.`,
}

var authSetTokenCmd = &cobra.Command{
	Use:   "set-token [token]",
	Short: "Store the server API token",
	Long:  `Stores the given token in the system keyring. Without an argument a random token is generated and printed.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var token string
		if len(args) == 1 {
			token = args[0]
		} else {
			generated, err := generateToken()
			if err != nil {
				return err
			}
			token = generated
		}

		if token == "" {
			return fmt.Errorf("token must not be empty")
		}

		if err := keyring.Set(keyringService, keyringUser, token); err != nil {
			return fmt.Errorf("failed to store token: %w", err)
		}

		if len(args) == 0 {
			fmt.Println(token)
		}
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored API token",
	Long:  `Deletes the API token from the system keyring. The server no longer requires authentication afterwards.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := keyring.Delete(keyringService, keyringUser); err != nil {
			fmt.Println("no API token stored for wingest")
			return nil
		}

		fmt.Println("API token removed.")
		return nil
	},
}

var authTokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Display the stored API token",
	Long:  `Displays the API token clients must send as 'Authorization: Bearer <token>'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := loadToken()
		if err != nil {
			return fmt.Errorf("no API token found for wingest")
		}

		fmt.Println(token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authSetTokenCmd, authLogoutCmd, authTokenCmd)
}
