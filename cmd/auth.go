// Package cmd implements the command-line interface for filmschool.
package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/filmschoolyt/filmschoolyt/auth"
	"github.com/filmschoolyt/filmschoolyt/icon"
	"github.com/filmschoolyt/filmschoolyt/key"
	"github.com/filmschoolyt/filmschoolyt/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(authCmd)
}

// authCmd manages the YouTube Data API credential stored in the system keyring.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the YouTube Data API key used for richer lesson metadata",
	Long: `Store, inspect or remove the YouTube Data API key.
The key lives in the operating system keyring, never in the config file.`,
}

func init() {
	authCmd.AddCommand(authSetCmd)
	authSetCmd.Flags().BoolP("disable", "d", false, "Disable API-key-based metadata without removing the stored key")
}

// authSetCmd interactively stores the API key and enables keyed metadata lookups.
var authSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store a YouTube Data API key in the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("disable")) {
			viper.Set(key.MetadataUseAPIKey, false)
			log.Info("API key metadata disabled")
			handleErr(viper.WriteConfig())
			return
		}

		input := survey.Password{
			Message: "Enter your YouTube Data API key:",
			Help:    "Create one at https://console.cloud.google.com/apis/credentials",
		}
		var response string
		err := survey.AskOne(&input, &response)
		handleErr(err)

		if response == "" {
			return
		}

		handleErr(auth.SetAPIKey(response))

		if !viper.GetBool(key.MetadataUseAPIKey) {
			confirm := survey.Confirm{
				Message: "API-key metadata is disabled. Enable?",
				Default: true,
			}
			var enable bool
			err := survey.AskOne(&confirm, &enable)
			handleErr(err)

			if enable {
				viper.Set(key.MetadataUseAPIKey, true)
				err = viper.WriteConfig()
				if err != nil {
					switch err.(type) {
					case viper.ConfigFileNotFoundError:
						handleErr(viper.SafeWriteConfig())
					default:
						handleErr(err)
					}
				}
			}
		}

		fmt.Printf("%s API key stored\n", icon.Get(icon.Success))
	},
}

func init() {
	authCmd.AddCommand(authStatusCmd)
}

// authStatusCmd reports whether an API key is present without revealing it.
var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether a YouTube Data API key is stored",
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := auth.GetAPIKey(); err != nil {
			fmt.Printf("%s no API key stored\n", icon.Get(icon.Fail))
			return
		}

		state := "disabled"
		if viper.GetBool(key.MetadataUseAPIKey) {
			state = "enabled"
		}

		fmt.Printf("%s API key stored (metadata lookups %s)\n", icon.Get(icon.Success), state)
	},
}

func init() {
	authCmd.AddCommand(authDeleteCmd)
}

// authDeleteCmd removes the stored API key from the keyring.
var authDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the stored YouTube Data API key from the system keyring",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteAPIKey())

		viper.Set(key.MetadataUseAPIKey, false)
		_ = viper.WriteConfig()

		fmt.Printf("%s API key deleted\n", icon.Get(icon.Success))
	},
}
