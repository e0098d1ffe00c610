package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecowaste/site/internal/domain"
	"github.com/ecowaste/site/internal/password"
)

var confirmPassword string

// checkPasswordCmd represents the check-password command
var checkPasswordCmd = &cobra.Command{
	Use:   "check-password <password>",
	Short: "Evaluate a password against the strength rules",
	Long: `Prints every password strength rule and whether the password meets it.
With --confirm the confirmation is checked first, the same way the change
password form does.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pw := args[0]
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, titleStyle.Render("Password Requirements:"))
		for _, r := range password.Evaluate(pw) {
			if r.Met {
				fmt.Fprintln(out, okStyle.Render("  ✓ "+r.Text))
			} else {
				fmt.Fprintln(out, failStyle.Render("  ✗ "+r.Text))
			}
		}

		confirm := pw
		if cmd.Flags().Changed("confirm") {
			confirm = confirmPassword
		}
		err := password.CheckChange(pw, confirm)
		switch {
		case err == nil:
			fmt.Fprintln(out, okStyle.Render("Password accepted"))
			return nil
		case errors.Is(err, domain.ErrPasswordMismatch):
			return errors.New("passwords do not match")
		default:
			return err
		}
	},
}

func init() {
	checkPasswordCmd.Flags().StringVar(&confirmPassword, "confirm", "", "Confirmation to compare against the password")
	rootCmd.AddCommand(checkPasswordCmd)
}
