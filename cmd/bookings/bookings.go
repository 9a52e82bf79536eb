// Package bookings handles the booking history command
package bookings

import (
	"fmt"

	"fjacquet/bookctl/cmd/root"
	"fjacquet/bookctl/internal/ledger"

	"github.com/spf13/cobra"
)

var (
	userID   string
	password string
)

// Cmd represents the bookings command
var Cmd = &cobra.Command{
	Use:   "bookings",
	Short: "Show the booking history of a user",
	Long:  `Show the bookings recorded in the ledger for an authenticated user.`,
	Run:   bookingsFunc,
}

func bookingsFunc(cmd *cobra.Command, args []string) {
	dir, err := root.LoadDirectory()
	if err != nil {
		root.Log.Fatalf("Error loading user directory: %v", err)
	}

	user, err := dir.Authenticate(userID, password)
	if err != nil {
		root.Log.Fatalf("Invalid credentials.")
	}

	store := ledger.NewStore(root.LedgerPath())
	recorded, err := store.LoadForUser(user.ID)
	if err != nil {
		root.Log.Fatalf("Error loading booking history: %v", err)
	}

	if len(recorded) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "You have no bookings yet.")
		return
	}

	fmt.Fprintln(cmd.OutOrStdout(), "--- Your Bookings ---")
	for _, b := range recorded {
		fmt.Fprintln(cmd.OutOrStdout(), b.String())
	}
}

func init() {
	Cmd.Flags().StringVarP(&userID, "user", "u", "", "User ID (required)")
	Cmd.Flags().StringVarP(&password, "password", "p", "", "Password (required)")
	_ = Cmd.MarkFlagRequired("user")
	_ = Cmd.MarkFlagRequired("password")
}
