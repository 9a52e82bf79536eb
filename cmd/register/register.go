// Package register handles non-interactive user registration
package register

import (
	"errors"

	"fjacquet/bookctl/cmd/root"
	"fjacquet/bookctl/internal/bookingerror"
	"fjacquet/bookctl/internal/models"

	"github.com/spf13/cobra"
)

var (
	userID   string
	name     string
	email    string
	password string
)

// Cmd represents the register command
var Cmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new customer account",
	Long:  `Register a new customer account in the user directory.`,
	Run:   registerFunc,
}

func registerFunc(cmd *cobra.Command, args []string) {
	dir, err := root.LoadDirectory()
	if err != nil {
		root.Log.Fatalf("Error loading user directory: %v", err)
	}

	user := &models.User{
		ID:       userID,
		Name:     name,
		Email:    email,
		Password: password,
		Role:     models.RoleCustomer,
	}

	if err := dir.Register(user); err != nil {
		var dup *bookingerror.DuplicateUserError
		if errors.As(err, &dup) {
			root.Log.Fatalf("User ID already exists: %s. Please choose another.", dup.UserID)
		}
		root.Log.Fatalf("Error registering user: %v", err)
	}

	root.Log.Infof("Registration successful for %s. You can now login.", userID)
}

func init() {
	Cmd.Flags().StringVarP(&userID, "id", "u", "", "New user ID (required)")
	Cmd.Flags().StringVarP(&name, "name", "n", "", "Display name (required)")
	Cmd.Flags().StringVarP(&email, "email", "e", "", "Email address")
	Cmd.Flags().StringVarP(&password, "password", "p", "", "Password (required)")
	_ = Cmd.MarkFlagRequired("id")
	_ = Cmd.MarkFlagRequired("name")
	_ = Cmd.MarkFlagRequired("password")
}
