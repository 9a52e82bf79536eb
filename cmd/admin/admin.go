// Package admin handles administrative commands
package admin

import (
	"fmt"
	"strings"

	"fjacquet/bookctl/cmd/root"
	"fjacquet/bookctl/internal/catalog"
	"fjacquet/bookctl/internal/directory"
	"fjacquet/bookctl/internal/models"
	"fjacquet/bookctl/internal/recordstore"

	"github.com/spf13/cobra"
)

var (
	adminID       string
	adminPassword string

	kindFlag string
	rowFlag  []string
	index    int
)

// Cmd represents the admin command
var Cmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrative operations on users and catalog rows",
	Long: `Administrative operations: list registered users, inspect raw
catalog rows, add an offering row and remove an offering row by index.
Every subcommand requires admin credentials.`,
}

// authenticateAdmin authenticates the credentials and requires the admin role
func authenticateAdmin() *directory.Directory {
	dir, err := root.LoadDirectory()
	if err != nil {
		root.Log.Fatalf("Error loading user directory: %v", err)
	}

	user, err := dir.Authenticate(adminID, adminPassword)
	if err != nil {
		root.Log.Fatalf("Invalid admin credentials.")
	}
	if !user.IsAdmin() {
		root.Log.Fatalf("User %s is not an administrator.", user.ID)
	}
	return dir
}

func parseKind() models.ServiceKind {
	kind, err := models.ParseServiceKind(kindFlag)
	if err != nil {
		root.Log.Fatalf("Invalid service kind: %v", err)
	}
	return kind
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List registered users",
	Run: func(cmd *cobra.Command, args []string) {
		dir := authenticateAdmin()

		fmt.Fprintln(cmd.OutOrStdout(), "--- Registered Users ---")
		for _, user := range dir.Users() {
			fmt.Fprintf(cmd.OutOrStdout(), "ID: %s, Name: %s, Email: %s, Role: %s\n",
				user.ID, user.Name, user.Email, user.Role)
		}
	},
}

var rowsCmd = &cobra.Command{
	Use:   "rows",
	Short: "Show the raw rows of a catalog resource with their indexes",
	Run: func(cmd *cobra.Command, args []string) {
		authenticateAdmin()
		kind := parseKind()

		table, err := recordstore.Load(root.NewLoader().ResourcePath(kind))
		if err != nil {
			root.Log.Fatalf("Error loading resource: %v", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", strings.Join(table.Header, ", "))
		for i, row := range table.Rows {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i, strings.Join(row, ", "))
		}
	},
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an offering row to a catalog resource",
	Long: `Add one offering row. Values are given in schema order via repeated
--value flags; run 'admin rows --kind <kind>' to see the column order.`,
	Run: func(cmd *cobra.Command, args []string) {
		authenticateAdmin()
		kind := parseKind()
		schema := catalog.Schema(kind)

		if len(rowFlag) != len(schema) {
			root.Log.Fatalf("Expected %d values for schema %v, got %d",
				len(schema), schema, len(rowFlag))
		}

		path := root.NewLoader().ResourcePath(kind)
		if err := recordstore.AppendRow(path, rowFlag, schema); err != nil {
			root.Log.Fatalf("Error adding offering row: %v", err)
		}
		root.Log.Infof("New %s offering added successfully.", kind)
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove an offering row by index",
	Long: `Remove the offering row at the given zero-based index, as shown by
'admin rows'. Index 0 is a valid target.`,
	Run: func(cmd *cobra.Command, args []string) {
		authenticateAdmin()
		kind := parseKind()

		path := root.NewLoader().ResourcePath(kind)
		if err := recordstore.DeleteAtIndex(path, index); err != nil {
			root.Log.Fatalf("Error removing offering row: %v", err)
		}
		root.Log.Infof("%s offering at index %d removed successfully.", kind, index)
	},
}

func init() {
	Cmd.PersistentFlags().StringVarP(&adminID, "user", "u", "", "Admin user ID (required)")
	Cmd.PersistentFlags().StringVarP(&adminPassword, "password", "p", "", "Admin password (required)")
	_ = Cmd.MarkPersistentFlagRequired("user")
	_ = Cmd.MarkPersistentFlagRequired("password")

	rowsCmd.Flags().StringVarP(&kindFlag, "kind", "k", "", "Service kind (required)")
	_ = rowsCmd.MarkFlagRequired("kind")

	addCmd.Flags().StringVarP(&kindFlag, "kind", "k", "", "Service kind (required)")
	addCmd.Flags().StringArrayVarP(&rowFlag, "value", "v", nil, "Row values in schema order (repeat per column)")
	_ = addCmd.MarkFlagRequired("kind")
	_ = addCmd.MarkFlagRequired("value")

	removeCmd.Flags().StringVarP(&kindFlag, "kind", "k", "", "Service kind (required)")
	removeCmd.Flags().IntVarP(&index, "index", "i", 0, "Zero-based row index to remove")
	_ = removeCmd.MarkFlagRequired("kind")
	_ = removeCmd.MarkFlagRequired("index")

	Cmd.AddCommand(usersCmd)
	Cmd.AddCommand(rowsCmd)
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(removeCmd)
}
