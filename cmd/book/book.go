// Package book handles the non-interactive booking command
package book

import (
	"errors"
	"strconv"

	"fjacquet/bookctl/cmd/root"
	"fjacquet/bookctl/internal/bookingerror"
	"fjacquet/bookctl/internal/models"
	"fjacquet/bookctl/internal/recordstore"

	"github.com/spf13/cobra"
)

var (
	userID    string
	password  string
	kindFlag  string
	serviceID string
	quantity  int
)

// Cmd represents the book command
var Cmd = &cobra.Command{
	Use:   "book",
	Short: "Reserve an offering, record the payment and notify the user",
	Long: `Reserve a quantity of one offering for an authenticated user.
On success the catalog resource is updated with the decremented capacity,
a payment is recorded and a confirmation notification is emitted.`,
	Run: bookFunc,
}

func bookFunc(cmd *cobra.Command, args []string) {
	kind, err := models.ParseServiceKind(kindFlag)
	if err != nil {
		root.Log.Fatalf("Invalid service kind: %v", err)
	}

	dir, err := root.LoadDirectory()
	if err != nil {
		root.Log.Fatalf("Error loading user directory: %v", err)
	}

	user, err := dir.Authenticate(userID, password)
	if err != nil {
		root.Log.Fatalf("Invalid credentials.")
	}

	loader := root.NewLoader()
	offerings, err := loader.LoadOfferings(kind)
	if err != nil {
		root.Log.Fatalf("Error loading catalog: %v", err)
	}

	var selected *models.Offering
	for i := range offerings {
		if offerings[i].ID == serviceID {
			selected = &offerings[i]
			break
		}
	}
	if selected == nil {
		root.Log.Fatalf("No %s offering with service ID %s", kind, serviceID)
	}

	engine := root.NewEngine(cmd)
	booked, err := engine.Reserve(user, selected, quantity)
	if err != nil {
		var capErr *bookingerror.InsufficientCapacityError
		if errors.As(err, &capErr) {
			root.Log.Fatalf("Not enough capacity available: requested %d, available %d.",
				capErr.Requested, capErr.Available)
		}
		root.Log.Fatalf("Error reserving offering: %v", err)
	}

	// Persist the decremented capacity back to the catalog resource
	if selected.Kind.HasCapacity() {
		_, err := recordstore.UpdateWhere(loader.ResourcePath(kind),
			"service_id", selected.ID,
			selected.CapacityColumn(), strconv.Itoa(selected.Available()))
		if err != nil {
			root.Log.Fatalf("Error persisting updated capacity: %v", err)
		}
	}

	engine.Pay(booked, booked.TotalPrice)
	engine.Notify(user, "Your booking is confirmed!")

	root.Log.Infof("Booking %s completed for %s", booked.ID, user.ID)
}

func init() {
	Cmd.Flags().StringVarP(&userID, "user", "u", "", "User ID (required)")
	Cmd.Flags().StringVarP(&password, "password", "p", "", "Password (required)")
	Cmd.Flags().StringVarP(&kindFlag, "kind", "k", "", "Service kind (required)")
	Cmd.Flags().StringVarP(&serviceID, "service", "s", "", "Service ID to book (required)")
	Cmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "Number of seats or rooms to book")
	_ = Cmd.MarkFlagRequired("user")
	_ = Cmd.MarkFlagRequired("password")
	_ = Cmd.MarkFlagRequired("kind")
	_ = Cmd.MarkFlagRequired("service")
}
