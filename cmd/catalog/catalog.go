// Package catalog handles catalog listing commands
package catalog

import (
	"fmt"

	"fjacquet/bookctl/cmd/root"
	"fjacquet/bookctl/internal/models"

	"github.com/spf13/cobra"
)

var kindFlag string

// Cmd represents the catalog command
var Cmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the offerings of a service kind",
	Long:  `List the available offerings of one service kind (flight, bus, train, trip, hotel, homestay, farmhouse).`,
	Run:   catalogFunc,
}

func catalogFunc(cmd *cobra.Command, args []string) {
	kind, err := models.ParseServiceKind(kindFlag)
	if err != nil {
		root.Log.Fatalf("Invalid service kind: %v", err)
	}

	offerings, err := root.NewLoader().LoadOfferings(kind)
	if err != nil {
		root.Log.Fatalf("Error loading catalog: %v", err)
	}

	if len(offerings) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No services available.")
		return
	}

	for i, offering := range offerings {
		fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, offering.Info())
	}
}

func init() {
	Cmd.Flags().StringVarP(&kindFlag, "kind", "k", "", "Service kind (required)")
	_ = Cmd.MarkFlagRequired("kind")
}
