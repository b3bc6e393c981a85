package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jgoulah/energycalc/internal/estimator"
	"github.com/jgoulah/energycalc/pkg/models"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Show the constant tables used by the estimator",
	Long:  `Displays the room fixture counts, the appliance catalog and the day-of-week usage multipliers.`,
	Args:  cobra.NoArgs,
	RunE:  runTables,
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}

func runTables(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if err := printRoomFixtures(out); err != nil {
		return fmt.Errorf("printing room fixtures: %w", err)
	}

	fmt.Fprintln(out, "\nAppliance Catalog:")
	fmt.Fprintln(out, "------------------------------------------------------------------")
	fmt.Fprintf(out, "%-16s  %8s  %-30s  %s\n", "Appliance", "kW", "Present When", "Day-Sensitive")
	fmt.Fprintln(out, "------------------------------------------------------------------")
	for _, a := range estimator.Catalog() {
		fmt.Fprintf(out, "%-16s  %8.1f  %-30s  %s\n", a.Name, a.PowerKW, a.PresentWhen, yesNo(a.DaySensitive))
	}

	fmt.Fprintln(out, "\nDay Multipliers:")
	fmt.Fprintln(out, "------------------------")
	fmt.Fprintf(out, "%-12s  %10s\n", "Day", "Multiplier")
	fmt.Fprintln(out, "------------------------")
	for _, day := range models.Week {
		fmt.Fprintf(out, "%-12s  %10.1f\n", day, estimator.Multiplier(day))
	}

	return nil
}

func printRoomFixtures(out io.Writer) error {
	fmt.Fprintln(out, "Room Fixtures:")
	fmt.Fprintln(out, "------------------------")
	fmt.Fprintf(out, "%-6s  %6s  %6s\n", "Room", "Fans", "Lights")
	fmt.Fprintln(out, "------------------------")
	for _, room := range models.RoomTypes {
		f, err := estimator.Fixtures(room)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-6s  %6d  %6d\n", room, f.Fans, f.Lights)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
