package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jgoulah/energycalc/internal/calculation"
	"github.com/jgoulah/energycalc/internal/estimator"
	"github.com/jgoulah/energycalc/internal/form"
	"github.com/jgoulah/energycalc/internal/report"
	"github.com/jgoulah/energycalc/pkg/models"
)

var (
	estimateName        string
	estimateAge         int
	estimateArea        string
	estimateCity        string
	estimateHouse       string
	estimateRooms       string
	estimateDay         string
	estimateAC          int
	estimateFridge      bool
	estimateWashing     bool
	estimateInteractive bool
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Calculate energy consumption for a household",
	Long: `Calculates the estimated energy consumption for the selected day, the week and the month
and prints appliance and per-day breakdowns with saving tips.

Values not given as flags come from the config file defaults. Use --interactive to be
prompted for every field.`,
	Example: `  energycalc estimate --name "John Doe" --age 25 --area Downtown --city Mumbai --rooms 2BHK --day Saturday --ac 2
  energycalc estimate --interactive`,
	Args: cobra.NoArgs,
	RunE: runEstimate,
}

func init() {
	f := estimateCmd.Flags()
	f.StringVar(&estimateName, "name", "", "your name")
	f.IntVar(&estimateAge, "age", 0, "your age (1-120)")
	f.StringVar(&estimateArea, "area", "", "your area")
	f.StringVar(&estimateCity, "city", "", "your city")
	f.StringVar(&estimateHouse, "house", "", "house type: Flat or Tenament")
	f.StringVar(&estimateRooms, "rooms", "", "room type: 1BHK, 2BHK or 3BHK")
	f.StringVar(&estimateDay, "day", "", "day of the week, e.g. Saturday")
	f.IntVar(&estimateAC, "ac", 0, "number of ACs (0 for none, max 10)")
	f.BoolVar(&estimateFridge, "fridge", true, "household has a fridge")
	f.BoolVar(&estimateWashing, "washing-machine", true, "household has a washing machine")
	f.BoolVarP(&estimateInteractive, "interactive", "i", false, "prompt for every field")
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	in := estimateInput(cmd)

	if estimateInteractive {
		p := &form.Prompter{Stdin: os.Stdin, Stdout: os.Stdout}
		collected, err := p.Collect(in)
		if err != nil {
			return err
		}
		in = collected
	}

	svc := calculation.NewService(newEstimator(), logger)
	outcome, err := svc.Calculate(in)
	if err != nil {
		return friendlyError(err)
	}

	return report.NewTextRenderer().Render(cmd.OutOrStdout(), outcome.View())
}

// estimateInput merges flags over config defaults. Only flags the user set override.
func estimateInput(cmd *cobra.Command) form.Input {
	in := formDefaults()
	flags := cmd.Flags()

	if flags.Changed("name") {
		in.Name = estimateName
	}
	if flags.Changed("age") {
		in.Age = estimateAge
	}
	if flags.Changed("area") {
		in.Area = estimateArea
	}
	if flags.Changed("city") {
		in.City = estimateCity
	}
	if flags.Changed("house") {
		in.HouseType = models.HouseType(estimateHouse)
	}
	if flags.Changed("rooms") {
		in.RoomType = models.ParseRoomType(estimateRooms)
	}
	if flags.Changed("day") {
		in.Day = models.Day(estimateDay)
	}
	if flags.Changed("ac") {
		in.HasAC = estimateAC > 0
		in.ACCount = estimateAC
	}
	if flags.Changed("fridge") {
		in.HasFridge = estimateFridge
	}
	if flags.Changed("washing-machine") {
		in.HasWashingMachine = estimateWashing
	}

	return in
}

// friendlyError turns validation errors into the message shown by the form
func friendlyError(err error) error {
	switch {
	case errors.Is(err, form.ErrMissingRequiredField), errors.Is(err, form.ErrInvalidField):
		return errors.New(form.UserMessage(err))
	case errors.Is(err, estimator.ErrInvalidRoomType):
		return fmt.Errorf("invalid room type selected: %w", err)
	default:
		return err
	}
}
