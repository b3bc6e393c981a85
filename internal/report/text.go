package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	chartWidth = 40
	ruleWidth  = 86
)

// TextRenderer prints the report for a terminal
type TextRenderer struct{}

// NewTextRenderer returns a TextRenderer
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

func (r *TextRenderer) SupportedFormat() Format {
	return FormatText
}

func (r *TextRenderer) Render(w io.Writer, v *View) error {
	bw := bufio.NewWriter(w)
	rule := strings.Repeat("-", ruleWidth)

	fmt.Fprintln(bw, "Energy Consumption Results")
	fmt.Fprintln(bw, rule)
	fmt.Fprintf(bw, "%-22s %s\n", "Name:", v.Person.Name)
	fmt.Fprintf(bw, "%-22s %d\n", "Age:", v.Person.Age)
	fmt.Fprintf(bw, "%-22s %s\n", "Area:", v.Person.Area)
	fmt.Fprintf(bw, "%-22s %s\n", "City:", v.Person.City)
	fmt.Fprintf(bw, "%-22s %s\n", "House Type:", v.Profile.HouseType)
	fmt.Fprintf(bw, "%-22s %s\n", "Room Configuration:", v.RoomLabel())
	fmt.Fprintf(bw, "%-22s %s\n", "Selected Day:", v.Day)
	fmt.Fprintf(bw, "%-22s %s\n", "Day Usage Factor:", v.UsageFactor)

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Appliance Breakdown")
	fmt.Fprintln(bw, rule)
	fmt.Fprintf(bw, "%-16s %8s %16s %22s %20s\n", "Appliance", "Quantity", "Base Power (kW)", "Base Consumption (kWh)", "Day-Adjusted (kWh)")
	fmt.Fprintln(bw, rule)
	for _, item := range v.LineItems {
		fmt.Fprintf(bw, "%-16s %8d %16.1f %22.2f %20.2f\n",
			item.Name, item.Quantity, item.BasePowerKW, item.BaseConsumptionKWh, item.DayAdjustedConsumptionKWh)
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Total Energy Consumption")
	fmt.Fprintln(bw, rule)
	for _, m := range v.Metrics {
		fmt.Fprintf(bw, "%-26s %14s\n", m.Label, m.Value)
	}
	fmt.Fprintf(bw, "(averages: %s)\n", v.AverageMode)

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Weekly Energy Consumption Breakdown")
	fmt.Fprintln(bw, rule)
	fmt.Fprintf(bw, "%-12s %12s %26s\n", "Day", "Usage Factor", "Energy Consumption (kWh)")
	for _, d := range v.Week {
		fmt.Fprintf(bw, "%-12s %12.1f %26.2f\n", d.Day, d.Multiplier, d.TotalKWh)
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Daily Energy Consumption Chart")
	fmt.Fprintln(bw, rule)
	for _, b := range v.Chart {
		marker := " "
		if b.Selected {
			marker = "*"
		}
		n := int(b.Percent/100*chartWidth + 0.5)
		fmt.Fprintf(bw, "%s %-10s %-*s %6.2f\n", marker, b.Day, chartWidth, strings.Repeat("#", n), b.KWh)
	}
	if v.Highlight != "" {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, v.Highlight)
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Day-Specific Energy Saving Tips")
	fmt.Fprintln(bw, rule)
	for _, tip := range v.DayTips {
		fmt.Fprintf(bw, "  * %s\n", tip)
	}
	fmt.Fprintln(bw, "General Tips:")
	for _, tip := range v.GeneralTips {
		fmt.Fprintf(bw, "  * %s\n", tip)
	}

	fmt.Fprintln(bw, rule)
	fmt.Fprintln(bw, Disclaimer)

	return bw.Flush()
}
