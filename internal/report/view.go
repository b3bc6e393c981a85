// Package report turns a consumption result into tables, a per-day chart and advice text.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/jgoulah/energycalc/pkg/models"
)

// Format identifies a renderer
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
)

// Renderer writes a View in one output format
type Renderer interface {
	SupportedFormat() Format
	Render(w io.Writer, v *View) error
}

// Person is the echoed identity part of the form
type Person struct {
	Name string
	Age  int
	Area string
	City string
}

// Metric is one headline figure
type Metric struct {
	Label string
	Value string
}

// Bar is one bar of the per-day chart. Percent is relative to the largest day.
type Bar struct {
	Day      models.Day
	KWh      float64
	Percent  float64
	Selected bool
}

// View is everything a renderer needs, already formatted where formatting is shared
type View struct {
	Person      Person
	Profile     models.HouseholdProfile
	Day         models.Day
	UsageFactor string
	LineItems   []models.ApplianceLineItem
	Metrics     []Metric
	Week        []models.DayConsumption
	Chart       []Bar
	Highlight   string
	Weekend     bool
	DayTips     []string
	GeneralTips []string
	AverageMode models.AverageMode
}

// NewView builds the view for one result
func NewView(person Person, profile models.HouseholdProfile, res *models.ConsumptionResult) *View {
	v := &View{
		Person:      person,
		Profile:     profile,
		Day:         res.SelectedDay,
		UsageFactor: fmt.Sprintf("%.1fx", res.DayMultiplier),
		LineItems:   res.LineItems,
		Week:        res.PerDayBreakdown,
		Weekend:     res.SelectedDay.IsWeekend(),
		DayTips:     DayTips(res.SelectedDay),
		GeneralTips: GeneralTips(),
		AverageMode: res.AverageMode,
	}

	v.Metrics = []Metric{
		{Label: fmt.Sprintf("%s Consumption", res.SelectedDay), Value: FormatKWh(res.SelectedDayTotalKWh)},
		{Label: "Weekly Avg Consumption", Value: FormatKWh(res.WeeklyAverageKWh)},
		{Label: "Monthly Avg Consumption", Value: FormatKWh(res.MonthlyAverageKWh)},
	}

	var peak float64
	for _, d := range res.PerDayBreakdown {
		if d.TotalKWh > peak {
			peak = d.TotalKWh
		}
	}
	for _, d := range res.PerDayBreakdown {
		bar := Bar{Day: d.Day, KWh: d.TotalKWh, Selected: d.Day == res.SelectedDay}
		if peak > 0 {
			bar.Percent = d.TotalKWh / peak * 100
		}
		v.Chart = append(v.Chart, bar)
		if bar.Selected {
			v.Highlight = fmt.Sprintf("%s energy consumption: %s", d.Day, FormatKWh(d.TotalKWh))
		}
	}

	return v
}

// RoomLabel is the room configuration as displayed, e.g. "2BHK"
func (v *View) RoomLabel() string {
	return strings.ToUpper(string(v.Profile.RoomType))
}

// FormatKWh formats a figure with one decimal and thousands separators, e.g. "1,234.5 kWh"
func FormatKWh(v float64) string {
	return FormatNumber(v) + " kWh"
}

// FormatNumber formats with one decimal and thousands separators
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	whole, frac, _ := strings.Cut(s, ".")
	sign := ""
	if strings.HasPrefix(whole, "-") {
		sign, whole = "-", whole[1:]
	}
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return s
	}
	return sign + humanize.Comma(n) + "." + frac
}
