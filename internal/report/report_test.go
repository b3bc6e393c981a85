package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgoulah/energycalc/internal/estimator"
	"github.com/jgoulah/energycalc/pkg/models"
)

var person = Person{Name: "John <Doe>", Age: 25, Area: "Downtown", City: "Mumbai"}

func view(t *testing.T, day models.Day) *View {
	t.Helper()
	res, err := estimator.Estimate(models.Room2BHK, true, 2, true, true, day)
	require.NoError(t, err)
	profile := models.HouseholdProfile{RoomType: models.Room2BHK, HouseType: models.HouseTenament}
	return NewView(person, profile, res)
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()
	tests := map[float64]string{
		0:                  "0.0",
		15.600000000000001: "15.6",
		19.08:              "19.1",
		440.3076923:        "440.3",
		1234.56:            "1,234.6",
		-2.25:              "-2.2",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatNumber(in), in)
	}
	assert.Equal(t, "2.9 kWh", FormatKWh(2.88))
}

func TestNewView(t *testing.T) {
	t.Parallel()
	v := view(t, models.Saturday)

	assert.Equal(t, "1.3x", v.UsageFactor)
	assert.Equal(t, "2BHK", v.RoomLabel())
	assert.True(t, v.Weekend)
	assert.Equal(t, DayTips(models.Saturday), v.DayTips)
	assert.Equal(t, models.AverageLegacy, v.AverageMode)

	require.Len(t, v.Metrics, 3)
	assert.Equal(t, Metric{Label: "Saturday Consumption", Value: "19.1 kWh"}, v.Metrics[0])
	assert.Equal(t, Metric{Label: "Weekly Avg Consumption", Value: "102.7 kWh"}, v.Metrics[1])
	assert.Equal(t, Metric{Label: "Monthly Avg Consumption", Value: "440.3 kWh"}, v.Metrics[2])

	require.Len(t, v.Chart, 7)
	for _, b := range v.Chart {
		assert.Equal(t, b.Day == models.Saturday, b.Selected, b.Day)
		if b.Selected {
			assert.InDelta(t, 100.0, b.Percent, 1e-9)
		}
	}
	assert.Equal(t, "Saturday energy consumption: 19.1 kWh", v.Highlight)
}

func TestNewView_UsageFactorOnWeekday(t *testing.T) {
	t.Parallel()
	v := view(t, models.Monday)
	assert.Equal(t, "1.0x", v.UsageFactor)
	assert.False(t, v.Weekend)
}

func TestDayTips(t *testing.T) {
	t.Parallel()
	for _, day := range models.Week {
		tips := DayTips(day)
		require.Len(t, tips, 4)
		if day == models.Saturday || day == models.Sunday {
			assert.Contains(t, tips[0], "Weekend usage", day)
		} else {
			assert.Contains(t, tips[0], "Weekday usage", day)
		}
	}
	assert.Len(t, GeneralTips(), 4)

	tips := DayTips(models.Sunday)
	tips[0] = "changed"
	assert.NotEqual(t, "changed", DayTips(models.Sunday)[0])
}

func TestTextRenderer(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := NewTextRenderer()
	assert.Equal(t, FormatText, r.SupportedFormat())
	require.NoError(t, r.Render(&buf, view(t, models.Sunday)))

	out := buf.String()
	for _, want := range []string{
		"Energy Consumption Results",
		"John <Doe>",
		"Tenament",
		"Room Configuration:    2BHK",
		"Day Usage Factor:      1.2x",
		"Air Conditioner",
		"Refrigerator",
		"Washing Machine",
		"Sunday Consumption",
		"17.9 kWh",
		"Weekly Energy Consumption Breakdown",
		"Weekend usage is typically higher",
		"General Tips:",
		Disclaimer,
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Weekday usage")
	assert.Equal(t, 1, strings.Count(out, "* Sunday"))
}

func TestHTMLRenderer(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := NewHTMLRenderer()
	assert.Equal(t, FormatHTML, r.SupportedFormat())
	require.NoError(t, r.Render(&buf, view(t, models.Tuesday)))

	out := buf.String()
	assert.Contains(t, out, "John &lt;Doe&gt;")
	assert.NotContains(t, out, "John <Doe>")
	assert.Contains(t, out, "<td>Air Conditioner</td><td>2</td><td>3.0</td><td>6.00</td><td>6.00</td>")
	assert.Contains(t, out, `class="bar selected"`)
	assert.Contains(t, out, "Weekday usage is generally lower")
	assert.Contains(t, out, "Tuesday energy consumption: 15.6 kWh")
}
