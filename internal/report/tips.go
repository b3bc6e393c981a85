package report

import "github.com/jgoulah/energycalc/pkg/models"

var weekendTips = []string{
	"Weekend usage is typically higher due to more time spent at home",
	"Consider using natural light during daytime to reduce lighting costs",
	"Plan energy-intensive activities (washing, ironing) during off-peak hours",
	"Use timers for appliances to avoid unnecessary usage",
}

var weekdayTips = []string{
	"Weekday usage is generally lower due to work/school schedules",
	"Turn off lights and fans when leaving for work",
	"Use programmable thermostats to optimize AC usage",
	"Consider running washing machine/dishwasher during off-peak hours",
}

var generalTips = []string{
	"Use LED bulbs instead of incandescent bulbs to save up to 80% energy",
	"Set your AC temperature to 24°C or higher for optimal efficiency",
	"Unplug appliances when not in use to avoid phantom power consumption",
	"Regular maintenance of appliances improves their efficiency",
}

// Disclaimer is printed under every report
const Disclaimer = "This calculator provides estimates based on typical appliance power consumption. " +
	"Actual consumption may vary based on usage patterns and appliance efficiency."

// DayTips returns the advice list for the selected day
func DayTips(day models.Day) []string {
	if day.IsWeekend() {
		return clone(weekendTips)
	}
	return clone(weekdayTips)
}

// GeneralTips returns advice that applies to every day
func GeneralTips() []string {
	return clone(generalTips)
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
