package models

import "strings"

// RoomType is the flat configuration ("1BHK", "2BHK", "3BHK")
type RoomType string

const (
	Room1BHK RoomType = "1BHK"
	Room2BHK RoomType = "2BHK"
	Room3BHK RoomType = "3BHK"
)

// RoomTypes lists the accepted room configurations in display order
var RoomTypes = []RoomType{Room1BHK, Room2BHK, Room3BHK}

// ParseRoomType normalizes user input such as "2bhk" to a RoomType.
// The returned value is not checked against RoomTypes.
func ParseRoomType(s string) RoomType {
	return RoomType(strings.ToUpper(strings.TrimSpace(s)))
}

// HouseType is the kind of dwelling
type HouseType string

const (
	HouseFlat     HouseType = "Flat"
	HouseTenament HouseType = "Tenament"
)

// HouseTypes lists the accepted house types in display order
var HouseTypes = []HouseType{HouseFlat, HouseTenament}

// Day is a weekday name, e.g. "Monday"
type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
	Sunday    Day = "Sunday"
)

// Week is the fixed Monday..Sunday ordering used for breakdowns
var Week = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// IsWeekend reports whether the day is Saturday or Sunday
func (d Day) IsWeekend() bool {
	return d == Saturday || d == Sunday
}

// HouseholdProfile describes the dwelling
type HouseholdProfile struct {
	RoomType  RoomType  `json:"room_type"`
	HouseType HouseType `json:"house_type"`
}

// ApplianceSet is the appliance inventory. ACCount is only meaningful when HasAC is set.
type ApplianceSet struct {
	HasAC             bool `json:"has_ac"`
	ACCount           int  `json:"ac_count"`
	HasFridge         bool `json:"has_fridge"`
	HasWashingMachine bool `json:"has_washing_machine"`
}

// ApplianceLineItem is one row of the appliance breakdown
type ApplianceLineItem struct {
	Name                      string  `json:"name"`
	Quantity                  int     `json:"quantity"`
	BasePowerKW               float64 `json:"base_power_kw"`
	BaseConsumptionKWh        float64 `json:"base_consumption_kwh"`
	DayAdjustedConsumptionKWh float64 `json:"day_adjusted_consumption_kwh"`
}

// DayConsumption is the estimated total for one day of the week
type DayConsumption struct {
	Day        Day     `json:"day"`
	Multiplier float64 `json:"multiplier"`
	TotalKWh   float64 `json:"total_kwh"`
}

// AverageMode selects how weekly and monthly averages are derived
type AverageMode string

const (
	// AverageLegacy projects the selected day back to a weekday baseline: total*7/multiplier
	AverageLegacy AverageMode = "legacy"
	// AverageCalendar sums the per-day breakdown: weekly = sum, monthly = sum*30/7
	AverageCalendar AverageMode = "calendar"
)

// ConsumptionResult is the output of one estimate
type ConsumptionResult struct {
	SelectedDay         Day                 `json:"selected_day"`
	DayMultiplier       float64             `json:"day_multiplier"`
	SelectedDayTotalKWh float64             `json:"selected_day_total_kwh"`
	PerDayBreakdown     []DayConsumption    `json:"per_day_breakdown"`
	LineItems           []ApplianceLineItem `json:"line_items"`
	WeeklyAverageKWh    float64             `json:"weekly_average_kwh"`
	MonthlyAverageKWh   float64             `json:"monthly_average_kwh"`
	AverageMode         AverageMode         `json:"average_mode"`
}
