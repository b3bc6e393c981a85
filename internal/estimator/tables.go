package estimator

import (
	"fmt"

	"github.com/jgoulah/energycalc/pkg/models"
)

// Power ratings in kW. One unit of rating is counted as one kWh per day.
const (
	FanPowerKW            = 0.4
	LightPowerKW          = 0.8
	ACPowerKW             = 3.0
	FridgePowerKW         = 4.0
	WashingMachinePowerKW = 2.0

	// DefaultDayMultiplier applies to day names missing from the multiplier table
	DefaultDayMultiplier = 1.0
)

// Appliance names as shown in breakdown tables
const (
	ApplianceFans           = "Fans"
	ApplianceLights         = "Lights"
	ApplianceAC             = "Air Conditioner"
	ApplianceFridge         = "Refrigerator"
	ApplianceWashingMachine = "Washing Machine"
)

// RoomFixtures is the number of fans and lights assumed for a room configuration
type RoomFixtures struct {
	Fans   int
	Lights int
}

var roomFixtures = map[models.RoomType]RoomFixtures{
	models.Room1BHK: {Fans: 2, Lights: 2},
	models.Room2BHK: {Fans: 3, Lights: 3},
	models.Room3BHK: {Fans: 3, Lights: 3},
}

var dayMultipliers = map[models.Day]float64{
	models.Monday:    1.0,
	models.Tuesday:   1.0,
	models.Wednesday: 1.0,
	models.Thursday:  1.0,
	models.Friday:    1.1, // slightly higher usage
	models.Saturday:  1.3, // weekend, most time at home
	models.Sunday:    1.2,
}

// ApplianceSpec describes one entry of the appliance catalog
type ApplianceSpec struct {
	Name         string
	PowerKW      float64
	PresentWhen  string
	DaySensitive bool
}

var catalog = []ApplianceSpec{
	{Name: ApplianceFans, PowerKW: FanPowerKW, PresentWhen: "always (count from room type)", DaySensitive: true},
	{Name: ApplianceLights, PowerKW: LightPowerKW, PresentWhen: "always (count from room type)", DaySensitive: true},
	{Name: ApplianceAC, PowerKW: ACPowerKW, PresentWhen: "has AC (per unit)", DaySensitive: true},
	{Name: ApplianceFridge, PowerKW: FridgePowerKW, PresentWhen: "has fridge", DaySensitive: false},
	{Name: ApplianceWashingMachine, PowerKW: WashingMachinePowerKW, PresentWhen: "has washing machine", DaySensitive: true},
}

// Fixtures returns the fan and light count for a room configuration
func Fixtures(room models.RoomType) (RoomFixtures, error) {
	f, ok := roomFixtures[room]
	if !ok {
		return RoomFixtures{}, fmt.Errorf("%w: %q", ErrInvalidRoomType, room)
	}
	return f, nil
}

// Multiplier returns the usage multiplier for a day, falling back to DefaultDayMultiplier
// for unrecognized names
func Multiplier(day models.Day) float64 {
	if m, ok := dayMultipliers[day]; ok {
		return m
	}
	return DefaultDayMultiplier
}

// IsKnownDay reports whether the day has an entry in the multiplier table
func IsKnownDay(day models.Day) bool {
	_, ok := dayMultipliers[day]
	return ok
}

// Catalog returns a copy of the appliance catalog in display order
func Catalog() []ApplianceSpec {
	out := make([]ApplianceSpec, len(catalog))
	copy(out, catalog)
	return out
}
