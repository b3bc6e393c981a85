package estimator

import (
	"fmt"
	"strings"

	"github.com/jgoulah/energycalc/pkg/models"
)

const (
	daysPerWeek  = 7.0
	daysPerMonth = 30.0
)

// Request carries the inputs of one estimate
type Request struct {
	Profile    models.HouseholdProfile
	Appliances models.ApplianceSet
	Day        models.Day
}

// Estimator computes consumption results. The zero value is not usable; use New.
type Estimator struct {
	averageMode models.AverageMode
}

// Option configures an Estimator
type Option func(*Estimator)

// WithAverageMode selects how weekly and monthly averages are derived.
// An empty mode keeps the default.
func WithAverageMode(mode models.AverageMode) Option {
	return func(e *Estimator) {
		if mode != "" {
			e.averageMode = mode
		}
	}
}

// New creates an Estimator using legacy averages unless overridden by options
func New(opts ...Option) *Estimator {
	e := Estimator{
		averageMode: models.AverageLegacy,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return &e
}

// AverageMode returns the configured average mode
func (e *Estimator) AverageMode() models.AverageMode {
	return e.averageMode
}

// Estimate computes the consumption result for a single request.
// It fails with ErrInvalidRoomType when the room configuration is unknown.
func (e *Estimator) Estimate(req Request) (*models.ConsumptionResult, error) {
	fixtures, err := Fixtures(req.Profile.RoomType)
	if err != nil {
		return nil, err
	}

	fans := float64(fixtures.Fans)
	lights := float64(fixtures.Lights)
	baseEnergy := fans*FanPowerKW + lights*LightPowerKW

	var acEnergy float64
	if req.Appliances.HasAC {
		acEnergy = float64(req.Appliances.ACCount) * ACPowerKW
	}

	var washingEnergy float64
	if req.Appliances.HasWashingMachine {
		washingEnergy = WashingMachinePowerKW
	}

	// Refrigerator runs continuously and is never scaled by the day multiplier
	var fridgeEnergy float64
	if req.Appliances.HasFridge {
		fridgeEnergy = FridgePowerKW
	}

	variable := baseEnergy + acEnergy + washingEnergy
	multiplier := Multiplier(req.Day)
	dailyTotal := variable*multiplier + fridgeEnergy

	breakdown := make([]models.DayConsumption, 0, len(models.Week))
	for _, day := range models.Week {
		m := Multiplier(day)
		breakdown = append(breakdown, models.DayConsumption{
			Day:        day,
			Multiplier: m,
			TotalKWh:   variable*m + fridgeEnergy,
		})
	}

	result := &models.ConsumptionResult{
		SelectedDay:         req.Day,
		DayMultiplier:       multiplier,
		SelectedDayTotalKWh: dailyTotal,
		PerDayBreakdown:     breakdown,
		LineItems:           lineItems(fixtures, req.Appliances, multiplier),
		AverageMode:         e.averageMode,
	}

	switch e.averageMode {
	case models.AverageCalendar:
		var weekly float64
		for _, d := range breakdown {
			weekly += d.TotalKWh
		}
		result.WeeklyAverageKWh = weekly
		result.MonthlyAverageKWh = weekly * daysPerMonth / daysPerWeek
	default:
		result.AverageMode = models.AverageLegacy
		result.WeeklyAverageKWh = dailyTotal * daysPerWeek / multiplier
		result.MonthlyAverageKWh = dailyTotal * daysPerMonth / multiplier
	}

	return result, nil
}

// Estimate computes a result with legacy averages
func Estimate(room models.RoomType, hasAC bool, acCount int, hasFridge, hasWashingMachine bool, day models.Day) (*models.ConsumptionResult, error) {
	return New().Estimate(Request{
		Profile: models.HouseholdProfile{RoomType: room},
		Appliances: models.ApplianceSet{
			HasAC:             hasAC,
			ACCount:           acCount,
			HasFridge:         hasFridge,
			HasWashingMachine: hasWashingMachine,
		},
		Day: day,
	})
}

// ParseAverageMode converts a config value to an AverageMode. Empty means legacy.
func ParseAverageMode(s string) (models.AverageMode, error) {
	switch models.AverageMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", models.AverageLegacy:
		return models.AverageLegacy, nil
	case models.AverageCalendar:
		return models.AverageCalendar, nil
	default:
		return "", fmt.Errorf("%w: %q (use legacy or calendar)", ErrInvalidAverageMode, s)
	}
}

func lineItems(fixtures RoomFixtures, appliances models.ApplianceSet, multiplier float64) []models.ApplianceLineItem {
	items := []models.ApplianceLineItem{
		dayAdjusted(ApplianceFans, fixtures.Fans, FanPowerKW, multiplier),
		dayAdjusted(ApplianceLights, fixtures.Lights, LightPowerKW, multiplier),
	}

	if appliances.HasAC {
		items = append(items, dayAdjusted(ApplianceAC, appliances.ACCount, ACPowerKW, multiplier))
	}

	if appliances.HasFridge {
		items = append(items, models.ApplianceLineItem{
			Name:                      ApplianceFridge,
			Quantity:                  1,
			BasePowerKW:               FridgePowerKW,
			BaseConsumptionKWh:        FridgePowerKW,
			DayAdjustedConsumptionKWh: FridgePowerKW,
		})
	}

	if appliances.HasWashingMachine {
		items = append(items, dayAdjusted(ApplianceWashingMachine, 1, WashingMachinePowerKW, multiplier))
	}

	return items
}

func dayAdjusted(name string, quantity int, powerKW, multiplier float64) models.ApplianceLineItem {
	base := float64(quantity) * powerKW
	return models.ApplianceLineItem{
		Name:                      name,
		Quantity:                  quantity,
		BasePowerKW:               powerKW,
		BaseConsumptionKWh:        base,
		DayAdjustedConsumptionKWh: base * multiplier,
	}
}
