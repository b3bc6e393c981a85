// Package calculation runs one form submission through validation and the estimator.
package calculation

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jgoulah/energycalc/internal/estimator"
	"github.com/jgoulah/energycalc/internal/form"
	"github.com/jgoulah/energycalc/internal/report"
	"github.com/jgoulah/energycalc/pkg/models"
)

// Outcome is a completed calculation
type Outcome struct {
	ID     uuid.UUID
	Input  form.Input
	Result *models.ConsumptionResult
}

// View builds the display model for the outcome
func (o *Outcome) View() *report.View {
	person := report.Person{
		Name: o.Input.Name,
		Age:  o.Input.Age,
		Area: o.Input.Area,
		City: o.Input.City,
	}
	return report.NewView(person, o.Input.Profile(), o.Result)
}

// Service validates input and runs the estimator
type Service struct {
	validator *form.Validator
	estimator *estimator.Estimator
	logger    *zap.Logger
}

// NewService creates a Service. A nil logger disables logging.
func NewService(est *estimator.Estimator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		validator: form.NewValidator(),
		estimator: est,
		logger:    logger.Named("calculation"),
	}
}

// Calculate validates the input and estimates consumption. Nothing is computed when
// validation fails.
func (s *Service) Calculate(in form.Input) (*Outcome, error) {
	id := uuid.New()
	in = in.Normalize()

	// Only non-personal fields are logged
	logger := s.logger.With(
		zap.String("calculation_id", id.String()),
		zap.String("room_type", string(in.RoomType)),
		zap.String("day", string(in.Day)),
	)

	if err := s.validator.Validate(in); err != nil {
		logger.Info("input rejected", zap.Error(err))
		return nil, err
	}

	res, err := s.estimator.Estimate(in.Request())
	if err != nil {
		logger.Warn("estimate failed", zap.Error(err))
		return nil, fmt.Errorf("estimating consumption: %w", err)
	}

	logger.Debug("estimate complete",
		zap.Bool("has_ac", in.HasAC),
		zap.Int("ac_count", in.ACCount),
		zap.Bool("has_fridge", in.HasFridge),
		zap.Bool("has_washing_machine", in.HasWashingMachine),
		zap.Float64("day_kwh", res.SelectedDayTotalKWh),
		zap.Float64("weekly_kwh", res.WeeklyAverageKWh),
		zap.Float64("monthly_kwh", res.MonthlyAverageKWh),
		zap.String("average_mode", string(res.AverageMode)),
	)

	return &Outcome{ID: id, Input: in, Result: res}, nil
}
