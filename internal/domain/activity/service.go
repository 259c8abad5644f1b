package activity

import (
	"context"
	"log/slog"
	"math"

	apperrors "github.com/yanqian/carbon-planner/pkg/errors"
)

// Kind identifies one loggable activity. The set is closed; unknown keys
// are a data-integrity error, never a silent default.
type Kind string

const (
	KindCarTravel      Kind = "car_travel"      // km
	KindBikeTravel     Kind = "bike_travel"     // km
	KindBusTravel      Kind = "bus_travel"      // km
	KindTrainTravel    Kind = "train_travel"    // km
	KindFlight         Kind = "flight"          // km
	KindElectricity    Kind = "electricity"     // kWh
	KindLPG            Kind = "lpg"             // kg
	KindMeatMeal       Kind = "meat_meal"       // meals
	KindVegetarianMeal Kind = "vegetarian_meal" // meals
	KindLandfillWaste  Kind = "landfill_waste"  // kg
)

// Request is one logged activity to convert to CO2.
type Request struct {
	Activity Kind    `json:"activity"`
	Quantity float64 `json:"quantity"`
}

// Response carries the computed emission for the activity.
type Response struct {
	Activity Kind    `json:"activity"`
	Quantity float64 `json:"quantity"`
	CO2Kg    float64 `json:"co2Kg"`
}

// Service converts logged activities into CO2 figures.
type Service interface {
	Estimate(ctx context.Context, req Request) (Response, error)
}

type service struct {
	logger *slog.Logger
}

// NewService is a wire provider for the activity domain.
func NewService(logger *slog.Logger) Service {
	return &service{logger: logger.With("component", "activity.service")}
}

func (s *service) Estimate(_ context.Context, req Request) (Response, error) {
	if req.Quantity < 0 {
		return Response{}, apperrors.Wrap("invalid_input", "quantity cannot be negative", nil)
	}
	factor, ok := emissionFactor(req.Activity)
	if !ok {
		return Response{}, apperrors.Wrap("unknown_activity", "unknown activity: "+string(req.Activity), nil)
	}
	co2 := math.Round(req.Quantity*factor*100) / 100
	return Response{Activity: req.Activity, Quantity: req.Quantity, CO2Kg: co2}, nil
}

// emissionFactor returns kg CO2 per unit of the activity. Transport factors
// match the footprint estimator's per-km figures.
func emissionFactor(kind Kind) (float64, bool) {
	switch kind {
	case KindCarTravel:
		return 0.192, true
	case KindBikeTravel:
		return 0.103, true
	case KindBusTravel:
		return 0.041, true
	case KindTrainTravel:
		return 0.035, true
	case KindFlight:
		return 0.255, true
	case KindElectricity:
		return 0.85, true
	case KindLPG:
		return 2.98, true
	case KindMeatMeal:
		return 3.2, true
	case KindVegetarianMeal:
		return 1.1, true
	case KindLandfillWaste:
		return 0.57, true
	}
	return 0, false
}
