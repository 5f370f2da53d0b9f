package services

import (
	"fmt"
	"math"

	"nutriplan-backend/models"
	"nutriplan-backend/utils"
)

// activityMultipliers is the single source of truth for TDEE scaling. An
// unrecognized level falls back to moderate instead of rejecting the profile.
var activityMultipliers = map[string]float64{
	"sedentary":  1.2,
	"light":      1.375,
	"moderate":   1.55,
	"active":     1.725,
	"veryActive": 1.9,
}

// goalMultipliers adjusts the activity-scaled calories toward the user's
// target. Unknown goals fall back to maintain.
var goalMultipliers = map[string]float64{
	"lose":     0.8,
	"maintain": 1.0,
	"gain":     1.15,
}

// macroSplits maps a goal to calorie percentages for protein/carbs/fat.
var macroSplits = map[string][3]int{
	"lose":     {40, 30, 30},
	"maintain": {30, 40, 30},
	"gain":     {30, 45, 25},
}

// NutritionService computes per-submission metrics. It holds no state and
// performs no I/O; identical profiles always produce identical metrics.
type NutritionService struct{}

func NewNutritionService() *NutritionService {
	return &NutritionService{}
}

// Compute validates the profile and derives BMI, BMI category, BMR
// (Mifflin-St Jeor), the activity- and goal-adjusted daily calorie target, and
// the macro split. Validation failures return ErrInvalidProfile with the
// offending field; no partial result is ever returned.
func (s *NutritionService) Compute(profile models.UserProfile) (models.NutritionMetrics, error) {
	if err := validateProfile(profile); err != nil {
		return models.NutritionMetrics{}, err
	}

	bmi, err := utils.CalculateBMI(profile.HeightCm, profile.WeightKg)
	if err != nil {
		return models.NutritionMetrics{}, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}

	bmr := basalMetabolicRate(profile)

	am, ok := activityMultipliers[profile.ActivityLevel]
	if !ok {
		am = activityMultipliers["moderate"]
	}
	gm, ok := goalMultipliers[profile.Goal]
	if !ok {
		gm = goalMultipliers["maintain"]
	}

	dailyCalories := int(math.Round(bmr * am * gm))

	return models.NutritionMetrics{
		BMI:           bmi,
		BMICategory:   utils.BMICategory(bmi),
		BMR:           bmr,
		DailyCalories: dailyCalories,
		Macros:        macroTargets(profile.Goal, dailyCalories),
	}, nil
}

// basalMetabolicRate applies Mifflin-St Jeor. Male gets the +5 constant;
// female and other share the -161 branch.
func basalMetabolicRate(p models.UserProfile) float64 {
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Gender == "male" {
		return bmr + 5
	}
	return bmr - 161
}

// macroTargets converts the calorie target into a goal-dependent
// protein/carbs/fat split, with grams at 4/4/9 kcal per gram.
func macroTargets(goal string, dailyCalories int) models.MacroTargets {
	split, ok := macroSplits[goal]
	if !ok {
		split = macroSplits["maintain"]
	}
	kcal := float64(dailyCalories)
	return models.MacroTargets{
		ProteinPercent: split[0],
		CarbsPercent:   split[1],
		FatPercent:     split[2],
		ProteinGrams:   int(math.Round(kcal * float64(split[0]) / 100 / 4)),
		CarbsGrams:     int(math.Round(kcal * float64(split[1]) / 100 / 4)),
		FatGrams:       int(math.Round(kcal * float64(split[2]) / 100 / 9)),
	}
}

func validateProfile(p models.UserProfile) error {
	switch {
	case p.Age < 12 || p.Age > 120:
		return fmt.Errorf("%w: age must be between 12 and 120", ErrInvalidProfile)
	case p.WeightKg < 30 || p.WeightKg > 300:
		return fmt.Errorf("%w: weight must be between 30 and 300 kg", ErrInvalidProfile)
	case p.HeightCm < 100 || p.HeightCm > 250:
		return fmt.Errorf("%w: height must be between 100 and 250 cm", ErrInvalidProfile)
	}
	return nil
}
