package services

import (
	"testing"

	"nutriplan-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() models.UserProfile {
	return models.UserProfile{
		Age:           30,
		Gender:        "male",
		WeightKg:      80,
		HeightCm:      180,
		ActivityLevel: "moderate",
		Goal:          "maintain",
	}
}

func TestComputeBMI(t *testing.T) {
	svc := NewNutritionService()

	profile := validProfile()
	profile.WeightKg = 70
	profile.HeightCm = 175

	metrics, err := svc.Compute(profile)
	require.NoError(t, err)
	assert.Equal(t, 22.9, metrics.BMI)
	assert.Equal(t, "Normal weight", metrics.BMICategory)
}

func TestComputeBMICategoryBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		bmi      float64
		category string
	}{
		{"exactly 18.5 is normal", 74, 200, 18.5, "Normal weight"},
		{"exactly 25.0 is overweight", 100, 200, 25.0, "Overweight"},
		{"exactly 30.0 is obesity", 120, 200, 30.0, "Obesity"},
		{"below 18.5 is underweight", 50, 180, 15.4, "Underweight"},
	}

	svc := NewNutritionService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := validProfile()
			profile.WeightKg = tt.weightKg
			profile.HeightCm = tt.heightCm

			metrics, err := svc.Compute(profile)
			require.NoError(t, err)
			assert.Equal(t, tt.bmi, metrics.BMI)
			assert.Equal(t, tt.category, metrics.BMICategory)
		})
	}
}

func TestComputeCalories(t *testing.T) {
	svc := NewNutritionService()

	t.Run("male moderate maintain", func(t *testing.T) {
		metrics, err := svc.Compute(validProfile())
		require.NoError(t, err)
		// 10*80 + 6.25*180 - 5*30 + 5 = 1805
		assert.Equal(t, 1805.0, metrics.BMR)
		// round(1805 * 1.55 * 1.0)
		assert.Equal(t, 2798, metrics.DailyCalories)
	})

	t.Run("female sedentary lose", func(t *testing.T) {
		profile := models.UserProfile{
			Age:           25,
			Gender:        "female",
			WeightKg:      60,
			HeightCm:      165,
			ActivityLevel: "sedentary",
			Goal:          "lose",
		}
		metrics, err := svc.Compute(profile)
		require.NoError(t, err)
		// 10*60 + 6.25*165 - 5*25 - 161 = 1226.25
		assert.Equal(t, 1226.25, metrics.BMR)
		// round(1226.25 * 1.2 * 0.8)
		assert.Equal(t, 1177, metrics.DailyCalories)
	})

	t.Run("other gender uses female constant", func(t *testing.T) {
		profile := validProfile()
		profile.Gender = "other"
		metrics, err := svc.Compute(profile)
		require.NoError(t, err)
		assert.Equal(t, 1805.0-166.0, metrics.BMR)
	})
}

func TestComputeMultiplierFallbacks(t *testing.T) {
	svc := NewNutritionService()

	base, err := svc.Compute(validProfile())
	require.NoError(t, err)

	unknownActivity := validProfile()
	unknownActivity.ActivityLevel = "extreme"
	got, err := svc.Compute(unknownActivity)
	require.NoError(t, err)
	assert.Equal(t, base.DailyCalories, got.DailyCalories, "unknown activity should fall back to moderate")

	unknownGoal := validProfile()
	unknownGoal.Goal = "bulk"
	got, err = svc.Compute(unknownGoal)
	require.NoError(t, err)
	assert.Equal(t, base.DailyCalories, got.DailyCalories, "unknown goal should fall back to maintain")
	assert.Equal(t, base.Macros, got.Macros)
}

func TestComputeMacroTargets(t *testing.T) {
	svc := NewNutritionService()

	metrics, err := svc.Compute(validProfile())
	require.NoError(t, err)

	m := metrics.Macros
	assert.Equal(t, 100, m.ProteinPercent+m.CarbsPercent+m.FatPercent)
	assert.Equal(t, 210, m.ProteinGrams) // 2798 * 0.30 / 4
	assert.Equal(t, 280, m.CarbsGrams)   // 2798 * 0.40 / 4
	assert.Equal(t, 93, m.FatGrams)      // 2798 * 0.30 / 9

	// gram equivalents reconstruct the calorie target within rounding error
	kcal := m.ProteinGrams*4 + m.CarbsGrams*4 + m.FatGrams*9
	assert.InDelta(t, metrics.DailyCalories, kcal, 9)
}

func TestComputeValidation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*models.UserProfile)
	}{
		{"age too low", func(p *models.UserProfile) { p.Age = 11 }},
		{"age too high", func(p *models.UserProfile) { p.Age = 121 }},
		{"weight too low", func(p *models.UserProfile) { p.WeightKg = 29.9 }},
		{"weight too high", func(p *models.UserProfile) { p.WeightKg = 300.1 }},
		{"height too low", func(p *models.UserProfile) { p.HeightCm = 99 }},
		{"height too high", func(p *models.UserProfile) { p.HeightCm = 251 }},
		{"zero value profile", func(p *models.UserProfile) { *p = models.UserProfile{} }},
	}

	svc := NewNutritionService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := validProfile()
			tt.modify(&profile)

			metrics, err := svc.Compute(profile)
			require.ErrorIs(t, err, ErrInvalidProfile)
			assert.Equal(t, models.NutritionMetrics{}, metrics, "no partial result on validation failure")
		})
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	svc := NewNutritionService()
	profile := validProfile()

	first, err := svc.Compute(profile)
	require.NoError(t, err)
	second, err := svc.Compute(profile)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
