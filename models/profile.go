package models

// UserProfile is the ephemeral input to the nutrition calculator. It is never
// persisted; every submission is recomputed from scratch.
type UserProfile struct {
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`         // male | female | other
	WeightKg      float64 `json:"weight_kg"`
	HeightCm      float64 `json:"height_cm"`
	ActivityLevel string  `json:"activity_level"` // sedentary | light | moderate | active | veryActive
	Goal          string  `json:"goal"`           // lose | maintain | gain
}

// NutritionMetrics is the derived result for one profile submission.
type NutritionMetrics struct {
	BMI           float64      `json:"bmi"`          // rounded to 1 decimal
	BMICategory   string       `json:"bmi_category"`
	BMR           float64      `json:"bmr"`
	DailyCalories int          `json:"daily_calories"`
	Macros        MacroTargets `json:"macros"`
}

// MacroTargets splits the daily calorie target into protein/carbs/fat, both as
// percentages of calories and as gram equivalents.
type MacroTargets struct {
	ProteinPercent int `json:"protein_percent"`
	CarbsPercent   int `json:"carbs_percent"`
	FatPercent     int `json:"fat_percent"`
	ProteinGrams   int `json:"protein_grams"`
	CarbsGrams     int `json:"carbs_grams"`
	FatGrams       int `json:"fat_grams"`
}
