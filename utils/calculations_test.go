package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBMI(t *testing.T) {
	assert.Equal(t, 22.9, CalculateBMI(175, 70))
	assert.Equal(t, 0.0, CalculateBMI(0, 70))
	assert.Equal(t, 0.0, CalculateBMI(175, -1))
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "недостаточная масса тела", BMICategory(17))
	assert.Equal(t, "нормальная масса тела", BMICategory(22))
	assert.Equal(t, "избыточная масса тела", BMICategory(27))
	assert.Equal(t, "ожирение I степени", BMICategory(32))
	assert.Equal(t, "ожирение II степени", BMICategory(37))
	assert.Equal(t, "ожирение III степени", BMICategory(45))
}

func TestCalculateHealthScoreNeutral(t *testing.T) {
	// Neutral answers: -5 energy, -5 sleep, -5 stress, -2.5 concentration.
	score := CalculateHealthScore(DefaultQuestionnaire())
	assert.Equal(t, 82.5, score)
}

func TestCalculateHealthScoreFloor(t *testing.T) {
	q := Questionnaire{
		StressLevel:       10,
		HeadacheFrequency: HeadacheDaily,
		Headaches:         true,
		Bloating:          true, Cramps: true, Gas: true,
		Irritability: true, Sleepiness: true,
		ColdHandsFeet: true, SkinItch: true, DryMouth: true, HairLoss: true, LowLibido: true,
		Appetite:     "increased",
		SugarCraving: true, FatCraving: true,
	}
	// Penalties sum to 93 with every answer at its worst.
	assert.Equal(t, 7.0, CalculateHealthScore(q))
}

func TestCalculateBMRMifflinStJeor(t *testing.T) {
	// Male 80kg/180cm/30y: 800 + 1125 - 150 + 5 = 1780.
	assert.Equal(t, 1780.0, CalculateBMRMifflinStJeor(80, 180, 30, true))
	// Female 60kg/165cm/25y: 600 + 1031.25 - 125 - 161 = 1345.25.
	assert.Equal(t, 1345.25, CalculateBMRMifflinStJeor(60, 165, 25, false))
	// Safety floor.
	assert.Equal(t, 800.0, CalculateBMRMifflinStJeor(20, 100, 100, false))
}

func TestActivityFactor(t *testing.T) {
	assert.Equal(t, 1.9, ActivityFactor(12000, TrainingThreePlus))
	assert.Equal(t, 1.725, ActivityFactor(10000, TrainingThreePlus))
	assert.Equal(t, 1.55, ActivityFactor(10500, TrainingNone))
	assert.Equal(t, 1.55, ActivityFactor(2000, TrainingThreePlus))
	assert.Equal(t, 1.375, ActivityFactor(8000, TrainingNone))
	assert.Equal(t, 1.375, ActivityFactor(0, TrainingOneTwo))
	assert.Equal(t, 1.2, ActivityFactor(4000, TrainingNone))
	assert.Equal(t, 1.2, ActivityFactor(0, ""))
}

func TestCalorieGoalAdjustment(t *testing.T) {
	assert.Equal(t, -500.0, CalorieGoalAdjustment(31))
	assert.Equal(t, -350.0, CalorieGoalAdjustment(26))
	assert.Equal(t, 300.0, CalorieGoalAdjustment(17))
	assert.Equal(t, 0.0, CalorieGoalAdjustment(22))
}

func TestCalculateRecommendedCalories(t *testing.T) {
	// Male 80kg/180cm/30y sedentary, normal BMI: BMR 1780 * 1.2 = 2136.
	got := CalculateRecommendedCalories(24.7, 80, 180, true, 30, 4000, TrainingNone)
	assert.Equal(t, 2136, got)

	// Clamped to the 3000 kcal ceiling.
	high := CalculateRecommendedCalories(22, 100, 200, true, 20, 13000, TrainingThreePlus)
	assert.Equal(t, 3000, high)

	// Female floor of 1200 kcal.
	low := CalculateRecommendedCalories(31, 45, 150, false, 70, 0, TrainingNone)
	assert.GreaterOrEqual(t, low, 1200)
}

func TestCalculateRecommendedCaloriesEstimatesHeight(t *testing.T) {
	// Height omitted: estimated from BMI and weight, result stays in range.
	got := CalculateRecommendedCalories(25, 70, 0, false, 30, 6000, TrainingNone)
	assert.GreaterOrEqual(t, got, 1200)
	assert.LessOrEqual(t, got, 3000)
}

func TestCalculateMacros(t *testing.T) {
	m := CalculateMacros(2000, 0, GoalWeightLoss)
	assert.Equal(t, Macros{Protein: 160, Fats: 62.2, Carbs: 200}, m)

	gain := CalculateMacros(2000, 17, "")
	assert.Equal(t, Macros{Protein: 125, Fats: 62.2, Carbs: 235}, gain)

	maintain := CalculateMacros(2000, 22, "")
	assert.Equal(t, Macros{Protein: 140, Fats: 66.7, Carbs: 210}, maintain)
}

func TestCalculateWaterNorm(t *testing.T) {
	assert.Equal(t, 2100.0, CalculateWaterNorm(70))
}
