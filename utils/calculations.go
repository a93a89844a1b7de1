package utils

import "math"

// Activity answer values as presented to the user.
const (
	TrainingNone      = "нет"
	TrainingOneTwo    = "1-2 раза в неделю"
	TrainingThreePlus = "3 и более раз в неделю"
)

// Headache frequency answer values.
const (
	HeadacheDaily       = "ежедневно"
	HeadacheSeveralWeek = "несколько раз в неделю"
	HeadacheOnceWeek    = "раз в неделю"
	HeadacheRare        = "редко"
)

// Questionnaire holds the onboarding health questionnaire answers.
// Scale answers run 0-10; DefaultQuestionnaire fills neutral values.
type Questionnaire struct {
	EnergyLevel       int
	SleepQuality      int
	StressLevel       int
	Concentration     int
	Bloating          bool
	Cramps            bool
	Gas               bool
	Headaches         bool
	HeadacheFrequency string
	Irritability      bool
	Sleepiness        bool
	ColdHandsFeet     bool
	SkinItch          bool
	DryMouth          bool
	HairLoss          bool
	LowLibido         bool
	Appetite          string // "increased", "decreased" or "normal"
	SugarCraving      bool
	FatCraving        bool
	PhysicalActivity  bool
}

// DefaultQuestionnaire returns a questionnaire with neutral answers.
func DefaultQuestionnaire() Questionnaire {
	return Questionnaire{
		EnergyLevel:       5,
		SleepQuality:      5,
		StressLevel:       5,
		Concentration:     5,
		HeadacheFrequency: HeadacheRare,
		Appetite:          "normal",
	}
}

// CalculateBMI computes the body mass index from height in cm and weight
// in kg, rounded to one decimal. Non-positive inputs yield 0.
func CalculateBMI(height, weight float64) float64 {
	if height <= 0 || weight <= 0 {
		return 0
	}
	heightM := height / 100
	return round1(weight / (heightM * heightM))
}

// BMICategory returns the Russian-language BMI category label.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "недостаточная масса тела"
	case bmi < 25:
		return "нормальная масса тела"
	case bmi < 30:
		return "избыточная масса тела"
	case bmi < 35:
		return "ожирение I степени"
	case bmi < 40:
		return "ожирение II степени"
	default:
		return "ожирение III степени"
	}
}

// CalculateHealthScore scores overall wellbeing 0-100 from the
// questionnaire, subtracting weighted penalties per answer.
func CalculateHealthScore(q Questionnaire) float64 {
	score := 100.0

	score -= float64(10 - q.EnergyLevel)
	score -= float64(10 - q.SleepQuality)
	score -= float64(q.StressLevel)

	if q.Bloating {
		score -= 5
	}
	if q.Cramps {
		score -= 5
	}
	if q.Gas {
		score -= 5
	}

	if q.Headaches {
		switch q.HeadacheFrequency {
		case HeadacheDaily:
			score -= 10
		case HeadacheSeveralWeek:
			score -= 7
		case HeadacheOnceWeek:
			score -= 5
		case HeadacheRare:
			score -= 2
		}
	}

	score -= float64(10-q.Concentration) / 2

	if q.Irritability {
		score -= 5
	}
	if q.Sleepiness {
		score -= 5
	}

	if q.ColdHandsFeet {
		score -= 3
	}
	if q.SkinItch {
		score -= 3
	}
	if q.DryMouth {
		score -= 3
	}
	if q.HairLoss {
		score -= 3
	}
	if q.LowLibido {
		score -= 3
	}

	switch q.Appetite {
	case "increased":
		score -= 3
	case "decreased":
		score -= 2
	}

	if q.SugarCraving {
		score -= 3
	}
	if q.FatCraving {
		score -= 2
	}

	return math.Max(0, math.Min(100, round1(score)))
}

// CalculateBMRMifflinStJeor computes the basal metabolic rate with the
// Mifflin-St Jeor formula. Floored at 800 kcal for safety.
func CalculateBMRMifflinStJeor(weight, height float64, age int, isMale bool) float64 {
	var bmr float64
	if isMale {
		bmr = 10*weight + 6.25*height - 5*float64(age) + 5
	} else {
		bmr = 10*weight + 6.25*height - 5*float64(age) - 161
	}
	return math.Max(800, bmr)
}

// ActivityFactor maps average daily steps and additional training frequency
// to a TDEE activity multiplier.
func ActivityFactor(averageSteps int, additionalActivity string) float64 {
	switch {
	case averageSteps >= 12000 && additionalActivity == TrainingThreePlus:
		return 1.9
	case averageSteps >= 10000 && additionalActivity == TrainingThreePlus:
		return 1.725
	case averageSteps >= 10000 || additionalActivity == TrainingThreePlus:
		return 1.55
	case averageSteps >= 7500 || additionalActivity == TrainingOneTwo:
		return 1.375
	default:
		return 1.2
	}
}

// CalculateTDEE computes the total daily energy expenditure.
func CalculateTDEE(bmr, activityFactor float64) float64 {
	return bmr * activityFactor
}

// CalorieGoalAdjustment returns the calorie deficit or surplus implied by
// the BMI-derived goal.
func CalorieGoalAdjustment(bmi float64) float64 {
	switch {
	case bmi >= 30:
		return -500
	case bmi >= 25:
		return -350
	case bmi < 18.5:
		return 300
	default:
		return 0
	}
}

// CalculateRecommendedCalories computes the daily calorie target the way a
// dietitian would: Mifflin-St Jeor BMR, activity multiplier, BMI-based goal
// adjustment, then safety clamps. When height is unknown (<= 0) it is
// estimated back from BMI and weight, clamped to 140-220 cm. Age outside
// 18-100 falls back to 30.
func CalculateRecommendedCalories(bmi, weight, height float64, isMale bool, age, averageSteps int, additionalActivity string) int {
	if height <= 0 {
		if bmi > 0 {
			height = math.Sqrt(weight/bmi) * 100
			height = math.Max(140, math.Min(220, height))
		} else {
			height = 170
		}
	}

	ageValue := age
	if age < 18 || age > 100 {
		ageValue = 30
	}

	bmr := CalculateBMRMifflinStJeor(weight, height, ageValue, isMale)
	tdee := CalculateTDEE(bmr, ActivityFactor(averageSteps, additionalActivity))
	recommended := tdee + CalorieGoalAdjustment(bmi)

	minCalories := 1200.0
	if isMale {
		minCalories = 1500
	}
	const maxCalories = 3000.0

	return int(math.Max(minCalories, math.Min(maxCalories, math.Round(recommended))))
}

// Macros is the daily protein/fat/carb targets in grams.
type Macros struct {
	Protein float64 `json:"protein"`
	Fats    float64 `json:"fats"`
	Carbs   float64 `json:"carbs"`
}

// Macro split goals.
const (
	GoalWeightLoss  = "weight_loss"
	GoalWeightGain  = "weight_gain"
	GoalMaintenance = "maintenance"
)

// CalculateMacros splits a calorie target into macros by goal. An empty
// goal is derived from BMI: >= 25 loss, < 18.5 gain, otherwise maintenance.
// Protein and carbs count 4 kcal/g, fats 9 kcal/g.
func CalculateMacros(calories int, bmi float64, goal string) Macros {
	if goal == "" {
		switch {
		case bmi >= 25:
			goal = GoalWeightLoss
		case bmi > 0 && bmi < 18.5:
			goal = GoalWeightGain
		default:
			goal = GoalMaintenance
		}
	}

	var proteinPct, fatsPct, carbsPct float64
	switch goal {
	case GoalWeightLoss:
		proteinPct, fatsPct, carbsPct = 0.32, 0.28, 0.40
	case GoalWeightGain:
		proteinPct, fatsPct, carbsPct = 0.25, 0.28, 0.47
	default:
		proteinPct, fatsPct, carbsPct = 0.28, 0.30, 0.42
	}

	c := float64(calories)
	return Macros{
		Protein: round1(c * proteinPct / 4),
		Fats:    round1(c * fatsPct / 9),
		Carbs:   round1(c * carbsPct / 4),
	}
}

// CalculateWaterNorm returns the daily water norm in ml: 30 ml per kg.
func CalculateWaterNorm(weight float64) float64 {
	return math.Round(weight * 30)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
