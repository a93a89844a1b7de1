package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidateHeight checks a height value in cm.
func ValidateHeight(height float64) error {
	if height < 100 || height > 250 {
		return fmt.Errorf("рост должен быть от 100 до 250 см")
	}
	return nil
}

// ValidateWeight checks a weight value in kg.
func ValidateWeight(weight float64) error {
	if weight < 20 || weight > 300 {
		return fmt.Errorf("вес должен быть от 20 до 300 кг")
	}
	return nil
}

// ValidateScaleValue checks a scale answer against [min, max].
func ValidateScaleValue(value, min, max int) error {
	if value < min || value > max {
		return fmt.Errorf("значение должно быть от %d до %d", min, max)
	}
	return nil
}

// ValidateScale1To5 checks a 1-5 scale answer.
func ValidateScale1To5(value int) error {
	return ValidateScaleValue(value, 1, 5)
}

// ValidateSteps checks a daily step count.
func ValidateSteps(steps int) error {
	if steps < 0 || steps > 100000 {
		return fmt.Errorf("количество шагов должно быть от 0 до 100000")
	}
	return nil
}

// ValidateCalories checks a calorie amount.
func ValidateCalories(calories float64) error {
	if calories < 0 || calories > 10000 {
		return fmt.Errorf("калорийность должна быть от 0 до 10000 ккал")
	}
	return nil
}

// ParseNumber parses a user-entered number, tolerating spaces and a comma
// decimal separator.
func ParseNumber(text string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(strings.TrimSpace(text), ",", "."), " ", "")
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("не удалось распознать число: %q", text)
	}
	return value, nil
}
