package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateHeight(t *testing.T) {
	assert.NoError(t, ValidateHeight(170))
	assert.Error(t, ValidateHeight(99))
	assert.Error(t, ValidateHeight(251))
}

func TestValidateWeight(t *testing.T) {
	assert.NoError(t, ValidateWeight(70))
	assert.Error(t, ValidateWeight(19))
	assert.Error(t, ValidateWeight(301))
}

func TestValidateScaleValue(t *testing.T) {
	assert.NoError(t, ValidateScaleValue(5, 0, 10))
	assert.Error(t, ValidateScaleValue(11, 0, 10))
	assert.NoError(t, ValidateScale1To5(3))
	assert.Error(t, ValidateScale1To5(0))
}

func TestValidateSteps(t *testing.T) {
	assert.NoError(t, ValidateSteps(8000))
	assert.Error(t, ValidateSteps(-1))
	assert.Error(t, ValidateSteps(100001))
}

func TestValidateCalories(t *testing.T) {
	assert.NoError(t, ValidateCalories(2000))
	assert.Error(t, ValidateCalories(-1))
	assert.Error(t, ValidateCalories(10001))
}

func TestParseNumber(t *testing.T) {
	v, err := ParseNumber(" 72,5 ")
	require.NoError(t, err)
	assert.Equal(t, 72.5, v)

	v, err = ParseNumber("1 200")
	require.NoError(t, err)
	assert.Equal(t, 1200.0, v)

	_, err = ParseNumber("abc")
	assert.Error(t, err)
}
