package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/poi-explorer/internal/pkg/utils"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("zero distance for identical points", func(t *testing.T) {
		assert.Equal(t, 0.0, utils.HaversineDistance(41.3851, 2.1734, 41.3851, 2.1734))
	})

	t.Run("one degree of longitude on the equator", func(t *testing.T) {
		assert.Equal(t, 111.19, utils.HaversineDistance(0, 0, 0, 1))
	})

	t.Run("symmetric in argument order", func(t *testing.T) {
		d1 := utils.HaversineDistance(41.3851, 2.1734, 40.4168, -3.7038)
		d2 := utils.HaversineDistance(40.4168, -3.7038, 41.3851, 2.1734)
		assert.Equal(t, d1, d2)
	})

	t.Run("Barcelona to Madrid", func(t *testing.T) {
		d := utils.HaversineDistance(41.3851, 2.1734, 40.4168, -3.7038)
		assert.InDelta(t, 505, d, 5)
	})

	t.Run("result is rounded to two decimal places", func(t *testing.T) {
		d := utils.HaversineDistance(0, 0, 0.001, 0.001)
		assert.Equal(t, d, float64(int(d*100))/100)
	})

	t.Run("antipodal points are roughly half the circumference", func(t *testing.T) {
		d := utils.HaversineDistance(0, 0, 0, 180)
		assert.InDelta(t, 20015, d, 5)
	})
}

func TestValidateCoordinates(t *testing.T) {
	valid := [][2]float64{
		{0, 0},
		{90, 180},
		{-90, -180},
		{41.3851, 2.1734},
	}
	for _, c := range valid {
		assert.True(t, utils.ValidateCoordinates(c[0], c[1]), "expected %v to be valid", c)
	}

	invalid := [][2]float64{
		{90.0001, 0},
		{-90.0001, 0},
		{0, 180.0001},
		{0, -180.0001},
	}
	for _, c := range invalid {
		assert.False(t, utils.ValidateCoordinates(c[0], c[1]), "expected %v to be invalid", c)
	}
}

func TestValidateRadius(t *testing.T) {
	assert.True(t, utils.ValidateRadius(0.01))
	assert.True(t, utils.ValidateRadius(5))
	assert.False(t, utils.ValidateRadius(0))
	assert.False(t, utils.ValidateRadius(-1))
}
