package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewUnit tests range checking
func TestNewUnit(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"one", 1, false},
		{"middle", 0.42, false},
		{"negative", -0.1, true},
		{"above one", 1.5, true},
		{"nan", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUnit(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, u.Float64())
		})
	}
}

// TestClampUnit tests clamping
func TestClampUnit(t *testing.T) {
	assert.Equal(t, Unit(0), ClampUnit(-3))
	assert.Equal(t, Unit(1), ClampUnit(7))
	assert.Equal(t, Unit(0.3), ClampUnit(0.3))
	assert.Equal(t, Unit(0), ClampUnit(math.NaN()))
	assert.Equal(t, Unit(1), *UnitPtr(2))
}
