package mvc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayRange(t *testing.T) {
	from, to := DayRange(time.Date(2024, 2, 29, 17, 45, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%Central%", LikePattern("  Central "))
	assert.Equal(t, "%!_%", LikePattern("_"))
	assert.Equal(t, "%100!%!!%", LikePattern("100%!"))
}
