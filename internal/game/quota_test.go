package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanQuotaSplitsEvenly(t *testing.T) {
	plan := PlanQuota([]string{"9", "22"}, 10)
	assert.Equal(t, []Allocation{
		{Category: "9", Count: 5},
		{Category: "22", Count: 5},
	}, plan)
}

func TestPlanQuotaLastCategoryAbsorbsRemainder(t *testing.T) {
	plan := PlanQuota([]string{"9", "22", "23"}, 10)
	assert.Equal(t, []Allocation{
		{Category: "9", Count: 3},
		{Category: "22", Count: 3},
		{Category: "23", Count: 4},
	}, plan)
}

func TestPlanQuotaSingleCategoryTakesAll(t *testing.T) {
	plan := PlanQuota([]string{"9"}, 10)
	assert.Equal(t, []Allocation{{Category: "9", Count: 10}}, plan)
}

func TestPlanQuotaProperties(t *testing.T) {
	const total = 10
	for n := 1; n <= total; n++ {
		keys := make([]string, n)
		for i := range keys {
			keys[i] = fmt.Sprint(9 + i)
		}

		plan := PlanQuota(keys, total)
		assert.Len(t, plan, n)

		sum := 0
		for i, alloc := range plan {
			assert.Equal(t, keys[i], alloc.Category, "input order preserved")
			sum += alloc.Count
			if i < n-1 {
				assert.Equal(t, total/n, alloc.Count, "n=%d slot=%d", n, i)
			} else {
				assert.Equal(t, total/n+total%n, alloc.Count, "n=%d last slot", n)
			}
		}
		assert.Equal(t, total, sum, "n=%d counts sum to total", n)
	}
}
