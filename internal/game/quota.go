package game

// Allocation pairs a requested category key with the number of questions to
// draw for it.
type Allocation struct {
	Category string
	Count    int
}

// PlanQuota splits total across the requested keys in order. Every key gets
// floor(total/N); the last key also absorbs the remainder, so which category
// over-draws depends on request order. Callers must have trimmed the list to
// at most total keys first; the split is undefined for N > total.
func PlanQuota(keys []string, total int) []Allocation {
	base := total / len(keys)
	plan := make([]Allocation, len(keys))
	for i, key := range keys {
		plan[i] = Allocation{Category: key, Count: base}
	}
	plan[len(plan)-1].Count += total % len(keys)
	return plan
}
