package progress

// CurrentStreak returns how many consecutive days, counting backward from
// today, met the daily goal.
//
// This is a gap-detection walk, not a count: the i-th qualifying day must
// be exactly today minus i days, and the first mismatch ends the streak.
// If today itself hasn't met the goal the streak is 0 even when yesterday
// did - the metric answers "is the streak alive today", not "when did the
// user last read".
func (a *Aggregator) CurrentStreak(goalMinutes int) (int, error) {
	days, err := a.store.QualifyingDays(goalMinutes)
	if err != nil {
		return 0, err
	}

	today := a.clock.Now()
	streak := 0
	for i, day := range days {
		if day != Day(today.AddDate(0, 0, -i)) {
			break
		}
		streak++
	}

	return streak, nil
}
