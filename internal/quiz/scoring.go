package quiz

import "fmt"

// Classify возвращает тотемное животное по итоговому количеству очков.
// Таблица диапазонов проверяется при загрузке содержимого, поэтому для любого
// неотрицательного значения очков ровно один диапазон даёт совпадение.
func (c *Content) Classify(points int) (OutcomeRange, bool) {
	for _, outcome := range c.Outcomes {
		if points < outcome.MinPoints {
			continue
		}

		if outcome.MaxPoints < 0 || points <= outcome.MaxPoints {
			return outcome, true
		}
	}

	return OutcomeRange{}, false
}

// OutcomeByTotem возвращает диапазон по названию тотемного животного.
func (c *Content) OutcomeByTotem(totem string) (OutcomeRange, bool) {
	for _, outcome := range c.Outcomes {
		if outcome.Totem == totem {
			return outcome, true
		}
	}

	return OutcomeRange{}, false
}

// validateOutcomes проверяет, что диапазоны очков покрывают все неотрицательные
// значения без пропусков и пересечений: первый диапазон начинается с нуля,
// каждый следующий продолжает предыдущий, последний открыт сверху.
func validateOutcomes(outcomes []OutcomeRange) error {
	if len(outcomes) == 0 {
		return fmt.Errorf("missing field outcomes")
	}

	expectedMin := 0

	for i, outcome := range outcomes {
		if outcome.Totem == "" {
			return fmt.Errorf("missing totem of %d outcome", i)
		}

		if outcome.MinPoints != expectedMin {
			return fmt.Errorf(
				"outcome %d must start at %d points, got %d",
				i, expectedMin, outcome.MinPoints,
			)
		}

		last := i == len(outcomes)-1
		if last {
			if outcome.MaxPoints != -1 {
				return fmt.Errorf("last outcome must be open-ended")
			}

			continue
		}

		if outcome.MaxPoints < outcome.MinPoints {
			return fmt.Errorf("outcome %d has empty range", i)
		}

		expectedMin = outcome.MaxPoints + 1
	}

	return nil
}
