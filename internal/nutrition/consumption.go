package nutrition

// Intake is an amount of energy and macronutrients.
type Intake struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// Scale multiplies every field by portions.
func (i Intake) Scale(portions float64) Intake {
	return Intake{
		Calories: i.Calories * portions,
		ProteinG: i.ProteinG * portions,
		CarbsG:   i.CarbsG * portions,
		FatG:     i.FatG * portions,
	}
}

// Add returns the field-wise sum.
func (i Intake) Add(other Intake) Intake {
	return Intake{
		Calories: i.Calories + other.Calories,
		ProteinG: i.ProteinG + other.ProteinG,
		CarbsG:   i.CarbsG + other.CarbsG,
		FatG:     i.FatG + other.FatG,
	}
}

// Sum totals a list of intakes.
func Sum(items ...Intake) Intake {
	var total Intake
	for _, item := range items {
		total = total.Add(item)
	}
	return total
}

// Remaining reports how much of the targets is left; negative values mean the target was exceeded.
func Remaining(t Targets, consumed Intake) Intake {
	return Intake{
		Calories: float64(t.DailyCalories) - consumed.Calories,
		ProteinG: float64(t.ProteinG) - consumed.ProteinG,
		CarbsG:   float64(t.CarbsG) - consumed.CarbsG,
		FatG:     float64(t.FatG) - consumed.FatG,
	}
}
