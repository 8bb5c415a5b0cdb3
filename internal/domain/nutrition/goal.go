package nutrition

type Evaluation struct {
	Achieved   bool
	Percentage float64
}

// Evaluate compares total against the protein goal. A missing or non-positive
// goal is not achieved and reports 0%.
func Evaluate(total float64, goal *Goal) Evaluation {
	if goal == nil || !(goal.Protein > 0) {
		return Evaluation{}
	}
	return Evaluation{
		Achieved:   total >= goal.Protein,
		Percentage: round(total/goal.Protein*100, 1),
	}
}
