package nutrition

import "math"

// MaxQuantity bounds every stored amount, portion size and protein value.
const MaxQuantity = 1_000_000

// ValidQuantity reports whether v is a finite value in [0, MaxQuantity].
func ValidQuantity(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= MaxQuantity
}

// ProteinFor returns the protein grams for amount of a food under its portion model.
func ProteinFor(p Portion, amount float64) (float64, error) {
	var protein float64
	switch p.Type {
	case PortionUnit:
		protein = p.ProteinPerPortion * amount
	case PortionGrams:
		if math.IsNaN(p.Amount) || p.Amount <= 0 {
			return 0, &CalculationError{FoodID: p.FoodID, Reason: "portion amount must be positive for grams"}
		}
		protein = p.ProteinPerPortion * amount / p.Amount
	default:
		return 0, &CalculationError{FoodID: p.FoodID, Reason: "unknown portion type " + string(p.Type)}
	}
	if !finite(protein) {
		return 0, &CalculationError{FoodID: p.FoodID, Reason: "protein is not a finite number"}
	}
	return protein, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func round(value float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(value*scale) / scale
}
