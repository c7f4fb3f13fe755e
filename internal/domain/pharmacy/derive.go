package pharmacy

import (
	"github.com/carefront/carefront/internal/catalog"
)

// MedicationLookup resolves a medication id against the formulary.
// *catalog.Provider satisfies it.
type MedicationLookup interface {
	MedicationByID(id string) (catalog.Medication, bool)
}

// Total computes the prescription total: for each line, the formulary price
// times the line quantity; a line whose medication id does not resolve
// contributes exactly 0. Quantities are not validated.
func Total(lines []Line, meds MedicationLookup) float64 {
	sum := 0.0
	for _, line := range lines {
		m, ok := meds.MedicationByID(line.MedicationID)
		if !ok {
			continue
		}
		sum += m.Price * line.Quantity
	}
	return sum
}
