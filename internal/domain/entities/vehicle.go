package entities

import (
	"strings"
	"time"
)

// Vehicle belongs to a customer and is referenced by service orders.
type Vehicle struct {
	ID        string    `json:"id"`
	ClienteID string    `json:"cliente_id"`
	Placa     string    `json:"placa"`
	Modelo    string    `json:"modelo"`
	Ano       string    `json:"ano"`
	CreatedAt time.Time `json:"created_at"`
}

// MaskPlate partially hides a license plate for public display
// (ex: ABC-1234 -> ABC-**34).
//
// The separator does not count toward the masked length: the plate is measured
// without it and the "-" is reinserted after the first three characters when
// the input carried one, wherever it originally sat. Plates shorter than 7
// characters are returned as-is (uppercased): the value is already too
// irregular to identify a vehicle.
func MaskPlate(placa string) string {
	if placa == "" {
		return ""
	}

	clean := strings.ToUpper(strings.TrimSpace(placa))
	hyphenated := strings.Contains(clean, "-")
	compact := strings.ReplaceAll(clean, "-", "")
	if len(compact) < 7 {
		return clean
	}

	inicio := compact[:3]
	final := compact[len(compact)-2:]
	meio := strings.Repeat("*", len(compact)-5)

	if hyphenated {
		return inicio + "-" + meio + final
	}
	return inicio + meio + final
}
