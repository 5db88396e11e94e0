package pets

import (
	"math"
	"strconv"
	"strings"
)

// Criteria agrupa los filtros de la pantalla. Se combinan con AND.
type Criteria struct {
	Search      string // nombre contiene (case-insensitive)
	Age         string // match exacto; vacío = todos
	Description string // descripción contiene; vacío = todos
}

func (c Criteria) IsZero() bool {
	return c.Search == "" && c.Age == "" && c.Description == ""
}

// Match evalúa los tres predicados contra p.
func (c Criteria) Match(p Pet) bool {
	if !containsFold(p.Name, c.Search) {
		return false
	}
	if c.Age != "" && p.Age != c.Age {
		return false
	}
	// Filtro vacío siempre pasa, aun sin descripción.
	if c.Description != "" {
		if !p.HasDescription() || !containsFold(p.Description, c.Description) {
			return false
		}
	}
	return true
}

// Apply devuelve la intersección de los filtros, en el orden original.
func Apply(items []Pet, c Criteria) []Pet {
	out := make([]Pet, 0, len(items))
	for _, p := range items {
		if c.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// ValidateFields aplica las reglas del formulario:
// nombre y edad no vacíos (trim) y edad numérica > 0.
func ValidateFields(name, age string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(age) == "" {
		return ErrInvalidInput
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(age), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return ErrInvalidInput
	}
	return nil
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
