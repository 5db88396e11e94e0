package petform

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"pet-registry/internal/domain/pets"
)

const (
	maxSuggestDistance = 2
	maxSuggestions     = 3
)

// Suggest devuelve nombres parecidos a keyword cuando ninguno lo contiene.
// Orden: distancia y después orden del listado.
func Suggest(items []pets.Pet, keyword string) []string {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return nil
	}

	type candidate struct {
		name string
		dist int
		pos  int
	}
	var cands []candidate
	for i, p := range items {
		name := strings.ToLower(p.Name)
		if strings.Contains(name, kw) {
			return nil
		}
		if d := levenshtein.ComputeDistance(name, kw); d <= maxSuggestDistance {
			cands = append(cands, candidate{name: p.Name, dist: d, pos: i})
		}
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].dist != cands[j].dist {
			return cands[i].dist < cands[j].dist
		}
		return cands[i].pos < cands[j].pos
	})

	out := make([]string, 0, maxSuggestions)
	for _, c := range cands {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, c.name)
	}
	return out
}
