package repository

import (
	"sort"
	"strings"

	"flight-booking/internal/data/entity"
)

// AirportDirectory serves the static airport catalogue. The data never
// changes at runtime so no locking is needed after construction.
type AirportDirectory struct {
	airports []entity.Airport
	byCode   map[string]entity.Airport
}

func NewAirportDirectory() *AirportDirectory {
	dir := &AirportDirectory{
		airports: entity.MajorAirports,
		byCode:   make(map[string]entity.Airport, len(entity.MajorAirports)),
	}
	for _, a := range dir.airports {
		dir.byCode[a.Code] = a
	}
	return dir
}

// All returns the full catalogue in seed order.
func (d *AirportDirectory) All() []entity.Airport {
	out := make([]entity.Airport, len(d.airports))
	copy(out, d.airports)
	return out
}

// ByCode looks up a single airport, case-insensitively.
func (d *AirportDirectory) ByCode(code string) (entity.Airport, bool) {
	a, ok := d.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return a, ok
}

// Search matches the query as a case-insensitive substring against code,
// name, city and country. Code-prefix matches rank first so that typing
// "LHR" surfaces Heathrow before airports that merely mention it.
func (d *AirportDirectory) Search(query string, limit int) []entity.Airport {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		results := d.All()
		if limit > 0 && len(results) > limit {
			results = results[:limit]
		}
		return results
	}

	type ranked struct {
		airport entity.Airport
		rank    int
		order   int
	}

	var matches []ranked
	for i, a := range d.airports {
		code := strings.ToLower(a.Code)
		switch {
		case strings.HasPrefix(code, q):
			matches = append(matches, ranked{a, 0, i})
		case strings.Contains(strings.ToLower(a.City), q):
			matches = append(matches, ranked{a, 1, i})
		case strings.Contains(strings.ToLower(a.Name), q) ||
			strings.Contains(strings.ToLower(a.Country), q):
			matches = append(matches, ranked{a, 2, i})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].rank != matches[j].rank {
			return matches[i].rank < matches[j].rank
		}
		return matches[i].order < matches[j].order
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]entity.Airport, len(matches))
	for i, m := range matches {
		out[i] = m.airport
	}
	return out
}
