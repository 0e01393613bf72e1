package entity

// Airport is immutable reference data identified by its IATA code.
// Region is a coarse classification for grouping, not geo-authoritative.
type Airport struct {
	Code    string `db:"code"`
	Name    string `db:"name"`
	City    string `db:"city"`
	Country string `db:"country"`
	Region  string `db:"region"`
}
