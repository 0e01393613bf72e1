package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAirportDirectoryByCode(t *testing.T) {
	dir := NewAirportDirectory()

	airport, ok := dir.ByCode("lhr")
	require.True(t, ok)
	assert.Equal(t, "LHR", airport.Code)

	airport, ok = dir.ByCode(" JFK ")
	require.True(t, ok)
	assert.Equal(t, "JFK", airport.Code)

	_, ok = dir.ByCode("ZZZ")
	assert.False(t, ok)
}

func TestAirportDirectorySearchCodePrefixRanksFirst(t *testing.T) {
	dir := NewAirportDirectory()

	results := dir.Search("lhr", 10)
	require.NotEmpty(t, results)
	assert.Equal(t, "LHR", results[0].Code)
}

func TestAirportDirectorySearchByCity(t *testing.T) {
	dir := NewAirportDirectory()

	results := dir.Search("london", 20)
	require.NotEmpty(t, results)
	for _, a := range results {
		assert.Contains(t, a.City+a.Name+a.Country, "London")
	}
}

func TestAirportDirectorySearchLimit(t *testing.T) {
	dir := NewAirportDirectory()

	results := dir.Search("", 5)
	assert.Len(t, results, 5)

	all := dir.Search("", 0)
	assert.Equal(t, len(dir.All()), len(all))
}

func TestAirportDirectorySearchNoMatch(t *testing.T) {
	dir := NewAirportDirectory()
	assert.Empty(t, dir.Search("xyzzy", 10))
}
