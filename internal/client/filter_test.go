package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeRow struct {
	name   string
	active bool
}

var rows = []fakeRow{
	{"Leche Entera", true},
	{"Pan Blanco", true},
	{"Leche Deslactosada", false},
}

func filterRows(search string, status Status) []fakeRow {
	return Filter(rows, search, status,
		func(r fakeRow) string { return r.name },
		func(r fakeRow) bool { return r.active },
	)
}

func TestFilter_SearchIsCaseInsensitive(t *testing.T) {
	out := filterRows("LECHE", StatusAll)
	assert.Len(t, out, 2)

	out = filterRows("  blanco ", StatusAll)
	assert.Len(t, out, 1)
	assert.Equal(t, "Pan Blanco", out[0].name)
}

func TestFilter_StatusNarrowing(t *testing.T) {
	assert.Len(t, filterRows("", StatusAll), 3)
	assert.Len(t, filterRows("", StatusActive), 2)
	assert.Len(t, filterRows("", StatusInactive), 1)
}

func TestFilter_SearchAndStatusCombine(t *testing.T) {
	out := filterRows("leche", StatusActive)
	assert.Len(t, out, 1)
	assert.Equal(t, "Leche Entera", out[0].name)
}

func TestFilter_NoMatches(t *testing.T) {
	assert.Empty(t, filterRows("cerveza", StatusAll))
}

func TestParseStatus(t *testing.T) {
	assert.Equal(t, StatusActive, ParseStatus("active"))
	assert.Equal(t, StatusActive, ParseStatus("Active"))
	assert.Equal(t, StatusInactive, ParseStatus("inactive"))
	assert.Equal(t, StatusAll, ParseStatus("all"))
	assert.Equal(t, StatusAll, ParseStatus(""))
	assert.Equal(t, StatusAll, ParseStatus("garbage"))
}
