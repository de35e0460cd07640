package notify

import (
	"sort"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// FormatFactor renders a comparison factor the way the tracker always
// has: plain decimal notation cut to at most five characters, so
// 1.23456 comes out as "1.234".
func FormatFactor(factor float64) string {
	s := strconv.FormatFloat(factor, 'f', -1, 64)
	if len(s) > 5 {
		s = s[:5]
	}
	return s
}

// FactorTable renders the per-station factors of one system, sorted
// by station name. Stations beating factor 1.0 are emphasized since
// they are the ones worth travelling to.
func FactorTable(factors map[string]float64, styled bool) string {
	stations := make([]string, 0, len(factors))
	for station := range factors {
		stations = append(stations, station)
	}
	sort.Strings(stations)

	w := table.NewWriter()
	w.AppendHeader(table.Row{"Station", "Factor"})
	for _, station := range stations {
		factor := factors[station]
		name := station
		if factor > 1.0 {
			name = emphasize(name, styled)
		}
		w.AppendRow(table.Row{name, FormatFactor(factor)})
	}
	return w.Render()
}

// FuelPriceTable renders the tracker's known fuel prices per gram,
// keyed by system then station.
func FuelPriceTable(systems map[string]map[string]float64) string {
	systemNames := make([]string, 0, len(systems))
	for system := range systems {
		systemNames = append(systemNames, system)
	}
	sort.Strings(systemNames)

	w := table.NewWriter()
	w.AppendHeader(table.Row{"System", "Station", "Price/g"})
	for _, system := range systemNames {
		stations := make([]string, 0, len(systems[system]))
		for station := range systems[system] {
			stations = append(stations, station)
		}
		sort.Strings(stations)
		for _, station := range stations {
			w.AppendRow(table.Row{system, station, FormatFactor(systems[system][station])})
		}
	}
	return w.Render()
}

func emphasize(s string, styled bool) string {
	if styled {
		return text.Bold.Sprint(s)
	}
	return "*" + s + "*"
}
