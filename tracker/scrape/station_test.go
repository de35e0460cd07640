package scrape

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func docFromHTML(t testing.TB, raw string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	require.NoError(t, err)
	return doc
}

func TestStation(t *testing.T) {
	doc := docFromHTML(t, `
		<header>
			<span class="station">  Tau Station, Sol   system </span>
		</header>`)

	loc, ok := Station(doc)
	require.True(t, ok)
	require.Equal(t, "Tau Station", loc.Station)
	require.Equal(t, "Sol", loc.System)
}

func TestStationMultiWordNames(t *testing.T) {
	doc := docFromHTML(t, `<span class="station">Cape Verde Stronghold, YZ Ceti system</span>`)

	loc, ok := Station(doc)
	require.True(t, ok)
	require.Equal(t, "Cape Verde Stronghold", loc.Station)
	require.Equal(t, "YZ Ceti", loc.System)
}

func TestStationNotAGameWorldPage(t *testing.T) {
	cases := []string{
		`<span class="station">Confined to the Brig</span>`,
		`<span class="station"></span>`,
		`<div>no banner at all</div>`,
	}
	for _, raw := range cases {
		_, ok := Station(docFromHTML(t, raw))
		require.False(t, ok, raw)
	}
}
