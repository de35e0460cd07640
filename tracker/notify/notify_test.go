package notify

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatFactor(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1.23456, "1.234"},
		{1.2, "1.2"},
		{1, "1"},
		{0.975, "0.975"},
		{12.345678, "12.34"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, FormatFactor(c.in))
	}
}

func TestFactorTable(t *testing.T) {
	rendered := FactorTable(map[string]float64{
		"Taungoo Station": 0.975,
		"Nouveau Limoges": 1.23456,
		"Moissan Citadel": 1.0,
	}, false)

	// sorted by station name
	nouveau := strings.Index(rendered, "Nouveau Limoges")
	moissan := strings.Index(rendered, "Moissan Citadel")
	taungoo := strings.Index(rendered, "Taungoo Station")
	require.True(t, moissan < nouveau && nouveau < taungoo)

	// only factors above 1.0 carry emphasis
	require.Contains(t, rendered, "*Nouveau Limoges*")
	require.NotContains(t, rendered, "*Taungoo Station*")
	require.NotContains(t, rendered, "*Moissan Citadel*")

	require.Contains(t, rendered, "1.234")
	require.Contains(t, rendered, "0.975")
}

func TestFuelPriceTable(t *testing.T) {
	rendered := FuelPriceTable(map[string]map[string]float64{
		"Sol": {"Tau Station": 22.5},
	})
	require.Contains(t, rendered, "Sol")
	require.Contains(t, rendered, "Tau Station")
	require.Contains(t, rendered, "22.5")
}

func TestNotifyAppendsLines(t *testing.T) {
	var buf strings.Builder
	surface := New(&buf, false)

	surface.Notify("first", Info)
	surface.Notify("second", Error)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, []string{"tracker: first", "tracker: second"}, lines)
}

type lockedBuilder struct {
	mu sync.Mutex
	b  strings.Builder
}

func (l *lockedBuilder) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

func TestNotifyConcurrentAppends(t *testing.T) {
	out := &lockedBuilder{}
	surface := New(out, false)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			surface.Notify("line", Success)
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(out.b.String()), "\n")
	require.Len(t, lines, 32)
	for _, line := range lines {
		require.Equal(t, "tracker: line", line)
	}
}

func TestDefaultIsMemoized(t *testing.T) {
	require.Same(t, Default(), Default())
}
