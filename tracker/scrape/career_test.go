package scrape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const careerPage = `
<div id="employment-nav-heading">Current Ventures</div>
<div id="employment_panel">
	<ul>
		<li><span class="employment-title">Career</span> <a href="/career">Technologist - Fuel Technician</a></li>
		<li><span class="employment-title">Side jobs</span></li>
	</ul>
</div>
<table class="table-career-tasks">
	<tr><th>Task</th><th>Bonus</th></tr>
	<tr><td>Trade Goods</td><td><span class="currency-amount">1,234</span></td></tr>
	<tr><td>Patch Conduits</td><td><span class="currency-amount">19.75</span></td></tr>
	<tr><td></td><td><span class="currency-amount">5</span></td></tr>
</table>
<table class="table-career-tasks">
	<tr><td>Scrub Injectors</td><td><span class="currency-amount">7.50</span></td></tr>
</table>`

func TestCareer(t *testing.T) {
	record, err := Career(docFromHTML(t, careerPage))
	require.NoError(t, err)

	require.Equal(t, "Technologist", record.Career)
	require.Equal(t, "Fuel Technician", record.Rank)
	// amounts stay verbatim, rows without a name are dropped
	require.Equal(t, map[string]string{
		"Trade Goods":     "1,234",
		"Patch Conduits":  "19.75",
		"Scrub Injectors": "7.50",
	}, record.Tasks)
}

func TestCareerVenturesHidden(t *testing.T) {
	_, err := Career(docFromHTML(t, `<div id="employment_panel"></div>`))
	require.ErrorIs(t, err, ErrVenturesHidden)
}

func TestCareerNoTasks(t *testing.T) {
	record, err := Career(docFromHTML(t, `
		<div id="employment-nav-heading">Current Ventures</div>
		<div id="employment_panel"><ul><li><a>Embassy Staff - Clerk</a></li></ul></div>`))
	require.NoError(t, err)
	require.Empty(t, record.Tasks)
}
