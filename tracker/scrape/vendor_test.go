package scrape

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const vendorPage = `
<h1 class="vendor-title">Clothing &amp; Kin</h1>
<div class="vendor-item" data-item-slug="reinforced-jacket">
	<span class="currency-amount">1,499.00</span>
	<span class="currency-label">credits</span>
</div>
<div class="vendor-item">
	<a class="item-link" href="/item/tier-2-ration?source=vendor"></a>
	<span class="currency-amount">35</span>
	<span class="currency-label">bonds</span>
</div>
<div class="vendor-item" data-item-slug="display-only">
	<span class="currency-amount"></span>
</div>`

func TestVendor(t *testing.T) {
	inventory, ok := Vendor(docFromHTML(t, vendorPage))
	require.True(t, ok)
	require.Equal(t, "Clothing & Kin", inventory.Vendor)

	expected := []VendorItem{
		{Slug: "reinforced-jacket", Price: 1499, Currency: "credits"},
		{Slug: "tier-2-ration", Price: 35, Currency: "bonds"},
	}
	diff := cmp.Diff(expected, inventory.Items)
	require.Empty(t, diff)
}

func TestVendorNoItems(t *testing.T) {
	_, ok := Vendor(docFromHTML(t, `<h1 class="vendor-title">Empty Shelf</h1>`))
	require.False(t, ok)
}

func TestVendorNoTitle(t *testing.T) {
	_, ok := Vendor(docFromHTML(t, `
		<div class="vendor-item" data-item-slug="x">
			<span class="currency-amount">5</span>
		</div>`))
	require.False(t, ok)
}
