package merchant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	catalog := Catalog()
	require.Len(t, catalog, 6)
	for i, m := range catalog {
		assert.Equal(t, int64(i+1), m.ID)
		assert.NotEmpty(t, m.Services)
		assert.NotEmpty(t, m.TimeSlots)
	}
	assert.Equal(t, "FitZone Gym", catalog[1].Name)
	assert.InDelta(t, 20.0, catalog[1].Cashback, 0.0001)
}

func TestCategories(t *testing.T) {
	merchants := []Merchant{
		{ID: 1, Category: "Fitness"},
		{ID: 2, Category: "Wellness"},
		{ID: 3, Category: "Fitness"},
		{ID: 4, Category: "Technology"},
	}
	assert.Equal(t,
		[]string{"Fitness", "Wellness", "Technology"},
		Categories(merchants))
	assert.Empty(t, Categories(nil))
}

func TestMerchant_Options(t *testing.T) {
	m := Catalog()[1]
	assert.True(t, m.OffersService("Group Classes"))
	assert.False(t, m.OffersService("Hair Coloring"))
	assert.True(t, m.HasTimeSlot("6:00 AM"))
	assert.False(t, m.HasTimeSlot("6:00 PM"))
}

func TestMerchant_Clone(t *testing.T) {
	m := Catalog()[0]
	c := m.Clone()
	c.Services[0] = "changed"
	c.TimeSlots[0] = "changed"
	assert.Equal(t, "Hair Cut & Style", m.Services[0])
	assert.Equal(t, "10:00 AM", m.TimeSlots[0])
}
