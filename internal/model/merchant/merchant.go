package merchant

import "slices"

type Merchant struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Cashback    float64  `json:"cashback"`
	Rating      float64  `json:"rating"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Services    []string `json:"services"`
	TimeSlots   []string `json:"timeSlots"`
	Location    string   `json:"location"`
}

func (m *Merchant) OffersService(service string) bool {
	return slices.Contains(m.Services, service)
}

func (m *Merchant) HasTimeSlot(slot string) bool {
	return slices.Contains(m.TimeSlots, slot)
}

// Clone returns a deep copy so callers cannot mutate the catalog through shared slices.
func (m Merchant) Clone() Merchant {
	m.Services = slices.Clone(m.Services)
	m.TimeSlots = slices.Clone(m.TimeSlots)
	return m
}

// Categories returns the distinct categories in first-seen order.
func Categories(merchants []Merchant) []string {
	categories := make([]string, 0, len(merchants))
	for _, m := range merchants {
		if !slices.Contains(categories, m.Category) {
			categories = append(categories, m.Category)
		}
	}
	return categories
}
