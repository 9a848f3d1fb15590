package merchant

const imageQuery = "?auto=compress&cs=tinysrgb&w=500"

// Catalog returns the fixed merchant list the service is seeded with.
func Catalog() []Merchant {
	return []Merchant{
		{
			ID:          1,
			Name:        "Glow Beauty Salon",
			Category:    "Beauty & Wellness",
			Cashback:    15,
			Rating:      4.8,
			Image:       "https://images.pexels.com/photos/3993449/pexels-photo-3993449.jpeg" + imageQuery,
			Description: "Premium beauty salon offering hair styling, facials, and spa treatments with expert beauticians.",
			Services:    []string{"Hair Cut & Style", "Facial Treatment", "Manicure & Pedicure", "Hair Coloring"},
			TimeSlots:   []string{"10:00 AM", "12:00 PM", "2:00 PM", "4:00 PM", "6:00 PM"},
			Location:    "Downtown Plaza, 2nd Floor",
		},
		{
			ID:          2,
			Name:        "FitZone Gym",
			Category:    "Fitness",
			Cashback:    20,
			Rating:      4.6,
			Image:       "https://images.pexels.com/photos/1552252/pexels-photo-1552252.jpeg" + imageQuery,
			Description: "State-of-the-art fitness center with modern equipment, personal trainers, and group classes.",
			Services:    []string{"Personal Training", "Group Classes", "Cardio Workout", "Weight Training"},
			TimeSlots:   []string{"6:00 AM", "8:00 AM", "10:00 AM", "5:00 PM", "7:00 PM"},
			Location:    "Central Mall, Ground Floor",
		},
		{
			ID:          3,
			Name:        "Tasty Bites Restaurant",
			Category:    "Food & Dining",
			Cashback:    12,
			Rating:      4.7,
			Image:       "https://images.pexels.com/photos/1581384/pexels-photo-1581384.jpeg" + imageQuery,
			Description: "Fine dining restaurant serving authentic Indian cuisine with a modern twist and cozy ambiance.",
			Services:    []string{"Lunch Buffet", "Dinner A La Carte", "Private Dining", "Catering Services"},
			TimeSlots:   []string{"12:00 PM", "1:30 PM", "7:00 PM", "8:30 PM", "9:30 PM"},
			Location:    "Food Court, 3rd Floor",
		},
		{
			ID:          4,
			Name:        "Zen Spa Retreat",
			Category:    "Wellness",
			Cashback:    18,
			Rating:      4.9,
			Image:       "https://images.pexels.com/photos/3757958/pexels-photo-3757958.jpeg" + imageQuery,
			Description: "Luxurious spa offering holistic wellness treatments, massages, and relaxation therapies.",
			Services:    []string{"Full Body Massage", "Aromatherapy", "Hot Stone Therapy", "Meditation Sessions"},
			TimeSlots:   []string{"10:00 AM", "1:00 PM", "3:00 PM", "5:00 PM", "7:00 PM"},
			Location:    "Wellness Center, 4th Floor",
		},
		{
			ID:          5,
			Name:        "Tech Repair Hub",
			Category:    "Technology",
			Cashback:    10,
			Rating:      4.5,
			Image:       "https://images.pexels.com/photos/4050403/pexels-photo-4050403.jpeg" + imageQuery,
			Description: "Professional device repair services for smartphones, laptops, and gadgets with quick turnaround.",
			Services:    []string{"Phone Repair", "Laptop Service", "Data Recovery", "Screen Replacement"},
			TimeSlots:   []string{"9:00 AM", "11:00 AM", "2:00 PM", "4:00 PM", "6:00 PM"},
			Location:    "Tech Plaza, 1st Floor",
		},
		{
			ID:          6,
			Name:        "Urban Coffee House",
			Category:    "Cafe & Beverages",
			Cashback:    8,
			Rating:      4.4,
			Image:       "https://images.pexels.com/photos/302899/pexels-photo-302899.jpeg" + imageQuery,
			Description: "Cozy coffee shop with artisanal brews, fresh pastries, and comfortable workspace environment.",
			Services:    []string{"Specialty Coffee", "Fresh Pastries", "Light Meals", "Co-working Space"},
			TimeSlots:   []string{"7:00 AM", "9:00 AM", "11:00 AM", "2:00 PM", "4:00 PM"},
			Location:    "Main Street, Corner Shop",
		},
	}
}
