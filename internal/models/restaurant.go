package models

// Restaurant is a static listing entry. Listings are served in-process;
// reviews reference them by ID without any existence check.
type Restaurant struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Cuisine     string  `json:"cuisine"`
	Location    string  `json:"location"`
	Rating      float64 `json:"rating"`
	PriceRange  string  `json:"priceRange"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// DefaultRestaurants returns the built-in listing set.
func DefaultRestaurants() []Restaurant {
	return []Restaurant{
		{
			ID:          "1",
			Name:        "Maseru Steakhouse",
			Cuisine:     "Steakhouse",
			Location:    "Maseru, Lesotho",
			Rating:      4.5,
			PriceRange:  "$$$",
			Image:       "/images/restaurant1.jpg",
			Description: "Premium steakhouse offering the finest cuts in Maseru.",
		},
		{
			ID:          "2",
			Name:        "Thaba-Bosiu Cultural Restaurant",
			Cuisine:     "Traditional Basotho",
			Location:    "Thaba-Bosiu, Lesotho",
			Rating:      4.8,
			PriceRange:  "$$",
			Image:       "/images/restaurant2.jpg",
			Description: "Authentic Basotho cuisine with cultural performances.",
		},
		{
			ID:          "3",
			Name:        "Maluti Bistro",
			Cuisine:     "International",
			Location:    "Leribe, Lesotho",
			Rating:      4.2,
			PriceRange:  "$$",
			Image:       "/images/restaurant3.jpg",
			Description: "Cozy bistro offering international and local dishes.",
		},
	}
}
