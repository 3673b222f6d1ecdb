package property

// DefaultCatalogue returns the ten-listing catalogue seeded into an empty
// store on first run so the public site has content before any admin work.
func DefaultCatalogue() []Property {
	catalogue := []Property{
		{
			ID: 1, Name: "Sunset Residences - Unit 4B", Type: "Residential Condo",
			Location: "Makati City", Price: 8500000, Size: "68 sqm",
			Bedrooms: 2, Bathrooms: 1,
			Features: "High-floor, City view, Parking", Status: StatusAvailable,
		},
		{
			ID: 2, Name: "Peninsula Tower - Unit 1801", Type: "Residential Condo",
			Location: "Makati City", Price: 12000000, Size: "98 sqm",
			Bedrooms: 2, Bathrooms: 2,
			Features: "Sea view, Balcony, Smart home", Status: StatusAvailable,
		},
		{
			ID: 3, Name: "Golden Hills - Lot 15", Type: "House & Lot",
			Location: "Cavite", Price: 5500000, Size: "120 sqm",
			Bedrooms: 3, Bathrooms: 2,
			Features: "Modern design, Swimming pool", Status: StatusAvailable,
		},
		{
			ID: 4, Name: "Eastwood Commercial Space - 201", Type: "Commercial Unit",
			Location: "Quezon City", Price: 4200000, Size: "45 sqm",
			Bedrooms: 0, Bathrooms: 1,
			Features: "Mixed-use zone, High foot traffic", Status: StatusAvailable,
		},
		{
			ID: 5, Name: "Verde Hills - Villa 3", Type: "House & Lot",
			Location: "Tagaytay", Price: 9800000, Size: "250 sqm",
			Bedrooms: 4, Bathrooms: 3,
			Features: "Scenic view, Large garden, Pool", Status: StatusAvailable,
		},
		{
			ID: 6, Name: "BGC Office Tower - Floor 22", Type: "Office Space",
			Location: "Bonifacio Global City", Price: 15000000, Size: "200 sqm",
			Bedrooms: 0, Bathrooms: 2,
			Features: "LEED certified, Modern infrastructure", Status: StatusAvailable,
		},
		{
			ID: 7, Name: "Jasmine Garden - Unit 5A", Type: "Residential Condo",
			Location: "Paranaque City", Price: 6800000, Size: "62 sqm",
			Bedrooms: 1, Bathrooms: 1,
			Features: "Garden view, Gym access", Status: StatusUnderOCU,
		},
		{
			ID: 8, Name: "Riverstone - Lot 8", Type: "House & Lot",
			Location: "Las Pinas", Price: 7200000, Size: "135 sqm",
			Bedrooms: 3, Bathrooms: 2,
			Features: "Gated community, 24/7 security", Status: StatusAvailable,
		},
		{
			ID: 9, Name: "Cyber Park - Unit 1202", Type: "Residential Condo",
			Location: "Mandaluyong City", Price: 9100000, Size: "85 sqm",
			Bedrooms: 2, Bathrooms: 2,
			Features: "Modern facilities, Near MRT", Status: StatusAvailable,
		},
		{
			ID: 10, Name: "Park Ridge - Penthouse", Type: "Residential Condo",
			Location: "Makati City", Price: 18500000, Size: "160 sqm",
			Bedrooms: 3, Bathrooms: 2,
			Features: "Luxury finishes, Panoramic view", Status: StatusAvailable,
		},
	}

	for i := range catalogue {
		catalogue[i].SyncImages()
	}
	return catalogue
}
