package repository

import (
	"slices"

	"realty-agent/domain"
)

var propertyData = []domain.Property{
	{
		ID:        1,
		Title:     "Modern Downtown Luxury Condo",
		Type:      domain.TypeCondo,
		Price:     850000,
		Location:  "Downtown District, NY",
		Address:   "123 Main Street, Downtown District, NY 10001",
		Bedrooms:  2,
		Bathrooms: 2,
		Area:      1200,
		YearBuilt: 2020,
		Featured:  true,
		Status:    "for-sale",
		Images: []string{
			"https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800&h=600&fit=crop",
		},
		Description: "Stunning modern condo with floor-to-ceiling windows offering breathtaking city views. Features include hardwood floors, granite countertops, stainless steel appliances, and access to building amenities including rooftop terrace, fitness center, and concierge service.",
		Features: []string{
			"Floor-to-ceiling windows",
			"Hardwood floors",
			"Granite countertops",
			"Stainless steel appliances",
			"In-unit laundry",
			"Balcony with city views",
			"Building gym",
			"Rooftop terrace",
			"24/7 concierge",
			"Pet-friendly",
		},
		Agent: domain.Agent{
			Name:  "Sarah Johnson",
			Phone: "(555) 123-4567",
			Email: "sarah@premiumrealestate.com",
			Image: "https://images.unsplash.com/photo-1580489944761-15a19d654956?w=200&h=200&fit=crop&crop=face",
		},
		Coordinates: domain.Coordinates{Lat: 40.7589, Lng: -73.9851},
	},
	{
		ID:        2,
		Title:     "Charming Victorian Family Home",
		Type:      domain.TypeHouse,
		Price:     675000,
		Location:  "Maple Heights, NY",
		Address:   "456 Oak Avenue, Maple Heights, NY 10002",
		Bedrooms:  4,
		Bathrooms: 3,
		Area:      2400,
		YearBuilt: 1925,
		Featured:  true,
		Status:    "for-sale",
		Images: []string{
			"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1513584684374-8bab748fbf90?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=800&h=600&fit=crop",
		},
		Description: "Beautiful Victorian home with original architectural details preserved and modern updates throughout. Features spacious rooms, original hardwood floors, updated kitchen and bathrooms, large backyard perfect for families, and detached two-car garage.",
		Features: []string{
			"Original hardwood floors",
			"Crown molding",
			"Fireplace",
			"Updated kitchen",
			"Master suite",
			"Large backyard",
			"Two-car garage",
			"Original stained glass",
			"Wrap-around porch",
			"Basement storage",
		},
		Agent: domain.Agent{
			Name:  "Michael Chen",
			Phone: "(555) 234-5678",
			Email: "michael@premiumrealestate.com",
			Image: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=200&h=200&fit=crop&crop=face",
		},
		Coordinates: domain.Coordinates{Lat: 40.7505, Lng: -73.9934},
	},
	{
		ID:        3,
		Title:     "Waterfront Luxury Apartment",
		Type:      domain.TypeApartment,
		Price:     1200000,
		Location:  "Harbor View, NY",
		Address:   "789 Waterfront Drive, Harbor View, NY 10003",
		Bedrooms:  3,
		Bathrooms: 2,
		Area:      1800,
		YearBuilt: 2018,
		Featured:  true,
		Status:    "for-sale",
		Images: []string{
			"https://images.unsplash.com/photo-1493663284031-b7e3aefcae8e?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1567496898669-ee935f5f647a?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1571055107559-3e67626fa8be?w=800&h=600&fit=crop",
		},
		Description: "Exceptional waterfront apartment with panoramic harbor views. Open-plan living with premium finishes, chef's kitchen with high-end appliances, master suite with walk-in closet, and private balcony overlooking the water. Building amenities include pool, spa, and marina access.",
		Features: []string{
			"Panoramic water views",
			"Open floor plan",
			"Chef's kitchen",
			"High-end appliances",
			"Walk-in closets",
			"Private balcony",
			"Building pool",
			"Spa access",
			"Marina privileges",
			"Valet parking",
		},
		Agent: domain.Agent{
			Name:  "Emily Rodriguez",
			Phone: "(555) 345-6789",
			Email: "emily@premiumrealestate.com",
			Image: "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=200&h=200&fit=crop&crop=face",
		},
		Coordinates: domain.Coordinates{Lat: 40.7614, Lng: -73.9776},
	},
	{
		ID:        4,
		Title:     "Contemporary Townhouse",
		Type:      domain.TypeTownhouse,
		Price:     925000,
		Location:  "Riverside Commons, NY",
		Address:   "321 River Street, Riverside Commons, NY 10004",
		Bedrooms:  3,
		Bathrooms: 3,
		Area:      2000,
		YearBuilt: 2019,
		Featured:  false,
		Status:    "for-sale",
		Images: []string{
			"https://images.unsplash.com/photo-1568605114967-8130f3a36994?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1484154218962-a197022b5858?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1449844908441-8829872d2607?w=800&h=600&fit=crop",
		},
		Description: "Sleek contemporary townhouse with modern design and high-quality finishes. Features include open living spaces, gourmet kitchen with quartz countertops, rooftop deck, attached garage, and smart home technology throughout.",
		Features: []string{
			"Contemporary design",
			"Open living spaces",
			"Quartz countertops",
			"Rooftop deck",
			"Attached garage",
			"Smart home tech",
			"Energy efficient",
			"Skylight",
			"Wine cellar",
			"Home office",
		},
		Agent: domain.Agent{
			Name:  "David Kim",
			Phone: "(555) 456-7890",
			Email: "david@premiumrealestate.com",
			Image: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=200&h=200&fit=crop&crop=face",
		},
		Coordinates: domain.Coordinates{Lat: 40.7544, Lng: -73.9862},
	},
	{
		ID:        5,
		Title:     "Cozy Studio Apartment",
		Type:      domain.TypeApartment,
		Price:     425000,
		Location:  "Arts District, NY",
		Address:   "654 Gallery Lane, Arts District, NY 10005",
		Bedrooms:  1,
		Bathrooms: 1,
		Area:      600,
		YearBuilt: 2021,
		Featured:  false,
		Status:    "for-sale",
		Images: []string{
			"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1586105251261-72a756497a11?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=800&h=600&fit=crop",
		},
		Description: "Perfect starter home or investment property in the vibrant Arts District. This modern studio features efficient layout, large windows, murphy bed, compact kitchen with full appliances, and building amenities including rooftop garden and bike storage.",
		Features: []string{
			"Efficient layout",
			"Large windows",
			"Murphy bed",
			"Full kitchen",
			"Hardwood floors",
			"High ceilings",
			"Rooftop garden",
			"Bike storage",
			"Laundry room",
			"Pet-friendly",
		},
		Agent: domain.Agent{
			Name:  "Lisa Thompson",
			Phone: "(555) 567-8901",
			Email: "lisa@premiumrealestate.com",
			Image: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=200&h=200&fit=crop&crop=face",
		},
		Coordinates: domain.Coordinates{Lat: 40.7282, Lng: -74.0776},
	},
	{
		ID:        6,
		Title:     "Suburban Family Estate",
		Type:      domain.TypeHouse,
		Price:     1450000,
		Location:  "Green Hills, NY",
		Address:   "987 Elm Court, Green Hills, NY 10006",
		Bedrooms:  5,
		Bathrooms: 4,
		Area:      3500,
		YearBuilt: 2015,
		Featured:  true,
		Status:    "for-sale",
		Images: []string{
			"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1600607687644-aac4c3eac7f4?w=800&h=600&fit=crop",
		},
		Description: "Magnificent family estate on 1.2 acres with mature landscaping. Features include grand foyer, formal living and dining rooms, gourmet kitchen with island, family room with fireplace, master suite with sitting area, finished basement, and three-car garage.",
		Features: []string{
			"1.2 acre lot",
			"Grand foyer",
			"Formal dining room",
			"Gourmet kitchen",
			"Family room fireplace",
			"Master sitting area",
			"Finished basement",
			"Three-car garage",
			"Swimming pool",
			"Tennis court",
		},
		Agent: domain.Agent{
			Name:  "Robert Davis",
			Phone: "(555) 678-9012",
			Email: "robert@premiumrealestate.com",
			Image: "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=200&h=200&fit=crop&crop=face",
		},
		Coordinates: domain.Coordinates{Lat: 40.7831, Lng: -73.9712},
	},
	{
		ID:        7,
		Title:     "Urban Loft Conversion",
		Type:      domain.TypeCondo,
		Price:     775000,
		Location:  "Industrial Quarter, NY",
		Address:   "246 Factory Street, Industrial Quarter, NY 10007",
		Bedrooms:  2,
		Bathrooms: 2,
		Area:      1400,
		YearBuilt: 2017,
		Featured:  false,
		Status:    "for-sale",
		Images: []string{
			"https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1551816230-ef5deaed4a26?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1574362848149-11496d93a7c7?w=800&h=600&fit=crop",
		},
		Description: "Industrial chic loft in converted factory building. Features exposed brick walls, original wooden beams, polished concrete floors, floor-to-ceiling windows, modern kitchen with stainless steel appliances, and unique architectural details throughout.",
		Features: []string{
			"Exposed brick walls",
			"Original wood beams",
			"Concrete floors",
			"Industrial windows",
			"High ceilings",
			"Open floor plan",
			"Modern kitchen",
			"Unique architecture",
			"Freight elevator",
			"Shared rooftop",
		},
		Agent: domain.Agent{
			Name:  "Jennifer Wilson",
			Phone: "(555) 789-0123",
			Email: "jennifer@premiumrealestate.com",
			Image: "https://images.unsplash.com/photo-1487412720507-e7ab37603c6f?w=200&h=200&fit=crop&crop=face",
		},
		Coordinates: domain.Coordinates{Lat: 40.7505, Lng: -73.9971},
	},
	{
		ID:        8,
		Title:     "Garden Apartment",
		Type:      domain.TypeApartment,
		Price:     550000,
		Location:  "Parkside, NY",
		Address:   "135 Garden Terrace, Parkside, NY 10008",
		Bedrooms:  2,
		Bathrooms: 1,
		Area:      950,
		YearBuilt: 1955,
		Featured:  false,
		Status:    "for-sale",
		Images: []string{
			"https://images.unsplash.com/photo-1507089947368-19c1da9775ae?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1484154218962-a197022b5858?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1493809842364-78817add7ffb?w=800&h=600&fit=crop",
		},
		Description: "Charming garden apartment with private patio overlooking beautifully maintained communal gardens. Features updated kitchen and bathroom, original hardwood floors, large windows, ample storage, and access to shared outdoor spaces including BBQ area and children's playground.",
		Features: []string{
			"Private patio",
			"Garden access",
			"Updated kitchen",
			"Hardwood floors",
			"Large windows",
			"Ample storage",
			"BBQ area",
			"Playground",
			"Pet-friendly",
			"Parking space",
		},
		Agent: domain.Agent{
			Name:  "Mark Anderson",
			Phone: "(555) 890-1234",
			Email: "mark@premiumrealestate.com",
			Image: "https://images.unsplash.com/photo-1566492031773-4f4e44671d66?w=200&h=200&fit=crop&crop=face",
		},
		Coordinates: domain.Coordinates{Lat: 40.7505, Lng: -73.9757},
	},
	{
		ID:        9,
		Title:     "Luxury Penthouse Suite",
		Type:      domain.TypeCondo,
		Price:     2500000,
		Location:  "Skyline Heights, NY",
		Address:   "1 Sky Tower, Skyline Heights, NY 10009",
		Bedrooms:  4,
		Bathrooms: 3,
		Area:      2800,
		YearBuilt: 2022,
		Featured:  true,
		Status:    "for-sale",
		Images: []string{
			"https://images.unsplash.com/photo-1600607687920-4e2a09cf159d?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1600566753086-00f18fb6b3ea?w=800&h=600&fit=crop",
		},
		Description: "Ultimate luxury penthouse with 360-degree city views. Features include private elevator access, expansive terraces, chef's kitchen with premium appliances, master suite with spa-like bathroom, home theater, wine cellar, and access to exclusive building amenities.",
		Features: []string{
			"360-degree views",
			"Private elevator",
			"Expansive terraces",
			"Chef's kitchen",
			"Premium appliances",
			"Spa bathroom",
			"Home theater",
			"Wine cellar",
			"Concierge service",
			"Valet parking",
		},
		Agent: domain.Agent{
			Name:  "Victoria Sterling",
			Phone: "(555) 901-2345",
			Email: "victoria@premiumrealestate.com",
			Image: "https://images.unsplash.com/photo-1479936343636-73cdc5aae0c3?w=200&h=200&fit=crop&crop=face",
		},
		Coordinates: domain.Coordinates{Lat: 40.7614, Lng: -73.9853},
	},
	{
		ID:        10,
		Title:     "Historic Brownstone",
		Type:      domain.TypeTownhouse,
		Price:     1850000,
		Location:  "Heritage Row, NY",
		Address:   "42 Heritage Row, Historic District, NY 10010",
		Bedrooms:  4,
		Bathrooms: 3,
		Area:      2600,
		YearBuilt: 1890,
		Featured:  false,
		Status:    "for-sale",
		Images: []string{
			"https://images.unsplash.com/photo-1565182999561-18d7dc61c393?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1583608205776-bfd35f0d9f83?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=800&h=600&fit=crop",
		},
		Description: "Meticulously restored historic brownstone in prestigious Heritage Row. Features original architectural details, modern kitchen and bathrooms, period fireplaces, restored original floors, private garden, and authentic Victorian charm throughout.",
		Features: []string{
			"Historic designation",
			"Original details",
			"Period fireplaces",
			"Restored floors",
			"Modern kitchen",
			"Private garden",
			"Victorian charm",
			"High ceilings",
			"Original molding",
			"Basement level",
		},
		Agent: domain.Agent{
			Name:  "Charles Harrison",
			Phone: "(555) 012-3456",
			Email: "charles@premiumrealestate.com",
			Image: "https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?w=200&h=200&fit=crop&crop=face",
		},
		Coordinates: domain.Coordinates{Lat: 40.7282, Lng: -73.9942},
	},
}

var propertyTypes = []domain.PropertyTypeOption{
	{Value: domain.TypeHouse, Label: "House", Icon: "fas fa-home"},
	{Value: domain.TypeApartment, Label: "Apartment", Icon: "fas fa-building"},
	{Value: domain.TypeCondo, Label: "Condo", Icon: "fas fa-city"},
	{Value: domain.TypeTownhouse, Label: "Townhouse", Icon: "fas fa-hotel"},
}

var priceRanges = []domain.PriceRange{
	{Value: "0-500000", Label: "Under $500K", Min: 0, Max: 500_000},
	{Value: "500000-750000", Label: "$500K - $750K", Min: 500_000, Max: 750_000},
	{Value: "750000-1000000", Label: "$750K - $1M", Min: 750_000, Max: 1_000_000},
	{Value: "1000000-1500000", Label: "$1M - $1.5M", Min: 1_000_000, Max: 1_500_000},
	{Value: "1500000+", Label: "$1.5M+", Min: 1_500_000},
}

var locations = []string{
	"Downtown District",
	"Maple Heights",
	"Harbor View",
	"Riverside Commons",
	"Arts District",
	"Green Hills",
	"Industrial Quarter",
	"Parkside",
	"Skyline Heights",
	"Heritage Row",
}

func PropertyTypes() []domain.PropertyTypeOption { return slices.Clone(propertyTypes) }

func PriceRanges() []domain.PriceRange { return slices.Clone(priceRanges) }

func Locations() []string { return slices.Clone(locations) }
