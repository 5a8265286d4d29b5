package catalog

// defaultMaterials is the built-in three-entry material catalog.
var defaultMaterials = Materials{
	{
		Key:  "concrete-4000psi",
		Name: "Concrete 4000 PSI",
		Type: MaterialConcrete,
		Properties: MaterialProperties{
			Density:        150,
			Strength:       4000,
			Cost:           120,
			Sustainability: 6,
			FireRating:     "4-hour",
		},
		Environmental: Environmental{
			CarbonFootprint: 0.9,
			Recyclability:   0.8,
			LifeCycle:       100,
		},
	},
	{
		Key:  "steel-a36",
		Name: "Steel A36",
		Type: MaterialSteel,
		Properties: MaterialProperties{
			Density:        490,
			Strength:       36000,
			Cost:           800,
			Sustainability: 7,
			FireRating:     "2-hour",
		},
		Environmental: Environmental{
			CarbonFootprint: 1.8,
			Recyclability:   0.95,
			LifeCycle:       75,
		},
	},
	{
		Key:  "engineered-wood",
		Name: "Engineered Wood",
		Type: MaterialWood,
		Properties: MaterialProperties{
			Density:        35,
			Strength:       1500,
			Cost:           45,
			Sustainability: 9,
			FireRating:     "1-hour",
		},
		Environmental: Environmental{
			CarbonFootprint: 0.3,
			Recyclability:   0.7,
			LifeCycle:       50,
		},
	},
}

// defaultCodes holds the built-in building code rule tables.
var defaultCodes = Codes{
	"IBC-2021": {
		{
			Description: "Habitable rooms must meet the minimum floor area",
			Category:    "room",
			Requirement: "Minimum room area",
			Value:       70,
			Unit:        " sq ft",
		},
		{
			Description: "Egress corridors must meet the minimum clear width",
			Category:    "egress",
			Requirement: "Minimum corridor width",
			Value:       3,
			Unit:        " ft",
		},
		{
			Description: "Habitable spaces must meet the minimum ceiling height",
			Category:    "room",
			Requirement: "Minimum ceiling height",
			Value:       7,
			Unit:        " ft",
		},
		{
			Description: "Load-bearing assemblies must carry a fire-resistance rating",
			Category:    "fire",
			Requirement: "Minimum fire rating",
			Value:       "1-hour",
		},
	},
	"IRC-2021": {
		{
			Description: "Habitable rooms must meet the minimum floor area",
			Category:    "room",
			Requirement: "Minimum room area",
			Value:       70,
			Unit:        " sq ft",
		},
		{
			Description: "Hallways must meet the minimum width",
			Category:    "egress",
			Requirement: "Minimum corridor width",
			Value:       3,
			Unit:        " ft",
		},
		{
			Description: "Habitable spaces must meet the minimum ceiling height",
			Category:    "room",
			Requirement: "Minimum ceiling height",
			Value:       7,
			Unit:        " ft",
		},
	},
	"ADA-2010": {
		{
			Description: "Accessible routes must meet the minimum clear width",
			Category:    "accessibility",
			Requirement: "Minimum corridor width",
			Value:       3,
			Unit:        " ft",
		},
		{
			Description: "Accessible bathrooms must provide turning space",
			Category:    "accessibility",
			Requirement: "Minimum room area",
			Value:       30,
			Unit:        " sq ft",
			Expression:  `room.type != "bathroom" || room.area >= 30.0`,
		},
	},
}

// DefaultMaterials returns the built-in material catalog.
// The returned slice is shared reference data; callers must not mutate it.
func DefaultMaterials() Materials {
	return defaultMaterials
}

// DefaultCodes returns the built-in building code tables.
// The returned map is shared reference data; callers must not mutate it.
func DefaultCodes() Codes {
	return defaultCodes
}

// Default returns the built-in catalog bundle.
func Default() *Catalog {
	return &Catalog{
		Materials: defaultMaterials,
		Codes:     defaultCodes,
	}
}
