package memory

import "github.com/DRSN-tech/luxe-couture-api/internal/domain"

// sampleProducts собирается один раз при старте процесса и дальше только читается.
var sampleProducts = []domain.Product{
	{
		ID:       "st-laurent-coat",
		Name:     "Wool Cashmere Overcoat",
		Price:    2490.0,
		Gender:   "men",
		Category: "outerwear",
		Sizes:    []string{"S", "M", "L", "XL"},
		Images: []string{
			"https://images.unsplash.com/photo-1516826957135-700dedea698c?q=80&w=1400&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1490481651871-ab68de25d43d?q=80&w=1400&auto=format&fit=crop",
		},
		Description: description("Tailored Italian wool-cashmere blend with silk lining."),
		Tags:        []string{"coat", "cashmere", "luxury"},
		Featured:    true,
	},
	{
		ID:       "dior-heel-01",
		Name:     "Patent Leather Stiletto",
		Price:    980.0,
		Gender:   "women",
		Category: "shoes",
		Sizes:    []string{"35", "36", "37", "38", "39", "40"},
		Images: []string{
			"https://images.unsplash.com/photo-1520975922215-c0495a1fd8ec?q=80&w=1400&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1561808843-7c3b1b4e6b8c?q=80&w=1400&auto=format&fit=crop",
		},
		Description: description("Glossy patent leather with gold accent heel."),
		Tags:        []string{"heels", "gold"},
		Featured:    true,
		NewArrival:  true,
	},
	{
		ID:       "gucci-bag-velvet",
		Name:     "Velvet Chain Shoulder Bag",
		Price:    3150.0,
		Gender:   "women",
		Category: "bags",
		Sizes:    []string{},
		Images: []string{
			"https://images.unsplash.com/photo-1548036328-c9fa89d128fa?q=80&w=1400&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1547949003-9792a18a2601?q=80&w=1400&auto=format&fit=crop",
		},
		Description: description("Signature velvet with brushed gold chain."),
		Tags:        []string{"bag", "chain", "velvet"},
		NewArrival:  true,
	},
	{
		ID:       "balenciaga-tee",
		Name:     "Logo Cotton T-Shirt",
		Price:    450.0,
		Gender:   "unisex",
		Category: "tops",
		Sizes:    []string{"XS", "S", "M", "L", "XL"},
		Images: []string{
			"https://images.unsplash.com/photo-1544441893-675973e31985?q=80&w=1400&auto=format&fit=crop",
		},
		Description: description("Premium heavyweight cotton with subtle logo print."),
		Tags:        []string{"t-shirt", "cotton"},
	},
	{
		ID:       "ysl-boots-chelsea",
		Name:     "Leather Chelsea Boots",
		Price:    1290.0,
		Gender:   "men",
		Category: "shoes",
		Sizes:    []string{"40", "41", "42", "43", "44"},
		Images: []string{
			"https://images.unsplash.com/photo-1519741497674-611481863552?q=80&w=1400&auto=format&fit=crop",
		},
		Description: description("Polished calfskin with elastic side panels."),
		Tags:        []string{"boots", "leather"},
		Featured:    true,
	},
}

// SampleProducts возвращает встроенный каталог. Срез общий для всех вызывающих: не изменять.
func SampleProducts() []domain.Product {
	return sampleProducts
}

func description(s string) *string {
	return &s
}
