package catalog

const unsplash = "https://images.unsplash.com/"

var services = []Service{
	{
		ID:          "1",
		Name:        "Gel Toes Only",
		Description: "Professional gel application for toes, providing long-lasting shine and durability.",
		Price:       "R 180",
		Duration:    "1 hr",
		Image:       unsplash + "photo-1519014816548-bf5fe059798b?q=80&w=1200&auto=format&fit=crop",
		Category:    CategoryFeet,
	},
	{
		ID:          "2",
		Name:        "Gelish Hands (Rubber Base)",
		Description: "Strengthening rubber base application on natural nails with a premium Gelish finish.",
		Price:       "R 250",
		Duration:    "1 hr 20 min",
		Image:       unsplash + "photo-1604654894610-df63bc536371?q=80&w=1200&auto=format&fit=crop",
		Category:    CategoryNails,
	},
	{
		ID:          "3",
		Name:        "Acrylic/Polygel French",
		Description: "Expertly crafted acrylic or polygel nails with free-hand French art for a timeless look.",
		Price:       "R 380",
		Duration:    "1 hr 50 min",
		Image:       unsplash + "photo-1634712282287-14ed57b9cc89?q=80&w=1200&auto=format&fit=crop",
		Category:    CategoryNails,
	},
	{
		ID:          "4",
		Name:        "Acrylic Tips with Gelish",
		Description: "Full set of acrylic tips finished with your choice of vibrant gelish colors.",
		Price:       "R 330",
		Duration:    "1 hr",
		Image:       unsplash + "photo-1516252233870-df03dd358896?q=80&w=1200&auto=format&fit=crop",
		Category:    CategoryNails,
	},
	{
		ID:          "5",
		Name:        "Eyebrow Shaping & Tint",
		Description: "Precision mapping and tinting to define your natural brow structure.",
		Price:       "R 120",
		Duration:    "45 min",
		Image:       unsplash + "photo-1522337660859-02fbefca4702?q=80&w=1200&auto=format&fit=crop",
		Category:    CategoryFace,
	},
	{
		ID:          "6",
		Name:        "Special Occasion Makeup",
		Description: "Full glam or natural transformation tailored for weddings, events, or photoshoots.",
		Price:       "R 550",
		Duration:    "90 min",
		Image:       unsplash + "photo-1487412720507-e7ab37603c6f?q=80&w=1200&auto=format&fit=crop",
		Category:    CategoryMakeup,
	},
	{
		ID:          "7",
		Name:        "Gents Deluxe Manicure",
		Description: "Clean, professional nail care tailored specifically for the modern gentleman.",
		Price:       "R 220",
		Duration:    "45 min",
		Image:       unsplash + "photo-1519415510236-85591148f82f?q=80&w=1200&auto=format&fit=crop",
		Category:    CategoryGents,
	},
	{
		ID:          "8",
		Name:        "Full Body Waxing",
		Description: "Smooth, effective hair removal using premium wax suitable for sensitive skin.",
		Price:       "R 450",
		Duration:    "60 min",
		Image:       unsplash + "photo-1559599141-3816a0b3f11d?q=80&w=1200&auto=format&fit=crop",
		Category:    CategoryWaxing,
	},
}

var socialPosts = []SocialPost{
	{
		ID:       "s1",
		Platform: PlatformInstagram,
		Image:    unsplash + "photo-1521590832167-7bcbfaa6381f?q=80&w=800&auto=format&fit=crop",
		Caption:  "Chic pedicure with neutral polish at TA's Beauty Lounge, Midrand. The perfect Saturday treat. 💖",
		Date:     "2 hours ago",
	},
	{
		ID:       "s2",
		Platform: PlatformInstagram,
		Image:    unsplash + "photo-1512496011220-fd2b096874a9?q=80&w=800&auto=format&fit=crop",
		Caption:  "Comfortable beauty chairs waiting for you. Relax and rejuvenate in our Halfway Gardens sanctuary.",
		Date:     "Yesterday",
	},
	{
		ID:       "s3",
		Platform: PlatformInstagram,
		Image:    unsplash + "photo-1487412720507-e7ab37603c6f?q=80&w=800&auto=format&fit=crop",
		Caption:  "Acrylic artistry at its finest. Book with Portia for your next custom set!",
		Date:     "3 days ago",
	},
}

var testimonial = Testimonial{
	Quote:  "An absolutely sublime experience. The attention to detail in my acrylic set left me feeling truly rejuvenated. My aesthetic has been elevated.",
	Author: "Alexandra Sterling",
	Role:   "Midrand Local Patron",
	Avatar: unsplash + "photo-1494790108377-be9c29b29330?q=80&w=200&auto=format&fit=crop",
	Stars:  5,
}

// filterChips is the order of the category buttons on the menu page.
// Gents treatments stay reachable through All.
var filterChips = []Category{
	CategoryAll,
	CategoryNails,
	CategoryFeet,
	CategoryFace,
	CategoryMakeup,
	CategoryWaxing,
}
