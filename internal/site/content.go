package site

// Slide is one hero carousel frame.
type Slide struct {
	Image    string
	Title    string
	Subtitle string
}

// HeroSlides are shown on the home view.
var HeroSlides = []Slide{
	{
		Image:    "https://images.unsplash.com/photo-1562322140-8baeececf3df?q=80&w=2000&auto=format&fit=crop",
		Title:    "Artistry in Every Detail",
		Subtitle: "Premium Nail Care & Aesthetic Excellence",
	},
	{
		Image:    "https://images.unsplash.com/photo-1522337660859-02fbefca4702?q=80&w=2000&auto=format&fit=crop",
		Title:    "Unveil Your Radiance",
		Subtitle: "Exclusive Midrand Beauty Experience",
	},
}

// OpeningHours is a row of the visiting hours table.
type OpeningHours struct {
	Days  string
	Hours string
}

// Stylist is the featured team member in the about section.
type Stylist struct {
	Name  string
	Role  string
	Quote string
}

// Lounge holds the static copy rendered across the site.
type Lounge struct {
	Name          string
	Street        string
	Suburb        string
	Hours         []OpeningHours
	DirectionsURL string
	MapEmbedURL   string
	AboutLead     string
	AboutBody     string
	Stylist       Stylist
	InteriorImage string
	DetailImage   string
	Instagram     string
	InstagramURL  string
	Copyright     string
}

// DefaultLounge is the Midrand lounge.
var DefaultLounge = Lounge{
	Name:   "TA's Beauty Lounge",
	Street: "563 Seventh Road",
	Suburb: "Halfway Gardens, Midrand",
	Hours: []OpeningHours{
		{Days: "Mon - Sat", Hours: "08:30 - 18:00"},
		{Days: "Sunday", Hours: "09:00 - 14:00"},
	},
	DirectionsURL: "https://www.google.com/maps/dir/?api=1&destination=563+Seventh+Road+Midrand",
	MapEmbedURL:   "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3584.582455828456!2d28.114704!3d-25.981881!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x1e9571343770f171%3A0x7d018247072a3921!2s563%20Seventh%20Rd%2C%20Halfway%20Gardens%2C%20Midrand%2C%201686!5e0!3m2!1sen!2sza!4v1700000000000!5m2!1sen!2sza",
	AboutLead:     "TA's Beauty Lounge offers a peaceful and stylish setting where attention to detail and client comfort take center stage.",
	AboutBody:     "Our atmosphere is warm and welcoming, designed to make each visit a calming and enjoyable experience. With a focus on quality and care, every moment spent here leaves you feeling refreshed, confident, and well looked after.",
	Stylist: Stylist{
		Name:  "Portia",
		Role:  "Nail Tech & Beauty Therapist",
		Quote: "Dedicated to delivering artistry and care to every client, Portia leads our technical team with precision and passion.",
	},
	InteriorImage: "https://images.unsplash.com/photo-1570172619644-dfd03ed5d881?q=80&w=1200&auto=format&fit=crop",
	DetailImage:   "https://images.unsplash.com/photo-1596462502278-27bfac44221d?q=80&w=800&auto=format&fit=crop",
	Instagram:     "@TAsBeautyLounge",
	InstagramURL:  "https://instagram.com",
	Copyright:     "© 2024 TA'S BEAUTY LOUNGE MIDRAND. ALL RIGHTS RESERVED.",
}
