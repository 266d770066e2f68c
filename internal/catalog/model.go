package catalog

// Category groups treatments on the menu.
type Category string

const (
	CategoryAll    Category = "All"
	CategoryNails  Category = "Nails"
	CategoryFeet   Category = "Feet"
	CategoryFace   Category = "Face"
	CategoryMakeup Category = "Makeup"
	CategoryWaxing Category = "Waxing"
	CategoryGents  Category = "Gents"
)

// Service is a treatment on the lounge menu.
type Service struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Duration    string   `json:"duration"`
	Image       string   `json:"image"`
	Category    Category `json:"category"`
}

// Platform identifies where a social post was published.
type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
)

// SocialPost is a static entry in the social feed.
type SocialPost struct {
	ID       string   `json:"id"`
	Platform Platform `json:"platform"`
	Image    string   `json:"image"`
	Caption  string   `json:"caption"`
	Date     string   `json:"date"`
}

// Testimonial is a client quote shown on the home view.
type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
	Stars  int    `json:"stars"`
}
