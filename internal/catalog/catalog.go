package catalog

import "strings"

// Catalog serves the static treatment menu and feed content.
type Catalog struct {
	services    []Service
	posts       []SocialPost
	testimonial Testimonial
	chips       []Category
}

// New returns the lounge's built-in catalog.
func New() *Catalog {
	return NewWith(services, socialPosts)
}

// NewWith builds a catalog over the given data, used by tests and previews.
func NewWith(svcs []Service, posts []SocialPost) *Catalog {
	return &Catalog{
		services:    append([]Service(nil), svcs...),
		posts:       append([]SocialPost(nil), posts...),
		testimonial: testimonial,
		chips:       append([]Category(nil), filterChips...),
	}
}

// All returns every service in menu order.
func (c *Catalog) All() []Service {
	return append([]Service(nil), c.services...)
}

// Filter returns the services in category, preserving menu order.
// "All" and the empty string select everything; unknown categories select nothing.
func (c *Catalog) Filter(category Category) []Service {
	if category == "" || category == CategoryAll {
		return c.All()
	}
	out := make([]Service, 0, len(c.services))
	for _, s := range c.services {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// Featured returns the first n services for the home view teaser.
func (c *Catalog) Featured(n int) []Service {
	if n <= 0 {
		return []Service{}
	}
	if n > len(c.services) {
		n = len(c.services)
	}
	return append([]Service(nil), c.services[:n]...)
}

// ByID looks up a single service.
func (c *Catalog) ByID(id string) (Service, error) {
	id = strings.TrimSpace(id)
	for _, s := range c.services {
		if s.ID == id {
			return s, nil
		}
	}
	return Service{}, ErrServiceNotFound
}

// Categories returns the filter chips in display order.
func (c *Catalog) Categories() []Category {
	return append([]Category(nil), c.chips...)
}

// SocialPosts returns the feed entries.
func (c *Catalog) SocialPosts() []SocialPost {
	return append([]SocialPost(nil), c.posts...)
}

// Testimonial returns the featured client quote.
func (c *Catalog) Testimonial() Testimonial {
	return c.testimonial
}
