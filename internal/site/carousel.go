package site

import (
	"strconv"
	"time"
)

// AutoplayDelay is how long a slide stays up before advancing.
const AutoplayDelay = 6 * time.Second

// Carousel is a looping cursor over a fixed number of slides.
type Carousel struct {
	size    int
	current int
}

// NewCarousel starts at the first of size slides.
func NewCarousel(size int) *Carousel {
	return &Carousel{size: size}
}

// CarouselFromQuery starts at the slide named by raw, the ?slide= value.
// Values that do not parse start at 0; out of range values wrap.
func CarouselFromQuery(size int, raw string) *Carousel {
	c := NewCarousel(size)
	if n, err := strconv.Atoi(raw); err == nil {
		c.Go(n)
	}
	return c
}

// Current is the index of the visible slide.
func (c *Carousel) Current() int {
	return c.current
}

// Size is the number of slides.
func (c *Carousel) Size() int {
	return c.size
}

// Next advances one slide, looping past the end.
func (c *Carousel) Next() int {
	return c.Go(c.current + 1)
}

// Prev steps back one slide, looping past the start.
func (c *Carousel) Prev() int {
	return c.Go(c.current - 1)
}

// Go jumps to slide i, wrapping in both directions.
func (c *Carousel) Go(i int) int {
	if c.size <= 0 {
		c.current = 0
		return 0
	}
	i %= c.size
	if i < 0 {
		i += c.size
	}
	c.current = i
	return i
}

// NextIndex peeks at the following slide without moving.
func (c *Carousel) NextIndex() int {
	return (&Carousel{size: c.size, current: c.current}).Next()
}

// PrevIndex peeks at the preceding slide without moving.
func (c *Carousel) PrevIndex() int {
	return (&Carousel{size: c.size, current: c.current}).Prev()
}
