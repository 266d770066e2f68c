package site

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCarouselLoops(t *testing.T) {
	c := NewCarousel(len(HeroSlides))
	assert.Equal(t, 0, c.Current())
	assert.Equal(t, 1, c.Next())
	assert.Equal(t, 0, c.Next())
	assert.Equal(t, 1, c.Prev())
	assert.Equal(t, 0, c.Prev())
}

func TestCarouselGoWraps(t *testing.T) {
	c := NewCarousel(3)
	assert.Equal(t, 2, c.Go(-1))
	assert.Equal(t, 1, c.Go(7))
	assert.Equal(t, 1, c.Current())
	assert.Equal(t, 2, c.NextIndex())
	assert.Equal(t, 0, c.PrevIndex())
	assert.Equal(t, 1, c.Current())
}

func TestCarouselFromQuery(t *testing.T) {
	assert.Equal(t, 0, CarouselFromQuery(2, "").Current())
	assert.Equal(t, 0, CarouselFromQuery(2, "abc").Current())
	assert.Equal(t, 1, CarouselFromQuery(2, "1").Current())
	assert.Equal(t, 1, CarouselFromQuery(2, "3").Current())
	assert.Equal(t, 0, CarouselFromQuery(0, "1").Current())
}

func TestAutoplayDelay(t *testing.T) {
	assert.Equal(t, 6*time.Second, AutoplayDelay)
	assert.Len(t, HeroSlides, 2)
}
