package advisor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wolfman30/tas-beauty-lounge/pkg/logging"
)

const sampleInsights = "Nestled in Halfway Gardens, moments from Mall of Africa and the Gautrain station."

func newTestFetcher(gen Generator, cache InsightsCache) *InsightsFetcher {
	return NewInsightsFetcher(gen, cache, InsightsConfig{
		Model:   "gemini-2.5-flash",
		Address: "563 Seventh Road, Midrand",
		TTL:     time.Hour,
	}, nil, logging.New("error"))
}

func TestFetchBuildsInsights(t *testing.T) {
	gen := &fakeGenerator{text: "  " + sampleInsights + "\n"}
	f := newTestFetcher(gen, nil)

	insights, err := f.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleInsights, insights.Text)
	require.Len(t, insights.Links, 1)
	assert.Equal(t, "View on Maps", insights.Links[0].Title)
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=563+Seventh+Road%2C+Midrand", insights.Links[0].URI)

	req := gen.requests[0]
	assert.Equal(t, "gemini-2.5-flash", req.Model)
	assert.False(t, req.JSON)
	assert.True(t, req.GroundWithMaps)
	assert.Contains(t, req.Prompt, "Tell me about the area around 563 Seventh Road, Midrand where TA's Beauty Lounge is located.")
}

func TestFetchUsesGroundedLinks(t *testing.T) {
	gen := &fakeGenerator{text: sampleInsights, sources: []GroundingSource{
		{Title: "Mall of Africa", URI: "https://maps.google.com/?cid=1"},
		{Title: "  ", URI: "https://maps.google.com/?cid=2"},
		{Title: "No link"},
	}}
	f := newTestFetcher(gen, nil)

	insights, err := f.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Link{
		{Title: "Mall of Africa", URI: "https://maps.google.com/?cid=1"},
		{Title: "View on Maps", URI: "https://maps.google.com/?cid=2"},
	}, insights.Links)
}

func TestFetchSurvivesCancelledLeader(t *testing.T) {
	gen := &fakeGenerator{text: sampleInsights, block: make(chan struct{})}
	f := newTestFetcher(gen, nil)

	leaderCtx, cancel := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := f.Fetch(leaderCtx)
		leaderErr <- err
	}()
	time.Sleep(20 * time.Millisecond)

	followerDone := make(chan *LocationInsights, 1)
	go func() {
		insights, err := f.Fetch(context.Background())
		assert.NoError(t, err)
		followerDone <- insights
	}()
	time.Sleep(20 * time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-leaderErr, context.Canceled)

	close(gen.block)
	select {
	case insights := <-followerDone:
		require.NotNil(t, insights)
		assert.Equal(t, sampleInsights, insights.Text)
	case <-time.After(time.Second):
		t.Fatal("follower did not receive insights")
	}
	assert.Equal(t, 1, gen.calls())
}

func TestWarmFillsCache(t *testing.T) {
	gen := &fakeGenerator{text: sampleInsights}
	f := newTestFetcher(gen, NewMemoryInsightsCache())

	f.Warm(context.Background())
	assert.Eventually(t, func() bool { return gen.calls() == 1 }, time.Second, 5*time.Millisecond)

	assert.Eventually(t, func() bool {
		cached, err := f.cache.Get(context.Background(), f.address)
		return err == nil && cached != nil
	}, time.Second, 5*time.Millisecond)

	_, err := f.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, gen.calls())
}

func TestFetchUsesCache(t *testing.T) {
	gen := &fakeGenerator{text: sampleInsights}
	f := newTestFetcher(gen, NewMemoryInsightsCache())

	for i := 0; i < 3; i++ {
		_, err := f.Fetch(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, 1, gen.calls())
}

func TestFetchWithoutCacheCallsEachTime(t *testing.T) {
	gen := &fakeGenerator{text: sampleInsights}
	f := newTestFetcher(gen, nil)

	_, _ = f.Fetch(context.Background())
	_, _ = f.Fetch(context.Background())
	assert.Equal(t, 2, gen.calls())
}

func TestFetchCollapsesConcurrentCalls(t *testing.T) {
	gen := &fakeGenerator{text: sampleInsights, block: make(chan struct{})}
	f := newTestFetcher(gen, nil)

	var wg sync.WaitGroup
	results := make([]*LocationInsights, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = f.Fetch(context.Background())
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(gen.block)
	wg.Wait()

	assert.Equal(t, 1, gen.calls())
	for _, r := range results {
		require.NotNil(t, r)
		assert.Equal(t, sampleInsights, r.Text)
	}
}

func TestFetchErrors(t *testing.T) {
	f := newTestFetcher(&fakeGenerator{err: errors.New("maps grounding unavailable")}, NewMemoryInsightsCache())
	_, err := f.Fetch(context.Background())
	require.Error(t, err)

	f = newTestFetcher(&fakeGenerator{text: "  "}, nil)
	_, err = f.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrEmptyInsights)
}

func TestMemoryInsightsCacheExpiry(t *testing.T) {
	cache := NewMemoryInsightsCache()
	now := time.Now()
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	miss, err := cache.Get(ctx, "addr")
	require.NoError(t, err)
	assert.Nil(t, miss)

	require.NoError(t, cache.Set(ctx, "addr", &LocationInsights{Text: "x", Links: []Link{{Title: "a"}}}, time.Minute))
	hit, err := cache.Get(ctx, "addr")
	require.NoError(t, err)
	require.NotNil(t, hit)
	hit.Links[0].Title = "mutated"

	again, _ := cache.Get(ctx, "addr")
	assert.Equal(t, "a", again.Links[0].Title)

	now = now.Add(2 * time.Minute)
	expired, err := cache.Get(ctx, "addr")
	require.NoError(t, err)
	assert.Nil(t, expired)
}

func TestRedisInsightsCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewRedisInsightsCache(client)
	ctx := context.Background()

	miss, err := cache.Get(ctx, "563 Seventh Road, Midrand")
	require.NoError(t, err)
	assert.Nil(t, miss)

	gen := &fakeGenerator{text: sampleInsights}
	f := newTestFetcher(gen, cache)
	_, err = f.Fetch(ctx)
	require.NoError(t, err)

	key := "location_insights:563 Seventh Road, Midrand"
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Hour, mr.TTL(key))

	cached, err := f.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleInsights, cached.Text)
	assert.Equal(t, 1, gen.calls())

	mr.FastForward(2 * time.Hour)
	_, err = f.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, gen.calls())
}

func TestRedisInsightsCacheReadFailureFallsThrough(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	require.NoError(t, mr.Set("location_insights:563 Seventh Road, Midrand", "not-json"))

	gen := &fakeGenerator{text: sampleInsights}
	f := newTestFetcher(gen, NewRedisInsightsCache(client))
	insights, err := f.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleInsights, insights.Text)
}
