package site

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wolfman30/tas-beauty-lounge/internal/advisor"
	"github.com/wolfman30/tas-beauty-lounge/internal/booking"
	"github.com/wolfman30/tas-beauty-lounge/internal/catalog"
	"github.com/wolfman30/tas-beauty-lounge/internal/observability/metrics"
	"github.com/wolfman30/tas-beauty-lounge/pkg/logging"
)

const recommendationsJSON = `{"recommendations":[
	{"title":"Hydra Glow Facial","description":"Deep hydration.","benefit":"Plump skin"},
	{"title":"Gelish Ritual","description":"Long wear colour.","benefit":"Polished hands"},
	{"title":"Brow Sculpt","description":"Shape and tint.","benefit":"Framed eyes"}]}`

type stubGenerator struct {
	mu       sync.Mutex
	insights string
	err      error
	consults int
	block    chan struct{}
}

func (s *stubGenerator) Generate(ctx context.Context, req advisor.GenerateRequest) (advisor.GenerateResponse, error) {
	if s.block != nil && !req.JSON {
		select {
		case <-s.block:
		case <-ctx.Done():
			return advisor.GenerateResponse{}, ctx.Err()
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return advisor.GenerateResponse{}, s.err
	}
	if req.JSON {
		s.consults++
		return advisor.GenerateResponse{Text: recommendationsJSON}, nil
	}
	return advisor.GenerateResponse{Text: s.insights}, nil
}

type testSite struct {
	router http.Handler
	gen    *stubGenerator
	store  *booking.MemoryStore
}

func newTestSite(t *testing.T, gen *stubGenerator) *testSite {
	t.Helper()
	return newTestSiteWithWait(t, gen, 0)
}

func newTestSiteWithWait(t *testing.T, gen *stubGenerator, wait time.Duration) *testSite {
	t.Helper()
	logger := logging.New("error")
	m := metrics.NewSiteMetrics(prometheus.NewRegistry())
	cat := catalog.New()
	store := booking.NewMemoryStore(0)

	cfg := PagesConfig{
		Catalog:      cat,
		Bookings:     booking.NewService(store, cat, m, logger),
		InsightsWait: wait,
		Logger:       logger,
	}
	if gen != nil {
		cfg.Consultant = advisor.NewConsultant(gen, "consult-model", 0, m, logger)
		cfg.Insights = advisor.NewInsightsFetcher(gen, advisor.NewMemoryInsightsCache(), advisor.InsightsConfig{Model: "location-model"}, m, logger)
	}
	pages, err := NewPages(cfg)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Get("/", pages.Home)
	r.Get("/services", pages.Services)
	r.Post("/consultation", pages.Consult)
	r.Post("/booking", pages.OpenBooking)
	r.Post("/booking/{sessionID}", pages.UpdateBooking)
	return &testSite{router: r, gen: gen, store: store}
}

func (s *testSite) get(t *testing.T, target string) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec.Code, rec.Body.String()
}

func (s *testSite) post(t *testing.T, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func TestNewPagesRequiresBookings(t *testing.T) {
	_, err := NewPages(PagesConfig{})
	require.Error(t, err)
}

func TestHomeRendersSections(t *testing.T) {
	site := newTestSite(t, &stubGenerator{insights: "Close to Mall of Africa and the Gautrain."})

	code, body := site.get(t, "/")
	require.Equal(t, http.StatusOK, code)
	for _, id := range ObservedSections {
		assert.Contains(t, body, `id="`+id+`"`)
	}
	assert.Contains(t, body, "Artistry in Every Detail")
	assert.Contains(t, body, "Gel Toes Only")
	assert.NotContains(t, body, "Gents Deluxe Manicure")
	assert.Contains(t, body, "Close to Mall of Africa and the Gautrain.")
	assert.Contains(t, body, "View on Maps")
	assert.Contains(t, body, "Alexandra Sterling")
	assert.Contains(t, body, "Mon - Sat")
	assert.Contains(t, body, `<header class="site-header" data-scroll-threshold="50">`)
	assert.Contains(t, body, "window.scrollY > threshold")
}

func TestHomeInsightsFailure(t *testing.T) {
	site := newTestSite(t, &stubGenerator{err: errors.New("upstream down")})

	code, body := site.get(t, "/")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "Unable to load area insights.")
}

func TestHomeDoesNotWaitOnColdInsights(t *testing.T) {
	gen := &stubGenerator{insights: "Close to Mall of Africa.", block: make(chan struct{})}
	site := newTestSiteWithWait(t, gen, 20*time.Millisecond)

	code, body := site.get(t, "/")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "Gathering local highlights.")
	assert.NotContains(t, body, "Unable to load area insights.")

	close(gen.block)
	assert.Eventually(t, func() bool {
		_, body := site.get(t, "/")
		return strings.Contains(body, "Close to Mall of Africa.")
	}, time.Second, 10*time.Millisecond)
}

func TestHomeWithoutModel(t *testing.T) {
	site := newTestSite(t, nil)

	code, body := site.get(t, "/")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "Unable to load area insights.")
	assert.Contains(t, body, "Reveal My Personal Plan")
}

func TestHomeSlideQuery(t *testing.T) {
	site := newTestSite(t, nil)

	_, body := site.get(t, "/?slide=1")
	assert.Contains(t, body, `href="/?slide=0" aria-label="Previous slide"`)
	assert.Contains(t, body, `href="/?slide=0" aria-label="Next slide"`)
	assert.Regexp(t, `class="slide active"[^>]*photo-1522337660859`, body)
}

func TestHomeSectionHighlightsNav(t *testing.T) {
	site := newTestSite(t, nil)

	_, body := site.get(t, "/?section=about")
	assert.Contains(t, body, `<a href="/?section=about#about" class="active" aria-current="page">About</a>`)
	assert.Contains(t, body, `<header class="site-header is-solid" data-scroll-threshold="50">`)

	_, body = site.get(t, "/?section=gallery")
	assert.NotContains(t, body, `aria-current="page"`)
}

func TestServicesFilter(t *testing.T) {
	site := newTestSite(t, nil)

	code, body := site.get(t, "/services?category=Nails")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "Gelish Hands (Rubber Base)")
	assert.Contains(t, body, "Acrylic Tips with Gelish")
	assert.NotContains(t, body, "Gel Toes Only")
	assert.Contains(t, body, `<a href="/services?category=Nails" class="active" aria-current="true">Nails</a>`)
	assert.Contains(t, body, `<a href="/services" class="active" aria-current="page">Menu</a>`)
	assert.Contains(t, body, `<header class="site-header is-solid" data-scroll-threshold="50">`)

	_, body = site.get(t, "/services")
	for _, svc := range catalog.New().All() {
		assert.Contains(t, body, template.HTMLEscapeString(svc.Name))
	}
	assert.Contains(t, body, "Eyebrow Shaping &amp; Tint")
	assert.NotContains(t, body, ">Gents</a>")

	_, body = site.get(t, "/services?category=Gents")
	assert.Contains(t, body, "Gents Deluxe Manicure")

	_, body = site.get(t, "/services?category=Spa")
	assert.Contains(t, body, "No treatments in this category yet.")
}

func TestConsultationForm(t *testing.T) {
	gen := &stubGenerator{insights: "Lovely area."}
	site := newTestSite(t, gen)

	rec := site.post(t, "/consultation", url.Values{"concern": {"dull skin"}, "skin_type": {"dry"}})
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Hydra Glow Facial")
	assert.Contains(t, body, "Reset Consultation")
	assert.Equal(t, 1, gen.consults)
}

func TestConsultationFormEmptyConcern(t *testing.T) {
	gen := &stubGenerator{}
	site := newTestSite(t, gen)

	rec := site.post(t, "/consultation", url.Values{"concern": {"   "}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Reveal My Personal Plan")
	assert.Equal(t, 0, gen.consults)
}

func TestConsultationFormInvalidSkin(t *testing.T) {
	site := newTestSite(t, &stubGenerator{})

	rec := site.post(t, "/consultation", url.Values{"concern": {"acne"}, "skin_type": {"scaly"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookingModalFlow(t *testing.T) {
	site := newTestSite(t, nil)

	rec := site.post(t, "/booking", url.Values{"return": {"/services?category=Face"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/services", loc.Path)
	assert.Equal(t, "Face", loc.Query().Get("category"))
	assert.Equal(t, "reserve", loc.Fragment)
	id := loc.Query().Get("booking")
	require.NotEmpty(t, id)
	assert.Equal(t, 1, site.store.Len())

	_, body := site.get(t, loc.RequestURI())
	assert.Contains(t, body, "Select Treatment")
	assert.Contains(t, body, "Step 1 of 3")

	back := url.Values{"return": {"/"}}
	step := func(action string, extra url.Values) *httptest.ResponseRecorder {
		form := url.Values{"action": {action}}
		for k, v := range back {
			form[k] = v
		}
		for k, v := range extra {
			form[k] = v
		}
		return site.post(t, "/booking/"+id, form)
	}

	rec = step("select", url.Values{"service_id": {"5"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	_, body = site.get(t, "/?booking="+id)
	assert.Contains(t, body, "Choose Appointment")
	assert.Contains(t, body, "Eyebrow Shaping &amp; Tint")
	assert.Contains(t, body, "05:30 PM")

	rec = step("back", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	_, body = site.get(t, "/?booking="+id)
	assert.Regexp(t, `<li class="selected">\s*<form[^>]*>\s*<input[^>]*>\s*<input type="hidden" name="service_id" value="5">`, body)

	rec = step("select", url.Values{"service_id": {"6"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = step("continue", url.Values{"date": {"2026-12-24"}, "time": {"11:30 AM"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	_, body = site.get(t, "/?booking="+id)
	assert.Contains(t, body, "Final Confirmation")

	rec = step("confirm", url.Values{"name": {"Lerato"}, "email": {"lerato@example.com"}, "phone": {"0820000000"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, 0, site.store.Len())

	_, body = site.get(t, "/?booking="+id)
	assert.NotContains(t, body, `id="reserve"`)
}

func TestBookingModalRejectsOutOfOrder(t *testing.T) {
	site := newTestSite(t, nil)

	rec := site.post(t, "/booking", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/", loc.Path)
	id := loc.Query().Get("booking")

	rec = site.post(t, "/booking/"+id, url.Values{"action": {"confirm"}})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = site.post(t, "/booking/"+id, url.Values{"action": {"select"}, "service_id": {"999"}})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = site.post(t, "/booking/"+id, url.Values{"action": {"dance"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = site.post(t, "/booking/"+id, url.Values{"action": {"close"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, 0, site.store.Len())

	rec = site.post(t, "/booking/"+id, url.Values{"action": {"continue"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestReturnPathIgnoresForeignTargets(t *testing.T) {
	for raw, want := range map[string]string{
		"":                          "/",
		"https://evil.example/":     "/",
		"//evil.example/services":   "/",
		"/services":                 "/services",
		"/services?category=Waxing": "/services?category=Waxing",
		"/admin":                    "/",
	} {
		req := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(url.Values{"return": {raw}}.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		assert.Equal(t, want, returnPath(req), raw)
	}
}
