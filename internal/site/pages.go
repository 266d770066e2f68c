package site

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/wolfman30/tas-beauty-lounge/internal/advisor"
	"github.com/wolfman30/tas-beauty-lounge/internal/booking"
	"github.com/wolfman30/tas-beauty-lounge/internal/catalog"
	"github.com/wolfman30/tas-beauty-lounge/pkg/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

// featuredCount is how many services the home view previews.
const featuredCount = 4

// Booking form actions posted to /booking/{sessionID}.
const (
	actionSelect   = "select"
	actionSchedule = "schedule"
	actionContinue = "continue"
	actionBack     = "back"
	actionContact  = "contact"
	actionConfirm  = "confirm"
	actionClose    = "close"
)

// PagesConfig wires the dependencies of the rendered site.
type PagesConfig struct {
	Catalog    *catalog.Catalog
	Bookings   *booking.Service
	Consultant *advisor.Consultant
	Insights   *advisor.InsightsFetcher
	// InsightsWait bounds how long a render waits on a cold insights fetch.
	// Zero waits for the fetch to finish.
	InsightsWait time.Duration
	Lounge       *Lounge
	Logger       *logging.Logger
}

// Pages renders the home and services views.
type Pages struct {
	catalog    *catalog.Catalog
	bookings   *booking.Service
	consultant *advisor.Consultant
	insights   *advisor.InsightsFetcher
	wait       time.Duration
	lounge     Lounge
	templates  map[View]*template.Template
	logger     *logging.Logger
}

// NewPages parses the page templates. Consultant and Insights may be nil when
// no model is configured; the widgets then render their fallback state.
func NewPages(cfg PagesConfig) (*Pages, error) {
	if cfg.Bookings == nil {
		return nil, errors.New("site: booking service is required")
	}
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.New()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	lounge := DefaultLounge
	if cfg.Lounge != nil {
		lounge = *cfg.Lounge
	}

	funcs := template.FuncMap{
		"stars": func(n int) []int { return make([]int, n) },
	}
	templates := make(map[View]*template.Template, 2)
	for view, page := range map[View]string{ViewHome: "home.html", ViewServices: "services.html"} {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html", "templates/booking.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("site: parse %s: %w", page, err)
		}
		templates[view] = tmpl
	}

	return &Pages{
		catalog:    cfg.Catalog,
		bookings:   cfg.Bookings,
		consultant: cfg.Consultant,
		insights:   cfg.Insights,
		wait:       cfg.InsightsWait,
		lounge:     lounge,
		templates:  templates,
		logger:     cfg.Logger,
	}, nil
}

type navItem struct {
	Name   string
	Href   string
	Active bool
}

type chip struct {
	Name   catalog.Category
	Href   string
	Active bool
}

type slideItem struct {
	Slide
	Index  int
	Active bool
}

type consultForm struct {
	Concern  string
	SkinType advisor.SkinType
	Options  []advisor.SkinOption
	Result   *advisor.Consultation
	// Throttled is set when the visitor sent too many consultations.
	Throttled bool
}

type bookingModal struct {
	booking.View
	Services []catalog.Service
	Return   string
}

type pageData struct {
	View        View
	Solid       bool
	ScrollAt    int
	Nav         []navItem
	Footer      []navItem
	Lounge      Lounge
	Slides      []slideItem
	PrevSlide   int
	NextSlide   int
	AutoplayMS  int64
	Featured    []catalog.Service
	Services    []catalog.Service
	Chips       []chip
	Category    catalog.Category
	Posts       []catalog.SocialPost
	Testimonial catalog.Testimonial
	Insights    *advisor.LocationInsights
	// InsightsPending is set while a cold insights fetch is still running.
	InsightsPending bool
	Consult         consultForm
	Booking         *bookingModal
	Return          string
}

// Home handles GET /
func (p *Pages) Home(w http.ResponseWriter, r *http.Request) {
	data := p.baseData(r, ViewHome)
	p.render(w, r, http.StatusOK, data)
}

// Services handles GET /services
func (p *Pages) Services(w http.ResponseWriter, r *http.Request) {
	data := p.baseData(r, ViewServices)
	p.render(w, r, http.StatusOK, data)
}

// Consult handles POST /consultation from the home view form.
func (p *Pages) Consult(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	skin, err := advisor.ParseSkinType(r.PostFormValue("skin_type"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	data := p.baseData(r, ViewHome)
	data.Consult.Concern = r.PostFormValue("concern")
	data.Consult.SkinType = skin

	if p.consultant != nil && strings.TrimSpace(data.Consult.Concern) != "" {
		result, err := p.consultant.Consult(r.Context(), data.Consult.Concern, skin)
		if err != nil {
			p.logger.Warn("consultation failed", "error", err)
		} else {
			data.Consult.Result = result
		}
	}
	p.render(w, r, http.StatusOK, data)
}

// ConsultLimited answers a throttled POST /consultation by re-rendering the
// home view with the visitor's answers kept and a retry notice.
func (p *Pages) ConsultLimited(w http.ResponseWriter, r *http.Request) {
	data := p.baseData(r, ViewHome)
	if err := r.ParseForm(); err == nil {
		data.Consult.Concern = r.PostFormValue("concern")
		if skin, err := advisor.ParseSkinType(r.PostFormValue("skin_type")); err == nil {
			data.Consult.SkinType = skin
		}
	}
	data.Consult.Throttled = true
	p.render(w, r, http.StatusTooManyRequests, data)
}

// OpenBooking handles POST /booking and shows the reservation modal.
func (p *Pages) OpenBooking(w http.ResponseWriter, r *http.Request) {
	back := returnPath(r)
	session, err := p.bookings.Open(r.Context())
	if err != nil {
		p.logger.Error("failed to open booking", "error", err)
		http.Error(w, "unable to open reservation", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, withBooking(back, session.ID), http.StatusSeeOther)
}

// UpdateBooking handles POST /booking/{sessionID}. The form's action field
// names the wizard transition to apply.
func (p *Pages) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	back := returnPath(r)
	ctx := r.Context()

	var err error
	open := true
	switch action := r.PostFormValue("action"); action {
	case actionSelect:
		_, err = p.bookings.SelectService(ctx, id, r.PostFormValue("service_id"))
	case actionSchedule:
		_, err = p.bookings.SetSchedule(ctx, id, r.PostFormValue("date"), r.PostFormValue("time"))
	case actionContinue:
		if _, err = p.bookings.SetSchedule(ctx, id, r.PostFormValue("date"), r.PostFormValue("time")); err == nil {
			_, err = p.bookings.Continue(ctx, id)
		}
	case actionBack:
		_, err = p.bookings.Back(ctx, id)
	case actionContact:
		_, err = p.bookings.SetContact(ctx, id, r.PostFormValue("name"), r.PostFormValue("email"), r.PostFormValue("phone"))
	case actionConfirm:
		open = false
		if _, err = p.bookings.SetContact(ctx, id, r.PostFormValue("name"), r.PostFormValue("email"), r.PostFormValue("phone")); err == nil {
			err = p.bookings.Confirm(ctx, id)
		}
	case actionClose:
		open = false
		err = p.bookings.Close(ctx, id)
	default:
		http.Error(w, fmt.Sprintf("unknown action %q", action), http.StatusBadRequest)
		return
	}

	switch {
	case err == nil:
	case errors.Is(err, booking.ErrSessionNotFound):
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	case errors.Is(err, booking.ErrInvalidTransition), errors.Is(err, catalog.ErrServiceNotFound):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	default:
		p.logger.Error("booking update failed", "error", err, "session_id", id)
		http.Error(w, "unable to update reservation", http.StatusInternalServerError)
		return
	}

	if !open {
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, withBooking(back, id), http.StatusSeeOther)
}

func (p *Pages) baseData(r *http.Request, view View) *pageData {
	q := r.URL.Query()

	observer := NewObserver()
	if section := q.Get("section"); section != "" {
		observer.Observe(section)
	}
	active := ActiveLink(view, observer.Active())

	data := &pageData{
		View:        view,
		Solid:       SolidHeader(view, observer.Active() != SectionHome),
		ScrollAt:    ScrollThreshold,
		Lounge:      p.lounge,
		Posts:       p.catalog.SocialPosts(),
		Testimonial: p.catalog.Testimonial(),
		Consult: consultForm{
			SkinType: advisor.SkinNormal,
			Options:  advisor.SkinOptions,
		},
		AutoplayMS: AutoplayDelay.Milliseconds(),
	}
	for _, link := range HeaderLinks {
		data.Nav = append(data.Nav, navItem{
			Name:   link.Name,
			Href:   ResolveLink(link).Href(),
			Active: link.ID == active,
		})
	}
	for _, link := range FooterLinks {
		data.Footer = append(data.Footer, navItem{Name: link.Name, Href: ResolveLink(link).Href()})
	}

	switch view {
	case ViewServices:
		category := catalog.Category(q.Get("category"))
		if category == "" {
			category = catalog.CategoryAll
		}
		data.Category = category
		data.Services = p.catalog.Filter(category)
		for _, c := range p.catalog.Categories() {
			data.Chips = append(data.Chips, chip{
				Name:   c,
				Href:   "/services?category=" + url.QueryEscape(string(c)),
				Active: c == category,
			})
		}
		data.Return = "/services?category=" + url.QueryEscape(string(category))
	default:
		carousel := CarouselFromQuery(len(HeroSlides), q.Get("slide"))
		for i, s := range HeroSlides {
			data.Slides = append(data.Slides, slideItem{Slide: s, Index: i, Active: i == carousel.Current()})
		}
		data.PrevSlide = carousel.PrevIndex()
		data.NextSlide = carousel.NextIndex()
		data.Featured = p.catalog.Featured(featuredCount)
		data.Insights, data.InsightsPending = p.loadInsights(r)
		data.Return = "/"
	}

	if id := q.Get("booking"); id != "" {
		data.Booking = p.loadBooking(r, id, data.Return)
	}
	return data
}

// loadInsights reports pending when the render wait ran out before the fetch
// finished.
func (p *Pages) loadInsights(r *http.Request) (*advisor.LocationInsights, bool) {
	if p.insights == nil {
		return nil, false
	}
	ctx := r.Context()
	if p.wait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.wait)
		defer cancel()
	}
	insights, err := p.insights.Fetch(ctx)
	switch {
	case err == nil:
		return insights, false
	case ctx.Err() != nil && r.Context().Err() == nil:
		return nil, true
	default:
		p.logger.Warn("location insights unavailable", "error", err)
		return nil, false
	}
}

func (p *Pages) loadBooking(r *http.Request, id, back string) *bookingModal {
	session, err := p.bookings.Get(r.Context(), id)
	if err != nil {
		if !errors.Is(err, booking.ErrSessionNotFound) {
			p.logger.Error("failed to load booking", "error", err, "session_id", id)
		}
		return nil
	}
	return &bookingModal{
		View:     p.bookings.Describe(session),
		Services: p.catalog.All(),
		Return:   back,
	}
}

func (p *Pages) render(w http.ResponseWriter, r *http.Request, status int, data *pageData) {
	tmpl, ok := p.templates[data.View]
	if !ok {
		http.NotFound(w, r)
		return
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		p.logger.Error("failed to render page", "error", err, "view", string(data.View))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// returnPath reads the page to go back to after a booking action. Only the
// site's own views are accepted.
func returnPath(r *http.Request) string {
	raw := r.FormValue("return")
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "/"
	}
	view := ParseView(u.Path)
	if view != ViewServices {
		return "/"
	}
	if category := u.Query().Get("category"); category != "" {
		return "/services?category=" + url.QueryEscape(category)
	}
	return view.Path()
}

func withBooking(path, id string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "booking=" + url.QueryEscape(id) + "#reserve"
}
