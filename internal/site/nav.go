package site

import "strings"

// View is a top-level page of the site.
type View string

const (
	ViewHome     View = "home"
	ViewServices View = "services"
)

// ParseView maps a path or query value to a View; anything unknown is home.
func ParseView(v string) View {
	if strings.EqualFold(strings.Trim(strings.TrimSpace(v), "/"), string(ViewServices)) {
		return ViewServices
	}
	return ViewHome
}

// Path is where the view is served.
func (v View) Path() string {
	if v == ViewServices {
		return "/services"
	}
	return "/"
}

// Section ids observed on the home view, top to bottom.
const (
	SectionHome     = "home"
	SectionServices = "services"
	SectionAbout    = "about"
	SectionGallery  = "gallery"
	SectionLocation = "location"
	SectionSocial   = "social"
)

// ObservedSections lists the home view sections in page order.
var ObservedSections = []string{SectionHome, SectionServices, SectionAbout, SectionGallery, SectionLocation, SectionSocial}

// NavLink is a header or footer navigation entry. Page links switch the view;
// section links scroll to an anchor on the home view.
type NavLink struct {
	Name   string
	ID     string
	IsPage bool
	View   View
}

// HeaderLinks is the header navigation in display order.
var HeaderLinks = []NavLink{
	{Name: "Home", ID: SectionHome, IsPage: true, View: ViewHome},
	{Name: "Menu", ID: SectionServices, IsPage: true, View: ViewServices},
	{Name: "About", ID: SectionAbout},
	{Name: "Location", ID: SectionLocation},
	{Name: "Social", ID: SectionSocial},
}

// FooterLinks is the footer quick navigation.
var FooterLinks = []NavLink{
	{Name: "Treatment Menu", ID: SectionServices, IsPage: true, View: ViewServices},
	{Name: "Our Story", ID: SectionAbout},
	{Name: "Visit Midrand", ID: SectionLocation},
}

// Target is where following a link lands. Without an anchor the view opens
// at the top.
type Target struct {
	View   View
	Anchor string
}

// Href renders the target as a URL. Section anchors also carry the section in
// the query so the server can highlight the matching header link.
func (t Target) Href() string {
	if t.Anchor == "" {
		return t.View.Path()
	}
	return t.View.Path() + "?section=" + t.Anchor + "#" + t.Anchor
}

// ResolveLink decides where a click on link leads. Page links open their view
// at the top; section links anchor to the section on the home view, which
// also brings a visitor back from the services view.
func ResolveLink(link NavLink) Target {
	if link.IsPage {
		return Target{View: link.View}
	}
	return Target{View: ViewHome, Anchor: link.ID}
}

// Observer tracks which home section is in view. Sections it does not observe
// leave the current one in place.
type Observer struct {
	active string
}

// NewObserver starts with the hero section active.
func NewObserver() *Observer {
	return &Observer{active: SectionHome}
}

// Observe records that section intersected the viewport band.
func (o *Observer) Observe(section string) {
	for _, s := range ObservedSections {
		if s == section {
			o.active = section
			return
		}
	}
}

// Active returns the section currently in view.
func (o *Observer) Active() string {
	return o.active
}

// ActiveLink reports the id of the highlighted header link, or "" when none is.
// On the services view the Menu link is highlighted; on home it is the link
// whose id matches the active section.
func ActiveLink(view View, activeSection string) string {
	if view == ViewServices {
		return SectionServices
	}
	for _, link := range HeaderLinks {
		if link.ID == activeSection {
			return link.ID
		}
	}
	return ""
}

// ScrollThreshold is the scroll offset in pixels past which the home header
// turns solid in the browser.
const ScrollThreshold = 50

// SolidHeader reports whether the header renders in its solid style. Only the
// top of the home view shows the transparent header over the hero; a visit
// that lands on a section anchor is already below it.
func SolidHeader(view View, belowHero bool) bool {
	return belowHero || view != ViewHome
}
