// Package site describes the page's sections and moves between them.
package site

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/portfolio/messaging/internal/reveal"
)

// ErrUnknownSection is returned when navigating to an id that is not on the page.
var ErrUnknownSection = errors.New("unknown section")

// Section is one anchor of the page.
type Section struct {
	ID      string
	Title   string
	Reveals []reveal.Target
}

const ms = time.Millisecond

// Sections lists the page top to bottom. The contact section's reveals are
// registered by the contact form itself.
var Sections = []Section{
	{ID: "home", Title: "Home", Reveals: []reveal.Target{
		{Selector: ".hero-title", Options: []reveal.Option{reveal.WithDelay(300 * ms), reveal.WithDistance("60px"), reveal.WithDuration(1200 * ms), reveal.WithOrigin(reveal.OriginTop)}},
		{Selector: ".hero-subtitle", Options: []reveal.Option{reveal.WithDelay(500 * ms), reveal.WithDistance("40px"), reveal.WithOrigin(reveal.OriginLeft)}},
		{Selector: ".hero-cta", Options: []reveal.Option{reveal.WithDelay(700 * ms), reveal.WithDistance("30px"), reveal.WithDuration(800 * ms)}},
		{Selector: ".hero-social", Options: []reveal.Option{reveal.WithDelay(900 * ms), reveal.WithDistance("20px"), reveal.WithDuration(600 * ms), reveal.WithInterval(100 * ms)}},
		{Selector: ".hero-image", Options: []reveal.Option{reveal.WithDelay(400 * ms), reveal.WithDistance("80px"), reveal.WithDuration(1400 * ms), reveal.WithOrigin(reveal.OriginRight), reveal.WithScale(0.8)}},
	}},
	{ID: "about", Title: "About", Reveals: []reveal.Target{
		{Selector: ".about-title", Options: []reveal.Option{reveal.WithOrigin(reveal.OriginTop)}},
		{Selector: ".about-content", Options: []reveal.Option{reveal.WithDelay(400 * ms), reveal.WithDistance("60px"), reveal.WithDuration(1200 * ms), reveal.WithOrigin(reveal.OriginLeft)}},
		{Selector: ".about-image", Options: []reveal.Option{reveal.WithDelay(600 * ms), reveal.WithDistance("60px"), reveal.WithDuration(1200 * ms), reveal.WithOrigin(reveal.OriginRight)}},
		{Selector: ".about-stat", Options: []reveal.Option{reveal.WithDelay(800 * ms), reveal.WithDistance("30px"), reveal.WithDuration(800 * ms), reveal.WithInterval(150 * ms)}},
	}},
	{ID: "services", Title: "Services", Reveals: []reveal.Target{
		{Selector: ".services-title", Options: []reveal.Option{reveal.WithOrigin(reveal.OriginTop)}},
		{Selector: ".service-card", Options: []reveal.Option{reveal.WithDelay(400 * ms), reveal.WithDistance("60px"), reveal.WithDuration(1200 * ms), reveal.WithInterval(200 * ms)}},
	}},
	{ID: "projects", Title: "Projects", Reveals: []reveal.Target{
		{Selector: ".projects-title", Options: []reveal.Option{reveal.WithOrigin(reveal.OriginTop)}},
		{Selector: ".projects-filters", Options: []reveal.Option{reveal.WithDelay(400 * ms), reveal.WithDistance("30px"), reveal.WithDuration(800 * ms), reveal.WithOrigin(reveal.OriginTop)}},
		{Selector: ".project-card", Options: []reveal.Option{reveal.WithDelay(600 * ms), reveal.WithDistance("60px"), reveal.WithDuration(1200 * ms), reveal.WithInterval(200 * ms)}},
	}},
	{ID: "skills", Title: "Skills", Reveals: []reveal.Target{
		{Selector: ".skills-title", Options: []reveal.Option{reveal.WithOrigin(reveal.OriginTop)}},
		{Selector: ".skills-category", Options: []reveal.Option{reveal.WithDelay(400 * ms), reveal.WithDistance("60px"), reveal.WithDuration(1200 * ms), reveal.WithInterval(300 * ms)}},
		{Selector: ".tech-cloud-title", Options: []reveal.Option{reveal.WithDelay(600 * ms), reveal.WithDistance("30px"), reveal.WithDuration(800 * ms), reveal.WithOrigin(reveal.OriginTop)}},
		{Selector: ".tech-tag", Options: []reveal.Option{reveal.WithDelay(800 * ms), reveal.WithDistance("20px"), reveal.WithDuration(600 * ms), reveal.WithInterval(50 * ms)}},
	}},
	{ID: "contact", Title: "Contact"},
}

// Scroller is provided by the host to bring a section into view.
type Scroller interface {
	ScrollTo(ctx context.Context, section Section) error
}

// Page navigates between Sections.
type Page struct {
	scroller Scroller
}

// NewPage creates a Page that scrolls with scroller.
func NewPage(scroller Scroller) *Page {
	return &Page{scroller: scroller}
}

// Lookup finds a section by id. A leading "#" is ignored, so footer hrefs work as-is.
func Lookup(id string) (Section, error) {
	id = strings.TrimPrefix(strings.TrimSpace(id), "#")
	for _, s := range Sections {
		if s.ID == id {
			return s, nil
		}
	}
	return Section{}, fmt.Errorf("%q: %w", id, ErrUnknownSection)
}

// NavigateToSection scrolls to the section with the given id.
func (p *Page) NavigateToSection(ctx context.Context, id string) error {
	s, err := Lookup(id)
	if err != nil {
		return err
	}
	return p.scroller.ScrollTo(ctx, s)
}

// Mount registers the reveals of every section and returns their dispose.
func (p *Page) Mount(registry *reveal.Registry) (dispose func()) {
	var targets []reveal.Target
	for _, s := range Sections {
		targets = append(targets, s.Reveals...)
	}
	return registry.RegisterAll(targets)
}
