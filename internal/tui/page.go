package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/termfolio/internal/anim"
	"github.com/verte-zerg/termfolio/internal/content"
)

const (
	maxContentWidth = 96
	sectionGap      = 3
	cardGap         = 2
)

// Section anchors used for jumps and scroll triggers.
const (
	anchorHero     = "section-hero"
	anchorAbout    = "section-about"
	anchorSkills   = "section-skills"
	anchorProjects = "section-projects"
	anchorContact  = "section-contact"
	anchorForm     = "contact-form"

	triggerStats    = "stats"
	triggerSkills   = "skills"
	triggerProjects = "projects"
)

// layout maps element IDs to page lines and answers visibility queries for
// the sequencers.
type layout struct {
	tops   map[string]int
	offset int
	height int
}

func newLayout() *layout {
	return &layout{tops: map[string]int{}}
}

func (l *layout) Height() float64 {
	return float64(l.height)
}

func (l *layout) Top(id string) (float64, bool) {
	top, ok := l.tops[id]
	if !ok {
		return 0, false
	}
	return float64(top - l.offset), true
}

type canvas struct {
	width int
	lines []string
	tops  map[string]int
}

func (c *canvas) mark(id string) {
	c.tops[id] = len(c.lines)
}

func (c *canvas) markAt(id string, offset int) {
	c.tops[id] = len(c.lines) + offset
}

func (c *canvas) add(lines ...string) {
	for _, l := range lines {
		c.lines = append(c.lines, fit(l, c.width))
	}
}

func (c *canvas) gap(n int) {
	c.add(blankLines(n, c.width)...)
}

func (c *canvas) centered(s string) {
	c.add(lipgloss.PlaceHorizontal(c.width, lipgloss.Center, s))
}

// page owns every element of the portfolio and lays them out.
type page struct {
	content content.Portfolio

	heroRoot     *element
	heroTitle    *element
	heroSubtitle *element
	heroCTA      *element
	heroSocial   *element

	aboutContent *element
	stats        []*element
	counters     []*element

	skills []*element
	bars   []*element

	projects []*element
}

func newPage(p content.Portfolio) *page {
	pg := &page{
		content:      p,
		heroRoot:     newElement("hero"),
		heroTitle:    newElement("hero-title"),
		heroSubtitle: newElement("hero-subtitle"),
		heroCTA:      newElement("hero-cta"),
		heroSocial:   newElement("hero-social"),
		aboutContent: newElement("about-content"),
	}
	for i := range p.About.Stats {
		pg.stats = append(pg.stats, newElement(fmt.Sprintf("stat-%d", i)))
		pg.counters = append(pg.counters, newElement(fmt.Sprintf("stat-%d-count", i)))
	}
	for i := range p.Skills {
		pg.skills = append(pg.skills, newElement(fmt.Sprintf("skill-%d", i)))
		pg.bars = append(pg.bars, newElement(fmt.Sprintf("skill-%d-bar", i)))
	}
	for i := range p.Projects {
		pg.projects = append(pg.projects, newElement(fmt.Sprintf("project-%d", i)))
	}
	return pg
}

func (pg *page) elements() []*element {
	out := []*element{pg.heroRoot, pg.heroTitle, pg.heroSubtitle, pg.heroCTA, pg.heroSocial, pg.aboutContent}
	out = append(out, pg.stats...)
	out = append(out, pg.counters...)
	out = append(out, pg.skills...)
	out = append(out, pg.bars...)
	out = append(out, pg.projects...)
	return out
}

func (pg *page) unmount() {
	for _, e := range pg.elements() {
		e.unmount()
	}
}

// render lays the page out at width and returns its lines with the line
// index of every anchor and trigger. Line positions do not depend on
// animation state.
func (pg *page) render(width int, form []string) ([]string, map[string]int) {
	cw := contentWidth(width)
	c := &canvas{width: cw, tops: map[string]int{}}

	pg.renderHero(c)
	c.gap(sectionGap)
	pg.renderAbout(c)
	c.gap(sectionGap)
	pg.renderSkills(c)
	c.gap(sectionGap)
	pg.renderProjects(c)
	c.gap(sectionGap)
	pg.renderContact(c, form)
	c.gap(2)

	margin := strings.Repeat(" ", maxInt((width-cw)/2, 0))
	lines := make([]string, len(c.lines))
	for i, l := range c.lines {
		lines[i] = fit(margin+l, width)
	}
	return lines, c.tops
}

func contentWidth(width int) int {
	return minInt(maxInt(width-4, 20), maxContentWidth)
}

func (pg *page) heading(c *canvas, plain, accent, sub string) {
	c.centered(headingStyle.Render(plain) + " " + accentStyle.Render(accent))
	if sub != "" {
		c.gap(1)
		for _, l := range wrapText(sub, minInt(c.width, 72)) {
			c.centered(mutedStyle.Render(l))
		}
	}
	c.gap(1)
}

func (pg *page) renderHero(c *canvas) {
	hero := pg.content.Hero
	c.mark(anchorHero)
	c.gap(2)

	var block []string
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(c.width, lipgloss.Center, s)
	}

	op := pg.heroTitle.opacity()
	var title []string
	if pg.content.Name != "" {
		title = append(title, center(ink(mutedHex, op).Render(pg.content.Name)))
	}
	title = append(title, center(ink(accentHex, op).Bold(true).Render(hero.Title)+" "+ink(textHex, op).Bold(true).Render(hero.Accent)))
	block = append(block, place(title, pg.heroTitle, c.width, 0, 2)...)

	op = pg.heroSubtitle.opacity()
	var sub []string
	for _, l := range wrapText(hero.Subtitle, minInt(c.width, 72)) {
		sub = append(sub, center(ink(mutedHex, op).Render(l)))
	}
	block = append(block, place(sub, pg.heroSubtitle, c.width, 0, 2)...)

	op = pg.heroCTA.opacity()
	cta := ink(accentHex, op).Bold(true).Render("[p] View My Work ↓") + "    " + ink(textHex, op).Render("[r] Download Resume")
	block = append(block, place([]string{center(cta)}, pg.heroCTA, c.width, 0, 2)...)

	op = pg.heroSocial.opacity()
	labels := make([]string, 0, len(hero.Social))
	for _, s := range hero.Social {
		labels = append(labels, s.Label)
	}
	social := ink(mutedHex, op).Render(strings.Join(labels, "  ·  "))
	block = append(block, place([]string{center(social)}, pg.heroSocial, c.width, 0, 2)...)

	c.add(place(block, pg.heroRoot, c.width, 1, 0)...)
}

func (pg *page) renderAbout(c *canvas) {
	about := pg.content.About
	c.mark(anchorAbout)
	pg.heading(c, "About", "Me", "")

	op := pg.aboutContent.opacity()
	var body []string
	for i, para := range about.Paragraphs {
		if i > 0 {
			body = append(body, "")
		}
		for _, l := range wrapText(para, c.width) {
			body = append(body, ink(mutedHex, op).Render(l))
		}
	}
	if len(about.Tags) > 0 {
		body = append(body, "")
		tags := make([]string, len(about.Tags))
		for i, t := range about.Tags {
			tags[i] = "(" + t + ")"
		}
		for _, l := range joinWrapped(tags, " ", c.width) {
			body = append(body, ink(textHex, op).Render(l))
		}
	}
	c.mark(pg.aboutContent.id)
	c.add(place(body, pg.aboutContent, c.width, 0, 0)...)
	c.gap(1)

	if len(about.Stats) == 0 {
		return
	}
	perRow := 2
	if c.width >= 80 {
		perRow = 4
	}
	cardWidth := (c.width - cardGap*(perRow-1)) / perRow
	c.mark(triggerStats)
	for start := 0; start < len(about.Stats); start += perRow {
		end := minInt(start+perRow, len(about.Stats))
		blocks := make([][]string, 0, perRow)
		for i := start; i < end; i++ {
			blocks = append(blocks, pg.statCard(i, cardWidth))
			// Counter text sits on the first line inside the border.
			c.markAt(pg.counters[i].id, 1)
		}
		c.add(columns(blocks, cardGap)...)
	}
}

func (pg *page) statCard(i, width int) []string {
	stat := pg.content.About.Stats[i]
	e := pg.stats[i]
	op := e.opacity()
	value := pg.counters[i].text
	if value == "" {
		value = fmt.Sprint(stat.Number)
	}
	inner := maxInt(width-4, 1)
	body := []string{
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, ink(accentHex, op).Bold(true).Render(value+stat.Suffix)),
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, ink(mutedHex, op).Render(stat.Label)),
	}
	return place(card(body, e, width, borderHex), e, width, 0, 2)
}

func (pg *page) renderSkills(c *canvas) {
	c.mark(anchorSkills)
	pg.heading(c, "My", "Skills", "A comprehensive overview of the technologies and tools I use to bring ideas to life")
	skills := pg.content.Skills
	if len(skills) == 0 {
		return
	}
	perRow := clampInt(c.width/26, 1, 4)
	cardWidth := (c.width - cardGap*(perRow-1)) / perRow
	c.mark(triggerSkills)
	for start := 0; start < len(skills); start += perRow {
		end := minInt(start+perRow, len(skills))
		blocks := make([][]string, 0, perRow)
		for i := start; i < end; i++ {
			blocks = append(blocks, pg.skillCard(i, cardWidth))
			// Border, name, category, then the bar.
			c.markAt(pg.bars[i].id, 3)
		}
		c.add(columns(blocks, cardGap)...)
	}
}

func (pg *page) skillCard(i, width int) []string {
	skill := pg.content.Skills[i]
	e := pg.skills[i]
	op := e.opacity()
	inner := maxInt(width-4, 1)
	level := fmt.Sprintf("%d%%", skill.Level)
	name := fit(skill.Name, maxInt(inner-len(level)-1, 1))
	body := []string{
		ink(textHex, op).Bold(true).Render(name) + " " + ink(mutedHex, op).Render(level),
		ink(accentHex, op).Render(skill.Category),
		progressBar(pg.bars[i].props.Get(anim.Width), inner, op),
	}
	return place(card(body, e, width, borderHex), e, width, 0, 1)
}

func (pg *page) renderProjects(c *canvas) {
	c.mark(anchorProjects)
	pg.heading(c, "Featured", "Projects", "A showcase of my recent work and the technologies I've used to solve real-world problems")
	if len(pg.content.Projects) == 0 {
		return
	}
	c.mark(triggerProjects)
	for i := range pg.content.Projects {
		if i > 0 {
			c.gap(1)
		}
		c.add(pg.projectCard(i, c.width)...)
	}
}

func (pg *page) projectCard(i, width int) []string {
	project := pg.content.Projects[i]
	e := pg.projects[i]
	op := e.opacity()
	inner := maxInt(width-4, 1)

	title := ink(textHex, op).Bold(true).Render(project.Title)
	if project.Featured {
		title += "  " + ink(accentHex, op).Render("★ Featured")
	}
	body := []string{title, ""}
	for _, l := range wrapText(project.Description, inner) {
		body = append(body, ink(mutedHex, op).Render(l))
	}
	body = append(body, "")
	for _, l := range joinWrapped(project.Technologies, " · ", inner) {
		body = append(body, ink(secondaryHex, op).Render(l))
	}
	var links []string
	if project.GitHub != "" {
		links = append(links, "Code → "+project.GitHub)
	}
	if project.Live != "" {
		links = append(links, "Live Demo → "+project.Live)
	}
	if len(links) > 0 {
		body = append(body, ink(accentHex, op).Render(fit(strings.Join(links, "   "), inner)))
	}
	return place(card(body, e, width, borderHex), e, width, 0, 2)
}

func (pg *page) renderContact(c *canvas, form []string) {
	c.mark(anchorContact)
	pg.heading(c, "Let's", "Connect", "Ready to start your next project? I'd love to hear from you and discuss how we can work together.")

	entries := pg.content.Contact
	if len(entries) > 0 {
		perRow := clampInt(c.width/30, 1, 3)
		cardWidth := (c.width - cardGap*(perRow-1)) / perRow
		for start := 0; start < len(entries); start += perRow {
			end := minInt(start+perRow, len(entries))
			blocks := make([][]string, 0, perRow)
			for _, entry := range entries[start:end] {
				body := []string{
					headingStyle.Render(entry.Title),
					accentStyle.Render(entry.Value),
					mutedStyle.Render(entry.Description),
				}
				blocks = append(blocks, card(body, nil, cardWidth, borderHex))
			}
			c.add(columns(blocks, cardGap)...)
		}
		c.gap(1)
	}

	c.mark(anchorForm)
	c.add(form...)
}
