// Package site loads the landing page content and renders it, either for the server or as a static build.
package site

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
)

// SectionKind defines how a section body is rendered.
type SectionKind string

// section kinds, named after the content elements
const (
	KindProblem  SectionKind = "problem"
	KindSolution SectionKind = "solution"
	KindFeatures SectionKind = "keyFeatures"
	KindBenefits SectionKind = "benefits"
	KindCTA      SectionKind = "finalCTA"
)

// Page is the landing page content.
type Page struct {
	Title            string
	Category         string
	Slug             string
	ValueProposition string
	Subtitle         string
	HeroImage        string
	Sections         []Section
}

// Section is one content block below the hero.
type Section struct {
	Kind     SectionKind
	Name     string // used as the image alt text
	Anchor   string
	Title    string
	Image    string
	Overview string   // solution overview or call-to-action description
	Items    []string // problem items, benefits or solution changes
	Features []Feature
}

// Feature is a key feature with its benefit.
type Feature struct {
	Name    string
	Benefit string
}

// generatedImagesPrefix is where the image generator puts its output, the site serves it from images/.
const generatedImagesPrefix = "generated_images/"

type xmlImage struct {
	Src string `xml:"src,attr"`
	Alt string `xml:"alt,attr"`
}

type xmlMedia struct {
	Image *xmlImage `xml:"image"`
}

type xmlSection struct {
	Title       string   `xml:"title"`
	Media       xmlMedia `xml:"media"`
	Items       []string `xml:"items>item"`
	Overview    string   `xml:"overview"`
	Changes     []string `xml:"whatChanges>change"`
	Description string   `xml:"description"`
	Features    []struct {
		Name    string `xml:"name"`
		Benefit string `xml:"benefit"`
	} `xml:"feature"`
}

type xmlProduct struct {
	Meta struct {
		Title    string `xml:"title"`
		Category string `xml:"category"`
		Slug     string `xml:"slug"`
	} `xml:"meta"`
	Hero struct {
		ValueProposition string   `xml:"valueProposition"`
		Subtitle         string   `xml:"subtitle"`
		Media            xmlMedia `xml:"media"`
	} `xml:"hero"`
	Problem     *xmlSection `xml:"problem"`
	Solution    *xmlSection `xml:"solution"`
	KeyFeatures *xmlSection `xml:"keyFeatures"`
	Benefits    *xmlSection `xml:"benefits"`
	FinalCTA    *xmlSection `xml:"finalCTA"`
}

// Load reads the product content file.
func Load(path string) (*Page, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from cli options
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
	}
	page, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse content file %s: %w", path, err)
	}
	return page, nil
}

// Parse converts product XML into a Page. Sections missing in the XML are skipped,
// the order of sections is fixed: problem, solution, key features, benefits, call to action.
func Parse(data []byte) (*Page, error) {
	var p xmlProduct
	if err := xml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("invalid xml: %w", err)
	}

	page := &Page{
		Title:            clean(p.Meta.Title),
		Category:         clean(p.Meta.Category),
		Slug:             clean(p.Meta.Slug),
		ValueProposition: clean(p.Hero.ValueProposition),
		Subtitle:         clean(p.Hero.Subtitle),
		HeroImage:        p.Hero.Media.src(),
	}

	if s := p.Problem; s != nil {
		page.Sections = append(page.Sections, Section{Kind: KindProblem, Name: "problem", Title: clean(s.Title),
			Image: s.Media.src(), Items: cleanAll(s.Items)})
	}
	if s := p.Solution; s != nil {
		page.Sections = append(page.Sections, Section{Kind: KindSolution, Name: "solution", Title: clean(s.Title),
			Image: s.Media.src(), Overview: clean(s.Overview), Items: cleanAll(s.Changes)})
	}
	if s := p.KeyFeatures; s != nil {
		sec := Section{Kind: KindFeatures, Name: "features", Title: clean(s.Title), Image: s.Media.src()}
		for _, f := range s.Features {
			sec.Features = append(sec.Features, Feature{Name: clean(f.Name), Benefit: clean(f.Benefit)})
		}
		page.Sections = append(page.Sections, sec)
	}
	if s := p.Benefits; s != nil {
		page.Sections = append(page.Sections, Section{Kind: KindBenefits, Name: "benefits", Title: clean(s.Title),
			Image: s.Media.src(), Items: cleanAll(s.Items)})
	}
	if s := p.FinalCTA; s != nil {
		page.Sections = append(page.Sections, Section{Kind: KindCTA, Name: "cta", Anchor: "cta", Title: clean(s.Title),
			Image: s.Media.src(), Overview: clean(s.Description)})
	}
	return page, nil
}

func (m xmlMedia) src() string {
	if m.Image == nil {
		return ""
	}
	return strings.ReplaceAll(strings.TrimSpace(m.Image.Src), generatedImagesPrefix, "images/")
}

func clean(s string) string { return strings.TrimSpace(s) }

func cleanAll(ss []string) []string {
	res := make([]string, 0, len(ss))
	for _, s := range ss {
		res = append(res, clean(s))
	}
	return res
}
