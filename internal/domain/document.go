package domain

import (
	"math"
	"strings"
)

const (
	DefaultTitle    = "My Tkinter App"
	DefaultGeometry = "300x250"
	DefaultVersion  = "0.1.0"
)

// RootIndex addresses the document itself wherever a container index is expected
const RootIndex = 0

// Container is anything whose children can be listed: the Document or a Layout
type Container interface {
	Children() []Widget
}

// Document is the root aggregate exported to the code generator
type Document struct {
	Title    string
	Geometry string // "<width>x<height>"
	Version  string
	Content  []Widget
}

// NewDocument returns a document with no widgets
func NewDocument(title, geometry, version string) Document {
	return Document{
		Title:    title,
		Geometry: geometry,
		Version:  version,
	}
}

// DefaultDocument returns the document a fresh session starts with
func DefaultDocument() Document {
	return NewDocument(DefaultTitle, DefaultGeometry, DefaultVersion)
}

// Children returns the root-level widgets
func (d *Document) Children() []Widget {
	return d.Content
}

// Clone returns a deep copy of the document
func (d Document) Clone() Document {
	d.Content = DeepCloneAll(d.Content)
	return d
}

// Properties is a partial update of the document metadata
type Properties struct {
	Title    *string
	Geometry *string
	Version  *string
}

// Apply returns a copy of d with the set properties replaced
func (p Properties) Apply(d Document) Document {
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Geometry != nil {
		d.Geometry = *p.Geometry
	}
	if p.Version != nil {
		d.Version = *p.Version
	}
	return d
}

// Geometry is the parsed window size. A dimension that cannot be read is NaN.
type Geometry struct {
	Width  float64
	Height float64
}

// ParseGeometry reads "WIDTHxHEIGHT" leniently: each part contributes its
// leading integer, and a part without one (or a missing part) yields NaN.
func ParseGeometry(s string) Geometry {
	parts := strings.Split(s, "x")
	g := Geometry{Width: math.NaN(), Height: math.NaN()}
	if len(parts) > 0 {
		g.Width = leadingInt(parts[0])
	}
	if len(parts) > 1 {
		g.Height = leadingInt(parts[1])
	}
	return g
}

// Size returns the geometry parsed from the document
func (d Document) Size() Geometry {
	return ParseGeometry(d.Geometry)
}

// Valid reports whether both dimensions are usable positive numbers
func (g Geometry) Valid() bool {
	return !math.IsNaN(g.Width) && !math.IsNaN(g.Height) && g.Width > 0 && g.Height > 0
}

func leadingInt(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\r")
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0.0
	digits := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + float64(r-'0')
		digits++
	}
	if digits == 0 {
		return math.NaN()
	}
	if neg {
		return -n
	}
	return n
}
