// Package pdf provides a causelist.FragmentSource backed by
// github.com/ledongthuc/pdf. It reconstructs table-cell-like fragments from
// the glyph runs in each page's content stream and converts their positions
// into the top-down coordinate space the search core expects.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/fwojciec/causelist"
)

const (
	// letterHeight is the fallback page height (US Letter, in points) used
	// when a page carries no MediaBox.
	letterHeight = 792.0

	// defaultRowTolerance groups glyph runs whose baselines sit within this
	// many points into one visual line.
	defaultRowTolerance = 2.0

	// wordGapFactor is the fraction of the font size a horizontal gap must
	// exceed before a space is inserted between two runs.
	wordGapFactor = 0.3

	// defaultCellGap is the horizontal gap, in points, that separates two
	// table cells rather than two words within one cell.
	defaultCellGap = 18.0

	// maxPageTreeDepth bounds the Parent walk when resolving an inherited
	// MediaBox, in case of a cyclic page tree.
	maxPageTreeDepth = 16
)

// Ensure Document implements causelist.FragmentSource at compile time.
var _ causelist.FragmentSource = (*Document)(nil)

// Document reads positioned text fragments out of a PDF held in memory.
type Document struct {
	reader       *pdf.Reader
	rowTolerance float64
	cellGap      float64
}

// Option configures a Document.
type Option func(*Document)

// WithRowTolerance sets the baseline distance, in points, within which glyph
// runs are considered part of the same visual line.
func WithRowTolerance(pts float64) Option {
	return func(d *Document) {
		d.rowTolerance = pts
	}
}

// WithCellGap sets the horizontal gap, in points, that splits a line into
// separate fragments.
func WithCellGap(pts float64) Option {
	return func(d *Document) {
		d.cellGap = pts
	}
}

// NewDocument parses the given PDF bytes.
func NewDocument(data []byte, opts ...Option) (*Document, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	d := &Document{
		reader:       reader,
		rowTolerance: defaultRowTolerance,
		cellGap:      defaultCellGap,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Open parses PDF bytes with default settings. It satisfies
// causelist.DocumentOpener.
func Open(data []byte) (causelist.FragmentSource, error) {
	return NewDocument(data)
}

// Pages extracts every page's fragments in page order. Pages whose content
// streams cannot be parsed are returned empty rather than failing the whole
// document.
func (d *Document) Pages(ctx context.Context) ([]causelist.Page, error) {
	var pages []causelist.Page
	for i := 1; i <= d.reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p := d.reader.Page(i)
		if p.V.IsNull() {
			continue
		}

		page := causelist.Page{Number: i}
		if texts, err := pageTexts(p); err == nil {
			page.Fragments = d.fragments(texts, pageHeight(p))
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// pageTexts pulls the glyph runs out of a page's content stream. The parser
// panics on some malformed streams, so recover and report an error instead.
func pageTexts(p pdf.Page) (texts []pdf.Text, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed page content: %v", r)
		}
	}()
	return p.Content().Text, nil
}

// pageHeight resolves the page's MediaBox height, walking up the page tree
// for inherited boxes. Falls back to US Letter.
func pageHeight(p pdf.Page) float64 {
	v := p.V
	for depth := 0; !v.IsNull() && depth < maxPageTreeDepth; depth++ {
		if mb := v.Key("MediaBox"); !mb.IsNull() && mb.Len() == 4 {
			if h := mb.Index(3).Float64() - mb.Index(1).Float64(); h > 0 {
				return h
			}
		}
		v = v.Key("Parent")
	}
	return letterHeight
}

// fragments groups glyph runs into visual lines by baseline proximity, then
// splits each line into fragments at cell-sized horizontal gaps. Fragment
// boxes are flipped from PDF's bottom-up coordinates into top-down page
// space using the page height.
func (d *Document) fragments(texts []pdf.Text, height float64) []causelist.Fragment {
	glyphs := make([]pdf.Text, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		if math.IsNaN(t.X) || math.IsNaN(t.Y) || math.IsInf(t.X, 0) || math.IsInf(t.Y, 0) {
			continue
		}
		glyphs = append(glyphs, t)
	}
	if len(glyphs) == 0 {
		return nil
	}

	// Highest baseline first, so lines come out in reading order.
	sort.SliceStable(glyphs, func(i, j int) bool {
		return glyphs[i].Y > glyphs[j].Y
	})

	var fragments []causelist.Fragment
	for start := 0; start < len(glyphs); {
		end := start + 1
		for end < len(glyphs) && glyphs[start].Y-glyphs[end].Y <= d.rowTolerance {
			end++
		}
		fragments = append(fragments, d.lineFragments(glyphs[start:end], height)...)
		start = end
	}
	return fragments
}

// lineFragments turns one visual line's glyph runs into fragments, inserting
// spaces at word-sized gaps and cutting a new fragment at cell-sized gaps.
func (d *Document) lineFragments(line []pdf.Text, height float64) []causelist.Fragment {
	sort.SliceStable(line, func(i, j int) bool {
		return line[i].X < line[j].X
	})

	baseline := line[0].Y
	size := line[0].FontSize
	for _, g := range line {
		if g.Y > baseline {
			baseline = g.Y
		}
		if g.FontSize > size {
			size = g.FontSize
		}
	}
	top := height - baseline - size
	bottom := height - baseline

	var fragments []causelist.Fragment
	var text strings.Builder
	var left, right float64

	flush := func() {
		if text.Len() == 0 {
			return
		}
		fragments = append(fragments, causelist.Fragment{
			Left:   left,
			Top:    top,
			Right:  right,
			Bottom: bottom,
			Text:   text.String(),
		})
		text.Reset()
	}

	for _, g := range line {
		gap := g.X - right
		switch {
		case text.Len() == 0:
			left = g.X
		case gap > d.cellGap:
			flush()
			left = g.X
		case gap > wordGapFactor*g.FontSize:
			text.WriteByte(' ')
		}
		text.WriteString(g.S)
		if r := g.X + g.W; r > right {
			right = r
		}
	}
	flush()

	return fragments
}
