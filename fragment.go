package causelist

import "math"

// Fragment is one lexical block of text on a document page, with its
// bounding box in page coordinates. Top increases downward; Top < Bottom
// for well-formed fragments. Zero-width fragments occur in real documents
// and are tolerated.
type Fragment struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
	Text   string
}

// midY returns the vertical midpoint of the fragment.
func (f Fragment) midY() float64 {
	return (f.Top + f.Bottom) / 2
}

// wellFormed reports whether the fragment's geometry is usable. Upstream
// extraction occasionally produces inverted or non-finite boxes; those
// fragments are excluded from matching rather than treated as errors.
func (f Fragment) wellFormed() bool {
	for _, v := range [4]float64{f.Left, f.Top, f.Right, f.Bottom} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return f.Bottom >= f.Top
}

// Page is one document page: a 1-based page number and its fragments in
// the order the source produced them.
type Page struct {
	Number    int
	Fragments []Fragment
}
