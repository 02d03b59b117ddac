package houtveilig

import "github.com/Polder-Labs/houtveilig/utils"

// Region is the color category a pixel of the icon belongs to.
type Region int

// The regions of the icon, from the lowest to the highest drawing priority.
const (
	Background Region = iota
	TreeFoliage
	Warning
	Exclamation
)

func (r Region) String() string {
	switch r {
	case Background:
		return "background"
	case TreeFoliage:
		return "foliage"
	case Warning:
		return "warning"
	case Exclamation:
		return "exclamation"
	}
	return "unknown"
}

// Band is a triangle with its apex at Top and its base at Bottom, centered on
// the vertical axis of the canvas. Top and Bottom are fractions of the canvas
// height, Scale is the half width of the base as a fraction of the canvas width.
type Band struct {
	Top, Bottom float64
	Scale       float64
}

// Contains reports whether the pixel (x, y) of a size*size canvas lies inside the band.
func (b Band) Contains(x, y, size int) bool {
	top := int(float64(size) * b.Top)
	bottom := int(float64(size) * b.Bottom)
	if y < top || y > bottom {
		return false
	}
	progress := float64(y-top) / float64(utils.Max(1, bottom-top))
	halfWidth := int(float64(size) * b.Scale * progress)

	return utils.Abs(x-size/2) <= halfWidth
}

// Rect is a vertical bar of constant half width centered on the vertical axis.
type Rect struct {
	Top, Bottom float64
	HalfWidth   float64
}

// Contains reports whether the pixel (x, y) of a size*size canvas lies inside the bar.
func (r Rect) Contains(x, y, size int) bool {
	top := int(float64(size) * r.Top)
	bottom := int(float64(size) * r.Bottom)
	if y < top || y > bottom {
		return false
	}
	return utils.Abs(x-size/2) <= int(float64(size)*r.HalfWidth)
}

var (
	// Canopy holds the three stacked triangles of the tree crown, top to bottom.
	Canopy = [3]Band{
		{Top: 0.12, Bottom: 0.45, Scale: 0.18},
		{Top: 0.30, Bottom: 0.60, Scale: 0.25},
		{Top: 0.45, Bottom: 0.75, Scale: 0.33},
	}
	Trunk = Rect{Top: 0.72, Bottom: 0.82, HalfWidth: 0.06}

	WarningSign = Band{Top: 0.82, Bottom: 0.95, Scale: 0.15}

	ExclamationStem = Rect{Top: 0.85, Bottom: 0.92, HalfWidth: 0.02}
	ExclamationDot  = Rect{Top: 0.925, Bottom: 0.94, HalfWidth: 0.02}
)

// InFoliage reports whether the pixel belongs to the tree: any canopy band or the trunk.
func InFoliage(x, y, size int) bool {
	for _, b := range Canopy {
		if b.Contains(x, y, size) {
			return true
		}
	}
	return Trunk.Contains(x, y, size)
}

// InWarning reports whether the pixel belongs to the warning triangle.
func InWarning(x, y, size int) bool {
	return WarningSign.Contains(x, y, size)
}

// InExclamation reports whether the pixel belongs to the stem or the dot of the exclamation mark.
func InExclamation(x, y, size int) bool {
	return ExclamationStem.Contains(x, y, size) || ExclamationDot.Contains(x, y, size)
}

// Shape binds a region to the predicate deciding its membership.
type Shape struct {
	Region   Region
	Contains func(x, y, size int) bool
}

// Shapes is evaluated in order and the first match wins. The warning sign
// overlaps the lowest canopy band and the trunk, so the order is the z-order
// of the icon.
var Shapes = []Shape{
	{Region: Exclamation, Contains: InExclamation},
	{Region: Warning, Contains: InWarning},
	{Region: TreeFoliage, Contains: InFoliage},
}

// Classify returns the region of the pixel (x, y) on a size*size canvas.
func Classify(x, y, size int) Region {
	for _, s := range Shapes {
		if s.Contains(x, y, size) {
			return s.Region
		}
	}
	return Background
}
