package outline

import "math"

// Point is a 2D point. The root package converts to and from it.
type Point struct {
	X, Y float64
}

func (p Point) add(q Point) Point              { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) sub(q Point) Point              { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) scale(s float64) Point          { return Point{p.X * s, p.Y * s} }
func (p Point) dot(q Point) float64            { return p.X*q.X + p.Y*q.Y }
func (p Point) cross(q Point) float64          { return p.X*q.Y - p.Y*q.X }
func (p Point) length() float64                { return math.Hypot(p.X, p.Y) }
func (p Point) perp() Point                    { return Point{-p.Y, p.X} }
func (p Point) angle() float64                 { return math.Atan2(p.Y, p.X) }
func polar(c Point, r, a float64) Point        { return Point{c.X + r*math.Cos(a), c.Y + r*math.Sin(a)} }
func (p Point) near(q Point, eps float64) bool { return p.sub(q).length() <= eps }

func (p Point) unit() Point {
	l := p.length()
	if l < 1e-12 {
		return Point{}
	}
	return p.scale(1 / l)
}

// Cap is the shape drawn at the ends of an open polyline.
type Cap int

const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

// Join is the shape drawn at the outer side of a corner.
type Join int

const (
	JoinMiter Join = iota
	JoinRound
	JoinBevel
)

// Style configures an expansion.
type Style struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64
	// Tolerance bounds the error of flattened round caps and joins.
	Tolerance float64
}

// Polyline is a centerline to stroke.
type Polyline struct {
	Points []Point
	Closed bool
}

// Expand strokes every polyline and returns the closed contours of the
// outline. A non-positive width yields no contours.
func Expand(lines []Polyline, style Style) [][]Point {
	if !(style.Width > 0) {
		return nil
	}
	if style.Tolerance <= 0 {
		style.Tolerance = 0.05
	}
	if style.MiterLimit < 1 {
		style.MiterLimit = 1
	}

	e := expander{style: style, half: style.Width / 2}
	var out [][]Point
	for _, pl := range lines {
		out = append(out, e.expand(pl)...)
	}
	return out
}

type expander struct {
	style Style
	half  float64
}

func dedupe(pl Polyline) []Point {
	pts := make([]Point, 0, len(pl.Points))
	for _, p := range pl.Points {
		if len(pts) > 0 && pts[len(pts)-1].near(p, 1e-12) {
			continue
		}
		pts = append(pts, p)
	}
	if pl.Closed && len(pts) > 1 && pts[0].near(pts[len(pts)-1], 1e-12) {
		pts = pts[:len(pts)-1]
	}
	return pts
}

func (e *expander) expand(pl Polyline) [][]Point {
	pts := dedupe(pl)
	switch {
	case len(pts) == 0:
		return nil
	case len(pts) == 1:
		return e.dot(pts[0])
	case pl.Closed && len(pts) > 2:
		return e.closed(pts)
	default:
		return [][]Point{e.open(pts)}
	}
}

// dot strokes a zero-length subpath. Only round and square caps have
// anything to draw.
func (e *expander) dot(p Point) [][]Point {
	h := e.half
	switch e.style.Cap {
	case CapRound:
		var c []Point
		e.arc(&c, p, 0, 2*math.Pi)
		return [][]Point{c}
	case CapSquare:
		return [][]Point{{
			{p.X - h, p.Y - h}, {p.X + h, p.Y - h},
			{p.X + h, p.Y + h}, {p.X - h, p.Y + h},
		}}
	}
	return nil
}

// normals returns the left offset vector of every segment.
func (e *expander) normals(pts []Point, closed bool) []Point {
	n := len(pts) - 1
	if closed {
		n = len(pts)
	}
	out := make([]Point, n)
	for i := 0; i < n; i++ {
		d := pts[(i+1)%len(pts)].sub(pts[i])
		out[i] = d.unit().perp().scale(e.half)
	}
	return out
}

func (e *expander) open(pts []Point) []Point {
	norms := e.normals(pts, false)
	last := len(pts) - 1

	left := []Point{pts[0].add(norms[0])}
	right := []Point{pts[0].sub(norms[0])}
	for j := 1; j < last; j++ {
		e.join(&left, pts[j], norms[j-1], norms[j], 1)
		e.join(&right, pts[j], norms[j-1], norms[j], -1)
	}
	left = append(left, pts[last].add(norms[last-1]))
	right = append(right, pts[last].sub(norms[last-1]))

	contour := left
	e.cap(&contour, pts[last], norms[last-1])
	for i := len(right) - 1; i >= 0; i-- {
		contour = append(contour, right[i])
	}
	e.cap(&contour, pts[0], norms[0].scale(-1))
	return contour
}

func (e *expander) closed(pts []Point) [][]Point {
	norms := e.normals(pts, true)
	n := len(pts)

	var left, right []Point
	for j := 0; j < n; j++ {
		prev := norms[(j+n-1)%n]
		e.join(&left, pts[j], prev, norms[j], 1)
		e.join(&right, pts[j], prev, norms[j], -1)
	}
	rev := make([]Point, len(right))
	for i, p := range right {
		rev[len(right)-1-i] = p
	}
	return [][]Point{left, rev}
}

// join appends the offset geometry at vertex p on one side. side is +1
// for the left offset and -1 for the right one.
func (e *expander) join(out *[]Point, p, prev, next Point, side float64) {
	a := p.add(prev.scale(side))
	b := p.add(next.scale(side))
	turn := prev.cross(next)
	if math.Abs(turn) < 1e-9*e.half*e.half && prev.dot(next) > 0 {
		*out = append(*out, a, b)
		return
	}

	// The side the path turns toward is the inner side.
	if turn*side > 0 {
		*out = append(*out, a, p, b)
		return
	}

	switch e.style.Join {
	case JoinRound:
		*out = append(*out, a)
		start := a.sub(p).angle()
		sweep := b.sub(p).angle() - start
		for sweep > math.Pi {
			sweep -= 2 * math.Pi
		}
		for sweep < -math.Pi {
			sweep += 2 * math.Pi
		}
		e.arc(out, p, start, sweep)
	case JoinMiter:
		m := prev.add(next).unit()
		cosHalf := m.dot(prev) / e.half
		if cosHalf > 0 && 1/cosHalf <= e.style.MiterLimit {
			*out = append(*out, a, p.add(m.scale(side*e.half/cosHalf)), b)
			return
		}
		fallthrough
	default:
		*out = append(*out, a, b)
	}
}

// cap appends the end cap at p, turning from the left offset norm to the
// right one around the outward direction.
func (e *expander) cap(out *[]Point, p, norm Point) {
	dir := Point{norm.Y, -norm.X} // norm rotated back to the segment direction
	switch e.style.Cap {
	case CapRound:
		e.arc(out, p, norm.angle(), -math.Pi)
	case CapSquare:
		*out = append(*out, p.add(norm).add(dir), p.sub(norm).add(dir))
	}
}

// arc appends points on the circle of radius half around c, excluding the
// start point.
func (e *expander) arc(out *[]Point, c Point, start, sweep float64) {
	r := e.half
	step := math.Pi / 2
	if tol := e.style.Tolerance; tol < r {
		step = math.Min(step, 2*math.Acos(1-tol/r))
	}
	n := int(math.Ceil(math.Abs(sweep) / step))
	if n < 1 {
		n = 1
	}
	for i := 1; i <= n; i++ {
		*out = append(*out, polar(c, r, start+sweep*float64(i)/float64(n)))
	}
}
