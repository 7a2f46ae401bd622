package stereo

import (
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Float is the element type of the batched transforms.
type Float interface {
	~float32 | ~float64
}

// AxisOrder names which channel of a [2][]T input holds the latitude.
type AxisOrder int

const (
	// LatLon means from[0] is latitude and from[1] is longitude.
	LatLon AxisOrder = iota
	// LonLat means from[0] is longitude and from[1] is latitude.
	LonLat
)

func (o AxisOrder) indexes() (latIndex, lonIndex int) {
	if o == LonLat {
		return 1, 0
	}
	return 0, 1
}

var (
	// ErrMissingData is returned when a batched transform is given a nil
	// channel.
	ErrMissingData = errors.New("missing data")
	// ErrDataSizeMismatch is returned when the channels of a batched
	// transform differ in length.
	ErrDataSizeMismatch = errors.New("data size mismatch")
)

// minChunk is the smallest number of elements handed to one goroutine by the
// parallel transforms.
const minChunk = 4096

func checkChannels[T Float](from, to [2][]T) (int, error) {
	for _, ch := range [...][]T{from[0], from[1], to[0], to[1]} {
		if ch == nil {
			return 0, ErrMissingData
		}
	}
	n := len(from[0])
	if len(from[1]) != n || len(to[0]) != n || len(to[1]) != n {
		return 0, ErrDataSizeMismatch
	}
	return n, nil
}

// ProjectSlices converts the geographic coordinates in from, laid out as
// given by order, to projection coordinates. to[0] receives x and to[1]
// receives y. Each element is converted exactly as Forward would, then
// stored in the precision of T.
func ProjectSlices[T Float](p *Stereographic, from, to [2][]T, order AxisOrder) error {
	n, err := checkChannels(from, to)
	if err != nil {
		return err
	}
	projectRange(p, from, to, order, 0, n)
	return nil
}

// UnprojectSlices converts the projection coordinates in from (from[0] is x,
// from[1] is y) to geographic coordinates. to[0] receives latitude and
// to[1] receives longitude.
func UnprojectSlices[T Float](p *Stereographic, from, to [2][]T) error {
	n, err := checkChannels(from, to)
	if err != nil {
		return err
	}
	unprojectRange(p, from, to, 0, n)
	return nil
}

// ProjectSlicesParallel is ProjectSlices with the elements split across
// goroutines. The output is identical.
func ProjectSlicesParallel[T Float](p *Stereographic, from, to [2][]T, order AxisOrder) error {
	n, err := checkChannels(from, to)
	if err != nil {
		return err
	}
	forChunks(n, func(lo, hi int) {
		projectRange(p, from, to, order, lo, hi)
	})
	return nil
}

// UnprojectSlicesParallel is UnprojectSlices with the elements split across
// goroutines. The output is identical.
func UnprojectSlicesParallel[T Float](p *Stereographic, from, to [2][]T) error {
	n, err := checkChannels(from, to)
	if err != nil {
		return err
	}
	forChunks(n, func(lo, hi int) {
		unprojectRange(p, from, to, lo, hi)
	})
	return nil
}

func projectRange[T Float](p *Stereographic, from, to [2][]T, order AxisOrder, lo, hi int) {
	latIndex, lonIndex := order.indexes()
	lats, lons := from[latIndex], from[lonIndex]
	xs, ys := to[0], to[1]
	for i := lo; i < hi; i++ {
		x, y := p.Forward(float64(lats[i]), float64(lons[i]))
		xs[i] = T(x)
		ys[i] = T(y)
	}
}

func unprojectRange[T Float](p *Stereographic, from, to [2][]T, lo, hi int) {
	xs, ys := from[0], from[1]
	lats, lons := to[0], to[1]
	for i := lo; i < hi; i++ {
		lat, lon := p.Inverse(float64(xs[i]), float64(ys[i]))
		lats[i] = T(lat)
		lons[i] = T(lon)
	}
}

// forChunks calls fn over [0, n) split into contiguous chunks, one goroutine
// per chunk, with at most GOMAXPROCS running at once.
func forChunks(n int, fn func(lo, hi int)) {
	workers := runtime.GOMAXPROCS(0)
	chunk := (n + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}
	if n <= chunk {
		fn(0, n)
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}
