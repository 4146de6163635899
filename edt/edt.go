// Package edt implements the exact Euclidean distance transform of binary masks
// and the encoding of the resulting distance pairs into a normalized signed distance field.
//
// The transform is the separable lower envelope of parabolas algorithm by Felzenszwalb
// and Huttenlocher: a one dimensional squared distance transform is run over every row,
// then over every column of the row result. Both passes are linear in the amount of pixels.
package edt

import (
	"math"
	"runtime"

	"github.com/soypat/rastersdf/raster"
	"golang.org/x/sync/errgroup"
)

// far stands in for an infinite squared distance. It is finite so that differences
// between two far samples stay well defined during envelope construction.
const far = 1e30

// Transformer computes distance transforms of masks. The zero value is ready to use
// and runs on GOMAXPROCS workers.
type Transformer struct {
	// Workers limits the amount of goroutines used per pass. Zero or negative selects
	// runtime.GOMAXPROCS(0). One runs the transform on the calling goroutine.
	Workers int
}

// Transform computes both distance grids of m with a zero value [Transformer].
func Transform(m *raster.Mask, spread float32) (outside, inside *raster.Distance) {
	var t Transformer
	return t.Transform(m, spread)
}

// Transform returns two distance grids of the dimensions of m, saturated at spread:
//   - outside holds, for every background pixel, the distance to the nearest foreground pixel.
//   - inside holds, for every foreground pixel, the distance to the nearest background pixel.
//
// Pixels of the class being measured from hold zero. Distances are measured between pixel centers.
func (t *Transformer) Transform(m *raster.Mask, spread float32) (outside, inside *raster.Distance) {
	var g errgroup.Group
	g.Go(func() error {
		outside = t.Distance(m, true, spread)
		return nil
	})
	g.Go(func() error {
		inside = t.Distance(m, false, spread)
		return nil
	})
	g.Wait()
	return outside, inside
}

// Distance returns, for every pixel of m, the distance to the nearest pixel whose
// class equals target, saturated at spread. Pixels of class target hold zero.
// When no pixel of class target exists every pixel is saturated.
func (t *Transformer) Distance(m *raster.Mask, target bool, spread float32) *raster.Distance {
	w, h := m.Width, m.Height
	dist := raster.NewDistance(w, h)
	if w == 0 || h == 0 {
		return dist
	}
	sq := make([]float64, w*h)
	n := max(w, h)
	// Rows: squared distance to the nearest target within the same row.
	t.parallel(h, n, func(y0, y1 int, e *envelope) {
		f, d := e.f[:w], e.d[:w]
		for y := y0; y < y1; y++ {
			row := m.Pix[y*w : (y+1)*w]
			for x, class := range row {
				if class == target {
					f[x] = 0
				} else {
					f[x] = far
				}
			}
			SquaredDistance1D(f, d, e.v, e.z)
			copy(sq[y*w:], d)
		}
	})
	// Columns: combine row distances into the full 2D squared distance.
	spread64 := float64(spread)
	t.parallel(w, n, func(x0, x1 int, e *envelope) {
		f, d := e.f[:h], e.d[:h]
		for x := x0; x < x1; x++ {
			for y := range f {
				f[y] = sq[y*w+x]
			}
			SquaredDistance1D(f, d, e.v, e.z)
			for y, dsq := range d {
				dist.Pix[y*w+x] = float32(math.Min(math.Sqrt(dsq), spread64))
			}
		}
	})
	return dist
}

func (t *Transformer) workers() int {
	if t == nil || t.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return t.Workers
}

// parallel splits [0,lines) into contiguous bands and calls fn for every band.
// Each band receives its own envelope buffers sized for bufLen samples.
// Bands write disjoint lines so no synchronization between them is required.
func (t *Transformer) parallel(lines, bufLen int, fn func(start, end int, e *envelope)) {
	workers := min(t.workers(), lines)
	if workers <= 1 {
		fn(0, lines, newEnvelope(bufLen))
		return
	}
	band := (lines + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < lines; start += band {
		start, end := start, min(start+band, lines)
		g.Go(func() error {
			fn(start, end, newEnvelope(bufLen))
			return nil
		})
	}
	g.Wait()
}

// envelope holds the scratch buffers of one 1D transform worker.
type envelope struct {
	f, d []float64
	v    []int
	z    []float64
}

func newEnvelope(n int) *envelope {
	return &envelope{
		f: make([]float64, n),
		d: make([]float64, n),
		v: make([]int, n),
		z: make([]float64, n+1),
	}
}

// SquaredDistance1D computes the one dimensional squared distance transform of f into d:
//
//	d[q] = min over p of (q-p)² + f[p]
//
// v and z are scratch buffers of lengths at least len(f) and len(f)+1.
// d must not alias f. Samples of f with no nearby source should be large but finite.
func SquaredDistance1D(f, d []float64, v []int, z []float64) {
	n := len(f)
	if n == 0 {
		return
	}
	_ = d[n-1]
	_ = v[n-1]
	_ = z[n]
	k := 0 // Index of the rightmost parabola in the lower envelope.
	v[0] = 0
	z[0] = math.Inf(-1)
	z[1] = math.Inf(1)
	for q := 1; q < n; q++ {
		var s float64
		for {
			// Intersection of the parabolas rooted at q and v[k].
			p := v[k]
			s = ((f[q] - f[p]) + float64(q*q-p*p)) / float64(2*(q-p))
			if s > z[k] {
				break
			}
			k-- // Parabola v[k] is hidden below the envelope, drop it.
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = math.Inf(1)
	}
	k = 0
	for q := 0; q < n; q++ {
		for z[k+1] < float64(q) {
			k++
		}
		dq := float64(q - v[k])
		d[q] = dq*dq + f[v[k]]
	}
}
