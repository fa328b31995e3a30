package kdtree

import (
	"math"
	"math/rand"
	"sort"
	"testing"
)

// NewRandPoints returns size points of integral coordinates in [0, maxVal),
// so that duplicates on an axis are common.
func NewRandPoints(numDims, maxVal, size int, seed int64) (points []Point) {
	rnd := rand.New(rand.NewSource(seed))
	for i := 0; i < size; i++ {
		point := make(Point, 0, numDims)
		for j := 0; j < numDims; j++ {
			point = append(point, float64(rnd.Intn(maxVal)))
		}
		points = append(points, point)
	}
	return
}

type CaseInside struct {
	point, lowPoint, highPoint Point
	isInside                   bool
}

func TestIsInside(t *testing.T) {
	cases := []CaseInside{
		{
			Point{30, 80, 40},
			Point{30, 80, 40},
			Point{50, 90, 50},
			true,
		},
		{
			Point{30, 79, 40},
			Point{30, 80, 40},
			Point{50, 90, 50},
			false,
		},
		{ //invalid range
			Point{30, 80, 40},
			Point{30, 80, 40},
			Point{50, 90, 39},
			false,
		},
	}

	for i, tc := range cases {
		res := IsInside(tc.point, tc.lowPoint, tc.highPoint)
		if res != tc.isInside {
			t.Errorf("case %v failed\n", i)
		}
		rect := &Rect{Min: tc.lowPoint, Max: tc.highPoint}
		if rect.Contains(tc.point) != tc.isInside {
			t.Errorf("case %v failed for Rect.Contains\n", i)
		}
	}
}

func TestEquals(t *testing.T) {
	if !Equals(Point{1, 2}, Point{1, 2}) {
		t.Errorf("equal points reported different")
	}
	if Equals(Point{1, 2}, Point{1, 3}) {
		t.Errorf("different points reported equal")
	}
	if Equals(Point{1, 2}, Point{1, 2, 3}) {
		t.Errorf("points of different dimensions reported equal")
	}
}

func TestSqDist(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
	}{
		{"same", Point{1, 2, 3}, Point{1, 2, 3}, 0},
		{"2d", Point{9, 2}, Point{8, 1}, 2},
		{"negative", Point{-1, -1}, Point{2, 3}, 25},
		{"1d", Point{4}, Point{-4}, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.SqDist(tt.b); got != tt.want {
				t.Errorf("Point.SqDist() = %v, want %v", got, tt.want)
			}
			if got := tt.b.SqDist(tt.a); got != tt.want {
				t.Errorf("Point.SqDist() is not symmetric, got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointClone(t *testing.T) {
	p := Point{1, 2}
	c := p.Clone()
	c[0] = 100
	if p[0] != 1 {
		t.Errorf("Clone shares storage with the original")
	}
	if Point(nil).Clone() != nil {
		t.Errorf("Clone of nil point is not nil")
	}
}

func TestPointString(t *testing.T) {
	if got := (Point{2, 3.5, -1}).String(); got != "(2, 3.5, -1)" {
		t.Errorf("Point.String() = %q", got)
	}
	if got := Point(nil).String(); got != "(undef)" {
		t.Errorf("Point.String() of nil = %q", got)
	}
}

func TestRectExtend(t *testing.T) {
	rect := NewRect(Point{5, 5})
	rect.Extend(Point{1, 7})
	rect.Extend(Point{3, -2})
	if !Equals(rect.Min, Point{1, -2}) || !Equals(rect.Max, Point{5, 7}) {
		t.Errorf("incorrect rect %v %v", rect.Min, rect.Max)
	}
}

func TestNewRectCopies(t *testing.T) {
	p := Point{1, 1}
	rect := NewRect(p)
	rect.Extend(Point{0, 0})
	if !Equals(p, Point{1, 1}) {
		t.Errorf("NewRect aliases its argument, point is now %v", p)
	}
	clone := rect.Clone()
	clone.Min[0] = -100
	if rect.Min[0] != 0 {
		t.Errorf("Rect.Clone shares storage with the original")
	}
}

func TestRectSqDistTo(t *testing.T) {
	rect := &Rect{Min: Point{0, 0}, Max: Point{4, 2}}
	tests := []struct {
		name string
		p    Point
		want float64
	}{
		{"inside", Point{1, 1}, 0},
		{"on bound", Point{4, 2}, 0},
		{"left", Point{-3, 1}, 9},
		{"above", Point{2, 5}, 9},
		{"corner", Point{7, 6}, 9 + 16},
		{"below left", Point{-1, -1}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rect.SqDistTo(tt.p); got != tt.want {
				t.Errorf("Rect.SqDistTo() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointArrayTieBreak(t *testing.T) {
	points := []Point{{3, 0}, {1, 1}, {3, 2}, {1, 3}, {2, 4}}
	pa := newPointArray(points)
	pa.byDim = 0
	sort.Sort(pa)
	want := []int{1, 3, 4, 0, 2}
	for i, entry := range pa.entries {
		if entry.idx != want[i] {
			t.Fatalf("entries[%d] has input index %d, want %d", i, entry.idx, want[i])
		}
	}
	pa.entries[0].point[0] = 100
	if points[1][0] != 1 {
		t.Errorf("pointArray aliases the caller's points")
	}
}

func TestPointHasNaN(t *testing.T) {
	if (Point{1, 2}).hasNaN() {
		t.Errorf("finite point reported NaN")
	}
	if !(Point{1, math.NaN()}).hasNaN() {
		t.Errorf("NaN not detected")
	}
}
