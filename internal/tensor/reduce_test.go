package tensor

import "testing"

func TestSumAlongAxis(t *testing.T) {
	// [[1, 2, 3],
	//  [4, 5, 6]]
	a := mustNDArray(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	sum0 := a.Sum([]int{0}, false)
	assertEqualShape(t, Shape{3}, sum0.Shape(), "Sum(0) shape")
	assertEqualData(t, []float64{5, 7, 9}, sum0, "Sum(0)")

	sum1 := a.Sum([]int{1}, false)
	assertEqualShape(t, Shape{2}, sum1.Shape(), "Sum(1) shape")
	assertEqualData(t, []float64{6, 15}, sum1, "Sum(1)")
}

func TestSumKeepDims(t *testing.T) {
	a := mustNDArray(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	sum0 := a.Sum([]int{0}, true)
	assertEqualShape(t, Shape{1, 3}, sum0.Shape(), "Sum(0, keepDims) shape")
	assertEqualData(t, []float64{5, 7, 9}, sum0, "Sum(0, keepDims)")
}

func TestSumAllAxes(t *testing.T) {
	a := mustNDArray(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	total := a.Sum(nil, false)
	assertEqualShape(t, Shape{1}, total.Shape(), "Sum(all) shape")
	assertEqualData(t, []float64{21}, total, "Sum(all)")

	kept := a.Sum(nil, true)
	assertEqualShape(t, Shape{1, 1}, kept.Shape(), "Sum(all, keepDims) shape")
	assertEqualData(t, []float64{21}, kept, "Sum(all, keepDims)")
}

func TestSumMultipleAxes(t *testing.T) {
	// Shape (2, 2, 2): 1..8.
	a := mustNDArray(t, []float64{1, 2, 3, 4, 5, 6, 7, 8}, Shape{2, 2, 2})

	s := a.Sum([]int{0, 2}, false)
	assertEqualShape(t, Shape{2}, s.Shape(), "Sum(0,2) shape")
	// axis 1 = 0: 1+2+5+6, axis 1 = 1: 3+4+7+8.
	assertEqualData(t, []float64{14, 22}, s, "Sum(0,2)")
}

func TestSumDuplicateAxes(t *testing.T) {
	a := mustNDArray(t, []float64{1, 2, 3, 4}, Shape{2, 2})
	s := a.Sum([]int{0, 0}, false)
	assertEqualShape(t, Shape{2}, s.Shape(), "duplicate axes deduplicated")
	assertEqualData(t, []float64{4, 6}, s, "duplicate axes result")
}

func TestSumMiddleAxis(t *testing.T) {
	a := mustNDArray(t, []float64{1, 2, 3, 4, 5, 6, 7, 8}, Shape{2, 2, 2})
	s := a.Sum([]int{1}, false)
	assertEqualShape(t, Shape{2, 2}, s.Shape(), "Sum(1) shape")
	assertEqualData(t, []float64{4, 6, 12, 14}, s, "Sum(1)")
}

func TestMean(t *testing.T) {
	a := mustNDArray(t, []float64{2, 4, 6, 8, 10, 12}, Shape{2, 3})

	mean0 := a.Mean([]int{0}, false)
	assertEqualData(t, []float64{5, 7, 9}, mean0, "Mean(0)")

	mean1 := a.Mean([]int{1}, false)
	assertEqualData(t, []float64{4, 10}, mean1, "Mean(1)")

	total := a.Mean(nil, false)
	assertEqualData(t, []float64{7}, total, "Mean(all)")
}

func TestMaxMin(t *testing.T) {
	a := mustNDArray(t, []float64{3, -1, 2, 7, 0, -5}, Shape{2, 3})

	max0 := a.Max([]int{0}, false)
	assertEqualData(t, []float64{7, 0, 2}, max0, "Max(0)")

	min1 := a.Min([]int{1}, false)
	assertEqualData(t, []float64{-1, -5}, min1, "Min(1)")

	assertEqualData(t, []float64{7}, a.Max(nil, false), "Max(all)")
	assertEqualData(t, []float64{-5}, a.Min(nil, false), "Min(all)")
}

func TestReduceInvalidAxisPanics(t *testing.T) {
	a := Zeros(Shape{2, 3})
	for _, ax := range []int{-1, 2} {
		r := capturePanic(func() { a.Sum([]int{ax}, false) })
		if _, ok := r.(*RankError); !ok {
			t.Errorf("axis %d: panic value %T, want *RankError", ax, r)
		}
	}
}

func TestReduceDoesNotMutateSource(t *testing.T) {
	a := mustNDArray(t, []float64{1, 2, 3, 4}, Shape{2, 2})
	a.Sum(nil, false)
	a.Max([]int{0}, true)
	assertEqualData(t, []float64{1, 2, 3, 4}, a, "source unchanged")
}
