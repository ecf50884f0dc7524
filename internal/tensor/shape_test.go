package tensor

import (
	"errors"
	"testing"
)

func TestShapeRankAndNumElements(t *testing.T) {
	s := Shape{2, 3, 4}
	if s.Rank() != 3 {
		t.Errorf("Rank() = %d, want 3", s.Rank())
	}
	if s.NumElements() != 24 {
		t.Errorf("NumElements() = %d, want 24", s.NumElements())
	}
	if (Shape{}).NumElements() != 1 {
		t.Error("empty shape must describe one element")
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("valid shape rejected: %v", err)
	}

	err := (Shape{}).Validate()
	var rankErr *RankError
	if !errors.As(err, &rankErr) {
		t.Errorf("empty shape: got %T, want *RankError", err)
	}

	err = (Shape{2, -1}).Validate()
	var shapeErr *ShapeError
	if !errors.As(err, &shapeErr) {
		t.Errorf("negative dimension: got %T, want *ShapeError", err)
	}
}

func TestShapeStrides(t *testing.T) {
	got := Shape{2, 3, 4}.Strides()
	want := []int{12, 4, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Strides()[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	if s := (Shape{5}).Strides(); s[0] != 1 {
		t.Errorf("rank-1 stride = %d, want 1", s[0])
	}
}

func TestShapeCloneIsIndependent(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 9
	if s[0] != 2 {
		t.Error("Clone must not alias the source")
	}
}

func TestBroadcastShapes(t *testing.T) {
	cases := []struct {
		a, b, want Shape
	}{
		{Shape{3, 1}, Shape{1, 2}, Shape{3, 2}},
		{Shape{3, 1}, Shape{3, 5}, Shape{3, 5}},
		{Shape{1, 5}, Shape{3, 5}, Shape{3, 5}},
		{Shape{5}, Shape{3, 5}, Shape{3, 5}},
		{Shape{1}, Shape{4, 9}, Shape{4, 9}},
		{Shape{2, 3, 4}, Shape{3, 4}, Shape{2, 3, 4}},
		{Shape{7}, Shape{7}, Shape{7}},
	}
	for _, c := range cases {
		got, err := BroadcastShapes(c.a, c.b)
		if err != nil {
			t.Errorf("BroadcastShapes(%v, %v): %v", c.a, c.b, err)
			continue
		}
		assertEqualShape(t, c.want, got, "BroadcastShapes")

		// Broadcasting is symmetric.
		swapped, err := BroadcastShapes(c.b, c.a)
		if err != nil {
			t.Errorf("BroadcastShapes(%v, %v): %v", c.b, c.a, err)
			continue
		}
		assertEqualShape(t, c.want, swapped, "BroadcastShapes swapped")
	}
}

func TestBroadcastShapesIncompatible(t *testing.T) {
	cases := []struct{ a, b Shape }{
		{Shape{3, 4}, Shape{3, 5}},
		{Shape{2, 3}, Shape{2}},
		{Shape{2, 2}, Shape{3, 3}},
	}
	for _, c := range cases {
		_, err := BroadcastShapes(c.a, c.b)
		var bcErr *BroadcastError
		if !errors.As(err, &bcErr) {
			t.Errorf("BroadcastShapes(%v, %v): got %T, want *BroadcastError", c.a, c.b, err)
		}
	}
}

func TestBroadcastErrorReportsDimension(t *testing.T) {
	_, err := BroadcastShapes(Shape{3, 4}, Shape{3, 5})
	var bcErr *BroadcastError
	if !errors.As(err, &bcErr) {
		t.Fatalf("got %T, want *BroadcastError", err)
	}
	if bcErr.Dim != 1 {
		t.Errorf("Dim = %d, want 1", bcErr.Dim)
	}
}
