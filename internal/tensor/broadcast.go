package tensor

import "math"

// broadcast applies fn elementwise over a and b stretched to their common
// broadcast shape. Both operands are read through stride-0 views along
// stretched dimensions, so no intermediate copy is materialized.
func broadcast(op string, a, b *NDArray, fn func(x, y float64) float64) *NDArray {
	if a.Rank() == 0 {
		panic(&RankError{Op: op, Rank: 0, Min: 1})
	}
	if b.Rank() == 0 {
		panic(&RankError{Op: op, Rank: 0, Min: 1})
	}

	outShape, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		panic(err)
	}

	out := Zeros(outShape)
	outStrides := outShape.Strides()
	aStrides := broadcastStrides(a.shape, outShape)
	bStrides := broadcastStrides(b.shape, outShape)

	for i := range out.data {
		out.data[i] = fn(a.data[flatIndex(i, outStrides, aStrides)], b.data[flatIndex(i, outStrides, bStrides)])
	}
	return out
}

// Add returns a + b with broadcasting.
func (a *NDArray) Add(b *NDArray) *NDArray {
	return broadcast("add", a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns a - b with broadcasting.
func (a *NDArray) Sub(b *NDArray) *NDArray {
	return broadcast("sub", a, b, func(x, y float64) float64 { return x - y })
}

// Mul returns the elementwise product a * b with broadcasting.
func (a *NDArray) Mul(b *NDArray) *NDArray {
	return broadcast("mul", a, b, func(x, y float64) float64 { return x * y })
}

// Div returns a / b with broadcasting. Division by zero is not
// special-cased: infinities and NaNs propagate per IEEE 754.
func (a *NDArray) Div(b *NDArray) *NDArray {
	return broadcast("div", a, b, func(x, y float64) float64 { return x / y })
}

// AddScalar returns a + v.
func (a *NDArray) AddScalar(v float64) *NDArray {
	return a.apply(func(x float64) float64 { return x + v })
}

// MulScalar returns a * v.
func (a *NDArray) MulScalar(v float64) *NDArray {
	return a.apply(func(x float64) float64 { return x * v })
}

// Neg returns -a.
func (a *NDArray) Neg() *NDArray {
	return a.apply(func(x float64) float64 { return -x })
}

// Exp returns e^a elementwise.
func (a *NDArray) Exp() *NDArray {
	return a.apply(math.Exp)
}

// Abs returns |a| elementwise.
func (a *NDArray) Abs() *NDArray {
	return a.apply(math.Abs)
}

// Sqrt returns the elementwise square root.
func (a *NDArray) Sqrt() *NDArray {
	return a.apply(math.Sqrt)
}

// Pow returns a^n elementwise for an integer exponent.
func (a *NDArray) Pow(n int) *NDArray {
	e := float64(n)
	return a.apply(func(x float64) float64 { return math.Pow(x, e) })
}

// apply maps fn over every element into a new array.
func (a *NDArray) apply(fn func(float64) float64) *NDArray {
	out := Zeros(a.shape)
	for i, v := range a.data {
		out.data[i] = fn(v)
	}
	return out
}

// Comparisons produce 0/1-valued arrays with the same broadcasting rule as
// arithmetic. The results are masks; they are never differentiable.

// Greater returns 1 where a > b, else 0, with broadcasting.
func (a *NDArray) Greater(b *NDArray) *NDArray {
	return broadcast("greater", a, b, cmp(func(x, y float64) bool { return x > y }))
}

// GreaterEqual returns 1 where a >= b, else 0, with broadcasting.
func (a *NDArray) GreaterEqual(b *NDArray) *NDArray {
	return broadcast("greater_equal", a, b, cmp(func(x, y float64) bool { return x >= y }))
}

// Less returns 1 where a < b, else 0, with broadcasting.
func (a *NDArray) Less(b *NDArray) *NDArray {
	return broadcast("less", a, b, cmp(func(x, y float64) bool { return x < y }))
}

// LessEqual returns 1 where a <= b, else 0, with broadcasting.
func (a *NDArray) LessEqual(b *NDArray) *NDArray {
	return broadcast("less_equal", a, b, cmp(func(x, y float64) bool { return x <= y }))
}

func cmp(pred func(x, y float64) bool) func(x, y float64) float64 {
	return func(x, y float64) float64 {
		if pred(x, y) {
			return 1
		}
		return 0
	}
}
