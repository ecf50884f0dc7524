package autodiff

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/sagnik1511/rash/internal/tensor"
)

// checkGradient compares the engine's gradient of sum(f(x)) against a
// central finite difference, element by element. Backward seeds the output
// gradient with ones, so the analytic gradient corresponds to the sum of
// all output elements; the numeric side sums the perturbed outputs to
// match.
func checkGradient(t *testing.T, name string, f func(Tensor) Tensor, x *tensor.NDArray) {
	t.Helper()

	const (
		eps    = 1e-6
		relTol = 1e-4
	)

	leaf := New(x.Clone(), true)
	f(leaf).Backward()
	analytic := leaf.Grad()

	for i := range x.Data() {
		perturb := func(delta float64) float64 {
			xp := x.Clone()
			xp.Data()[i] += delta
			out := f(New(xp, false)).Value()
			total := 0.0
			for _, v := range out.Data() {
				total += v
			}
			return total
		}
		numeric := (perturb(eps) - perturb(-eps)) / (2 * eps)

		got := analytic.Data()[i]
		if !scalar.EqualWithinAbsOrRel(got, numeric, 1e-7, relTol) {
			t.Errorf("%s: element %d: analytic %v vs numeric %v", name, i, got, numeric)
		}
	}
}

func TestGradientCheckAdd(t *testing.T) {
	col := tensor.Rand(tensor.Shape{3, 1})
	row := tensor.Rand(tensor.Shape{1, 4})

	rowLeaf := New(row, false)
	checkGradient(t, "add broadcast left", func(v Tensor) Tensor { return v.Add(rowLeaf) }, col)

	colLeaf := New(col, false)
	checkGradient(t, "add broadcast right", func(v Tensor) Tensor { return colLeaf.Add(v) }, row)
}

func TestGradientCheckSub(t *testing.T) {
	other := New(tensor.Rand(tensor.Shape{2, 3}), false)
	x := tensor.Rand(tensor.Shape{2, 3})
	checkGradient(t, "sub left", func(v Tensor) Tensor { return v.Sub(other) }, x)
	checkGradient(t, "sub right", func(v Tensor) Tensor { return other.Sub(v) }, x)
}

func TestGradientCheckMul(t *testing.T) {
	other := New(tensor.Rand(tensor.Shape{2, 3}).AddScalar(0.5), false)
	x := tensor.Rand(tensor.Shape{2, 3}).AddScalar(0.5)
	checkGradient(t, "mul", func(v Tensor) Tensor { return v.Mul(other) }, x)

	col := tensor.Rand(tensor.Shape{3, 1}).AddScalar(0.5)
	row := New(tensor.Rand(tensor.Shape{1, 4}).AddScalar(0.5), false)
	checkGradient(t, "mul broadcast", func(v Tensor) Tensor { return v.Mul(row) }, col)
}

func TestGradientCheckDiv(t *testing.T) {
	// Operands bounded away from zero keep the quotient smooth.
	num := tensor.Rand(tensor.Shape{2, 3}).AddScalar(1)
	den := New(tensor.Rand(tensor.Shape{2, 3}).AddScalar(1), false)

	checkGradient(t, "div numerator", func(v Tensor) Tensor { return v.Div(den) }, num)

	numLeaf := New(num, false)
	checkGradient(t, "div denominator", func(v Tensor) Tensor { return numLeaf.Div(v) },
		tensor.Rand(tensor.Shape{2, 3}).AddScalar(1))
}

func TestGradientCheckExp(t *testing.T) {
	x := tensor.Rand(tensor.Shape{2, 3})
	checkGradient(t, "exp", func(v Tensor) Tensor { return v.Exp() }, x)
}

func TestGradientCheckPow(t *testing.T) {
	x := tensor.Rand(tensor.Shape{2, 3}).AddScalar(0.5)
	checkGradient(t, "pow 3", func(v Tensor) Tensor { return v.Pow(3) }, x)
	checkGradient(t, "pow -2", func(v Tensor) Tensor { return v.Pow(-2) }, x)
}

func TestGradientCheckNegChain(t *testing.T) {
	x := tensor.Rand(tensor.Shape{4})
	checkGradient(t, "neg of exp", func(v Tensor) Tensor { return v.Exp().Neg() }, x)
}

func TestGradientCheckMatMul(t *testing.T) {
	right := New(tensor.Rand(tensor.Shape{3, 4}), false)
	a := tensor.Rand(tensor.Shape{2, 3})
	checkGradient(t, "matmul left", func(v Tensor) Tensor { return MatMul(v, right) }, a)

	left := New(tensor.Rand(tensor.Shape{2, 3}), false)
	b := tensor.Rand(tensor.Shape{3, 4})
	checkGradient(t, "matmul right", func(v Tensor) Tensor { return MatMul(left, v) }, b)
}

func TestGradientCheckMatMulVector(t *testing.T) {
	m := New(tensor.Rand(tensor.Shape{3, 2}), false)
	v := tensor.Rand(tensor.Shape{2})
	checkGradient(t, "mat x vec", func(x Tensor) Tensor { return MatMul(m, x) }, v)

	w := tensor.Rand(tensor.Shape{3})
	checkGradient(t, "vec x mat", func(x Tensor) Tensor { return MatMul(x, m) }, w)

	u := New(tensor.Rand(tensor.Shape{4}), false)
	d := tensor.Rand(tensor.Shape{4})
	checkGradient(t, "vec x vec", func(x Tensor) Tensor { return MatMul(x, u) }, d)
}

func TestGradientCheckMatMulBatched(t *testing.T) {
	shared := New(tensor.Rand(tensor.Shape{4, 2}), false)
	batched := tensor.Rand(tensor.Shape{3, 2, 4})
	checkGradient(t, "batched x shared", func(v Tensor) Tensor { return MatMul(v, shared) }, batched)

	// Gradient of the shared operand sums over the broadcast batch axis.
	batchedLeaf := New(batched, false)
	checkGradient(t, "shared in batched", func(v Tensor) Tensor { return MatMul(batchedLeaf, v) },
		tensor.Rand(tensor.Shape{4, 2}))
}

func TestGradientCheckTranspose(t *testing.T) {
	scale := New(tensor.Rand(tensor.Shape{3, 2}), false)
	x := tensor.Rand(tensor.Shape{2, 3})
	checkGradient(t, "transpose then mul", func(v Tensor) Tensor { return v.Transpose().Mul(scale) }, x)
}

func TestGradientCheckComposite(t *testing.T) {
	// f(x) = exp(x @ w) / (x @ w + 2), a small expression mixing every
	// derivative rule.
	w := New(tensor.Rand(tensor.Shape{3, 2}), false)
	two := New(tensor.Full(tensor.Shape{2, 2}, 2), false)

	x := tensor.Rand(tensor.Shape{2, 3})
	checkGradient(t, "composite", func(v Tensor) Tensor {
		h := MatMul(v, w)
		return h.Exp().Div(h.Add(two))
	}, x)
}
