package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// MatMul multiplies two arrays following the usual rank dispatch:
//
//	(K,) x (K,)          → (1,)      dot product
//	(K,) x (K, N)        → (N,)
//	(M, K) x (K,)        → (M,)
//	(M, K) x (K, N)      → (M, N)
//	(..., M, K) x (..., K, N) → (..., M, N)  batched, batch prefixes broadcast
//
// Rank-1 operands are normalized to matrices (a row on the left, a column
// on the right), the batched product is computed, and the borrowed axes are
// squeezed away again. Contraction-size and batch-broadcast mismatches fail
// with *ShapeError before any output is allocated.
func MatMul(a, b *NDArray) *NDArray {
	if a.Rank() == 0 || b.Rank() == 0 {
		panic(&RankError{Op: "matmul", Rank: 0, Min: 1})
	}

	a2, b2 := a, b
	rowVec, colVec := false, false
	if a.Rank() == 1 {
		a2 = a.Unsqueeze(0) // (K,) → (1, K)
		rowVec = true
	}
	if b.Rank() == 1 {
		b2 = b.Unsqueeze(1) // (K,) → (K, 1)
		colVec = true
	}

	out := matmulBatched(a2, b2)

	if rowVec {
		out = out.Squeeze(out.Rank() - 2)
	}
	if colVec {
		out = out.Squeeze(out.Rank() - 1)
	}
	return out
}

// MatMulShape computes the result shape of MatMul for two rank >= 2 shapes
// without performing the multiplication.
func MatMulShape(a, b Shape) (Shape, error) {
	if len(a) < 2 || len(b) < 2 {
		return nil, &RankError{Op: "matmul", Rank: min(len(a), len(b)), Min: 2}
	}

	m, k := a[len(a)-2], a[len(a)-1]
	k2, n := b[len(b)-2], b[len(b)-1]
	if k != k2 {
		return nil, &ShapeError{
			Op:  "matmul",
			Msg: fmt.Sprintf("contraction size mismatch: %v x %v (K %d != %d)", a, b, k, k2),
		}
	}

	batch, err := BroadcastShapes(a[:len(a)-2], b[:len(b)-2])
	if err != nil {
		return nil, &ShapeError{
			Op:  "matmul",
			Msg: fmt.Sprintf("batch prefixes of %v and %v are not broadcastable", a, b),
		}
	}

	out := make(Shape, 0, len(batch)+2)
	out = append(out, batch...)
	out = append(out, m, n)
	return out, nil
}

// matmulBatched multiplies two rank >= 2 arrays, broadcasting their batch
// prefixes and delegating each (M, K) x (K, N) block to gemm.
func matmulBatched(a, b *NDArray) *NDArray {
	outShape, err := MatMulShape(a.shape, b.shape)
	if err != nil {
		panic(err)
	}

	m := a.shape[a.Rank()-2]
	k := a.shape[a.Rank()-1]
	n := b.shape[b.Rank()-1]

	out := Zeros(outShape)
	batchShape := outShape[:len(outShape)-2]
	batches := batchShape.NumElements()

	// Batch strides are in matrix units; size-1 and missing batch axes get
	// stride 0 so the same block is reused (the broadcast).
	outStrides := batchShape.Strides()
	aStrides := broadcastStrides(a.shape[:a.Rank()-2], batchShape)
	bStrides := broadcastStrides(b.shape[:b.Rank()-2], batchShape)

	for i := 0; i < batches; i++ {
		offA := flatIndex(i, outStrides, aStrides) * m * k
		offB := flatIndex(i, outStrides, bStrides) * k * n
		offOut := i * m * n
		gemm(a.data[offA:offA+m*k], b.data[offB:offB+k*n], out.data[offOut:offOut+m*n], m, k, n)
	}
	return out
}

// gemm computes out = a x b for dense row-major blocks via BLAS:
// no transpose, unit alpha, zero beta.
func gemm(a, b, out []float64, m, k, n int) {
	blas64.Gemm(blas.NoTrans, blas.NoTrans,
		1,
		blas64.General{Rows: m, Cols: k, Stride: k, Data: a},
		blas64.General{Rows: k, Cols: n, Stride: n, Data: b},
		0,
		blas64.General{Rows: m, Cols: n, Stride: n, Data: out},
	)
}
