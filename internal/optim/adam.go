package optim

import (
	"math"

	"github.com/sagnik1511/rash/internal/autodiff"
	"github.com/sagnik1511/rash/internal/tensor"
)

// Adam implements the Adam optimizer (Kingma & Ba, 2015) with
// bias-corrected first and second moment estimates:
//
//	m = beta1 * m + (1 - beta1) * grad
//	v = beta2 * v + (1 - beta2) * grad^2
//	mHat = m / (1 - beta1^t)
//	vHat = v / (1 - beta2^t)
//	param = param - lr * mHat / (sqrt(vHat) + eps)
type Adam struct {
	params []autodiff.Tensor
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	step   int
	m      []*tensor.NDArray
	v      []*tensor.NDArray
}

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig struct {
	LR    float64 // learning rate (default 0.001)
	Beta1 float64 // first moment decay (default 0.9)
	Beta2 float64 // second moment decay (default 0.999)
	Eps   float64 // denominator fuzz (default 1e-8)
}

// NewAdam creates an Adam optimizer over the given parameters.
func NewAdam(params []autodiff.Tensor, config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Beta1 == 0 {
		config.Beta1 = 0.9
	}
	if config.Beta2 == 0 {
		config.Beta2 = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	a := &Adam{
		params: params,
		lr:     config.LR,
		beta1:  config.Beta1,
		beta2:  config.Beta2,
		eps:    config.Eps,
		m:      make([]*tensor.NDArray, len(params)),
		v:      make([]*tensor.NDArray, len(params)),
	}
	for i, p := range params {
		a.m[i] = tensor.Zeros(p.Shape())
		a.v[i] = tensor.Zeros(p.Shape())
	}
	return a
}

// Step applies one update to every parameter, in place.
func (a *Adam) Step() {
	a.step++
	c1 := 1 - math.Pow(a.beta1, float64(a.step))
	c2 := 1 - math.Pow(a.beta2, float64(a.step))

	for i, p := range a.params {
		g := p.Grad()

		a.m[i] = a.m[i].MulScalar(a.beta1).Add(g.MulScalar(1 - a.beta1))
		a.v[i] = a.v[i].MulScalar(a.beta2).Add(g.Mul(g).MulScalar(1 - a.beta2))

		mHat := a.m[i].MulScalar(1 / c1)
		vHat := a.v[i].MulScalar(1 / c2)

		update := mHat.Div(vHat.Sqrt().AddScalar(a.eps)).MulScalar(a.lr)
		next := p.Value().Sub(update)
		copy(p.Data(), next.Data())
	}
}

// ZeroGrad clears gradients for all parameters.
func (a *Adam) ZeroGrad() {
	zeroGrads(a.params)
}

// LR returns the current learning rate.
func (a *Adam) LR() float64 {
	return a.lr
}
