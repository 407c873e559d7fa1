// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dual implements forward-mode automatic differentiation of
// scalar functions via truncated Taylor series (spec §4.B), the
// substrate the tensor-valued drivers D1-D4 lift into gradients,
// Hessians, third derivatives and Jacobians. A Dual of order N carries
// the normalized Taylor coefficients c[0..N] of a univariate expansion,
// c[j] = f^(j)(x0)/j!, so that elementary-function recurrences (Mul,
// Div, exp, log, sqrt, trig, pow) read directly off the standard
// power-series composition identities instead of propagating raw
// derivatives, which would need a factorial correction at every step.
package dual

import (
	"fmt"
	"math"
)

// Dual holds the order-N truncated Taylor expansion of a scalar function
// around some base point, in normalized-coefficient form: c[j] = f^(j)/j!.
type Dual struct {
	c []float64 // len(c) == order+1
}

// New builds a Dual of the given order with all coefficients zero
func New(order int) Dual {
	if order < 0 {
		panic(fmt.Sprintf("dual: New: negative order %d", order))
	}
	return Dual{c: make([]float64, order+1)}
}

// Const builds an order-N Dual representing the constant value v (all
// derivatives zero)
func Const(v float64, order int) Dual {
	d := New(order)
	d.c[0] = v
	return d
}

// Var builds an order-N Dual representing the independent variable itself
// evaluated at x0: value x0, first derivative 1, all higher derivatives zero
func Var(x0 float64, order int) Dual {
	d := New(order)
	d.c[0] = x0
	if order >= 1 {
		d.c[1] = 1
	}
	return d
}

// Order returns the truncation order N (the Dual carries N+1 coefficients)
func (d Dual) Order() int { return len(d.c) - 1 }

// Value returns f(x0), the 0th derivative
func (d Dual) Value() float64 { return d.c[0] }

// Coeff returns the raw normalized coefficient c[j] = f^(j)/j!
func (d Dual) Coeff(j int) float64 {
	if j < 0 || j >= len(d.c) {
		return 0
	}
	return d.c[j]
}

// Deriv returns the j-th raw derivative f^(j)(x0) = j! * c[j]
func (d Dual) Deriv(j int) float64 {
	if j < 0 || j >= len(d.c) {
		return 0
	}
	return d.c[j] * factorial(j)
}

// Clone returns an independent copy
func (d Dual) Clone() Dual {
	c := make([]float64, len(d.c))
	copy(c, d.c)
	return Dual{c: c}
}

// IncreaseOrder returns a with one more coefficient slot appended as zero,
// (v0,...,vk) -> (v0,...,vk,0) (spec §4.B.1 "increaseOrder"), used to seed
// a rank-2 tensor-field dual from a lower-order scalar one.
func IncreaseOrder(a Dual) Dual {
	r := New(a.Order() + 1)
	copy(r.c, a.c)
	return r
}

// DecreaseOrder returns a with its highest coefficient slot dropped, the
// inverse of IncreaseOrder (spec §4.B.1 "decreaseOrder").
func DecreaseOrder(a Dual) Dual {
	if a.Order() == 0 {
		panic("dual: DecreaseOrder: cannot decrease order below 0")
	}
	r := New(a.Order() - 1)
	copy(r.c, a.c[:len(r.c)])
	return r
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

// matchOrder panics if a and b were not built with the same truncation
// order: mixing orders silently would make the Cauchy-product recurrences
// below read past one operand's coefficients.
func matchOrder(a, b Dual) int {
	if len(a.c) != len(b.c) {
		panic(fmt.Sprintf("dual: order mismatch: %d vs %d", a.Order(), b.Order()))
	}
	return a.Order()
}

// Add returns a + b
func Add(a, b Dual) Dual {
	n := matchOrder(a, b)
	r := New(n)
	for i := 0; i <= n; i++ {
		r.c[i] = a.c[i] + b.c[i]
	}
	return r
}

// Sub returns a - b
func Sub(a, b Dual) Dual {
	n := matchOrder(a, b)
	r := New(n)
	for i := 0; i <= n; i++ {
		r.c[i] = a.c[i] - b.c[i]
	}
	return r
}

// Neg returns -a
func Neg(a Dual) Dual {
	r := New(a.Order())
	for i := range r.c {
		r.c[i] = -a.c[i]
	}
	return r
}

// Scale returns alpha*a
func Scale(alpha float64, a Dual) Dual {
	r := New(a.Order())
	for i := range r.c {
		r.c[i] = alpha * a.c[i]
	}
	return r
}

// AddConst returns a + k
func AddConst(a Dual, k float64) Dual {
	r := a.Clone()
	r.c[0] += k
	return r
}

// Mul returns a * b via the Cauchy product of normalized Taylor
// coefficients: c_k(fg) = sum_{i=0}^k a_i b_{k-i}
func Mul(a, b Dual) Dual {
	n := matchOrder(a, b)
	r := New(n)
	for k := 0; k <= n; k++ {
		var s float64
		for i := 0; i <= k; i++ {
			s += a.c[i] * b.c[k-i]
		}
		r.c[k] = s
	}
	return r
}

// Div returns a / b, requiring b.Value() != 0. The recurrence solves the
// Cauchy product fg=a where g=1/b term by term:
//
//	c_k(q) = (1/b0) [ a_k - sum_{i=1}^k b_i q_{k-i} ]
func Div(a, b Dual) Dual {
	n := matchOrder(a, b)
	b0 := b.c[0]
	if b0 == 0 {
		panic("dual: Div: division by a Dual with zero value")
	}
	r := New(n)
	for k := 0; k <= n; k++ {
		s := a.c[k]
		for i := 1; i <= k; i++ {
			s -= b.c[i] * r.c[k-i]
		}
		r.c[k] = s / b0
	}
	return r
}

// Inv returns 1/a
func Inv(a Dual) Dual {
	return Div(Const(1, a.Order()), a)
}

// Sqrt returns sqrt(a), requiring a.Value() > 0. Recurrence for s=sqrt(a),
// from matching coefficients of s*s = a:
//
//	s_0 = sqrt(a_0)
//	s_k = (1/(2 s_0)) [ a_k - sum_{i=1}^{k-1} s_i s_{k-i} ]   for k>=1
func Sqrt(a Dual) Dual {
	n := a.Order()
	if a.c[0] <= 0 {
		panic("dual: Sqrt: non-positive base value")
	}
	r := New(n)
	r.c[0] = math.Sqrt(a.c[0])
	for k := 1; k <= n; k++ {
		s := a.c[k]
		for i := 1; i <= k-1; i++ {
			s -= r.c[i] * r.c[k-i]
		}
		r.c[k] = s / (2 * r.c[0])
	}
	return r
}

// Pow returns a^p for a real constant exponent p (a.Value() > 0 required
// unless p is a non-negative integer), via the Jorba-Zou recurrence applied
// to normalized coefficients. Let u=a, w=u^p; matching coefficients of
// u w' = p u' w (from differentiating log w = p log u) gives:
//
//	w_0 = u_0^p
//	w_k = (1/(k u_0)) sum_{j=0}^{k-1} [ p(k-j) - j ] u_{k-j} w_j      for k>=1
func Pow(a Dual, p float64) Dual {
	n := a.Order()
	u0 := a.c[0]
	r := New(n)
	r.c[0] = math.Pow(u0, p)
	if u0 == 0 {
		return r
	}
	for k := 1; k <= n; k++ {
		var s float64
		for j := 0; j <= k-1; j++ {
			s += (p*float64(k-j) - float64(j)) * a.c[k-j] * r.c[j]
		}
		r.c[k] = s / (float64(k) * u0)
	}
	return r
}

// Exp returns exp(a) via the recurrence from differentiating h=exp(u):
// h' = u' h, matched coefficient by coefficient:
//
//	h_0 = exp(u_0)
//	h_k = (1/k) sum_{i=1}^k i a_i h_{k-i}
func Exp(a Dual) Dual {
	n := a.Order()
	r := New(n)
	r.c[0] = math.Exp(a.c[0])
	for k := 1; k <= n; k++ {
		var s float64
		for i := 1; i <= k; i++ {
			s += float64(i) * a.c[i] * r.c[k-i]
		}
		r.c[k] = s / float64(k)
	}
	return r
}

// Log returns log(a), requiring a.Value() > 0. From l' = u'/u, i.e.
// u l' = u':
//
//	l_0 = log(u_0)
//	l_k = (1/u_0) [ a_k - (1/k) sum_{i=1}^{k-1} i l_i a_{k-i} ]
func Log(a Dual) Dual {
	n := a.Order()
	if a.c[0] <= 0 {
		panic("dual: Log: non-positive base value")
	}
	r := New(n)
	r.c[0] = math.Log(a.c[0])
	for k := 1; k <= n; k++ {
		s := a.c[k]
		var t float64
		for i := 1; i <= k-1; i++ {
			t += float64(i) * r.c[i] * a.c[k-i]
		}
		s -= t / float64(k)
		r.c[k] = s / a.c[0]
	}
	return r
}

// SinCos returns (sin(a), cos(a)) simultaneously via the coupled
// recurrence obtained from s'=u'c, c'=-u's:
//
//	s_k = (1/k) sum_{i=1}^k i a_i c_{k-i}
//	c_k = -(1/k) sum_{i=1}^k i a_i s_{k-i}
func SinCos(a Dual) (sinD, cosD Dual) {
	n := a.Order()
	s := New(n)
	c := New(n)
	s.c[0] = math.Sin(a.c[0])
	c.c[0] = math.Cos(a.c[0])
	for k := 1; k <= n; k++ {
		var sAcc, cAcc float64
		for i := 1; i <= k; i++ {
			sAcc += float64(i) * a.c[i] * c.c[k-i]
			cAcc += float64(i) * a.c[i] * s.c[k-i]
		}
		s.c[k] = sAcc / float64(k)
		c.c[k] = -cAcc / float64(k)
	}
	return s, c
}

// Sin returns sin(a)
func Sin(a Dual) Dual { s, _ := SinCos(a); return s }

// Cos returns cos(a)
func Cos(a Dual) Dual { _, c := SinCos(a); return c }

// Acos returns acos(a), requiring -1 < a.Value() < 1. Writing y=acos(u) and
// w=sqrt(1-u^2), differentiating y gives w y' = -u', an ODE-coupled
// recurrence solved alongside w = Sqrt(1-u^2):
//
//	y_m = ( -m*a_m - sum_{i=1}^{m-1} w_i (m-i) y_{m-i} ) / (w_0 * m)
func Acos(a Dual) Dual {
	n := a.Order()
	if a.c[0] <= -1 || a.c[0] >= 1 {
		panic("dual: Acos: base value out of (-1,1)")
	}
	one := Const(1, n)
	w := Sqrt(Sub(one, Mul(a, a)))
	y := New(n)
	y.c[0] = math.Acos(a.c[0])
	for m := 1; m <= n; m++ {
		s := -float64(m) * a.c[m]
		for i := 1; i <= m-1; i++ {
			s -= w.c[i] * float64(m-i) * y.c[m-i]
		}
		y.c[m] = s / (w.c[0] * float64(m))
	}
	return y
}
