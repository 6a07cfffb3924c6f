package engine

import (
	"fmt"
	"math"
)

// Mechanics of materials, dynamics and machine-design procedures.
// Each reads exact symbols from the context and shows the substituted
// arithmetic in its step line.
func init() {
	register("stress-formula", func(c Context) (float64, []string) {
		F, A := c.V("F"), c.V("A")
		return F / A, []string{fmt.Sprintf("σ = F / A = %s / %s", num(F), num(A))}
	})

	register("strain-formula", func(c Context) (float64, []string) {
		dL, L0 := c.V("ΔL"), c.V("L₀")
		return dL / L0, []string{fmt.Sprintf("ε = ΔL / L₀ = %s / %s", num(dL), num(L0))}
	})

	register("youngs-modulus", func(c Context) (float64, []string) {
		s, e := c.V("σ"), c.V("ε")
		return s / e, []string{fmt.Sprintf("E = σ / ε = %s / %s", num(s), num(e))}
	})

	register("hookes-law", func(c Context) (float64, []string) {
		k, x := c.V("k"), c.V("x")
		return k * x, []string{fmt.Sprintf("F = k · x = %s · %s", num(k), num(x))}
	})

	register("spring-energy", func(c Context) (float64, []string) {
		k, x := c.V("k"), c.V("x")
		return 0.5 * k * x * x, []string{fmt.Sprintf("U = ½ k x² = 0.5 · %s · %s²", num(k), num(x))}
	})

	register("kinetic-energy", func(c Context) (float64, []string) {
		m, v := c.V("m"), c.V("v")
		return 0.5 * m * v * v, []string{fmt.Sprintf("KE = ½ m v² = 0.5 · %s · %s²", num(m), num(v))}
	})

	register("potential-energy", func(c Context) (float64, []string) {
		m, g, h := c.V("m"), c.V("g"), c.V("h")
		return m * g * h, []string{fmt.Sprintf("PE = m g h = %s · %s · %s", num(m), num(g), num(h))}
	})

	register("momentum", func(c Context) (float64, []string) {
		m, v := c.V("m"), c.V("v")
		return m * v, []string{fmt.Sprintf("p = m · v = %s · %s", num(m), num(v))}
	})

	register("power-force-velocity", func(c Context) (float64, []string) {
		F, v := c.V("F"), c.V("v")
		return F * v, []string{fmt.Sprintf("P = F · v = %s · %s", num(F), num(v))}
	})

	register("work-done", func(c Context) (float64, []string) {
		F, d, theta := c.V("F"), c.V("d"), c.V("θ")
		return F * d * math.Cos(radians(theta)),
			[]string{fmt.Sprintf("W = F · d · cos(θ) = %s · %s · cos(%s°)", num(F), num(d), num(theta))}
	})

	register("friction-force", func(c Context) (float64, []string) {
		mu, N := c.V("μ"), c.V("N")
		return mu * N, []string{fmt.Sprintf("F = μ · N = %s · %s", num(mu), num(N))}
	})

	register("centripetal-force", func(c Context) (float64, []string) {
		m, v, r := c.V("m"), c.V("v"), c.V("r")
		return m * v * v / r, []string{fmt.Sprintf("F = m v² / r = %s · %s² / %s", num(m), num(v), num(r))}
	})

	register("angular-velocity", func(c Context) (float64, []string) {
		N := c.V("N")
		return 2 * math.Pi * N / 60, []string{fmt.Sprintf("ω = 2πN / 60 = 2π · %s / 60", num(N))}
	})

	register("torsion-shear", func(c Context) (float64, []string) {
		T, r, J := c.V("T"), c.V("r"), c.V("J")
		return T * r / J, []string{fmt.Sprintf("τ = T · r / J = %s · %s / %s", num(T), num(r), num(J))}
	})

	register("moment-of-force", func(c Context) (float64, []string) {
		F, d := c.V("F"), c.V("d")
		return F * d, []string{fmt.Sprintf("M = F · d = %s · %s", num(F), num(d))}
	})

	register("pressure-formula", func(c Context) (float64, []string) {
		F, A := c.V("F"), c.V("A")
		return F / A, []string{fmt.Sprintf("P = F / A = %s / %s", num(F), num(A))}
	})

	register("thermal-expansion", func(c Context) (float64, []string) {
		a, L0, dT := c.V("α"), c.V("L₀"), c.V("ΔT")
		return a * L0 * dT,
			[]string{fmt.Sprintf("ΔL = α · L₀ · ΔT = %s · %s · %s", num(a), num(L0), num(dT))}
	})

	register("factor-of-safety", func(c Context) (float64, []string) {
		su, sa := c.V("σu"), c.V("σa")
		return su / sa, []string{fmt.Sprintf("FS = σu / σa = %s / %s", num(su), num(sa))}
	})
}
