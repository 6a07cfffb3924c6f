package engine

import (
	"fmt"
	"math"
)

// Fluid mechanics and hydraulics procedures.
func init() {
	register("reynolds-number", func(c Context) (float64, []string) {
		rho, v, D, mu := c.V("ρ"), c.V("v"), c.V("D"), c.V("μ")
		return rho * v * D / mu,
			[]string{fmt.Sprintf("Re = ρ v D / μ = %s · %s · %s / %s", num(rho), num(v), num(D), num(mu))}
	})

	register("reynolds-number-kinematic", func(c Context) (float64, []string) {
		v, D, nu := c.V("v"), c.V("D"), c.V("ν")
		return v * D / nu,
			[]string{fmt.Sprintf("Re = v D / ν = %s · %s / %s", num(v), num(D), num(nu))}
	})

	register("dynamic-pressure", func(c Context) (float64, []string) {
		rho, v := c.V("ρ"), c.V("v")
		return 0.5 * rho * v * v,
			[]string{fmt.Sprintf("q = ½ ρ v² = 0.5 · %s · %s²", num(rho), num(v))}
	})

	register("hydrostatic-pressure", func(c Context) (float64, []string) {
		rho, g, h := c.V("ρ"), c.V("g"), c.V("h")
		return rho * g * h,
			[]string{fmt.Sprintf("P = ρ g h = %s · %s · %s", num(rho), num(g), num(h))}
	})

	register("flow-rate", func(c Context) (float64, []string) {
		A, v := c.V("A"), c.V("v")
		return A * v, []string{fmt.Sprintf("Q = A · v = %s · %s", num(A), num(v))}
	})

	register("darcy-weisbach", func(c Context) (float64, []string) {
		f, L, D, v, g := c.V("f"), c.V("L"), c.V("D"), c.V("v"), c.V("g")
		return f * (L / D) * v * v / (2 * g),
			[]string{fmt.Sprintf("hf = f · (L/D) · v² / (2g) = %s · (%s/%s) · %s² / (2 · %s)", num(f), num(L), num(D), num(v), num(g))}
	})

	register("orifice-discharge", func(c Context) (float64, []string) {
		Cd, A, h, g := c.V("Cd"), c.V("A"), c.V("h"), c.V("g")
		return Cd * A * math.Sqrt(2*g*h),
			[]string{fmt.Sprintf("Q = Cd · A · √(2gh) = %s · %s · √(2 · %s · %s)", num(Cd), num(A), num(g), num(h))}
	})

	register("mannings-velocity", func(c Context) (float64, []string) {
		n, R, S := c.V("n"), c.V("R"), c.V("S")
		return (1 / n) * math.Pow(R, 2.0/3.0) * math.Sqrt(S),
			[]string{fmt.Sprintf("v = (1/n) · R^(2/3) · S^(1/2) = (1/%s) · %s^(2/3) · %s^(1/2)", num(n), num(R), num(S))}
	})

	register("buoyancy-force", func(c Context) (float64, []string) {
		rho, g, V := c.V("ρ"), c.V("g"), c.V("V")
		return rho * g * V,
			[]string{fmt.Sprintf("F = ρ g V = %s · %s · %s", num(rho), num(g), num(V))}
	})

	register("poiseuille-flow", func(c Context) (float64, []string) {
		r, dP, mu, L := c.V("r"), c.V("ΔP"), c.V("μ"), c.V("L")
		// math.Pow for the fourth power, same as the beam quartic
		return math.Pi * math.Pow(r, 4) * dP / (8 * mu * L),
			[]string{fmt.Sprintf("Q = π r⁴ ΔP / (8 μ L) = π · %s⁴ · %s / (8 · %s · %s)", num(r), num(dP), num(mu), num(L))}
	})
}
