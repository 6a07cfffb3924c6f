package engine

import (
	"fmt"
	"math"
)

// Structural and geotechnical procedures.
//
// The two principal-stress entries are deliberate near-duplicates with
// different symbol spellings (σx vs σₓ): context lookup is exact-string,
// so each id needs its own procedure.
func init() {
	register("beam-deflection", func(c Context) (float64, []string) {
		w, L, E, I := c.V("w"), c.V("L"), c.V("E"), c.V("I")
		// math.Pow keeps the fourth power stable for large spans
		return 5 * w * math.Pow(L, 4) / (384 * E * I),
			[]string{fmt.Sprintf("δ = 5wL⁴ / (384EI) = 5 · %s · %s⁴ / (384 · %s · %s)", num(w), num(L), num(E), num(I))}
	})

	register("beam-bending-stress", func(c Context) (float64, []string) {
		M, cc, I := c.V("M"), c.V("c"), c.V("I")
		return M * cc / I,
			[]string{fmt.Sprintf("σ = M · c / I = %s · %s / %s", num(M), num(cc), num(I))}
	})

	register("euler-buckling", func(c Context) (float64, []string) {
		E, I, K, L := c.V("E"), c.V("I"), c.V("K"), c.V("L")
		kl := K * L
		return math.Pi * math.Pi * E * I / (kl * kl),
			[]string{fmt.Sprintf("Pcr = π²EI / (KL)² = π² · %s · %s / (%s · %s)²", num(E), num(I), num(K), num(L))}
	})

	register("section-modulus", func(c Context) (float64, []string) {
		b, h := c.V("b"), c.V("h")
		return b * h * h / 6,
			[]string{fmt.Sprintf("S = b h² / 6 = %s · %s² / 6", num(b), num(h))}
	})

	register("slenderness-ratio", func(c Context) (float64, []string) {
		K, L, r := c.V("K"), c.V("L"), c.V("r")
		return K * L / r,
			[]string{fmt.Sprintf("λ = K L / r = %s · %s / %s", num(K), num(L), num(r))}
	})

	register("hoop-stress", func(c Context) (float64, []string) {
		p, d, t := c.V("p"), c.V("d"), c.V("t")
		return p * d / (2 * t),
			[]string{fmt.Sprintf("σ = p d / (2t) = %s · %s / (2 · %s)", num(p), num(d), num(t))}
	})

	register("bearing-capacity", func(c Context) (float64, []string) {
		cv, Nc := c.V("c"), c.V("Nc")
		g, Df, Nq := c.V("γ"), c.V("Df"), c.V("Nq")
		B, Ng := c.V("B"), c.V("Nγ")
		cohesion := cv * Nc
		surcharge := g * Df * Nq
		weight := 0.5 * g * B * Ng
		return cohesion + surcharge + weight, []string{
			fmt.Sprintf("c·Nc = %s · %s = %s", num(cv), num(Nc), num(cohesion)),
			fmt.Sprintf("γ·Df·Nq = %s · %s · %s = %s", num(g), num(Df), num(Nq), num(surcharge)),
			fmt.Sprintf("0.5·γ·B·Nγ = 0.5 · %s · %s · %s = %s", num(g), num(B), num(Ng), num(weight)),
			fmt.Sprintf("qu = %s + %s + %s", num(cohesion), num(surcharge), num(weight)),
		}
	})

	register("mohr-circle-max", func(c Context) (float64, []string) {
		sx, sy, txy := c.V("σx"), c.V("σy"), c.V("τxy")
		avg := (sx + sy) / 2
		half := (sx - sy) / 2
		radius := math.Sqrt(half*half + txy*txy)
		return avg + radius, []string{
			fmt.Sprintf("centre = (σx + σy)/2 = (%s + %s)/2 = %s", num(sx), num(sy), num(avg)),
			fmt.Sprintf("radius = √(((σx − σy)/2)² + τxy²) = %s", num(radius)),
			fmt.Sprintf("σ1 = %s + %s, σ2 = %s − %s", num(avg), num(radius), num(avg), num(radius)),
		}
	})

	register("principal-stress-max", func(c Context) (float64, []string) {
		sx, sy, txy := c.V("σₓ"), c.V("σᵧ"), c.V("τₓᵧ")
		avg := (sx + sy) / 2
		half := (sx - sy) / 2
		radius := math.Sqrt(half*half + txy*txy)
		return avg + radius, []string{
			fmt.Sprintf("centre = (σₓ + σᵧ)/2 = (%s + %s)/2 = %s", num(sx), num(sy), num(avg)),
			fmt.Sprintf("radius = √(((σₓ − σᵧ)/2)² + τₓᵧ²) = %s", num(radius)),
			fmt.Sprintf("σ₁ = %s + %s", num(avg), num(radius)),
		}
	})

	register("concrete-modulus", func(c Context) (float64, []string) {
		fc := c.V("fc")
		return 4700 * math.Sqrt(fc),
			[]string{fmt.Sprintf("Ec = 4700 √fc = 4700 · √%s", num(fc))}
	})

	register("active-earth-pressure", func(c Context) (float64, []string) {
		phi := c.V("φ")
		s := math.Sin(radians(phi))
		return (1 - s) / (1 + s),
			[]string{fmt.Sprintf("Ka = (1 − sin(φ)) / (1 + sin(φ)) = (1 − sin(%s°)) / (1 + sin(%s°))", num(phi), num(phi))}
	})

	register("soil-stress", func(c Context) (float64, []string) {
		g, z := c.V("γ"), c.V("z")
		return g * z, []string{fmt.Sprintf("σv = γ · z = %s · %s", num(g), num(z))}
	})
}
