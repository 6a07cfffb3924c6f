package engine

import (
	"fmt"
	"math"
)

// Heat transfer and thermodynamics procedures.
func init() {
	register("heat-conduction", func(c Context) (float64, []string) {
		k, A, dT, L := c.V("k"), c.V("A"), c.V("ΔT"), c.V("L")
		return k * A * dT / L,
			[]string{fmt.Sprintf("q = k A ΔT / L = %s · %s · %s / %s", num(k), num(A), num(dT), num(L))}
	})

	register("sensible-heat", func(c Context) (float64, []string) {
		m, cp, dT := c.V("m"), c.V("c"), c.V("ΔT")
		return m * cp * dT,
			[]string{fmt.Sprintf("Q = m c ΔT = %s · %s · %s", num(m), num(cp), num(dT))}
	})

	register("stefan-boltzmann", func(c Context) (float64, []string) {
		eps, sigma, A, T := c.V("ε"), c.V("σ"), c.V("A"), c.V("T")
		return eps * sigma * A * math.Pow(T, 4),
			[]string{fmt.Sprintf("P = ε σ A T⁴ = %s · %s · %s · %s⁴", num(eps), num(sigma), num(A), num(T))}
	})

	register("carnot-efficiency", func(c Context) (float64, []string) {
		Tc, Th := c.V("Tc"), c.V("Th")
		return 1 - Tc/Th,
			[]string{fmt.Sprintf("η = 1 − Tc / Th = 1 − %s / %s", num(Tc), num(Th))}
	})

	register("ideal-gas-pressure", func(c Context) (float64, []string) {
		n, R, T, V := c.V("n"), c.V("R"), c.V("T"), c.V("V")
		return n * R * T / V,
			[]string{fmt.Sprintf("P = n R T / V = %s · %s · %s / %s", num(n), num(R), num(T), num(V))}
	})

	register("convection-heat", func(c Context) (float64, []string) {
		h, A, dT := c.V("h"), c.V("A"), c.V("ΔT")
		return h * A * dT,
			[]string{fmt.Sprintf("q = h A ΔT = %s · %s · %s", num(h), num(A), num(dT))}
	})
}
