package engine

import (
	"fmt"
	"math"
)

// Circuit, power-system and electromagnetics procedures.
// Angles arrive in degrees; conversion happens here, never upstream.
func init() {
	register("ohms-law", func(c Context) (float64, []string) {
		I, R := c.V("I"), c.V("R")
		return I * R, []string{fmt.Sprintf("V = I · R = %s · %s", num(I), num(R))}
	})

	register("electrical-power", func(c Context) (float64, []string) {
		V, I := c.V("V"), c.V("I")
		return V * I, []string{fmt.Sprintf("P = V · I = %s · %s", num(V), num(I))}
	})

	register("power-dissipation", func(c Context) (float64, []string) {
		I, R := c.V("I"), c.V("R")
		return I * I * R, []string{fmt.Sprintf("P = I² · R = %s² · %s", num(I), num(R))}
	})

	register("capacitive-reactance", func(c Context) (float64, []string) {
		f, C := c.V("f"), c.V("C")
		return 1 / (2 * math.Pi * f * C),
			[]string{fmt.Sprintf("Xc = 1 / (2π f C) = 1 / (2π · %s · %s)", num(f), num(C))}
	})

	register("inductive-reactance", func(c Context) (float64, []string) {
		f, L := c.V("f"), c.V("L")
		return 2 * math.Pi * f * L,
			[]string{fmt.Sprintf("XL = 2π f L = 2π · %s · %s", num(f), num(L))}
	})

	register("ac-impedance", func(c Context) (float64, []string) {
		R, X := c.V("R"), c.V("X")
		return math.Sqrt(R*R + X*X),
			[]string{fmt.Sprintf("Z = √(R² + X²) = √(%s² + %s²)", num(R), num(X))}
	})

	register("resonant-frequency", func(c Context) (float64, []string) {
		L, C := c.V("L"), c.V("C")
		return 1 / (2 * math.Pi * math.Sqrt(L*C)),
			[]string{fmt.Sprintf("f = 1 / (2π √(LC)) = 1 / (2π √(%s · %s))", num(L), num(C))}
	})

	register("three-phase-power", func(c Context) (float64, []string) {
		VL, IL, phi := c.V("VL"), c.V("IL"), c.V("φ")
		return math.Sqrt(3) * VL * IL * math.Cos(radians(phi)),
			[]string{fmt.Sprintf("P = √3 · VL · IL · cos(φ) = √3 · %s · %s · cos(%s°)", num(VL), num(IL), num(phi))}
	})

	register("rc-time-constant", func(c Context) (float64, []string) {
		R, C := c.V("R"), c.V("C")
		return R * C, []string{fmt.Sprintf("τ = R · C = %s · %s", num(R), num(C))}
	})

	register("capacitor-energy", func(c Context) (float64, []string) {
		C, V := c.V("C"), c.V("V")
		return 0.5 * C * V * V, []string{fmt.Sprintf("E = ½ C V² = 0.5 · %s · %s²", num(C), num(V))}
	})

	register("inductor-energy", func(c Context) (float64, []string) {
		L, I := c.V("L"), c.V("I")
		return 0.5 * L * I * I, []string{fmt.Sprintf("E = ½ L I² = 0.5 · %s · %s²", num(L), num(I))}
	})

	register("voltage-divider", func(c Context) (float64, []string) {
		Vin, R1, R2 := c.V("Vin"), c.V("R1"), c.V("R2")
		return Vin * R2 / (R1 + R2),
			[]string{fmt.Sprintf("Vout = Vin · R2 / (R1 + R2) = %s · %s / (%s + %s)", num(Vin), num(R2), num(R1), num(R2))}
	})

	register("parallel-resistance", func(c Context) (float64, []string) {
		R1, R2 := c.V("R1"), c.V("R2")
		return R1 * R2 / (R1 + R2),
			[]string{fmt.Sprintf("R = R1 · R2 / (R1 + R2) = %s · %s / (%s + %s)", num(R1), num(R2), num(R1), num(R2))}
	})

	register("rms-voltage", func(c Context) (float64, []string) {
		Vp := c.V("Vp")
		return Vp / math.Sqrt2, []string{fmt.Sprintf("Vrms = Vp / √2 = %s / √2", num(Vp))}
	})

	register("transformer-turns", func(c Context) (float64, []string) {
		Vp, Ns, Np := c.V("Vp"), c.V("Ns"), c.V("Np")
		return Vp * Ns / Np,
			[]string{fmt.Sprintf("Vs = Vp · Ns / Np = %s · %s / %s", num(Vp), num(Ns), num(Np))}
	})

	register("decibel-gain", func(c Context) (float64, []string) {
		Vout, Vin := c.V("Vout"), c.V("Vin")
		return 20 * math.Log10(Vout/Vin),
			[]string{fmt.Sprintf("G = 20 · log10(Vout / Vin) = 20 · log10(%s / %s)", num(Vout), num(Vin))}
	})

	register("coulombs-law", func(c Context) (float64, []string) {
		k, q1, q2, r := c.V("k"), c.V("q1"), c.V("q2"), c.V("r")
		return k * q1 * q2 / (r * r),
			[]string{fmt.Sprintf("F = k · q1 · q2 / r² = %s · %s · %s / %s²", num(k), num(q1), num(q2), num(r))}
	})

	register("electric-field", func(c Context) (float64, []string) {
		V, d := c.V("V"), c.V("d")
		return V / d, []string{fmt.Sprintf("E = V / d = %s / %s", num(V), num(d))}
	})
}
