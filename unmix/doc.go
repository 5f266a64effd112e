// SPDX-License-Identifier: MIT
// Package unmix is the invertible mixer of lvrng: it undoes the bijective
// mixing functions of package mix, recovering the pre-mix word from an output.
//
// How each step is undone (in reverse declaration order):
//
//   - Mul(K):          multiply by K⁻¹ mod 2^w (MulInverse64 / MulInverse32, Newton iteration).
//   - XorShift(A):     y ^= y >> A, y ^= y >> 2A, y ^= y >> 4A, ... while the shift is below w.
//     (I + Sᴬ)⁻¹ = (I + Sᴬ)(I + S²ᴬ)(I + S⁴ᴬ)… because the shift matrix S is nilpotent
//     and the field has characteristic 2.
//   - XorShift2(A, B): the same identity for N = Sᴬ + Sᴮ; N^(2^k) = S^(A·2^k) + S^(B·2^k),
//     so the pair is reapplied with both amounts doubled until both reach w.
//   - RotXor(A, B):    p(y) = 1 + yᴬ + yᴮ over GF(2)[y]/(y^w + 1) satisfies p^w = 1, so
//     p⁻¹ = p·p²·p⁴·…·p^(w/2): reapply the rotations with amounts A·2^k, B·2^k mod w for k < log2 w.
//
// Entry points:
//
//   - Recipe(r) builds the inverse of any valid mix.Recipe as another mix.Recipe.
//   - SplitMix64, Moremur, MX3, Rotor64, Lowbias32 and Triple32 are hand-unrolled
//     inverses of the fast mixers with the same names; their inverse multipliers are
//     literals and tests pin them to MulInverse64 / MulInverse32.
//
// Contract:
//
//	Inverting a function that is not a bijection gives a value with no defined
//	relationship to the true input. Recipe refuses such recipes (ErrNotBijective);
//	the primitives do not check.
package unmix
