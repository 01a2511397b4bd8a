// Package fnlib provides named scalar functions and definite integrals with
// known values, for the numkit CLI and for tests of the numerical packages.
//
// Two entry points:
//
//	Lookup("exp")           — resolve a function by name
//	Lookup("poly:-6,1,1")   — polynomial from ascending coefficients (x² + x − 6)
//	Poly(3), Sqrt(), Exp(3) — Integral fixtures {Name, A, B, F, Value}
//
// Every Func here is pure and safe for concurrent use.
package fnlib
