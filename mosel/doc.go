// Package mosel is the textual front-end of linprog: it parses an
// Xpress/Mosel-like source into an *lp.Model equivalent to one built through
// the construction API, with variables in declared order and constraints in
// textual order.
//
// Accepted shape:
//
//	! a comment line
//	declarations
//	  x, y: mpvar
//	  z
//	end-declarations
//
//	Profit: 2x + 3*y <= 60
//	x - y >= 10
//	x + z = 100
//	maximize 3x + 4y
//
//   - Variables get the default bounds [0, +Inf); tighter ranges are
//     expressed as ordinary constraint lines.
//   - A constraint line may carry a `Name:` prefix; relations are <=, >=,
//     and = (== is accepted as a synonym).
//   - Terms are `coef*var`, `coef var`, implicit-coefficient `var`, or bare
//     numeric constants, joined with + and −.
//   - The last maximize/minimize line wins. When the source declares no
//     objective at all, the model maximizes the sum of all declared
//     variables (the historical front-end default).
//
// Parse failures surface a *ParseError identifying the offending line and
// wrapping ErrSyntax (or ErrUnknownName for undeclared identifiers).
//
// The grammar internals stop here: everything downstream — translation,
// solving, result mapping — is the lp package's contract.
package mosel
