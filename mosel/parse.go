package mosel

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/linprog/lp"
	"github.com/katalvlaran/linprog/simplex"
)

// token kinds produced by lexLine.
type tokenKind int8

const (
	tkNumber tokenKind = iota
	tkIdent
	tkOp // one of + - * : , <= >= = (== normalizes to =)
)

// token is one lexeme of a source line.
type token struct {
	kind tokenKind
	text string
	num  float64 // valid for tkNumber
}

// Parse reads an Xpress-like source and builds the equivalent model.
//
// Contracts:
//   - Variables appear in declared order with default bounds [0, +Inf).
//   - Constraints appear in textual order; the last objective line wins.
//   - A source with no objective line gets "maximize Σ variables".
//
// Errors: *ParseError wrapping ErrSyntax / ErrUnknownName /
// ErrNoDeclarations, always naming the offending line.
func Parse(src string) (*lp.Model, error) {
	model := lp.NewModel("mosel")

	lines := strings.Split(src, "\n")

	// Stage 1 — locate and read the declarations block.
	bodyStart, err := parseDeclarations(model, lines)
	if err != nil {
		return nil, err
	}

	// Stage 2 — body lines: objective or constraint.
	sawObjective := false
	for idx := bodyStart; idx < len(lines); idx++ {
		lineNo := idx + 1
		line := strings.TrimSpace(lines[idx])
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}

		toks, lerr := lexLine(line, lineNo)
		if lerr != nil {
			return nil, lerr
		}

		if dir, ok := objectiveDirection(toks); ok {
			expr, perr := parseExpr(model, toks[1:], lineNo)
			if perr != nil {
				return nil, perr
			}
			if serr := model.SetObjective(expr, dir); serr != nil {
				return nil, syntaxErr(lineNo, "objective: %v", serr)
			}
			sawObjective = true

			continue
		}

		if cerr := parseConstraintLine(model, toks, lineNo); cerr != nil {
			return nil, cerr
		}
	}

	// Stage 3 — historical default objective: maximize the variable sum.
	if !sawObjective {
		sum := lp.LinExpr{}
		for _, v := range model.Variables() {
			sum = sum.AddTerm(v, 1)
		}
		_ = model.SetObjective(sum, lp.Maximize)
	}

	return model, nil
}

// Solve parses src and solves the resulting model in one call.
func Solve(src string, opts ...simplex.Option) (lp.Solution, error) {
	model, err := Parse(src)
	if err != nil {
		return lp.Solution{}, err
	}

	return model.Solve(opts...)
}

// parseDeclarations consumes everything up to and including
// end-declarations, registering variables in declared order.
// Returns the index of the first body line.
func parseDeclarations(model *lp.Model, lines []string) (int, error) {
	started := false
	for idx, raw := range lines {
		lineNo := idx + 1
		line := strings.TrimSpace(raw)
		switch {
		case line == "" || strings.HasPrefix(line, "!"):
			continue
		case !started:
			if !strings.EqualFold(line, "declarations") {
				return 0, syntaxErr(lineNo, "expected declarations block, got %q", line)
			}
			started = true
		case strings.EqualFold(line, "end-declarations"):
			return idx + 1, nil
		default:
			if err := declareLine(model, line, lineNo); err != nil {
				return 0, err
			}
		}
	}
	if !started {
		return 0, &ParseError{Line: 1, Msg: "missing declarations block", Err: ErrNoDeclarations}
	}

	return 0, syntaxErr(len(lines), "declarations block never closed")
}

// declareLine registers `a, b, c[: mpvar]` on one declarations line.
func declareLine(model *lp.Model, line string, lineNo int) error {
	if i := strings.Index(line, ":"); i >= 0 {
		typ := strings.TrimSpace(line[i+1:])
		if typ != "" && !strings.EqualFold(typ, "mpvar") {
			return syntaxErr(lineNo, "unsupported declaration type %q", typ)
		}
		line = line[:i]
	}

	for _, field := range strings.Split(line, ",") {
		name := strings.TrimSpace(field)
		if name == "" {
			return syntaxErr(lineNo, "empty variable name in declarations")
		}
		if !isIdent(name) {
			return syntaxErr(lineNo, "invalid variable name %q", name)
		}
		if _, err := model.AddVariable(name); err != nil {
			return syntaxErr(lineNo, "declaring %q: %v", name, err)
		}
	}

	return nil
}

// objectiveDirection recognizes a leading maximize/minimize keyword.
func objectiveDirection(toks []token) (lp.Direction, bool) {
	if len(toks) == 0 || toks[0].kind != tkIdent {
		return 0, false
	}
	switch strings.ToLower(toks[0].text) {
	case "maximize", "maximise":
		return lp.Maximize, true
	case "minimize", "minimise":
		return lp.Minimize, true
	default:
		return 0, false
	}
}

// parseConstraintLine handles `[Name:] EXPR (<=|>=|=) EXPR`.
func parseConstraintLine(model *lp.Model, toks []token, lineNo int) error {
	name := ""
	if len(toks) >= 2 && toks[0].kind == tkIdent && toks[1].kind == tkOp && toks[1].text == ":" {
		name = toks[0].text
		toks = toks[2:]
	}

	relAt := -1
	var rel simplex.Relation
	for i, tk := range toks {
		if tk.kind != tkOp {
			continue
		}
		switch tk.text {
		case "<=":
			relAt, rel = i, simplex.LE
		case ">=":
			relAt, rel = i, simplex.GE
		case "=":
			relAt, rel = i, simplex.EQ
		default:
			continue
		}

		break
	}
	if relAt < 0 {
		return syntaxErr(lineNo, "constraint line has no relation (<=, >= or =)")
	}

	lhs, err := parseExpr(model, toks[:relAt], lineNo)
	if err != nil {
		return err
	}
	rhs, err := parseExpr(model, toks[relAt+1:], lineNo)
	if err != nil {
		return err
	}

	var c lp.Constraint
	switch rel {
	case simplex.LE:
		c = lhs.LessEqExpr(rhs)
	case simplex.GE:
		c = lhs.GreaterEqExpr(rhs)
	default:
		c = lhs.EqExpr(rhs)
	}
	if name != "" {
		c = c.WithName(name)
	}
	if aerr := model.AddConstraint(c); aerr != nil {
		return syntaxErr(lineNo, "constraint: %v", aerr)
	}

	return nil
}

// parseExpr builds a linear expression from a flat token run:
// signed terms `[coef] [*] ident` or bare constants, joined by + / −.
func parseExpr(model *lp.Model, toks []token, lineNo int) (lp.LinExpr, error) {
	expr := lp.LinExpr{}
	if len(toks) == 0 {
		return expr, syntaxErr(lineNo, "empty expression")
	}

	i := 0
	for i < len(toks) {
		// Sign run: any number of leading +/−.
		sign := 1.0
		for i < len(toks) && toks[i].kind == tkOp && (toks[i].text == "+" || toks[i].text == "-") {
			if toks[i].text == "-" {
				sign = -sign
			}
			i++
		}
		if i >= len(toks) {
			return expr, syntaxErr(lineNo, "dangling operator at end of expression")
		}

		switch tk := toks[i]; tk.kind {
		case tkNumber:
			coef := sign * tk.num
			i++
			// Optional '*' between coefficient and variable.
			if i < len(toks) && toks[i].kind == tkOp && toks[i].text == "*" {
				i++
				if i >= len(toks) || toks[i].kind != tkIdent {
					return expr, syntaxErr(lineNo, "expected variable after '*'")
				}
			}
			if i < len(toks) && toks[i].kind == tkIdent {
				v, ok := model.VariableByName(toks[i].text)
				if !ok {
					return expr, unknownErr(lineNo, toks[i].text)
				}
				expr = expr.AddTerm(v, coef)
				i++
			} else {
				expr = expr.AddConst(coef)
			}

		case tkIdent:
			v, ok := model.VariableByName(tk.text)
			if !ok {
				return expr, unknownErr(lineNo, tk.text)
			}
			expr = expr.AddTerm(v, sign)
			i++

		default:
			return expr, syntaxErr(lineNo, "unexpected token %q in expression", tk.text)
		}
	}

	return expr, nil
}

// lexLine splits one source line into tokens. `2x` lexes as NUMBER IDENT,
// which parseExpr folds into a single term.
func lexLine(line string, lineNo int) ([]token, error) {
	var toks []token
	i := 0
	for i < len(line) {
		ch := rune(line[i])
		switch {
		case unicode.IsSpace(ch):
			i++

		case ch == '<' || ch == '>':
			if i+1 >= len(line) || line[i+1] != '=' {
				return nil, syntaxErr(lineNo, "strict inequality %q is not linear-programming legal", string(ch))
			}
			toks = append(toks, token{kind: tkOp, text: string(ch) + "="})
			i += 2

		case ch == '=':
			// `==` is a synonym for `=`.
			if i+1 < len(line) && line[i+1] == '=' {
				i++
			}
			toks = append(toks, token{kind: tkOp, text: "="})
			i++

		case ch == '+' || ch == '-' || ch == '*' || ch == ':' || ch == ',':
			toks = append(toks, token{kind: tkOp, text: string(ch)})
			i++

		case ch >= '0' && ch <= '9' || ch == '.':
			j := i
			for j < len(line) && (line[j] >= '0' && line[j] <= '9' || line[j] == '.') {
				j++
			}
			num, err := strconv.ParseFloat(line[i:j], 64)
			if err != nil {
				return nil, syntaxErr(lineNo, "malformed number %q", line[i:j])
			}
			toks = append(toks, token{kind: tkNumber, text: line[i:j], num: num})
			i = j

		case isIdentStart(ch):
			j := i
			for j < len(line) && isIdentRune(rune(line[j])) {
				j++
			}
			toks = append(toks, token{kind: tkIdent, text: line[i:j]})
			i = j

		default:
			return nil, syntaxErr(lineNo, "unexpected character %q", string(ch))
		}
	}

	return toks, nil
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentRune(ch rune) bool {
	return isIdentStart(ch) || unicode.IsDigit(ch)
}

// isIdent reports whether s is a well-formed identifier.
func isIdent(s string) bool {
	for i, ch := range s {
		if i == 0 && !isIdentStart(ch) {
			return false
		}
		if i > 0 && !isIdentRune(ch) {
			return false
		}
	}

	return s != ""
}
