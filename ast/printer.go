package ast

// Printer renders an expression tree as a fully parenthesized,
// Lisp-like string, e.g. "(+ 1 (* 2 3))". It implements Visitor the
// same way the interpreter does, which is what keeps the round-trip
// testable property in the interpreter design honest: printer and
// evaluator walk the identical tree shape.
type Printer struct{}

// Print renders expr.
func (p *Printer) Print(expr Expr) (string, error) {
	v, err := expr.Accept(p)
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (p *Printer) VisitBinaryExpr(e *Binary) (any, error) {
	return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
}

func (p *Printer) VisitGroupingExpr(e *Grouping) (any, error) {
	return p.parenthesize("group", e.Expression)
}

func (p *Printer) VisitLiteralExpr(e *Literal) (any, error) {
	if e.Value == nil {
		return "nil", nil
	}
	return e.Value.String(), nil
}

func (p *Printer) VisitUnaryExpr(e *Unary) (any, error) {
	return p.parenthesize(e.Operator.Lexeme, e.Right)
}

func (p *Printer) parenthesize(name string, exprs ...Expr) (string, error) {
	out := "(" + name
	for _, e := range exprs {
		s, err := p.Print(e)
		if err != nil {
			return "", err
		}
		out += " " + s
	}
	return out + ")", nil
}

// RPNPrinter renders an expression tree in reverse-Polish form, e.g.
// "1 2 3 * +". It is the second printer the original lox-ast carried
// (see SPEC_FULL.md §5) and shares Printer's visitor contract.
type RPNPrinter struct{}

// Print renders expr in RPN.
func (p *RPNPrinter) Print(expr Expr) (string, error) {
	v, err := expr.Accept(p)
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (p *RPNPrinter) VisitBinaryExpr(e *Binary) (any, error) {
	left, err := p.Print(e.Left)
	if err != nil {
		return "", err
	}
	right, err := p.Print(e.Right)
	if err != nil {
		return "", err
	}
	return left + " " + right + " " + e.Operator.Lexeme, nil
}

func (p *RPNPrinter) VisitGroupingExpr(e *Grouping) (any, error) {
	return p.Print(e.Expression)
}

func (p *RPNPrinter) VisitLiteralExpr(e *Literal) (any, error) {
	if e.Value == nil {
		return "nil", nil
	}
	return e.Value.String(), nil
}

func (p *RPNPrinter) VisitUnaryExpr(e *Unary) (any, error) {
	right, err := p.Print(e.Right)
	if err != nil {
		return "", err
	}
	return right + " " + e.Operator.Lexeme, nil
}
