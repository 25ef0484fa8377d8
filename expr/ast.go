package expr

import (
	"math"
	"strconv"
	"strings"
)

// Node is an immutable expression tree node.
type Node interface {
	Eval() (float64, error)
	String() string
}

type Number struct {
	Value float64
}

func (n *Number) Eval() (float64, error) {
	return n.Value, nil
}

func (n *Number) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

type Term struct {
	Node     Node
	Negative bool
}

// Addition sums its terms; a negative term is subtracted. Unary minus is an
// Addition with a single negative term.
type Addition struct {
	Terms []Term
}

func (a *Addition) Eval() (float64, error) {
	var sum float64
	for _, term := range a.Terms {
		v, err := term.Node.Eval()
		if err != nil {
			return 0, err
		}
		if term.Negative {
			sum -= v
		} else {
			sum += v
		}
	}
	return sum, nil
}

func (a *Addition) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, term := range a.Terms {
		switch {
		case i == 0 && term.Negative:
			sb.WriteByte('-')
		case i > 0 && term.Negative:
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}
		sb.WriteString(term.Node.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

type Multiplication struct {
	Factors []Node
}

func (m *Multiplication) Eval() (float64, error) {
	product := 1.0
	for _, factor := range m.Factors {
		v, err := factor.Eval()
		if err != nil {
			return 0, err
		}
		product *= v
	}
	return product, nil
}

func (m *Multiplication) String() string {
	parts := make([]string, len(m.Factors))
	for i, factor := range m.Factors {
		parts[i] = factor.String()
	}
	return "(" + strings.Join(parts, " * ") + ")"
}

type Exponential struct {
	Base     Node
	Exponent Node
}

func (x *Exponential) Eval() (float64, error) {
	base, err := x.Base.Eval()
	if err != nil {
		return 0, err
	}
	exponent, err := x.Exponent.Eval()
	if err != nil {
		return 0, err
	}
	return math.Pow(base, exponent), nil
}

func (x *Exponential) String() string {
	return "(" + x.Base.String() + " ^ " + x.Exponent.String() + ")"
}

// Reference is bound to an (object, attribute) pair when the expression is
// parsed and reads the live value on every evaluation.
type Reference struct {
	Path      string
	Object    Getter
	Attribute string
}

func (r *Reference) Value() any {
	return r.Object.GetAttribute(r.Attribute)
}

func (r *Reference) Eval() (float64, error) {
	v := r.Value()
	f, ok := toFloat(v)
	if !ok {
		return 0, &EvalError{Path: r.Path, Value: v}
	}
	return f, nil
}

func (r *Reference) String() string {
	return "{" + r.Path + "}"
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
