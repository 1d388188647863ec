package ast

// BinaryOp identifies an arithmetic operation kind.
type BinaryOp string

const (
	OpAdd BinaryOp = "add"
	OpSub BinaryOp = "sub"
	OpMul BinaryOp = "mul"
	OpDiv BinaryOp = "div"
)

// Symbol returns the surface operator for a BinaryOp.
// Unknown kinds render as themselves so malformed input stays visible.
func (op BinaryOp) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return string(op)
	}
}

// BinaryOpFromSymbol maps a surface operator token to its BinaryOp.
func BinaryOpFromSymbol(symbol string) BinaryOp {
	switch symbol {
	case "+":
		return OpAdd
	case "-":
		return OpSub
	case "*":
		return OpMul
	case "/":
		return OpDiv
	default:
		return BinaryOp(symbol)
	}
}

// Comparator identifies a comparison operator. The constants are the surface
// symbols themselves, so a Comparator formats without translation.
type Comparator string

const (
	CmpGt Comparator = ">"
	CmpLt Comparator = "<"
	CmpGe Comparator = ">="
	CmpLe Comparator = "<="
	CmpEq Comparator = "=="
	CmpNe Comparator = "!="
)

// ComparatorFromToken normalizes a comparator token captured by the front end
// into the closed Comparator set. Normalization happens once, here at the
// producer boundary; downstream passes treat the value as already canonical.
// Unrecognized symbols pass through untouched rather than failing.
func ComparatorFromToken(token string) Comparator {
	switch token {
	case ">":
		return CmpGt
	case "<":
		return CmpLt
	case ">=":
		return CmpGe
	case "<=":
		return CmpLe
	case "==":
		return CmpEq
	case "!=":
		return CmpNe
	default:
		return Comparator(token)
	}
}
