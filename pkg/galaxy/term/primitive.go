package term

// Primitive identifies one of the 17 built-in operators, plus the two
// reserved-but-unsupported codec tokens (mod, dem). Arity and name are
// looked up from the tables below rather than stored per-value, mirroring
// the Rust reference implementation's STR_PRIMITIVE/PRIMITIVE_STR maps.
type Primitive int

// The closed set of primitives. Mod and Dem are parsed but fault if ever
// applied during evaluation; see the mod/dem resolution in DESIGN.md.
const (
	Add Primitive = iota
	Mul
	Div
	Eq
	Lt
	Neg
	I
	T
	F
	S
	C
	B
	ConsPrim
	Car
	Cdr
	NilPrim
	Isnil
	Mod
	Dem
)

var primitiveNames = map[Primitive]string{
	Add:      "add",
	Mul:      "mul",
	Div:      "div",
	Eq:       "eq",
	Lt:       "lt",
	Neg:      "neg",
	I:        "i",
	T:        "t",
	F:        "f",
	S:        "s",
	C:        "c",
	B:        "b",
	ConsPrim: "cons",
	Car:      "car",
	Cdr:      "cdr",
	NilPrim:  "nil",
	Isnil:    "isnil",
	Mod:      "mod",
	Dem:      "dem",
}

var primitivesByName = map[string]Primitive{
	"add":   Add,
	"mul":   Mul,
	"div":   Div,
	"eq":    Eq,
	"lt":    Lt,
	"neg":   Neg,
	"i":     I,
	"t":     T,
	"f":     F,
	"s":     S,
	"c":     C,
	"b":     B,
	"cons":  ConsPrim,
	"car":   Car,
	"cdr":   Cdr,
	"nil":   NilPrim,
	"isnil": Isnil,
	"mod":   Mod,
	"dem":   Dem,
	// vec is a parser-level alias for cons, not a distinct primitive.
	"vec": ConsPrim,
}

var primitiveArities = map[Primitive]int{
	Add:      2,
	Mul:      2,
	Div:      2,
	Eq:       2,
	Lt:       2,
	Neg:      1,
	I:        1,
	T:        2,
	F:        2,
	S:        3,
	C:        3,
	B:        3,
	ConsPrim: 3,
	Car:      1,
	Cdr:      1,
	NilPrim:  1,
	Isnil:    1,
	Mod:      1,
	Dem:      1,
}

// String renders the primitive as its canonical library-text token.
func (p Primitive) String() string {
	if name, ok := primitiveNames[p]; ok {
		return name
	}
	//
	return "?"
}

// Arity returns the number of arguments p needs before its reduction
// rule fires.
func (p Primitive) Arity() int {
	return primitiveArities[p]
}

// LookupPrimitive resolves a library-text token to a Primitive. ok is
// false for any token that is not a primitive name; the alias "vec"
// resolves to ConsPrim rather than being reported as a miss.
func LookupPrimitive(name string) (Primitive, bool) {
	p, ok := primitivesByName[name]
	return p, ok
}
