package soorj

type AST struct {
	Filename   string
	Statements []Expr
}

type Expr interface{}

type Identifier struct {
	Name string
}

type Assignment struct {
	Name  string
	Value Expr
}

type BinaryOp string

const (
	BinaryAddition       BinaryOp = "+"
	BinarySubtraction    BinaryOp = "-"
	BinaryMultiplication BinaryOp = "*"
	BinaryDivision       BinaryOp = "/"
	BinaryModulo         BinaryOp = "%"
	BinaryEquals         BinaryOp = "=="
	BinaryNotEquals      BinaryOp = "!="
	BinaryLess           BinaryOp = "<"
	BinaryGreater        BinaryOp = ">"
	BinaryLessEqual      BinaryOp = "<="
	BinaryGreaterEqual   BinaryOp = ">="
)

type BinaryExpr struct {
	Operation BinaryOp
	Op1       Expr
	Op2       Expr
}

type UnaryOp string

const (
	UnaryNegative UnaryOp = "-"
	UnaryNot      UnaryOp = "չի"
)

type UnaryExpr struct {
	Operation UnaryOp
	Operand   Expr
}

type LogicalOp string

const (
	LogicalAnd LogicalOp = "և"
	LogicalOr  LogicalOp = "կամ"
)

// LogicalExpr is kept apart from BinaryExpr because its right operand is
// evaluated conditionally.
type LogicalExpr struct {
	Operation LogicalOp
	Op1       Expr
	Op2       Expr
}

type LiteralType int

const (
	LiteralNumber LiteralType = iota
	LiteralString
	LiteralBool
	LiteralNull
)

type LiteralExpr struct {
	Typ   LiteralType
	Value string
	Num   float64 // Set when Typ is LiteralNumber
	Bool  bool    // Set when Typ is LiteralBool
}

type Block struct {
	Statements []Expr
}

type IfStmt struct {
	Condition Expr
	Then      *Block
	Else      *Block
}

type WhileStmt struct {
	Condition Expr
	Body      *Block
}

type FuncDecl struct {
	Name   string
	Params []string
	Body   *Block
}

type CallExpr struct {
	Callee Expr
	Args   []Expr
}

type ReturnStmt struct {
	Value Expr // nil when the return carries no expression
}
