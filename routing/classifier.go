package routing

import "strings"

// isTempSchema reports whether a schema qualifier names the TEMP
// database. Temp objects are session-local and never replicated.
func isTempSchema(schema string) bool {
	return strings.EqualFold(schema, "temp")
}

// Classify maps a command node to its routing category. ok is false when
// the command is unsupported; callers must reject those rather than
// defaulting to any category.
func Classify(n Node) (Category, bool) {
	switch n := n.(type) {
	case ExplainNode:
		return CategoryOther, true
	case BeginNode:
		return CategoryTxnBegin, true
	case CommitNode, RollbackNode:
		return CategoryTxnEnd, true
	case CreateTableNode:
		if n.Temporary || isTempSchema(n.Schema) {
			return 0, false
		}
		return CategoryWrite, true
	case CreateVirtualTableNode:
		if isTempSchema(n.Schema) {
			return 0, false
		}
		return CategoryWrite, true
	case CreateTriggerNode:
		if n.Temporary || isTempSchema(n.Schema) {
			return 0, false
		}
		return CategoryWrite, true
	case InsertNode, UpdateNode, DeleteNode, DropTableNode, AlterTableNode, CreateIndexNode:
		return CategoryWrite, true
	case SelectNode:
		return CategoryRead, true
	case PragmaNode:
		return PragmaCategory(n.Name, n.HasArg)
	default:
		// UnknownNode and anything not modeled above
		return 0, false
	}
}
