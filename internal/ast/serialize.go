package ast

// ToMap renders a node into the wire shape spec.md §6 describes for the
// AST-inspection endpoint: every node is a map with "type" set to the
// node-kind name and every other field present as its JSON-friendly
// value (nested nodes recursed, statement/expression lists as arrays).
func ToMap(node Node) map[string]any {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		return map[string]any{"type": "Program", "statements": stmtList(n.Statements)}

	case *Literal:
		return map[string]any{"type": "Literal", "value": n.Value, "raw_type": n.RawType, "line": n.LineNo}
	case *Identifier:
		return map[string]any{"type": "Identifier", "name": n.Name, "line": n.LineNo}
	case *BinaryOp:
		return map[string]any{"type": "BinaryOp", "left": ToMap(n.Left), "op": n.Op, "right": ToMap(n.Right), "line": n.LineNo}
	case *UnaryOp:
		return map[string]any{"type": "UnaryOp", "op": n.Op, "operand": ToMap(n.Operand), "line": n.LineNo}
	case *FunctionCall:
		return map[string]any{"type": "FunctionCall", "callee": ToMap(n.Callee), "arguments": exprList(n.Arguments), "line": n.LineNo}
	case *MemberAccess:
		return map[string]any{"type": "MemberAccess", "target": ToMap(n.Target), "member": ToMap(n.Member), "line": n.LineNo}
	case *IndexAccess:
		return map[string]any{"type": "IndexAccess", "target": ToMap(n.Target), "index": ToMap(n.Index), "line": n.LineNo}
	case *ArrayLiteral:
		return map[string]any{"type": "ArrayLiteral", "elements": exprList(n.Elements), "line": n.LineNo}
	case *ObjectLiteral:
		props := map[string]any{}
		for _, p := range n.Properties {
			props[p.Name] = ToMap(p.Value)
		}
		return map[string]any{"type": "ObjectLiteral", "properties": props, "line": n.LineNo}
	case *Assignment:
		return map[string]any{"type": "Assignment", "target": ToMap(n.Target), "op": n.Op, "value": ToMap(n.Value), "line": n.LineNo}

	case *Block:
		return map[string]any{"type": "Block", "statements": stmtList(n.Statements), "line": n.LineNo}
	case *VariableDecl:
		return map[string]any{
			"type": "VariableDecl", "name": n.Name, "declared_type": n.DeclaredType,
			"initializer": ToMap(n.Initializer), "is_const": n.IsConst, "line": n.LineNo,
		}
	case *FunctionDecl:
		return map[string]any{
			"type": "FunctionDecl", "name": n.Name, "params": paramList(n.Params),
			"return_type": n.ReturnType, "body": ToMap(n.Body), "line": n.LineNo,
		}
	case *ConstructorDecl:
		return map[string]any{"type": "ConstructorDecl", "params": paramList(n.Params), "body": ToMap(n.Body), "line": n.LineNo}
	case *ClassDecl:
		m := map[string]any{"type": "ClassDecl", "name": n.Name, "members": stmtList(n.Members), "line": n.LineNo}
		if n.SuperClass != nil {
			m["super_class"] = ToMap(n.SuperClass)
		} else {
			m["super_class"] = nil
		}
		return m
	case *IfStatement:
		m := map[string]any{"type": "IfStatement", "cond": ToMap(n.Cond), "then": ToMap(n.Then), "line": n.LineNo}
		if n.Else != nil {
			m["else"] = ToMap(n.Else)
		} else {
			m["else"] = nil
		}
		return m
	case *WhileStatement:
		return map[string]any{"type": "WhileStatement", "cond": ToMap(n.Cond), "body": ToMap(n.Body), "line": n.LineNo}
	case *ForStatement:
		return map[string]any{
			"type": "ForStatement", "init": ToMap(n.Init), "cond": ToMap(n.Cond),
			"update": ToMap(n.Update), "body": ToMap(n.Body), "line": n.LineNo,
		}
	case *ReturnStatement:
		return map[string]any{"type": "ReturnStatement", "value": ToMap(n.Value), "line": n.LineNo}
	case *BreakStatement:
		return map[string]any{"type": "BreakStatement", "line": n.LineNo}
	case *ContinueStatement:
		return map[string]any{"type": "ContinueStatement", "line": n.LineNo}
	case *ExpressionStatement:
		return map[string]any{"type": "ExpressionStatement", "expr": ToMap(n.Expr), "line": n.LineNo}
	}

	return map[string]any{"type": "Unknown"}
}

func stmtList(stmts []Statement) []any {
	out := make([]any, len(stmts))
	for i, s := range stmts {
		out[i] = ToMap(s)
	}
	return out
}

func exprList(exprs []Expression) []any {
	out := make([]any, len(exprs))
	for i, e := range exprs {
		out[i] = ToMap(e)
	}
	return out
}

func paramList(params []Param) []any {
	out := make([]any, len(params))
	for i, p := range params {
		out[i] = map[string]any{"name": p.Name, "type": p.Type}
	}
	return out
}
