package interp

import (
	"github.com/Byron-voldigoad/AST/internal/ast"
)

// eval evaluates expr in the current environment. A non-nil error is
// always a *RuntimeError.
func (i *Interpreter) eval(expr ast.Expression) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e), nil

	case *ast.Identifier:
		if v, ok := i.env.Get(e.Name); ok {
			return v, nil
		}
		return nil, runtimeErrorf(e.Line(), "undefined variable '%s'", e.Name)

	case *ast.BinaryOp:
		return i.evalBinaryOp(e)

	case *ast.UnaryOp:
		operand, err := i.eval(e.Operand)
		if err != nil {
			return nil, err
		}
		return evalUnary(e, operand)

	case *ast.FunctionCall:
		return i.evalCall(e)

	case *ast.MemberAccess:
		return i.evalMemberAccess(e)

	case *ast.IndexAccess:
		return i.evalIndexAccess(e)

	case *ast.Assignment:
		return i.evalAssignment(e)

	case *ast.ArrayLiteral:
		elems := make([]Value, len(e.Elements))
		for idx, el := range e.Elements {
			v, err := i.eval(el)
			if err != nil {
				return nil, err
			}
			elems[idx] = v
		}
		return &ArrayValue{Elements: elems}, nil

	case *ast.ObjectLiteral:
		m := NewMapValue()
		for _, prop := range e.Properties {
			v, err := i.eval(prop.Value)
			if err != nil {
				return nil, err
			}
			m.Set(prop.Name, v)
		}
		return m, nil
	}
	return nil, runtimeErrorf(expr.Line(), "unknown expression type")
}

func literalValue(l *ast.Literal) Value {
	switch l.RawType {
	case "null":
		return Null
	case "bool":
		return BoolValue{Value: l.Value.(bool)}
	case "int":
		return IntValue{Value: l.Value.(int64)}
	case "float":
		return FloatValue{Value: l.Value.(float64)}
	case "string":
		return StringValue{Value: l.Value.(string)}
	}
	return Null
}

// &&/|| short-circuit: the right operand is only evaluated when the
// result cannot already be decided from the left one. This diverges
// from eager both-operands evaluation on purpose (see DESIGN.md).
func (i *Interpreter) evalBinaryOp(e *ast.BinaryOp) (Value, error) {
	if e.Op == "&&" || e.Op == "||" {
		left, err := i.eval(e.Left)
		if err != nil {
			return nil, err
		}
		if e.Op == "&&" && !IsTruthy(left) {
			return BoolValue{Value: false}, nil
		}
		if e.Op == "||" && IsTruthy(left) {
			return BoolValue{Value: true}, nil
		}
		right, err := i.eval(e.Right)
		if err != nil {
			return nil, err
		}
		return BoolValue{Value: IsTruthy(right)}, nil
	}

	left, err := i.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.eval(e.Right)
	if err != nil {
		return nil, err
	}
	return applyBinary(e.Op, left, right, e.Line())
}

func applyBinary(op string, left, right Value, line int) (Value, error) {
	switch op {
	case "==":
		return BoolValue{Value: ValuesEqual(left, right)}, nil
	case "!=":
		return BoolValue{Value: !ValuesEqual(left, right)}, nil
	}

	if op == "+" {
		if ls, ok := left.(StringValue); ok {
			return StringValue{Value: ls.Value + right.String()}, nil
		}
		if rs, ok := right.(StringValue); ok {
			return StringValue{Value: left.String() + rs.Value}, nil
		}
	}

	lf, lok := numeric(left)
	rf, rok := numeric(right)
	if !lok || !rok {
		return nil, runtimeErrorf(line, "operator '%s' requires numeric operands, got %s and %s", op, left.Type(), right.Type())
	}

	switch op {
	case "+", "-", "*", "/", "%":
		return arithmetic(op, left, right, lf, rf, line)
	case "<":
		return BoolValue{Value: lf < rf}, nil
	case "<=":
		return BoolValue{Value: lf <= rf}, nil
	case ">":
		return BoolValue{Value: lf > rf}, nil
	case ">=":
		return BoolValue{Value: lf >= rf}, nil
	}
	return nil, runtimeErrorf(line, "unknown binary operator '%s'", op)
}

// numeric reports a value's float64 view for comparison purposes,
// without committing to int-vs-float result typing.
func numeric(v Value) (float64, bool) {
	switch val := v.(type) {
	case IntValue:
		return float64(val.Value), true
	case FloatValue:
		return val.Value, true
	}
	return 0, false
}

// arithmetic preserves int+int=int, promoting to float the moment
// either operand is a float.
func arithmetic(op string, left, right Value, lf, rf float64, line int) (Value, error) {
	li, lIsInt := left.(IntValue)
	ri, rIsInt := right.(IntValue)
	if lIsInt && rIsInt {
		switch op {
		case "+":
			return IntValue{Value: li.Value + ri.Value}, nil
		case "-":
			return IntValue{Value: li.Value - ri.Value}, nil
		case "*":
			return IntValue{Value: li.Value * ri.Value}, nil
		case "/":
			if ri.Value == 0 {
				return nil, runtimeErrorf(line, "division by zero")
			}
			return IntValue{Value: li.Value / ri.Value}, nil
		case "%":
			if ri.Value == 0 {
				return nil, runtimeErrorf(line, "division by zero")
			}
			return IntValue{Value: li.Value % ri.Value}, nil
		}
	}

	switch op {
	case "+":
		return FloatValue{Value: lf + rf}, nil
	case "-":
		return FloatValue{Value: lf - rf}, nil
	case "*":
		return FloatValue{Value: lf * rf}, nil
	case "/":
		if rf == 0 {
			return nil, runtimeErrorf(line, "division by zero")
		}
		return FloatValue{Value: lf / rf}, nil
	case "%":
		if rf == 0 {
			return nil, runtimeErrorf(line, "division by zero")
		}
		return FloatValue{Value: float64(int64(lf) % int64(rf))}, nil
	}
	return nil, runtimeErrorf(line, "unknown arithmetic operator '%s'", op)
}

func evalUnary(e *ast.UnaryOp, operand Value) (Value, error) {
	switch e.Op {
	case "-":
		switch v := operand.(type) {
		case IntValue:
			return IntValue{Value: -v.Value}, nil
		case FloatValue:
			return FloatValue{Value: -v.Value}, nil
		}
		return nil, runtimeErrorf(e.Line(), "unary '-' requires a numeric operand, got %s", operand.Type())
	case "!":
		return BoolValue{Value: !IsTruthy(operand)}, nil
	}
	return nil, runtimeErrorf(e.Line(), "unknown unary operator '%s'", e.Op)
}

func (i *Interpreter) evalCall(e *ast.FunctionCall) (Value, error) {
	callee, err := i.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Arguments))
	for idx, a := range e.Arguments {
		v, err := i.eval(a)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	switch fn := callee.(type) {
	case *NativeFunc:
		v, err := fn.Fn(args)
		if err != nil {
			return nil, runtimeErrorf(e.Line(), "%s", err.Error())
		}
		return v, nil

	case *FunctionValue:
		return i.callFunction(fn.Decl, fn.Env, args, e.Line())

	case *BoundMethod:
		return i.callMethod(fn, args, e.Line())

	case *ClassValue:
		return i.instantiate(fn, args, e.Line())
	}

	return nil, runtimeErrorf(e.Line(), "cannot call a value of type %s", callee.Type())
}

// callFunction binds args over a fresh child of closureEnv (the
// environment captured when the FunctionDecl executed, not the caller's
// environment) and executes the body.
func (i *Interpreter) callFunction(decl *ast.FunctionDecl, closureEnv *Environment, args []Value, line int) (Value, error) {
	if len(args) != len(decl.Params) {
		return nil, runtimeErrorf(line, "expected %d arguments but got %d", len(decl.Params), len(args))
	}

	callEnv := NewEnclosedEnvironment(closureEnv)
	for idx, param := range decl.Params {
		callEnv.Define(param.Name, args[idx])
	}

	return i.runCallBody(decl.Body, callEnv)
}

// runCallBody executes a function/method/constructor body in env,
// catching the return signal and resetting break/continue context so
// they never leak past a call boundary.
func (i *Interpreter) runCallBody(body *ast.Block, env *Environment) (Value, error) {
	savedReturn, savedReturnVal := i.returnSignal, i.returnValue
	savedBreak, savedContinue := i.breakSignal, i.continueSignal
	i.returnSignal, i.breakSignal, i.continueSignal = false, false, false

	err := i.executeBlock(body.Statements, env)

	var result Value = Null
	if i.returnSignal {
		result = i.returnValue
	}

	i.returnSignal, i.returnValue = savedReturn, savedReturnVal
	i.breakSignal, i.continueSignal = savedBreak, savedContinue

	if err != nil {
		return nil, err
	}
	return result, nil
}

func (i *Interpreter) evalMemberAccess(e *ast.MemberAccess) (Value, error) {
	target, err := i.eval(e.Target)
	if err != nil {
		return nil, err
	}

	switch t := target.(type) {
	case *InstanceValue:
		if v, ok := t.Fields[e.Member.Name]; ok {
			return v, nil
		}
		if method, owner := t.Class.findMethod(e.Member.Name); method != nil {
			return &BoundMethod{Method: method, Receiver: t, Env: owner.Env}, nil
		}
		return nil, runtimeErrorf(e.Line(), "instance of %s has no member '%s'", t.Class.Name, e.Member.Name)
	case *MapValue:
		if v, ok := t.Values[e.Member.Name]; ok {
			return v, nil
		}
		return nil, runtimeErrorf(e.Line(), "key '%s' not found", e.Member.Name)
	}
	return nil, runtimeErrorf(e.Line(), "cannot access member '%s' on a value of type %s", e.Member.Name, target.Type())
}

func (i *Interpreter) evalIndexAccess(e *ast.IndexAccess) (Value, error) {
	target, err := i.eval(e.Target)
	if err != nil {
		return nil, err
	}
	index, err := i.eval(e.Index)
	if err != nil {
		return nil, err
	}

	switch t := target.(type) {
	case *ArrayValue:
		idx, ok := index.(IntValue)
		if !ok {
			return nil, runtimeErrorf(e.Line(), "array index must be an int, got %s", index.Type())
		}
		if idx.Value < 0 || int(idx.Value) >= len(t.Elements) {
			return nil, runtimeErrorf(e.Line(), "array index %d out of range", idx.Value)
		}
		return t.Elements[idx.Value], nil
	case *MapValue:
		key, ok := index.(StringValue)
		if !ok {
			return nil, runtimeErrorf(e.Line(), "map key must be a string, got %s", index.Type())
		}
		v, ok := t.Values[key.Value]
		if !ok {
			return nil, runtimeErrorf(e.Line(), "key '%s' not found", key.Value)
		}
		return v, nil
	}
	return nil, runtimeErrorf(e.Line(), "cannot index a value of type %s", target.Type())
}

func (i *Interpreter) evalAssignment(e *ast.Assignment) (Value, error) {
	value, err := i.eval(e.Value)
	if err != nil {
		return nil, err
	}

	switch target := e.Target.(type) {
	case *ast.Identifier:
		result := value
		if e.Op != "=" {
			current, ok := i.env.Get(target.Name)
			if !ok {
				return nil, runtimeErrorf(e.Line(), "undefined variable '%s'", target.Name)
			}
			result, err = applyBinary(compoundBaseOp(e.Op), current, value, e.Line())
			if err != nil {
				return nil, err
			}
		}
		if !i.env.Assign(target.Name, result) {
			return nil, runtimeErrorf(e.Line(), "undefined variable '%s'", target.Name)
		}
		return result, nil

	case *ast.MemberAccess:
		return i.assignMember(target, e.Op, value, e.Line())

	case *ast.IndexAccess:
		return i.assignIndex(target, e.Op, value, e.Line())
	}

	return nil, runtimeErrorf(e.Line(), "invalid assignment target")
}

func compoundBaseOp(op string) string {
	return op[:len(op)-1]
}

func (i *Interpreter) assignMember(target *ast.MemberAccess, op string, value Value, line int) (Value, error) {
	recv, err := i.eval(target.Target)
	if err != nil {
		return nil, err
	}
	inst, ok := recv.(*InstanceValue)
	if !ok {
		return nil, runtimeErrorf(line, "cannot assign to member of a value of type %s", recv.Type())
	}

	result := value
	if op != "=" {
		current, ok := inst.Fields[target.Member.Name]
		if !ok {
			return nil, runtimeErrorf(line, "instance of %s has no member '%s'", inst.Class.Name, target.Member.Name)
		}
		result, err = applyBinary(compoundBaseOp(op), current, value, line)
		if err != nil {
			return nil, err
		}
	}
	inst.Fields[target.Member.Name] = result
	return result, nil
}

func (i *Interpreter) assignIndex(target *ast.IndexAccess, op string, value Value, line int) (Value, error) {
	recv, err := i.eval(target.Target)
	if err != nil {
		return nil, err
	}
	index, err := i.eval(target.Index)
	if err != nil {
		return nil, err
	}

	switch t := recv.(type) {
	case *ArrayValue:
		idx, ok := index.(IntValue)
		if !ok {
			return nil, runtimeErrorf(line, "array index must be an int, got %s", index.Type())
		}
		if idx.Value < 0 || int(idx.Value) >= len(t.Elements) {
			return nil, runtimeErrorf(line, "array index %d out of range", idx.Value)
		}
		result := value
		if op != "=" {
			result, err = applyBinary(compoundBaseOp(op), t.Elements[idx.Value], value, line)
			if err != nil {
				return nil, err
			}
		}
		t.Elements[idx.Value] = result
		return result, nil

	case *MapValue:
		key, ok := index.(StringValue)
		if !ok {
			return nil, runtimeErrorf(line, "map key must be a string, got %s", index.Type())
		}
		result := value
		if op != "=" {
			current, ok := t.Values[key.Value]
			if !ok {
				return nil, runtimeErrorf(line, "key '%s' not found", key.Value)
			}
			result, err = applyBinary(compoundBaseOp(op), current, value, line)
			if err != nil {
				return nil, err
			}
		}
		t.Set(key.Value, result)
		return result, nil
	}
	return nil, runtimeErrorf(line, "cannot index-assign a value of type %s", recv.Type())
}
