package compliance

import (
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/planforge-xyz/go-planforge/plan"
)

// exprEngine compiles and caches CEL predicates used by expression rules.
// Compiled programs are cached by expression text since rule tables are
// static reference data.
type exprEngine struct {
	env      *cel.Env
	mu       sync.RWMutex
	programs map[string]cel.Program
}

var (
	engineOnce sync.Once
	engine     *exprEngine
)

func defaultEngine() *exprEngine {
	engineOnce.Do(func() {
		env, err := cel.NewEnv(
			cel.Variable("room", cel.DynType),
			cel.Variable("plan", cel.DynType),
		)
		if err != nil {
			// Leave the engine nil; expression rules degrade to satisfied,
			// matching the checker's permissive default.
			return
		}
		engine = &exprEngine{
			env:      env,
			programs: make(map[string]cel.Program),
		}
	})
	return engine
}

// program returns a compiled program for the expression, compiling and
// caching it on first use.
func (e *exprEngine) program(expression string) (cel.Program, error) {
	e.mu.RLock()
	prog, ok := e.programs[expression]
	e.mu.RUnlock()
	if ok {
		return prog, nil
	}

	ast, issues := e.env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, issues.Err()
	}
	prog, err := e.env.Program(ast, cel.CostLimit(1000000))
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.programs[expression] = prog
	e.mu.Unlock()
	return prog, nil
}

// expressionHolds evaluates a rule predicate against every room in the plan.
// The predicate sees two variables: "room" (the room under evaluation) and
// "plan" (plan-level facts). All rooms must satisfy it. Compile or eval
// failures, and non-boolean results, count as satisfied: expression rules
// follow the same permissive default as unrecognized rule labels.
func (c *Checker) expressionHolds(expression string) bool {
	en := defaultEngine()
	if en == nil {
		return true
	}
	prog, err := en.program(expression)
	if err != nil {
		return true
	}

	planFacts := planFacts(c.fp)
	for _, room := range c.fp.Rooms {
		out, _, err := prog.Eval(map[string]any{
			"room": roomFacts(room),
			"plan": planFacts,
		})
		if err != nil {
			return true
		}
		holds, ok := out.Value().(bool)
		if !ok {
			return true
		}
		if !holds {
			return false
		}
	}
	return true
}

func roomFacts(room plan.RoomLayout) map[string]any {
	return map[string]any{
		"type":   room.Type,
		"area":   room.Area,
		"width":  room.Dimensions.Width,
		"length": room.Dimensions.Length,
		"height": room.Dimensions.Height,
		"x":      room.Position.X,
		"y":      room.Position.Y,
	}
}

func planFacts(fp *plan.FloorPlan) map[string]any {
	corridors := make([]map[string]any, 0, len(fp.Corridors))
	for _, corridor := range fp.Corridors {
		corridors = append(corridors, map[string]any{
			"width":       corridor.Width,
			"connections": corridor.Connections,
		})
	}
	return map[string]any{
		"totalArea":  fp.TotalArea,
		"efficiency": fp.Efficiency,
		"roomCount":  len(fp.Rooms),
		"corridors":  corridors,
	}
}
