// Package script drives a player from a tengo scenario. A scenario defines
// update(engine, tick), called once per fixed tick before the physics step.
package script

import (
	"errors"
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/rs/zerolog"

	"github.com/milk9111/momentum/prefabs"
	"github.com/milk9111/momentum/system"
)

// Engine is the player surface a scenario can touch.
type Engine interface {
	SetIntent(moveX, moveZ float64)
	SetYaw(yaw float64)
	OnJumpTriggered()
	OnDashTriggered()
	OnPunchTriggered()
	Status() system.Status
}

var _ Engine = (*system.Player)(nil)

var ErrNilRuntime = errors.New("script: nil runtime")

const dispatchScript = `
update(__engine, __tick)
`

type Runtime struct {
	name     string
	compiled *tengo.Compiled
	log      zerolog.Logger
}

// Load compiles a scenario from prefabs/scripts.
func Load(name string, log zerolog.Logger) (*Runtime, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", name, err)
	}
	return Compile(name, src, log)
}

// Compile builds a runtime from source. The source must define update.
func Compile(name string, src []byte, log zerolog.Logger) (*Runtime, error) {
	full := string(src) + "\n" + dispatchScript
	script := tengo.NewScript([]byte(full))
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__tick", 0)

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	return &Runtime{name: name, compiled: compiled, log: log}, nil
}

func (rt *Runtime) Name() string {
	return rt.name
}

// Update runs update(engine, tick) once.
func (rt *Runtime) Update(engine Engine, tick uint64) error {
	if rt == nil || rt.compiled == nil {
		return ErrNilRuntime
	}
	if err := rt.compiled.Set("__engine", rt.buildEngine(engine, tick)); err != nil {
		return err
	}
	if err := rt.compiled.Set("__tick", int64(tick)); err != nil {
		return err
	}
	if err := rt.compiled.Run(); err != nil {
		return fmt.Errorf("script: %s tick %d: %w", rt.name, tick, err)
	}
	return nil
}

func (rt *Runtime) buildEngine(engine Engine, tick uint64) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["move"] = &tengo.UserFunction{Name: "move", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		x, err := numberArg("x", args[0])
		if err != nil {
			return nil, err
		}
		z, err := numberArg("z", args[1])
		if err != nil {
			return nil, err
		}
		engine.SetIntent(x, z)
		return tengo.UndefinedValue, nil
	}}

	values["yaw"] = &tengo.UserFunction{Name: "yaw", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		r, err := numberArg("radians", args[0])
		if err != nil {
			return nil, err
		}
		engine.SetYaw(r)
		return tengo.UndefinedValue, nil
	}}

	values["jump"] = trigger("jump", engine.OnJumpTriggered)
	values["dash"] = trigger("dash", engine.OnDashTriggered)
	values["punch"] = trigger("punch", engine.OnPunchTriggered)

	values["status"] = &tengo.UserFunction{Name: "status", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return statusObject(engine.Status()), nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, arg := range args {
			parts = append(parts, objectAsString(arg))
		}
		rt.log.Info().Str("script", rt.name).Uint64("tick", tick).Msg(strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func trigger(name string, fn func()) *tengo.UserFunction {
	return &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
		fn()
		return tengo.UndefinedValue, nil
	}}
}

func statusObject(s system.Status) *tengo.ImmutableMap {
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"alive":         boolObject(s.Alive),
		"jumps":         &tengo.Int{Value: int64(s.Jumps)},
		"dashes":        &tengo.Int{Value: int64(s.Dashes)},
		"grounded":      boolObject(s.Grounded),
		"wall_running":  boolObject(s.WallRunning),
		"dashing":       boolObject(s.Dashing),
		"punching":      boolObject(s.Punching),
		"boosted":       boolObject(s.Boosted),
		"boost_seconds": &tengo.Int{Value: int64(s.BoostSeconds)},
		"max_speed":     &tengo.Float{Value: s.MaxSpeed},
		"x":             &tengo.Float{Value: s.Position.X},
		"y":             &tengo.Float{Value: s.Position.Y},
		"z":             &tengo.Float{Value: s.Position.Z},
		"vx":            &tengo.Float{Value: s.Velocity.X},
		"vy":            &tengo.Float{Value: s.Velocity.Y},
		"vz":            &tengo.Float{Value: s.Velocity.Z},
	}}
}

func boolObject(b bool) tengo.Object {
	if b {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}

func numberArg(name string, obj tengo.Object) (float64, error) {
	switch v := obj.(type) {
	case *tengo.Int:
		return float64(v.Value), nil
	case *tengo.Float:
		return v.Value, nil
	}
	return 0, tengo.ErrInvalidArgumentType{Name: name, Expected: "int/float", Found: obj.TypeName()}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
