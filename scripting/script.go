// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package scripting

import (
	"errors"
	"strings"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/digest"
	"github.com/jetsetilly/gopher6502/hardware"
	"github.com/jetsetilly/gopher6502/logger"
	lua "github.com/yuin/gopher-lua"
)

// name of the metatable given to Go errors raised in the Lua state
const goErrorType = "goerror"

type script struct {
	m   *hardware.Machine
	dig *digest.State
}

// Run the Lua script against the machine.
func Run(m *hardware.Machine, src string) error {
	return run(m, func(L *lua.LState) error {
		return L.DoString(src)
	})
}

// RunFile loads and runs the Lua script in the named file.
func RunFile(m *hardware.Machine, filename string) error {
	return run(m, func(L *lua.LState) error {
		return L.DoFile(filename)
	})
}

func run(m *hardware.Machine, do func(L *lua.LState) error) error {
	scr := &script{
		m:   m,
		dig: digest.NewState(m),
	}

	L := lua.NewState()
	defer L.Close()

	for name, fn := range map[string]lua.LGFunction{
		"peek":   scr.peek,
		"poke":   scr.poke,
		"reg":    scr.reg,
		"setreg": scr.setreg,
		"flag":   scr.flag,
		"run":    scr.run,
		"step":   scr.step,
		"reset":  scr.reset,
		"expect": scr.expect,
		"digest": scr.digest,
		"log":    scr.log,
	} {
		L.SetGlobal(name, L.NewFunction(fn))
	}

	// a Go error caught by pcall() can be printed by the script
	mt := L.NewTypeMetatable(goErrorType)
	L.SetField(mt, "__tostring", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LString(L.CheckUserData(1).Value.(error).Error()))
		return 1
	}))

	err := do(L)
	if err == nil {
		return nil
	}

	// errors raised by stop() carry the Go error
	var apiErr *lua.ApiError
	if errors.As(err, &apiErr) {
		if ud, ok := apiErr.Object.(*lua.LUserData); ok {
			if e, ok := ud.Value.(error); ok {
				return e
			}
		}
	}

	return curated.Errorf(ScriptError, err)
}

// stop the script with a Go error. the error is raised as a Lua error value so
// that it can be caught by pcall(). if it is not caught it will be returned
// by Run()
func (scr *script) stop(L *lua.LState, err error) int {
	ud := L.NewUserData()
	ud.Value = err
	L.SetMetatable(ud, L.GetTypeMetatable(goErrorType))
	L.Error(ud, 1)
	return 0
}

func checkAddress(L *lua.LState, n int) uint16 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xffff {
		L.ArgError(n, "address out of range")
	}
	return uint16(v)
}

func checkByte(L *lua.LState, n int) uint8 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xff {
		L.ArgError(n, "value out of range")
	}
	return uint8(v)
}

func (scr *script) peek(L *lua.LState) int {
	addr := checkAddress(L, 1)
	L.Push(lua.LNumber(scr.m.Mem.ReadByte(addr)))
	return 1
}

func (scr *script) poke(L *lua.LState) int {
	addr := checkAddress(L, 1)
	v := checkByte(L, 2)
	scr.m.Mem.WriteByte(addr, v)
	return 0
}

func (scr *script) reg(L *lua.LState) int {
	mc := scr.m.CPU

	name := L.CheckString(1)
	switch strings.ToUpper(name) {
	case "PC":
		L.Push(lua.LNumber(mc.PC.Address()))
	case "A":
		L.Push(lua.LNumber(mc.A.Value()))
	case "X":
		L.Push(lua.LNumber(mc.X.Value()))
	case "Y":
		L.Push(lua.LNumber(mc.Y.Value()))
	case "SP":
		L.Push(lua.LNumber(mc.SP.Value()))
	case "SR":
		L.Push(lua.LNumber(mc.Status.Value()))
	default:
		return scr.stop(L, curated.Errorf(UnknownRegister, name))
	}
	return 1
}

func (scr *script) setreg(L *lua.LState) int {
	mc := scr.m.CPU

	name := L.CheckString(1)
	switch strings.ToUpper(name) {
	case "PC":
		mc.PC.Load(checkAddress(L, 2))
	case "A":
		mc.A.Load(checkByte(L, 2))
	case "X":
		mc.X.Load(checkByte(L, 2))
	case "Y":
		mc.Y.Load(checkByte(L, 2))
	case "SP":
		mc.SP.Load(checkByte(L, 2))
	case "SR":
		mc.Status.Load(checkByte(L, 2))
	default:
		return scr.stop(L, curated.Errorf(UnknownRegister, name))
	}
	return 0
}

func (scr *script) flag(L *lua.LState) int {
	sr := scr.m.CPU.Status

	var f bool

	name := L.CheckString(1)
	switch strings.ToUpper(name) {
	case "C":
		f = sr.Carry
	case "Z":
		f = sr.Zero
	case "I":
		f = sr.InterruptDisable
	case "D":
		f = sr.DecimalMode
	case "B":
		f = sr.Break
	case "V":
		f = sr.Overflow
	case "N":
		f = sr.Sign
	default:
		return scr.stop(L, curated.Errorf(UnknownFlag, name))
	}

	L.Push(lua.LBool(f))
	return 1
}

func (scr *script) run(L *lua.LState) int {
	budget := L.CheckInt(1)
	n, err := scr.m.Run(budget)
	if err != nil {
		return scr.stop(L, err)
	}
	L.Push(lua.LNumber(n))
	return 1
}

func (scr *script) step(L *lua.LState) int {
	if err := scr.m.Step(nil); err != nil {
		return scr.stop(L, err)
	}
	L.Push(lua.LNumber(scr.m.CPU.LastResult.Cycles))
	return 1
}

func (scr *script) reset(L *lua.LState) int {
	if err := scr.m.Reset(); err != nil {
		return scr.stop(L, err)
	}
	return 0
}

func (scr *script) expect(L *lua.LState) int {
	cond := lua.LVAsBool(L.CheckAny(1))
	msg := L.OptString(2, "no message")
	if !cond {
		return scr.stop(L, curated.Errorf(ExpectationFailed, msg))
	}
	return 0
}

// digest() updates the chained hash before returning it. two calls without
// any change to the machine will therefore return different values
func (scr *script) digest(L *lua.LState) int {
	scr.dig.Update()
	L.Push(lua.LString(scr.dig.Hash()))
	return 1
}

func (scr *script) log(L *lua.LState) int {
	logger.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}
