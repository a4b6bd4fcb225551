// This file is part of GopherPSX.
//
// GopherPSX is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherPSX is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherPSX.  If not, see <https://www.gnu.org/licenses/>.

package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/hardware"
	"github.com/jetsetilly/gopherpsx/hardware/interrupts"
	"github.com/jetsetilly/gopherpsx/hardware/memory/bus"
	lua "github.com/yuin/gopher-lua"
)

// Sentinal error patterns returned by the script package.
const (
	ScriptError = "script: %v"
)

// Script is a Lua interpreter with functions for inspecting and changing the
// state of a PSX.
type Script struct {
	psx *hardware.PSX
	L   *lua.LState
	out io.Writer
}

// NewScript is the preferred method of initialisation for the Script type.
// Output from the print() function is sent to the out argument, which can be
// nil.
func NewScript(psx *hardware.PSX, out io.Writer) *Script {
	if out == nil {
		out = io.Discard
	}

	sc := &Script{
		psx: psx,
		L:   lua.NewState(),
		out: out,
	}

	for name, fn := range map[string]lua.LGFunction{
		"peek":   sc.peek,
		"poke":   sc.poke,
		"reg":    sc.reg,
		"setreg": sc.setreg,
		"pc":     sc.pc,
		"setpc":  sc.setpc,
		"step":   sc.step,
		"raise":  sc.raise,
		"cycles": sc.cycles,
		"print":  sc.print,
	} {
		sc.L.SetGlobal(name, sc.L.NewFunction(fn))
	}

	return sc
}

// Close the interpreter. The Script should not be used after it has been
// closed.
func (sc *Script) Close() {
	sc.L.Close()
}

// RunString runs the Lua source.
func (sc *Script) RunString(source string) error {
	if err := sc.L.DoString(source); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunFile runs the Lua file.
func (sc *Script) RunFile(filename string) error {
	if err := sc.L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

func (sc *Script) log(detail string, args ...any) {
	sc.psx.Env.Log.Logf(sc.psx.Env, "script", detail, args...)
}

// raise a Lua error for a Go error. does not return
func (sc *Script) fail(err error) int {
	sc.log("%v", err)
	sc.L.RaiseError("%v", err)
	return 0
}

func (sc *Script) checkUint32(n int) uint32 {
	return uint32(int64(sc.L.CheckNumber(n)))
}

func (sc *Script) checkWidth(n int) bus.Width {
	switch w := bus.Width(sc.L.OptInt(n, int(bus.Word))); w {
	case bus.Byte, bus.Half, bus.Word:
		return w
	}
	sc.L.ArgError(n, "width must be 8, 16 or 32")
	return bus.Word
}

func (sc *Script) checkRegister(n int) int {
	r := sc.L.CheckInt(n)
	if r < 0 || r > 31 {
		sc.L.ArgError(n, "register must be between 0 and 31")
	}
	return r
}

func (sc *Script) peek(L *lua.LState) int {
	address := sc.checkUint32(1)
	width := sc.checkWidth(2)
	v, err := sc.psx.Mem.Peek(address, width)
	if err != nil {
		return sc.fail(err)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (sc *Script) poke(L *lua.LState) int {
	address := sc.checkUint32(1)
	value := sc.checkUint32(2)
	width := sc.checkWidth(3)
	if err := sc.psx.Mem.Poke(address, width, value); err != nil {
		return sc.fail(err)
	}
	return 0
}

func (sc *Script) reg(L *lua.LState) int {
	L.Push(lua.LNumber(sc.psx.CPU.Register(sc.checkRegister(1))))
	return 1
}

func (sc *Script) setreg(L *lua.LState) int {
	sc.psx.CPU.SetRegister(sc.checkRegister(1), sc.checkUint32(2))
	return 0
}

func (sc *Script) pc(L *lua.LState) int {
	L.Push(lua.LNumber(sc.psx.CPU.PC()))
	return 1
}

func (sc *Script) setpc(L *lua.LState) int {
	sc.psx.CPU.SetPC(sc.checkUint32(1))
	return 0
}

func (sc *Script) step(L *lua.LState) int {
	n := L.OptInt(1, 1)
	var cycles int
	for range n {
		c, err := sc.psx.Step()
		cycles += c
		if err != nil {
			return sc.fail(err)
		}
	}
	L.Push(lua.LNumber(cycles))
	return 1
}

func (sc *Script) raise(L *lua.LState) int {
	line := interrupts.Line(L.CheckInt(1))
	if line < 0 || line >= interrupts.NumLines {
		L.ArgError(1, fmt.Sprintf("interrupt line must be between 0 and %d", interrupts.NumLines-1))
	}
	sc.psx.Interrupts.Raise(line)
	return 0
}

func (sc *Script) cycles(L *lua.LState) int {
	L.Push(lua.LNumber(sc.psx.Mem.Cycles()))
	return 1
}

func (sc *Script) print(L *lua.LState) int {
	s := make([]string, L.GetTop())
	for i := range s {
		s[i] = L.ToStringMeta(L.Get(i + 1)).String()
	}
	fmt.Fprintln(sc.out, strings.Join(s, "\t"))
	return 0
}
