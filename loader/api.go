package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the pack constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// TechContext { year = 3050, level = "standard", faction = "is", mixed = false }
	L.SetGlobal("TechContext", L.NewFunction(func(L *lua.LState) int {
		coll.context = L.CheckTable(1)
		return 0
	}))

	// Allow "XL Gyro" — makes an item legal regardless of level and year.
	L.SetGlobal("Allow", L.NewFunction(func(L *lua.LState) int {
		coll.allow = append(coll.allow, L.CheckString(1))
		return 0
	}))

	// Forbid "Small Cockpit"
	L.SetGlobal("Forbid", L.NewFunction(func(L *lua.LState) int {
		coll.forbid = append(coll.forbid, L.CheckString(1))
		return 0
	}))

	// Mech "Locust LCT-1V" { ... } — curried: Mech("name") returns a function
	// that takes the design table.
	L.SetGlobal("Mech", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.mechs = append(coll.mechs, rawMech{name: name, table: tbl})
			return 0
		}))
		return 1
	}))

	// Rear(front, rear) builds a torso armor pair.
	L.SetGlobal("Rear", L.NewFunction(func(L *lua.LState) int {
		tbl := L.NewTable()
		tbl.RawSetString("front", L.CheckNumber(1))
		tbl.RawSetString("rear", L.CheckNumber(2))
		L.Push(tbl)
		return 1
	}))
}
