package main

import (
	"fmt"

	"github.com/fanlia/luaz/api"
)

// printStack is the CLI's one piece of direct stack introspection.
func printStack(s api.LuaState) {
	top := s.GetTop()
	for i := 1; i <= top; i++ {
		switch s.Type(i) {
		case api.LUA_TBOOLEAN:
			fmt.Printf("[%t]", s.ToBoolean(i))
		case api.LUA_TNUMBER:
			fmt.Printf("[%g]", s.ToNumber(i))
		case api.LUA_TSTRING:
			fmt.Printf("[%q]", s.ToString(i))
		default:
			fmt.Printf("[%s]", s.TypeName(s.Type(i)))
		}
	}
	fmt.Println()
}
