package loaders

import (
	"context"

	"github.com/goliatone/go-errors"
	"github.com/knadh/koanf/providers/file"
	lua "github.com/yuin/gopher-lua"
)

// LuaStrategy interprets config scripts. A script returns its
// configuration as the chunk's value: a table (object or array of
// objects) or a function receiving (env, argv) that returns either.
type LuaStrategy struct{}

func (s *LuaStrategy) Prepare() error { return nil }

func (s *LuaStrategy) Load(ctx context.Context, path string) (any, error) {
	raw, err := file.Provider(path).ReadBytes()
	if err != nil {
		return nil, err
	}

	L := lua.NewState()
	if ctx != nil {
		L.SetContext(ctx)
	}

	if err := L.DoString(string(raw)); err != nil {
		L.Close()
		return nil, errors.Wrap(err, errors.CategoryBadInput, "lua config failed to evaluate").
			WithTextCode("CONFIG_PARSE_FAILED").
			WithMetadata(map[string]any{"path": path})
	}

	ret := L.Get(-1)
	if fn, ok := ret.(*lua.LFunction); ok {
		return luaConfigFunc(L, fn), nil
	}

	defer L.Close()
	return luaToGo(ret), nil
}

// luaConfigFunc keeps the interpreter state alive until the function
// config is invoked. The pipeline calls a function config exactly once,
// after which the state is released.
func luaConfigFunc(L *lua.LState, fn *lua.LFunction) ConfigFunc {
	return func(ctx context.Context, env map[string]any, argv any) (any, error) {
		defer L.Close()
		if ctx != nil {
			L.SetContext(ctx)
		}

		err := L.CallByParam(lua.P{
			Fn:      fn,
			NRet:    1,
			Protect: true,
		}, goToLua(L, env), goToLua(L, argv))
		if err != nil {
			return nil, err
		}

		ret := L.Get(-1)
		L.Pop(1)
		return luaToGo(ret), nil
	}
}
