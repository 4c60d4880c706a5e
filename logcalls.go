package reclass

import (
	"fmt"

	"go.uber.org/zap"
)

// LogCalls wraps the named methods of c so every call is logged at debug
// level with its arguments and result. Without names every instance method
// reachable on c is wrapped. Methods whose calls are already logged are
// left alone, so applying LogCalls twice logs each call once.
var LogCalls = MustOptional("LogCalls", logMethodCalls)

func logMethodCalls(c *Class, names ...string) (*Class, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: must be used on a class, not %T", ErrType, c)
	}
	if err := validateNames(names); err != nil {
		return nil, err
	}

	if len(names) == 0 {
		for _, name := range Callables(c) {
			if c.Lookup(name).Kind == KindInstance {
				names = append(names, name)
			}
		}
	}

	for _, name := range names {
		m := c.Lookup(name)
		if m == nil {
			return nil, fmt.Errorf("%w: %s.%s", ErrNotFound, c.Name, name)
		}
		if isLogged(m) {
			continue
		}
		c.set(name, loggedWrapper(m))
	}
	return c, nil
}

func loggedWrapper(m *Method) *Method {
	w := wrap(m, m.Qualname, func(via *Class, recv any, args ...any) (any, error) {
		res, err := m.call(via, recv, args...)

		// %#v formats without calling String, which may itself be logged.
		if ce := Logger().Check(zap.DebugLevel, "call"); ce != nil {
			ce.Write(
				zap.String("method", m.Qualname),
				zap.String("args", fmt.Sprintf("%#v", args)),
				zap.String("result", fmt.Sprintf("%#v", res)),
				zap.Error(err),
			)
		}

		return res, err
	})
	w.logged = true
	return w
}

// isLogged reports whether calls of m are already logged by a wrapper.
func isLogged(m *Method) bool {
	for ; m != nil; m = m.wrapped {
		if m.logged {
			return true
		}
	}
	return false
}
