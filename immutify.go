package reclass

import (
	"errors"
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// Immutify rewrites the named instance methods of c to run on a clone of
// the receiver and return the clone. The receiver is never modified.
//
// The receiver is cloned by the class it is an instance of, so classes
// derived from c keep getting copies of their own type.
//
// The wrapped methods must mutate their receiver and return nothing. If one
// returns a value the wrapper panics with a *ContractError.
//
// Names that are missing or not instance methods are skipped.
var Immutify = MustOptional("Immutify", immutifyMethods)

func immutifyMethods(c *Class, names ...string) (*Class, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: must be used on a class, not %T", ErrType, c)
	}
	if c.Clone == nil {
		return nil, fmt.Errorf("%w: %s cannot be cloned", ErrType, c.Name)
	}
	if err := validateNames(names); err != nil {
		return nil, err
	}

	for _, name := range names {
		kind, err := Classify(c, name)
		if errors.Is(err, ErrNotFound) {
			Logger().Warn("skipping unknown method",
				zap.String("class", c.Name),
				zap.String("method", name))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("immutify %s.%s: %w", c.Name, name, err)
		}
		if kind != KindInstance {
			Logger().Warn("skipping method that is not an instance method",
				zap.String("class", c.Name),
				zap.String("method", name),
				zap.Stringer("kind", kind))
			continue
		}

		c.set(name, immutableWrapper(c, name))
		Logger().Debug("installed immutable wrapper",
			zap.String("class", c.Name),
			zap.String("method", name))
	}

	return c, nil
}

func immutableWrapper(c *Class, name string) *Method {
	orig := c.Lookup(name)
	return wrap(orig, orig.Qualname, func(via *Class, recv any, args ...any) (any, error) {
		clone, err := cloneAs(via, c, recv)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", orig.Qualname, err)
		}

		res, err := orig.call(via, clone, args...)
		if err != nil {
			return nil, err
		}
		if res != nil {
			panic(&ContractError{Method: orig.Qualname, Result: res})
		}

		return clone, nil
	})
}

// cloneAs copies recv with the Clone of the class recv is an instance of.
// That class is searched from via, the class the call went through, up to
// its bases, and then owner, the class the wrapper was installed on.
func cloneAs(via, owner *Class, recv any) (any, error) {
	t := reflect.TypeOf(recv)
	for k := via; k != nil; k = k.Base {
		if k.Type == t && k.Clone != nil {
			return k.Clone(recv), nil
		}
	}
	if owner.Type == t {
		return owner.Clone(recv), nil
	}
	return nil, fmt.Errorf("%w: no class can clone a %T", ErrType, recv)
}
