package algebra

// Env is an insertion-ordered binding environment produced by Match: a
// pattern capture `?name` that is seen for the first time records its
// binding here; a capture seen again must structurally Equal whatever was
// bound before it, or the match fails. Mirrors the original C source's
// Bindings (a flat, linearly-searched append-only array).
type Env struct {
	keys []string
	vals []*Expr
}

// Get returns the expression bound to name, if any.
func (env *Env) Get(name string) (*Expr, bool) {
	for i, k := range env.keys {
		if k == name {
			return env.vals[i], true
		}
	}
	return nil, false
}

func (env *Env) bind(name string, e *Expr) {
	env.keys = append(env.keys, name)
	env.vals = append(env.vals, e)
}

// PatternAny returns the wildcard pattern node, matching any term without
// binding it.
func PatternAny() *Expr {
	return Var("_")
}

// PatternCapture returns a pattern node that matches any term and binds it
// to name in the Env passed to Match (or requires it to Equal a previous
// binding under the same name). Unlike the original C source's fixed
// 31-byte name buffer, name is an ordinary Go string with no length limit.
func PatternCapture(name string) *Expr {
	return Var("?" + name)
}

// Match reports whether term matches pattern, recording captures into env.
// env is not cleared on entry — mirrors sa_match's env->len = 0, translated
// to "pass a fresh *Env per top-level match call" since Go has no
// reach-into-caller's-struct equivalent of that reset worth keeping.
func Match(pattern, term *Expr, env *Env) bool {
	if pattern == nil || term == nil {
		return false
	}

	if pattern.Kind == KindVar {
		switch {
		case pattern.Name == "_":
			return true
		case len(pattern.Name) > 0 && pattern.Name[0] == '?':
			name := pattern.Name[1:]
			if existing, ok := env.Get(name); ok {
				return Equal(existing, term)
			}
			env.bind(name, term)
			return true
		}
	}

	if pattern.Kind != term.Kind {
		return false
	}

	switch pattern.Kind {
	case KindConst:
		return pattern.Value == term.Value
	case KindVar:
		return pattern.Name == term.Name
	case KindPower:
		return Match(pattern.Base, term.Base, env) && Match(pattern.Exp, term.Exp, env)
	case KindSum, KindProduct:
		if len(pattern.Args) != len(term.Args) {
			return false
		}
		for i := range pattern.Args {
			if !Match(pattern.Args[i], term.Args[i], env) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Equal reports whether a and b are structurally identical expression
// trees (no pattern semantics: "_" and "?name" compare as ordinary
// variable names here).
func Equal(a, b *Expr) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindConst:
		return a.Value == b.Value
	case KindVar:
		return a.Name == b.Name
	case KindPower:
		return Equal(a.Base, b.Base) && Equal(a.Exp, b.Exp)
	case KindSum, KindProduct:
		if len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
