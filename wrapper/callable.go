package wrapper

// Callable couples a function value with its introspectable identity.
// Wrapping a Callable replaces its function value while the name and
// documentation keep pointing at the original target.
type Callable[F any] struct {
	Name string
	Doc  string
	Fn   F
}

// New returns a Callable for fn with the given name and documentation.
func New[F any](name string, doc string, fn F) Callable[F] {
	return Callable[F]{Name: name, Doc: doc, Fn: fn}
}

// Describe reports the callable's name and documentation.
func (c Callable[F]) Describe() (name string, doc string) {
	return c.Name, c.Doc
}

// Map returns a copy of c whose function value is replaced by f(c.Fn).
// The name and documentation are kept.
func (c Callable[F]) Map(f func(F) F) Callable[F] {
	c.Fn = f(c.Fn)
	return c
}
