// Package options provides a minimal generic functional-options pattern,
// reused across this module wherever a constructor takes optional
// configuration (registry.New and the asterix package's top-level
// functions).
package options

// Option configures a value of type T, returning an error if the option
// cannot be applied.
type Option[T any] interface {
	apply(T) error
}

type fn[T any] struct {
	do func(T) error
}

func (f *fn[T]) apply(target T) error {
	return f.do(target)
}

// New builds an Option from a function that can fail.
func New[T any](do func(T) error) Option[T] {
	return &fn[T]{do: do}
}

// NoError builds an Option from a function that cannot fail.
func NoError[T any](do func(T)) Option[T] {
	return &fn[T]{do: func(target T) error {
		do(target)
		return nil
	}}
}

// Apply runs every option against target in order, stopping at the first
// error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
