package vtpool

// Option configures a Pool.
type Option func(*poolOptions)

type poolOptions struct {
	emitter    Emitter
	versionFn  VersionFunc
	permissive bool
}

func defaultPoolOptions() *poolOptions {
	return &poolOptions{
		emitter:   NopEmitter{},
		versionFn: SHA1Version,
	}
}

// WithEmitter routes diagnostics from the pool and its objects to e.
func WithEmitter(e Emitter) Option {
	return func(o *poolOptions) {
		if e != nil {
			o.emitter = e
		}
	}
}

// WithVersionFunc replaces the version tag computation applied after a
// successful parse.
func WithVersionFunc(fn VersionFunc) Option {
	return func(o *poolOptions) {
		if fn != nil {
			o.versionFn = fn
		}
	}
}

// WithPermissiveTypes makes Parse tolerate unsupported object types instead
// of failing. The pool format is not self-delimiting, so an unsupported
// record cannot be skipped; permissive parsing stops cleanly in front of the
// first unsupported record, keeps everything decoded before it and emits a
// warning. Strict parsing is the default: a display missing objects it was
// told exist is a correctness problem for the operator.
func WithPermissiveTypes() Option {
	return func(o *poolOptions) {
		o.permissive = true
	}
}
