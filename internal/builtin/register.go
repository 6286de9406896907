package builtin

// RegisterAll adds the standard builtins to the registry. The resolver is
// what `type` uses to report external commands.
func RegisterAll(r *Registry, resolve func(name string) (string, error)) {
	r.Register(&Echo{})
	r.Register(&Cd{})
	r.Register(&Pwd{})
	r.Register(&Type{Registry: r, Resolve: resolve})
	r.Register(&Exit{})
	r.Register(&History{})
}
