package templatest

// Templates is the process-wide collection populated by Register and MustRegister.
var Templates = NewRegistered()

// Register adds p to Templates and returns it unchanged, so registration can sit
// alongside the provider's declaration.
func Register[P Provider](p P) (P, error) {
	if err := Templates.Register(p); err != nil {
		return p, err
	}
	return p, nil
}

// MustRegister is like Register but panics on a name conflict.
// Intended for package-level declarations:
//
//	var _ = templatest.MustRegister(HelloWorld{})
func MustRegister[P Provider](p P) P {
	if _, err := Register(p); err != nil {
		panic(err)
	}
	return p
}
