package fake

// Flags is a fake implementation of the flags provided to a command action,
// backed by plain maps.
//
// - implements cli.Flags
type Flags struct {
	Strings map[string]string
	Ints    map[string]int
	Bools   map[string]bool
}

// NewFlags creates a new empty set of flags.
func NewFlags() Flags {
	return Flags{
		Strings: make(map[string]string),
		Ints:    make(map[string]int),
		Bools:   make(map[string]bool),
	}
}

// String implements cli.Flags.
func (f Flags) String(name string) string {
	return f.Strings[name]
}

// Int implements cli.Flags.
func (f Flags) Int(name string) int {
	return f.Ints[name]
}

// Bool implements cli.Flags.
func (f Flags) Bool(name string) bool {
	return f.Bools[name]
}
