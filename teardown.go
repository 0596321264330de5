package overlayscroll

// Teardown is an ordered list of cleanup closures. Observers and gestures
// register their cleanup here; Run executes them in registration order.
//
// The zero value is ready to use.
type Teardown struct {
	fns []func()
}

// Add appends cleanup closures. nil entries are ignored.
func (td *Teardown) Add(fns ...func()) {
	for _, fn := range fns {
		if fn != nil {
			td.fns = append(td.fns, fn)
		}
	}
}

// Len returns the number of pending closures.
func (td *Teardown) Len() int {
	return len(td.fns)
}

// Run calls every registered closure in order and clears the list.
// Calling Run again (or from within one of the closures) is a no-op for the
// closures already run.
func (td *Teardown) Run() {
	fns := td.fns
	td.fns = nil
	for _, fn := range fns {
		fn()
	}
}

// Func returns Run as a plain closure, suitable to be handed out as an
// "off" function.
func (td *Teardown) Func() func() {
	return td.Run
}
