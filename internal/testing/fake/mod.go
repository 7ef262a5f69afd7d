// Package fake provides fake implementations for interfaces commonly used in
// the repository.
// The implementations offer configuration to change the behaviour when it is
// needed by a unit test, and record the calls of the functions of an object in
// some cases.
package fake

// Call is a tool to keep track of a function calls.
type Call struct {
	calls [][]interface{}
}

// Get returns the nth call ith parameter.
func (c *Call) Get(n, i int) interface{} {
	return c.calls[n][i]
}

// Len returns the number of calls.
func (c *Call) Len() int {
	return len(c.calls)
}

// Add adds a call to the list.
func (c *Call) Add(args ...interface{}) {
	c.calls = append(c.calls, args)
}
