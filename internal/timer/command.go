package timer

// Command is an application-level request raised by the input router and
// consumed in the same loop iteration.
type Command interface {
	isCommand()
}

// None is the absence of a command.
type None struct{}

// Quit asks the loop to terminate after the current iteration.
type Quit struct{}

// Submit carries the raw input buffer text at the moment the commit key was
// pressed. It is validated by Apply, not by the router.
type Submit struct {
	Text string
}

// Reset returns the timer to Idle.
type Reset struct{}

func (None) isCommand()   {}
func (Quit) isCommand()   {}
func (Submit) isCommand() {}
func (Reset) isCommand()  {}
