package command

// HelpWord is the command word for showing usage help.
const HelpWord = "help"

// HelpUsage describes the help command syntax.
const HelpUsage = HelpWord + ": Shows program usage instructions.\n" +
	"Example: " + HelpWord

// ExitWord is the command word for leaving the program.
const ExitWord = "exit"

// ExitUsage describes the exit command syntax.
const ExitUsage = ExitWord + ": Exits the program.\n" +
	"Example: " + ExitWord

// Help asks the shell to display usage help.
type Help struct{}

// Execute signals the help hint.
func (c Help) Execute(ctx *Context) (Result, error) {
	return Result{Feedback: "Opened help window.", ShowHelp: true}, nil
}

// Exit asks the shell to terminate.
type Exit struct{}

// Execute signals the exit hint.
func (c Exit) Execute(ctx *Context) (Result, error) {
	return Result{Feedback: "Exiting TutorTrack as requested ...", Exit: true}, nil
}
