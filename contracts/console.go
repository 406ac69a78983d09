package contracts

// ProgressReporter renders transfer progress for a labelled download.
// Implementations own any redraw state; total is -1 when unknown.
type ProgressReporter interface {
	Report(label string, done, total int64)
	Finish(label string)
}

// Prompter asks an interactive yes/no style question and returns the first
// character of the answer. An error means no answer could be read.
type Prompter interface {
	Prompt(question string) (byte, error)
}

type Environment interface {
	LookupEnv(key string) (value string, set bool)
}

// Elevator detects an unwritable install root and relaunches the process
// with elevated privileges.
type Elevator interface {
	Writable(root string) (bool, error)
	Relaunch(executable string, args []string) error
}
