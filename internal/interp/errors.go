package interp

// Kind identifies one entry of the closed command error taxonomy. The kind
// name appears verbatim in the reported error line.
type Kind string

const (
	KindInvalidArgument     Kind = "InvalidArgument"
	KindMissingArguments    Kind = "MissingArguments"
	KindTooManyArguments    Kind = "TooManyArguments"
	KindInvalidArgumentType Kind = "InvalidArgumentType"
	KindInvalidDateFormat   Kind = "InvalidDateFormat"
	KindInvalidRepeat       Kind = "InvalidRepeat"
	KindInvalidPriority     Kind = "InvalidPriority"
	KindInvalidDoneStatus   Kind = "InvalidDoneStatus"
	KindTaskNotFound        Kind = "TaskNotFound"
	KindTooLongLine         Kind = "TooLongLine"
)

// CommandError is a command rejection. It aborts only the current command;
// the interpreter always proceeds to the next line.
type CommandError struct {
	Kind Kind
}

func (e *CommandError) Error() string {
	return string(e.Kind)
}

var (
	errInvalidArgument     = &CommandError{Kind: KindInvalidArgument}
	errMissingArguments    = &CommandError{Kind: KindMissingArguments}
	errTooManyArguments    = &CommandError{Kind: KindTooManyArguments}
	errInvalidArgumentType = &CommandError{Kind: KindInvalidArgumentType}
	errInvalidDateFormat   = &CommandError{Kind: KindInvalidDateFormat}
	errInvalidRepeat       = &CommandError{Kind: KindInvalidRepeat}
	errInvalidPriority     = &CommandError{Kind: KindInvalidPriority}
	errInvalidDoneStatus   = &CommandError{Kind: KindInvalidDoneStatus}
	errTaskNotFound        = &CommandError{Kind: KindTaskNotFound}
	errTooLongLine         = &CommandError{Kind: KindTooLongLine}
)
