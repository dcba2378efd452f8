package command

// Kind classifies the outcome of an interpreted command.
type Kind int

const (
	// KindSuccess means the command dispatched and the action started.
	KindSuccess Kind = iota
	// KindRejected means the command was understood but the action refused.
	KindRejected
	// KindParseError means the input never reached dispatch.
	KindParseError
	// KindSystem means a reserved console directive (help, hint, clear).
	KindSystem
)

// ParseErrorKind classifies why parsing failed.
type ParseErrorKind int

const (
	ParseSyntax ParseErrorKind = iota
	ParseUnknownMethod
	ParseMissingNamespace
	ParseBadArgument
)

// RejectReason classifies why a well-formed command was refused.
type RejectReason int

const (
	RejectOutOfBounds RejectReason = iota
	RejectBlocked
	RejectBusy
)

// SystemAction identifies which reserved directive short-circuited.
type SystemAction int

const (
	SystemHelp SystemAction = iota
	SystemHint
	SystemClear
)

// Result is the classified outcome of one submitted command. Every
// non-empty input produces exactly one Result; nothing is dropped or
// thrown.
type Result struct {
	Kind Kind

	// Message is the learner-facing text for this outcome.
	Message string

	// Lines carries multi-line output for system actions (help, hint).
	Lines []string

	// Classification detail, valid per Kind.
	ParseError ParseErrorKind
	Reject     RejectReason
	System     SystemAction

	// Suggestion is the canonical method name for a recognized typo.
	// Only set with ParseUnknownMethod.
	Suggestion string
}

func success(msg string) Result {
	return Result{Kind: KindSuccess, Message: msg}
}

func rejected(reason RejectReason, msg string) Result {
	return Result{Kind: KindRejected, Reject: reason, Message: msg}
}

func parseError(kind ParseErrorKind, msg string) Result {
	return Result{Kind: KindParseError, ParseError: kind, Message: msg}
}
