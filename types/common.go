package types

// ArgumentType names the resolver used to coerce a raw token (such as String, Integer or User).
// Values outside the built-in set are custom types and must be present in the resolver table.
type ArgumentType string

const (
	String   ArgumentType = "string"   // String is the trimmed token as-is
	Integer  ArgumentType = "integer"  // Integer is a base-10 signed integer (int64)
	Decimal  ArgumentType = "decimal"  // Decimal is a finite floating-point literal (float64)
	Boolean  ArgumentType = "boolean"  // Boolean accepts exactly "true" or "false"
	User     ArgumentType = "user"     // User is a user mention or id, resolved through the environment
	Channel  ArgumentType = "channel"  // Channel is a channel mention or id, resolved through the environment
	Role     ArgumentType = "role"     // Role is a role mention or id, resolved through the environment
	ID       ArgumentType = "id"       // ID is any mention or bare id, resolved to the id string
	Date     ArgumentType = "date"     // Date is a free-form date or timestamp (time.Time)
	Duration ArgumentType = "duration" // Duration is a Go duration literal such as 1h30m (time.Duration)
	UUID     ArgumentType = "uuid"     // UUID is an RFC 4122 identifier (uuid.UUID)
)

// String returns the string representation of an ArgumentType
func (a ArgumentType) String() string {
	return string(a)
}

// IsBuiltIn reports whether the type is resolved by the default resolver table
func (a ArgumentType) IsBuiltIn() bool {
	switch a {
	case String, Integer, Decimal, Boolean, User, Channel, Role, ID, Date, Duration, UUID:
		return true
	}

	return false
}

// MentionKind identifies the collection a mention is looked up in
type MentionKind string

const (
	MentionUser    MentionKind = "user"
	MentionChannel MentionKind = "channel"
	MentionRole    MentionKind = "role"
)

// Source records how a raw argument was bound to its schema entry
type Source int

const (
	SourceNone       Source = iota // SourceNone denotes a slot which received no value
	SourcePositional               // SourcePositional denotes a value bound by left-to-right order
	SourceLongFlag                 // SourceLongFlag denotes a value bound by --name or --name=value
	SourceShortFlag                // SourceShortFlag denotes a value bound by -n or -n=value
	SourceDefault                  // SourceDefault denotes a value taken from the entry default
)

// String returns the string representation of a Source
func (s Source) String() string {
	switch s {
	case SourcePositional:
		return "positional"
	case SourceLongFlag:
		return "long flag"
	case SourceShortFlag:
		return "short flag"
	case SourceDefault:
		return "default"
	}

	return "none"
}

// IsFlag reports whether the value was bound by a long or short flag
func (s Source) IsFlag() bool {
	return s == SourceLongFlag || s == SourceShortFlag
}

// QuoteStyle selects the quoting rules used when splitting a command string into tokens
type QuoteStyle int

const (
	// QuoteChat balances double quotes, single quotes and backticks independently. A quote which
	// never closes is kept as literal text.
	QuoteChat QuoteStyle = iota
	// QuoteShell applies POSIX shell rules (quotes, backslash escapes) and fails on unbalanced quotes.
	QuoteShell
)

// String returns the string representation of a QuoteStyle
func (q QuoteStyle) String() string {
	switch q {
	case QuoteShell:
		return "shell"
	default:
		return "chat"
	}
}

// ParseQuoteStyle maps "chat" or "shell" to a QuoteStyle. The empty string maps to QuoteChat.
func ParseQuoteStyle(s string) (QuoteStyle, bool) {
	switch s {
	case "", "chat":
		return QuoteChat, true
	case "shell":
		return QuoteShell, true
	}

	return QuoteChat, false
}
