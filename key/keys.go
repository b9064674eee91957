// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Stack Sizing - these keys govern the bounded operand stack.
const (
	StackCapacity = "stack.capacity"
)

// Calculator - these keys configure token evaluation and number formatting.
const (
	RPNPrecision = "rpn.precision"
	RPNSuggest   = "rpn.suggest"
)

// Session Persistence - these keys control whether the stack survives between invocations.
const (
	SessionPersist = "session.persist"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-interactive application behavior.
const (
	CliColored = "cli.colored"
)
