// Code constants organized by phase.
package report

const (
	// Loader / module graph errors (LDR###)
	LDR001ModuleNotFound     = "LDR001"
	LDR002CircularDependency = "LDR002"

	// Semantic analysis errors (SEMA###)
	SEMA001Redefinition           = "SEMA001"
	SEMA002SymbolNotFound         = "SEMA002"
	SEMA003ModuleNotFound         = "SEMA003"
	SEMA004TypeMismatch           = "SEMA004"
	SEMA005CantCoerceIntLiteral   = "SEMA005"
	SEMA006CantCoerceFloatLiteral = "SEMA006"
	SEMA007CantCoerceStringLiteral = "SEMA007"
	SEMA008DefCycle               = "SEMA008"
	SEMA009DuplicateStructField   = "SEMA009"
	SEMA010MissingStructField     = "SEMA010"
	SEMA011AmbiguousOverload      = "SEMA011"
	SEMA012NoMatchingOverload     = "SEMA012"

	// Resource analysis errors (RES###)
	RES001UseAfterMove = "RES001"

	// SSA construction errors (SSA###) — internal/assertion-failure class
	SSA001MalformedTerminator = "SSA001"
)

// Phase name constants, used as the Report.Phase value.
const (
	PhaseLoader    = "loader"
	PhaseSema      = "sema"
	PhaseResources = "resources"
	PhaseSSA       = "ssa"
)
