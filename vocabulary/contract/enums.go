package contract

// PartyType identifies a contract party named in the General Conditions.
type PartyType string

const (
	// PartyEmployer is the party commissioning the Works.
	PartyEmployer PartyType = "Employer"

	// PartyContractor is the party executing the Works.
	PartyContractor PartyType = "Contractor"

	// PartyEngineer administers the contract on the Employer's behalf.
	PartyEngineer PartyType = "Engineer"

	// PartySubcontractor is a party nominated or engaged under Clause 5.
	PartySubcontractor PartyType = "Subcontractor"

	// PartyDAB is the Dispute Adjudication Board.
	PartyDAB PartyType = "DAB"
)

// ActionType is the modal verb that signals an obligation.
// Mandatory (shall/must) and optional/future (may/will) modality is
// semantically significant and is preserved verbatim in output.
type ActionType string

const (
	// ActionShall marks a mandatory obligation.
	ActionShall ActionType = "shall"

	// ActionMust marks a mandatory obligation.
	ActionMust ActionType = "must"

	// ActionMay marks an optional entitlement.
	ActionMay ActionType = "may"

	// ActionWill marks a future commitment.
	ActionWill ActionType = "will"
)

// CategoryType classifies a clause by subject matter.
type CategoryType string

const (
	// CategoryAdministrative is the default when no other bucket matches.
	CategoryAdministrative CategoryType = "administrative"

	// CategoryTechnical covers the Works, testing, design, and materials.
	CategoryTechnical CategoryType = "technical"

	// CategoryFinancial covers payment, price, and currency provisions.
	CategoryFinancial CategoryType = "financial"

	// CategoryLegal covers disputes, termination, and liability.
	CategoryLegal CategoryType = "legal"

	// CategoryProcedural covers notices, claims, and time procedures.
	CategoryProcedural CategoryType = "procedural"
)

// ImportanceLevel ranks a clause for downstream retrieval weighting.
type ImportanceLevel string

const (
	// ImportanceHigh marks key clauses and clauses dense with obligations.
	ImportanceHigh ImportanceLevel = "high"

	// ImportanceMedium marks clauses with more than one obligation.
	ImportanceMedium ImportanceLevel = "medium"

	// ImportanceLow marks clauses with at most one obligation.
	ImportanceLow ImportanceLevel = "low"
)
