package domain

// Dashboard holds the stakeholder rollups for one project
type Dashboard struct {
	InsightCount   int
	InsightsByKind map[InsightKind]int
	PainPoints     []PainPointTier
	Personas       []PersonaRollup
	ProjectID      string
	SessionCount   int
	SessionsByType map[SessionType]int
	Workflows      []WorkflowRollup
}

// PainPointTier groups pain points sharing one severity
type PainPointTier struct {
	Items    []PainPointItem
	Severity Severity
}

// PainPointItem is a pain point excerpt and the session it came from
type PainPointItem struct {
	Excerpt   string
	InsightID string
	SessionID string
}

// PersonaRollup summarizes the sessions and insights linked to a persona
type PersonaRollup struct {
	InsightCount   int
	PainPointCount int
	Persona        Persona
	SessionCount   int
}

// WorkflowRollup is a workflow with its most severe task pain level
type WorkflowRollup struct {
	MaxPain  Severity
	Workflow Workflow
}
