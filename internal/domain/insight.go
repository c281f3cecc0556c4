package domain

import (
	"fmt"
	"strings"
	"time"
)

// InsightKind identifies which variant an Insight carries
type InsightKind string

const (
	InsightObservation InsightKind = "observation"
	InsightPainPoint   InsightKind = "pain_point"
	InsightPattern     InsightKind = "pattern"
	InsightQuote       InsightKind = "quote"
)

// InsightKinds lists every insight kind in display order
var InsightKinds = []InsightKind{InsightObservation, InsightPattern, InsightQuote, InsightPainPoint}

// ParseInsightKind converts user input to an InsightKind ("pain-point" is accepted)
func ParseInsightKind(s string) (InsightKind, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, k := range InsightKinds {
		if string(k) == normalized {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidInsightKind, s)
}

// Severity ranks pain points and workflow task pain levels
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
)

// Severities lists severity tiers from most to least severe
var Severities = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

// Rank returns a sortable weight (higher is more severe, 0 for unknown values)
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

// ParseSeverity converts user input to a Severity
func ParseSeverity(s string) (Severity, error) {
	normalized := Severity(strings.ToLower(strings.TrimSpace(s)))
	if normalized.Rank() == 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidSeverity, s)
	}
	return normalized, nil
}

// InsightDetail is the kind-specific part of an Insight.
// Implemented only by Observation, Pattern, Quote and PainPoint.
type InsightDetail interface {
	Kind() InsightKind
}

// Observation is a researcher's note about something seen in a session
type Observation struct {
	Note string
}

// Pattern is a recurring behaviour seen across the session
type Pattern struct {
	Frequency int
	Label     string
}

// Quote is a verbatim excerpt attributed to a speaker
type Quote struct {
	Speaker string
}

// PainPoint is a problem the participant ran into
type PainPoint struct {
	Severity Severity
}

func (Observation) Kind() InsightKind { return InsightObservation }
func (Pattern) Kind() InsightKind     { return InsightPattern }
func (Quote) Kind() InsightKind       { return InsightQuote }
func (PainPoint) Kind() InsightKind   { return InsightPainPoint }

// Insight is a derived finding attached to a session, tied to a source text excerpt
type Insight struct {
	CreatedAt time.Time
	Detail    InsightDetail
	Excerpt   string
	ID        string
	SessionID string
}

// Kind returns the variant of the insight
func (i Insight) Kind() InsightKind {
	if i.Detail == nil {
		return ""
	}
	return i.Detail.Kind()
}

// Validate checks the invariants shared by every insight kind
func (i Insight) Validate() error {
	if i.SessionID == "" {
		return fmt.Errorf("%w: insight requires a session id", ErrInvalidInput)
	}
	if i.Detail == nil {
		return fmt.Errorf("%w: missing detail", ErrInvalidInsightKind)
	}
	if strings.TrimSpace(i.Excerpt) == "" {
		return fmt.Errorf("%w: insight requires a source excerpt", ErrInvalidInput)
	}
	if pp, ok := i.Detail.(PainPoint); ok && pp.Severity.Rank() == 0 {
		return fmt.Errorf("%w: %q", ErrInvalidSeverity, pp.Severity)
	}
	return nil
}
