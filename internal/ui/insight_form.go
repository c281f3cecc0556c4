package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"fieldnotes/internal/domain"
)

// InsightFormResult contains the insight described by the form
type InsightFormResult struct {
	Cancelled bool
	Insight   domain.Insight
}

// InsightForm turns captured text into an insight of a chosen kind
type InsightForm struct {
	Completed bool
	excerpt   string
	form      *huh.Form
	frequency string
	keys      *KeyMap
	kind      string
	label     string
	note      string
	result    InsightFormResult
	sessionID string
	severity  string
	speaker   string
}

// NewInsightForm creates the dialog. Quote is preselected with the
// participant as speaker.
func NewInsightForm(sessionID, excerpt, speaker string, keys *KeyMap) *InsightForm {
	f := &InsightForm{
		excerpt:   excerpt,
		frequency: "1",
		keys:      keys,
		kind:      string(domain.InsightQuote),
		sessionID: sessionID,
		severity:  string(domain.SeverityMedium),
		speaker:   speaker,
	}

	kindOptions := make([]huh.Option[string], 0, len(domain.InsightKinds))
	for _, k := range domain.InsightKinds {
		kindOptions = append(kindOptions, huh.NewOption(strings.ReplaceAll(string(k), "_", " "), string(k)))
	}
	severityOptions := make([]huh.Option[string], 0, len(domain.Severities))
	for _, s := range domain.Severities {
		severityOptions = append(severityOptions, huh.NewOption(string(s), string(s)))
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Excerpt").
				Description(truncate(excerpt, 200)),
			huh.NewSelect[string]().
				Title("Kind").
				Options(kindOptions...).
				Value(&f.kind),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Note").
				Value(&f.note),
		).WithHideFunc(f.hiddenUnless(domain.InsightObservation)),
		huh.NewGroup(
			huh.NewInput().
				Title("Pattern label").
				Value(&f.label).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("label required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Frequency").
				Value(&f.frequency).
				Validate(validateFrequency),
		).WithHideFunc(f.hiddenUnless(domain.InsightPattern)),
		huh.NewGroup(
			huh.NewInput().
				Title("Speaker").
				Value(&f.speaker),
		).WithHideFunc(f.hiddenUnless(domain.InsightQuote)),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Severity").
				Options(severityOptions...).
				Value(&f.severity),
		).WithHideFunc(f.hiddenUnless(domain.InsightPainPoint)),
	)

	return f
}

func (f *InsightForm) hiddenUnless(kind domain.InsightKind) func() bool {
	return func() bool { return f.kind != string(kind) }
}

func validateFrequency(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return fmt.Errorf("frequency must be a positive number")
	}
	return nil
}

func (f *InsightForm) Init() tea.Cmd {
	return f.form.Init()
}

func (f *InsightForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, f.keys.Application.Back, f.keys.Application.ForceQuit) {
			f.result.Cancelled = true
			f.Completed = true
			return f, nil
		}
	}

	form, cmd := f.form.Update(msg)
	if updated, ok := form.(*huh.Form); ok {
		f.form = updated
	}

	switch f.form.State {
	case huh.StateCompleted:
		f.result.Insight = f.buildInsight()
		f.Completed = true
		return f, nil
	case huh.StateAborted:
		f.result.Cancelled = true
		f.Completed = true
		return f, nil
	}

	return f, cmd
}

func (f *InsightForm) View() string {
	return f.form.View()
}

// Result returns the form result
func (f *InsightForm) Result() InsightFormResult {
	return f.result
}

// buildInsight maps the form fields onto the variant for the chosen kind
func (f *InsightForm) buildInsight() domain.Insight {
	insight := domain.Insight{Excerpt: f.excerpt, SessionID: f.sessionID}

	switch domain.InsightKind(f.kind) {
	case domain.InsightObservation:
		insight.Detail = domain.Observation{Note: strings.TrimSpace(f.note)}
	case domain.InsightPattern:
		frequency, _ := strconv.Atoi(strings.TrimSpace(f.frequency))
		insight.Detail = domain.Pattern{Frequency: max(frequency, 1), Label: strings.TrimSpace(f.label)}
	case domain.InsightQuote:
		insight.Detail = domain.Quote{Speaker: strings.TrimSpace(f.speaker)}
	case domain.InsightPainPoint:
		insight.Detail = domain.PainPoint{Severity: domain.Severity(f.severity)}
	}

	return insight
}
