package app

import (
	"fmt"

	"esg-sunshine/internal/domain"
	"esg-sunshine/internal/i18n"
	"esg-sunshine/internal/mockdata"
	"esg-sunshine/internal/render"
)

// Screen is the localized model for one view. Exactly one of the view
// sections is set.
type Screen struct {
	View        domain.View        `json:"view"`
	Language    domain.Language    `json:"language"`
	Nav         i18n.NavStrings    `json:"nav"`
	Dashboard   *DashboardScreen   `json:"dashboard,omitempty"`
	Research    *ResearchScreen    `json:"research,omitempty"`
	Academy     *AcademyScreen     `json:"academy,omitempty"`
	Diagnostics *DiagnosticsScreen `json:"diagnostics,omitempty"`
	Settings    *SettingsScreen    `json:"settings,omitempty"`
}

type DashboardScreen struct {
	Strings          i18n.DashboardStrings `json:"strings"`
	Cards            []render.View         `json:"cards"`
	Chart            []domain.ChartPoint   `json:"chart"`
	Feed             []domain.FeedItem     `json:"feed"`
	CampaignViewRate string                `json:"campaignViewRate"`
}

type ResearchScreen struct {
	Strings i18n.ResearchStrings  `json:"strings"`
	Rows    []domain.ResearchRow  `json:"rows"`
	Docs    []domain.KnowledgeDoc `json:"docs"`
}

type AcademyScreen struct {
	Strings i18n.AcademyStrings `json:"strings"`
	Courses []domain.Course     `json:"courses"`
}

type DiagnosticsScreen struct {
	Strings     i18n.DiagnosticsStrings `json:"strings"`
	Health      []domain.SystemHealth   `json:"health"`
	Security    []domain.SecurityStat   `json:"security"`
	Maintenance string                  `json:"maintenance"`
}

type SettingsScreen struct {
	Strings   i18n.SettingsStrings `json:"strings"`
	Language  domain.Language      `json:"language"`
	Languages []domain.Language    `json:"languages"`
}

// Screen builds the model for v in the active language.
func (a *App) Screen(v domain.View) (Screen, error) {
	if !a.gate.Authenticated() {
		return Screen{}, ErrLoginRequired
	}
	if !v.Valid() {
		return Screen{}, fmt.Errorf("app: unknown view %q", v)
	}
	lang := a.prefs.Current()
	return BuildScreen(v, lang)
}

func BuildScreen(v domain.View, lang domain.Language) (Screen, error) {
	t := i18n.For(lang)
	s := Screen{View: v, Language: lang, Nav: t.Nav}

	switch v {
	case domain.ViewDashboard:
		metrics := mockdata.Metrics(lang)
		cards := make([]render.View, 0, len(metrics))
		for _, m := range metrics {
			card, err := render.Render(render.MetricCell(m))
			if err != nil {
				return Screen{}, fmt.Errorf("app: render metric %s: %w", m.ID, err)
			}
			cards = append(cards, card)
		}
		s.Dashboard = &DashboardScreen{
			Strings:          t.Dashboard,
			Cards:            cards,
			Chart:            mockdata.Chart(),
			Feed:             mockdata.Feed(),
			CampaignViewRate: mockdata.CampaignViewRate,
		}
	case domain.ViewResearchHub:
		s.Research = &ResearchScreen{Strings: t.Research, Rows: mockdata.ResearchRows(), Docs: mockdata.KnowledgeDocs()}
	case domain.ViewAcademy:
		s.Academy = &AcademyScreen{Strings: t.Academy, Courses: mockdata.Courses(lang)}
	case domain.ViewDiagnostics:
		s.Diagnostics = &DiagnosticsScreen{
			Strings:     t.Diagnostics,
			Health:      mockdata.Health(lang),
			Security:    mockdata.SecurityStats(),
			Maintenance: mockdata.MaintenanceNotice,
		}
	case domain.ViewSettings:
		s.Settings = &SettingsScreen{Strings: t.Settings, Language: lang, Languages: domain.SupportedLanguages}
	default:
		return Screen{}, fmt.Errorf("app: unknown view %q", v)
	}
	return s, nil
}
