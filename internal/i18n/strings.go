package i18n

// Strings is the full set of display text for one language.
type Strings struct {
	Nav         NavStrings         `json:"nav"`
	Dashboard   DashboardStrings   `json:"dashboard"`
	Research    ResearchStrings    `json:"research"`
	Academy     AcademyStrings     `json:"academy"`
	Diagnostics DiagnosticsStrings `json:"diagnostics"`
	Settings    SettingsStrings    `json:"settings"`
	Assistant   AssistantStrings   `json:"assistant"`
}

type NavStrings struct {
	Dashboard   string `json:"dashboard"`
	ResearchHub string `json:"researchHub"`
	Academy     string `json:"academy"`
	Diagnostics string `json:"diagnostics"`
	Settings    string `json:"settings"`
}

type PeriodStrings struct {
	Daily   string `json:"daily"`
	Monthly string `json:"monthly"`
	Yearly  string `json:"yearly"`
}

type DashboardStrings struct {
	Title          string        `json:"title"`
	Subtitle       string        `json:"subtitle"`
	Periods        PeriodStrings `json:"periods"`
	ChartTitle     string        `json:"chartTitle"`
	FeedTitle      string        `json:"feedTitle"`
	MarketingTitle string        `json:"marketingTitle"`
	VsLastMonth    string        `json:"vsLastMonth"`
}

type TableStrings struct {
	Metric     string `json:"metric"`
	Scope      string `json:"scope"`
	Value      string `json:"value"`
	Confidence string `json:"confidence"`
	Source     string `json:"source"`
}

type ResearchStrings struct {
	Title             string       `json:"title"`
	Subtitle          string       `json:"subtitle"`
	SearchPlaceholder string       `json:"searchPlaceholder"`
	DataExplorer      string       `json:"dataExplorer"`
	KnowledgeBase     string       `json:"knowledgeBase"`
	Filters           string       `json:"filters"`
	ViewAll           string       `json:"viewAll"`
	Table             TableStrings `json:"table"`
}

type AcademyStrings struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	LevelInfo string `json:"levelInfo"`
	Progress  string `json:"progress"`
	Start     string `json:"start"`
	Resume    string `json:"resume"`
}

type DiagnosticsStrings struct {
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	ModuleHealth string `json:"moduleHealth"`
	Security     string `json:"security"`
	Uptime       string `json:"uptime"`
	Audit        string `json:"audit"`
	Alerts       string `json:"alerts"`
	Version      string `json:"version"`
	Maintenance  string `json:"maintenance"`
}

type SettingsStrings struct {
	Title      string `json:"title"`
	Restricted string `json:"restricted"`
}

type AssistantStrings struct {
	Title       string `json:"title"`
	Greeting    string `json:"greeting"`
	Placeholder string `json:"placeholder"`
	Thinking    string `json:"thinking"`
	Footer      string `json:"footer"`
}
