// Package render turns metric attributes into presentation-ready view
// models for the dashboard cells.
package render

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"esg-sunshine/internal/domain"
)

type Mode string

const (
	ModeCard  Mode = "card"
	ModeCell  Mode = "cell"
	ModeList  Mode = "list"
	ModeBadge Mode = "badge"
)

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

type DataLink string

const (
	DataLinkNone       DataLink = ""
	DataLinkLive       DataLink = "live"
	DataLinkAI         DataLink = "ai"
	DataLinkBlockchain DataLink = "blockchain"
)

var ErrInvalidCell = errors.New("render: invalid cell")

// Trend is a metric movement in percent.
type Trend struct {
	Value     float64      `json:"value"`
	Direction domain.Trend `json:"direction"`
}

// Cell is the input of Render.
type Cell struct {
	Mode       Mode         `json:"mode"`
	Label      string       `json:"label,omitempty"`
	Value      string       `json:"value,omitempty"`
	SubValue   string       `json:"subValue,omitempty"`
	Confidence Confidence   `json:"confidence,omitempty"`
	Verified   bool         `json:"verified,omitempty"`
	Loading    bool         `json:"loading,omitempty"`
	DataLink   DataLink     `json:"dataLink,omitempty"`
	Traits     []Trait      `json:"traits,omitempty"`
	Tags       []string     `json:"tags,omitempty"`
	Icon       string       `json:"icon,omitempty"`
	Color      domain.Color `json:"color,omitempty"`
	Trend      *Trend       `json:"trend,omitempty"`
}

type Theme struct {
	Border   string `json:"border"`
	Glow     string `json:"glow"`
	Text     string `json:"text"`
	IconBg   string `json:"iconBg"`
	Gradient string `json:"gradient"`
}

// Indicator is a small visual affordance such as a data-link pill or a tag.
type Indicator struct {
	Kind    string   `json:"kind"`
	Icon    string   `json:"icon,omitempty"`
	Label   string   `json:"label,omitempty"`
	Classes []string `json:"classes,omitempty"`
}

type TrendView struct {
	Value     float64      `json:"value"`
	Direction domain.Trend `json:"direction"`
	Icon      string       `json:"icon"`
	Classes   []string     `json:"classes"`
}

type ConfidenceView struct {
	Level    Confidence `json:"level"`
	Verified bool       `json:"verified"`
	Compact  bool       `json:"compact"`
	Title    string     `json:"title"`
	Dot      string     `json:"dot"`
}

type BadgeView struct {
	Width string `json:"width"`
}

// View is the rendered cell.
type View struct {
	Mode        Mode            `json:"mode"`
	Label       string          `json:"label,omitempty"`
	Value       string          `json:"value,omitempty"`
	SubValue    string          `json:"subValue,omitempty"`
	Loading     bool            `json:"loading,omitempty"`
	LoadingText string          `json:"loadingText,omitempty"`
	Icon        string          `json:"icon,omitempty"`
	Theme       Theme           `json:"theme"`
	Classes     []string        `json:"classes"`
	ValueClass  []string        `json:"valueClasses,omitempty"`
	Indicators  []Indicator     `json:"indicators,omitempty"`
	Trend       *TrendView      `json:"trend,omitempty"`
	Stable      bool            `json:"stable,omitempty"`
	Confidence  *ConfidenceView `json:"confidence,omitempty"`
	Badge       *BadgeView      `json:"badge,omitempty"`
	Traits      []Trait         `json:"traits,omitempty"`
}

var themes = map[domain.Color]Theme{
	domain.ColorEmerald: {Border: "group-hover:border-emerald-500/40", Glow: "bg-emerald-500", Text: "text-emerald-400", IconBg: "bg-emerald-500/10", Gradient: "from-emerald-500/20"},
	domain.ColorGold:    {Border: "group-hover:border-amber-500/40", Glow: "bg-amber-500", Text: "text-amber-400", IconBg: "bg-amber-500/10", Gradient: "from-amber-500/20"},
	domain.ColorPurple:  {Border: "group-hover:border-purple-500/40", Glow: "bg-purple-500", Text: "text-purple-400", IconBg: "bg-purple-500/10", Gradient: "from-purple-500/20"},
	domain.ColorBlue:    {Border: "group-hover:border-blue-500/40", Glow: "bg-blue-500", Text: "text-blue-400", IconBg: "bg-blue-500/10", Gradient: "from-blue-500/20"},
	domain.ColorSlate:   {Border: "group-hover:border-slate-400/40", Glow: "bg-slate-400", Text: "text-slate-400", IconBg: "bg-slate-500/10", Gradient: "from-slate-500/20"},
}

// ThemeFor returns the palette of c, or false when c is unknown.
func ThemeFor(c domain.Color) (Theme, bool) {
	t, ok := themes[c]
	return t, ok
}

var modeIcons = map[Mode]string{
	ModeCard: "bar-chart-3",
	ModeList: "activity",
}

func (c Cell) validate() error {
	switch c.Mode {
	case ModeCard, ModeCell, ModeList, ModeBadge:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidCell, c.Mode)
	}
	switch c.Confidence {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
	default:
		return fmt.Errorf("%w: unknown confidence %q", ErrInvalidCell, c.Confidence)
	}
	switch c.DataLink {
	case DataLinkNone, DataLinkLive, DataLinkAI, DataLinkBlockchain:
	default:
		return fmt.Errorf("%w: unknown data link %q", ErrInvalidCell, c.DataLink)
	}
	if _, ok := themes[c.Color]; !ok {
		return fmt.Errorf("%w: unknown color %q", ErrInvalidCell, c.Color)
	}
	if c.Trend != nil {
		switch c.Trend.Direction {
		case domain.TrendUp, domain.TrendDown, domain.TrendNeutral:
		default:
			return fmt.Errorf("%w: unknown trend direction %q", ErrInvalidCell, c.Trend.Direction)
		}
	}
	for _, t := range c.Traits {
		if _, ok := decorators[t]; !ok {
			return fmt.Errorf("%w: unknown trait %q", ErrInvalidCell, t)
		}
	}
	return nil
}

func (c Cell) withDefaults() Cell {
	if c.Confidence == "" {
		c.Confidence = ConfidenceHigh
	}
	if c.Color == "" {
		c.Color = domain.ColorEmerald
	}
	return c
}

// Render builds the view for c. Traits are applied as independent
// decorators after the base layout and never touch the data fields.
func Render(c Cell) (View, error) {
	c = c.withDefaults()
	if err := c.validate(); err != nil {
		return View{}, err
	}
	theme := themes[c.Color]

	if c.Loading {
		return View{
			Mode:        c.Mode,
			Loading:     true,
			LoadingText: "Initializing Omni-Component...",
			Theme:       theme,
			Classes:     []string{"p-4", "rounded-xl", "border", "border-white/5", "bg-slate-900/40"},
		}, nil
	}

	v := base(c, theme)
	traits := normalizeTraits(c.Traits)
	for _, t := range traits {
		decorators[t](&v, c)
	}
	v.Traits = traits
	return v, nil
}

func base(c Cell, theme Theme) View {
	v := View{
		Mode:     c.Mode,
		Label:    c.Label,
		Value:    c.Value,
		SubValue: c.SubValue,
		Theme:    theme,
		Icon:     c.Icon,
	}
	if v.Icon == "" {
		v.Icon = modeIcons[c.Mode]
	}

	if c.Mode == ModeBadge {
		v.Classes = []string{"flex", "items-center", "gap-2", "group", "cursor-help"}
		v.Badge = &BadgeView{Width: badgeWidth(c.Confidence)}
		if c.Verified {
			v.Indicators = append(v.Indicators, Indicator{Kind: "verified", Icon: "lock"})
		}
		return v
	}

	v.Classes = []string{"group", "relative", "overflow-hidden", "backdrop-blur-xl", "bg-slate-900/40", "border", "border-white/5", "shadow-lg", theme.Border}
	switch c.Mode {
	case ModeCard:
		v.Classes = append(v.Classes, "rounded-2xl", "p-6")
	case ModeCell:
		v.Classes = append(v.Classes, "rounded-xl", "p-4")
	case ModeList:
		v.Classes = append(v.Classes, "rounded-xl", "p-3")
	}

	if c.DataLink != DataLinkNone {
		v.Indicators = append(v.Indicators, dataLinkIndicator(c.DataLink))
	}
	if c.Trend != nil {
		v.Trend = trendView(*c.Trend)
	} else if c.Mode == ModeCard {
		v.Stable = true
	}
	v.Confidence = &ConfidenceView{
		Level:    c.Confidence,
		Verified: c.Verified,
		Compact:  c.Mode != ModeCard,
		Title:    confidenceTitle(c.Confidence, c.Verified),
		Dot:      confidenceDot(c.Confidence),
	}
	return v
}

func badgeWidth(c Confidence) string {
	switch c {
	case ConfidenceHigh:
		return "w-full"
	case ConfidenceMedium:
		return "w-2/3"
	default:
		return "w-1/3"
	}
}

func confidenceTitle(level Confidence, verified bool) string {
	title := "Data Confidence: " + strings.ToUpper(string(level))
	if verified {
		title += " (Verified)"
	}
	return title
}

func confidenceDot(level Confidence) string {
	switch level {
	case ConfidenceHigh:
		return "bg-emerald-500"
	case ConfidenceMedium:
		return "bg-amber-500"
	default:
		return "bg-red-500"
	}
}

func dataLinkIndicator(l DataLink) Indicator {
	switch l {
	case DataLinkLive:
		return Indicator{Kind: "data-link", Icon: "wifi", Label: "Live", Classes: []string{"text-emerald-400", "bg-emerald-500/10", "animate-ping"}}
	case DataLinkAI:
		return Indicator{Kind: "data-link", Icon: "bot", Label: "Agent", Classes: []string{"text-purple-400", "bg-purple-500/10"}}
	default:
		return Indicator{Kind: "data-link", Icon: "link-2", Label: "Chain", Classes: []string{"text-amber-400", "bg-amber-500/10"}}
	}
}

func trendView(t Trend) *TrendView {
	tv := &TrendView{Value: math.Abs(t.Value), Direction: t.Direction}
	switch t.Direction {
	case domain.TrendUp:
		tv.Icon = "trending-up"
		tv.Classes = []string{"text-emerald-400", "bg-emerald-500/10"}
	case domain.TrendDown:
		tv.Icon = "trending-down"
		tv.Classes = []string{"text-red-400", "bg-red-500/10"}
	default:
		tv.Icon = "minus"
		tv.Classes = []string{"text-gray-400", "bg-gray-500/10"}
	}
	return tv
}

// MetricCell maps a dashboard metric to a card cell.
func MetricCell(m domain.Metric) Cell {
	return Cell{
		Mode:  ModeCard,
		Label: m.Label,
		Value: m.Value,
		Color: m.Color,
		Icon:  metricIcons[m.Color],
		Trend: &Trend{Value: m.Change, Direction: m.Trend},
	}
}

var metricIcons = map[domain.Color]string{
	domain.ColorEmerald: "wind",
	domain.ColorGold:    "activity",
	domain.ColorPurple:  "file-text",
	domain.ColorBlue:    "zap",
}
