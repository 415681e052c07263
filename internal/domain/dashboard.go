package domain

// Trend is the direction of a metric change.
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// Color is a theme accent shared by metrics and cells.
type Color string

const (
	ColorEmerald Color = "emerald"
	ColorGold    Color = "gold"
	ColorPurple  Color = "purple"
	ColorBlue    Color = "blue"
	ColorSlate   Color = "slate"
)

type Metric struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Value  string  `json:"value"`
	Change float64 `json:"change"`
	Trend  Trend   `json:"trend"`
	Color  Color   `json:"color"`
}

type CourseLevel string

const (
	LevelBeginner     CourseLevel = "Beginner"
	LevelIntermediate CourseLevel = "Intermediate"
	LevelAdvanced     CourseLevel = "Advanced"
)

type Course struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Category  string      `json:"category"`
	Level     CourseLevel `json:"level"`
	Progress  int         `json:"progress"`
	Thumbnail string      `json:"thumbnail"`
	Duration  string      `json:"duration"`
}

type HealthStatus string

const (
	HealthHealthy  HealthStatus = "Healthy"
	HealthWarning  HealthStatus = "Warning"
	HealthCritical HealthStatus = "Critical"
)

type SystemHealth struct {
	Module    string       `json:"module"`
	Status    HealthStatus `json:"status"`
	LatencyMS int          `json:"latencyMs"`
}

// ChartPoint is one month of emissions against the baseline.
type ChartPoint struct {
	Name     string `json:"name"`
	Value    int    `json:"value"`
	Baseline int    `json:"baseline"`
}

type FeedItem struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Color  Color  `json:"color"`
}

type ResearchRow struct {
	Metric     string `json:"metric"`
	Scope      string `json:"scope"`
	Value      string `json:"value"`
	Confidence int    `json:"confidence"`
	Source     string `json:"source"`
}

type KnowledgeDoc struct {
	Title    string `json:"title"`
	Format   string `json:"format"`
	Size     string `json:"size"`
	Verified bool   `json:"verified"`
}

// SecurityStat is one tile of the diagnostics security panel.
type SecurityStat struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
