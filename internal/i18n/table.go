package i18n

import (
	"golang.org/x/text/language"

	"esg-sunshine/internal/domain"
)

var table = map[domain.Language]Strings{
	domain.LanguageEnUS: {
		Nav: NavStrings{
			Dashboard:   "Dashboard",
			ResearchHub: "Research Hub",
			Academy:     "Academy",
			Diagnostics: "Diagnostics",
			Settings:    "Settings",
		},
		Dashboard: DashboardStrings{
			Title:          "Executive Dashboard",
			Subtitle:       "Real-time sustainability performance overview.",
			Periods:        PeriodStrings{Daily: "Daily", Monthly: "Monthly", Yearly: "Yearly"},
			ChartTitle:     "Emissions vs Baseline",
			FeedTitle:      "Intelligence Feed",
			MarketingTitle: "Marketing Impact",
			VsLastMonth:    "vs last month",
		},
		Research: ResearchStrings{
			Title:             "Research Hub",
			Subtitle:          "Deep dive into data and regulatory frameworks.",
			SearchPlaceholder: "Search regulations, data points, or documents...",
			DataExplorer:      "Data Explorer",
			KnowledgeBase:     "Knowledge Base",
			Filters:           "Filters",
			ViewAll:           "View All Documents",
			Table: TableStrings{
				Metric:     "Metric",
				Scope:      "Scope",
				Value:      "Value",
				Confidence: "Confidence",
				Source:     "Source",
			},
		},
		Academy: AcademyStrings{
			Title:     "Sustainability Academy",
			Subtitle:  "Upskill your team with curated ESG learning paths.",
			LevelInfo: "Level 12 • 4 Badges",
			Progress:  "Progress",
			Start:     "Start",
			Resume:    "Resume",
		},
		Diagnostics: DiagnosticsStrings{
			Title:        "System Diagnostics",
			Subtitle:     "Platform health and intelligence verification status.",
			ModuleHealth: "Module Health",
			Security:     "Security & Compliance",
			Uptime:       "Uptime",
			Audit:        "SOC2 Audit",
			Alerts:       "Critical Alerts",
			Version:      "Version",
			Maintenance:  "Maintenance Scheduled",
		},
		Settings: SettingsStrings{
			Title:      "Settings",
			Restricted: "Configuration panel is restricted in Demo mode.",
		},
		Assistant: AssistantStrings{
			Title:       "Intelligence Orchestrator",
			Greeting:    "Greetings. I am your Intelligence Orchestrator. How can I assist with your ESG transformation today?",
			Placeholder: "Ask about TCFD, Carbon Data, or Generate Reports...",
			Thinking:    "Agentic thinking...",
			Footer:      "Powered by Gemini 2.5 Flash • Agentic RAG Enabled",
		},
	},
	domain.LanguageZhTW: {
		Nav: NavStrings{
			Dashboard:   "儀表板 (Dashboard)",
			ResearchHub: "研究中心 (Research Hub)",
			Academy:     "永續學院 (Academy)",
			Diagnostics: "系統診斷 (Diagnostics)",
			Settings:    "設定 (Settings)",
		},
		Dashboard: DashboardStrings{
			Title:          "企業決策儀表板 (Executive Dashboard)",
			Subtitle:       "即時永續績效概覽 (Real-time sustainability performance overview)",
			Periods:        PeriodStrings{Daily: "日 (Daily)", Monthly: "月 (Monthly)", Yearly: "年 (Yearly)"},
			ChartTitle:     "排放量 vs 基準線 (Emissions vs Baseline)",
			FeedTitle:      "智慧情報流 (Intelligence Feed)",
			MarketingTitle: "行銷影響力 (Marketing Impact)",
			VsLastMonth:    "與上月相比 (vs last month)",
		},
		Research: ResearchStrings{
			Title:             "研究中心 (Research Hub)",
			Subtitle:          "深入挖掘數據與法規框架 (Deep dive into data and regulatory frameworks)",
			SearchPlaceholder: "搜尋法規、數據點或文件 (Search regulations, data points...)",
			DataExplorer:      "數據探索器 (Data Explorer)",
			KnowledgeBase:     "知識庫 (Knowledge Base)",
			Filters:           "篩選 (Filters)",
			ViewAll:           "查看所有文件 (View All)",
			Table: TableStrings{
				Metric:     "指標 (Metric)",
				Scope:      "範疇 (Scope)",
				Value:      "數值 (Value)",
				Confidence: "信心度 (Confidence)",
				Source:     "來源 (Source)",
			},
		},
		Academy: AcademyStrings{
			Title:     "永續學院 (Sustainability Academy)",
			Subtitle:  "提升團隊 ESG 技能 (Upskill your team with curated ESG learning paths)",
			LevelInfo: "等級 12 • 4 徽章",
			Progress:  "進度 (Progress)",
			Start:     "開始 (Start)",
			Resume:    "繼續 (Resume)",
		},
		Diagnostics: DiagnosticsStrings{
			Title:        "系統診斷 (System Diagnostics)",
			Subtitle:     "平台健康與智慧驗證狀態 (Platform health and intelligence verification status)",
			ModuleHealth: "模組健康度 (Module Health)",
			Security:     "安全與合規 (Security & Compliance)",
			Uptime:       "運行時間 (Uptime)",
			Audit:        "SOC2 稽核 (Audit)",
			Alerts:       "關鍵警報 (Critical Alerts)",
			Version:      "版本 (Version)",
			Maintenance:  "排程維護 (Maintenance Scheduled)",
		},
		Settings: SettingsStrings{
			Title:      "設定 (Settings)",
			Restricted: "演示模式中設定面板受限。",
		},
		Assistant: AssistantStrings{
			Title:       "Intelligence Orchestrator",
			Greeting:    "您好。我是您的 Intelligence Orchestrator (智慧協作中樞)。今天能協助您進行哪些 ESG 轉型任務？",
			Placeholder: "詢問關於 TCFD、碳數據或生成報告...",
			Thinking:    "Agent 思考規劃中...",
			Footer:      "Powered by Gemini 2.5 Flash • Agentic RAG Enabled",
		},
	},
}

var matcher = language.NewMatcher([]language.Tag{
	domain.LanguageZhTW.Tag(),
	domain.LanguageEnUS.Tag(),
})

// For returns the strings for lang, falling back to the default language.
func For(lang domain.Language) Strings {
	if s, ok := table[lang]; ok {
		return s
	}
	return table[domain.DefaultLanguage]
}

// Match picks the supported language that best fits an Accept-Language header.
func Match(acceptLanguage string) domain.Language {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return domain.DefaultLanguage
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return domain.DefaultLanguage
	}
	return domain.SupportedLanguages[idx]
}
