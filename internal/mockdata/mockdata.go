// Package mockdata holds the hard-coded figures shown on the dashboard screens.
package mockdata

import (
	"fmt"

	"esg-sunshine/internal/domain"
)

// pick returns zh when lang is Traditional Chinese and en otherwise.
func pick(lang domain.Language, zh, en string) string {
	if lang == domain.LanguageZhTW {
		return zh
	}
	return en
}

func Metrics(lang domain.Language) []domain.Metric {
	return []domain.Metric{
		{ID: "1", Label: pick(lang, "碳排減少 (Carbon Reduction)", "Carbon Reduction"), Value: "1,240 tCO2e", Change: 12.5, Trend: domain.TrendUp, Color: domain.ColorEmerald},
		{ID: "2", Label: pick(lang, "ESG 評分 (ESG Score)", "ESG Score"), Value: "88.4", Change: 4.2, Trend: domain.TrendUp, Color: domain.ColorGold},
		{ID: "3", Label: pick(lang, "治理指數 (Governance Idx)", "Governance Idx"), Value: "92.1", Change: 1.1, Trend: domain.TrendNeutral, Color: domain.ColorPurple},
		{ID: "4", Label: pick(lang, "社會影響力 (Social Impact)", "Social Impact"), Value: "High", Change: -0.5, Trend: domain.TrendDown, Color: domain.ColorBlue},
	}
}

func Courses(lang domain.Language) []domain.Course {
	return []domain.Course{
		{ID: "c1", Title: pick(lang, "範疇三排放精通 (Scope 3 Emissions Mastery)", "Scope 3 Emissions Mastery"), Category: pick(lang, "碳管理 (Carbon Mgmt)", "Carbon Mgmt"), Level: domain.LevelAdvanced, Progress: 45, Thumbnail: "https://picsum.photos/400/220?random=1", Duration: "2h 15m"},
		{ID: "c2", Title: pick(lang, "CSRD 合規基礎 (CSRD Compliance Basics)", "CSRD Compliance Basics"), Category: pick(lang, "報告 (Reporting)", "Reporting"), Level: domain.LevelBeginner, Progress: 100, Thumbnail: "https://picsum.photos/400/220?random=2", Duration: "2h 15m"},
		{ID: "c3", Title: pick(lang, "綠色金融策略 (Green Finance Strategies)", "Green Finance Strategies"), Category: pick(lang, "金融 (Finance)", "Finance"), Level: domain.LevelIntermediate, Progress: 12, Thumbnail: "https://picsum.photos/400/220?random=3", Duration: "2h 15m"},
	}
}

// Health module names stay in English for every language.
func Health(_ domain.Language) []domain.SystemHealth {
	return []domain.SystemHealth{
		{Module: "Intelligence Orchestrator", Status: domain.HealthHealthy, LatencyMS: 45},
		{Module: "Data Verification Engine", Status: domain.HealthHealthy, LatencyMS: 120},
		{Module: "Regulatory RAG", Status: domain.HealthWarning, LatencyMS: 350},
		{Module: "Graph Database", Status: domain.HealthHealthy, LatencyMS: 20},
	}
}

func Chart() []domain.ChartPoint {
	return []domain.ChartPoint{
		{Name: "Jan", Value: 400, Baseline: 300},
		{Name: "Feb", Value: 300, Baseline: 320},
		{Name: "Mar", Value: 550, Baseline: 350},
		{Name: "Apr", Value: 480, Baseline: 380},
		{Name: "May", Value: 390, Baseline: 400},
		{Name: "Jun", Value: 650, Baseline: 420},
	}
}

func Feed() []domain.FeedItem {
	return []domain.FeedItem{
		{Title: "Anomaly Detected", Detail: "Energy spike in Plant B exceeding baseline by 15%.", Color: domain.ColorGold},
		{Title: "Goal Achieved", Detail: "Q2 Water reduction target met ahead of schedule.", Color: domain.ColorEmerald},
		{Title: "New Regulation", Detail: "EU CSRD update detected in regulatory crawler.", Color: domain.ColorPurple},
	}
}

func ResearchRows() []domain.ResearchRow {
	rows := make([]domain.ResearchRow, 0, 5)
	for i := 1; i <= 5; i++ {
		rows = append(rows, domain.ResearchRow{
			Metric:     fmt.Sprintf("Carbon Emission Factor %d", i),
			Scope:      "Scope 3",
			Value:      fmt.Sprintf("12.%d tCO2e", i),
			Confidence: 80 + i*2,
			Source:     "Internal Audit",
		})
	}
	return rows
}

func KnowledgeDocs() []domain.KnowledgeDoc {
	titles := []string{"TCFD Implementation Guide v2.1", "GRI 2024 Standards Update", "Internal Water Policy Doc"}
	docs := make([]domain.KnowledgeDoc, 0, len(titles))
	for _, t := range titles {
		docs = append(docs, domain.KnowledgeDoc{Title: t, Format: "PDF", Size: "2.4MB", Verified: true})
	}
	return docs
}

func SecurityStats() []domain.SecurityStat {
	return []domain.SecurityStat{
		{Key: "uptime", Value: "99.9%"},
		{Key: "audit", Value: "Pass"},
		{Key: "alerts", Value: "0"},
		{Key: "version", Value: "v12.0.4"},
	}
}

// MaintenanceNotice is the scheduled-maintenance banner on the diagnostics screen.
const MaintenanceNotice = "Data Verification Engine update scheduled for 03:00 UTC. No downtime expected."

// CampaignViewRate is the marketing impact figure on the dashboard.
const CampaignViewRate = "42%"
