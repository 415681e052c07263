package insight

import "esg-sunshine/internal/domain"

const systemPromptEN = `You are the Intelligence Orchestrator for "ESG Sunshine", a high-end enterprise sustainability platform.
Your tone is professional, insightful, and encouraging.
You specialize in CSRD, GRI, TCFD, and Carbon Management.
Keep responses concise (under 150 words) unless asked for a detailed report.
Use markdown for formatting.`

const systemPromptZH = `您是 "ESG Sunshine" 的 Intelligence Orchestrator，這是一個高階企業永續平台。
您的語氣專業、富有洞察力且鼓舞人心。
您專精於 CSRD, GRI, TCFD, 和碳管理。
主要使用繁體中文 (Traditional Chinese) 回應，但在提及專業術語時，請保留或在括號中標註英文原文 (例如: 範疇三 (Scope 3))。
除非被要求提供詳細報告，否則回應請保持簡潔（150字以內）。
請使用 markdown 格式。`

// SystemPrompt returns the persona instruction for lang.
func SystemPrompt(lang domain.Language) string {
	if lang == domain.LanguageZhTW {
		return systemPromptZH
	}
	return systemPromptEN
}

// PlaceholderText is returned when no backend credential is configured.
func PlaceholderText(lang domain.Language) string {
	if lang == domain.LanguageZhTW {
		return "ESG Sunshine Agent: 請設定您的 API_KEY 以解鎖 Intelligence Orchestrator 的完整功能。(模擬回應: TCFD 建議揭露範疇一、二與三的排放...)"
	}
	return "ESG Sunshine Agent: Please configure your API_KEY to unlock the full power of the Intelligence Orchestrator. (Simulated Response: The TCFD recommends disclosing Scope 1, 2, and 3 emissions...)"
}

// EmptyResultText is returned when the backend answers with no text.
func EmptyResultText(lang domain.Language) string {
	if lang == domain.LanguageZhTW {
		return "我處理了該請求，但星雲遮蔽了結果。請再試一次。"
	}
	return "I processed that, but the nebula obscured the result. Please try again."
}
