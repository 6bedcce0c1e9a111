package constants

const (
	// Header copy
	HeaderCurrentChild = "当前孩子"

	// Home screen copy
	HomeTopicsTitle       = "今日话题"
	HomeDistributionTitle = "互动时长分布"
	HomeRulesTitle        = "规则执行情况"
	HomeTasksCompleted    = "成长任务"
	HomeBadgesEarned      = "获得徽章"
	HomeRiskTitle         = "风险提醒"
	HomeTasksTitle        = "布置任务"

	// Trend card titles, shared by Home and Insights
	LearningTrendTitle = "学习趋势"
	MoodTrendTitle     = "情绪趋势"

	// Insights screen copy
	InsightsTitle           = "本周洞察与周报"
	InsightsTopicsTitle     = "高频话题占比"
	InsightsTotalTitle      = "本周互动总时长"
	InsightsAchievements    = "本周成就"
	InsightsInteraction     = "建议互动"
	InsightsHighlight       = "活动追踪"
	InsightsRecommendations = "互动建议"
	InsightsExport          = "导出PDF周报"

	// Share card detail copy
	ShareCardTypeLabel    = "类型"
	ShareCardSummaryLabel = "摘要"
	ShareCardEditAction   = "Edit with Gemini"

	// Settings screen headings
	SettingsTitle       = "设置与安全"
	SettingsDevice      = "设备管理"
	SettingsPermissions = "权限与可见性"
	SettingsGuardian    = "安全与监护"
	SettingsSafetyWord  = "安全词设置"
	SettingsSensitivity = "监护灵敏度"
	SettingsSafetyTitle = "内容安全报告"
	SettingsAbout       = "关于"
	SettingsFAQ         = "常见问题解答"
	SettingsFeedback    = "产品优化建议"
	SafetyPendingBadge  = "待处理"
	SafetySystemAction  = "系统操作"
	DeviceNamePrefix    = "LUMIBOT-"

	// Image editor copy
	EditorTitle       = "Gemini Image Editor"
	EditorNoImage     = "Upload an image to start"
	EditorPlaceholder = "e.g., 'Add a retro filter' or 'Make it a watercolor painting'"
	EditorGenerating  = "Generating..."
	EditorEmptyResult = "Your edited image will appear here"
)
