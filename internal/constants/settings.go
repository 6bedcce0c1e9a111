package constants

const (
	// Settings screen copy
	SettingsAllowSummaryLabel = "允许查看摘要级分享"
	SettingsAllowSummaryDesc  = "孩子主动分享的内容，默认可见摘要"
	SettingsAllowSnippetLabel = "允许查看片段级分享"
	SettingsAllowSnippetDesc  = "需要您单次授权后，才能查看对话片段"
	SettingsRevokeAll         = "撤回所有未来内容的查看权限"
	SettingsSafetyNotice      = "这里只记录高风险内容的摘要，用于保护孩子的安全。所有内容都经过脱敏处理，我们鼓励您与孩子进行开放的沟通。"
	SettingsNoSafetyReports   = "暂无安全报告记录。"
	SettingsDeviceConnected   = "已连接"
	SettingsLastSync          = "上次同步: 5分钟前"

	// Share card copy
	ShareCardAutoDelete = "7天后自动删除"
	ShareCardsEmpty     = "No share cards yet."

	// Home screen copy
	RiskNeedsAttention = "需要您关注"
	RiskSuggestion     = "沟通建议"
)
