package constants

// Cookie相关
// Cookie值格式: user_code:token
const (
	CookieCurrentUser = "current_user"
	ContextUserKey    = "current_user"
)

// 分页默认值
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// 默认动态流水保留天数
const DefaultActivityRetentionDays = 90
