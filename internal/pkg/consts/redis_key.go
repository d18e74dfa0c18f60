package consts

// 本地存储 key
const (
	TokenKey   = "token"
	ProfileKey = "userProfile"
)
