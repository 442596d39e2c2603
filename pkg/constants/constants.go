package constants

const (
	IMAGE_CODE_REDIS_EXPIRES = 300 // 图片验证码 redis 有效期（秒）
	SMS_CODE_REDIS_EXPIRES   = 300 // 短信验证码 redis 有效期（秒）
	SMS_CODE_LENGTH          = 6   // 短信验证码位数

	IMAGE_CODE_KEY_PREFIX = "ImageCodeId_" // 图片验证码 key 前缀
	SMS_CODE_KEY_PREFIX   = "SMS_"         // 短信验证码 key 前缀

	SESSION_USER_ID   = "user_id"
	SESSION_MOBILE    = "mobile"
	SESSION_NICK_NAME = "nick_name"
)
