package validate

import "regexp"

// mobilePattern 手机号：1 开头，第二位为 3/5/6/7/8，后跟 9 位数字
var mobilePattern = regexp.MustCompile(`^1[35678]\d{9}$`)

// IsMobile 校验手机号格式（整串匹配）
func IsMobile(mobile string) bool {
	return mobilePattern.MatchString(mobile)
}
