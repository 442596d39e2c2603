package random

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// captchaCharset 图片验证码字符集，去掉了易混淆的 0/O、1/I/L
const captchaCharset = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// reader 随机源
var reader io.Reader = rand.Reader

// GetRandomInt 生成 [0, max) 范围内的安全随机数
func GetRandomInt(max int64) (int64, error) {
	n, err := rand.Int(reader, big.NewInt(max))
	if err != nil {
		return 0, fmt.Errorf("read random: %w", err)
	}
	return n.Int64(), nil
}

// GetZeroPaddedCode 生成指定位数的数字验证码，不足位数在前面补 0
// 例如 length=6 时，取值范围是 000000-999999
func GetZeroPaddedCode(length int) (string, error) {
	max := int64(1)
	for i := 0; i < length; i++ {
		max *= 10
	}
	n, err := GetRandomInt(max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", length, n), nil
}

// GetCaptchaText 生成图片验证码文字（大写字母与数字混合）
func GetCaptchaText(length int) (string, error) {
	result := make([]byte, length)
	charsetLen := int64(len(captchaCharset))
	for i := range result {
		idx, err := GetRandomInt(charsetLen)
		if err != nil {
			return "", err
		}
		result[i] = captchaCharset[idx]
	}
	return string(result), nil
}
