// Package model 定义数据库实体模型
// 本文件定义用户模型，由注册流程创建
package model

import (
	"time"

	"golang.org/x/crypto/bcrypt" // 密码哈希库
	"gorm.io/gorm"
)

// UserInfo 用户信息模型
// 对应数据库 info_user 表
type UserInfo struct {
	gorm.Model // 内嵌 GORM 模型，ID 即用户唯一标识

	// NickName 用户昵称，注册时默认使用手机号
	NickName string `gorm:"column:nick_name;type:varchar(32);uniqueIndex;not null;comment:昵称"`

	// Mobile 手机号码，唯一
	Mobile string `gorm:"column:mobile;type:char(11);uniqueIndex;not null;comment:手机号"`

	// PasswordHash bcrypt 哈希后的密码，不存储明文
	PasswordHash string `gorm:"column:password_hash;type:varchar(128);not null;comment:加密的密码"`

	// LastLogin 最后一次登录时间
	LastLogin time.Time `gorm:"column:last_login;type:datetime;comment:最后一次登录时间"`

	// RawPassword 明文密码（不存入数据库），在 BeforeSave 中加密
	RawPassword string `gorm:"-" json:"-"`
}

// TableName 指定表名
func (UserInfo) TableName() string {
	return "info_user"
}

// BeforeSave GORM Hook：在创建和更新前将 RawPassword 加密后存入 PasswordHash
func (u *UserInfo) BeforeSave(tx *gorm.DB) (err error) {
	if u.RawPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.RawPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.PasswordHash = string(hash)
		u.RawPassword = "" // 清空明文，防止泄露
	}
	return nil
}
