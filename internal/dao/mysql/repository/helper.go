package repository

import (
	"news_server/pkg/errorx"
)

// wrapDBError 包装数据库错误为 DBERR，保留底层错误供日志追溯
func wrapDBError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errorx.Wrap(err, errorx.CodeDBError, msg)
}
