package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	UnprocessableEntity = 422
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("参数错误")
	ErrUserNotFound      = errors.New("用户不存在")
	ErrUsernameExist     = errors.New("用户已存在")
	ErrEmailExist        = errors.New("邮箱已存在")
	ErrPasswordIncorrect = errors.New("密码不正确")
	ErrTokenInvalid      = errors.New("token 无效或已过期")
	ErrSubscribeSelf     = errors.New("用户不能订阅自己")
	ErrVideoNotFound     = errors.New("视频不存在")
	ErrCommentNotFound   = errors.New("评论不存在")
	ErrNotOwner          = errors.New("没有操作权限")
	ErrFileNotSupported  = errors.New("不支持的文件类型")
	UnExpectedError      = errors.New("系统异常，请稍后重试")
)

// ErrorMap 业务错误到 HTTP 状态码的映射：
// 校验/冲突/非法操作 422，鉴权 401，越权 403，实体不存在 404
var ErrorMap = map[error]int{
	ErrParamInvalid:      UnprocessableEntity,
	ErrUserNotFound:      NotFound,
	ErrUsernameExist:     UnprocessableEntity,
	ErrEmailExist:        UnprocessableEntity,
	ErrPasswordIncorrect: UnprocessableEntity,
	ErrTokenInvalid:      Unauthorized,
	ErrSubscribeSelf:     UnprocessableEntity,
	ErrVideoNotFound:     NotFound,
	ErrCommentNotFound:   NotFound,
	ErrNotOwner:          Forbidden,
	ErrFileNotSupported:  UnprocessableEntity,
	UnExpectedError:      InternalServerError,
}
