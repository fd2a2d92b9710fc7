package consts

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err   error
	code  codes.Code
	cause error
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	if en.cause != nil {
		return en.err.Error() + ": " + en.cause.Error()
	}
	return en.err.Error()
}

func (en *Errno) Code() codes.Code {
	return en.code
}

// Unwrap 返回原始错误, 保证 errors.Is 可以找到 cause
func (en *Errno) Unwrap() error {
	return en.cause
}

// Is 同一个预定义错误 Wrap 出来的实例视为相同
func (en *Errno) Is(target error) bool {
	t, ok := target.(*Errno)
	if !ok {
		return false
	}
	return t.code == en.code && t.err == en.err
}

// Wrap 基于预定义错误附加原始错误
func (en *Errno) Wrap(cause error) *Errno {
	return &Errno{
		err:   en.err,
		code:  en.code,
		cause: cause,
	}
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// 参数错误
var (
	ErrInvalidArgument = NewErrno(codes.InvalidArgument, errors.New("invalid argument"))
)

// 数据源相关错误
var (
	ErrResourceLookup = NewErrno(codes.Unavailable, errors.New("resource lookup failed"))
	ErrNameNotBound   = NewErrno(codes.NotFound, errors.New("name not bound"))
	ErrInvalidDSN     = NewErrno(codes.InvalidArgument, errors.New("invalid dsn"))
)

// 绑定相关错误
var (
	ErrAlreadyBound = NewErrno(codes.AlreadyExists, errors.New("already bound"))
	ErrMapperKnown  = NewErrno(codes.AlreadyExists, errors.New("mapper type already known"))
	ErrNotBound     = NewErrno(codes.FailedPrecondition, errors.New("not bound"))
)
