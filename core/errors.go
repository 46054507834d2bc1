package core

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 打分类的"无数据"情形（未知 seed、空查询、冷启动）一律降级为空结果，
//     不走 error 通道；DomainError 只用于存储/配置等确属异常的场景
//   - 提供错误代码（Code）便于调用方分支判断
type DomainError struct {
	Code    string // 错误代码（如 "NOT_FOUND", "INVALID_INPUT"）
	Message string // 错误消息
	Module  string // 模块名称（如 "store", "pipeline"）
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError 创建新的领域错误。
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// GetDomainError 获取 DomainError，如果不是则返回 nil。
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr
	}
	return nil
}

// 错误代码常量
const (
	ErrorCodeNotFound = "NOT_FOUND" // 资源不存在
)

// 模块名称常量
const (
	ModuleStore = "store"
)

// ErrStoreNotFound 是存储层的"键不存在"标准错误。
var ErrStoreNotFound = NewDomainError(ModuleStore, ErrorCodeNotFound, "store: key not found")

// IsNotFound 检查错误是否为 NOT_FOUND。
func IsNotFound(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeNotFound
	}
	return false
}
