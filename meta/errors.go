package meta

import "fmt"

// ParamArityError 表示单数形式的参数提取遇到了不等于 1 的参数个数。
// Error 文本是稳定契约：下游快照测试与用户可见诊断都依赖精确措辞。
type ParamArityError struct {
	Namespace Path
	Tag       Path          // 为 nil 时表示 namespace 级提取
	Entries   []NestedEntry // 实际遇到的参数，仅供诊断
}

func (e *ParamArityError) Error() string {
	if e.Tag == nil {
		return fmt.Sprintf("Expected exactly one parameter for `#[%s(..)]`.", e.Namespace)
	}
	return fmt.Sprintf("Expected exactly one identifier for `#[%s(%s(..))]`.", e.Namespace, e.Tag)
}
