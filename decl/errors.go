package decl

import (
	"fmt"
	"strings"
)

// ShapeError 表示字段列表操作作用在不兼容的形状上。
// 消息文本是稳定契约，宿主工具将其原样呈现为编译期诊断。
type ShapeError struct {
	msg string
}

func (e *ShapeError) Error() string { return e.msg }

var (
	// ErrNotStruct 声明不是 struct。
	ErrNotStruct = &ShapeError{"This macro must be used on a struct."}
	// ErrNotUnit 形状不是 unit。
	ErrNotUnit = &ShapeError{"This macro must be used on a unit struct."}
	// ErrNotNamed 形状不是命名字段。
	ErrNotNamed = &ShapeError{"This macro must be used on a struct with named fields."}
	// ErrNotTuple 形状不是位置字段。
	ErrNotTuple = &ShapeError{"This macro must be used on a struct with unnamed fields."}
	// ErrAppendNamedShape 命名字段追加只接受 unit 或命名形状。
	ErrAppendNamedShape = &ShapeError{"Macro must be used on either a unit struct or a struct with named fields.\nThis derive does not work on tuple structs."}
	// ErrAppendUnnamedShape 位置字段追加只接受 unit 或 tuple 形状。
	ErrAppendUnnamedShape = &ShapeError{"Macro must be used on either a unit struct or tuple struct.\nThis derive does not work on structs with named fields."}
)

// newtypeNote 两条 newtype 错误共用的说明后缀。
const newtypeNote = "\nA newtype struct is a tuple struct with exactly one field."

// NewtypeError 表示 newtype 访问失败。
type NewtypeError struct {
	msg string
}

func (e *NewtypeError) Error() string { return e.msg }

var (
	// ErrNotNewtype 声明不是 tuple 结构。
	ErrNotNewtype = &NewtypeError{"This macro must be used on a newtype struct." + newtypeNote}
	// ErrNewtypeFieldCount tuple 结构的字段数不为 1。
	ErrNewtypeFieldCount = &NewtypeError{"Newtype struct must only have one field." + newtypeNote}
)

// DeriveConflictError 表示待追加的 derive 项与已有项重叠。
// Overlap 按追加参数的顺序保存每个重叠项的路径文本。
type DeriveConflictError struct {
	Overlap []string
}

func (e *DeriveConflictError) Error() string {
	quoted := make([]string, 0, len(e.Overlap))
	for _, s := range e.Overlap {
		quoted = append(quoted, fmt.Sprintf("%q", s))
	}
	return fmt.Sprintf(
		"The following are automatically derived when this attribute is used:\n[%s]",
		strings.Join(quoted, ", "),
	)
}
