package decl

import (
	"fmt"
	"strings"
)

// ConstructionForm 返回按当前形状命名字段所需的最小 token 模式：
//
//   - Unit:  ""
//   - Tuple: "(_0, _1,)"，位置占位符按下标命名；
//     单字段也保留结尾逗号，保证模式仍是 tuple 而非括号表达式
//   - Named: "{ field_0, field_1, }"，按声明顺序列出字段名
//
// Named 形状中没有名字的字段会被跳过（语法合法的命名结构不会出现）。
func (f *Fields) ConstructionForm() string {
	switch f.shape {
	case Tuple:
		names := make([]string, 0, len(f.fields))
		for i := range f.fields {
			names = append(names, fmt.Sprintf("_%d", i))
		}
		if len(names) == 0 {
			return "()"
		}
		return "(" + strings.Join(names, ", ") + ",)"
	case Named:
		names := make([]string, 0, len(f.fields))
		for _, field := range f.fields {
			if field.Name == "" {
				continue
			}
			names = append(names, string(field.Name))
		}
		if len(names) == 0 {
			return "{ }"
		}
		return "{ " + strings.Join(names, ", ") + ", }"
	default:
		return ""
	}
}
