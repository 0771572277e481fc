package meta

import (
	"fmt"
	"strconv"
	"strings"
)

// LitKind 表示字面量的类型。
type LitKind uint8

const (
	LitString LitKind = iota + 1 // 字符串
	LitInt                       // 整数
	LitFloat                     // 浮点数
	LitBool                      // 布尔
)

func (k LitKind) String() string {
	switch k {
	case LitString:
		return "string"
	case LitInt:
		return "int"
	case LitFloat:
		return "float"
	case LitBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Lit 表示注解参数中的字面量。字面量保留原始类型，提取时不做任何转换。
type Lit struct {
	Kind  LitKind
	Str   string
	Int   int64
	Float float64
	Bool  bool
}

// StringLit 构造字符串字面量。
func StringLit(v string) Lit { return Lit{Kind: LitString, Str: v} }

// IntLit 构造整数字面量。
func IntLit(v int64) Lit { return Lit{Kind: LitInt, Int: v} }

// FloatLit 构造浮点字面量。
func FloatLit(v float64) Lit { return Lit{Kind: LitFloat, Float: v} }

// BoolLit 构造布尔字面量。
func BoolLit(v bool) Lit { return Lit{Kind: LitBool, Bool: v} }

// Equal 判断两个字面量是否结构相等（类型与值都相同）。
func (l Lit) Equal(other Lit) bool {
	return l == other
}

func (l Lit) String() string {
	switch l.Kind {
	case LitString:
		return strconv.Quote(l.Str)
	case LitInt:
		return strconv.FormatInt(l.Int, 10)
	case LitFloat:
		return strconv.FormatFloat(l.Float, 'g', -1, 64)
	case LitBool:
		return strconv.FormatBool(l.Bool)
	default:
		return "<invalid lit>"
	}
}

// NestedEntry 表示注解参数列表中的一项，四种形态之一：
//
//   - PathMeta     裸路径，如 Clone
//   - ListMeta     路径 + 嵌套参数列表，如 tag(param1, param2)
//   - LitMeta      裸字面量，如 "value"；没有路径，永远不参与 tag 匹配
//   - KeyValueMeta 路径 = 字面量，如 name = "value"
type NestedEntry interface {
	// EntryPath 返回该项的路径，字面量项返回 nil。
	EntryPath() Path
	// Equal 判断与另一项是否结构相等。
	Equal(other NestedEntry) bool
	// String 返回源码样式的文本表示。
	String() string
}

// PathMeta 裸路径参数。
type PathMeta struct {
	Path Path
}

// NewPathMeta 由路径构造裸路径参数。
func NewPathMeta(p Path) *PathMeta { return &PathMeta{Path: p} }

func (m *PathMeta) EntryPath() Path { return m.Path }

func (m *PathMeta) Equal(other NestedEntry) bool {
	o, ok := other.(*PathMeta)
	return ok && m.Path.Equals(o.Path)
}

func (m *PathMeta) String() string { return m.Path.String() }

// ListMeta 携带嵌套参数列表的路径参数，两级查找中的 tag 即为此形态。
type ListMeta struct {
	Path    Path
	Entries []NestedEntry
}

// NewListMeta 由路径与嵌套项构造列表参数。
func NewListMeta(p Path, entries ...NestedEntry) *ListMeta {
	return &ListMeta{Path: p, Entries: entries}
}

func (m *ListMeta) EntryPath() Path { return m.Path }

func (m *ListMeta) Equal(other NestedEntry) bool {
	o, ok := other.(*ListMeta)
	if !ok || !m.Path.Equals(o.Path) || len(m.Entries) != len(o.Entries) {
		return false
	}
	for i, e := range m.Entries {
		if !e.Equal(o.Entries[i]) {
			return false
		}
	}
	return true
}

func (m *ListMeta) String() string {
	parts := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		parts = append(parts, e.String())
	}
	return fmt.Sprintf("%s(%s)", m.Path, strings.Join(parts, ", "))
}

// LitMeta 裸字面量参数。
type LitMeta struct {
	Value Lit
}

// NewLitMeta 由字面量构造参数项。
func NewLitMeta(v Lit) *LitMeta { return &LitMeta{Value: v} }

func (m *LitMeta) EntryPath() Path { return nil }

func (m *LitMeta) Equal(other NestedEntry) bool {
	o, ok := other.(*LitMeta)
	return ok && m.Value.Equal(o.Value)
}

func (m *LitMeta) String() string { return m.Value.String() }

// KeyValueMeta 键值对参数，如 name = "value"。
type KeyValueMeta struct {
	Path  Path
	Value Lit
}

// NewKeyValueMeta 由路径与字面量构造键值对参数。
func NewKeyValueMeta(p Path, v Lit) *KeyValueMeta {
	return &KeyValueMeta{Path: p, Value: v}
}

func (m *KeyValueMeta) EntryPath() Path { return m.Path }

func (m *KeyValueMeta) Equal(other NestedEntry) bool {
	o, ok := other.(*KeyValueMeta)
	return ok && m.Path.Equals(o.Path) && m.Value.Equal(o.Value)
}

func (m *KeyValueMeta) String() string {
	return fmt.Sprintf("%s = %s", m.Path, m.Value)
}

// PayloadKind 表示注解 payload 的形态。
type PayloadKind uint8

const (
	// PayloadInvalid 表示 payload 解析失败的注解。
	// 此类注解在所有查找中被静默跳过，匹配是 best-effort 的。
	PayloadInvalid PayloadKind = iota
	PayloadMarker              // 裸名称，无参数
	PayloadList                // 括号参数列表
	PayloadKeyValue            // 路径直接绑定一个字面量
)

func (k PayloadKind) String() string {
	switch k {
	case PayloadMarker:
		return "marker"
	case PayloadList:
		return "list"
	case PayloadKeyValue:
		return "keyvalue"
	default:
		return "invalid"
	}
}

// Annotation 表示附加在声明或字段上的一条注解。
// 同一目标上允许存在多条同名注解（如重复的 #[namespace(...)]），
// 列表顺序即源码顺序，合并与追加都依赖该顺序。
type Annotation struct {
	Path    Path
	Kind    PayloadKind
	Entries []NestedEntry // 仅 PayloadList 有效
	Value   Lit           // 仅 PayloadKeyValue 有效
}

// NewMarker 构造无参数注解。
func NewMarker(p Path) *Annotation {
	return &Annotation{Path: p, Kind: PayloadMarker}
}

// NewList 构造参数列表注解。
func NewList(p Path, entries ...NestedEntry) *Annotation {
	return &Annotation{Path: p, Kind: PayloadList, Entries: entries}
}

// NewKeyValue 构造键值注解，如 name = "value"。
func NewKeyValue(p Path, v Lit) *Annotation {
	return &Annotation{Path: p, Kind: PayloadKeyValue, Value: v}
}

// NewInvalid 构造 payload 非法的注解占位。
// 外部解析器解析 payload 失败时用它保留原始位置，查找阶段会跳过。
func NewInvalid(p Path) *Annotation {
	return &Annotation{Path: p, Kind: PayloadInvalid}
}

func (a *Annotation) String() string {
	switch a.Kind {
	case PayloadMarker:
		return fmt.Sprintf("#[%s]", a.Path)
	case PayloadList:
		parts := make([]string, 0, len(a.Entries))
		for _, e := range a.Entries {
			parts = append(parts, e.String())
		}
		return fmt.Sprintf("#[%s(%s)]", a.Path, strings.Join(parts, ", "))
	case PayloadKeyValue:
		return fmt.Sprintf("#[%s = %s]", a.Path, a.Value)
	default:
		return fmt.Sprintf("#[%s <invalid>]", a.Path)
	}
}

// EntryPath 返回嵌套项的路径，字面量项返回 nil。
func EntryPath(e NestedEntry) Path {
	if e == nil {
		return nil
	}
	return e.EntryPath()
}

// ListContains 判断参数列表中是否含有与 operand 结构相等的一项。
// 可用于检查 #[derive(..)] 中是否已含某个派生项。
func ListContains(entries []NestedEntry, operand NestedEntry) bool {
	for _, e := range entries {
		if e.Equal(operand) {
			return true
		}
	}
	return false
}
