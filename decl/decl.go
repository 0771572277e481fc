package decl

import (
	"strings"

	"github.com/donutnomad/annometa/meta"
)

// Shape 表示声明字段列表的形状。
type Shape uint8

const (
	Unit       Shape = iota + 1 // 无字段
	Named                       // 命名字段列表
	Tuple                       // 位置字段列表
	NotAStruct                  // 声明不是 struct（如 enum）
)

func (s Shape) String() string {
	switch s {
	case Unit:
		return "unit"
	case Named:
		return "named"
	case Tuple:
		return "tuple"
	case NotAStruct:
		return "not-a-struct"
	default:
		return "unknown"
	}
}

// TypeRef 表示字段的类型引用，点分形式，如 "std.marker.PhantomData"。
// 类型只做字符串级处理，不做解析或求值。
type TypeRef string

// Name 返回类型的简单名（最后一段）。
func (t TypeRef) Name() meta.Ident {
	s := string(t)
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		s = s[i+1:]
	}
	return meta.Ident(s)
}

func (t TypeRef) String() string { return string(t) }

// Field 表示声明中的一个字段。位置字段的 Name 为空。
type Field struct {
	Name  meta.Ident
	Type  TypeRef
	Attrs []*meta.Annotation
}

// NamedField 构造命名字段。
func NamedField(name string, typ string) *Field {
	return &Field{Name: meta.Ident(name), Type: TypeRef(typ)}
}

// UnnamedField 构造位置字段。位置即身份，不单独存储序号。
func UnnamedField(typ string) *Field {
	return &Field{Type: TypeRef(typ)}
}

// TypeName 返回字段类型的简单名，如 std.marker.PhantomData 的 PhantomData。
func (f *Field) TypeName() meta.Ident {
	return f.Type.Name()
}

// ContainsTag 判断字段的注解中是否存在 #[namespace(tag)]。
func (f *Field) ContainsTag(namespace, tag meta.Path) bool {
	return meta.ContainsTag(f.Attrs, namespace, tag)
}

// TagParameter 提取字段上 #[namespace(tag(parameter))] 的唯一参数。
func (f *Field) TagParameter(namespace, tag meta.Path) (meta.NestedEntry, error) {
	return meta.TagParameter(f.Attrs, namespace, tag)
}

// TagParameters 提取字段上 #[namespace(tag(..))] 的全部参数。
func (f *Field) TagParameters(namespace, tag meta.Path) []meta.NestedEntry {
	return meta.TagParameters(f.Attrs, namespace, tag)
}

// Fields 表示声明的字段列表，三种形状之一（Unit/Named/Tuple）。
// 形状只允许放宽：Unit 可经追加变为 Named 或 Tuple，之后形状不再改变，
// Named 与 Tuple 之间禁止转换。
type Fields struct {
	shape  Shape
	fields []*Field
}

// UnitFields 构造无字段列表。
func UnitFields() *Fields {
	return &Fields{shape: Unit}
}

// NamedFields 构造命名字段列表。
func NamedFields(fields ...*Field) *Fields {
	return &Fields{shape: Named, fields: fields}
}

// TupleFields 构造位置字段列表。
func TupleFields(fields ...*Field) *Fields {
	return &Fields{shape: Tuple, fields: fields}
}

// Shape 返回字段列表的当前形状。
func (f *Fields) Shape() Shape { return f.shape }

// List 返回字段切片，顺序即声明顺序。调用方不应自行增删。
func (f *Fields) List() []*Field { return f.fields }

// Len 返回字段个数。
func (f *Fields) Len() int { return len(f.fields) }

// IsUnit 判断是否为无字段形状。
func (f *Fields) IsUnit() bool { return f.shape == Unit }

// IsNamed 判断是否为命名字段形状。
func (f *Fields) IsNamed() bool { return f.shape == Named }

// IsTuple 判断是否为位置字段形状。
func (f *Fields) IsTuple() bool { return f.shape == Tuple }

// Data 表示声明体，StructData 或 EnumData 之一。
type Data interface {
	isData()
}

// StructData 结构体声明体。
type StructData struct {
	Fields *Fields
	// Semi 标记 unit/tuple 结构语法上的结尾分号。
	// 追加命名字段使结构变为花括号语法时会清除它。
	Semi bool
}

func (*StructData) isData() {}

// EnumData 枚举声明体。
type EnumData struct {
	Variants []*Variant
}

func (*EnumData) isData() {}

// Variant 枚举的一个成员。
type Variant struct {
	Name   meta.Ident
	Fields *Fields
	Attrs  []*meta.Annotation
}

// Declaration 表示一条被注解的类型声明。
// 注解列表顺序即源码顺序；声明树在单次宿主调用内由调用方独占，
// 本包的修改操作全部原地进行。
type Declaration struct {
	Name  meta.Ident
	Attrs []*meta.Annotation
	Data  Data
}

// NewStruct 构造结构体声明。fields 为 nil 时视为 unit 结构（带分号）。
func NewStruct(name string, fields *Fields) *Declaration {
	semi := false
	if fields == nil {
		fields = UnitFields()
	}
	if fields.shape == Unit || fields.shape == Tuple {
		semi = true
	}
	return &Declaration{
		Name: meta.Ident(name),
		Data: &StructData{Fields: fields, Semi: semi},
	}
}

// NewEnum 构造枚举声明。
func NewEnum(name string, variants ...*Variant) *Declaration {
	return &Declaration{
		Name: meta.Ident(name),
		Data: &EnumData{Variants: variants},
	}
}

// WithAttrs 附加注解并返回声明自身，便于链式构造。
func (d *Declaration) WithAttrs(attrs ...*meta.Annotation) *Declaration {
	d.Attrs = append(d.Attrs, attrs...)
	return d
}
