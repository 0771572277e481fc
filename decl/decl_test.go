package decl

import (
	"testing"

	"github.com/donutnomad/annometa/meta"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeRefName(t *testing.T) {
	assert.Equal(t, meta.Ident("PhantomData"), TypeRef("std.marker.PhantomData").Name())
	assert.Equal(t, meta.Ident("u32"), TypeRef("u32").Name())
}

// TestFieldTagLookups 测试字段级注解查找
// 场景：与声明级共用同一套匹配规则
func TestFieldTagLookups(t *testing.T) {
	ns := meta.NewPath("my_derive")
	tag := meta.NewPath("tag_name")

	field := NamedField("name", "std.marker.PhantomData")
	field.Attrs = []*meta.Annotation{
		meta.NewList(ns, meta.NewListMeta(tag, meta.NewPathMeta(meta.NewPath("Magic")))),
	}

	assert.True(t, field.ContainsTag(ns, tag))
	assert.False(t, field.ContainsTag(ns, meta.NewPath("other")))
	assert.False(t, field.ContainsTag(meta.NewPath("other"), tag))

	param, err := field.TagParameter(ns, tag)
	require.NoError(t, err)
	assert.True(t, meta.EntryPath(param).Equals(meta.NewPath("Magic")))

	params := field.TagParameters(ns, tag)
	assert.Len(t, params, 1)

	assert.Equal(t, meta.Ident("PhantomData"), field.TypeName())
}

func TestNewStructSemi(t *testing.T) {
	unit, err := NewStruct("Unit", nil).StructData()
	require.NoError(t, err)
	assert.True(t, unit.Semi)

	tuple, err := NewStruct("Tuple", TupleFields(UnnamedField("u32"))).StructData()
	require.NoError(t, err)
	assert.True(t, tuple.Semi)

	named, err := NewStruct("Named", NamedFields(NamedField("a", "u32"))).StructData()
	require.NoError(t, err)
	assert.False(t, named.Semi)
}

func TestEnumVariants(t *testing.T) {
	d := NewEnum("Message",
		&Variant{Name: "Quit", Fields: UnitFields()},
		&Variant{Name: "Move", Fields: NamedFields(NamedField("x", "i32"), NamedField("y", "i32"))},
		&Variant{Name: "Write", Fields: TupleFields(UnnamedField("String"))},
	)

	data, ok := d.Data.(*EnumData)
	require.True(t, ok)
	require.Len(t, data.Variants, 3)
	assert.Equal(t, NotAStruct, d.Shape())
	assert.True(t, data.Variants[1].Fields.IsNamed())
}

func TestSdump(t *testing.T) {
	d := NewStruct("Newtype", TupleFields(UnnamedField("u32")))

	out := Sdump(d)
	assert.Contains(t, out, "Newtype")
	assert.Contains(t, out, "u32")
	// 输出不含指针地址，保证可比性
	assert.Equal(t, out, Sdump(d))
}
