package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTagParameter 测试 tag 级单参数提取
// 场景：
// - 不存在返回 (nil, nil)
// - 恰一个参数返回该参数
// - 多个参数返回 ParamArityError，消息同时引用 namespace 与 tag
func TestTagParameter(t *testing.T) {
	ns := NewPath("my_derive")
	tag := NewPath("tag_name")

	t.Run("returns nil when not present", func(t *testing.T) {
		attrs := []*Annotation{NewMarker(ns)}

		got, err := TagParameter(attrs, ns, tag)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("returns entry when present", func(t *testing.T) {
		magic := NewPathMeta(NewPath("Magic"))
		attrs := []*Annotation{NewList(ns, NewListMeta(tag, magic))}

		got, err := TagParameter(attrs, ns, tag)
		require.NoError(t, err)
		assert.Same(t, magic, got)
	})

	t.Run("errors when multiple parameters present", func(t *testing.T) {
		attrs := []*Annotation{NewList(ns, NewListMeta(tag,
			NewPathMeta(NewPath("Magic")),
			NewPathMeta(NewPath("Magic2")),
		))}

		_, err := TagParameter(attrs, ns, tag)
		require.Error(t, err)
		assert.Equal(t,
			"Expected exactly one identifier for `#[my_derive(tag_name(..))]`.",
			err.Error(),
		)

		var arityErr *ParamArityError
		require.ErrorAs(t, err, &arityErr)
		assert.Len(t, arityErr.Entries, 2)
	})

	t.Run("errors when split across annotations", func(t *testing.T) {
		attrs := []*Annotation{
			NewList(ns, NewListMeta(tag, NewPathMeta(NewPath("One")))),
			NewList(ns, NewListMeta(tag, NewPathMeta(NewPath("Two")))),
		}

		_, err := TagParameter(attrs, ns, tag)
		assert.Error(t, err)
	})
}

// TestTagParameters 测试 tag 级全量参数提取
// 场景：
// - 跨注解展平，保持顺序，字面量保留原始类型
// - 不存在返回空，不报错
func TestTagParameters(t *testing.T) {
	ns := NewPath("namespace")
	tag := NewPath("tag")

	one := NewPathMeta(NewPath("One"))
	two := NewKeyValueMeta(NewPath("two"), StringLit(""))
	attrs := []*Annotation{
		NewList(ns, NewListMeta(tag, one)),
		NewList(ns, NewListMeta(tag, two)),
	}

	got := TagParameters(attrs, ns, tag)
	require.Len(t, got, 2)
	assert.Same(t, one, got[0])
	assert.Same(t, two, got[1])

	assert.Empty(t, TagParameters(attrs, ns, NewPath("missing")))
}

// TestNamespaceParameter 测试 namespace 级单参数提取
// 场景：
// - 不存在返回 (nil, nil)
// - 恰一条匹配注解且恰一个参数时返回该参数
// - 参数个数不为 1 报错
// - 匹配注解多于一条报错
func TestNamespaceParameter(t *testing.T) {
	ns := NewPath("my", "ns")

	t.Run("returns nil when not present", func(t *testing.T) {
		got, err := NamespaceParameter(nil, ns)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("marker payload does not count", func(t *testing.T) {
		got, err := NamespaceParameter([]*Annotation{NewMarker(ns)}, ns)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("returns single parameter", func(t *testing.T) {
		one := NewPathMeta(NewPath("One"))
		attrs := []*Annotation{NewList(ns, one)}

		got, err := NamespaceParameter(attrs, ns)
		require.NoError(t, err)
		assert.Same(t, one, got)
	})

	t.Run("errors on two parameters in one annotation", func(t *testing.T) {
		attrs := []*Annotation{NewList(ns,
			NewPathMeta(NewPath("One")),
			NewPathMeta(NewPath("Two")),
		)}

		_, err := NamespaceParameter(attrs, ns)
		require.Error(t, err)
		assert.Equal(t, "Expected exactly one parameter for `#[my.ns(..)]`.", err.Error())
	})

	t.Run("errors on empty parameter list", func(t *testing.T) {
		attrs := []*Annotation{NewList(ns)}

		_, err := NamespaceParameter(attrs, ns)
		assert.Error(t, err)
	})

	t.Run("errors on multiple matching annotations", func(t *testing.T) {
		attrs := []*Annotation{
			NewList(ns, NewPathMeta(NewPath("One"))),
			NewList(ns, NewPathMeta(NewPath("Two"))),
		}

		_, err := NamespaceParameter(attrs, ns)
		require.Error(t, err)
		assert.Equal(t, "Expected exactly one parameter for `#[my.ns(..)]`.", err.Error())
	})
}

// TestNamespaceParameters 测试 namespace 级全量参数提取
func TestNamespaceParameters(t *testing.T) {
	ns := NewPath("namespace")

	one := NewPathMeta(NewPath("One"))
	lit := NewLitMeta(IntLit(42))
	kv := NewKeyValueMeta(NewPath("two"), BoolLit(true))
	attrs := []*Annotation{
		NewList(ns, one, lit),
		NewMarker(ns),
		NewList(ns, kv),
	}

	got := NamespaceParameters(attrs, ns)
	require.Len(t, got, 3)
	assert.Same(t, one, got[0])
	assert.Same(t, lit, got[1])
	assert.Same(t, kv, got[2])

	// 字面量保留原始类型，不做转换
	litGot, ok := got[1].(*LitMeta)
	require.True(t, ok)
	assert.Equal(t, LitInt, litGot.Value.Kind)
	assert.Equal(t, int64(42), litGot.Value.Int)

	assert.Empty(t, NamespaceParameters(attrs, NewPath("missing")))
}
