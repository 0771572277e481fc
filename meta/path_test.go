package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParsePath 测试点分路径解析
// 场景：
// - 单段 / 多段路径
// - 空字符串、空段报错
func TestParsePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Path
		wantErr bool
	}{
		{name: "single segment", input: "derive", want: NewPath("derive")},
		{name: "two segments", input: "my.derive", want: NewPath("my", "derive")},
		{name: "three segments", input: "std.marker.PhantomData", want: NewPath("std", "marker", "PhantomData")},
		{name: "empty string", input: "", wantErr: true},
		{name: "empty middle segment", input: "a..b", wantErr: true},
		{name: "trailing dot", input: "a.", wantErr: true},
		{name: "leading dot", input: ".a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equals(tt.want), "ParsePath(%q) = %v, want %v", tt.input, got, tt.want)
		})
	}
}

// TestPathEquals 测试路径逐段精确比较
// 场景：
// - 相等、长度不同、段不同
// - 不做大小写折叠，不做前缀匹配
func TestPathEquals(t *testing.T) {
	tests := []struct {
		name string
		a    Path
		b    Path
		want bool
	}{
		{name: "equal single", a: NewPath("derive"), b: NewPath("derive"), want: true},
		{name: "equal multi", a: NewPath("my", "derive"), b: NewPath("my", "derive"), want: true},
		{name: "different segment", a: NewPath("my", "derive"), b: NewPath("my", "other"), want: false},
		{name: "prefix is not a match", a: NewPath("my"), b: NewPath("my", "derive"), want: false},
		{name: "case sensitive", a: NewPath("Derive"), b: NewPath("derive"), want: false},
		{name: "both empty", a: NewPath(), b: NewPath(), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equals(tt.b))
		})
	}
}

func TestPathString(t *testing.T) {
	assert.Equal(t, "my.derive", NewPath("my", "derive").String())
	assert.Equal(t, "Clone", NewPath("Clone").String())
}

func TestPathIsIdent(t *testing.T) {
	assert.True(t, NewPath("derive").IsIdent("derive"))
	assert.False(t, NewPath("derive").IsIdent("other"))
	assert.False(t, NewPath("my", "derive").IsIdent("derive"))
}

func TestMustParsePathPanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { MustParsePath("") })
	assert.NotPanics(t, func() { MustParsePath("my.derive") })
}
