package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIdentConcat 测试标识符字面拼接
// 场景：无分隔符、不做大小写转换、不校验结果合法性
func TestIdentConcat(t *testing.T) {
	tests := []struct {
		name  string
		left  string
		right string
		want  Ident
	}{
		{name: "camel fragments", left: "One", right: "Two", want: "OneTwo"},
		{name: "no case conversion", left: "one", right: "TWO", want: "oneTWO"},
		{name: "empty left", left: "", right: "Two", want: "Two"},
		{name: "empty right", left: "One", right: "", want: "One"},
		{name: "underscore kept literally", left: "field_", right: "0", want: "field_0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IdentConcat(tt.left, tt.right))
		})
	}
}

func TestIdentAppendPrepend(t *testing.T) {
	one := Ident("One")

	assert.Equal(t, Ident("OneTwo"), one.Append("Two"))
	assert.Equal(t, Ident("TwoOne"), one.Prepend("Two"))
	// 原标识符不变
	assert.Equal(t, Ident("One"), one)
	assert.Equal(t, "One", one.String())
}
