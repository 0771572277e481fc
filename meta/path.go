package meta

import (
	"fmt"
	"strings"
)

// Path 表示注解的分段名称，例如 "my.derive" 对应 ["my", "derive"]。
// Path 构造后不可变；比较时逐段严格相等，区分大小写，不支持通配符
// 和前缀匹配。
type Path []string

// NewPath 由若干段名构造 Path。
func NewPath(segments ...string) Path {
	return Path(segments)
}

// ParsePath 解析点分路径字符串，如 "my.derive"。
// 空字符串或含空段（如 "a..b"）返回错误。
func ParsePath(s string) (Path, error) {
	if s == "" {
		return nil, fmt.Errorf("meta: empty path")
	}
	segments := strings.Split(s, ".")
	for _, seg := range segments {
		if seg == "" {
			return nil, fmt.Errorf("meta: invalid path %q: empty segment", s)
		}
	}
	return Path(segments), nil
}

// MustParsePath 同 ParsePath，解析失败时 panic。仅用于字面量路径。
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Equals 判断两条路径是否相等：长度相同且每段字符串相等。
func (p Path) Equals(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i, seg := range p {
		if seg != other[i] {
			return false
		}
	}
	return true
}

// IsIdent 判断路径是否为单段且等于 name。
func (p Path) IsIdent(name string) bool {
	return len(p) == 1 && p[0] == name
}

// String 返回点分形式，段之间无空白。
func (p Path) String() string {
	return strings.Join(p, ".")
}
