package meta

// Ident 表示一个标识符。本包不校验拼接结果是否为合法标识符，
// 片段的合法性由调用方保证；不做任何大小写或 Unicode 规范化。
type Ident string

// IdentConcat 将两个字符串片段按字面拼接为新标识符，无分隔符。
func IdentConcat(left, right string) Ident {
	return Ident(left + right)
}

// Append 返回在当前标识符之后追加 suffix 得到的新标识符。
func (i Ident) Append(suffix string) Ident {
	return IdentConcat(string(i), suffix)
}

// Prepend 返回在当前标识符之前插入 prefix 得到的新标识符。
func (i Ident) Prepend(prefix string) Ident {
	return IdentConcat(prefix, string(i))
}

func (i Ident) String() string { return string(i) }
