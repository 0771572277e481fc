package decl

import "github.com/davecgh/go-spew/spew"

// dumpConfig 调试输出配置：不打印指针地址与容量，保证输出稳定可比。
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Sdump 返回声明树的完整调试文本，用于宿主工具的 verbose 输出。
func Sdump(d *Declaration) string {
	return dumpConfig.Sdump(d)
}
