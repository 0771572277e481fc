// Package meta 提供注解（annotation）的数据模型与查询能力。
//
// 注解是附加在声明或字段上的结构化元数据，源码形式类似 `#[name(...)]`。
// 本包支持以下核心功能：
//
//  1. 路径匹配 - 按分段名称（如 my.derive）精确匹配注解
//  2. 两级查找 - namespace 一级 + tag 二级的嵌套查找
//  3. 参数提取 - 提取注解携带的参数（标识符、字面量、键值对）
//  4. 参数绑定 - 将 key=value 参数反射绑定到调用方结构体
//  5. 标识符拼接 - 由字符串片段派生新标识符
//
// # 基本用法
//
//	ns := meta.NewPath("my_derive")
//	tag := meta.NewPath("tag_name")
//	if meta.ContainsTag(attrs, ns, tag) {
//	    param, err := meta.TagParameter(attrs, ns, tag)
//	    // ...
//	}
//
// 本包不解析源码文本；注解树由外部解析器构造后传入。
// 所有查找都是 best-effort：payload 非法的注解会被静默跳过。
package meta
