package meta

import (
	"slices"

	"github.com/samber/lo"
)

// NamespaceParameter 提取 #[namespace(parameter)] 的唯一参数。
//
// 规则：
//   - 没有 namespace 匹配的列表注解时返回 (nil, nil)；
//   - 存在多于一条匹配注解，或唯一匹配注解的参数个数不为 1 时，
//     返回 *ParamArityError。
func NamespaceParameter(attrs []*Annotation, namespace Path) (NestedEntry, error) {
	matched := slices.Collect(NamespaceLists(attrs, namespace))
	switch {
	case len(matched) == 0:
		return nil, nil
	case len(matched) > 1:
		return nil, &ParamArityError{
			Namespace: namespace,
			Entries:   lo.FlatMap(matched, func(a *Annotation, _ int) []NestedEntry { return a.Entries }),
		}
	case len(matched[0].Entries) != 1:
		return nil, &ParamArityError{Namespace: namespace, Entries: matched[0].Entries}
	}
	return matched[0].Entries[0], nil
}

// NamespaceParameters 提取 #[namespace(param1, param2, ..)] 的全部参数，
// 跨注解展平，保持顺序。不做个数校验，没有匹配时返回空切片。
func NamespaceParameters(attrs []*Annotation, namespace Path) []NestedEntry {
	var result []NestedEntry
	for a := range NamespaceLists(attrs, namespace) {
		result = append(result, a.Entries...)
	}
	return result
}

// TagParameter 提取 #[namespace(tag(parameter))] 的唯一参数。
//
// 规则与 NamespaceParameter 相同，但作用在 tag 级聚合结果上：
// 聚合后 0 个参数返回 (nil, nil)，1 个返回该参数，多于 1 个返回
// *ParamArityError（消息同时引用 namespace 与 tag）。
func TagParameter(attrs []*Annotation, namespace, tag Path) (NestedEntry, error) {
	params := FindTag(attrs, namespace, tag)
	switch len(params) {
	case 0:
		return nil, nil
	case 1:
		return params[0], nil
	default:
		return nil, &ParamArityError{Namespace: namespace, Tag: tag, Entries: params}
	}
}

// TagParameters 提取 #[namespace(tag(param1, param2, ..))] 的全部参数，
// 即 FindTag 的聚合结果，不做个数校验。
func TagParameters(attrs []*Annotation, namespace, tag Path) []NestedEntry {
	return FindTag(attrs, namespace, tag)
}
