package meta

import (
	"iter"

	"github.com/samber/lo"
)

// NamespaceAnnotations 返回路径等于 namespace 的注解惰性序列，
// 顺序与 attrs 一致。payload 形态不限（marker/list/keyvalue 均计入），
// payload 非法的注解被跳过。序列有限且可重复消费。
func NamespaceAnnotations(attrs []*Annotation, namespace Path) iter.Seq[*Annotation] {
	return func(yield func(*Annotation) bool) {
		for _, a := range attrs {
			if a == nil || a.Kind == PayloadInvalid {
				continue
			}
			if !a.Path.Equals(namespace) {
				continue
			}
			if !yield(a) {
				return
			}
		}
	}
}

// NamespaceLists 返回路径等于 namespace 且携带参数列表的注解惰性序列。
// 即形如 #[namespace(..)] 的注解。
func NamespaceLists(attrs []*Annotation, namespace Path) iter.Seq[*Annotation] {
	return func(yield func(*Annotation) bool) {
		for a := range NamespaceAnnotations(attrs, namespace) {
			if a.Kind != PayloadList {
				continue
			}
			if !yield(a) {
				return
			}
		}
	}
}

// FindByNamespace 返回所有路径等于 namespace 的注解，保持原始顺序。
// 没有匹配时返回空切片。
func FindByNamespace(attrs []*Annotation, namespace Path) []*Annotation {
	return lo.Filter(attrs, func(a *Annotation, _ int) bool {
		return a != nil && a.Kind != PayloadInvalid && a.Path.Equals(namespace)
	})
}

// ContainsNamespace 判断是否存在路径等于 namespace 的注解。
func ContainsNamespace(attrs []*Annotation, namespace Path) bool {
	for range NamespaceAnnotations(attrs, namespace) {
		return true
	}
	return false
}

// TagLists 返回 #[namespace(tag(..))] 中所有 tag 列表的惰性序列：
// 逐条扫描 namespace 匹配的列表注解，取出其中路径等于 tag 的列表项。
// 顺序先按注解顺序，再按列表内顺序。
func TagLists(attrs []*Annotation, namespace, tag Path) iter.Seq[*ListMeta] {
	return func(yield func(*ListMeta) bool) {
		for a := range NamespaceLists(attrs, namespace) {
			for _, entry := range a.Entries {
				list, ok := entry.(*ListMeta)
				if !ok || !list.Path.Equals(tag) {
					continue
				}
				if !yield(list) {
					return
				}
			}
		}
	}
}

// FindTag 返回 #[namespace(tag(param1, param2, ..))] 中聚合后的参数：
// 跨注解、跨列表展平，保持顺序。没有匹配时返回空切片。
func FindTag(attrs []*Annotation, namespace, tag Path) []NestedEntry {
	var result []NestedEntry
	for list := range TagLists(attrs, namespace, tag) {
		result = append(result, list.Entries...)
	}
	return result
}

// ContainsTag 判断是否存在 #[namespace(tag)] 形式的注解：
// namespace 匹配的列表注解中，只要有任何一个带路径的项（裸路径、
// 列表或键值对）路径等于 tag 即视为存在，tag 是否携带自己的参数
// 列表不影响判定。字面量项没有路径，永远不匹配。
func ContainsTag(attrs []*Annotation, namespace, tag Path) bool {
	for a := range NamespaceLists(attrs, namespace) {
		if lo.SomeBy(a.Entries, func(e NestedEntry) bool {
			p := EntryPath(e)
			return p != nil && p.Equals(tag)
		}) {
			return true
		}
	}
	return false
}
