package decl

import (
	"github.com/donutnomad/annometa/meta"

	"github.com/samber/lo"
)

// derivePath 保留注解 derive 的路径。
var derivePath = meta.NewPath("derive")

// AppendDerives 将 derives 并入声明的 #[derive(..)] 注解。
//
//   - 不存在 derive 注解时：新建 #[derive(derives...)] 追加到注解列表末尾；
//   - 已存在时：逐项做结构相等检查（两个裸路径项相同当且仅当路径相等），
//     任何重叠都返回 *DeriveConflictError，重叠项按 derives 的顺序列出，
//     注解保持不变；
//   - 无重叠时：已有项在前、新项按序追加在后，原地替换，不重排不去重。
//
// derive 之所以被特殊处理：下游注解处理工具会替用户合成某些能力
// （如 Clone），用户重复声明时必须大声报冲突，而不是静默丢弃或重复。
func (d *Declaration) AppendDerives(derives ...meta.Path) error {
	entries := lo.Map(derives, func(p meta.Path, _ int) meta.NestedEntry {
		return meta.NewPathMeta(p)
	})

	existing, found := lo.Find(d.Attrs, func(a *meta.Annotation) bool {
		return a != nil && a.Kind == meta.PayloadList && a.Path.Equals(derivePath)
	})
	if !found {
		d.Attrs = append(d.Attrs, meta.NewList(derivePath, entries...))
		return nil
	}

	superfluous := lo.FilterMap(entries, func(e meta.NestedEntry, _ int) (string, bool) {
		if !meta.ListContains(existing.Entries, e) {
			return "", false
		}
		return meta.EntryPath(e).String(), true
	})
	if len(superfluous) > 0 {
		return &DeriveConflictError{Overlap: superfluous}
	}

	existing.Entries = append(existing.Entries, entries...)
	return nil
}
