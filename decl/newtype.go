package decl

// InnerType 返回 newtype 结构（恰有一个位置字段的 tuple 结构）的
// 内部字段。返回的指针即可变句柄，调用方可直接修改字段。
//
// 形状不是 Tuple 时返回 ErrNotNewtype；
// Tuple 但字段数不为 1 时返回 ErrNewtypeFieldCount。
func (d *Declaration) InnerType() (*Field, error) {
	data, ok := d.Data.(*StructData)
	if !ok || data.Fields.shape != Tuple {
		return nil, ErrNotNewtype
	}
	if data.Fields.Len() != 1 {
		return nil, ErrNewtypeFieldCount
	}
	return data.Fields.fields[0], nil
}

// IsNewtype 判断声明是否为 newtype 结构：
// 形状为 Tuple 且字段数恰为 1。本方法从不失败。
func (d *Declaration) IsNewtype() bool {
	data, ok := d.Data.(*StructData)
	return ok && data.Fields.shape == Tuple && data.Fields.Len() == 1
}
