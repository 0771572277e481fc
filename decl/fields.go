package decl

// StructData 返回声明的结构体声明体。
// 声明不是 struct 时返回 ErrNotStruct。
func (d *Declaration) StructData() (*StructData, error) {
	data, ok := d.Data.(*StructData)
	if !ok {
		return nil, ErrNotStruct
	}
	return data, nil
}

// Fields 返回结构体声明的字段列表。
// 声明不是 struct 时返回 ErrNotStruct。
func (d *Declaration) Fields() (*Fields, error) {
	data, err := d.StructData()
	if err != nil {
		return nil, err
	}
	return data.Fields, nil
}

// Shape 返回声明的形状；非 struct 声明返回 NotAStruct。
func (d *Declaration) Shape() Shape {
	data, ok := d.Data.(*StructData)
	if !ok {
		return NotAStruct
	}
	return data.Fields.shape
}

// IsStruct 判断声明是否为 struct。
func (d *Declaration) IsStruct() bool { return d.Shape() != NotAStruct }

// IsUnit 判断声明是否为 unit 结构。
func (d *Declaration) IsUnit() bool { return d.Shape() == Unit }

// IsNamed 判断声明是否为命名字段结构。
func (d *Declaration) IsNamed() bool { return d.Shape() == Named }

// IsTuple 判断声明是否为位置字段结构。
func (d *Declaration) IsTuple() bool { return d.Shape() == Tuple }

// AssertStruct 断言声明是 struct，否则返回 ErrNotStruct。
func (d *Declaration) AssertStruct() error {
	if !d.IsStruct() {
		return ErrNotStruct
	}
	return nil
}

// AssertUnit 断言形状为 unit，否则返回 ErrNotUnit。
func (d *Declaration) AssertUnit() error {
	if !d.IsUnit() {
		return ErrNotUnit
	}
	return nil
}

// AssertNamed 断言形状为命名字段，否则返回 ErrNotNamed。
func (d *Declaration) AssertNamed() error {
	if !d.IsNamed() {
		return ErrNotNamed
	}
	return nil
}

// AssertUnnamed 断言形状为位置字段，否则返回 ErrNotTuple。
func (d *Declaration) AssertUnnamed() error {
	if !d.IsTuple() {
		return ErrNotTuple
	}
	return nil
}

// AppendNamed 向字段列表批量追加命名字段。
//
//   - Unit：列表变为 Named，内容即 additional；
//   - Named：按顺序扩展已有列表，不检查重名（重名交由后续编译阶段报告）；
//   - Tuple：返回 ErrAppendNamedShape，列表保持不变。
func (f *Fields) AppendNamed(additional ...*Field) error {
	switch f.shape {
	case Unit:
		f.shape = Named
		f.fields = append(f.fields, additional...)
	case Named:
		f.fields = append(f.fields, additional...)
	default:
		return ErrAppendNamedShape
	}
	return nil
}

// AppendUnnamed 向字段列表批量追加位置字段。
//
//   - Unit：列表变为 Tuple，内容即 additional；
//   - Tuple：按顺序扩展已有列表，位置由最终下标隐式决定；
//   - Named：返回 ErrAppendUnnamedShape，列表保持不变。
func (f *Fields) AppendUnnamed(additional ...*Field) error {
	switch f.shape {
	case Unit:
		f.shape = Tuple
		f.fields = append(f.fields, additional...)
	case Tuple:
		f.fields = append(f.fields, additional...)
	default:
		return ErrAppendUnnamedShape
	}
	return nil
}

// AppendNamed 向结构体声明追加命名字段。
// unit 结构变为花括号语法时清除结尾分号。
// 非 struct 声明返回 ErrAppendNamedShape，声明保持不变。
func (d *Declaration) AppendNamed(additional ...*Field) error {
	data, ok := d.Data.(*StructData)
	if !ok {
		return ErrAppendNamedShape
	}
	if err := data.Fields.AppendNamed(additional...); err != nil {
		return err
	}
	data.Semi = false
	return nil
}

// AppendUnnamed 向结构体声明追加位置字段。
// 非 struct 声明返回 ErrAppendUnnamedShape，声明保持不变。
func (d *Declaration) AppendUnnamed(additional ...*Field) error {
	data, ok := d.Data.(*StructData)
	if !ok {
		return ErrAppendUnnamedShape
	}
	return data.Fields.AppendUnnamed(additional...)
}
