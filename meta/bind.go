package meta

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// BindParams 将注解中的 key=value 参数绑定到目标结构体。
// target 必须是指向结构体的非 nil 指针，字段通过 `meta:"name"` 标签
// 声明对应的参数名，可附加 required 选项，并用 `default` 标签给默认值：
//
//	type Params struct {
//	    Prefix string `meta:"prefix" default:"Gen"`
//	    Limit  int    `meta:"limit"`
//	    Strict bool   `meta:"strict,required"`
//	}
//
//	var params Params
//	err := meta.BindParams(annotation, &params)
//
// 取值来源是注解参数列表中的键值对项（key = value）；字面量按
// 原始类型取出后再转换到字段类型。注解为 nil 或不携带参数列表时，
// 仅应用默认值。
func BindParams(a *Annotation, target any) error {
	val := reflect.ValueOf(target)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return fmt.Errorf("meta: bind target must be a non-nil struct pointer")
	}
	val = val.Elem()
	typ := val.Type()
	if typ.Kind() != reflect.Struct {
		return fmt.Errorf("meta: bind target must be a struct pointer, got %s", typ.Kind())
	}

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		fieldVal := val.Field(i)
		if !fieldVal.CanSet() {
			continue
		}

		tag := field.Tag.Get("meta")
		if tag == "" {
			continue
		}
		name, required := parseBindTag(tag)
		if name == "" {
			continue
		}

		lit, found := lookupKeyValue(a, name)
		if !found {
			if required {
				return fmt.Errorf("meta: missing required parameter %q for `#[%s]`", name, annotationPath(a))
			}
			if def, ok := field.Tag.Lookup("default"); ok {
				if err := setFromString(fieldVal, def); err != nil {
					return fmt.Errorf("meta: default for field %s: %w", field.Name, err)
				}
			}
			continue
		}

		if err := setFromLit(fieldVal, lit); err != nil {
			return fmt.Errorf("meta: parameter %q: %w", name, err)
		}
	}
	return nil
}

// parseBindTag 解析 `meta:"name,required"` 形式的标签。
func parseBindTag(tag string) (name string, required bool) {
	parts := strings.Split(tag, ",")
	name = parts[0]
	for _, opt := range parts[1:] {
		if opt == "required" {
			required = true
		}
	}
	return name, required
}

// lookupKeyValue 在注解参数列表中查找名为 name 的键值对项。
func lookupKeyValue(a *Annotation, name string) (Lit, bool) {
	if a == nil || a.Kind != PayloadList {
		return Lit{}, false
	}
	for _, entry := range a.Entries {
		kv, ok := entry.(*KeyValueMeta)
		if !ok {
			continue
		}
		if kv.Path.IsIdent(name) {
			return kv.Value, true
		}
	}
	return Lit{}, false
}

func annotationPath(a *Annotation) Path {
	if a == nil {
		return nil
	}
	return a.Path
}

// setFromLit 将字面量转换为字段类型后写入。
func setFromLit(field reflect.Value, lit Lit) error {
	var raw any
	switch lit.Kind {
	case LitString:
		raw = lit.Str
	case LitInt:
		raw = lit.Int
	case LitFloat:
		raw = lit.Float
	case LitBool:
		raw = lit.Bool
	default:
		return fmt.Errorf("unsupported literal kind %s", lit.Kind)
	}
	return setValue(field, raw)
}

// setFromString 将默认值字符串转换为字段类型后写入。
func setFromString(field reflect.Value, value string) error {
	return setValue(field, value)
}

// setValue 按字段类型转换写入，支持 string/int/uint/bool/float。
func setValue(field reflect.Value, raw any) error {
	switch field.Kind() {
	case reflect.String:
		s, err := cast.ToStringE(raw)
		if err != nil {
			return err
		}
		field.SetString(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := cast.ToInt64E(raw)
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := cast.ToUint64E(raw)
		if err != nil {
			return err
		}
		field.SetUint(n)
	case reflect.Bool:
		b, err := cast.ToBoolE(raw)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Float32, reflect.Float64:
		f, err := cast.ToFloat64E(raw)
		if err != nil {
			return err
		}
		field.SetFloat(f)
	default:
		return fmt.Errorf("unsupported field kind %s", field.Kind())
	}
	return nil
}
