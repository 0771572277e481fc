// Package decl 提供类型声明（struct/enum）的形状查询与原地修改能力。
//
// 本包支持以下核心功能：
//
//  1. 形状机 - Unit / Named / Tuple / NotAStruct 四态查询与断言
//  2. 字段追加 - 命名字段、位置字段两种批量追加，按形状规则放宽
//  3. derive 合并 - 向保留注解 derive 中并入新项，重复项硬性报错
//  4. newtype 访问 - 单字段 tuple 结构的内部字段存取
//  5. 构造形式 - 生成按形状命名字段所需的最小 token 模式
//
// 声明树由外部解析器构造，本包原地修改后交还宿主工具序列化。
// 所有失败都以携带固定消息文本的错误值返回，消息措辞是契约的一部分，
// 宿主工具据此决定终止展开还是恢复。
//
// 本包假定调用方在单次宿主调用内独占声明树，不做任何并发保护。
package decl
