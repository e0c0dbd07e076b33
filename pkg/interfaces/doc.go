// Package interfaces 定义 go-signalhub 的公共接口
//
// 采用扁平命名组织接口定义（一个接口文件 = 一个实现目录）：
//
//   - signal.go - Signal 信号与 SignalHub 注册表（internal/core/signal）
//
// # 设计约定
//
// 接口与其选项类型（ConnectOpt / ConnectSettings）同文件定义，
// 实现包通过类型别名复用，避免公共 API 与实现各持一份定义。
//
// 回调统一为参数包形式 Callback func(args ...any)：
// 各信号的参数个数与含义由发射方约定并在文档中说明，
// 库本身不做 schema 校验，参数形状错误表现为回调内 panic，
// 由发射循环按订阅者隔离恢复（见 core/signal 包文档）。
package interfaces
