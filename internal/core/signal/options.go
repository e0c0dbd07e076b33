// Package signal 实现命名信号
package signal

import pkgif "github.com/dep2p/go-signalhub/pkg/interfaces"

// ============================================================================
// 本地选项函数
// ============================================================================

// WithPriority 设置订阅优先级
//
// 这是一个便利函数，与 pkg/interfaces.WithPriority 等效
func WithPriority(priority int) pkgif.ConnectOpt {
	return pkgif.WithPriority(priority)
}

// Once 设置订阅为一次性模式
//
// 这是一个便利函数，与 pkg/interfaces.Once 等效
func Once() pkgif.ConnectOpt {
	return pkgif.Once()
}
