package signalhub

// Option 用户配置选项函数
type Option func(*options)

// options 内部选项结构
type options struct {
	// 预声明的信号名
	declared []string
}

func newOptions() *options {
	return &options{}
}

// WithSignals 预声明信号名
//
// 注册表创建后立即建立这些信号（空订阅者列表）。
// 适合把信号名集中为常量清单的应用：信号在启动时即可被
// HasSignal/AllSignals 枚举到，不必等到首次订阅。
func WithSignals(names ...string) Option {
	return func(o *options) {
		o.declared = append(o.declared, names...)
	}
}
