// Package signal 实现命名信号
package signal

import pkgif "github.com/dep2p/go-signalhub/pkg/interfaces"

// connectSettings 是 pkg/interfaces.ConnectSettings 的别名
type connectSettings = pkgif.ConnectSettings
