package card

import "sync/atomic"

// globalCatalog 是当前生效的目录。
// 目录本身不可变，热重建时整体替换指针（写时复制），
// 调用方永远不会看到构建到一半的目录。
var globalCatalog atomic.Pointer[Catalog]

// GetCatalog 返回当前生效的目录。在PrimeModule成功前返回nil。
func GetCatalog() *Catalog {
	return globalCatalog.Load()
}

// swapCatalog 原子地替换当前目录。
func swapCatalog(c *Catalog) {
	globalCatalog.Store(c)
}
