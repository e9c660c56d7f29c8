package envar

import (
	"os"
	"sync"
)

// Lookup 环境变量查询。
//
// 实现必须是非阻塞的；底层存储可能随时被其他 goroutine 或外部进程修改，
// 每次调用只代表一次快照读取。
type Lookup interface {
	Lookup(name string) (value string, found bool)
}

// LookupFunc 函数适配器。
type LookupFunc func(name string) (string, bool)

// Lookup 实现 [Lookup]。
func (f LookupFunc) Lookup(name string) (string, bool) {
	return f(name)
}

// OSLookup 读取进程环境变量，是声明的默认查询源。
var OSLookup Lookup = LookupFunc(os.LookupEnv)

// MapLookup 基于内存 map 的查询源，可并发读写，常用于测试。
type MapLookup struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMapLookup 以 data 的副本创建查询源。
func NewMapLookup(data map[string]string) *MapLookup {
	m := &MapLookup{data: make(map[string]string, len(data))}
	for k, v := range data {
		m.data[k] = v
	}

	return m
}

// Lookup 实现 [Lookup]。
func (m *MapLookup) Lookup(name string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[name]

	return v, ok
}

// Set 设置变量。
func (m *MapLookup) Set(name, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string]string)
	}
	m.data[name] = value
}

// Unset 删除变量。
func (m *MapLookup) Unset(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, name)
}
