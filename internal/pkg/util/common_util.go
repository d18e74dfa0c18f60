package util

import (
	"strings"
)

// SplitList 按逗号拆分并去掉空白项
func SplitList(raw string) []string {
	var items []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			items = append(items, s)
		}
	}
	return items
}

// Ptr 取任意值的指针
func Ptr[T any](v T) *T {
	return &v
}

// Deref 空指针返回零值
func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
