// Package element 元件综合
//
// 由电抗、电纳或阻抗增量推导 R/L/C 元件值，以及每种集总元件
// 在串联、并联接入时对阻抗或导纳的贡献。
package element

import (
	"log"

	"smith/types"
)

// Face 元件行为接口
type Face interface {
	GetConfig() *Config                         // 元件静态配置
	SeriesDelta(value, freq float64) complex128 // 串联接入时阻抗增量 ΔZ
	ShuntDelta(value, freq float64) complex128  // 并联接入时导纳增量 ΔY
}

// ElementList 元件类型注册表
var ElementList = map[types.ComponentKind]Face{}

// AddElement 注册元件类型，重复注册直接终止程序
func AddElement(kind types.ComponentKind, face Face) types.ComponentKind {
	if _, ok := ElementList[kind]; ok {
		log.Fatalf("元件重复注册: %s", kind)
	}
	ElementList[kind] = face
	return kind
}

// GetElement 查找已注册的元件行为
func GetElement(kind types.ComponentKind) (Face, bool) {
	face, ok := ElementList[kind]
	return face, ok
}
