package matching

import (
	"fmt"
	"slices"
	"strings"

	"smith/types"
)

// Solution 一个匹配网络方案，创建后不可修改
// 元件按源端到负载端的顺序排列。
type Solution struct {
	Topology  TopologyKind
	Frequency float64    // 设计频率(Hz)
	Z0        float64    // 参考阻抗(Ω)
	Source    complex128 // 源阻抗
	Load      complex128 // 负载阻抗
	Valid     bool
	Q         float64 // 网络Q值
	elements  []types.MatchingElement
}

// Elements 元件列表副本
func (s Solution) Elements() []types.MatchingElement { return slices.Clone(s.elements) }

// Len 元件数量
func (s Solution) Len() int { return len(s.elements) }

// InputImpedance 从负载端逐个接入元件得到的源端输入阻抗
func (s Solution) InputImpedance() complex128 {
	z := s.Load
	for i := len(s.elements) - 1; i >= 0; i-- {
		z = Apply(z, s.elements[i])
	}
	return z
}

// LineLength 传输线与枝节总长度(m)
func (s Solution) LineLength() float64 {
	var sum float64
	for _, e := range s.elements {
		if e.Kind.Distributed() {
			sum += e.Value
		}
	}
	return sum
}

// Lumped 是否全部为集总元件
func (s Solution) Lumped() bool {
	for _, e := range s.elements {
		if !e.Kind.Lumped() {
			return false
		}
	}
	return true
}

// Description 方案描述
func (s Solution) Description() string {
	parts := make([]string, len(s.elements))
	for i, e := range s.elements {
		if e.Kind.Distributed() {
			parts[i] = e.String()
		} else {
			parts[i] = e.Label
		}
	}
	return fmt.Sprintf("%s (Q=%.2f): %s", s.Topology, s.Q, strings.Join(parts, ", "))
}

// NetList 网表行
func (s Solution) NetList() []string { return NetList(s.elements) }
