package matching

import (
	"cmp"
	"slices"
)

// RankByQ 按网络Q值升序排列（稳定排序，返回副本）
func RankByQ(list []Solution) []Solution {
	out := slices.Clone(list)
	slices.SortStableFunc(out, func(a, b Solution) int { return cmp.Compare(a.Q, b.Q) })
	return out
}

// RankByLineLength 按传输线总长度升序排列（稳定排序，返回副本）
func RankByLineLength(list []Solution) []Solution {
	out := slices.Clone(list)
	slices.SortStableFunc(out, func(a, b Solution) int { return cmp.Compare(a.LineLength(), b.LineLength()) })
	return out
}
