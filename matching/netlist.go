package matching

import (
	"fmt"

	"smith/types"
	"smith/utils"
)

// NetList 元件列表转网表行
//
// 节点 1 为源端，串联元件使节点号加一，并联元件接地(节点 0)。
// 分布参数元件在数值后追加特征阻抗：
//
//	C1 1 0 3.183e-12
//	L2 1 2 7.958e-09
//	TL3 2 3 0.075 70.71
func NetList(elements []types.MatchingElement) []string {
	lines := make([]string, 0, len(elements))
	node := 1
	for i, e := range elements {
		if e.IsNone() {
			continue
		}
		row := []any{fmt.Sprintf("%s%d", e.Kind.Symbol(), i+1), node}
		if e.Connection == types.Series {
			row = append(row, node+1)
			node++
		} else {
			row = append(row, 0)
		}
		row = append(row, e.Value)
		if e.Kind.Distributed() {
			row = append(row, e.LineZ0)
		}
		lines = append(lines, utils.FromAnySlice(row).String())
	}
	return lines
}
