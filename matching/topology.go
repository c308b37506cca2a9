package matching

// TopologyKind 匹配网络拓扑
type TopologyKind uint8

const (
	LSection         TopologyKind = iota // L 型，源侧并联
	LSectionReversed                     // L 型，源侧串联
	PiNetwork                            // Π 型
	TNetwork                             // T 型
	SingleStubOpen                       // 单枝节，开路
	SingleStubShort                      // 单枝节，短路
	QuarterWave                          // 四分之一波长变换
)

// topologyString 拓扑名称映射
var topologyString = map[TopologyKind]string{
	LSection:         "L-Section",
	LSectionReversed: "L-Section (reversed)",
	PiNetwork:        "Pi-Network",
	TNetwork:         "T-Network",
	SingleStubOpen:   "Single Stub (open)",
	SingleStubShort:  "Single Stub (short)",
	QuarterWave:      "Quarter-Wave Transformer",
}

// String 返回拓扑的字符串表示
func (t TopologyKind) String() string {
	if s, ok := topologyString[t]; ok {
		return s
	}
	return "Unknown"
}

// Distributed 是否包含传输线元件
func (t TopologyKind) Distributed() bool {
	switch t {
	case SingleStubOpen, SingleStubShort, QuarterWave:
		return true
	default:
		return false
	}
}
