package types

// ComponentKind 元件类型
type ComponentKind uint8

// 元件类型常量定义
const (
	KindNone             ComponentKind = iota // 无需元件
	KindResistor                              // 电阻
	KindInductor                              // 电感
	KindCapacitor                             // 电容
	KindTransmissionLine                      // 传输线
	KindOpenStub                              // 开路短截线
	KindShortStub                             // 短路短截线
)

// kindString 元件类型映射
var kindString = map[ComponentKind]struct {
	Name   string // 名称
	Symbol string // 网表符号
	Unit   string // 基本单位
}{
	KindNone:             {Name: "None", Symbol: "", Unit: ""},
	KindResistor:         {Name: "Resistor", Symbol: "R", Unit: "Ω"},
	KindInductor:         {Name: "Inductor", Symbol: "L", Unit: "H"},
	KindCapacitor:        {Name: "Capacitor", Symbol: "C", Unit: "F"},
	KindTransmissionLine: {Name: "TransmissionLine", Symbol: "TL", Unit: "m"},
	KindOpenStub:         {Name: "OpenStub", Symbol: "OS", Unit: "m"},
	KindShortStub:        {Name: "ShortStub", Symbol: "SS", Unit: "m"},
}

// String 返回元件类型的字符串表示
func (k ComponentKind) String() string {
	if kt, ok := kindString[k]; ok {
		return kt.Name
	}
	return "Unknown"
}

// Symbol 网表符号
func (k ComponentKind) Symbol() string { return kindString[k].Symbol }

// Unit 基本单位
func (k ComponentKind) Unit() string { return kindString[k].Unit }

// Lumped 集总元件
func (k ComponentKind) Lumped() bool {
	return k == KindResistor || k == KindInductor || k == KindCapacitor
}

// Distributed 分布参数元件，数值单位为米
func (k ComponentKind) Distributed() bool {
	return k == KindTransmissionLine || k == KindOpenStub || k == KindShortStub
}

// GetSymbolKind 通过网表符号获取类型
func GetSymbolKind(symbol string) (ComponentKind, bool) {
	for k, kt := range kindString {
		if k != KindNone && kt.Symbol == symbol {
			return k, true
		}
	}
	return KindNone, false
}

// Connection 元件接入方式
type Connection uint8

const (
	Series Connection = iota // 串联
	Shunt                    // 并联
)

// String 返回接入方式的字符串表示
func (c Connection) String() string {
	switch c {
	case Series:
		return "Series"
	case Shunt:
		return "Shunt"
	default:
		return "Unknown"
	}
}
