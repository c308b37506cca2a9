package element

import (
	"fmt"

	"smith/types"
)

// Config 元件配置，注册后保持不变
type Config struct {
	Kind      types.ComponentKind // 元件类型
	Resistive bool                // 阻性元件改变实部，电抗元件改变虚部
}

// GetConfig 获取配置
func (config *Config) GetConfig() *Config { return config }

// Symbol 网表符号
func (config *Config) Symbol() string { return config.Kind.Symbol() }

// Label 显示标签 如 "L = 12.35 nH" 或 "C = 1.20 pF (shunt)"
func Label(value types.ComponentValue, conn types.Connection) string {
	if value.IsNone() {
		return ""
	}
	s := fmt.Sprintf("%s = %s", value.Kind.Symbol(), value)
	if conn == types.Shunt {
		s += " (shunt)"
	}
	return s
}

// NewMatchingElement 创建带标签的匹配元件
func NewMatchingElement(value types.ComponentValue, conn types.Connection) types.MatchingElement {
	return types.MatchingElement{
		ComponentValue: value,
		Connection:     conn,
		Label:          Label(value, conn),
	}
}
