// Package utils 网表行解析与输出
package utils

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrValue 数值解析失败
var ErrValue = errors.New("无效数值")

// NetList 网表行，按空白分隔的字段
type NetList []string

// Fields 分割一行网表
func Fields(line string) NetList { return NetList(strings.Fields(line)) }

// FromAnySlice 将 []any 转换为 NetList 类型
// any 只能是基础类型，不考虑结构体的解析
func FromAnySlice(slice []any) NetList {
	if slice == nil {
		return NetList{}
	}
	result := make(NetList, len(slice))
	for i, v := range slice {
		result[i] = anyToString(v)
	}
	return result
}

// anyToString 将任意基础类型转换为字符串
func anyToString(v any) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case complex128:
		return strconv.FormatComplex(val, 'g', -1, 128)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(v)
	}
}

// String 以空格连接字段
func (value NetList) String() string { return strings.Join(value, " ") }

// SeparationPrick 分离字符串前缀与编号 如 "TL3" -> ("TL", 3)
func (value NetList) SeparationPrick(i int) (typeName string, id int) {
	if i >= len(value) {
		return "", 0
	}
	nameStr := strings.ToUpper(value[i])
	for i, char := range nameStr {
		if char >= '0' && char <= '9' {
			typeName = nameStr[:i]
			id, _ = strconv.Atoi(nameStr[i:])
			break
		}
	}
	if typeName == "" {
		typeName = nameStr
	}
	return typeName, id
}

// ParseInt 解析整数
func (value NetList) ParseInt(i int, defaultValue int) int {
	if i < len(value) {
		if val, err := strconv.Atoi(value[i]); err == nil {
			return val
		}
	}
	return defaultValue
}

// ParseFloat64 解析64位浮点数
func (value NetList) ParseFloat64(i int, defaultValue float64) float64 {
	if i < len(value) {
		if val, err := strconv.ParseFloat(value[i], 64); err == nil {
			return val
		}
	}
	return defaultValue
}

// ParseString 安全获取字符串
func (value NetList) ParseString(i int, defaultValue string) string {
	if i < len(value) {
		return value[i]
	}
	return defaultValue
}

// ParseComplex128 解析128位复数
func (value NetList) ParseComplex128(i int, defaultValue complex128) complex128 {
	if v, err := value.Complex(i); err == nil {
		return v
	}
	return defaultValue
}

// ParseValue 解析带工程后缀的数值，失败返回默认值
func (value NetList) ParseValue(i int, defaultValue float64) float64 {
	if v, err := value.Value(i); err == nil {
		return v
	}
	return defaultValue
}

// Value 解析带工程后缀的数值 如 "10n" "2.2pF" "1k" "3meg"
func (value NetList) Value(i int) (float64, error) {
	if i >= len(value) {
		return 0, fmt.Errorf("%w: 缺少第 %d 个字段", ErrValue, i)
	}
	return ParseSI(value[i])
}

// Complex 解析复数 如 "75+50i" 或 "50"
func (value NetList) Complex(i int) (complex128, error) {
	if i >= len(value) {
		return 0, fmt.Errorf("%w: 缺少第 %d 个字段", ErrValue, i)
	}
	v, err := strconv.ParseComplex(value[i], 128)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrValue, value[i])
	}
	return v, nil
}

// numberPrefix 数值部分
var numberPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// unitMultiplier 工程后缀倍率，"meg" 单独处理
var unitMultiplier = map[string]float64{
	"t": 1e12,
	"g": 1e9,
	"k": 1e3,
	"m": 1e-3,
	"u": 1e-6,
	"µ": 1e-6,
	"μ": 1e-6,
	"n": 1e-9,
	"p": 1e-12,
	"f": 1e-15,
}

// ParseSI 解析工程后缀数值，后缀后的单位字母忽略
func ParseSI(s string) (float64, error) {
	s = strings.TrimSpace(s)
	num := numberPrefix.FindString(s)
	if num == "" {
		return 0, fmt.Errorf("%w: %q", ErrValue, s)
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrValue, s)
	}
	suffix := strings.ToLower(s[len(num):])
	if strings.HasPrefix(suffix, "meg") {
		v *= 1e6
	} else if suffix != "" {
		r := []rune(suffix)[0]
		if mul, ok := unitMultiplier[string(r)]; ok {
			v *= mul
		}
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %q", ErrValue, s)
	}
	return v, nil
}
