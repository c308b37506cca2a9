// Package smith 史密斯圆图阻抗匹配引擎
//
// Session 把配置、匹配网络计算器和匹配轨迹组合在一起，
// 并支持以网表格式导入导出元件链。
package smith

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"smith/config"
	"smith/debug"
	"smith/element"
	"smith/matching"
	"smith/sparam"
	"smith/trace"
	"smith/types"
	"smith/utils"
)

// ErrNetList 网表解析错误
var ErrNetList = errors.New("网表解析错误")

// Session 一次匹配设计
type Session struct {
	Config config.Config
	source complex128
	load   complex128
	logger   *slog.Logger
	trace    *trace.MatchingTrace
	measured *sparam.Data
}

// NewSession 初始化，源与负载默认为参考阻抗
func NewSession(cfg config.Config, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		Config: cfg,
		source: complex(cfg.Z0, 0),
		load:   complex(cfg.Z0, 0),
		logger: logger,
	}
}

// Source 源阻抗
func (s *Session) Source() complex128 { return s.source }

// Load 负载阻抗
func (s *Session) Load() complex128 { return s.load }

// SetSource 设置源阻抗
func (s *Session) SetSource(z complex128) error {
	if s.trace != nil {
		if err := s.trace.SetSource(z); err != nil {
			return err
		}
	}
	s.source = z
	return nil
}

// SetLoad 设置负载阻抗，已有轨迹随之重建
func (s *Session) SetLoad(z complex128) error {
	if s.trace != nil {
		if err := s.trace.SetLoad(z); err != nil {
			return err
		}
	}
	s.load = z
	return nil
}

// Calculator 当前源负载的匹配计算器
func (s *Session) Calculator() matching.Calculator {
	return matching.NewCalculator(s.Config, s.source, s.load)
}

// Solutions 全部拓扑的匹配方案
func (s *Session) Solutions() []matching.Solution {
	sols := s.Calculator().All()
	s.logger.Debug("计算匹配方案", "source", s.source, "load", s.load, "count", len(sols))
	return sols
}

// Trace 匹配轨迹，首次访问时创建
func (s *Session) Trace() *trace.MatchingTrace {
	if s.trace == nil {
		s.trace = trace.New(s.Config, s.source, s.load, trace.WithLogger(s.logger))
	}
	return s.trace
}

// SetMeasured 设置测量数据，nil 清除
func (s *Session) SetMeasured(data *sparam.Data) { s.measured = data }

// Record 当前轨迹快照，含测量 S11 轨迹
func (s *Session) Record() *debug.Record {
	rec := &debug.Record{}
	rec.Update(s.Trace())
	if s.measured != nil && !s.measured.Empty() {
		rec.AddMeasured(s.measured.Trace(s.Config.Z0))
	}
	return rec
}

// Import 从网表文件重建轨迹
func (s *Session) Import(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	elements, err := LoadNetList(file, s.Config.Frequency)
	if err != nil {
		return err
	}
	return s.Apply(elements)
}

// Apply 清空轨迹后按负载端到源端的顺序加入元件
func (s *Session) Apply(elements []types.MatchingElement) error {
	tr := s.Trace()
	backup := tr.Elements()
	tr.Clear()
	if err := addElements(tr, elements); err != nil {
		tr.Clear()
		if rerr := addElements(tr, backup); rerr != nil {
			s.logger.Error("恢复轨迹失败", "err", rerr)
		}
		return err
	}
	return nil
}

func addElements(tr *trace.MatchingTrace, elements []types.MatchingElement) error {
	for i := len(elements) - 1; i >= 0; i-- {
		e := elements[i]
		var err error
		if e.Connection == types.Shunt {
			err = tr.AddShuntElement(e.Kind, e.Value)
		} else {
			err = tr.AddSeriesElement(e.Kind, e.Value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Export 导出轨迹元件到网表文件
func (s *Session) Export(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return ExportNetList(file, s.Trace().Elements())
}

// ExportNetList 按源端到负载端的顺序写出网表
func ExportNetList(w io.Writer, elements []types.MatchingElement) error {
	writer := bufio.NewWriter(w)
	for _, line := range matching.NetList(elements) {
		writer.WriteString(line)
		writer.WriteRune('\n')
	}
	return writer.Flush()
}

// LoadNetList 读取网表，节点 2 为 0 的元件为并联
// 空行、# 注释和 . 开头的控制行被忽略。
func LoadNetList(r io.Reader, freq float64) ([]types.MatchingElement, error) {
	var elements []types.MatchingElement
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line[0] == '.' {
			continue
		}
		fields := utils.Fields(line)
		if len(fields) < 4 {
			return nil, fmt.Errorf("%w: 第 %d 行字段不足: %s", ErrNetList, n, line)
		}
		symbol, _ := fields.SeparationPrick(0)
		kind, ok := types.GetSymbolKind(symbol)
		if !ok {
			return nil, fmt.Errorf("%w: 第 %d 行未知元件: %s", ErrNetList, n, line)
		}
		value, err := fields.Value(3)
		if err != nil {
			return nil, fmt.Errorf("%w: 第 %d 行: %w", ErrNetList, n, err)
		}
		conn := types.Series
		if fields.ParseInt(2, -1) == 0 {
			conn = types.Shunt
		}
		e := element.NewMatchingElement(types.ComponentValue{Kind: kind, Value: value, Frequency: freq}, conn)
		if kind.Distributed() {
			e.LineZ0 = fields.ParseFloat64(4, 0)
			if e.LineZ0 <= 0 {
				return nil, fmt.Errorf("%w: 第 %d 行缺少特征阻抗: %s", ErrNetList, n, line)
			}
		}
		elements = append(elements, e)
	}
	return elements, scanner.Err()
}
