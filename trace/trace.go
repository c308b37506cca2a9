// Package trace 匹配轨迹引擎
//
// MatchingTrace 从负载阻抗出发，按加入顺序记录每个串联或并联元件
// 在史密斯圆图上扫过的轨迹段。第 i 段的起点恒等于第 i-1 段的终点，
// 第 0 段起于负载；修改任一段的元件值后，其后所有段依次重建。
package trace

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"smith/config"
	"smith/element"
	"smith/maths"
	"smith/matching"
	"smith/types"
)

// 轨迹编辑错误
var (
	ErrIndexOutOfRange = errors.New("轨迹段索引越界")
	ErrInvalidValue    = errors.New("元件值无效")
	ErrUnsupportedKind = errors.New("不支持的元件类型")
)

// MatchingTrace 匹配轨迹，由单个调用方持有，非并发安全
type MatchingTrace struct {
	source    complex128
	load      complex128
	z0        float64
	frequency float64
	steps     int
	segments  []Segment
	qCircles  []maths.QCircle
	logger    *slog.Logger
}

// Option 构造选项
type Option func(*MatchingTrace)

// WithLogger 注入日志
func WithLogger(logger *slog.Logger) Option {
	return func(t *MatchingTrace) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithSteps 每段采样点数，小于 2 时忽略
func WithSteps(n int) Option {
	return func(t *MatchingTrace) {
		if n >= 2 {
			t.steps = n
		}
	}
}

// New 创建匹配轨迹
func New(cfg config.Config, source, load complex128, opts ...Option) *MatchingTrace {
	t := &MatchingTrace{
		source:    source,
		load:      load,
		z0:        cfg.Z0,
		frequency: cfg.Frequency,
		steps:     cfg.ArcSteps,
		logger:    slog.New(slog.DiscardHandler),
	}
	if t.steps < 2 {
		t.steps = config.DefaultArcSteps
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Source 源阻抗
func (t *MatchingTrace) Source() complex128 { return t.source }

// Load 负载阻抗
func (t *MatchingTrace) Load() complex128 { return t.load }

// Z0 参考阻抗
func (t *MatchingTrace) Z0() float64 { return t.z0 }

// Frequency 频率
func (t *MatchingTrace) Frequency() float64 { return t.frequency }

// Steps 每段采样点数
func (t *MatchingTrace) Steps() int { return t.steps }

// Len 轨迹段数量
func (t *MatchingTrace) Len() int { return len(t.segments) }

// SetSource 设置源阻抗，源阻抗不参与轨迹生成
func (t *MatchingTrace) SetSource(z complex128) error {
	if !maths.Finite(z) {
		return fmt.Errorf("%w: source %v", ErrInvalidValue, z)
	}
	t.source = z
	return nil
}

// SetLoad 设置负载阻抗并重建全部轨迹
func (t *MatchingTrace) SetLoad(z complex128) error {
	if !maths.Finite(z) {
		return fmt.Errorf("%w: load %v", ErrInvalidValue, z)
	}
	t.load = z
	return t.rebuildFrom(0)
}

// SetZ0 设置参考阻抗并重建全部轨迹
func (t *MatchingTrace) SetZ0(z0 float64) error {
	if !validValue(z0) {
		return fmt.Errorf("%w: z0 %v", ErrInvalidValue, z0)
	}
	t.z0 = z0
	return t.rebuildFrom(0)
}

// SetFrequency 设置频率并重建全部轨迹，元件值保持不变
func (t *MatchingTrace) SetFrequency(freq float64) error {
	if !validValue(freq) {
		return fmt.Errorf("%w: frequency %v", ErrInvalidValue, freq)
	}
	t.frequency = freq
	return t.rebuildFrom(0)
}

// AddSeriesElement 追加串联元件
func (t *MatchingTrace) AddSeriesElement(kind types.ComponentKind, value float64) error {
	return t.add(kind, types.Series, value)
}

// AddShuntElement 追加并联元件
func (t *MatchingTrace) AddShuntElement(kind types.ComponentKind, value float64) error {
	return t.add(kind, types.Shunt, value)
}

func (t *MatchingTrace) add(kind types.ComponentKind, conn types.Connection, value float64) error {
	index := len(t.segments)
	seg, err := t.build(kind, conn, value, t.CurrentImpedance(), index%len(Palette))
	if err != nil {
		return err
	}
	t.segments = append(t.segments, seg)
	t.logger.Debug("添加元件", "index", index, "kind", kind, "connection", conn, "value", value)
	return nil
}

// UpdateSegmentValue 修改第 i 段元件值，其后各段依次重建
func (t *MatchingTrace) UpdateSegmentValue(i int, value float64) error {
	if i < 0 || i >= len(t.segments) {
		return fmt.Errorf("%w: %d (共 %d 段)", ErrIndexOutOfRange, i, len(t.segments))
	}
	old := t.segments[i]
	seg, err := t.build(old.Component.Kind, old.Connection, value, t.startOf(i), old.Color)
	if err != nil {
		return err
	}
	t.segments[i] = seg
	t.logger.Debug("修改元件", "index", i, "kind", old.Component.Kind, "from", old.Component.Value, "to", value)
	return t.rebuildFrom(i + 1)
}

// Segment 第 i 段副本
func (t *MatchingTrace) Segment(i int) (Segment, error) {
	if i < 0 || i >= len(t.segments) {
		return Segment{}, fmt.Errorf("%w: %d (共 %d 段)", ErrIndexOutOfRange, i, len(t.segments))
	}
	return t.segments[i].clone(), nil
}

// Segments 全部轨迹段副本
func (t *MatchingTrace) Segments() []Segment {
	out := make([]Segment, len(t.segments))
	for i, s := range t.segments {
		out[i] = s.clone()
	}
	return out
}

// RemoveLastSegment 删除最后一段，无段时返回 false
func (t *MatchingTrace) RemoveLastSegment() bool {
	if len(t.segments) == 0 {
		return false
	}
	t.segments = t.segments[:len(t.segments)-1]
	t.logger.Debug("删除元件", "remaining", len(t.segments))
	return true
}

// Clear 清空轨迹
func (t *MatchingTrace) Clear() {
	t.segments = nil
	t.logger.Debug("清空轨迹")
}

// CurrentImpedance 最后一段终点阻抗，无段时为负载
func (t *MatchingTrace) CurrentImpedance() complex128 {
	if len(t.segments) == 0 {
		return t.load
	}
	return t.segments[len(t.segments)-1].End().Impedance
}

// CurrentGamma 当前反射系数
func (t *MatchingTrace) CurrentGamma() complex128 {
	return maths.ImpedanceToGamma(t.CurrentImpedance(), t.z0)
}

// Mismatch 当前阻抗相对源阻抗的反射系数 (Z-Zs*)/(Z+Zs)
func (t *MatchingTrace) Mismatch() types.Reflection {
	z, zs := t.CurrentImpedance(), t.source
	den := z + zs
	if maths.NearZero(den) {
		return types.Reflection{Gamma: complex(maths.Sentinel, 0), Z0: t.z0}
	}
	conj := complex(real(zs), -imag(zs))
	return types.Reflection{Gamma: (z - conj) / den, Z0: t.z0}
}

// Elements 按源端到负载端排列的元件列表
func (t *MatchingTrace) Elements() []types.MatchingElement {
	out := make([]types.MatchingElement, len(t.segments))
	for i, s := range t.segments {
		out[len(t.segments)-1-i] = s.Element()
	}
	return out
}

// ApplySolution 按负载端到源端的顺序追加方案中的集总元件
// 方案含分布参数元件时返回错误且轨迹不变。
func (t *MatchingTrace) ApplySolution(sol matching.Solution) error {
	els := sol.Elements()
	for _, e := range els {
		if _, ok := element.GetElement(e.Kind); !ok {
			return fmt.Errorf("%w: %s", ErrUnsupportedKind, e.Kind)
		}
		if !validValue(e.Value) {
			return fmt.Errorf("%w: %s %v", ErrInvalidValue, e.Kind, e.Value)
		}
	}
	for i := len(els) - 1; i >= 0; i-- {
		if err := t.add(els[i].Kind, els[i].Connection, els[i].Value); err != nil {
			return err
		}
	}
	t.logger.Debug("应用匹配方案", "topology", sol.Topology, "elements", len(els))
	return nil
}

// SetQCircles 设置Q值圆叠加层
func (t *MatchingTrace) SetQCircles(qs ...float64) error {
	circles := make([]maths.QCircle, 0, len(qs))
	for _, q := range qs {
		if !validValue(q) {
			return fmt.Errorf("%w: Q %v", ErrInvalidValue, q)
		}
		circles = append(circles, maths.NewQCircle(q))
	}
	t.qCircles = circles
	return nil
}

// QCircles Q值圆副本
func (t *MatchingTrace) QCircles() []maths.QCircle { return slices.Clone(t.qCircles) }

// startOf 第 i 段起点阻抗
func (t *MatchingTrace) startOf(i int) complex128 {
	if i == 0 {
		return t.load
	}
	return t.segments[i-1].End().Impedance
}

// rebuildFrom 从第 i 段开始依次重建
func (t *MatchingTrace) rebuildFrom(i int) error {
	for j := i; j < len(t.segments); j++ {
		s := t.segments[j]
		seg, err := t.build(s.Component.Kind, s.Connection, s.Component.Value, t.startOf(j), s.Color)
		if err != nil {
			return fmt.Errorf("重建第 %d 段: %w", j, err)
		}
		t.segments[j] = seg
	}
	if i < len(t.segments) {
		t.logger.Debug("重建轨迹", "from", i, "segments", len(t.segments))
	}
	return nil
}

func validValue(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
