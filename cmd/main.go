package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"smith"
	"smith/config"
	"smith/debug"
	"smith/matching"
	"smith/types"
	"smith/utils"
)

// errArgument 命令行参数错误
var errArgument = errors.New("参数错误")

var (
	configPath string
	z0Flag     float64
	freqFlag   string
	levelFlag  string

	targetQ  float64
	topology string
	jsonOut  bool
	htmlOut  string
	pngOut   string

	cfg    config.Config
	logger *slog.Logger
)

var (
	rootCmd = &cobra.Command{
		Use:           "smith",
		Short:         "史密斯圆图阻抗匹配工具",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if configPath != "" {
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			} else {
				cfg = config.Default()
			}
			if cmd.Flags().Changed("z0") {
				cfg.Z0 = z0Flag
			}
			if cmd.Flags().Changed("freq") {
				if cfg.Frequency, err = utils.ParseSI(freqFlag); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = levelFlag
			}
			if err = cfg.Validate(); err != nil {
				return err
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
			return nil
		},
	}

	gammaCmd = &cobra.Command{
		Use:   "gamma <Z>",
		Short: "阻抗换算为反射系数",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := parseImpedance(args[0])
			if err != nil {
				return err
			}
			imp := types.Impedance{Value: z, Z0: cfg.Z0}
			r := imp.Gamma()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Z    = %s\n", imp)
			fmt.Fprintf(out, "z    = %s\n", imp.NormalizedString())
			fmt.Fprintf(out, "Γ    = %s (%s)\n", r, r.PolarString())
			fmt.Fprintf(out, "VSWR = %.4f\n", r.VSWR())
			fmt.Fprintf(out, "RL   = %.4f dB\n", r.ReturnLoss())
			fmt.Fprintf(out, "ML   = %.4f dB\n", r.MismatchLoss())
			return nil
		},
	}

	matchCmd = &cobra.Command{
		Use:   "match <Zs> <Zl>",
		Short: "计算匹配网络",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(args[0], args[1])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("q") {
				s.Config.TargetQ = targetQ
			}
			sols, err := filterTopology(s.Calculator(), topology)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(sols) == 0 {
				fmt.Fprintln(out, "无可用匹配方案")
				return nil
			}
			for _, sol := range matching.RankByQ(sols) {
				fmt.Fprintln(out, sol.Description())
				for _, line := range sol.NetList() {
					fmt.Fprintln(out, "  "+line)
				}
			}
			return nil
		},
	}

	traceCmd = &cobra.Command{
		Use:   "trace <Zl> <series|shunt>:<R|L|C>:<value>...",
		Short: "沿元件链绘制阻抗轨迹",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := buildTrace(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOut {
				return s.Record().Render(out)
			}
			for i, seg := range s.Trace().Segments() {
				end := seg.End()
				fmt.Fprintf(out, "%d %-24s %s -> %s\n", i, seg.Label, seg.Arc,
					types.Impedance{Value: end.Impedance, Z0: cfg.Z0})
			}
			m := s.Trace().Mismatch()
			fmt.Fprintf(out, "Zin  = %s\n", types.Impedance{Value: s.Trace().CurrentImpedance(), Z0: cfg.Z0})
			fmt.Fprintf(out, "|Γ|  = %.4f VSWR = %.4f\n", m.Magnitude(), m.VSWR())
			return nil
		},
	}

	chartCmd = &cobra.Command{
		Use:   "chart <Zl> <series|shunt>:<R|L|C>:<value>...",
		Short: "输出圆图网页或图片",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if htmlOut == "" && pngOut == "" {
				return fmt.Errorf("%w: 需要 --html 或 --png", errArgument)
			}
			s, err := buildTrace(args)
			if err != nil {
				return err
			}
			rec := s.Record()
			if htmlOut != "" {
				if err := writeFile(htmlOut, func(f *os.File) error {
					c := debug.Charts{Record: *rec}
					return c.Render(f)
				}); err != nil {
					return err
				}
				logger.Info("网页已输出", "file", htmlOut)
			}
			if pngOut != "" {
				if err := writeFile(pngOut, func(f *os.File) error {
					return rec.WritePlot(f, 6*96, debug.FormatPNG)
				}); err != nil {
					return err
				}
				logger.Info("图片已输出", "file", pngOut)
			}
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML 配置文件")
	rootCmd.PersistentFlags().Float64Var(&z0Flag, "z0", config.DefaultZ0, "参考阻抗 (Ω)")
	rootCmd.PersistentFlags().StringVar(&freqFlag, "freq", "1G", "工作频率，支持工程后缀")
	rootCmd.PersistentFlags().StringVar(&levelFlag, "log-level", config.DefaultLogLevel, "日志级别 debug|info|warn|error")

	rootCmd.AddCommand(gammaCmd)

	rootCmd.AddCommand(matchCmd)
	matchCmd.Flags().Float64Var(&targetQ, "q", config.DefaultTargetQ, "Pi/T 网络目标Q值")
	matchCmd.Flags().StringVar(&topology, "topology", "all", "拓扑 all|l|pi|t|stub|qw")

	rootCmd.AddCommand(traceCmd)
	traceCmd.Flags().BoolVar(&jsonOut, "json", false, "以 JSON 输出轨迹")

	rootCmd.AddCommand(chartCmd)
	chartCmd.Flags().StringVar(&htmlOut, "html", "", "echarts 网页输出文件")
	chartCmd.Flags().StringVar(&pngOut, "png", "", "PNG 输出文件")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseImpedance 解析阻抗，虚部可写作 i 或 j
func parseImpedance(s string) (complex128, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "j", "i")
	return utils.Fields(s).Complex(0)
}

// parseElement 解析元件参数 如 "series:L:10n" "shunt:C:1.5p"
func parseElement(arg string) (types.Connection, types.ComponentKind, float64, error) {
	parts := strings.Split(arg, ":")
	if len(parts) != 3 {
		return 0, types.KindNone, 0, fmt.Errorf("%w: %q", errArgument, arg)
	}
	var conn types.Connection
	switch strings.ToLower(parts[0]) {
	case "series", "s":
		conn = types.Series
	case "shunt", "p":
		conn = types.Shunt
	default:
		return 0, types.KindNone, 0, fmt.Errorf("%w: 接法 %q", errArgument, parts[0])
	}
	kind, ok := types.GetSymbolKind(strings.ToUpper(parts[1]))
	if !ok || !kind.Lumped() {
		return 0, types.KindNone, 0, fmt.Errorf("%w: 元件 %q", errArgument, parts[1])
	}
	value, err := utils.ParseSI(parts[2])
	if err != nil {
		return 0, types.KindNone, 0, err
	}
	return conn, kind, value, nil
}

func newSession(source, load string) (*smith.Session, error) {
	s := smith.NewSession(cfg, logger)
	zs, err := parseImpedance(source)
	if err != nil {
		return nil, err
	}
	zl, err := parseImpedance(load)
	if err != nil {
		return nil, err
	}
	if err := s.SetSource(zs); err != nil {
		return nil, err
	}
	return s, s.SetLoad(zl)
}

// buildTrace 参数依次为负载阻抗和从负载端开始的元件
func buildTrace(args []string) (*smith.Session, error) {
	zl, err := parseImpedance(args[0])
	if err != nil {
		return nil, err
	}
	s := smith.NewSession(cfg, logger)
	if err := s.SetLoad(zl); err != nil {
		return nil, err
	}
	tr := s.Trace()
	for _, arg := range args[1:] {
		conn, kind, value, err := parseElement(arg)
		if err != nil {
			return nil, err
		}
		if conn == types.Shunt {
			err = tr.AddShuntElement(kind, value)
		} else {
			err = tr.AddSeriesElement(kind, value)
		}
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// filterTopology 按名称筛选方案
func filterTopology(c matching.Calculator, name string) ([]matching.Solution, error) {
	switch strings.ToLower(name) {
	case "all", "":
		return c.All(), nil
	case "l":
		return c.LSection(), nil
	case "pi":
		return c.PiNetwork(c.TargetQ), nil
	case "t":
		return c.TNetwork(c.TargetQ), nil
	case "stub":
		return c.SingleStub(), nil
	case "qw":
		return c.QuarterWave(), nil
	}
	return nil, fmt.Errorf("%w: 拓扑 %q", errArgument, name)
}

func writeFile(name string, fn func(*os.File) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
