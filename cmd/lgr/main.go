package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/guptarohit/asciigraph"
	"github.com/notargets/collocation/basis"
	"github.com/notargets/collocation/config"
	"github.com/notargets/collocation/transcription"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

var (
	configFile   string
	verbose      bool
	degree       int
	numIntervals int
	initialTime  float64
	finalTime    float64
	numStates    int
	outFile      string
)

// main registers the lgr commands and exits with status 1 if a command fails
func main() {
	rootCmd := &cobra.Command{
		Use:           "lgr",
		Short:         "inspect Legendre-Gauss-Radau transcriptions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "summarize the transcription and its quadrature",
		RunE:  runInfo,
	}
	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot grid times and quadrature coefficients to a PNG",
		RunE:  runPlot,
	}
	for _, c := range []*cobra.Command{infoCmd, plotCmd} {
		c.Flags().IntVar(&degree, "degree", config.DefaultDegree, "collocation degree")
		c.Flags().IntVar(&numIntervals, "intervals", config.DefaultNumMeshIntervals, "uniform mesh intervals")
		c.Flags().Float64Var(&initialTime, "t0", config.DefaultInitialTime, "initial time")
		c.Flags().Float64Var(&finalTime, "tf", config.DefaultFinalTime, "final time")
		c.Flags().IntVar(&numStates, "states", 0, "number of states")
	}
	plotCmd.Flags().StringVarP(&outFile, "out", "o", "lgr_grid.png", "output PNG path")

	basisCmd := &cobra.Command{
		Use:   "basis [degree]",
		Short: "print the LGR basis table for a degree",
		Args:  cobra.ExactArgs(1),
		RunE:  runBasis,
	}

	rootCmd.AddCommand(infoCmd, plotCmd, basisCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadConfig reads --config if given and applies any flags set explicitly
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("degree") {
		cfg.Degree = degree
	}
	if flags.Changed("intervals") {
		cfg.NumMeshIntervals = numIntervals
		cfg.Mesh = nil
	}
	if flags.Changed("t0") {
		cfg.InitialTime = initialTime
	}
	if flags.Changed("tf") {
		cfg.FinalTime = finalTime
	}
	if flags.Changed("states") {
		cfg.Problem.States = numStates
	}
	return cfg, nil
}

func buildTranscription(cmd *cobra.Command) (transcription.Transcription, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger := newLogger()
	logger.Debug("loaded configuration", "config", configFile, "scheme", cfg.Scheme, "degree", cfg.Degree)
	return cfg.Build(logger)
}

func runInfo(cmd *cobra.Command, args []string) error {
	tr, err := buildTranscription(cmd)
	if err != nil {
		return err
	}
	if s, ok := tr.(fmt.Stringer); ok {
		fmt.Println(s.String())
	}

	q := tr.CreateQuadratureCoefficients()
	fmt.Printf("Quadrature sum: %.15g\n\n", mat.Sum(q))
	graph := asciigraph.Plot(q.RawVector().Data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("quadrature coefficient by grid index"),
	)
	fmt.Println(graph)
	return nil
}

func runBasis(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("degree %q: %w", args[0], err)
	}
	tb, err := basis.NewLGRTable(n)
	if err != nil {
		return err
	}
	fmt.Print(tb.String())
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	tr, err := buildTranscription(cmd)
	if err != nil {
		return err
	}
	if err := savePlotPNG(tr, outFile); err != nil {
		return err
	}
	newLogger().Info("wrote plot", "path", outFile)
	return nil
}
