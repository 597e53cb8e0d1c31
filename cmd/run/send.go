package run

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stratum/internal/conf"
	"stratum/internal/flog"
	"stratum/internal/pipeline"
)

var (
	message   string
	showTrace bool
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Run one message through encapsulation and decapsulation",
	Run: func(cmd *cobra.Command, args []string) {
		startSend()
	},
}

func init() {
	sendCmd.Flags().StringVarP(&message, "message", "m", "Hello, OSI Model!", "message to send through the layers")
	sendCmd.Flags().BoolVar(&showTrace, "trace", true, "render the per-layer trace")
	rootCmd.AddCommand(sendCmd)
}

func startSend() {
	cfg := loadConf()

	p, err := pipeline.New(cfg)
	if err != nil {
		flog.Fatalf("Failed to initialize pipeline: %v", err)
	}

	wire, result, err := p.RoundTrip(message)
	if err != nil {
		flog.Fatalf("Pipeline failed: %v", err)
	}

	if showTrace {
		renderTrace(wire.Trace())
		renderTrace(result.Trace())
	}
	renderVerification(message, wire, result)
}

func loadConf() *conf.Conf {
	var cfg *conf.Conf
	var err error
	if confPath == "" {
		cfg = conf.Default()
	} else if cfg, err = conf.LoadFromFile(confPath); err != nil {
		flog.Fatalf("Failed to load configuration: %v", err)
	}

	level, err := flog.ParseLevel(cfg.Log.Level)
	if err != nil {
		flog.Fatalf("Invalid log level: %v", err)
	}
	flog.SetLevel(level)
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			flog.Fatalf("Failed to open log file: %v", err)
		}
		flog.SetOutput(f)
	}

	return cfg
}

func renderVerification(original string, wire *pipeline.Wire, result *pipeline.Result) {
	fmt.Println(titleStyle.Render("VERIFICATION"))
	fmt.Printf("  Session:      %s\n", wire.SessionID)
	fmt.Printf("  Original:     %q\n", original)
	fmt.Printf("  Decapsulated: %q\n", result.Message)
	fmt.Printf("  Warnings:     %d\n", len(result.Warnings))
	for _, w := range result.Warnings {
		fmt.Printf("    - %s\n", w)
	}
	if original == result.Message {
		fmt.Println(okStyle.Render("  Match: true"))
	} else {
		fmt.Println(badStyle.Render("  Match: false"))
	}
}
