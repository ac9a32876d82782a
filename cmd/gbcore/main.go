package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/kentrosaur/gbcore/internal/gameboy"
	"github.com/kentrosaur/gbcore/pkg/log"
	"github.com/kentrosaur/gbcore/pkg/remote"
	"github.com/kentrosaur/gbcore/pkg/utils"
)

var (
	bootPath   string
	debug      bool
	serial     bool
	listenAddr string
	cycles     uint64
)

var rootCmd = &cobra.Command{
	Use:   "gbcore <rom>",
	Short: "Headless SM83 emulation core",
	Long: `gbcore runs a Game Boy ROM image on the headless emulation core.

Without --listen it runs for a fixed number of machine cycles and
prints the final state hash, which is stable across runs. With
--listen it serves a websocket debugger instead and only runs on the
debugger's command.`,
	Args: cobra.ExactArgs(1),
	RunE: run,

	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&bootPath, "boot", "", "boot ROM image to run before the cartridge")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging and CPU debug mode")
	rootCmd.Flags().BoolVar(&serial, "serial", false, "print link port output to stdout")
	rootCmd.Flags().StringVar(&listenAddr, "listen", "", "serve a websocket debugger on this address")
	rootCmd.Flags().Uint64Var(&cycles, "cycles", 10_000_000, "machine cycles to run for")
}

func run(cmd *cobra.Command, args []string) error {
	rom, err := utils.LoadROM(args[0])
	if err != nil {
		return fmt.Errorf("loading %s: %w", args[0], err)
	}

	logger := log.NewWithWriter(os.Stderr, debug)

	opts := []gameboy.GameBoyOpt{gameboy.WithLogger(logger)}
	if debug {
		opts = append(opts, gameboy.Debug())
	}
	if serial {
		opts = append(opts, gameboy.WithSerialDebugger(os.Stdout))
	}
	if bootPath != "" {
		image, err := utils.LoadROM(bootPath)
		if err != nil {
			return fmt.Errorf("loading %s: %w", bootPath, err)
		}
		opts = append(opts, gameboy.WithBootROM(image))
	}

	gb, err := gameboy.NewGameBoy(rom, opts...)
	if err != nil {
		return err
	}

	if listenAddr != "" {
		logger.Infof("serving the debugger on ws://%s/debug", listenAddr)
		http.Handle("/debug", remote.NewServer(gb, logger))
		return http.ListenAndServe(listenAddr, nil)
	}

	if err := gb.RunFor(cycles); err != nil {
		return err
	}
	fmt.Printf("%d machine cycles, state %016x\n", gb.Cycles(), gb.StateHash())
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
