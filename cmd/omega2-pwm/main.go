package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"omega2-pwm/internal/config"
	"omega2-pwm/internal/devmem"
	"omega2-pwm/internal/mt7688"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// newRegIO is swapped out by tests so no real hardware is touched.
var newRegIO = func(memDevice string) mt7688.RegIO {
	return &devmem.Accessor{Path: memDevice}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "\nUsage:\tomega2-pwm [-config FILE] <channel> <frequency> [duty]\n")
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)

	fs := flag.NewFlagSet("omega2-pwm", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr) }
	configPath := fs.String("config", "", "path to YAML board profile")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	rest := fs.Args()
	if len(rest) < 2 {
		usage(stderr)
		return exitUsage
	}

	channel, err := strconv.Atoi(rest[0])
	if err != nil || channel < 0 || channel >= mt7688.NumChannels {
		logger.Printf("Invalid channel number")
		return exitError
	}

	freq64, err := strconv.ParseUint(rest[1], 10, 32)
	if err != nil {
		logger.Printf("Invalid frequency number")
		return exitError
	}
	freq := uint32(freq64)

	duty := uint32(50)
	if len(rest) >= 3 {
		d, err := strconv.ParseUint(rest[2], 10, 32)
		if err != nil || d > 100 {
			logger.Printf("Invalid duty number")
			return exitError
		}
		duty = uint32(d)
	}

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			logger.Printf("config load failed: %v", err)
			return exitError
		}
	}

	dev := newRegIO(cfg.MemDevice)

	if freq > 0 {
		// Check the frequency is achievable before any register is written.
		if _, err := mt7688.SelectMode(freq); err != nil {
			fmt.Fprintln(stdout, "Frequency out of range")
			return exitError
		}
		if err := applyPinmux(dev, cfg.ForChannel(channel)); err != nil {
			logger.Printf("pinmux setup failed: %v", err)
			return exitError
		}
	}

	if err := mt7688.Program(dev, channel, freq, duty); err != nil {
		if errors.Is(err, mt7688.ErrOutOfRange) {
			fmt.Fprintln(stdout, "Frequency out of range")
			return exitError
		}
		logger.Printf("pwm programming failed: %v", err)
		return exitError
	}

	return exitOK
}

// applyPinmux muxes the channel's pad per the board profile.
func applyPinmux(dev mt7688.RegIO, entries []config.PinmuxEntry) error {
	for _, p := range entries {
		cur, err := dev.ReadReg(p.Address)
		if err != nil {
			return err
		}
		if err := dev.WriteReg(p.Address, cur&^p.Mask|p.Value); err != nil {
			return err
		}
	}
	return nil
}
