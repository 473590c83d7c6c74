package main

import "flag"

// Flags represents the command-line parameters for the window frontend.
type Flags struct {
	Config string
	Scale  int
	TPS    int
	Turbo  int
}

// NewFlags returns Flags populated with sensible defaults.
func NewFlags() *Flags {
	return &Flags{Config: "config.json", Scale: 4, TPS: 30, Turbo: -1}
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.Config, "config", f.Config, "path to the JSON configuration file")
	fs.IntVar(&f.Scale, "scale", f.Scale, "pixel scale multiplier")
	fs.IntVar(&f.TPS, "tps", f.TPS, "ticks per second")
	fs.IntVar(&f.Turbo, "turbo", f.Turbo, "generations per tick (overrides the config when >= 0)")
}
