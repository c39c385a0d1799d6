package options

import (
	"errors"

	"github.com/mason-leap-lab/go-utils/config"
)

var (
	ErrInvalidN      = errors.New("number of samples must be positive")
	ErrInvalidBits   = errors.New("sample width must be 16 or 32 bits")
	ErrInvalidWindow = errors.New("latency window must not be negative")
	ErrInvalidRounds = errors.New("rounds must be positive")
)

// Options Options definition
type Options struct {
	config.LoggerOptions

	N       int    `name:"n" description:"Number of samples fed per round."`
	Seed    int64  `name:"seed" description:"Seed of sample generation, 0 for time based."`
	Bits    int    `name:"bits" description:"Sample width: 16 or 32."`
	Window  int64  `name:"window" description:"Window of the moving average of per insertion latency, 0 to time the whole round only."`
	Rounds  int    `name:"rounds" description:"Number of rounds over the same samples."`
	Output  string `name:"o" description:"Filename of nanolog records of every insertion, empty to disable."`
	Samples string `name:"samples" description:"Load samples from file instead of generating them."`
	Dump    string `name:"dump" description:"Save generated samples to file for replay."`
	Trace   bool   `name:"trace" description:"Log heap boundaries after every insertion."`
}

// NewOptions returns options with default values assigned.
func NewOptions() *Options {
	return &Options{
		N:      1000000,
		Bits:   16,
		Rounds: 1,
	}
}

// Validate validates options
func (opts *Options) Validate() error {
	if opts.Samples == "" && opts.N <= 0 {
		return ErrInvalidN
	} else if opts.Samples == "" && opts.Bits != 16 && opts.Bits != 32 {
		return ErrInvalidBits
	} else if opts.Window < 0 {
		return ErrInvalidWindow
	} else if opts.Rounds <= 0 {
		return ErrInvalidRounds
	}
	return nil
}
