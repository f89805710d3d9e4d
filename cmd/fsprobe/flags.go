package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bamsammich/fsprobe/internal/filter"
	"github.com/bamsammich/fsprobe/internal/probe"
)

var (
	_ pflag.Value = (*sizeFlag)(nil)
	_ pflag.Value = (*hashFlag)(nil)
)

// sizeFlag is a pflag.Value that accepts human sizes such as 10K or 1.5G.
type sizeFlag struct {
	n *int64
}

func (f *sizeFlag) String() string {
	if f.n == nil {
		return "0"
	}
	return strconv.FormatInt(*f.n, 10)
}

func (*sizeFlag) Type() string { return "size" }

func (f *sizeFlag) Set(val string) error {
	n, err := filter.ParseSize(val)
	if err != nil {
		return err
	}
	*f.n = n
	return nil
}

// hashFlag is a pflag.Value restricted to the algorithms probe.Hash knows.
type hashFlag struct {
	algo *string
}

func (f *hashFlag) String() string {
	if f.algo == nil {
		return ""
	}
	return *f.algo
}

func (*hashFlag) Type() string { return "algo" }

func (f *hashFlag) Set(val string) error {
	val = normalizeAlgo(val)
	if err := validateAlgo(val); err != nil {
		return err
	}
	*f.algo = val
	return nil
}

func normalizeAlgo(algo string) string {
	return strings.ToLower(strings.TrimSpace(algo))
}

func validateAlgo(algo string) error {
	if !slices.Contains(probe.Algorithms(), algo) {
		return fmt.Errorf("%w: %q (want one of %s)",
			probe.ErrUnknownAlgorithm, algo, strings.Join(probe.Algorithms(), ", "))
	}
	return nil
}
