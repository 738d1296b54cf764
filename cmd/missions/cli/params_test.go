// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

type sourceFlags struct {
	path string
}

func (s *sourceFlags) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&s.path, "dataset", "missions.json", "dataset path")
}

type Paging struct {
	Limit int `flag:"limit" desc:"row limit" default:"20"`
}

func TestBindFlags(t *testing.T) {
	type params struct {
		JSONOutput
		Paging
		Source   sourceFlags
		Query    string   `flag:"query,q" desc:"name search"`
		Agencies []string `flag:"agency" desc:"agencies"`
		Sort     string   `flag:"sort" desc:"order" default:"year_asc"`
		Untagged string
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	if p.Limit != 20 || p.Sort != "year_asc" || p.Source.path != "missions.json" {
		t.Errorf("defaults not applied: %+v", p)
	}

	err := flagSet.Parse([]string{
		"-q", "apollo",
		"--agency", "NASA,ISRO",
		"--agency", "ESA",
		"--json",
		"--limit", "5",
		"--dataset", "other.yaml",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Query != "apollo" {
		t.Errorf("Query = %q", p.Query)
	}
	if strings.Join(p.Agencies, "|") != "NASA|ISRO|ESA" {
		t.Errorf("Agencies = %v", p.Agencies)
	}
	if !p.OutputJSON || p.Limit != 5 || p.Source.path != "other.yaml" {
		t.Errorf("parsed params = %+v", p)
	}
	if flagSet.Lookup("untagged") != nil {
		t.Error("untagged field should not become a flag")
	}
}

func TestBindFlagsErrors(t *testing.T) {
	var notPointer struct{}
	if err := BindFlags(notPointer, pflag.NewFlagSet("x", pflag.ContinueOnError)); err == nil {
		t.Error("non-pointer params should fail")
	}

	type badDefault struct {
		Count int `flag:"count" default:"many"`
	}
	if err := BindFlags(&badDefault{}, pflag.NewFlagSet("x", pflag.ContinueOnError)); err == nil {
		t.Error("unparseable default should fail")
	}

	type unsupported struct {
		Ratio float64 `flag:"ratio"`
	}
	if err := BindFlags(&unsupported{}, pflag.NewFlagSet("x", pflag.ContinueOnError)); err == nil {
		t.Error("unsupported type should fail")
	}
}

func TestEmitJSON(t *testing.T) {
	var output JSONOutput
	var buffer bytes.Buffer

	done, err := output.EmitJSON(&buffer, []string{"a"})
	if done || err != nil || buffer.Len() != 0 {
		t.Errorf("without --json: done=%v err=%v output=%q", done, err, buffer.String())
	}

	output.OutputJSON = true
	var empty []string
	done, err = output.EmitJSON(&buffer, empty)
	if !done || err != nil {
		t.Fatalf("EmitJSON = (%v, %v)", done, err)
	}
	if strings.TrimSpace(buffer.String()) != "[]" {
		t.Errorf("nil slice encoded as %q, want []", buffer.String())
	}
}

func TestNewLogger(t *testing.T) {
	var buffer bytes.Buffer
	newLogger(&buffer, false, 0).Info("dataset loaded", "missions", 9)
	if !strings.HasPrefix(buffer.String(), "{") || !strings.Contains(buffer.String(), `"missions":9`) {
		t.Errorf("non-terminal output should be JSON, got %q", buffer.String())
	}

	buffer.Reset()
	newLogger(&buffer, true, 0).Info("dataset loaded", "missions", 9)
	if !strings.Contains(buffer.String(), "missions=9") {
		t.Errorf("terminal output should be text, got %q", buffer.String())
	}
}
