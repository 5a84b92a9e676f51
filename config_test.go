package main

import (
	"flag"
	"testing"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Int("port", 8080, "")
	fs.String("data_dir", "./static", "")
	fs.String("upstream_url", "", "")
	return fs
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"PORT":                  "9090",
		"MOCKDATA_UPSTREAM_URL": "http://upstream:8000",
		"MOCKDATA_DIR":          "/srv/data",
	}
	fs := newFlagSet()
	if err := fs.Parse([]string{"-data_dir", "/cli/data"}); err != nil {
		t.Fatal(err)
	}
	if err := applyEnv(fs, func(k string) string { return env[k] }); err != nil {
		t.Fatal(err)
	}
	if got := fs.Lookup("port").Value.String(); got != "9090" {
		t.Errorf("port = %s", got)
	}
	if got := fs.Lookup("upstream_url").Value.String(); got != "http://upstream:8000" {
		t.Errorf("upstream_url = %s", got)
	}
	if got := fs.Lookup("data_dir").Value.String(); got != "/cli/data" {
		t.Errorf("command line should win, data_dir = %s", got)
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	fs := newFlagSet()
	_ = fs.Parse(nil)
	err := applyEnv(fs, func(k string) string {
		if k == "PORT" {
			return "not-a-number"
		}
		return ""
	})
	if err == nil {
		t.Fatal("expected error for invalid PORT")
	}
}
