package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"gopkg.in/yaml.v2"

	"lifeee/internal/survey"
)

func runArgs(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestSurveyText(t *testing.T) {
	c := qt.New(t)
	code, out, errOut := runArgs("--gens", "20", "--workers", "2")
	c.Assert(code, qt.Equals, 0, qt.Commentf("stderr: %s", errOut))
	lines := strings.Split(strings.TrimSpace(out), "\n")
	c.Assert(lines[0], qt.Matches, `NAME +KIND +INITIAL +FINAL +PEAK +PERIOD +DISPLACEMENT`)

	var glider string
	for _, l := range lines {
		if strings.HasPrefix(l, "Glider ") {
			glider = l
		}
	}
	c.Assert(glider, qt.Matches, `Glider +spaceship +5 +5 +5 +4 +\(1, 1\)`)
}

func TestSurveyYAML(t *testing.T) {
	c := qt.New(t)
	code, out, _ := runArgs("--gens", "10", "--format", "yaml")
	c.Assert(code, qt.Equals, 0)

	var results []survey.Result
	err := yaml.Unmarshal([]byte(out), &results)
	c.Assert(err, qt.IsNil)
	byName := make(map[string]survey.Result)
	for _, r := range results {
		byName[r.Name] = r
	}
	c.Assert(byName["Block"].Period, qt.Equals, 1)
	c.Assert(byName["Blinker"].Period, qt.Equals, 2)
	c.Assert(byName["LWSS"].DX, qt.Equals, int32(-2))
}

func TestSurveyBadFormat(t *testing.T) {
	c := qt.New(t)
	code, _, errOut := runArgs("--format", "xml")
	c.Assert(code, qt.Equals, 2)
	c.Assert(errOut, qt.Equals, "life-survey: unknown format \"xml\"\n")
}

func TestSurveyCancelled(t *testing.T) {
	c := qt.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errOut bytes.Buffer
	code := run(ctx, []string{"--gens", "100"}, &out, &errOut)
	c.Assert(code, qt.Equals, 1)
	c.Assert(errOut.String(), qt.Contains, "context canceled")
}
