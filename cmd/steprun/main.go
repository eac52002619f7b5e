// Command steprun is a headless host for the step kernel. It seeds a grid,
// calls the kernel once per step, logs grid statistics and can write a final
// heatmap or stream every state to websocket viewers.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"gridstep/internal/config"
	"gridstep/internal/core"
	_ "gridstep/internal/rules/average"
	_ "gridstep/internal/rules/diffusion"
	_ "gridstep/internal/rules/moore"
	_ "gridstep/internal/rules/shortcut"
	pcore "gridstep/pkg/core"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// parseFlags builds the run configuration: the -config file first, then any
// flag given explicitly on the command line.
func parseFlags(fs *flag.FlagSet, args []string) (*config.RunConfig, outputs, bool, error) {
	var (
		out        outputs
		overrides  kvList
		configPath = fs.String("config", "", "JSON run configuration")
		rule       = fs.String("rule", "average4", "step rule to run")
		n          = fs.Int("n", 64, "grid side length")
		steps      = fs.Int("steps", 100, "number of steps to run")
		seed       = fs.Int64("seed", 42, "seed for the starting pattern")
		pattern    = fs.String("pattern", "uniform", "starting pattern: "+strings.Join(pcore.Patterns, ", "))
		tps        = fs.Int("tps", 0, "steps per second, 0 runs unpaced")
		logEvery   = fs.Int("log-every", 10, "steps between statistics lines, 0 disables")
		timeout    = fs.String("timeout", "", "stop the run after this duration")
		list       = fs.Bool("list", false, "list rules and their parameters, then exit")
	)
	fs.Var(&overrides, "set", "rule parameter override in key=value form (repeatable)")
	fs.StringVar(&out.heatmap, "png", "", "write a heatmap of the final state to this file")
	fs.StringVar(&out.serve, "serve", "", "stream frames over websocket on this address")
	if err := fs.Parse(args); err != nil {
		return nil, out, false, err
	}

	cfg := &config.RunConfig{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return nil, out, false, err
		}
		cfg = loaded
	}

	flagged := &config.RunConfig{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rule":
			flagged.Rule = rule
		case "n":
			flagged.N = n
		case "steps":
			flagged.Steps = steps
		case "seed":
			flagged.Seed = seed
		case "pattern":
			flagged.Pattern = pattern
		case "tps":
			flagged.TPS = tps
		case "log-every":
			flagged.LogEvery = logEvery
		case "timeout":
			flagged.Timeout = timeout
		}
	})
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if flagged.Params == nil {
			flagged.Params = make(map[string]string)
		}
		flagged.Params[parts[0]] = parts[1]
	}
	cfg.Merge(flagged)
	if err := cfg.Validate(); err != nil {
		return nil, out, false, err
	}
	return cfg, out, *list, nil
}

func listRules() {
	for _, name := range core.Names() {
		rule, err := core.Lookup(name, nil)
		if err != nil {
			continue
		}
		radius := fmt.Sprint(rule.Radius())
		if rule.Radius() == core.RadiusGlobal {
			radius = "global"
		}
		fmt.Printf("%s (radius %s)\n", name, radius)
		provider, ok := rule.(core.ParameterProvider)
		if !ok {
			continue
		}
		for _, p := range provider.Parameters().Params {
			fmt.Printf("  %s=%s  %s\n", p.Key, p.Value, p.Description)
		}
	}
}

func main() {
	cfg, out, list, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if list {
		listRules()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := run(ctx, cfg, out)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s n=%d steps=%d %s\n", res.rule, res.n, res.steps, res.stats)
}
