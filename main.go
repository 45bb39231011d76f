// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tfctl/tblsel/internal/cacheutil"
	"github.com/tfctl/tblsel/internal/command"
	"github.com/tfctl/tblsel/internal/config"
	"github.com/tfctl/tblsel/internal/log"
	"github.com/tfctl/tblsel/internal/source"
	"github.com/tfctl/tblsel/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs handles command-specific argument processing.
func processCommandArgs(args []string) []string {
	if len(args) > 1 && args[1] == "completion" {
		// Short-circuit completion: pass args directly.
		return args
	}

	args = processSourceArg(args)
	args = processSetOnly(args)
	log.Debugf("args after set processing: args=%v", args)

	return deduplicateFlags(args, command.RepeatableFlags())
}

// processSourceArg makes sure the argument immediately following the command
// is the table source, inserting "-" (stdin) when it is missing or is a flag
// or @set.
func processSourceArg(args []string) []string {
	if len(args) == 2 || (args[2] != source.Stdin && (strings.HasPrefix(args[2], "-") || strings.HasPrefix(args[2], "@"))) {
		args = injectArgs(args, 2, []string{source.Stdin})
	}
	return args
}

// processSetOnly expands an @set argument in place. Without one, the
// "defaults" set, if configured, is expanded right after the source so that
// anything on the command line still wins.
func processSetOnly(args []string) []string {
	idx := 3
	set := "defaults"
	for i := 3; i < len(args); i++ {
		if strings.HasPrefix(args[i], "@") {
			set = args[i][1:]
			idx = i
			args = append(args[:i:i], args[i+1:]...)
			break
		}
	}

	entries := config.Set(args[1], set)
	log.Debugf("set %s expands to %v", set, entries)
	return injectArgs(args, min(idx, len(args)), entries)
}

// injectArgs returns a copy of args with extra inserted at idx.
func injectArgs(args []string, idx int, extra []string) []string {
	if len(extra) == 0 {
		return args
	}

	out := make([]string, 0, len(args)+len(extra))
	out = append(out, args[:idx]...)
	out = append(out, extra...)
	return append(out, args[idx:]...)
}

// deduplicateFlags drops every earlier occurrence of a flag given more than
// once so the last one wins, which lets the command line override an expanded
// set. Flags in repeatable accumulate and are left alone. A flag followed by
// a token that is not itself a flag is taken to carry that token as its value.
func deduplicateFlags(args []string, repeatable map[string]bool) []string {
	if len(args) <= 2 {
		return args
	}

	type unit struct {
		name   string
		tokens []string
	}

	var units []unit
	rest := args[2:]
	for i := 0; i < len(rest); i++ {
		tok := rest[i]
		if !isFlag(tok) {
			units = append(units, unit{tokens: []string{tok}})
			continue
		}

		name, _, hasValue := strings.Cut(tok, "=")
		u := unit{name: name, tokens: []string{tok}}
		if !hasValue && i+1 < len(rest) && !isFlag(rest[i+1]) {
			u.tokens = append(u.tokens, rest[i+1])
			i++
		}
		units = append(units, u)
	}

	last := map[string]int{}
	for i, u := range units {
		if u.name != "" {
			last[u.name] = i
		}
	}

	out := append([]string{}, args[:2]...)
	for i, u := range units {
		if u.name != "" && !repeatable[u.name] && last[u.name] != i {
			continue
		}
		out = append(out, u.tokens...)
	}
	return out
}

func isFlag(tok string) bool {
	return strings.HasPrefix(tok, "-") && tok != source.Stdin
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

// cleanCache drops cached s3 objects older than cache.clean hours. Zero or a
// missing key leaves the cache alone.
func cleanCache() {
	if _, ok, err := cacheutil.EnsureBaseDir(); !ok {
		log.Debugf("cache unavailable: err=%v", err)
		return
	}
	if hours, _ := config.GetInt("cache.clean", 0); hours > 0 {
		if err := cacheutil.Purge(time.Duration(hours) * time.Hour); err != nil {
			log.Debugf("cache purge failed: err=%v", err)
		}
	}
}

func realMain() int {
	log.InitLogger()
	cleanCache()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processCommandArgs(args)
	}

	return initAndRunApp(args)
}
