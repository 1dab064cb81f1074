// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/uhctl/uhctl/internal/cacheutil"
	"github.com/uhctl/uhctl/internal/command"
	"github.com/uhctl/uhctl/internal/config"
	"github.com/uhctl/uhctl/internal/log"
	"github.com/uhctl/uhctl/internal/version"
)

var ctx = context.Background()

// boolFlags never take a value, so the token after them is left alone by
// deduplicateFlags.
var boolFlags = map[string]bool{
	"--clear": true, "--color": true, "-c": true, "--latest": true,
	"--rc": true, "--reset": true, "--schema": true, "--titles": true, "-t": true,
}

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.String())
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

	args = processSetOnly(args)
	log.Debugf("args after set processing: args=%v", args)

	return deduplicateFlags(args)
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	// Pre-create the cache directory that holds sessions.
	if _, _, err := cacheutil.EnsureBaseDir(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("cache ensure err: err=%v", err)
	}

	app, err := command.InitApp(ctx, args)
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

func realMain() int {
	log.InitLogger()

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

// processSetOnly expands an @set argument into the entries of the config list
// <command>.<set>, in place. Without an explicit @set, <command>.defaults is
// injected right after the command so that later flags override it.
func processSetOnly(args []string) []string {
	if len(args) < 2 {
		return args
	}

	for i := 2; i < len(args); i++ {
		if strings.HasPrefix(args[i], "@") {
			set := args[i][1:]
			args = append(args[:i:i], args[i+1:]...)
			return injectConfigSet(args, args[1]+"."+set, i)
		}
	}

	return injectConfigSet(args, args[1]+".defaults", 2)
}

// injectConfigSet splits every entry of the config list at key on whitespace
// and inserts the pieces at insertIdx.
func injectConfigSet(args []string, key string, insertIdx int) []string {
	entries, err := config.GetStringSlice(key)
	if err != nil || len(entries) == 0 {
		return args
	}

	var expanded []string
	for _, entry := range entries {
		expanded = append(expanded, strings.Fields(entry)...)
	}
	log.Debugf("injecting %s: %v", key, expanded)

	out := make([]string, 0, len(args)+len(expanded))
	out = append(out, args[:insertIdx]...)
	out = append(out, expanded...)
	return append(out, args[insertIdx:]...)
}

// deduplicateFlags drops every occurrence of a repeated flag but the last, so a
// flag given on the command line overrides the same flag injected from a set.
// Positional arguments keep their place.
func deduplicateFlags(args []string) []string {
	if len(args) <= 2 {
		return args
	}

	type unit struct {
		key    string
		tokens []string
	}

	var units []unit
	rest := args[2:]
	for i := 0; i < len(rest); i++ {
		a := rest[i]
		if a == "--" {
			units = append(units, unit{tokens: rest[i:]})
			break
		}
		if !strings.HasPrefix(a, "-") || a == "-" {
			units = append(units, unit{tokens: []string{a}})
			continue
		}

		key, _, hasValue := strings.Cut(a, "=")
		u := unit{key: key, tokens: []string{a}}
		if !hasValue && !boolFlags[key] && i+1 < len(rest) && !strings.HasPrefix(rest[i+1], "-") {
			u.tokens = append(u.tokens, rest[i+1])
			i++
		}
		units = append(units, u)
	}

	last := map[string]int{}
	for i, u := range units {
		if u.key != "" {
			last[u.key] = i
		}
	}

	out := append([]string{}, args[:2]...)
	for i, u := range units {
		if u.key != "" && last[u.key] != i {
			continue
		}
		out = append(out, u.tokens...)
	}
	return out
}
