// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/uhctl/uhctl/internal/meta"
)

const bashCompletionScript = `# bash completion for uhctl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_uhctl()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "appname compare link open package pick range releases reset settings show completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--color -c --output -o --session --titles -t"

    case "$cmd" in
        appname)
            local opts="$common --reset"
            ;;
        compare)
            local opts="--color -c --session"
            ;;
        link)
            local opts="$common --base-url --file --schema"
            ;;
        package)
            if [[ "$prev" == "--language" || "$prev" == "-l" ]]; then
                COMPREPLY=( $(compgen -W "cpp cs" -- "$cur") )
                return 0
            fi
            local opts="$common --language -l react-native react-native-windows react-native-macos"
            ;;
        pick|range)
            local opts="$common --catalog"
            ;;
        releases)
            local opts="$common --catalog --filter -f --latest --rc"
            ;;
        settings)
            local opts="$common --clear"
            ;;
        show)
            local opts="$common --schema"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
        return 0
    fi

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -F _uhctl uhctl
`

const zshCompletionScript = `#compdef uhctl

_uhctl() {
  local -a cmds
  cmds=(
    'appname:show or set the app name'
    'compare:show how two links differ'
    'link:print the links for the session selection'
    'open:load a share link or query into the session'
    'package:select the package and language'
    'pick:interactive package and version picker'
    'range:select the from and to versions'
    'releases:list the known versions of the selected package'
    'reset:reset the session to the default selection'
    'settings:list or set the enabled settings'
    'show:show the session selection and diff state'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '--session[session name]:session'
  '(-t --titles)'{-t,--titles}'[show titles]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'uhctl commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    appname)
      _arguments -C $common '--reset[default app name]' '::name'
      ;;
    compare)
      _arguments -C \
        '(-c --color)'{-c,--color}'[enable colored diff]' \
        '--session[session name]:session' \
        '1:url' '::url'
      ;;
    link)
      _arguments -C $common \
        '--base-url[upgrade helper address]:url' \
        '--file[app file path]:path' \
        '--schema[dump schema]'
      ;;
    open)
      _arguments -C $common '1:url'
      ;;
    package)
      _arguments -C $common \
        '(-l --language)'{-l,--language}'[language]:language:(cpp cs)' \
        '1:package:(react-native react-native-windows react-native-macos)'
      ;;
    pick)
      _arguments -C $common '--catalog[releases file]:file:_files'
      ;;
    range)
      _arguments -C $common '--catalog[releases file]:file:_files' '1:from' '::to'
      ;;
    releases)
      _arguments -C $common \
        '--catalog[releases file]:file:_files' \
        '(-f --filter)'{-f,--filter}'[filters to apply]:filters' \
        '--latest[newest only]' \
        '--rc[include release candidates]'
      ;;
    settings)
      _arguments -C $common '--clear[disable every setting]' '*:setting'
      ;;
    show)
      _arguments -C $common '--schema[dump schema]'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _uhctl uhctl
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := Writer(cmd)
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(w, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(w, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: uhctl completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "uhctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
