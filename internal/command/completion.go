// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/tblsel/internal/meta"
)

const bashCompletionScript = `# bash completion for tblsel
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_tblsel()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "select cols completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local opts="--starts-with -b --ends-with -e --contains -i --matches -m --columns -C --color -c --format -F --output -o --padding -p --root -r --sort -s --titles -t --region --profile"

    case "$cmd" in
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
    esac

    case "$prev" in
        --output|-o)
            COMPREPLY=( $(compgen -W "text json yaml csv msgpack" -- "$cur") )
            return 0
            ;;
        --format|-F)
            COMPREPLY=( $(compgen -W "auto json yaml csv msgpack" -- "$cur") )
            return 0
            ;;
    esac

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # Otherwise we're on the SOURCE positional, complete files.
    COMPREPLY=( $(compgen -f -- "$cur") )
    return 0
}

complete -F _tblsel tblsel
`

const zshCompletionScript = `#compdef tblsel

_tblsel() {
  local -a cmds
  cmds=(
    'select:select table columns by name'
    'cols:list table columns'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '*'{-b,--starts-with}'[keep columns starting with]:prefix'
  '*'{-e,--ends-with}'[keep columns ending with]:suffix'
  '*'{-i,--contains}'[keep columns containing]:substring'
  '*'{-m,--matches}'[keep columns matching]:regexp'
  '(-C --columns)'{-C,--columns}'[column criteria spec]:spec'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-F --format)'{-F,--format}'[input format]:format:(auto json yaml csv msgpack)'
  '(-o --output)'{-o,--output}'[output format]:format:(text json yaml csv msgpack)'
  '(-p --padding)'{-p,--padding}'[column padding]:padding'
  '(-r --root)'{-r,--root}'[path to table in json input]:path'
  '(-s --sort)'{-s,--sort}'[sort rows by columns]:columns'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--region[AWS region]:region'
  '--profile[AWS profile]:profile'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'tblsel commands' cmds
    return
  fi

  case $words[2] in
    select|cols)
      _arguments -C $common '::SOURCE:_files'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _tblsel tblsel
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := writer(cmd)

	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	if shell == "" {
		// Try to detect from SHELL.
		switch sh := os.Getenv("SHELL"); {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		return fmt.Errorf("unsupported shell %q, usage: tblsel completion [bash|zsh]", shell)
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "tblsel completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
