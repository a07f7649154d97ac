// Copyright (c) 2026 Eddie Ramirez.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/eddieramirez/bdactl/internal/meta"
)

const bashCompletionScript = `# bash completion for bdactl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_bdactl()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "pq bq jq project blueprint submit watch results export diff purge completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
  local common="--attrs -a --color -c --filter -f --local -l --output -o --sort -s --titles -t --tldr"
  local aws="--profile --region"

    case "$cmd" in
    pq)
      local opts="$common $aws --schema --examples --stage"
            ;;
        bq)
      local opts="$common $aws --schema --examples"
            ;;
        jq)
      local opts="$common $aws --schema --examples --refresh --no-refresh"
            ;;
        project)
      local opts="$aws --name -n --description -d --stage --blueprint --rm --text-detection --transcript --logos --moderation --bounding-boxes --video-summary --chapter-summaries --iab"
            ;;
        blueprint)
      local opts="$aws --file -F --name -n --type --stage --compile --rm"
            ;;
        submit)
      local opts="$aws --bucket -b --project -p --stage --input-prefix --output-prefix --output-uri --wait -w --interval -i --timeout"
            ;;
        watch)
      local opts="$aws --interval -i"
            ;;
        results)
      local opts="$common $aws --schema --examples --view -V --words"
            ;;
        export)
      local opts="$aws --view -V --words"
            ;;
        diff)
      local opts="$aws --color -c --delta --inference"
            ;;
        purge)
      local opts="$aws --project --blueprint"
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

    if [[ "$prev" == "--view" || "$prev" == "-V" ]]; then
        COMPREPLY=( $(compgen -W "summary transcript chapters segments frames shots inference" -- "$cur") )
        return 0
    fi

  if [[ "$cur" == -* ]]; then
    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
  fi

  # Otherwise complete file names for commands that take one
  COMPREPLY=( $(compgen -o default -- "$cur") )
  return 0
}

complete -F _bdactl bdactl
`

const zshCompletionScript = `#compdef bdactl

_bdactl() {
  local -a cmds
  cmds=(
    'pq:project query'
    'bq:blueprint query'
    'jq:job query'
    'project:create or delete a project'
    'blueprint:create or delete a blueprint'
    'submit:start an async data automation job'
    'watch:watch a job until it finishes'
    'results:explore result documents'
    'export:export result rows to Parquet or JSONL'
    'diff:diff the result documents of two jobs'
    'purge:delete job output and resources'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-a --attrs)'{-a,--attrs}'[attributes to include]:attrs'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-l --local)'{-l,--local}'[local timestamps]'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '(-s --sort)'{-s,--sort}'[sort attributes]:attrs'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--tldr[show tldr page]'
  )

  local -a aws
  aws=(
  '--profile[AWS credential profile]:profile'
  '--region[AWS region]:region'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'bdactl commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    pq)
      _arguments -C $common $aws \
        '--schema[dump schema]' \
        '--stage[stage filter]:stage:(DEVELOPMENT LIVE)'
      ;;
    bq)
      _arguments -C $common $aws \
        '--schema[dump schema]'
      ;;
    jq)
      _arguments -C $common $aws \
        '--schema[dump schema]' \
        '--refresh[refresh in-flight statuses]' \
        '--no-refresh[skip the status refresh]'
      ;;
    project)
      _arguments -C $aws \
        '(-n --name)'{-n,--name}'[project name]:name' \
        '(-d --description)'{-d,--description}'[description]:text' \
        '--stage[stage]:stage:(DEVELOPMENT LIVE)' \
        '*--blueprint[attach blueprint]:blueprint' \
        '--rm[delete project]:project'
      ;;
    blueprint)
      _arguments -C $aws \
        '(-F --file)'{-F,--file}'[schema file]:file:_files' \
        '(-n --name)'{-n,--name}'[blueprint name]:name' \
        '--type[modality]:type:(VIDEO AUDIO DOCUMENT IMAGE)' \
        '--stage[stage]:stage:(DEVELOPMENT LIVE)' \
        '--compile[print compiled schema]' \
        '--rm[delete blueprint]:blueprint'
      ;;
    submit)
      _arguments -C $aws \
        '(-b --bucket)'{-b,--bucket}'[S3 bucket]:bucket' \
        '(-p --project)'{-p,--project}'[project]:project' \
        '--stage[stage]:stage:(DEVELOPMENT LIVE)' \
        '--input-prefix[upload key prefix]:prefix' \
        '--output-prefix[output key prefix]:prefix' \
        '--output-uri[output s3:// URI]:uri' \
        '(-w --wait)'{-w,--wait}'[wait for completion]' \
        '(-i --interval)'{-i,--interval}'[poll interval]:duration' \
        '--timeout[wait timeout]:duration' \
        '1:input file:_files'
      ;;
    watch)
      _arguments -C $aws \
        '(-i --interval)'{-i,--interval}'[poll interval]:duration' \
        '1:job spec'
      ;;
    results)
      _arguments -C $common $aws \
        '--schema[dump schema]' \
        '(-V --view)'{-V,--view}'[view]:view:(summary transcript chapters segments frames shots inference)' \
        '--words[include word detections]' \
        '1:job spec'
      ;;
    export)
      _arguments -C $aws \
        '(-V --view)'{-V,--view}'[view]:view:(chapters segments frames shots)' \
        '--words[include word detections]' \
        '1:job spec' \
        '2:destination:_files'
      ;;
    diff)
      _arguments -C $aws \
        '(-c --color)'{-c,--color}'[colored diff]' \
        '--delta[compact delta output]' \
        '--inference[diff custom output]' \
        '1:left job spec' \
        '2:right job spec'
      ;;
    purge)
      _arguments -C $aws \
        '--project[also delete the project]' \
        '--blueprint[also delete a blueprint]:blueprint' \
        '1:job spec'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _bdactl bdactl
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		if strings.HasSuffix(sh, "zsh") {
			fmt.Fprint(os.Stdout, zshCompletionScript)
		} else if strings.HasSuffix(sh, "bash") {
			fmt.Fprint(os.Stdout, bashCompletionScript)
		} else {
			fmt.Fprintln(os.Stderr, "usage: bdactl completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func CompletionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "bdactl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
