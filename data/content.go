package data

import "fmt"

// ContentKind identifies how a file produces its text.
type ContentKind int

const (
	ContentStatic  ContentKind = iota // Fixed text shipped with the site
	ContentDynamic                    // Text owned by a user-created file
	ContentNav                        // Generated on read from a navigation target
)

// FileContent is the content of a file node. Only one of Text or Target
// is meaningful, depending on Kind.
type FileContent struct {
	Kind   ContentKind `json:"kind"`
	Text   string      `json:"text,omitempty"`
	Target string      `json:"target,omitempty"`
}

func StaticContent(text string) FileContent {
	return FileContent{Kind: ContentStatic, Text: text}
}

func DynamicContent(text string) FileContent {
	return FileContent{Kind: ContentDynamic, Text: text}
}

// NavContent creates content that navigates to target when executed.
func NavContent(target string) FileContent {
	if target == "" {
		target = "/"
	}
	return FileContent{Kind: ContentNav, Target: target}
}

// IsNav reports whether the content is a navigation file.
func (c FileContent) IsNav() bool {
	return c.Kind == ContentNav
}

// Size returns the reported size in bytes.
func (c FileContent) Size() int64 {
	if c.Kind == ContentNav {
		return NavFileSize
	}
	return int64(len(c.Text))
}

// Render returns the text a reader sees.
func (c FileContent) Render() string {
	if c.Kind == ContentNav {
		return fmt.Sprintf(navTemplate, c.Target)
	}
	return c.Text
}

const navTemplate = `use leptos::prelude::*;
use leptos_router::{hooks::use_navigate, UseNavigateOptions};

func main() {
    Effect::new((_) => {
        let navigate = use_navigate();
        navigate("%s", UseNavigateOptions::default);
    })
}
`

// Site content shipped in the root directory.
const (
	MinesScript = `#!/bin/bash
set -e

# https://mines.hansbaker.com
# Minesweeper client with multiplayer, replay analysis, and stat tracking
mines
`

	ThanksText = "Thank you to my wife and my daughter for bringing immense joy to my life."

	ZshrcText = `# Simple zsh configuration
unsetopt beep
setopt HIST_SAVE_NO_DUPS

# Basic completion
autoload -Uz compinit
compinit

# plugins
plugins = (zsh-autosuggestions, zsh-history-substring-search)

# Aliases
alias ll='ls -la'
alias la='ls -a'
alias h='history'

# robbyrussell theme prompt
# Arrow changes color based on exit status, directory in cyan, git status
PROMPT='%(?:%{$fg_bold[green]%}➜ :%{$fg_bold[red]%}➜ )%{$fg[cyan]%}%c%{$reset_color%} $(git_prompt_info)'

ZSH_THEME_GIT_PROMPT_PREFIX="%{$fg_bold[blue]%}git:(%{$fg[red]%}"
ZSH_THEME_GIT_PROMPT_SUFFIX="%{$reset_color%} "
ZSH_THEME_GIT_PROMPT_DIRTY="%{$fg[blue]%}) %{$fg[yellow]%}✗"
ZSH_THEME_GIT_PROMPT_CLEAN="%{$fg[blue]%})"

# History settings
HISTFILE=window.localStorage
HISTSIZE=1000
SAVEHIST=1000
setopt SHARE_HISTORY
setopt APPEND_HISTORY

# zsh-history-substring-search configuration
bindkey '^[[A' history-substring-search-up # or '\eOA'
bindkey '^[[B' history-substring-search-down # or '\eOB'
HISTORY_SUBSTRING_SEARCH_ENSURE_UNIQUE=1
HISTORY_SUBSTRING_SEARCH_HIGHLIGHT_FOUND=0
HISTORY_SUBSTRING_SEARCH_HIGHLIGHT_NOT_FOUND=0
`
)
