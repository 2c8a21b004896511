package builtin

import (
	"context"

	"github.com/mwantia/webterm/cmd"
	"github.com/mwantia/webterm/render"
)

var avatar = []string{
	"              :'           `\"]&w;            ",
	"             `            \", ~*&$@H,         ",
	"                           '':  J@k}#&w      ",
	"        ,                    '; *]|:]@@H,    ",
	"       |! '                   , ''|;jMMmkh   ",
	"          '       ,jkkkmp@pg@$$@   ;#kkkkk@  ",
	"        |;;.      ||j|jj%]@@&&$$   r'!||m,   ",
	"     ,|`|||/=   ;jl|lljj]K@@$$&L]       `!,  ",
	"  ;  ',;|' j;();l||\"'`''*][%|]gH      ;, ]h:,",
	"  |,;||;,,  `'||||!;,  ,,|%@y@&U      |||,,` ",
	"jj||j||i|i\"   ||!|ljjkk|||]@%@$      ;|` '' j",
	" \"||!|k*`   @;||||\"!!||'\"*j8@@C    ,,j|    '[",
	"  '         kh' `' '|; \"]%@&@*    , !\"`      ",
	"            \"jk,    ||!jm@@@             :   ",
	"             'j|!;, ,w/||l[               `  ",
	"              jjg@p#*^#M%MMM%@@@@$M          ",
	"             ,%k{j@%%%NN@]%%%]B$$$           ",
	"          ,pkjjk%%&&g|j]%|]k%]B$$K           ",
	"          \"*kj!|jg@%%%@&UNjjk]B$$            ",
	"              `'*%BMM@w]$m|i***`             ",
}

// infoRow is a line of the info block: an optional highlighted label, the
// text after it and an optional link target.
type infoRow struct {
	label string
	text  string
	href  string
}

var info = []infoRow{
	{label: "contact", text: "@hansbaker.com"},
	{text: "---------------------"},
	{label: "Name", text: ": Hans Baker"},
	{label: "Location", text: ": USA"},
	{label: "Occupation", text: ": Software Engineering Leader"},
	{label: "Years Exp", text: ": 8"},
	{label: "Languages", text: ": Go, Rust, Python, TypeScript... Adaptable"},
	{label: "Tech", text: ": Postgres, Redis, Docker, Terraform... Resourceful"},
	{label: "Soft Skills", text: ": Leadership, communication, collaboration... Interpersonal"},
	{label: "Values", text: ": Accountability, empathy, grit, excellence... Principled"},
	{label: "Education", text: ": Comp Sci (no degree), B.A. in Phil... Lifelong Learner"},
	{label: "Dev Env", text: ": Tmux & Neovim in WSL2 (tty)"},
	{label: "Coffee", text: " Black as midnight on a moonless night"},
	{label: "Hobbies", text: ": Far too many..."},
	{},
	{label: "Pages", text: ": /blog | /cv (resume)"},
	{label: "Links", text: ": github.com/BakerNet", href: "https://github.com/BakerNet"},
	{},
	{},
	{},
}

type NeofetchCommand struct {
}

func (n *NeofetchCommand) Name() cmd.Name      { return cmd.Neofetch }
func (n *NeofetchCommand) Description() string { return "show system information" }
func (n *NeofetchCommand) Usage() string       { return "neofetch" }

// Execute prints the avatar next to the info block.
func (n *NeofetchCommand) Execute(ctx context.Context, env *cmd.Env, raw []string) cmd.Result {
	content := make(render.Content, 0, len(avatar))
	for i, row := range avatar {
		line := render.Line{render.Styled(row, render.StyleMuted), render.Plain("  ")}
		if i < len(info) {
			line = append(line, info[i].spans()...)
		}
		content = append(content, line)
	}
	return cmd.Output(content)
}

func (r infoRow) spans() []render.Span {
	var spans []render.Span
	if r.label != "" {
		spans = append(spans, render.Styled(r.label, render.StyleAccent))
	}
	if r.text != "" {
		if r.href != "" {
			spans = append(spans, render.Link(r.text, r.href, render.StyleDirectory))
		} else {
			spans = append(spans, render.Plain(r.text))
		}
	}
	return spans
}
