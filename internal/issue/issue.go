// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	InterpreterNotFoundId Id = iota + 1
	SeedFileMissingId
	ScriptNotFoundId
	ConfigLoadFailedId
	LaunchFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	interpreterNotFoundIssue = &Issue{
		id: InterpreterNotFoundId,
		mdMsg: `
# No Python interpreter found!

The launcher probed every interpreter candidate and none of them exist.

## Candidates we look for (in order of precedence):
1. A virtual environment next to the launcher (` + "`venv/Scripts/python.exe`" + ` on Windows, ` + "`venv/bin/python3`" + ` elsewhere)
2. The versioned resolver on PATH (` + "`py -3`" + ` on Windows, ` + "`python3`" + ` elsewhere)
3. The generic ` + "`python`" + ` command on PATH

## Things you can try:
- Install Python 3:
  - Windows: https://www.python.org/downloads/ (tick "Add python.exe to PATH")
  - Linux: ` + "`sudo apt install python3`" + ` or ` + "`sudo dnf install python3`" + `
  - macOS: ` + "`brew install python3`" + `

- Or create a virtual environment next to the launcher:
~~~
$ python3 -m venv venv
~~~

- Check what the launcher can see:
~~~
$ chatlaunch doctor
~~~`,
		extLinks: []HttpLink{"https://www.python.org/downloads/"},
	}

	seedFileMissingIssue = &Issue{
		id: SeedFileMissingId,
		mdMsg: `
# Seed file not found!

The configured seed file does not exist next to the launcher. The chat UI
will still start, but no welcome message will be generated.

## Things you can try:
- Create the seed file (default name: ` + "`THE SEED.txt`" + `) in the launcher directory
- Point the launcher at a different file:
~~~
$ chatlaunch --seed-file my-seed.txt
~~~

- Or set it permanently:
~~~
$ chatlaunch config set seed_file my-seed.txt
~~~`,
	}

	scriptNotFoundIssue = &Issue{
		id: ScriptNotFoundId,
		mdMsg: `
# Chat UI script not found!

The target script is missing from the launcher directory.

## Things you can try:
- Make sure ` + "`offline_chatbot_programs_modern_ui.py`" + ` sits next to the launcher
- Point the launcher at a different script:
~~~
$ chatlaunch --script path/to/ui.py
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the chatlaunch configuration file.

## Configuration file locations:
- Linux: ~/.config/chatlaunch/config.cue
- macOS: ~/Library/Application Support/chatlaunch/config.cue
- Windows: %APPDATA%\chatlaunch\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ chatlaunch config init
~~~

- Check the configuration syntax
- Remove the config file to use defaults

## Example configuration:
~~~cue
script: "offline_chatbot_programs_modern_ui.py"
seed_file: "THE SEED.txt"

ui: {
  color_scheme: "auto"
  verbose: false
}
~~~`,
	}

	launchFailedIssue = &Issue{
		id: LaunchFailedId,
		mdMsg: `
# Failed to launch the chat UI!

An interpreter was found but the child process could not be started.

## Common causes:
- The interpreter path points to a non-executable file
- Permission denied on the target script
- The working directory was removed while the launcher was running

## Things you can try:
- Run with verbose mode for more details:
~~~
$ chatlaunch --verbose
~~~

- Run the interpreter manually against the script
- Check file permissions in the launcher directory`,
	}

	issues = map[Id]*Issue{
		interpreterNotFoundIssue.Id(): interpreterNotFoundIssue,
		seedFileMissingIssue.Id():     seedFileMissingIssue,
		scriptNotFoundIssue.Id():      scriptNotFoundIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		launchFailedIssue.Id():        launchFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
