// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

// usageGuide is the rendered `chatlaunch docs` content. Kept as markdown so
// glamour can style it for the terminal.
const usageGuide = `# chatlaunch

chatlaunch starts the Offline LM Studio Programs chat UI. It always runs the
UI from the launcher's own directory, so double-clicking a shortcut from
anywhere behaves the same as running it in place.

## Interpreter resolution

Candidates are probed in strict priority order; the first one that exists
wins and the rest are never consulted:

1. A virtual environment next to the launcher
   (` + "`venv/Scripts/python.exe`" + ` on Windows, ` + "`venv/bin/python3`" + ` elsewhere)
2. The versioned resolver on PATH (` + "`py -3`" + ` on Windows, ` + "`python3`" + ` elsewhere)
3. The generic ` + "`python`" + ` command on PATH

If no candidate exists, chatlaunch prints a diagnostic and exits with
status 1 without starting anything.

## Arguments

The chat UI is always invoked as:

~~~
<interpreter> offline_chatbot_programs_modern_ui.py --seed-file "THE SEED.txt" [your args...]
~~~

Everything after ` + "`--`" + ` is forwarded to the chat UI unmodified:

~~~
$ chatlaunch -- --show-seed --seed-delay 500
~~~

The launcher exits with the chat UI's exit code.

## Configuration

Defaults can be changed persistently:

~~~
$ chatlaunch config init
$ chatlaunch config set seed_file my-seed.txt
$ chatlaunch config show
~~~

## Troubleshooting

~~~
$ chatlaunch doctor
~~~

reports every interpreter candidate and whether the script and seed file
are present, without launching anything.`

// newDocsCommand builds the docs command, which renders the usage guide.
func newDocsCommand(app *App) *cobra.Command {
	var plain bool

	docsCmd := &cobra.Command{
		Use:   "docs",
		Short: "Show the usage guide",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if plain {
				fmt.Fprintln(app.stdout, usageGuide)
				return nil
			}

			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(100),
			)
			if err != nil {
				return fmt.Errorf("failed to build docs renderer: %w", err)
			}

			rendered, err := renderer.Render(usageGuide)
			if err != nil {
				return fmt.Errorf("failed to render docs: %w", err)
			}

			fmt.Fprint(app.stdout, rendered)
			return nil
		},
	}

	docsCmd.Flags().BoolVar(&plain, "plain", false, "print raw markdown without terminal styling")

	return docsCmd
}
