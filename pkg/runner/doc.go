/*
Package runner implements the interactive loop and I/O orchestration for an ipcli Editor.

It acts as the bridge between the editor and the outside world. The runner reads one
line at a time through a pluggable handler, executes it, reports errors on the error
channel and redraws the canvas only when a command changed it.

# Key Components

  - Runner: The loop itself, plus Replay for running scripts before the session starts.
  - IOHandler: Decouples how lines are read and events are shown (terminal, JSON lines).
  - TextHandler: A standard implementation for interactive CLI usage.
  - JSONHandler: Newline-delimited JSON events for driving the editor from other programs.

# Usage

	editor, _ := ipcli.New(10, 10, false)
	r := runner.NewRunner(
		runner.WithEditor(editor),
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
	)

	if err := r.Run(ctx); err != nil {
		log.Fatal(err)
	}
*/
package runner
