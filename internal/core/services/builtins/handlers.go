package builtins

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/AntonioJCosta/ssic/internal/core/domain/command"
	"github.com/AntonioJCosta/ssic/internal/core/ports"
)

// ShellName prefixes every message the builtins report.
const ShellName = "ssic"

// changeDir implements `cd PATH`. Arguments after PATH are ignored.
func changeDir(fs ports.FileSystem, errOut io.Writer, argv command.ArgumentVector) command.Signal {
	args := argv.Args()
	if len(args) == 0 {
		fmt.Fprintf(errOut, "%s: expected argument to \"cd\"\n", ShellName)
		return command.Continue
	}
	if err := fs.ChangeDir(args[0]); err != nil {
		fmt.Fprintf(errOut, "%s: cd: %v\n", ShellName, err)
	}
	return command.Continue
}

// printHelp lists every registered builtin once, in registration order.
func printHelp(r *registry, out io.Writer) command.Signal {
	fmt.Fprintf(out, "%s, a simple shell\n", ShellName)
	fmt.Fprintln(out, "Type program names and arguments, and hit enter.")
	fmt.Fprintln(out, "The following are built in:")

	table := tablewriter.NewWriter(out)
	table.SetBorder(false)
	table.SetColumnSeparator(" ")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, b := range r.entries {
		table.Append([]string{b.Name(), b.Description()})
	}
	table.Render()

	fmt.Fprintln(out, "Use the man command for information on other programs.")
	return command.Continue
}

func sayGoodbye(out io.Writer) command.Signal {
	fmt.Fprintln(out, "Goodbye.")
	return command.Stop
}
