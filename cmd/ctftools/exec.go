//go:build unix

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pboyd/reclass/ctftools"
)

var execInput string

var execCmd = &cobra.Command{
	Use:   "exec <command>...",
	Short: "Run a shell command through a pseudo terminal",
	Long: `Runs the command with /bin/sh so programs that only flush output to a
terminal behave as they would interactively. The exit code of the command
becomes the exit code of ctftools.`,
	Example: `  ctftools exec --input AAAA ./vuln`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runExec,
}

var findExecCmd = &cobra.Command{
	Use:   "find-exec [dir]",
	Short: "Print the first executable file in a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFindExec,
}

func init() {
	execCmd.Flags().StringVar(&execInput, "input", "", "Text written to the command's stdin")

	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(findExecCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	command := strings.Join(args, " ")
	out, code, err := ctftools.Exec(ctx, command, []byte(execInput))
	if err != nil {
		return err
	}
	logger.Debug("command finished", zap.String("command", command), zap.Int("code", code))

	fmt.Fprintln(cmd.OutOrStdout(), out)
	if code != 0 {
		return exitError(code)
	}
	return nil
}

func runFindExec(cmd *cobra.Command, args []string) error {
	dir := "/"
	if len(args) > 0 {
		dir = args[0]
	}

	path, err := ctftools.FindExecutable(dir)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
