package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with args after restoring every flag to
// its default, since cobra keeps flag values between Execute calls.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("REALTY_LOG_LEVEL", "error")

	for _, c := range []*cobra.Command{rootCmd, estimateCmd, propertiesCmd} {
		for _, fs := range []*pflag.FlagSet{c.Flags(), c.PersistentFlags()} {
			fs.VisitAll(func(f *pflag.Flag) {
				require.NoError(t, f.Value.Set(f.DefValue))
				f.Changed = false
			})
		}
	}

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestEstimateCommand(t *testing.T) {
	out, _, err := runCLI(t, "estimate", "--price", "750000", "--down", "150000", "--term", "30", "--rate", "6.5")
	require.NoError(t, err)

	for _, line := range []string{
		`Principal & interest\s+\$3,792\n`,
		`Property tax\s+\$750\n`,
		`Home insurance\s+\$219\n`,
		`Total monthly payment\s+\$4,761\n`,
		`Loan amount\s+\$600,000\n`,
		`Total interest\s+\$765,267\n`,
		`Total cost\s+\$1,515,267\n`,
	} {
		assert.Regexp(t, line, out)
	}
	assert.NotContains(t, out, "Year")
}

func TestEstimateCommand_Schedule(t *testing.T) {
	out, _, err := runCLI(t, "estimate", "--price", "500000", "--down", "100000",
		"--term", "15", "--rate", "0", "--schedule")
	require.NoError(t, err)

	assert.Contains(t, out, "Year")
	assert.Regexp(t, `(?m)^\s+1\s+\$26,667\s+\$0\s+\$373,333\s*$`, out)
	assert.Regexp(t, `(?m)^\s+15\s+\$26,667\s+\$0\s+\$0\s*$`, out)
}

func TestEstimateCommand_ValidationMessage(t *testing.T) {
	out, stderr, err := runCLI(t, "estimate", "--price", "300000", "--down", "400000")
	require.Error(t, err)

	assert.Equal(t, "Down payment cannot exceed home price", err.Error())
	assert.Contains(t, stderr, "Down payment cannot exceed home price")
	assert.Empty(t, out)
}

func TestEstimateCommand_RequiresPrice(t *testing.T) {
	_, _, err := runCLI(t, "estimate", "--down", "1000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"price"`)
}

func TestPropertiesCommand(t *testing.T) {
	out, _, err := runCLI(t, "properties", "--type", "condo", "--sort", "price-desc")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Regexp(t, `^ID\s+TITLE\s+TYPE\s+PRICE`, lines[0])
	assert.Contains(t, out, "3 of 10 listings")
	assert.Equal(t, 3, strings.Count(out, " condo "))
}
