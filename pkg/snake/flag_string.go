package snake

import (
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func asFlags(f *pflag.Flag) string {
	if f.Shorthand != "" {
		return fmt.Sprintf("--%s, -%s", f.Name, f.Shorthand)
	}
	return fmt.Sprintf("--%s", f.Name)
}

// PromptFlagString reads one value for f, re-asking until validate accepts
// it. The flag's current value is offered as the default.
func PromptFlagString(cmd *cobra.Command, f *pflag.Flag, validate Validator) (string, error) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", asFlags(f), f.Usage)

	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }}: ",
		Valid:   "{{ . | green }}: ",
		Invalid: "{{ . | red }}: ",
		Success: "{{ . | bold }}: ",
	}

	prompt := promptui.Prompt{
		Label:     f.Name,
		Default:   f.Value.String(),
		AllowEdit: true,
		Templates: templates,
		Stdin:     io.NopCloser(cmd.InOrStdin()),
		Stdout:    nopCloser{cmd.OutOrStdout()},
	}
	if validate != nil {
		prompt.Validate = promptui.ValidateFunc(validate)
	}

	result, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt %s: %w", f.Name, err)
	}
	return result, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
