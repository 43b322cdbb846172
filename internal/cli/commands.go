package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"qrdesk/internal/platform"
	"qrdesk/internal/service"
)

var errInvalidURL = errors.New("invalid url")

func greetCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "greet NAME",
		Short: "Print a greeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(svc service.CommandService) error {
				fmt.Fprintln(cmd.OutOrStdout(), svc.Greet(cmd.Context(), args[0]))
				return nil
			})
		},
	}
}

func qrcodeCmd(run runner, files platform.FileWriter) *cobra.Command {
	var output string

	c := &cobra.Command{
		Use:   "qrcode TEXT",
		Short: "Render TEXT as an SVG QR code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(svc service.CommandService) error {
				markup, err := svc.GenerateQRCode(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if output == "" {
					fmt.Fprintln(cmd.OutOrStdout(), markup)
					return nil
				}
				if err := files.WriteFile(output, []byte(markup)); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), output)
				return nil
			})
		},
	}

	c.Flags().StringVarP(&output, "output", "o", "", "Write the SVG to this file instead of stdout")
	return c
}

func downloadsCmd(run runner) *cobra.Command {
	c := &cobra.Command{
		Use:   "downloads",
		Short: "Inspect or open the downloads folder",
	}

	c.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the resolved downloads folder",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd, func(svc service.CommandService) error {
					fmt.Fprintln(cmd.OutOrStdout(), svc.GetDownloadsPath(cmd.Context()))
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "open",
			Short: "Open the downloads folder in the file browser",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd, func(svc service.CommandService) error {
					return svc.OpenDownloadsFolder(cmd.Context())
				})
			},
		},
	)
	return c
}

func validateCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "validate URL",
		Short: "Check a URL before encoding it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(svc service.CommandService) error {
				check := svc.ValidateURL(cmd.Context(), args[0])
				if check.Message != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", check.Level, check.Message)
				}
				if !check.Valid {
					return errInvalidURL
				}
				return nil
			})
		},
	}
}

func exportCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "export TEXT",
		Short: "Save TEXT as an SVG QR code in the downloads folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(svc service.CommandService) error {
				exp, err := svc.ExportQRCode(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(exp)
			})
		},
	}
}
