package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrylevesque/qrverify/internal/portal"
)

// Default server base URL; can override with QRV_SERVER env var or --server flag.
var serverBaseURL = "http://localhost:8080"

var (
	serverFlag string
	langFlag   string
	timeout    time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "qrverify",
	Short:         "Command line client for the verification portal",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "Override server base URL (e.g. https://verify.example.com)")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "Language sent as Accept-Language (tr, es, ar, de, en, fr)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "HTTP timeout")
	rootCmd.AddCommand(verifyCmd(), activateCmd(), qrCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newClient() (*portalClient, error) {
	base := serverBaseURL
	if env := os.Getenv("QRV_SERVER"); env != "" {
		base = env
	}
	if serverFlag != "" {
		base = serverFlag
	}
	return newPortalClient(base, langFlag, timeout)
}

func verifyCmd() *cobra.Command {
	var category, pin string
	cmd := &cobra.Command{
		Use:   "verify <serial>",
		Short: "Check a serial code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			v, err := c.Verify(args[0], category, pin)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), v)
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Product category")
	cmd.Flags().StringVar(&pin, "pin", "", "PIN printed next to the code")
	return cmd
}

func activateCmd() *cobra.Command {
	var (
		category, pin string
		form          portal.Form
		accept        bool
	)
	cmd := &cobra.Command{
		Use:   "activate <serial>",
		Short: "Verify and activate an unused serial code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			form.AgreePolicy, form.ConfirmAccuracy = accept, accept
			c, err := newClient()
			if err != nil {
				return err
			}

			fmt.Fprintln(out, "[1] Verifying", args[0])
			v, err := c.Verify(args[0], category, pin)
			if err != nil {
				return err
			}
			if v.Result == nil || !v.Result.CanActivate {
				printResult(out, v)
				return errors.New("code cannot be activated")
			}

			fmt.Fprintln(out, "[2] Opening activation")
			if _, err := c.Open(); err != nil {
				return err
			}

			fmt.Fprintln(out, "[3] Submitting details")
			v, err = c.Next(&form)
			if err != nil {
				return err
			}
			if v.Activation == nil || !v.Activation.ConfirmStep {
				msg := "form rejected"
				if v.Activation != nil && v.Activation.Error != "" {
					msg = v.Activation.Error
				}
				return errors.New(msg)
			}

			fmt.Fprintln(out, "[4] Confirming")
			v, err = c.Confirm()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, v.Flash)
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Product category (required)")
	cmd.Flags().StringVar(&pin, "pin", "", "PIN printed next to the code")
	cmd.Flags().StringVar(&form.FirstName, "first-name", "", "Owner first name")
	cmd.Flags().StringVar(&form.LastName, "last-name", "", "Owner last name")
	cmd.Flags().StringVar(&form.Phone, "phone", "", "Owner phone")
	cmd.Flags().BoolVar(&accept, "accept", false, "Accept the policy and confirm the details are accurate")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func qrCmd() *cobra.Command {
	var (
		outPath string
		size    int
	)
	cmd := &cobra.Command{
		Use:   "qr <serial>",
		Short: "Download the QR image of a serial code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			png, err := c.QR(args[0], size)
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = strings.ToUpper(strings.TrimSpace(args[0])) + ".png"
			}
			if err := os.WriteFile(outPath, png, 0644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "QR written to %s\n", outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default <SERIAL>.png)")
	cmd.Flags().IntVar(&size, "size", 256, "Image size in pixels")
	return cmd
}

func printResult(w io.Writer, v portal.View) {
	r := v.Result
	if r == nil {
		fmt.Fprintln(w, "no result")
		return
	}
	fmt.Fprintf(w, "%s: %s\n", r.Code, r.Title)
	fmt.Fprintln(w, r.Description)
	if !r.Found {
		return
	}
	fmt.Fprintf(w, "  product:  %s\n  category: %s\n", r.Product, r.Category)
	if r.Note != "" {
		fmt.Fprintf(w, "  note:     %s\n", r.Note)
	}
	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "  ! %s\n", warn.Text)
	}
	if o := r.Owner; o != nil {
		fmt.Fprintf(w, "  owner:    %s %s, %s\n", o.FirstName, o.LastName, o.Phone)
	}
}
